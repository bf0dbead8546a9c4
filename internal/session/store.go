// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session holds the current access token and user identity.
// The store is created empty at startup, populated by a successful login or
// refresh, and cleared on logout or irrecoverable refresh failure. The
// gateway client reads it on every outgoing request.
package session

import "sync"

// User is the authenticated user's identity as known to the client.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	BusinessID string `json:"businessId"`
}

// Store is a mutex-guarded snapshot store for the session state.
// When constructed with Open, every mutation is mirrored to the OS
// keychain; NewStore creates a purely in-memory store for tests.
type Store struct {
	mu      sync.RWMutex
	token   string
	user    *User
	persist bool
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Open loads persisted session state from the OS keychain. A missing or
// unreadable state yields an empty (logged-out) store rather than an error;
// the first authenticated call will fail and prompt a login.
func Open() *Store {
	s := &Store{persist: true}
	if st, err := loadState(); err == nil {
		s.token = st.Token
		s.user = st.User
	}
	return s
}

// Token returns the current access token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current user identity, or nil when logged out.
func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Set stores the token and user atomically. Used after login.
func (s *Store) Set(token string, user *User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	s.save()
}

// SetToken replaces only the access token, keeping the user identity.
// Used by the refresh protocol.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.save()
}

// Clear wipes token and user. Used on logout and terminal session errors.
func (s *Store) Clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	if s.persist {
		_ = clearState()
	}
}

func (s *Store) save() {
	if !s.persist {
		return
	}
	s.mu.RLock()
	st := state{Token: s.token, User: s.user}
	s.mu.RUnlock()
	_ = saveState(st)
}
