// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe access to the OS
// keychain/credential store for Inventa. All session secrets go through
// this package so nothing token-shaped ever lands in a plain config file.
package keychain

import (
	"path/filepath"
	"sync"

	"inventa/cli/internal/xdg"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "inventa"

// KeySessionState stores the serialized session snapshot (token + user).
const KeySessionState = "session_state"

// Manager provides thread-safe operations on the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager creates a keychain manager with the OS keyring opened.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// GetManager returns the global keychain manager instance, creating it on
// first call. A failed initialization is retried on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}
	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}
	return globalManager, nil
}

// openRing opens the OS keyring, preferring native platform backends and
// falling back to an encrypted file under the XDG state dir on systems
// without one (headless Linux, CI).
func openRing() (keyring.Keyring, error) {
	stateDir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}

	return keyring.Open(keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		PassPrefix:       ServiceName,
		WinCredPrefix:    ServiceName,
		FileDir:          filepath.Join(stateDir, "keyring"),
		FilePasswordFunc: keyring.FixedStringPrompt(ServiceName),
	})
}

// SaveSessionState stores the serialized session state in the keychain.
func (m *Manager) SaveSessionState(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ring.Set(keyring.Item{Key: KeySessionState, Data: data})
}

// LoadSessionState retrieves the serialized session state. Missing state
// returns empty data with no error.
func (m *Manager) LoadSessionState() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(KeySessionState)
	if err != nil {
		if err == keyring.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}
	return it.Data, nil
}

// ClearSessionState removes the session state from the keychain.
func (m *Manager) ClearSessionState() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(KeySessionState); err != nil && err != keyring.ErrKeyNotFound {
		return err
	}
	return nil
}
