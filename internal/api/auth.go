// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// AuthService covers login, logout and the current-user endpoint.
type AuthService struct {
	c Client
}

// LoginRequest is the credential payload for /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the access token and user profile. The refresh
// token arrives as an HTTP-only cookie and is never exposed here.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	User        *User  `json:"user,omitempty"`
}

// Login exchanges credentials for an access token. The transport's cookie
// jar captures the refresh cookie as a side effect.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := s.c.Do(ctx, http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the session server-side. Best effort; local cleanup
// happens regardless of the result.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.Do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Me returns the authenticated user's profile.
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	var out User
	if err := s.c.Do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
