// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// UsersService administers the business account's members.
type UsersService struct {
	c Client
}

func (s *UsersService) List(ctx context.Context, opts ListOptions) ([]User, error) {
	var out []User
	if err := s.c.Do(ctx, http.MethodGet, "/users"+opts.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUserRequest carries the invite payload; the password is initial
// and must be changed by the invited user.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (s *UsersService) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	var out User
	if err := s.c.Do(ctx, http.MethodPost, "/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsersService) Update(ctx context.Context, id string, u User) (*User, error) {
	var out User
	if err := s.c.Do(ctx, http.MethodPut, resourcePath("/users", id), u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsersService) Delete(ctx context.Context, id string) error {
	return s.c.Do(ctx, http.MethodDelete, resourcePath("/users", id), nil, nil)
}
