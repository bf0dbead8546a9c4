// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// BusinessService reads and updates the account-level business profile.
type BusinessService struct {
	c Client
}

func (s *BusinessService) Get(ctx context.Context) (*Business, error) {
	var out Business
	if err := s.c.Do(ctx, http.MethodGet, "/business", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *BusinessService) Update(ctx context.Context, b Business) (*Business, error) {
	var out Business
	if err := s.c.Do(ctx, http.MethodPut, "/business", b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
