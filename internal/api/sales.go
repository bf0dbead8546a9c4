// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// SalesService records and lists sales transactions.
type SalesService struct {
	c Client
}

func (s *SalesService) List(ctx context.Context, opts ListOptions) ([]Sale, error) {
	var out []Sale
	if err := s.c.Do(ctx, http.MethodGet, "/sales"+opts.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SalesService) Get(ctx context.Context, id string) (*Sale, error) {
	var out Sale
	if err := s.c.Do(ctx, http.MethodGet, resourcePath("/sales", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SalesService) Create(ctx context.Context, sale Sale) (*Sale, error) {
	var out Sale
	if err := s.c.Do(ctx, http.MethodPost, "/sales", sale, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete voids a sale. Stock adjustments are the backend's responsibility.
func (s *SalesService) Delete(ctx context.Context, id string) error {
	return s.c.Do(ctx, http.MethodDelete, resourcePath("/sales", id), nil, nil)
}
