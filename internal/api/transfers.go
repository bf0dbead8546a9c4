// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// TransfersService moves stock between warehouses.
type TransfersService struct {
	c Client
}

func (s *TransfersService) List(ctx context.Context, opts ListOptions) ([]Transfer, error) {
	var out []Transfer
	if err := s.c.Do(ctx, http.MethodGet, "/transfers"+opts.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TransfersService) Create(ctx context.Context, t Transfer) (*Transfer, error) {
	var out Transfer
	if err := s.c.Do(ctx, http.MethodPost, "/transfers", t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
