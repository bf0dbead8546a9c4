// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// WarehousesService manages stock locations.
type WarehousesService struct {
	c Client
}

func (s *WarehousesService) List(ctx context.Context, opts ListOptions) ([]Warehouse, error) {
	var out []Warehouse
	if err := s.c.Do(ctx, http.MethodGet, "/warehouses"+opts.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *WarehousesService) Get(ctx context.Context, id string) (*Warehouse, error) {
	var out Warehouse
	if err := s.c.Do(ctx, http.MethodGet, resourcePath("/warehouses", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *WarehousesService) Create(ctx context.Context, w Warehouse) (*Warehouse, error) {
	var out Warehouse
	if err := s.c.Do(ctx, http.MethodPost, "/warehouses", w, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *WarehousesService) Update(ctx context.Context, id string, w Warehouse) (*Warehouse, error) {
	var out Warehouse
	if err := s.c.Do(ctx, http.MethodPut, resourcePath("/warehouses", id), w, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *WarehousesService) Delete(ctx context.Context, id string) error {
	return s.c.Do(ctx, http.MethodDelete, resourcePath("/warehouses", id), nil, nil)
}
