// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// ProductsService manages the product catalog.
type ProductsService struct {
	c Client
}

func (s *ProductsService) List(ctx context.Context, opts ListOptions) ([]Product, error) {
	var out []Product
	if err := s.c.Do(ctx, http.MethodGet, "/products"+opts.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductsService) Get(ctx context.Context, id string) (*Product, error) {
	var out Product
	if err := s.c.Do(ctx, http.MethodGet, resourcePath("/products", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductsService) Create(ctx context.Context, p Product) (*Product, error) {
	var out Product
	if err := s.c.Do(ctx, http.MethodPost, "/products", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductsService) Update(ctx context.Context, id string, p Product) (*Product, error) {
	var out Product
	if err := s.c.Do(ctx, http.MethodPut, resourcePath("/products", id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductsService) Delete(ctx context.Context, id string) error {
	return s.c.Do(ctx, http.MethodDelete, resourcePath("/products", id), nil, nil)
}
