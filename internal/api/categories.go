// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// CategoriesService manages product categories.
type CategoriesService struct {
	c Client
}

func (s *CategoriesService) List(ctx context.Context, opts ListOptions) ([]Category, error) {
	var out []Category
	if err := s.c.Do(ctx, http.MethodGet, "/categories"+opts.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CategoriesService) Create(ctx context.Context, c Category) (*Category, error) {
	var out Category
	if err := s.c.Do(ctx, http.MethodPost, "/categories", c, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CategoriesService) Update(ctx context.Context, id string, c Category) (*Category, error) {
	var out Category
	if err := s.c.Do(ctx, http.MethodPut, resourcePath("/categories", id), c, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CategoriesService) Delete(ctx context.Context, id string) error {
	return s.c.Do(ctx, http.MethodDelete, resourcePath("/categories", id), nil, nil)
}
