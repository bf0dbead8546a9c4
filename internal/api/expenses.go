// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
)

// ExpensesService tracks business expenses.
type ExpensesService struct {
	c Client
}

func (s *ExpensesService) List(ctx context.Context, opts ListOptions) ([]Expense, error) {
	var out []Expense
	if err := s.c.Do(ctx, http.MethodGet, "/expenses"+opts.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ExpensesService) Create(ctx context.Context, e Expense) (*Expense, error) {
	var out Expense
	if err := s.c.Do(ctx, http.MethodPost, "/expenses", e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ExpensesService) Update(ctx context.Context, id string, e Expense) (*Expense, error) {
	var out Expense
	if err := s.c.Do(ctx, http.MethodPut, resourcePath("/expenses", id), e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ExpensesService) Delete(ctx context.Context, id string) error {
	return s.c.Do(ctx, http.MethodDelete, resourcePath("/expenses", id), nil, nil)
}
