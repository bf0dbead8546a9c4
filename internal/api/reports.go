// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// ReportsService fetches aggregated sales and expense summaries.
type ReportsService struct {
	c Client
}

// periodQuery renders from/to as RFC 3339 query parameters.
func periodQuery(from, to time.Time) string {
	v := url.Values{}
	if !from.IsZero() {
		v.Set("from", from.Format(time.RFC3339))
	}
	if !to.IsZero() {
		v.Set("to", to.Format(time.RFC3339))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (s *ReportsService) SalesSummary(ctx context.Context, from, to time.Time) (*SalesSummary, error) {
	var out SalesSummary
	if err := s.c.Do(ctx, http.MethodGet, "/reports/sales"+periodQuery(from, to), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ReportsService) ExpenseSummary(ctx context.Context, from, to time.Time) (*ExpenseSummary, error) {
	var out ExpenseSummary
	if err := s.c.Do(ctx, http.MethodGet, "/reports/expenses"+periodQuery(from, to), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
