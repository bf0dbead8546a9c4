// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClient records the calls made through it and replies with canned
// JSON.
type fakeClient struct {
	method string
	path   string
	in     any
	reply  string
	err    error
}

func (f *fakeClient) Do(_ context.Context, method, path string, in, out any) error {
	f.method, f.path, f.in = method, path, in
	if f.err != nil {
		return f.err
	}
	if out == nil || f.reply == "" {
		return nil
	}
	return json.Unmarshal([]byte(f.reply), out)
}

func TestListOptionsQuery(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want string
	}{
		{name: "empty", opts: ListOptions{}, want: ""},
		{name: "limit only", opts: ListOptions{Limit: 20}, want: "?limit=20"},
		{name: "all set", opts: ListOptions{Limit: 10, Offset: 30, Search: "usb cable"}, want: "?limit=10&offset=30&search=usb+cable"},
		{name: "offset only", opts: ListOptions{Offset: 5}, want: "?offset=5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.opts.query())
		})
	}
}

func TestResourcePathEscapesID(t *testing.T) {
	require.Equal(t, "/products/a%2Fb", resourcePath("/products", "a/b"))
}

func TestProductsList(t *testing.T) {
	fc := &fakeClient{reply: `[{"id":"p1","name":"Notebook","sku":"NB-1","quantity":3,"salePrice":9.5}]`}
	svc := New(fc)

	products, err := svc.Products.List(context.Background(), ListOptions{Limit: 10, Search: "note"})
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, fc.method)
	require.Equal(t, "/products?limit=10&search=note", fc.path)
	require.Len(t, products, 1)
	require.Equal(t, "Notebook", products[0].Name)
}

func TestSalesCreateSendsPayload(t *testing.T) {
	fc := &fakeClient{reply: `{"id":"s1","total":19.0}`}
	svc := New(fc)

	sale, err := svc.Sales.Create(context.Background(), Sale{
		Items: []SaleItem{{ProductID: "p1", Quantity: 2, UnitPrice: 9.5}},
	})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, fc.method)
	require.Equal(t, "/sales", fc.path)
	require.Equal(t, "s1", sale.ID)

	sent, ok := fc.in.(Sale)
	require.True(t, ok)
	require.Len(t, sent.Items, 1)
	require.Equal(t, "p1", sent.Items[0].ProductID)
}

func TestReportsPeriodQuery(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	fc := &fakeClient{reply: `{"total":100,"count":4}`}
	svc := New(fc)

	summary, err := svc.Reports.SalesSummary(context.Background(), from, to)
	require.NoError(t, err)
	require.Equal(t, "/reports/sales?from=2025-01-01T00%3A00%3A00Z&to=2025-01-31T00%3A00%3A00Z", fc.path)
	require.Equal(t, 4, summary.Count)
}

func TestAuthLoginDecodesResponse(t *testing.T) {
	fc := &fakeClient{reply: `{"accessToken":"tok1","user":{"id":"u1","name":"Ada","role":"owner","businessId":"b1"}}`}
	svc := New(fc)

	resp, err := svc.Auth.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "/auth/login", fc.path)
	require.Equal(t, "tok1", resp.AccessToken)
	require.Equal(t, "Ada", resp.User.Name)

	req, ok := fc.in.(LoginRequest)
	require.True(t, ok)
	require.Equal(t, "a@b.c", req.Email)
}

func TestUsersDelete(t *testing.T) {
	fc := &fakeClient{}
	svc := New(fc)

	require.NoError(t, svc.Users.Delete(context.Background(), "u9"))
	require.Equal(t, http.MethodDelete, fc.method)
	require.Equal(t, "/users/u9", fc.path)
}
