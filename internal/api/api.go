// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api provides typed service wrappers over the gateway client, one
// per backend resource. Every method takes a context first and returns
// decoded structs; error classification (offline, network, auth) is the
// gateway client's job, so these wrappers stay thin.
package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Client is the transport the services ride on. Implemented by
// *apiclient.Client; tests substitute fakes.
type Client interface {
	Do(ctx context.Context, method, path string, in, out any) error
}

// API groups the per-resource services.
type API struct {
	Auth       *AuthService
	Products   *ProductsService
	Warehouses *WarehousesService
	Categories *CategoriesService
	Sales      *SalesService
	Transfers  *TransfersService
	Expenses   *ExpensesService
	Reports    *ReportsService
	Users      *UsersService
	Business   *BusinessService
}

// New wires all services onto one gateway client.
func New(c Client) *API {
	return &API{
		Auth:       &AuthService{c: c},
		Products:   &ProductsService{c: c},
		Warehouses: &WarehousesService{c: c},
		Categories: &CategoriesService{c: c},
		Sales:      &SalesService{c: c},
		Transfers:  &TransfersService{c: c},
		Expenses:   &ExpensesService{c: c},
		Reports:    &ReportsService{c: c},
		Users:      &UsersService{c: c},
		Business:   &BusinessService{c: c},
	}
}

// ListOptions are the common list-call parameters. Zero values are omitted
// from the query string.
type ListOptions struct {
	Limit  int
	Offset int
	Search string
}

// query renders the options as a query string, with a leading "?" when any
// parameter is set.
func (o ListOptions) query() string {
	v := url.Values{}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		v.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.Search != "" {
		v.Set("search", o.Search)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// resourcePath joins a collection path and an id, escaping the id.
func resourcePath(collection, id string) string {
	return fmt.Sprintf("%s/%s", collection, url.PathEscape(id))
}
