// Copyright (c) 2025 Inventa
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import "time"

// Product is a stock item tracked per warehouse.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Barcode     string    `json:"barcode,omitempty"`
	CategoryID  string    `json:"categoryId,omitempty"`
	WarehouseID string    `json:"warehouseId,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	CostPrice   float64   `json:"costPrice"`
	SalePrice   float64   `json:"salePrice"`
	Quantity    float64   `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// Warehouse is a stock location.
type Warehouse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// Category groups products.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SaleItem is one line of a sale.
type SaleItem struct {
	ProductID string  `json:"productId"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Sale is a completed sales transaction.
type Sale struct {
	ID            string     `json:"id"`
	Items         []SaleItem `json:"items"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	CustomerName  string     `json:"customerName,omitempty"`
	WarehouseID   string     `json:"warehouseId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt,omitempty"`
}

// Transfer moves stock between warehouses.
type Transfer struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	FromWarehouseID string    `json:"fromWarehouseId"`
	ToWarehouseID   string    `json:"toWarehouseId"`
	Quantity        float64   `json:"quantity"`
	Note            string    `json:"note,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

// Expense is a business expense entry.
type Expense struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category,omitempty"`
	Note     string    `json:"note,omitempty"`
	Date     time.Time `json:"date,omitempty"`
}

// User is a member of the business account.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	BusinessID string `json:"businessId"`
}

// Business is the account-level profile.
type Business struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ProductSales is one row of the top-products report.
type ProductSales struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Total     float64 `json:"total"`
}

// SalesSummary aggregates sales over a period.
type SalesSummary struct {
	From        time.Time      `json:"from"`
	To          time.Time      `json:"to"`
	Total       float64        `json:"total"`
	Count       int            `json:"count"`
	TopProducts []ProductSales `json:"topProducts,omitempty"`
}

// ExpenseSummary aggregates expenses over a period.
type ExpenseSummary struct {
	From       time.Time          `json:"from"`
	To         time.Time          `json:"to"`
	Total      float64            `json:"total"`
	Count      int                `json:"count"`
	ByCategory map[string]float64 `json:"byCategory,omitempty"`
}
