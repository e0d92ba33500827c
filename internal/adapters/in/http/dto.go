package http

import "time"

// Error is the common error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewItem is the request body for a line item, either within a new order or
// when adding or updating a single item. Money fields travel as decimal
// strings ("149.50") so clients never deal in minor units.
type NewItem struct {
	DesignName string `json:"designName"`
	SizeText   string `json:"sizeText"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unitPrice"`
}

// NewOrder is the request body for creating an order.
type NewOrder struct {
	Brand           string    `json:"brand"`
	UsageType       string    `json:"usageType"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerAddress string    `json:"customerAddress"`
	CustomerCity    string    `json:"customerCity"`
	DeliveryFee     string    `json:"deliveryFee"`
	InternalNotes   string    `json:"internalNotes"`
	Items           []NewItem `json:"items"`
}

// Created reports the server-assigned ID of a newly created resource.
type Created struct {
	ID string `json:"id"`
}

// AdvanceStatus is the request body for an order status transition.
type AdvanceStatus struct {
	Status string `json:"status"`
}

// ChangeItemStatus is the request body for an item production status change.
type ChangeItemStatus struct {
	Status string `json:"status"`
}

// UpdateNotes is the request body for replacing an order's internal notes.
type UpdateNotes struct {
	InternalNotes string `json:"internalNotes"`
}

// OrderSummary is one row on the order board.
type OrderSummary struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Brand         string    `json:"brand"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	Status        string    `json:"status"`
	ExpectedCOD   string    `json:"expectedCod"`
	ItemCount     int       `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OrderItem is one line item within an order detail.
type OrderItem struct {
	ID         string `json:"id"`
	DesignName string `json:"designName"`
	SizeText   string `json:"sizeText"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unitPrice"`
	LineTotal  string `json:"lineTotal"`
	Status     string `json:"status"`
	BatchCode  string `json:"batchCode,omitempty"`
}

// Order is the full order detail.
type Order struct {
	ID              string      `json:"id"`
	Code            string      `json:"code"`
	Brand           string      `json:"brand"`
	UsageType       string      `json:"usageType"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress string      `json:"customerAddress"`
	CustomerCity    string      `json:"customerCity"`
	Status          string      `json:"status"`
	ExpectedCOD     string      `json:"expectedCod"`
	DeliveryFee     string      `json:"deliveryFee"`
	InternalNotes   string      `json:"internalNotes"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// ProductionItem is one row on the production floor view.
type ProductionItem struct {
	ItemID     string `json:"itemId"`
	OrderID    string `json:"orderId"`
	OrderCode  string `json:"orderCode"`
	Brand      string `json:"brand"`
	BatchCode  string `json:"batchCode,omitempty"`
	DesignName string `json:"designName"`
	SizeText   string `json:"sizeText"`
	Quantity   int    `json:"quantity"`
	Status     string `json:"status"`
}
