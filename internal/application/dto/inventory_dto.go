package dto

import "github.com/shopspring/decimal"

// CreateInventoryItemRequest body for POST /api/inventory/items.
type CreateInventoryItemRequest struct {
	ItemCode     string          `json:"item_code"`
	ItemName     string          `json:"item_name"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	AverageCost  decimal.Decimal `json:"average_cost"`
	CostPrice    decimal.Decimal `json:"cost_price"`
}

// CreateWarehouseRequest body for POST /api/warehouses.
type CreateWarehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// CreateCompanyRequest body for POST /api/companies.
type CreateCompanyRequest struct {
	CompanyCode string `json:"company_code"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	GSTNumber   string `json:"gst_number,omitempty"`
}
