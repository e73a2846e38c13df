package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoveToScrapRequest body for POST /api/scrap/inventory/:inventoryItemId/move.
type MoveToScrapRequest struct {
	Quantity           decimal.Decimal  `json:"quantity"`
	ScrapReason        string           `json:"scrap_reason"`
	ScrapReasonDetails string           `json:"scrap_reason_details,omitempty"`
	WarehouseID        string           `json:"warehouse_id,omitempty"`
	UnitCost           *decimal.Decimal `json:"unit_cost,omitempty"`
	ApprovalRequired   bool             `json:"approval_required,omitempty"`
	Notes              string           `json:"notes,omitempty"`
}

// UpdateScrapRequest body for PUT /api/scrap/:id. Quantities and stock
// impact are immutable after creation; only descriptive fields change.
type UpdateScrapRequest struct {
	ScrapReasonDetails *string `json:"scrap_reason_details,omitempty"`
	Notes              *string `json:"notes,omitempty"`
}

// DisposeScrapRequest body for POST /api/scrap/:id/dispose.
type DisposeScrapRequest struct {
	DisposalMethod string          `json:"disposal_method"`
	DisposalValue  decimal.Decimal `json:"disposal_value"`
	DisposalNotes  string          `json:"disposal_notes,omitempty"`
}

// ScrapListQuery filters for GET /api/scrap.
type ScrapListQuery struct {
	InventoryItemID string `query:"inventory_item_id"`
	Status          string `query:"status"`
	Reason          string `query:"reason"`
	DateFrom        string `query:"date_from"`
	DateTo          string `query:"date_to"`
	PageRequest
}

// ScrapReasonBreakdownDTO one by-reason row of the scrap summary.
type ScrapReasonBreakdownDTO struct {
	Reason   string          `json:"reason"`
	Count    int             `json:"count"`
	Quantity decimal.Decimal `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// ScrapItemBreakdownDTO one by-item row of the scrap summary (top 10).
type ScrapItemBreakdownDTO struct {
	InventoryItemID string          `json:"inventory_item_id"`
	ItemName        string          `json:"item_name"`
	Count           int             `json:"count"`
	Quantity        decimal.Decimal `json:"quantity"`
	Value           decimal.Decimal `json:"value"`
}

// ScrapSummaryResponse body for GET /api/scrap/summary.
type ScrapSummaryResponse struct {
	Count         int                       `json:"count"`
	TotalQuantity decimal.Decimal           `json:"total_quantity"`
	TotalValue    decimal.Decimal           `json:"total_value"`
	ByReason      []ScrapReasonBreakdownDTO `json:"by_reason"`
	TopItems      []ScrapItemBreakdownDTO   `json:"top_items"`
	DateFrom      *time.Time                `json:"date_from,omitempty"`
	DateTo        *time.Time                `json:"date_to,omitempty"`
}
