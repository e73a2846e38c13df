package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock movement types.
const (
	MovementTypeInward   = "inward"
	MovementTypeOutward  = "outward"
	MovementTypeDamage   = "damage" // scrap moves
	MovementTypeAdjust   = "adjustment"
	MovementTypeTransfer = "transfer"
)

// MovementImpact snapshots the item's balances around a movement.
type MovementImpact struct {
	StockBefore     decimal.Decimal
	StockAfter      decimal.Decimal
	AvailableBefore decimal.Decimal
	AvailableAfter  decimal.Decimal
}

// ReferenceDocument points a movement back at the document that caused it
// (a scrap record, a dispatch, a purchase receipt).
type ReferenceDocument struct {
	Type   string // scrap, dispatch, purchase, production
	ID     string
	Number string
}

// StockMovement is an append-only audit entry recording one change to an
// inventory item's quantity. Never mutated or deleted after creation.
type StockMovement struct {
	ID              string
	MovementNumber  string
	CompanyID       string
	InventoryItemID string
	WarehouseID     string
	MovementType    string
	Quantity        decimal.Decimal
	UnitCost        decimal.Decimal
	TotalValue      decimal.Decimal
	StockImpact     MovementImpact
	Reference       ReferenceDocument
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
}
