package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStock holds the stock figures of an inventory item.
// AvailableStock and TotalValue are derived; Recompute keeps them consistent.
type ItemStock struct {
	CurrentStock   decimal.Decimal
	ReservedStock  decimal.Decimal
	AvailableStock decimal.Decimal // CurrentStock - ReservedStock, floored at 0
	AverageCost    decimal.Decimal
	CostPrice      decimal.Decimal
	TotalValue     decimal.Decimal // CurrentStock * AverageCost
}

// ItemTracking holds movement bookkeeping for an inventory item.
type ItemTracking struct {
	TotalOutward     decimal.Decimal
	LastStockUpdate  time.Time
	LastMovementDate time.Time
}

// ItemLocation is the quantity of an item held in one warehouse.
type ItemLocation struct {
	WarehouseID string
	Quantity    decimal.Decimal
}

// InventoryItem is a stockable item owned by a company. It is mutated by
// every stock-affecting operation (scrap, dispatch, production consumption)
// and never deleted while referenced.
type InventoryItem struct {
	ID        string
	CompanyID string
	ItemCode  string
	ItemName  string
	Unit      string
	Stock     ItemStock
	Tracking  ItemTracking
	Locations []ItemLocation
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recompute refreshes the derived stock fields after CurrentStock,
// ReservedStock or AverageCost changed.
func (s *ItemStock) Recompute() {
	s.AvailableStock = s.CurrentStock.Sub(s.ReservedStock)
	if s.AvailableStock.IsNegative() {
		s.AvailableStock = decimal.Zero
	}
	s.TotalValue = s.CurrentStock.Mul(s.AverageCost)
}

// DeductLocation subtracts qty from the given warehouse location, floored at
// zero. Unknown warehouses are ignored (no location row to adjust).
func (i *InventoryItem) DeductLocation(warehouseID string, qty decimal.Decimal) {
	for idx := range i.Locations {
		if i.Locations[idx].WarehouseID != warehouseID {
			continue
		}
		i.Locations[idx].Quantity = i.Locations[idx].Quantity.Sub(qty)
		if i.Locations[idx].Quantity.IsNegative() {
			i.Locations[idx].Quantity = decimal.Zero
		}
		return
	}
}
