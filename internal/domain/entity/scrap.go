package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scrap reasons.
const (
	ScrapReasonDamaged         = "damaged"
	ScrapReasonDefective       = "defective"
	ScrapReasonExpired         = "expired"
	ScrapReasonObsolete        = "obsolete"
	ScrapReasonProductionWaste = "production_waste"
	ScrapReasonQualityReject   = "quality_reject"
	ScrapReasonOther           = "other"
)

// Scrap record lifecycle.
const (
	ScrapStatusActive    = "active"
	ScrapStatusDisposed  = "disposed"
	ScrapStatusCancelled = "cancelled"
)

// Approval states for a scrap record.
const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
)

// ValidScrapReason reports whether reason is one of the known scrap reasons.
func ValidScrapReason(reason string) bool {
	switch reason {
	case ScrapReasonDamaged, ScrapReasonDefective, ScrapReasonExpired,
		ScrapReasonObsolete, ScrapReasonProductionWaste,
		ScrapReasonQualityReject, ScrapReasonOther:
		return true
	}
	return false
}

// StockImpact snapshots the inventory and scrap-ledger balances around a
// scrap move. ScrapStockBefore/After are advisory (recorded, not gating).
type StockImpact struct {
	InventoryStockBefore decimal.Decimal
	InventoryStockAfter  decimal.Decimal
	ScrapStockBefore     decimal.Decimal
	ScrapStockAfter      decimal.Decimal
}

// Approval state of a scrap record. Stock is decremented at move time
// regardless of approval state.
type Approval struct {
	Status   string // pending, approved
	Required bool
}

// Disposal records what ultimately happened to scrapped material. Once
// Disposed is set the record is terminal for stock purposes: cancelling it
// no longer restores inventory.
type Disposal struct {
	Disposed       bool
	DisposalMethod string // sold, donated, recycled, destroyed
	DisposalValue  decimal.Decimal
	DisposalNotes  string
	DisposalDate   *time.Time
	DisposedBy     string
}

// Scrap is a ledger entry for inventory removed from usable stock.
// Records are never physically deleted; cancellation flips Status.
type Scrap struct {
	ID                 string
	ScrapNumber        string // SCRAP-{companyCode}-{YYYYMMDD}-{seq}, unique
	CompanyID          string
	InventoryItemID    string
	WarehouseID        string
	Quantity           decimal.Decimal
	ScrapReason        string
	ScrapReasonDetails string
	UnitCost           decimal.Decimal
	TotalValue         decimal.Decimal // UnitCost * Quantity
	StockImpact        StockImpact
	Approval           Approval
	Disposal           Disposal
	Status             string // active, disposed, cancelled
	Notes              string
	ScrapDate          time.Time
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
