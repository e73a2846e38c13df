package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
)

// ScrapFilter narrows scrap listings.
type ScrapFilter struct {
	InventoryItemID string
	Status          string
	Reason          string
	From, To        *time.Time
}

// ReasonBreakdown is one row of the by-reason scrap aggregation.
type ReasonBreakdown struct {
	Reason   string
	Count    int
	Quantity decimal.Decimal
	Value    decimal.Decimal
}

// ItemBreakdown is one row of the by-item scrap aggregation.
type ItemBreakdown struct {
	InventoryItemID string
	ItemName        string
	Count           int
	Quantity        decimal.Decimal
	Value           decimal.Decimal
}

// ScrapSummary aggregates active, non-disposed scrap in a date window.
// Raw query result; the use case converts it into a DTO.
type ScrapSummary struct {
	Count         int
	TotalQuantity decimal.Decimal
	TotalValue    decimal.Decimal
	ByReason      []ReasonBreakdown
	TopItems      []ItemBreakdown
}

// ScrapRepository is the persistence port for the scrap ledger.
// Create returns domain.ErrDuplicate when the generated scrap number
// collides with an existing row (unique constraint on scrap_number).
type ScrapRepository interface {
	Create(s *entity.Scrap) error
	GetByID(id string) (*entity.Scrap, error)
	Update(s *entity.Scrap) error
	List(companyID string, f ScrapFilter, limit, offset int) ([]*entity.Scrap, error)

	// SumActiveByItem totals the quantity of active, non-disposed scrap
	// records for one inventory item (the advisory scrapStockBefore figure).
	SumActiveByItem(inventoryItemID string) (decimal.Decimal, error)

	// CountByCompanyOnDay counts scrap rows created by a company on the
	// given calendar day; feeds the per-day sequence in scrap numbers.
	CountByCompanyOnDay(companyID string, day time.Time) (int, error)

	Summary(companyID string, from, to *time.Time) (*ScrapSummary, error)
}
