package repository

import (
	"time"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
)

// StockMovementRepository is the persistence port for the append-only
// stock-movement audit trail. There is no Update or Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByItem(inventoryItemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	CountByCompanyOnDay(companyID string, day time.Time) (int, error)
}
