package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/dto"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
)

// InventoryItemUseCase applies business rules for inventory items. Stock
// mutation lives in the scrap service (and, beyond this core, in dispatch
// and production consumption); this use case only creates and reads.
type InventoryItemUseCase struct {
	items     repository.InventoryItemRepository
	movements repository.StockMovementRepository
}

// NewInventoryItemUseCase builds the use case with its persistence ports.
func NewInventoryItemUseCase(items repository.InventoryItemRepository, movements repository.StockMovementRepository) *InventoryItemUseCase {
	return &InventoryItemUseCase{items: items, movements: movements}
}

// Create registers an inventory item with its opening stock.
func (uc *InventoryItemUseCase) Create(companyID string, in dto.CreateInventoryItemRequest) (*entity.InventoryItem, error) {
	if companyID == "" || in.ItemCode == "" || in.ItemName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock.IsNegative() || in.AverageCost.IsNegative() || in.CostPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ItemCode:  in.ItemCode,
		ItemName:  in.ItemName,
		Unit:      in.Unit,
		Stock: entity.ItemStock{
			CurrentStock: in.CurrentStock,
			AverageCost:  in.AverageCost,
			CostPrice:    in.CostPrice,
		},
		Tracking: entity.ItemTracking{
			LastStockUpdate: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	item.Stock.Recompute()
	if err := uc.items.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID returns one item, enforcing tenant ownership.
func (uc *InventoryItemUseCase) GetByID(companyID, id string) (*entity.InventoryItem, error) {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return item, nil
}

// List returns the company's items with pagination.
func (uc *InventoryItemUseCase) List(companyID string, limit, offset int) ([]*entity.InventoryItem, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.items.List(companyID, limit, offset)
}

// ListMovements returns the audit trail of one item, newest first.
func (uc *InventoryItemUseCase) ListMovements(companyID, itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	if _, err := uc.GetByID(companyID, itemID); err != nil {
		return nil, err
	}
	return uc.movements.ListByItem(itemID, from, to, limit, offset)
}
