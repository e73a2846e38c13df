package repository

import "github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"

// InventoryItemRepository is the persistence port for InventoryItem.
// GetForUpdate must lock the item row for the remainder of the surrounding
// transaction (SELECT FOR UPDATE); it is the serialization point for every
// stock mutation.
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetForUpdate(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	List(companyID string, limit, offset int) ([]*entity.InventoryItem, error)
}
