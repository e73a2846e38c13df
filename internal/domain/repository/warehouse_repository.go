package repository

import "github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"

// WarehouseRepository is the persistence port for Warehouse.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error)
}
