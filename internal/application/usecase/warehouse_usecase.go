package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/dto"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
)

// WarehouseUseCase applies business rules for warehouses.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase builds the use case with its persistence port.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create registers a warehouse under the calling company.
func (uc *WarehouseUseCase) Create(companyID string, in dto.CreateWarehouseRequest) (*entity.Warehouse, error) {
	if companyID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// GetByID returns one warehouse, enforcing tenant ownership.
func (uc *WarehouseUseCase) GetByID(companyID, id string) (*entity.Warehouse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if warehouse.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return warehouse, nil
}

// List returns the company's warehouses with pagination.
func (uc *WarehouseUseCase) List(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.ListByCompany(companyID, limit, offset)
}
