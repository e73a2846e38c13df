package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/dto"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
)

// CompanyUseCase applies business rules for companies.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case with its persistence port.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registers a new company. Returns domain.ErrDuplicate when the
// company code is already taken.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*entity.Company, error) {
	if in.CompanyCode == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.CompanyCode)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		ID:          uuid.New().String(),
		CompanyCode: in.CompanyCode,
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		GSTNumber:   in.GSTNumber,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetByID returns one company or domain.ErrNotFound.
func (uc *CompanyUseCase) GetByID(id string) (*entity.Company, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

// List returns companies with pagination.
func (uc *CompanyUseCase) List(limit, offset int) ([]*entity.Company, error) {
	return uc.repo.List(limit, offset)
}
