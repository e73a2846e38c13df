package repository

import "github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"

// CompanyRepository is the persistence port for Company (DIP).
// Implementations live in infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByCode(code string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}
