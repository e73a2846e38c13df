package repository

import "github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"

// StageEntryFilter narrows stage-entry listings.
type StageEntryFilter struct {
	LotNumber string
	Status    string
}

// StageEntryRepository is the persistence port for production stage entries.
// All reads are company-scoped; lot-resolver reads are deliberately not
// transactional with concurrent entry writes (a lightly stale available
// meter is acceptable, the operator re-submits if rejected downstream).
type StageEntryRepository interface {
	Create(e *entity.StageEntry) error
	GetByID(id string) (*entity.StageEntry, error)
	Update(e *entity.StageEntry) error
	List(companyID string, module entity.Module, f StageEntryFilter, limit, offset int) ([]*entity.StageEntry, error)

	// FirstByLot returns the oldest entry of a module for the lot, or nil.
	FirstByLot(companyID, lotNumber string, module entity.Module) (*entity.StageEntry, error)

	// ListByLot returns every entry of a module for the lot.
	ListByLot(companyID, lotNumber string, module entity.Module) ([]*entity.StageEntry, error)
}
