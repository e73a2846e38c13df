package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/dto"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
	domainprod "github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/production"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
)

// EntryUseCase creates and updates production stage entries. Updates carry
// absolute meter values; processed and loss never decrease once recorded,
// and processed+loss may never exceed input.
type EntryUseCase struct {
	entries repository.StageEntryRepository

	now func() time.Time
}

// NewEntryUseCase builds the use case.
func NewEntryUseCase(entries repository.StageEntryRepository) *EntryUseCase {
	return &EntryUseCase{entries: entries, now: time.Now}
}

// CreateEntry logs a lot into a stage. Status derives from the meters:
// an entry with only input is pending, partially processed is in_progress,
// fully consumed is completed.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, companyID, userID string, in dto.CreateStageEntryRequest) (*entity.StageEntry, error) {
	if companyID == "" || in.LotNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	module := entity.Module(in.Module)
	if !domainprod.IsValid(module) {
		return nil, &domain.InvalidModuleError{Module: in.Module}
	}
	if !in.InputMeter.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	e := &entity.StageEntry{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Module:         module,
		LotNumber:      in.LotNumber,
		PartyName:      in.PartyName,
		CustomerID:     in.CustomerID,
		Quality:        in.Quality,
		InputMeter:     in.InputMeter,
		ProcessedMeter: in.ProcessedMeter,
		LossMeter:      in.LossMeter,
		Remarks:        in.Remarks,
		EntryDate:      now,
		CreatedBy:      userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if !e.ValidateMeters() {
		return nil, domain.ErrInvalidInput
	}
	e.DeriveStatus()
	if err := uc.entries.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

// RecordOutput replaces the processed and loss meters of an entry with the
// supplied absolute values. Reducing either below its recorded value is
// rejected (ErrConflict): transitions are monotonic.
func (uc *EntryUseCase) RecordOutput(ctx context.Context, companyID, entryID string, processed, loss decimal.Decimal) (*entity.StageEntry, error) {
	e, err := uc.getOwned(companyID, entryID)
	if err != nil {
		return nil, err
	}
	if processed.IsNegative() || loss.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if processed.LessThan(e.ProcessedMeter) || loss.LessThan(e.LossMeter) {
		return nil, domain.ErrConflict
	}
	if processed.Add(loss).GreaterThan(e.InputMeter) {
		return nil, domain.ErrInvalidInput
	}

	e.ProcessedMeter = processed
	e.LossMeter = loss
	e.DeriveStatus()
	e.UpdatedAt = uc.now()
	if err := uc.entries.Update(e); err != nil {
		return nil, err
	}
	return e, nil
}

// QuickComplete marks the remaining input as processed with no further
// loss, completing the entry in one step.
func (uc *EntryUseCase) QuickComplete(ctx context.Context, companyID, entryID string) (*entity.StageEntry, error) {
	e, err := uc.getOwned(companyID, entryID)
	if err != nil {
		return nil, err
	}
	e.ProcessedMeter = e.InputMeter.Sub(e.LossMeter)
	e.DeriveStatus()
	e.UpdatedAt = uc.now()
	if err := uc.entries.Update(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Get returns one stage entry, enforcing tenant ownership.
func (uc *EntryUseCase) Get(ctx context.Context, companyID, entryID string) (*entity.StageEntry, error) {
	return uc.getOwned(companyID, entryID)
}

// List returns stage entries of one module, optionally filtered by lot and
// status.
func (uc *EntryUseCase) List(ctx context.Context, companyID string, module entity.Module, f repository.StageEntryFilter, limit, offset int) ([]*entity.StageEntry, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domainprod.IsValid(module) {
		return nil, &domain.InvalidModuleError{Module: string(module)}
	}
	return uc.entries.List(companyID, module, f, limit, offset)
}

func (uc *EntryUseCase) getOwned(companyID, entryID string) (*entity.StageEntry, error) {
	if companyID == "" || entryID == "" {
		return nil, domain.ErrInvalidInput
	}
	e, err := uc.entries.GetByID(entryID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if e.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return e, nil
}
