package production_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/production"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
)

const (
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testLot       = "LOT-2024-001"
)

// fakeEntryRepo is an in-memory StageEntryRepository that preserves
// insertion order (FirstByLot returns the oldest entry).
type fakeEntryRepo struct {
	entries []*entity.StageEntry
	err     error
}

var _ repository.StageEntryRepository = (*fakeEntryRepo)(nil)

func (f *fakeEntryRepo) Create(e *entity.StageEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeEntryRepo) GetByID(id string) (*entity.StageEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEntryRepo) Update(e *entity.StageEntry) error {
	if f.err != nil {
		return f.err
	}
	for i, old := range f.entries {
		if old.ID == e.ID {
			f.entries[i] = e
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeEntryRepo) List(companyID string, module entity.Module, filter repository.StageEntryFilter, limit, offset int) ([]*entity.StageEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.StageEntry
	for _, e := range f.entries {
		if e.CompanyID != companyID || e.Module != module {
			continue
		}
		if filter.LotNumber != "" && e.LotNumber != filter.LotNumber {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEntryRepo) FirstByLot(companyID, lotNumber string, module entity.Module) (*entity.StageEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.entries {
		if e.CompanyID == companyID && e.LotNumber == lotNumber && e.Module == module {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEntryRepo) ListByLot(companyID, lotNumber string, module entity.Module) ([]*entity.StageEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.StageEntry
	for _, e := range f.entries {
		if e.CompanyID == companyID && e.LotNumber == lotNumber && e.Module == module {
			out = append(out, e)
		}
	}
	return out, nil
}

func entry(module entity.Module, lot string, input, processed, loss int64) *entity.StageEntry {
	e := &entity.StageEntry{
		ID:             lot + "-" + string(module),
		CompanyID:      testCompanyID,
		Module:         module,
		LotNumber:      lot,
		InputMeter:     decimal.NewFromInt(input),
		ProcessedMeter: decimal.NewFromInt(processed),
		LossMeter:      decimal.NewFromInt(loss),
	}
	e.DeriveStatus()
	return e
}

// ──────────────────────────────────────────────────────────────────────────────
// LotDetails
// ──────────────────────────────────────────────────────────────────────────────

func TestLotDetails_InheritsFromEarliestStage(t *testing.T) {
	repo := &fakeEntryRepo{}
	printing := entry(entity.ModulePrinting, testLot, 500, 480, 20)
	printing.PartyName = "Shree Textiles"
	printing.CustomerID = "cust-1"
	printing.Quality = "60x60 cotton"
	hazer := entry(entity.ModuleHazer, testLot, 480, 480, 0)
	hazer.PartyName = "someone else"
	repo.entries = append(repo.entries, hazer, printing) // insertion order irrelevant

	r := production.NewLotResolver(repo)
	details, err := r.LotDetails(context.Background(), testCompanyID, testLot)
	require.NoError(t, err)
	require.NotNil(t, details)

	// Printing precedes hazer in the pipeline, so its entry wins.
	assert.Equal(t, "Shree Textiles", details.PartyName)
	assert.Equal(t, "cust-1", details.CustomerID)
	assert.Equal(t, "60x60 cotton", details.Quality)
	assert.Equal(t, string(entity.ModulePrinting), details.SourceModule)
}

// A lot no stage has seen yet resolves to nil without error: the client
// renders an empty form.
func TestLotDetails_UnknownLot(t *testing.T) {
	r := production.NewLotResolver(&fakeEntryRepo{})
	details, err := r.LotDetails(context.Background(), testCompanyID, "LOT-UNKNOWN")
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestLotDetails_TenantIsolation(t *testing.T) {
	repo := &fakeEntryRepo{}
	repo.entries = append(repo.entries, entry(entity.ModulePrinting, testLot, 500, 480, 20))

	r := production.NewLotResolver(repo)
	details, err := r.LotDetails(context.Background(), "another-company", testLot)
	require.NoError(t, err)
	assert.Nil(t, details, "entries of other companies must stay invisible")
}

// ──────────────────────────────────────────────────────────────────────────────
// AvailableInputMeter
// ──────────────────────────────────────────────────────────────────────────────

func TestAvailableInputMeter_UpstreamOutputMinusClaims(t *testing.T) {
	repo := &fakeEntryRepo{}
	repo.entries = append(repo.entries,
		entry(entity.ModulePrinting, testLot, 500, 450, 50),
		entry(entity.ModuleHazer, testLot, 300, 0, 0),
	)

	r := production.NewLotResolver(repo)
	got, err := r.AvailableInputMeter(context.Background(), testCompanyID, testLot, entity.ModuleHazer)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(150)), "450 produced - 300 claimed, got %s", got)
}

func TestAvailableInputMeter_SumsMultipleUpstreamEntries(t *testing.T) {
	repo := &fakeEntryRepo{}
	repo.entries = append(repo.entries,
		entry(entity.ModulePrinting, testLot, 300, 280, 20),
		entry(entity.ModulePrinting, testLot, 200, 200, 0),
	)

	r := production.NewLotResolver(repo)
	got, err := r.AvailableInputMeter(context.Background(), testCompanyID, testLot, entity.ModuleHazer)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(480)), "280+200 produced, got %s", got)
}

// Over-claimed lots clamp to zero rather than reporting a negative
// availability.
func TestAvailableInputMeter_ClampsAtZero(t *testing.T) {
	repo := &fakeEntryRepo{}
	repo.entries = append(repo.entries,
		entry(entity.ModulePrinting, testLot, 100, 100, 0),
		entry(entity.ModuleHazer, testLot, 120, 0, 0),
	)

	r := production.NewLotResolver(repo)
	got, err := r.AvailableInputMeter(context.Background(), testCompanyID, testLot, entity.ModuleHazer)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestAvailableInputMeter_FirstStageAlwaysZero(t *testing.T) {
	repo := &fakeEntryRepo{}
	repo.entries = append(repo.entries, entry(entity.ModuleBleaching, testLot, 100, 100, 0))

	r := production.NewLotResolver(repo)
	got, err := r.AvailableInputMeter(context.Background(), testCompanyID, testLot, entity.ModuleBleaching)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestAvailableInputMeter_UnknownModule(t *testing.T) {
	r := production.NewLotResolver(&fakeEntryRepo{})
	_, err := r.AvailableInputMeter(context.Background(), testCompanyID, testLot, entity.Module("dyeing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidModule)

	var invalid *domain.InvalidModuleError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "dyeing", invalid.Module)
}

// Carrying a lot stage-to-stage: the available meter shrinks as the
// downstream stage claims it and never dips below zero.
func TestAvailableInputMeter_CarryForwardLifecycle(t *testing.T) {
	repo := &fakeEntryRepo{}
	r := production.NewLotResolver(repo)
	ctx := context.Background()

	// Printing processes 500 m of the lot.
	repo.entries = append(repo.entries, entry(entity.ModulePrinting, testLot, 500, 500, 0))

	got, err := r.AvailableInputMeter(ctx, testCompanyID, testLot, entity.ModuleHazer)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(500)))

	// Hazer claims the full 500.
	repo.entries = append(repo.entries, entry(entity.ModuleHazer, testLot, 500, 0, 0))

	got, err = r.AvailableInputMeter(ctx, testCompanyID, testLot, entity.ModuleHazer)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "fully claimed lot must resolve to zero, got %s", got)
}
