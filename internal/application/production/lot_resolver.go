// Package production implements stage-entry tracking and the lot
// carry-forward resolver used by every stage's entry form.
package production

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/dto"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
	domainprod "github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/production"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
)

// LotResolver answers the two read-only lot queries: descriptive metadata
// inherited from upstream stages, and the quantity of material still
// available to hand to a target stage. Reads are deliberately not
// transactional with concurrent entry writes; a lightly stale result is
// acceptable.
type LotResolver struct {
	entries repository.StageEntryRepository
}

// NewLotResolver builds the resolver.
func NewLotResolver(entries repository.StageEntryRepository) *LotResolver {
	return &LotResolver{entries: entries}
}

// LotDetails scans the registered stages in pipeline order and returns the
// first entry's party, customer and quality for the lot. A lot unknown to
// every stage yields (nil, nil): not found is an expected outcome here,
// not an error.
func (r *LotResolver) LotDetails(ctx context.Context, companyID, lotNumber string) (*dto.LotDetailsDTO, error) {
	if companyID == "" || lotNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, stage := range domainprod.Pipeline {
		e, err := r.entries.FirstByLot(companyID, lotNumber, stage.Module)
		if err != nil {
			return nil, err
		}
		if e == nil {
			continue
		}
		return &dto.LotDetailsDTO{
			LotNumber:    lotNumber,
			PartyName:    e.PartyName,
			CustomerID:   e.CustomerID,
			Quality:      e.Quality,
			SourceModule: string(stage.Module),
		}, nil
	}
	return nil, nil
}

// AvailableInputMeter computes the meters the target stage may still claim
// for a lot: the upstream stage's good output minus what the target stage's
// own entries already consumed, clamped at zero so a stage can never be
// handed a negative allocation. The first pipeline stage has no upstream
// and always resolves to zero. Idempotent between writes.
func (r *LotResolver) AvailableInputMeter(ctx context.Context, companyID, lotNumber string, target entity.Module) (decimal.Decimal, error) {
	if companyID == "" || lotNumber == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if !domainprod.IsValid(target) {
		return decimal.Zero, &domain.InvalidModuleError{Module: string(target)}
	}

	source, ok := domainprod.Previous(target)
	if !ok {
		return decimal.Zero, nil
	}

	upstream, err := r.entries.ListByLot(companyID, lotNumber, source.Module)
	if err != nil {
		return decimal.Zero, err
	}
	produced := decimal.Zero
	for _, e := range upstream {
		produced = produced.Add(source.Output(e))
	}

	own, err := r.entries.ListByLot(companyID, lotNumber, target)
	if err != nil {
		return decimal.Zero, err
	}
	claimed := decimal.Zero
	for _, e := range own {
		claimed = claimed.Add(e.InputMeter)
	}

	available := produced.Sub(claimed)
	if available.IsNegative() {
		return decimal.Zero, nil
	}
	return available, nil
}
