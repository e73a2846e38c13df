// Package scrap implements the scrap/inventory ledger: moving inventory to
// scrap, reversing it, marking disposal and summarising the ledger, while
// keeping InventoryItem.Stock, Scrap and StockMovement mutually consistent.
package scrap

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/dto"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/pkg/logger"
)

// Service orchestrates scrap-ledger operations. Stock mutation always runs
// inside TxRunner with a row lock on the inventory item (GetForUpdate), so
// concurrent moves against the same item cannot under-detect insufficient
// stock.
type Service struct {
	tx        TxRunner
	scraps    repository.ScrapRepository
	movements repository.StockMovementRepository
	companies repository.CompanyRepository
	log       *logger.Logger

	now func() time.Time
}

// NewService builds the scrap service.
func NewService(
	tx TxRunner,
	scraps repository.ScrapRepository,
	movements repository.StockMovementRepository,
	companies repository.CompanyRepository,
	log *logger.Logger,
) *Service {
	return &Service{
		tx:        tx,
		scraps:    scraps,
		movements: movements,
		companies: companies,
		log:       log,
		now:       time.Now,
	}
}

// MoveToScrap atomically validates available stock, persists the scrap
// record with before/after snapshots, and updates the inventory item.
// The stock-movement audit entry is appended after commit, best-effort:
// its failure is logged and swallowed, the move still reports success.
//
// Preconditions, first failure wins: item exists (ErrNotFound), item belongs
// to companyID (ErrForbidden), quantity > 0 (ErrInvalidInput), quantity does
// not exceed current stock (InsufficientStockError).
func (s *Service) MoveToScrap(ctx context.Context, inventoryItemID, userID, companyID string, req dto.MoveToScrapRequest) (*entity.Scrap, error) {
	if inventoryItemID == "" || companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidScrapReason(req.ScrapReason) {
		return nil, domain.ErrInvalidInput
	}

	company, err := s.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	now := s.now()
	var (
		result          *entity.Scrap
		availableBefore decimal.Decimal
		availableAfter  decimal.Decimal
	)

	// One retry on a scrap-number collision: the per-day sequence is
	// count-then-format, so two concurrent moves for the same company can
	// pick the same number. The unique constraint turns the race into a
	// retryable ErrDuplicate.
	for attempt := 0; attempt < 2; attempt++ {
		err = s.tx.Run(ctx, func(
			itemRepo repository.InventoryItemRepository,
			scrapRepo repository.ScrapRepository,
		) error {
			item, err := itemRepo.GetForUpdate(inventoryItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			if item.CompanyID != companyID {
				s.log.Warn().
					Str("company_id", companyID).
					Str("item_company_id", item.CompanyID).
					Str("inventory_item_id", inventoryItemID).
					Msg("cross-tenant scrap attempt rejected")
				return domain.ErrForbidden
			}
			if !req.Quantity.IsPositive() {
				return domain.ErrInvalidInput
			}
			if req.Quantity.GreaterThan(item.Stock.CurrentStock) {
				return &domain.InsufficientStockError{
					Available: item.Stock.CurrentStock,
					Requested: req.Quantity,
				}
			}

			scrapBefore, err := scrapRepo.SumActiveByItem(inventoryItemID)
			if err != nil {
				return err
			}
			count, err := scrapRepo.CountByCompanyOnDay(companyID, dayStart(now))
			if err != nil {
				return err
			}

			unitCost := resolveUnitCost(req.UnitCost, item)
			approvalStatus := entity.ApprovalStatusApproved
			if req.ApprovalRequired {
				approvalStatus = entity.ApprovalStatusPending
			}

			sc := &entity.Scrap{
				ID:                 uuid.New().String(),
				ScrapNumber:        scrapNumber(company.CompanyCode, now, count+1+attempt),
				CompanyID:          companyID,
				InventoryItemID:    inventoryItemID,
				WarehouseID:        req.WarehouseID,
				Quantity:           req.Quantity,
				ScrapReason:        req.ScrapReason,
				ScrapReasonDetails: req.ScrapReasonDetails,
				UnitCost:           unitCost,
				TotalValue:         unitCost.Mul(req.Quantity),
				StockImpact: entity.StockImpact{
					InventoryStockBefore: item.Stock.CurrentStock,
					InventoryStockAfter:  item.Stock.CurrentStock.Sub(req.Quantity),
					ScrapStockBefore:     scrapBefore,
					ScrapStockAfter:      scrapBefore.Add(req.Quantity),
				},
				Approval:  entity.Approval{Status: approvalStatus, Required: req.ApprovalRequired},
				Status:    entity.ScrapStatusActive,
				Notes:     req.Notes,
				ScrapDate: now,
				CreatedBy: userID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := scrapRepo.Create(sc); err != nil {
				return err
			}

			// Stock is decremented immediately, regardless of approval state.
			availableBefore = item.Stock.AvailableStock
			item.Stock.CurrentStock = item.Stock.CurrentStock.Sub(req.Quantity)
			item.Stock.Recompute()
			item.Tracking.TotalOutward = item.Tracking.TotalOutward.Add(req.Quantity)
			item.Tracking.LastStockUpdate = now
			item.Tracking.LastMovementDate = now
			if req.WarehouseID != "" {
				item.DeductLocation(req.WarehouseID, req.Quantity)
			}
			availableAfter = item.Stock.AvailableStock
			if err := itemRepo.Update(item); err != nil {
				return err
			}

			result = sc
			return nil
		})
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicate) && attempt == 0 {
			s.log.Warn().
				Str("company_id", companyID).
				Msg("scrap number collision, regenerating sequence")
			continue
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	s.recordMovement(result, company.CompanyCode, userID, availableBefore, availableAfter, now)
	return result, nil
}

// CancelScrap reverses a scrap move. Stock is restored only when the record
// is still active and not disposed; a disposed record is still marked
// cancelled but its stock is gone for good. Cancelling an already-cancelled
// record is a no-op that returns the record unchanged.
func (s *Service) CancelScrap(ctx context.Context, scrapID, companyID string) (*entity.Scrap, error) {
	if scrapID == "" || companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := s.now()
	var result *entity.Scrap
	err := s.tx.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		scrapRepo repository.ScrapRepository,
	) error {
		sc, err := scrapRepo.GetByID(scrapID)
		if err != nil {
			return err
		}
		if sc == nil {
			return domain.ErrNotFound
		}
		if sc.CompanyID != companyID {
			s.log.Warn().
				Str("company_id", companyID).
				Str("scrap_id", scrapID).
				Msg("cross-tenant scrap cancel rejected")
			return domain.ErrForbidden
		}
		if sc.Status == entity.ScrapStatusCancelled {
			result = sc
			return nil
		}

		if sc.Status == entity.ScrapStatusActive && !sc.Disposal.Disposed {
			item, err := itemRepo.GetForUpdate(sc.InventoryItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			item.Stock.CurrentStock = item.Stock.CurrentStock.Add(sc.Quantity)
			item.Stock.Recompute()
			item.Tracking.TotalOutward = item.Tracking.TotalOutward.Sub(sc.Quantity)
			if item.Tracking.TotalOutward.IsNegative() {
				item.Tracking.TotalOutward = decimal.Zero
			}
			item.Tracking.LastStockUpdate = now
			item.Tracking.LastMovementDate = now
			if err := itemRepo.Update(item); err != nil {
				return err
			}
		}

		sc.Status = entity.ScrapStatusCancelled
		sc.UpdatedAt = now
		if err := scrapRepo.Update(sc); err != nil {
			return err
		}
		result = sc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MarkDisposed records how the scrapped material was handled. Inventory
// stock is untouched: it was already decremented at move time. Disposing an
// already-disposed record fails with ErrAlreadyDisposed.
func (s *Service) MarkDisposed(ctx context.Context, scrapID, userID, companyID string, req dto.DisposeScrapRequest) (*entity.Scrap, error) {
	if scrapID == "" || companyID == "" || req.DisposalMethod == "" {
		return nil, domain.ErrInvalidInput
	}
	sc, err := s.scraps.GetByID(scrapID)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, domain.ErrNotFound
	}
	if sc.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if sc.Disposal.Disposed {
		return nil, domain.ErrAlreadyDisposed
	}

	now := s.now()
	sc.Disposal = entity.Disposal{
		Disposed:       true,
		DisposalMethod: req.DisposalMethod,
		DisposalValue:  req.DisposalValue,
		DisposalNotes:  req.DisposalNotes,
		DisposalDate:   &now,
		DisposedBy:     userID,
	}
	sc.Status = entity.ScrapStatusDisposed
	sc.UpdatedAt = now
	if err := s.scraps.Update(sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// Get returns one scrap record, enforcing tenant ownership.
func (s *Service) Get(ctx context.Context, scrapID, companyID string) (*entity.Scrap, error) {
	if scrapID == "" || companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	sc, err := s.scraps.GetByID(scrapID)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, domain.ErrNotFound
	}
	if sc.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return sc, nil
}

// List returns scrap records matching the filter.
func (s *Service) List(ctx context.Context, companyID string, f repository.ScrapFilter, limit, offset int) ([]*entity.Scrap, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.scraps.List(companyID, f, limit, offset)
}

// Update changes the descriptive fields of a scrap record. Quantities and
// stock impact are immutable after creation.
func (s *Service) Update(ctx context.Context, scrapID, companyID string, req dto.UpdateScrapRequest) (*entity.Scrap, error) {
	sc, err := s.Get(ctx, scrapID, companyID)
	if err != nil {
		return nil, err
	}
	if req.ScrapReasonDetails != nil {
		sc.ScrapReasonDetails = *req.ScrapReasonDetails
	}
	if req.Notes != nil {
		sc.Notes = *req.Notes
	}
	sc.UpdatedAt = s.now()
	if err := s.scraps.Update(sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// Summary aggregates active, non-disposed scrap in the optional date window.
func (s *Service) Summary(ctx context.Context, companyID string, from, to *time.Time) (*dto.ScrapSummaryResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	sum, err := s.scraps.Summary(companyID, from, to)
	if err != nil {
		return nil, err
	}
	resp := &dto.ScrapSummaryResponse{
		Count:         sum.Count,
		TotalQuantity: sum.TotalQuantity,
		TotalValue:    sum.TotalValue,
		DateFrom:      from,
		DateTo:        to,
	}
	for _, r := range sum.ByReason {
		resp.ByReason = append(resp.ByReason, dto.ScrapReasonBreakdownDTO{
			Reason: r.Reason, Count: r.Count, Quantity: r.Quantity, Value: r.Value,
		})
	}
	for _, it := range sum.TopItems {
		resp.TopItems = append(resp.TopItems, dto.ScrapItemBreakdownDTO{
			InventoryItemID: it.InventoryItemID, ItemName: it.ItemName,
			Count: it.Count, Quantity: it.Quantity, Value: it.Value,
		})
	}
	return resp, nil
}

// recordMovement appends the stock-movement audit entry for a committed
// scrap move. Best-effort: a failure here is logged at warn and swallowed,
// the scrap move already succeeded.
func (s *Service) recordMovement(sc *entity.Scrap, companyCode, userID string, availableBefore, availableAfter decimal.Decimal, now time.Time) {
	count, err := s.movements.CountByCompanyOnDay(sc.CompanyID, dayStart(now))
	if err != nil {
		s.log.Warn().Err(err).
			Str("scrap_number", sc.ScrapNumber).
			Msg("stock movement audit skipped: sequence lookup failed")
		return
	}
	mv := &entity.StockMovement{
		ID:              uuid.New().String(),
		MovementNumber:  movementNumber(companyCode, now, count+1),
		CompanyID:       sc.CompanyID,
		InventoryItemID: sc.InventoryItemID,
		WarehouseID:     sc.WarehouseID,
		MovementType:    entity.MovementTypeDamage,
		Quantity:        sc.Quantity,
		UnitCost:        sc.UnitCost,
		TotalValue:      sc.TotalValue,
		StockImpact: entity.MovementImpact{
			StockBefore:     sc.StockImpact.InventoryStockBefore,
			StockAfter:      sc.StockImpact.InventoryStockAfter,
			AvailableBefore: availableBefore,
			AvailableAfter:  availableAfter,
		},
		Reference: entity.ReferenceDocument{
			Type:   "scrap",
			ID:     sc.ID,
			Number: sc.ScrapNumber,
		},
		Notes:     sc.ScrapReasonDetails,
		CreatedBy: userID,
		CreatedAt: now,
	}
	if err := s.movements.Create(mv); err != nil {
		s.log.Warn().Err(err).
			Str("scrap_number", sc.ScrapNumber).
			Str("movement_number", mv.MovementNumber).
			Msg("stock movement audit write failed; scrap move already committed")
	}
}

// resolveUnitCost picks the scrap valuation cost: caller override first,
// then the item's cost price, then its average cost, else zero.
func resolveUnitCost(override *decimal.Decimal, item *entity.InventoryItem) decimal.Decimal {
	switch {
	case override != nil && override.IsPositive():
		return *override
	case item.Stock.CostPrice.IsPositive():
		return item.Stock.CostPrice
	case item.Stock.AverageCost.IsPositive():
		return item.Stock.AverageCost
	}
	return decimal.Zero
}
