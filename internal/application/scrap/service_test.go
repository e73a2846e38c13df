package scrap_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/dto"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/scrap"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/pkg/logger"
)

const (
	testUserID      = "00000000-0000-0000-0000-000000000001"
	testCompanyID   = "00000000-0000-0000-0000-000000000002"
	testItemID      = "00000000-0000-0000-0000-000000000003"
	testWarehouseID = "00000000-0000-0000-0000-000000000004"
	testCompanyCode = "DHRU"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeItemRepo stores items by value; reads hand out copies so uncommitted
// mutations never leak into the store.
type fakeItemRepo struct {
	items map[string]entity.InventoryItem
}

var _ repository.InventoryItemRepository = (*fakeItemRepo)(nil)

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]entity.InventoryItem{}}
}

func (f *fakeItemRepo) Create(item *entity.InventoryItem) error {
	f.items[item.ID] = *item
	return nil
}

func (f *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return f.GetByID(id)
}

func (f *fakeItemRepo) Update(item *entity.InventoryItem) error {
	f.items[item.ID] = *item
	return nil
}

func (f *fakeItemRepo) List(companyID string, limit, offset int) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for id := range f.items {
		item := f.items[id]
		if item.CompanyID == companyID {
			out = append(out, &item)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) snapshot() map[string]entity.InventoryItem {
	snap := make(map[string]entity.InventoryItem, len(f.items))
	for k, v := range f.items {
		snap[k] = v
	}
	return snap
}

// fakeScrapRepo enforces scrap-number uniqueness the way the DB constraint
// does, and can be primed with createErrs to force collisions.
type fakeScrapRepo struct {
	scraps     []entity.Scrap
	createErrs []error // popped per Create call before the uniqueness check
}

var _ repository.ScrapRepository = (*fakeScrapRepo)(nil)

func (f *fakeScrapRepo) Create(s *entity.Scrap) error {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	for _, existing := range f.scraps {
		if existing.ScrapNumber == s.ScrapNumber {
			return domain.ErrDuplicate
		}
	}
	f.scraps = append(f.scraps, *s)
	return nil
}

func (f *fakeScrapRepo) GetByID(id string) (*entity.Scrap, error) {
	for _, s := range f.scraps {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeScrapRepo) Update(s *entity.Scrap) error {
	for i := range f.scraps {
		if f.scraps[i].ID == s.ID {
			f.scraps[i] = *s
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeScrapRepo) List(companyID string, filter repository.ScrapFilter, limit, offset int) ([]*entity.Scrap, error) {
	var out []*entity.Scrap
	for i := range f.scraps {
		s := f.scraps[i]
		if s.CompanyID != companyID {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		if filter.Reason != "" && s.ScrapReason != filter.Reason {
			continue
		}
		if filter.InventoryItemID != "" && s.InventoryItemID != filter.InventoryItemID {
			continue
		}
		out = append(out, &s)
	}
	return out, nil
}

func (f *fakeScrapRepo) SumActiveByItem(inventoryItemID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range f.scraps {
		if s.InventoryItemID == inventoryItemID && s.Status == entity.ScrapStatusActive && !s.Disposal.Disposed {
			total = total.Add(s.Quantity)
		}
	}
	return total, nil
}

func (f *fakeScrapRepo) CountByCompanyOnDay(companyID string, day time.Time) (int, error) {
	n := 0
	for _, s := range f.scraps {
		if s.CompanyID == companyID && !s.CreatedAt.Before(day) && s.CreatedAt.Before(day.AddDate(0, 0, 1)) {
			n++
		}
	}
	return n, nil
}

func (f *fakeScrapRepo) Summary(companyID string, from, to *time.Time) (*repository.ScrapSummary, error) {
	sum := &repository.ScrapSummary{TotalQuantity: decimal.Zero, TotalValue: decimal.Zero}
	for _, s := range f.scraps {
		if s.CompanyID != companyID || s.Status != entity.ScrapStatusActive || s.Disposal.Disposed {
			continue
		}
		sum.Count++
		sum.TotalQuantity = sum.TotalQuantity.Add(s.Quantity)
		sum.TotalValue = sum.TotalValue.Add(s.TotalValue)
	}
	return sum, nil
}

func (f *fakeScrapRepo) snapshot() []entity.Scrap {
	return append([]entity.Scrap(nil), f.scraps...)
}

// fakeMovementRepo is the append-only audit store; createErr simulates a
// failing write after the scrap transaction committed.
type fakeMovementRepo struct {
	movements []entity.StockMovement
	createErr error
}

var _ repository.StockMovementRepository = (*fakeMovementRepo)(nil)

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.movements = append(f.movements, *m)
	return nil
}

func (f *fakeMovementRepo) ListByItem(inventoryItemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := range f.movements {
		m := f.movements[i]
		if m.InventoryItemID == inventoryItemID {
			out = append(out, &m)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) CountByCompanyOnDay(companyID string, day time.Time) (int, error) {
	n := 0
	for _, m := range f.movements {
		if m.CompanyID == companyID && !m.CreatedAt.Before(day) && m.CreatedAt.Before(day.AddDate(0, 0, 1)) {
			n++
		}
	}
	return n, nil
}

type fakeCompanyRepo struct {
	company *entity.Company
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func (f *fakeCompanyRepo) Create(c *entity.Company) error { return nil }

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	if f.company != nil && f.company.ID == id {
		return f.company, nil
	}
	return nil, nil
}

func (f *fakeCompanyRepo) GetByCode(code string) (*entity.Company, error) {
	if f.company != nil && f.company.CompanyCode == code {
		return f.company, nil
	}
	return nil, nil
}

func (f *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	return []*entity.Company{f.company}, nil
}

// fakeTx runs the closure against the shared fakes and rolls both stores
// back on error, mirroring the real transaction semantics.
type fakeTx struct {
	items  *fakeItemRepo
	scraps *fakeScrapRepo
}

var _ scrap.TxRunner = (*fakeTx)(nil)

func (t *fakeTx) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	scrapRepo repository.ScrapRepository,
) error) error {
	itemSnap := t.items.snapshot()
	scrapSnap := t.scraps.snapshot()
	if err := fn(t.items, t.scraps); err != nil {
		t.items.items = itemSnap
		t.scraps.scraps = scrapSnap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Harness
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	svc       *scrap.Service
	items     *fakeItemRepo
	scraps    *fakeScrapRepo
	movements *fakeMovementRepo
}

// newFixture wires the service against fakes with one company and one item
// holding 50 units at cost price 12.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	items := newFakeItemRepo()
	scraps := &fakeScrapRepo{}
	movements := &fakeMovementRepo{}
	companies := &fakeCompanyRepo{company: &entity.Company{
		ID:          testCompanyID,
		CompanyCode: testCompanyCode,
		Name:        "Dhruval Exim",
	}}
	item := &entity.InventoryItem{
		ID:        testItemID,
		CompanyID: testCompanyID,
		ItemCode:  "FAB-001",
		ItemName:  "Printed fabric 60x60",
		Unit:      "meters",
		Stock: entity.ItemStock{
			CurrentStock: decimal.NewFromInt(50),
			AverageCost:  decimal.NewFromInt(10),
			CostPrice:    decimal.NewFromInt(12),
		},
		Locations: []entity.ItemLocation{
			{WarehouseID: testWarehouseID, Quantity: decimal.NewFromInt(50)},
		},
	}
	item.Stock.Recompute()
	require.NoError(t, items.Create(item))

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	svc := scrap.NewService(&fakeTx{items: items, scraps: scraps}, scraps, movements, companies, log)
	return &fixture{svc: svc, items: items, scraps: scraps, movements: movements}
}

func moveRequest(qty int64) dto.MoveToScrapRequest {
	return dto.MoveToScrapRequest{
		Quantity:           decimal.NewFromInt(qty),
		ScrapReason:        entity.ScrapReasonDamaged,
		ScrapReasonDetails: "water damage in storage",
	}
}

func (f *fixture) itemStock(t *testing.T) entity.ItemStock {
	t.Helper()
	item, err := f.items.GetByID(testItemID)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Stock
}

func scrapNumberFor(seq int) string {
	return fmt.Sprintf("SCRAP-%s-%s-%04d", testCompanyCode, time.Now().Format("20060102"), seq)
}

// ──────────────────────────────────────────────────────────────────────────────
// MoveToScrap
// ──────────────────────────────────────────────────────────────────────────────

func TestMoveToScrap_HappyPath(t *testing.T) {
	f := newFixture(t)

	sc, err := f.svc.MoveToScrap(context.Background(), testItemID, testUserID, testCompanyID, moveRequest(20))
	require.NoError(t, err)

	assert.Equal(t, scrapNumberFor(1), sc.ScrapNumber)
	assert.Equal(t, entity.ScrapStatusActive, sc.Status)
	assert.Equal(t, entity.ApprovalStatusApproved, sc.Approval.Status)
	assert.True(t, sc.Quantity.Equal(decimal.NewFromInt(20)))
	assert.True(t, sc.UnitCost.Equal(decimal.NewFromInt(12)), "cost price wins over average cost")
	assert.True(t, sc.TotalValue.Equal(decimal.NewFromInt(240)))

	// Before/after snapshots on both sides of the ledger.
	assert.True(t, sc.StockImpact.InventoryStockBefore.Equal(decimal.NewFromInt(50)))
	assert.True(t, sc.StockImpact.InventoryStockAfter.Equal(decimal.NewFromInt(30)))
	assert.True(t, sc.StockImpact.ScrapStockBefore.IsZero())
	assert.True(t, sc.StockImpact.ScrapStockAfter.Equal(decimal.NewFromInt(20)))

	stock := f.itemStock(t)
	assert.True(t, stock.CurrentStock.Equal(decimal.NewFromInt(30)))
	assert.True(t, stock.AvailableStock.Equal(decimal.NewFromInt(30)))
	assert.True(t, stock.TotalValue.Equal(decimal.NewFromInt(300)), "30 * average cost 10")

	// Audit trail entry referencing the scrap record.
	require.Len(t, f.movements.movements, 1)
	mv := f.movements.movements[0]
	assert.Equal(t, entity.MovementTypeDamage, mv.MovementType)
	assert.Equal(t, "scrap", mv.Reference.Type)
	assert.Equal(t, sc.ID, mv.Reference.ID)
	assert.Equal(t, sc.ScrapNumber, mv.Reference.Number)
	assert.True(t, mv.StockImpact.StockBefore.Equal(decimal.NewFromInt(50)))
	assert.True(t, mv.StockImpact.StockAfter.Equal(decimal.NewFromInt(30)))
}

// Two moves against the same item: quantities conserve across inventory and
// the scrap ledger, and the per-day sequence advances.
func TestMoveToScrap_Accumulates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.MoveToScrap(ctx, testItemID, testUserID, testCompanyID, moveRequest(20))
	require.NoError(t, err)
	second, err := f.svc.MoveToScrap(ctx, testItemID, testUserID, testCompanyID, moveRequest(30))
	require.NoError(t, err)

	assert.Equal(t, scrapNumberFor(1), first.ScrapNumber)
	assert.Equal(t, scrapNumberFor(2), second.ScrapNumber)

	assert.True(t, second.StockImpact.InventoryStockBefore.Equal(decimal.NewFromInt(30)))
	assert.True(t, second.StockImpact.InventoryStockAfter.IsZero())
	assert.True(t, second.StockImpact.ScrapStockBefore.Equal(decimal.NewFromInt(20)))
	assert.True(t, second.StockImpact.ScrapStockAfter.Equal(decimal.NewFromInt(50)))

	assert.True(t, f.itemStock(t).CurrentStock.IsZero())

	total, err := f.scraps.SumActiveByItem(testItemID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(50)), "inventory + scrap ledger conserve the original 50")
}

func TestMoveToScrap_InsufficientStock(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.MoveToScrap(context.Background(), testItemID, testUserID, testCompanyID, moveRequest(60))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(50)))
	assert.True(t, insufficient.Requested.Equal(decimal.NewFromInt(60)))

	// Nothing moved, nothing recorded.
	assert.True(t, f.itemStock(t).CurrentStock.Equal(decimal.NewFromInt(50)))
	assert.Empty(t, f.scraps.scraps)
	assert.Empty(t, f.movements.movements)
}

func TestMoveToScrap_PreconditionOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Unknown item wins over any quantity problem.
	_, err := f.svc.MoveToScrap(ctx, "missing-item", testUserID, testCompanyID, moveRequest(-5))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Ownership is checked before the quantity.
	otherItem := &entity.InventoryItem{
		ID:        "other-item",
		CompanyID: "another-company",
		Stock:     entity.ItemStock{CurrentStock: decimal.NewFromInt(10)},
	}
	require.NoError(t, f.items.Create(otherItem))
	_, err = f.svc.MoveToScrap(ctx, "other-item", testUserID, testCompanyID, moveRequest(-5))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Non-positive quantity is rejected before the stock comparison.
	_, err = f.svc.MoveToScrap(ctx, testItemID, testUserID, testCompanyID, moveRequest(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMoveToScrap_InvalidReason(t *testing.T) {
	f := newFixture(t)
	req := moveRequest(10)
	req.ScrapReason = "felt-like-it"
	_, err := f.svc.MoveToScrap(context.Background(), testItemID, testUserID, testCompanyID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// A scrap-number collision (concurrent move picked the same per-day
// sequence) is retried once with the next sequence value.
func TestMoveToScrap_NumberCollisionRetriesOnce(t *testing.T) {
	f := newFixture(t)
	f.scraps.createErrs = []error{domain.ErrDuplicate}

	sc, err := f.svc.MoveToScrap(context.Background(), testItemID, testUserID, testCompanyID, moveRequest(20))
	require.NoError(t, err)
	assert.Equal(t, scrapNumberFor(2), sc.ScrapNumber, "retry advances the sequence")
	assert.True(t, f.itemStock(t).CurrentStock.Equal(decimal.NewFromInt(30)), "stock decremented exactly once")
}

func TestMoveToScrap_SecondCollisionFails(t *testing.T) {
	f := newFixture(t)
	f.scraps.createErrs = []error{domain.ErrDuplicate, domain.ErrDuplicate}

	_, err := f.svc.MoveToScrap(context.Background(), testItemID, testUserID, testCompanyID, moveRequest(20))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.True(t, f.itemStock(t).CurrentStock.Equal(decimal.NewFromInt(50)), "failed move leaves stock untouched")
}

// The audit write happens after the move committed and is best-effort: its
// failure must not fail the move or undo the stock change.
func TestMoveToScrap_AuditFailureSwallowed(t *testing.T) {
	f := newFixture(t)
	f.movements.createErr = fmt.Errorf("audit store down")

	sc, err := f.svc.MoveToScrap(context.Background(), testItemID, testUserID, testCompanyID, moveRequest(20))
	require.NoError(t, err)
	assert.Equal(t, entity.ScrapStatusActive, sc.Status)
	assert.True(t, f.itemStock(t).CurrentStock.Equal(decimal.NewFromInt(30)))
	assert.Empty(t, f.movements.movements)
}

// Approval gating is a workflow concern only: stock comes out immediately
// even when the record awaits approval.
func TestMoveToScrap_ApprovalRequiredStillDecrements(t *testing.T) {
	f := newFixture(t)
	req := moveRequest(20)
	req.ApprovalRequired = true

	sc, err := f.svc.MoveToScrap(context.Background(), testItemID, testUserID, testCompanyID, req)
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusPending, sc.Approval.Status)
	assert.True(t, sc.Approval.Required)
	assert.True(t, f.itemStock(t).CurrentStock.Equal(decimal.NewFromInt(30)))
}

func TestMoveToScrap_UnitCostFallbacks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	override := decimal.NewFromInt(15)
	req := moveRequest(5)
	req.UnitCost = &override
	sc, err := f.svc.MoveToScrap(ctx, testItemID, testUserID, testCompanyID, req)
	require.NoError(t, err)
	assert.True(t, sc.UnitCost.Equal(override), "caller override wins")

	// Without cost price the average cost is used.
	item, _ := f.items.GetByID(testItemID)
	item.Stock.CostPrice = decimal.Zero
	require.NoError(t, f.items.Update(item))

	sc, err = f.svc.MoveToScrap(ctx, testItemID, testUserID, testCompanyID, moveRequest(5))
	require.NoError(t, err)
	assert.True(t, sc.UnitCost.Equal(decimal.NewFromInt(10)))
}

func TestMoveToScrap_DeductsWarehouseLocation(t *testing.T) {
	f := newFixture(t)
	req := moveRequest(20)
	req.WarehouseID = testWarehouseID

	sc, err := f.svc.MoveToScrap(context.Background(), testItemID, testUserID, testCompanyID, req)
	require.NoError(t, err)
	assert.Equal(t, testWarehouseID, sc.WarehouseID)

	item, _ := f.items.GetByID(testItemID)
	require.Len(t, item.Locations, 1)
	assert.True(t, item.Locations[0].Quantity.Equal(decimal.NewFromInt(30)))
}

// ──────────────────────────────────────────────────────────────────────────────
// CancelScrap
// ──────────────────────────────────────────────────────────────────────────────

func TestCancelScrap_RestoresStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sc, err := f.svc.MoveToScrap(ctx, testItemID, testUserID, testCompanyID, moveRequest(20))
	require.NoError(t, err)
	require.True(t, f.itemStock(t).CurrentStock.Equal(decimal.NewFromInt(30)))

	cancelled, err := f.svc.CancelScrap(ctx, sc.ID, testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, entity.ScrapStatusCancelled, cancelled.Status)
	assert.True(t, f.itemStock(t).CurrentStock.Equal(decimal.NewFromInt(50)))
}

// Cancelling twice must not restore the stock twice.
func TestCancelScrap_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sc, err := f.svc.MoveToScrap(ctx, testItemID, testUserID, testCompanyID, moveRequest(20))
	require.NoError(t, err)

	_, err = f.svc.CancelScrap(ctx, sc.ID, testCompanyID)
	require.NoError(t, err)
	again, err := f.svc.CancelScrap(ctx, sc.ID, testCompanyID)
	require.NoError(t, err)

	assert.Equal(t, entity.ScrapStatusCancelled, again.Status)
	assert.True(t, f.itemStock(t).CurrentStock.Equal(decimal.NewFromInt(50)), "stock restored exactly once")
}

// Disposal is terminal for stock: the material left the building, so a
// later cancel flips the status but restores nothing.
func TestCancelScrap_AfterDisposalKeepsStockOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sc, err := f.svc.MoveToScrap(ctx, testItemID, testUserID, testCompanyID, moveRequest(20))
	require.NoError(t, err)

	_, err = f.svc.MarkDisposed(ctx, sc.ID, testUserID, testCompanyID, dto.DisposeScrapRequest{
		DisposalMethod: "sold",
		DisposalValue:  decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	cancelled, err := f.svc.CancelScrap(ctx, sc.ID, testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, entity.ScrapStatusCancelled, cancelled.Status)
	assert.True(t, f.itemStock(t).CurrentStock.Equal(decimal.NewFromInt(30)), "disposed material never comes back")
}

func TestCancelScrap_TenantIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sc, err := f.svc.MoveToScrap(ctx, testItemID, testUserID, testCompanyID, moveRequest(20))
	require.NoError(t, err)

	_, err = f.svc.CancelScrap(ctx, sc.ID, "another-company")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// MarkDisposed
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkDisposed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sc, err := f.svc.MoveToScrap(ctx, testItemID, testUserID, testCompanyID, moveRequest(20))
	require.NoError(t, err)

	disposed, err := f.svc.MarkDisposed(ctx, sc.ID, testUserID, testCompanyID, dto.DisposeScrapRequest{
		DisposalMethod: "recycled",
		DisposalValue:  decimal.NewFromInt(30),
		DisposalNotes:  "sold to recycler",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ScrapStatusDisposed, disposed.Status)
	assert.True(t, disposed.Disposal.Disposed)
	assert.Equal(t, "recycled", disposed.Disposal.DisposalMethod)
	assert.Equal(t, testUserID, disposed.Disposal.DisposedBy)
	require.NotNil(t, disposed.Disposal.DisposalDate)

	// Disposal never touches inventory; the decrement already happened.
	assert.True(t, f.itemStock(t).CurrentStock.Equal(decimal.NewFromInt(30)))

	_, err = f.svc.MarkDisposed(ctx, sc.ID, testUserID, testCompanyID, dto.DisposeScrapRequest{
		DisposalMethod: "destroyed",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyDisposed)
}

func TestMarkDisposed_RequiresMethod(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.MarkDisposed(context.Background(), "any-id", testUserID, testCompanyID, dto.DisposeScrapRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_DescriptiveFieldsOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sc, err := f.svc.MoveToScrap(ctx, testItemID, testUserID, testCompanyID, moveRequest(20))
	require.NoError(t, err)

	details := "re-inspected, confirmed unusable"
	updated, err := f.svc.Update(ctx, sc.ID, testCompanyID, dto.UpdateScrapRequest{ScrapReasonDetails: &details})
	require.NoError(t, err)

	assert.Equal(t, details, updated.ScrapReasonDetails)
	assert.True(t, updated.Quantity.Equal(sc.Quantity), "quantity immutable after creation")
	assert.True(t, updated.StockImpact.InventoryStockBefore.Equal(sc.StockImpact.InventoryStockBefore))
}

func TestSummary_ExcludesCancelledAndDisposed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.MoveToScrap(ctx, testItemID, testUserID, testCompanyID, moveRequest(10))
	require.NoError(t, err)
	_, err = f.svc.MoveToScrap(ctx, testItemID, testUserID, testCompanyID, moveRequest(15))
	require.NoError(t, err)

	_, err = f.svc.CancelScrap(ctx, first.ID, testCompanyID)
	require.NoError(t, err)

	sum, err := f.svc.Summary(ctx, testCompanyID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Count)
	assert.True(t, sum.TotalQuantity.Equal(decimal.NewFromInt(15)))
}
