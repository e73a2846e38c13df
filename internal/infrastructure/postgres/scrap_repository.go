package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
)

var _ repository.ScrapRepository = (*ScrapRepo)(nil)

// ScrapRepo implements ScrapRepository over PostgreSQL.
type ScrapRepo struct {
	q Querier
}

// NewScrapRepository builds the adapter. Pass a pool or a tx (Querier).
func NewScrapRepository(q Querier) *ScrapRepo {
	return &ScrapRepo{q: q}
}

const scrapColumns = `id, scrap_number, company_id, inventory_item_id, warehouse_id,
		quantity, scrap_reason, scrap_reason_details, unit_cost, total_value,
		inventory_stock_before, inventory_stock_after, scrap_stock_before, scrap_stock_after,
		approval_status, approval_required,
		disposed, disposal_method, disposal_value, disposal_notes, disposal_date, disposed_by,
		status, notes, scrap_date, created_by, created_at, updated_at`

// Create persists a scrap record. Returns domain.ErrDuplicate when the
// scrap number collides (unique constraint on scrap_number); the service
// regenerates the sequence and retries once.
func (r *ScrapRepo) Create(s *entity.Scrap) error {
	query := `
		INSERT INTO scraps (` + scrapColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ScrapNumber, s.CompanyID, s.InventoryItemID, nullable(s.WarehouseID),
		s.Quantity, s.ScrapReason, s.ScrapReasonDetails, s.UnitCost, s.TotalValue,
		s.StockImpact.InventoryStockBefore, s.StockImpact.InventoryStockAfter,
		s.StockImpact.ScrapStockBefore, s.StockImpact.ScrapStockAfter,
		s.Approval.Status, s.Approval.Required,
		s.Disposal.Disposed, s.Disposal.DisposalMethod, s.Disposal.DisposalValue,
		s.Disposal.DisposalNotes, s.Disposal.DisposalDate, nullable(s.Disposal.DisposedBy),
		s.Status, s.Notes, s.ScrapDate, nullable(s.CreatedBy), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert scrap: %w", err)
	}
	return nil
}

// GetByID returns a scrap record by ID, or nil when absent.
func (r *ScrapRepo) GetByID(id string) (*entity.Scrap, error) {
	query := `SELECT ` + scrapColumns + ` FROM scraps WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	s, err := scanScrap(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get scrap: %w", err)
	}
	return s, nil
}

// Update persists the mutable fields of a scrap record. Quantity and stock
// impact never change after creation.
func (r *ScrapRepo) Update(s *entity.Scrap) error {
	query := `
		UPDATE scraps SET
			scrap_reason_details = $2, approval_status = $3,
			disposed = $4, disposal_method = $5, disposal_value = $6,
			disposal_notes = $7, disposal_date = $8, disposed_by = $9,
			status = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ScrapReasonDetails, s.Approval.Status,
		s.Disposal.Disposed, s.Disposal.DisposalMethod, s.Disposal.DisposalValue,
		s.Disposal.DisposalNotes, s.Disposal.DisposalDate, nullable(s.Disposal.DisposedBy),
		s.Status, s.Notes, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update scrap: %w", err)
	}
	return nil
}

// List returns a company's scrap records matching the filter, newest first.
func (r *ScrapRepo) List(companyID string, f repository.ScrapFilter, limit, offset int) ([]*entity.Scrap, error) {
	query := `SELECT ` + scrapColumns + ` FROM scraps WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if f.InventoryItemID != "" {
		query += fmt.Sprintf(" AND inventory_item_id = $%d", pos)
		args = append(args, f.InventoryItemID)
		pos++
	}
	if f.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, f.Status)
		pos++
	}
	if f.Reason != "" {
		query += fmt.Sprintf(" AND scrap_reason = $%d", pos)
		args = append(args, f.Reason)
		pos++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND scrap_date >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND scrap_date <= $%d", pos)
		args = append(args, *f.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY scrap_date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list scraps: %w", err)
	}
	defer rows.Close()

	var list []*entity.Scrap
	for rows.Next() {
		s, err := scanScrap(rows)
		if err != nil {
			return nil, fmt.Errorf("scan scrap: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// SumActiveByItem totals active, non-disposed scrap quantity for an item.
func (r *ScrapRepo) SumActiveByItem(inventoryItemID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM scraps
		WHERE inventory_item_id = $1 AND status = $2 AND disposed = false`
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, inventoryItemID, entity.ScrapStatusActive).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum active scrap: %w", err)
	}
	return sum, nil
}

// CountByCompanyOnDay counts scrap rows a company created on one calendar day.
func (r *ScrapRepo) CountByCompanyOnDay(companyID string, day time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM scraps
		WHERE company_id = $1 AND created_at >= $2 AND created_at < $3`
	var count int
	err := r.q.QueryRow(context.Background(), query, companyID, day, day.AddDate(0, 0, 1)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count scraps on day: %w", err)
	}
	return count, nil
}

// Summary aggregates active, non-disposed scrap in the optional window:
// totals, breakdown by reason, and the top 10 items by quantity.
func (r *ScrapRepo) Summary(companyID string, from, to *time.Time) (*repository.ScrapSummary, error) {
	ctx := context.Background()
	where := ` WHERE s.company_id = $1 AND s.status = 'active' AND s.disposed = false`
	args := []any{companyID}
	pos := 2
	if from != nil {
		where += fmt.Sprintf(" AND s.scrap_date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		where += fmt.Sprintf(" AND s.scrap_date <= $%d", pos)
		args = append(args, *to)
		pos++
	}

	sum := &repository.ScrapSummary{
		TotalQuantity: decimal.Zero,
		TotalValue:    decimal.Zero,
	}
	totals := `SELECT COUNT(*), COALESCE(SUM(s.quantity), 0), COALESCE(SUM(s.total_value), 0) FROM scraps s` + where
	if err := r.q.QueryRow(ctx, totals, args...).Scan(&sum.Count, &sum.TotalQuantity, &sum.TotalValue); err != nil {
		return nil, fmt.Errorf("scrap summary totals: %w", err)
	}

	byReason := `
		SELECT s.scrap_reason, COUNT(*), COALESCE(SUM(s.quantity), 0), COALESCE(SUM(s.total_value), 0)
		FROM scraps s` + where + `
		GROUP BY s.scrap_reason ORDER BY SUM(s.quantity) DESC`
	rows, err := r.q.Query(ctx, byReason, args...)
	if err != nil {
		return nil, fmt.Errorf("scrap summary by reason: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var b repository.ReasonBreakdown
		if err := rows.Scan(&b.Reason, &b.Count, &b.Quantity, &b.Value); err != nil {
			return nil, fmt.Errorf("scan reason breakdown: %w", err)
		}
		sum.ByReason = append(sum.ByReason, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	topItems := `
		SELECT s.inventory_item_id, i.item_name, COUNT(*),
			COALESCE(SUM(s.quantity), 0), COALESCE(SUM(s.total_value), 0)
		FROM scraps s
		JOIN inventory_items i ON i.id = s.inventory_item_id` + where + `
		GROUP BY s.inventory_item_id, i.item_name
		ORDER BY SUM(s.quantity) DESC LIMIT 10`
	itemRows, err := r.q.Query(ctx, topItems, args...)
	if err != nil {
		return nil, fmt.Errorf("scrap summary top items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var b repository.ItemBreakdown
		if err := itemRows.Scan(&b.InventoryItemID, &b.ItemName, &b.Count, &b.Quantity, &b.Value); err != nil {
			return nil, fmt.Errorf("scan item breakdown: %w", err)
		}
		sum.TopItems = append(sum.TopItems, b)
	}
	return sum, itemRows.Err()
}

// scanScrap reads one scrap row from a pgx.Row or pgx.Rows.
func scanScrap(row pgx.Row) (*entity.Scrap, error) {
	var s entity.Scrap
	var warehouseID, disposedBy, createdBy *string
	err := row.Scan(
		&s.ID, &s.ScrapNumber, &s.CompanyID, &s.InventoryItemID, &warehouseID,
		&s.Quantity, &s.ScrapReason, &s.ScrapReasonDetails, &s.UnitCost, &s.TotalValue,
		&s.StockImpact.InventoryStockBefore, &s.StockImpact.InventoryStockAfter,
		&s.StockImpact.ScrapStockBefore, &s.StockImpact.ScrapStockAfter,
		&s.Approval.Status, &s.Approval.Required,
		&s.Disposal.Disposed, &s.Disposal.DisposalMethod, &s.Disposal.DisposalValue,
		&s.Disposal.DisposalNotes, &s.Disposal.DisposalDate, &disposedBy,
		&s.Status, &s.Notes, &s.ScrapDate, &createdBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if warehouseID != nil {
		s.WarehouseID = *warehouseID
	}
	if disposedBy != nil {
		s.Disposal.DisposedBy = *disposedBy
	}
	if createdBy != nil {
		s.CreatedBy = *createdBy
	}
	return &s, nil
}

// nullable maps "" to NULL for optional foreign keys.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
