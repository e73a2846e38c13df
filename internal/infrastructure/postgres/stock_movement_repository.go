package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implements the append-only stock-movement trail over
// PostgreSQL. No Update or Delete exists on purpose.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository builds the adapter. Pass a pool or a tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, movement_number, company_id, inventory_item_id, warehouse_id,
		movement_type, quantity, unit_cost, total_value,
		stock_before, stock_after, available_before, available_after,
		reference_type, reference_id, reference_number, notes, created_by, created_at`

// Create appends a movement.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.MovementNumber, m.CompanyID, m.InventoryItemID, nullable(m.WarehouseID),
		m.MovementType, m.Quantity, m.UnitCost, m.TotalValue,
		m.StockImpact.StockBefore, m.StockImpact.StockAfter,
		m.StockImpact.AvailableBefore, m.StockImpact.AvailableAfter,
		m.Reference.Type, m.Reference.ID, m.Reference.Number,
		m.Notes, nullable(m.CreatedBy), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByItem returns an item's movements in a date range, newest first.
func (r *StockMovementRepo) ListByItem(inventoryItemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE inventory_item_id = $1`
	args := []any{inventoryItemID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var warehouseID, createdBy *string
		if err := rows.Scan(
			&m.ID, &m.MovementNumber, &m.CompanyID, &m.InventoryItemID, &warehouseID,
			&m.MovementType, &m.Quantity, &m.UnitCost, &m.TotalValue,
			&m.StockImpact.StockBefore, &m.StockImpact.StockAfter,
			&m.StockImpact.AvailableBefore, &m.StockImpact.AvailableAfter,
			&m.Reference.Type, &m.Reference.ID, &m.Reference.Number,
			&m.Notes, &createdBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if warehouseID != nil {
			m.WarehouseID = *warehouseID
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByCompanyOnDay counts movements a company created on one calendar day.
func (r *StockMovementRepo) CountByCompanyOnDay(companyID string, day time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM stock_movements
		WHERE company_id = $1 AND created_at >= $2 AND created_at < $3`
	var count int
	err := r.q.QueryRow(context.Background(), query, companyID, day, day.AddDate(0, 0, 1)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movements on day: %w", err)
	}
	return count, nil
}
