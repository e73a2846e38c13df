package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implements InventoryItemRepository over PostgreSQL.
// Per-warehouse quantities live in item_locations and are loaded with the
// item.
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository builds the adapter. Pass a pool or a tx
// (Querier); inside TxRunner the locking read and the update share one
// transaction.
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const itemColumns = `id, company_id, item_code, item_name, unit,
		current_stock, reserved_stock, available_stock, average_cost, cost_price, total_value,
		total_outward, last_stock_update, last_movement_date, created_at, updated_at`

// Create persists a new inventory item and its locations. Returns
// domain.ErrDuplicate when the item code is taken within the company.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.ItemCode, item.ItemName, item.Unit,
		item.Stock.CurrentStock, item.Stock.ReservedStock, item.Stock.AvailableStock,
		item.Stock.AverageCost, item.Stock.CostPrice, item.Stock.TotalValue,
		item.Tracking.TotalOutward, item.Tracking.LastStockUpdate,
		item.Tracking.LastMovementDate, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return r.saveLocations(item)
}

// GetByID returns an item by ID, or nil when absent.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	return r.get(id, false)
}

// GetForUpdate returns the item and locks its row for the remainder of the
// surrounding transaction (SELECT FOR UPDATE). Every stock mutation goes
// through this lock.
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.get(id, true)
}

func (r *InventoryItemRepo) get(id string, forUpdate bool) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var it entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.CompanyID, &it.ItemCode, &it.ItemName, &it.Unit,
		&it.Stock.CurrentStock, &it.Stock.ReservedStock, &it.Stock.AvailableStock,
		&it.Stock.AverageCost, &it.Stock.CostPrice, &it.Stock.TotalValue,
		&it.Tracking.TotalOutward, &it.Tracking.LastStockUpdate,
		&it.Tracking.LastMovementDate, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	if err := r.loadLocations(&it); err != nil {
		return nil, err
	}
	return &it, nil
}

// Update persists the item's stock, tracking and location figures.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET
			current_stock = $2, reserved_stock = $3, available_stock = $4,
			average_cost = $5, cost_price = $6, total_value = $7,
			total_outward = $8, last_stock_update = $9, last_movement_date = $10,
			updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID,
		item.Stock.CurrentStock, item.Stock.ReservedStock, item.Stock.AvailableStock,
		item.Stock.AverageCost, item.Stock.CostPrice, item.Stock.TotalValue,
		item.Tracking.TotalOutward, item.Tracking.LastStockUpdate, item.Tracking.LastMovementDate,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return r.saveLocations(item)
}

// List returns a company's items.
func (r *InventoryItemRepo) List(companyID string, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items
		WHERE company_id = $1 ORDER BY item_code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.CompanyID, &it.ItemCode, &it.ItemName, &it.Unit,
			&it.Stock.CurrentStock, &it.Stock.ReservedStock, &it.Stock.AvailableStock,
			&it.Stock.AverageCost, &it.Stock.CostPrice, &it.Stock.TotalValue,
			&it.Tracking.TotalOutward, &it.Tracking.LastStockUpdate,
			&it.Tracking.LastMovementDate, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *InventoryItemRepo) loadLocations(item *entity.InventoryItem) error {
	query := `SELECT warehouse_id, quantity FROM item_locations WHERE item_id = $1 ORDER BY warehouse_id`
	rows, err := r.q.Query(context.Background(), query, item.ID)
	if err != nil {
		return fmt.Errorf("load item locations: %w", err)
	}
	defer rows.Close()

	item.Locations = nil
	for rows.Next() {
		var loc entity.ItemLocation
		if err := rows.Scan(&loc.WarehouseID, &loc.Quantity); err != nil {
			return fmt.Errorf("scan item location: %w", err)
		}
		item.Locations = append(item.Locations, loc)
	}
	return rows.Err()
}

func (r *InventoryItemRepo) saveLocations(item *entity.InventoryItem) error {
	query := `
		INSERT INTO item_locations (item_id, warehouse_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity`
	for _, loc := range item.Locations {
		if _, err := r.q.Exec(context.Background(), query, item.ID, loc.WarehouseID, loc.Quantity); err != nil {
			return fmt.Errorf("upsert item location: %w", err)
		}
	}
	return nil
}
