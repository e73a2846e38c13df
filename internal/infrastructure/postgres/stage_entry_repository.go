package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
)

var _ repository.StageEntryRepository = (*StageEntryRepo)(nil)

// StageEntryRepo implements StageEntryRepository over PostgreSQL. All stage
// entries live in one table discriminated by the module column; the lot
// resolver queries it per module in pipeline order.
type StageEntryRepo struct {
	q Querier
}

// NewStageEntryRepository builds the adapter. Pass a pool or a tx (Querier).
func NewStageEntryRepository(q Querier) *StageEntryRepo {
	return &StageEntryRepo{q: q}
}

const stageEntryColumns = `id, company_id, module, lot_number, party_name, customer_id, quality,
		input_meter, processed_meter, loss_meter, status, remarks, entry_date,
		created_by, created_at, updated_at`

// Create persists a stage entry.
func (r *StageEntryRepo) Create(e *entity.StageEntry) error {
	query := `
		INSERT INTO production_stage_entries (` + stageEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.CompanyID, string(e.Module), e.LotNumber, e.PartyName,
		nullable(e.CustomerID), e.Quality, e.InputMeter, e.ProcessedMeter,
		e.LossMeter, e.Status, e.Remarks, e.EntryDate,
		nullable(e.CreatedBy), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stage entry: %w", err)
	}
	return nil
}

// GetByID returns one entry, or nil when absent.
func (r *StageEntryRepo) GetByID(id string) (*entity.StageEntry, error) {
	query := `SELECT ` + stageEntryColumns + ` FROM production_stage_entries WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	e, err := scanStageEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stage entry: %w", err)
	}
	return e, nil
}

// Update persists the meter totals and derived status of an entry.
func (r *StageEntryRepo) Update(e *entity.StageEntry) error {
	query := `
		UPDATE production_stage_entries SET
			party_name = $2, customer_id = $3, quality = $4,
			processed_meter = $5, loss_meter = $6, status = $7,
			remarks = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.PartyName, nullable(e.CustomerID), e.Quality,
		e.ProcessedMeter, e.LossMeter, e.Status, e.Remarks, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stage entry: %w", err)
	}
	return nil
}

// List returns a module's entries for a company, newest first.
func (r *StageEntryRepo) List(companyID string, module entity.Module, f repository.StageEntryFilter, limit, offset int) ([]*entity.StageEntry, error) {
	query := `SELECT ` + stageEntryColumns + ` FROM production_stage_entries
		WHERE company_id = $1 AND module = $2`
	args := []any{companyID, string(module)}
	pos := 3
	if f.LotNumber != "" {
		query += fmt.Sprintf(" AND lot_number = $%d", pos)
		args = append(args, f.LotNumber)
		pos++
	}
	if f.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, f.Status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY entry_date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stage entries: %w", err)
	}
	defer rows.Close()
	return collectStageEntries(rows)
}

// FirstByLot returns the oldest entry of a module for a lot, or nil.
func (r *StageEntryRepo) FirstByLot(companyID, lotNumber string, module entity.Module) (*entity.StageEntry, error) {
	query := `SELECT ` + stageEntryColumns + ` FROM production_stage_entries
		WHERE company_id = $1 AND lot_number = $2 AND module = $3
		ORDER BY created_at ASC LIMIT 1`
	row := r.q.QueryRow(context.Background(), query, companyID, lotNumber, string(module))
	e, err := scanStageEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("first stage entry by lot: %w", err)
	}
	return e, nil
}

// ListByLot returns every entry of a module for a lot.
func (r *StageEntryRepo) ListByLot(companyID, lotNumber string, module entity.Module) ([]*entity.StageEntry, error) {
	query := `SELECT ` + stageEntryColumns + ` FROM production_stage_entries
		WHERE company_id = $1 AND lot_number = $2 AND module = $3
		ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, companyID, lotNumber, string(module))
	if err != nil {
		return nil, fmt.Errorf("list stage entries by lot: %w", err)
	}
	defer rows.Close()
	return collectStageEntries(rows)
}

func collectStageEntries(rows pgx.Rows) ([]*entity.StageEntry, error) {
	var list []*entity.StageEntry
	for rows.Next() {
		e, err := scanStageEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stage entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanStageEntry(row pgx.Row) (*entity.StageEntry, error) {
	var e entity.StageEntry
	var module string
	var customerID, createdBy *string
	err := row.Scan(
		&e.ID, &e.CompanyID, &module, &e.LotNumber, &e.PartyName, &customerID,
		&e.Quality, &e.InputMeter, &e.ProcessedMeter, &e.LossMeter, &e.Status,
		&e.Remarks, &e.EntryDate, &createdBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Module = entity.Module(module)
	if customerID != nil {
		e.CustomerID = *customerID
	}
	if createdBy != nil {
		e.CreatedBy = *createdBy
	}
	return &e, nil
}
