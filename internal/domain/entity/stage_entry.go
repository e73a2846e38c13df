package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Module identifies one processing step of the fixed production pipeline.
type Module string

// Pipeline stages in processing order. The ordered registry lives in
// internal/domain/production.
const (
	ModuleBleaching Module = "bleaching"
	ModuleLongation Module = "longation" // after-bleaching stretch
	ModulePrinting  Module = "printing"
	ModuleHazer     Module = "hazer"
	ModuleSilicate  Module = "silicate"
	ModuleCuring    Module = "curing"
	ModuleWashing   Module = "washing"
	ModuleFinishing Module = "finishing"
	ModuleFolding   Module = "folding" // felt/folding/checking
	ModulePacking   Module = "packing"
)

// Stage entry status, derived from meter totals.
const (
	StageStatusPending    = "pending"
	StageStatusInProgress = "in_progress"
	StageStatusCompleted  = "completed"
)

// StageEntry records one lot's passage through one production stage.
// Entries are never hard-deleted; status transitions only.
type StageEntry struct {
	ID             string
	CompanyID      string
	Module         Module
	LotNumber      string
	PartyName      string
	CustomerID     string
	Quality        string
	InputMeter     decimal.Decimal
	ProcessedMeter decimal.Decimal
	LossMeter      decimal.Decimal
	Status         string
	Remarks        string
	EntryDate      time.Time
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PendingMeter is the quantity received but not yet processed or lost.
func (e *StageEntry) PendingMeter() decimal.Decimal {
	return e.InputMeter.Sub(e.ProcessedMeter).Sub(e.LossMeter)
}

// DeriveStatus recomputes Status from the meter totals:
// pending when nothing consumed, completed when processed+loss has caught
// up to input, in_progress otherwise.
func (e *StageEntry) DeriveStatus() {
	consumed := e.ProcessedMeter.Add(e.LossMeter)
	switch {
	case consumed.IsZero():
		e.Status = StageStatusPending
	case consumed.GreaterThanOrEqual(e.InputMeter):
		e.Status = StageStatusCompleted
	default:
		e.Status = StageStatusInProgress
	}
}

// ValidateMeters enforces the conservation invariant:
// meters non-negative and ProcessedMeter + LossMeter <= InputMeter.
func (e *StageEntry) ValidateMeters() bool {
	if e.InputMeter.IsNegative() || e.ProcessedMeter.IsNegative() || e.LossMeter.IsNegative() {
		return false
	}
	return e.ProcessedMeter.Add(e.LossMeter).LessThanOrEqual(e.InputMeter)
}
