package dto

import "github.com/shopspring/decimal"

// CreateStageEntryRequest body for POST /api/production/entries.
type CreateStageEntryRequest struct {
	Module         string          `json:"module"`
	LotNumber      string          `json:"lot_number"`
	PartyName      string          `json:"party_name,omitempty"`
	CustomerID     string          `json:"customer_id,omitempty"`
	Quality        string          `json:"quality,omitempty"`
	InputMeter     decimal.Decimal `json:"input_meter"`
	ProcessedMeter decimal.Decimal `json:"processed_meter"`
	LossMeter      decimal.Decimal `json:"loss_meter"`
	Remarks        string          `json:"remarks,omitempty"`
}

// RecordOutputRequest body for PUT /api/production/entries/:id/output.
// Absolute values, not deltas.
type RecordOutputRequest struct {
	ProcessedMeter decimal.Decimal `json:"processed_meter"`
	LossMeter      decimal.Decimal `json:"loss_meter"`
}

// StageEntryListQuery filters for GET /api/production/entries.
type StageEntryListQuery struct {
	Module    string `query:"module"`
	LotNumber string `query:"lot_number"`
	Status    string `query:"status"`
	PageRequest
}

// LotDetailsDTO descriptive metadata inherited from the first upstream
// module that recorded the lot.
type LotDetailsDTO struct {
	LotNumber    string `json:"lot_number"`
	PartyName    string `json:"party_name"`
	CustomerID   string `json:"customer_id"`
	Quality      string `json:"quality"`
	SourceModule string `json:"source_module"`
}

// AvailableMeterResponse body for GET /api/production/lot/:lotNumber/input-meter/:targetModule.
type AvailableMeterResponse struct {
	LotNumber      string          `json:"lot_number"`
	TargetModule   string          `json:"target_module"`
	AvailableMeter decimal.Decimal `json:"available_meter"`
}
