package entity

import "time"

// Warehouse is a physical storage location belonging to a company.
// Inventory items may keep per-warehouse quantities (ItemLocation).
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
