package entity

import "time"

// Company represents a tenant of the system. CompanyCode feeds document
// number generation (scrap and stock-movement numbers).
type Company struct {
	ID          string
	CompanyCode string
	Name        string
	Address     string
	Phone       string
	Email       string
	GSTNumber   string
	Status      string // active, suspended, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
