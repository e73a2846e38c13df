package scrap

import (
	"fmt"
	"time"
)

// scrapNumber formats SCRAP-{companyCode}-{YYYYMMDD}-{seq} with a 4-digit
// zero-padded per-company-per-day sequence. The sequence comes from counting
// existing rows; the unique constraint on scrap_number plus one retry in the
// service covers concurrent generation for the same company and day.
func scrapNumber(companyCode string, day time.Time, seq int) string {
	return fmt.Sprintf("SCRAP-%s-%s-%04d", companyCode, day.Format("20060102"), seq)
}

// movementNumber formats MOV-{companyCode}-{YYYYMMDD}-{seq} for the
// stock-movement audit trail, same scheme as scrap numbers.
func movementNumber(companyCode string, day time.Time, seq int) string {
	return fmt.Sprintf("MOV-%s-%s-%04d", companyCode, day.Format("20060102"), seq)
}

// dayStart truncates t to the start of its calendar day.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
