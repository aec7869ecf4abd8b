package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AgreementStatus is the lifecycle label of a standard agreement.
type AgreementStatus string

const (
	AgreementStatusActive    AgreementStatus = "active"
	AgreementStatusExpired   AgreementStatus = "expired"
	AgreementStatusCancelled AgreementStatus = "cancelled"
)

// DefaultWarrantyYears applies when a create request omits the warranty.
const DefaultWarrantyYears = 1

// IsValid checks if the status is one of the known values.
func (s AgreementStatus) IsValid() bool {
	switch s {
	case AgreementStatusActive, AgreementStatusExpired, AgreementStatusCancelled:
		return true
	default:
		return false
	}
}

// Agreement is a standard service agreement with a warranty period.
type Agreement struct {
	ID            uuid.UUID
	ClientName    string
	ClientCompany string
	Services      []ServiceItem
	TotalCost     float64
	WarrantyYears int
	StartDate     time.Time
	EndDate       time.Time // Zero until derived from StartDate and WarrantyYears.
	Notes         string
	Status        AgreementStatus
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ApplyDefaults fills the optional fields of a new agreement.
func (a *Agreement) ApplyDefaults(now time.Time) {
	if a.StartDate.IsZero() {
		a.StartDate = now
	}
	if a.WarrantyYears == 0 {
		a.WarrantyYears = DefaultWarrantyYears
	}
	if a.Status == "" {
		a.Status = AgreementStatusActive
	}
}

// Recalculate normalizes text fields and derives TotalCost and, when absent, EndDate.
// It must run before every save.
func (a *Agreement) Recalculate() {
	a.ClientName = strings.TrimSpace(a.ClientName)
	a.ClientCompany = strings.TrimSpace(a.ClientCompany)
	a.Notes = strings.TrimSpace(a.Notes)
	a.Services = trimItems(a.Services)
	a.TotalCost = SumCosts(a.Services)

	if a.EndDate.IsZero() {
		a.EndDate = a.StartDate.AddDate(a.WarrantyYears, 0, 0)
	}
}

// MonthlyRevenue is the revenue of agreements created in one calendar month.
type MonthlyRevenue struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
	Count   int64   `json:"count"`
}

// AgreementSummary aggregates an owner's agreements.
type AgreementSummary struct {
	TotalAgreements  int64   `json:"totalAgreements"`
	TotalRevenue     float64 `json:"totalRevenue"`
	ActiveAgreements int64   `json:"activeAgreements"`
}

// AgreementStats is the dashboard view of an owner's agreements.
type AgreementStats struct {
	Summary        AgreementSummary `json:"summary"`
	MonthlyRevenue []MonthlyRevenue `json:"monthlyRevenue"`
}

// StatsMonthLimit caps the monthly revenue series.
const StatsMonthLimit = 6
