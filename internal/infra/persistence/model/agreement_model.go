package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ServiceItemModel is the JSON shape of one billable line inside a jsonb column.
type ServiceItemModel struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// AgreementModel mirrors the 'agreements' table.
type AgreementModel struct {
	ID            uuid.UUID                             `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ClientName    string                                `gorm:"type:varchar(50);not null"`
	ClientCompany string                                `gorm:"type:varchar(100);not null"`
	Services      datatypes.JSONSlice[ServiceItemModel] `gorm:"type:jsonb;not null"`
	TotalCost     float64                               `gorm:"type:numeric(14,2);not null;default:0"`
	WarrantyYears int                                   `gorm:"not null;default:1"`
	StartDate     time.Time                             `gorm:"not null"`
	EndDate       time.Time                             `gorm:"not null"`
	Notes         string                                `gorm:"type:text"`
	Status        string                                `gorm:"type:varchar(20);not null;default:active"`
	CreatedBy     uuid.UUID                             `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AgreementModel) TableName() string {
	return "agreements"
}

// DigitalAgreementModel mirrors the 'digital_agreements' table.
type DigitalAgreementModel struct {
	ID                 uuid.UUID                             `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ClientName         string                                `gorm:"type:varchar(100);not null"`
	ClientCompany      string                                `gorm:"type:varchar(100);not null"`
	ClientAddress      string                                `gorm:"type:text;not null"`
	ProviderName       string                                `gorm:"type:varchar(100);not null"`
	ProviderCompany    string                                `gorm:"type:varchar(100);not null"`
	ProviderAddress    string                                `gorm:"type:text;not null"`
	Services           datatypes.JSONSlice[ServiceItemModel] `gorm:"type:jsonb;not null"`
	AdditionalServices datatypes.JSONSlice[ServiceItemModel] `gorm:"type:jsonb;not null"`
	TotalCost          float64                               `gorm:"type:numeric(14,2);not null;default:0"`
	StartDate          time.Time                             `gorm:"not null"`
	EndDate            time.Time                             `gorm:"not null"`
	Platforms          datatypes.JSONSlice[string]           `gorm:"type:jsonb;not null"`
	TravelAllowance    bool                                  `gorm:"not null;default:false"`
	DroneShoot         bool                                  `gorm:"not null;default:false"`
	Notes              string                                `gorm:"type:text"`
	Status             string                                `gorm:"type:varchar(20);not null;default:Draft"`
	CreatedBy          uuid.UUID                             `gorm:"type:uuid;not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (DigitalAgreementModel) TableName() string {
	return "digital_agreements"
}

// MonthlyRevenueRow is the scan target of the monthly revenue aggregate.
type MonthlyRevenueRow struct {
	Year    int
	Month   int
	Revenue float64
	Count   int64
}

// SummaryRow is the scan target of the summary aggregate.
type SummaryRow struct {
	TotalAgreements  int64
	TotalRevenue     float64
	ActiveAgreements int64
}
