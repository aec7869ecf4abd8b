package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DigitalAgreementStatus is the lifecycle label of a digital marketing agreement.
// Its vocabulary is independent of AgreementStatus.
type DigitalAgreementStatus string

const (
	DigitalAgreementStatusDraft      DigitalAgreementStatus = "Draft"
	DigitalAgreementStatusActive     DigitalAgreementStatus = "Active"
	DigitalAgreementStatusCompleted  DigitalAgreementStatus = "Completed"
	DigitalAgreementStatusTerminated DigitalAgreementStatus = "Terminated"
	DigitalAgreementStatusExpired    DigitalAgreementStatus = "Expired"
)

// IsValid performs a case-sensitive membership check.
func (s DigitalAgreementStatus) IsValid() bool {
	switch s {
	case DigitalAgreementStatusDraft,
		DigitalAgreementStatusActive,
		DigitalAgreementStatusCompleted,
		DigitalAgreementStatusTerminated,
		DigitalAgreementStatusExpired:
		return true
	default:
		return false
	}
}

// Platform is a social network covered by a digital agreement.
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformYouTube   Platform = "YouTube"
	PlatformTwitter   Platform = "Twitter"
	PlatformLinkedIn  Platform = "LinkedIn"
)

// IsValid checks if the platform is supported.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformYouTube, PlatformTwitter, PlatformLinkedIn:
		return true
	default:
		return false
	}
}

// Provider is the fixed identity of the business issuing digital agreements.
type Provider struct {
	Name    string
	Company string
	Address string
}

// DigitalAgreement is a digital marketing agreement between the provider and a client.
type DigitalAgreement struct {
	ID                 uuid.UUID
	ClientName         string
	ClientCompany      string
	ClientAddress      string
	Provider           Provider
	Services           []ServiceItem
	AdditionalServices []ServiceItem
	TotalCost          float64
	StartDate          time.Time
	EndDate            time.Time
	Platforms          []Platform
	TravelAllowance    bool
	DroneShoot         bool
	Notes              string
	Status             DigitalAgreementStatus
	CreatedBy          uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ApplyDefaults fills the optional fields of a new digital agreement.
func (d *DigitalAgreement) ApplyDefaults() {
	if d.Status == "" {
		d.Status = DigitalAgreementStatusDraft
	}
	if d.Platforms == nil {
		d.Platforms = []Platform{}
	}
	if d.AdditionalServices == nil {
		d.AdditionalServices = []ServiceItem{}
	}
}

// Recalculate strips blank additional services and derives TotalCost.
// It must run before every save.
func (d *DigitalAgreement) Recalculate() {
	d.ClientName = strings.TrimSpace(d.ClientName)
	d.ClientCompany = strings.TrimSpace(d.ClientCompany)
	d.ClientAddress = strings.TrimSpace(d.ClientAddress)
	d.Notes = strings.TrimSpace(d.Notes)
	d.Services = trimItems(d.Services)
	d.AdditionalServices = FilterBlankServices(d.AdditionalServices)
	d.TotalCost = RoundCents(SumCosts(d.Services) + SumCosts(d.AdditionalServices))
}

// FilterBlankServices drops entries whose description is empty after trimming.
func FilterBlankServices(items []ServiceItem) []ServiceItem {
	kept := make([]ServiceItem, 0, len(items))
	for _, item := range items {
		if item.IsBlank() {
			continue
		}
		item.Description = strings.TrimSpace(item.Description)
		kept = append(kept, item)
	}

	return kept
}
