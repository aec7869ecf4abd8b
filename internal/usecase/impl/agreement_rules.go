package impl

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
)

const (
	minClientNameLen    = 2
	maxClientNameLen    = 50
	minClientCompanyLen = 2
	maxClientCompanyLen = 100
	maxClientAddressLen = 200
	minWarrantyYears    = 1
	maxWarrantyYears    = 3

	// total_cost is NUMERIC(14,2).
	maxTotalCost = 999_999_999_999.99
)

func checkLength(fields domainerrors.FieldErrors, field, value string, minLen, maxLen int) {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	switch {
	case n == 0:
		fields[field] = "is required"
	case n < minLen || n > maxLen:
		fields[field] = fmt.Sprintf("must be between %d and %d characters", minLen, maxLen)
	}
}

func checkClient(fields domainerrors.FieldErrors, name, company string) {
	checkLength(fields, "clientName", name, minClientNameLen, maxClientNameLen)
	checkLength(fields, "clientCompany", company, minClientCompanyLen, maxClientCompanyLen)
}

// checkServices requires at least one line when required is set. Every line needs
// a description and a non-negative cost.
func checkServices(fields domainerrors.FieldErrors, field string, items []entity.ServiceItem, required bool) {
	if required && len(items) == 0 {
		fields[field] = "at least one service is required"

		return
	}

	for i, item := range items {
		if item.IsBlank() {
			fields[fmt.Sprintf("%s[%d].description", field, i)] = "is required"
		}
		if msg := checkCost(item.Cost); msg != "" {
			fields[fmt.Sprintf("%s[%d].cost", field, i)] = msg
		}
	}
}

// checkCost accepts whole cents between 0 and maxTotalCost.
func checkCost(cost float64) string {
	switch {
	case math.IsNaN(cost) || cost < 0:
		return "must not be negative"
	case cost > maxTotalCost:
		return fmt.Sprintf("must not exceed %.2f", maxTotalCost)
	case !isWholeCents(cost):
		return "must have at most 2 decimal places"
	default:
		return ""
	}
}

func isWholeCents(v float64) bool {
	cents := v * 100

	return math.Abs(cents-math.Round(cents)) < 1e-6
}

// checkTotal reports a total that the total_cost column cannot hold.
func checkTotal(fields domainerrors.FieldErrors, total float64) {
	if total > maxTotalCost {
		fields["totalCost"] = fmt.Sprintf("must not exceed %.2f", maxTotalCost)
	}
}

func validationResult(fields domainerrors.FieldErrors) error {
	if len(fields) == 0 {
		return nil
	}

	return domainerrors.NewValidationError(fields)
}

func validateAgreementInput(clientName, clientCompany string, services []entity.ServiceItem, warrantyYears *int, status string) error {
	fields := domainerrors.FieldErrors{}

	checkClient(fields, clientName, clientCompany)
	checkServices(fields, "services", services, true)
	checkTotal(fields, entity.SumCosts(services))

	if warrantyYears != nil && (*warrantyYears < minWarrantyYears || *warrantyYears > maxWarrantyYears) {
		fields["warrantyYears"] = fmt.Sprintf("must be between %d and %d", minWarrantyYears, maxWarrantyYears)
	}
	if status != "" && !entity.AgreementStatus(status).IsValid() {
		fields["status"] = "must be one of active, expired, cancelled"
	}

	return validationResult(fields)
}

func validateDigitalAgreementInput(
	clientName, clientCompany, clientAddress string,
	services, additional []entity.ServiceItem,
	startDate, endDate *time.Time,
	platforms []string,
	status string,
) error {
	fields := domainerrors.FieldErrors{}

	checkClient(fields, clientName, clientCompany)
	checkLength(fields, "clientAddress", clientAddress, 1, maxClientAddressLen)
	checkServices(fields, "services", services, true)
	kept := entity.FilterBlankServices(additional)
	checkServices(fields, "additionalServices", kept, false)
	checkTotal(fields, entity.SumCosts(services)+entity.SumCosts(kept))

	if startDate == nil {
		fields["startDate"] = "is required"
	}
	if endDate == nil {
		fields["endDate"] = "is required"
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		fields["endDate"] = "must not be before startDate"
	}

	for i, p := range platforms {
		if !entity.Platform(p).IsValid() {
			fields[fmt.Sprintf("platforms[%d]", i)] = "must be one of Instagram, Facebook, YouTube, Twitter, LinkedIn"
		}
	}
	if status != "" && !entity.DigitalAgreementStatus(status).IsValid() {
		fields["status"] = "must be one of Draft, Active, Completed, Terminated, Expired"
	}

	return validationResult(fields)
}
