package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateAgreementQR renders a PNG QR code pointing at an agreement of the given kind
	GenerateAgreementQR(kind string, agreementID uuid.UUID) ([]byte, error)

	// ParseAgreementQR parses QR code data and returns the agreement kind and ID
	ParseAgreementQR(qrData string) (kind string, agreementID uuid.UUID, err error)
}
