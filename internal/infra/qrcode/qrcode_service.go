package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"bvs/config"
	"bvs/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

var kindPaths = map[string]string{
	service.AgreementKindStandard: "/api/agreements/",
	service.AgreementKindDigital:  "/api/digital-agreements/",
}

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	AgreementID string `json:"agreement_id"`
	Kind        string `json:"kind"`
	URL         string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// ProvideQRCodeService builds the service from the qrcode config section
func ProvideQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// GenerateAgreementQR generates a PNG QR code for an agreement of the given kind
func (s *qrcodeService) GenerateAgreementQR(kind string, agreementID uuid.UUID) ([]byte, error) {
	path, ok := kindPaths[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported agreement kind: %s", kind)
	}

	data := QRCodeData{
		AgreementID: agreementID.String(),
		Kind:        kind,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + path + agreementID.String()
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseAgreementQR parses QR code data and returns the agreement kind and ID
func (s *qrcodeService) ParseAgreementQR(qrData string) (string, uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if _, ok := kindPaths[data.Kind]; !ok {
		return "", uuid.Nil, fmt.Errorf("invalid QR code kind: %s", data.Kind)
	}

	agreementID, err := uuid.Parse(data.AgreementID)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("failed to parse agreement ID: %w", err)
	}

	return data.Kind, agreementID, nil
}
