package qrcode

import (
	"encoding/json"
	"testing"

	"bvs/config"
	"bvs/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Zero size falls back to default", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			require.NotNil(t, svc)
			assert.Positive(t, svc.(*qrcodeService).size)
		})
	}
}

func TestProvideQRCodeService(t *testing.T) {
	svc := ProvideQRCodeService(&config.Config{})
	assert.Equal(t, defaultSize, svc.(*qrcodeService).size)

	svc = ProvideQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:    128,
		BaseURL: "https://bvs.example.com/",
	}})
	assert.Equal(t, 128, svc.(*qrcodeService).size)
	assert.Equal(t, "https://bvs.example.com", svc.(*qrcodeService).baseURL)
}

func TestQRCodeService_GenerateAgreementQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://bvs.example.com")

	for _, kind := range []string{service.AgreementKindStandard, service.AgreementKindDigital} {
		t.Run(kind, func(t *testing.T) {
			qrBytes, err := svc.GenerateAgreementQR(kind, uuid.New())
			require.NoError(t, err)
			assertPNG(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateAgreementQR_UnknownKind(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	_, err := svc.GenerateAgreementQR("invoice", uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported agreement kind")
}

func TestQRCodeService_ParseAgreementQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")
	agreementID := uuid.New()

	jsonData, err := json.Marshal(QRCodeData{
		AgreementID: agreementID.String(),
		Kind:        service.AgreementKindDigital,
		URL:         "https://bvs.example.com/api/digital-agreements/" + agreementID.String(),
	})
	require.NoError(t, err)

	kind, parsedID, err := svc.ParseAgreementQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, service.AgreementKindDigital, kind)
	assert.Equal(t, agreementID, parsedID)
}

func TestQRCodeService_ParseAgreementQR_Errors(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"unknown kind", `{"agreement_id":"` + uuid.NewString() + `","kind":"subscription"}`, "invalid QR code kind"},
		{"invalid uuid", `{"agreement_id":"not-a-valid-uuid","kind":"agreement"}`, "failed to parse agreement ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.ParseAgreementQR(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
