package mail

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"bvs/config"
	"bvs/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOTP(t *testing.T) {
	msg, err := renderOTP("123456", entity.OTPPurposeVerification, 10*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, "Your OTP for Verification", msg.Subject)
	assert.Contains(t, msg.HTML, "123456")
	assert.Contains(t, msg.HTML, "valid for 10 minutes")
	assert.Contains(t, msg.Text, "123456")
}

func TestRenderOTP_PasswordReset(t *testing.T) {
	msg, err := renderOTP("654321", entity.OTPPurposePasswordReset, 90*time.Second)
	require.NoError(t, err)

	assert.Equal(t, "Your OTP for Password Reset", msg.Subject)
	assert.Contains(t, msg.HTML, "Password Reset")
	assert.Contains(t, msg.HTML, "valid for 2 minutes")
}

func TestNewMailer_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	mailer, err := NewMailer(&config.Config{Mail: &config.MailConfig{Enabled: false}}, logger)
	require.NoError(t, err)
	require.IsType(t, &logMailer{}, mailer)

	require.NoError(t, mailer.SendOTP(context.Background(), "a@example.com", "123456", entity.OTPPurposeVerification))
	assert.Contains(t, buf.String(), "a@example.com")
	assert.NotContains(t, buf.String(), "123456")
}

func TestNewMailer_EnabledRequiresHost(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	_, err := NewMailer(&config.Config{Mail: &config.MailConfig{Enabled: true}}, logger)
	assert.Error(t, err)
}

func TestNewMailer_Enabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	mailer, err := NewMailer(&config.Config{Mail: &config.MailConfig{
		Enabled:  true,
		Host:     "smtp.example.com",
		Username: "user",
		Password: "pass",
		From:     "noreply@example.com",
		FromName: "Busitron Dashboard",
	}}, logger)
	require.NoError(t, err)
	assert.IsType(t, &smtpMailer{}, mailer)
}
