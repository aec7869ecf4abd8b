// Package mail delivers account emails over SMTP.
package mail

import (
	"context"
	"log/slog"
	"time"

	"bvs/config"
	deliverycontext "bvs/internal/delivery/context"
	"bvs/internal/domain/entity"
	"bvs/internal/domain/service"
	"bvs/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

const (
	defaultSMTPPort = 587
	defaultOTPTTL   = 10 * time.Minute
)

// NewMailer returns an SMTP mailer, or a logging mailer when mail.enabled is false.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	otpTTL := defaultOTPTTL
	if cfg.Auth != nil && cfg.Auth.OTPTTL > 0 {
		otpTTL = cfg.Auth.OTPTTL
	}

	if cfg.Mail == nil || !cfg.Mail.Enabled {
		logger.Warn("Mail delivery disabled, OTP emails will only be logged")

		return &logMailer{logger: logger, otpTTL: otpTTL, debug: cfg.Env.Debug}, nil
	}

	return newSMTPMailer(cfg.Mail, otpTTL, logger)
}

type smtpMailer struct {
	client   *gomail.Client
	from     string
	fromName string
	otpTTL   time.Duration
	logger   *slog.Logger
}

func newSMTPMailer(cfg *config.MailConfig, otpTTL time.Duration, logger *slog.Logger) (*smtpMailer, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, errors.New("mail host and from address are required when mail is enabled")
	}

	port := cfg.Port
	if port == 0 {
		port = defaultSMTPPort
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpMailer{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
		otpTTL:   otpTTL,
		logger:   logger,
	}, nil
}

func (m *smtpMailer) SendOTP(ctx context.Context, email, code string, purpose entity.OTPPurpose) error {
	rendered, err := renderOTP(code, purpose, m.otpTTL)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if m.fromName != "" {
		err = msg.FromFormat(m.fromName, m.from)
	} else {
		err = msg.From(m.from)
	}
	if err != nil {
		return errors.Wrap(err, "set sender")
	}
	if err := msg.To(email); err != nil {
		return errors.Wrap(err, "set recipient")
	}
	msg.Subject(rendered.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, rendered.HTML)
	msg.AddAlternativeString(gomail.TypeTextPlain, rendered.Text)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "send otp email")
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Info("OTP email sent",
		slog.String("email", email),
		slog.String("purpose", string(purpose)),
	)

	return nil
}

// logMailer stands in for SMTP in local development.
type logMailer struct {
	logger *slog.Logger
	otpTTL time.Duration
	debug  bool
}

func (m *logMailer) SendOTP(ctx context.Context, email, code string, purpose entity.OTPPurpose) error {
	rendered, err := renderOTP(code, purpose, m.otpTTL)
	if err != nil {
		return err
	}

	attrs := []slog.Attr{
		slog.String("email", email),
		slog.String("purpose", string(purpose)),
		slog.String("subject", rendered.Subject),
	}
	if m.debug {
		attrs = append(attrs, slog.String("code", code))
	}
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, slog.LevelInfo, "OTP email not sent, mail disabled", attrs...)

	return nil
}
