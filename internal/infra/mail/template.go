package mail

import (
	"bytes"
	"html/template"
	"math"
	"strconv"
	"time"

	"bvs/internal/domain/entity"
	"bvs/internal/errors"
)

var otpTemplate = template.Must(template.New("otp").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">{{.Heading}}</h2>
  <p>{{.Intro}}</p>
  <h1 style="background: #f0f0f0; padding: 10px; display: inline-block; border-radius: 5px;">{{.Code}}</h1>
  <p>This OTP is valid for {{.ValidMinutes}} minutes.</p>
  <p>If you didn't request this, please ignore this email.</p>
</div>`))

type otpView struct {
	Heading      string
	Intro        string
	Code         string
	ValidMinutes int
}

type renderedMessage struct {
	Subject string
	HTML    string
	Text    string
}

func renderOTP(code string, purpose entity.OTPPurpose, ttl time.Duration) (*renderedMessage, error) {
	view := otpView{
		Heading:      "Email Verification",
		Intro:        "Your OTP for verification is:",
		Code:         code,
		ValidMinutes: int(math.Ceil(ttl.Minutes())),
	}
	subject := "Your OTP for Verification"
	if purpose == entity.OTPPurposePasswordReset {
		view.Heading = "Password Reset"
		view.Intro = "Your OTP to reset your password is:"
		subject = "Your OTP for Password Reset"
	}

	var buf bytes.Buffer
	if err := otpTemplate.Execute(&buf, view); err != nil {
		return nil, errors.Wrap(err, "render otp email")
	}

	return &renderedMessage{
		Subject: subject,
		HTML:    buf.String(),
		Text:    view.Intro + " " + code + "\nThis OTP is valid for " + strconv.Itoa(view.ValidMinutes) + " minutes.",
	}, nil
}
