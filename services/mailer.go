package services

import (
	"fmt"
	"time"

	"anxisense_back_end_go/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers OTP codes over SendGrid. Delivery failure is never fatal:
// the caller logs the code server-side as the fallback channel.
type Mailer struct {
	apiKey    string
	fromName  string
	fromEmail string
	otpTTL    time.Duration
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		apiKey:    cfg.Mailer.SendGridKey,
		fromName:  cfg.Mailer.FromName,
		fromEmail: cfg.Mailer.FromEmail,
		otpTTL:    cfg.OTPTTL,
	}
}

// SendOTP emails the code to the doctor.
func (m *Mailer) SendOTP(toEmail, code string) error {
	if m.apiKey == "" {
		return fmt.Errorf("mail transport not configured")
	}

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail("", toEmail)
	subject := "Your AnxiSense OTP Code"
	body := fmt.Sprintf(
		"Your OTP code for AnxiSense verification is: %s\n\nThis code will expire in %d minutes.",
		code, int(m.otpTTL.Minutes()),
	)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}
