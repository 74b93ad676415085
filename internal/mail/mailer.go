package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers one-time passwords to a recipient address
type Sender interface {
	// Configured reports whether the sender has credentials to deliver mail.
	Configured() bool
	SendOTP(email, code string) error
}

const otpSubject = "Your OTP for Account Registration"

const otpBodyTemplate = `Hello,

Your OTP for account registration is: %s

This OTP is valid for 5 minutes.

If you didn't request this OTP, please ignore this email.

Best regards,
Team`

// SMTPSender sends OTP mail through an external SMTP relay. Each send opens
// its own relay session; failures are reported once and never retried.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPSender creates a new SMTP-backed sender
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// Configured reports whether relay credentials are present. Without them OTP
// delivery is disabled and callers surface an explicit configuration error.
func (s *SMTPSender) Configured() bool {
	return s.username != "" && s.password != ""
}

// SendOTP composes the fixed plaintext template and submits it to the relay.
func (s *SMTPSender) SendOTP(email, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.username)
	m.SetHeader("To", email)
	m.SetHeader("Subject", otpSubject)
	m.SetBody("text/plain", fmt.Sprintf(otpBodyTemplate, code))

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
