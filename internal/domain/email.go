package domain

import "context"

// MailMessage is one templated send through the email delivery service.
type MailMessage struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	Params     map[string]string
}

// Mailer defines the interface for delivering contact-form messages. This
// allows for different implementations (e.g., for logging, EmailJS).
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
