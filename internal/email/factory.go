package email

import (
	"fmt"
	"log/slog"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/domain"
)

// NewMailer creates and returns a mailer based on the configuration. The
// "none" provider returns a nil mailer: the contact form then reports the
// email service as unavailable.
func NewMailer(cfg config.Provider, logger *slog.Logger) (domain.Mailer, error) {
	switch cfg.GetEmailProvider() {
	case "log":
		return NewLogSender(logger), nil
	case "emailjs":
		if cfg.GetEmailJSEndpoint() == "" {
			return nil, fmt.Errorf("email provider is 'emailjs' but EMAILJS_ENDPOINT is empty")
		}
		return NewEmailJSSender(cfg.GetEmailJSEndpoint(), cfg.GetEmailJSPrivateKey(), cfg.GetHTTPTimeout()), nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.GetEmailProvider())
	}
}
