package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/nfrund/folio/internal/domain"
)

// --- LogSender (for development) ---

// LogSender prints messages to the log instead of delivering them.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender writing to logger (or the default logger).
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

// Send logs the message content.
func (s *LogSender) Send(ctx context.Context, msg domain.MailMessage) error {
	keys := make([]string, 0, len(msg.Params))
	for k := range msg.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := []any{"service_id", msg.ServiceID, "template_id", msg.TemplateID}
	for _, k := range keys {
		attrs = append(attrs, k, msg.Params[k])
	}
	s.logger.InfoContext(ctx, "--- Email Sent (Logged) ---", attrs...)
	return nil
}

// --- EmailJSSender (for production) ---

// EmailJSSender delivers messages through the EmailJS REST API.
type EmailJSSender struct {
	endpoint   string
	privateKey string
	client     *http.Client
}

// NewEmailJSSender creates an EmailJSSender posting to endpoint. privateKey is
// the optional EmailJS access token for strict-mode accounts.
func NewEmailJSSender(endpoint, privateKey string, timeout time.Duration) *EmailJSSender {
	return &EmailJSSender{
		endpoint:   endpoint,
		privateKey: privateKey,
		client:     &http.Client{Timeout: timeout},
	}
}

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send dispatches a templated email using the EmailJS API.
func (s *EmailJSSender) Send(ctx context.Context, msg domain.MailMessage) error {
	if msg.ServiceID == "" || msg.TemplateID == "" || msg.PublicKey == "" {
		return domain.ErrMailNotConfigured
	}

	payload := emailJSPayload{
		ServiceID:      msg.ServiceID,
		TemplateID:     msg.TemplateID,
		UserID:         msg.PublicKey,
		AccessToken:    s.privateKey,
		TemplateParams: msg.Params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal emailjs payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to emailjs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs API returned an error: status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	slog.InfoContext(ctx, "Successfully sent email via EmailJS", "template_id", msg.TemplateID)
	return nil
}
