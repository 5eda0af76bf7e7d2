package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() domain.MailMessage {
	return domain.MailMessage{
		ServiceID:  "service_abc",
		TemplateID: "template_admin",
		PublicKey:  "pk_123",
		Params: map[string]string{
			"name":    "Mei",
			"email":   "mei@example.com",
			"message": "Is the lake painting still available?",
		},
	}
}

func TestEmailJSSender_Send(t *testing.T) {
	t.Run("posts the expected payload", func(t *testing.T) {
		var got emailJSPayload
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte("OK"))
		}))
		defer srv.Close()

		sender := NewEmailJSSender(srv.URL, "secret", time.Second)
		require.NoError(t, sender.Send(context.Background(), testMessage()))

		assert.Equal(t, "service_abc", got.ServiceID)
		assert.Equal(t, "template_admin", got.TemplateID)
		assert.Equal(t, "pk_123", got.UserID)
		assert.Equal(t, "secret", got.AccessToken)
		assert.Equal(t, "Mei", got.TemplateParams["name"])
	})

	t.Run("api errors are returned", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "The user ID is invalid", http.StatusBadRequest)
		}))
		defer srv.Close()

		err := NewEmailJSSender(srv.URL, "", time.Second).Send(context.Background(), testMessage())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 400")
		assert.Contains(t, err.Error(), "user ID is invalid")
	})

	t.Run("missing credentials are rejected before sending", func(t *testing.T) {
		msg := testMessage()
		msg.TemplateID = ""

		err := NewEmailJSSender("http://127.0.0.1:1", "", time.Second).Send(context.Background(), msg)

		assert.True(t, errors.Is(err, domain.ErrMailNotConfigured))
	})
}

func TestLogSender_Send(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogSender(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, sender.Send(context.Background(), testMessage()))

	assert.Contains(t, buf.String(), "Email Sent (Logged)")
	assert.Contains(t, buf.String(), "mei@example.com")
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		provider string
		wantType any
		wantErr  bool
	}{
		{provider: "log", wantType: &LogSender{}},
		{provider: "emailjs", wantType: &EmailJSSender{}},
		{provider: "none", wantType: nil},
		{provider: "carrier-pigeon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &config.Config{EmailProvider: tt.provider, EmailJSEndpoint: config.DefaultEmailJSEndpoint}

			mailer, err := NewMailer(cfg, nil)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantType == nil {
				assert.Nil(t, mailer)
				return
			}
			assert.IsType(t, tt.wantType, mailer)
		})
	}
}
