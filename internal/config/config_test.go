package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		for _, key := range []string{"SERVER_ADDR", "DATA_DIR", "SITE_LANG", "FEATURED_COUNT", "EMAIL_PROVIDER", "HTTP_TIMEOUT"} {
			t.Setenv(key, "")
		}

		cfg := FromEnv()

		assert.Equal(t, ":8080", cfg.GetServerAddr())
		assert.Equal(t, "data", cfg.GetDataDir())
		assert.Equal(t, "en", cfg.GetSiteLang())
		assert.Equal(t, 3, cfg.GetFeaturedCount())
		assert.Equal(t, "log", cfg.GetEmailProvider())
		assert.Equal(t, 10*time.Second, cfg.GetHTTPTimeout())
		assert.Equal(t, DefaultEmailJSEndpoint, cfg.GetEmailJSEndpoint())
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("SERVER_ADDR", ":9090")
		t.Setenv("FEATURED_COUNT", "6")
		t.Setenv("HTTP_TIMEOUT", "2s")
		t.Setenv("DATA_BASE_URL", "https://cdn.example.com")

		cfg := FromEnv()

		assert.Equal(t, ":9090", cfg.GetServerAddr())
		assert.Equal(t, 6, cfg.GetFeaturedCount())
		assert.Equal(t, 2*time.Second, cfg.GetHTTPTimeout())
		assert.Equal(t, "https://cdn.example.com", cfg.GetDataBaseURL())
	})

	t.Run("off disables ip lookup", func(t *testing.T) {
		t.Setenv("IP_LOOKUP_URL", "off")

		assert.Empty(t, FromEnv().GetIPLookupURL())
	})

	t.Run("trusted proxies list", func(t *testing.T) {
		t.Setenv("TRUSTED_PROXIES", " 10.0.0.0/8, ,192.168.1.5/32 ")

		assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.5/32"}, FromEnv().GetTrustedProxies())

		t.Setenv("TRUSTED_PROXIES", "")
		assert.Empty(t, FromEnv().GetTrustedProxies())
	})

	t.Run("malformed numbers fall back", func(t *testing.T) {
		t.Setenv("FEATURED_COUNT", "many")
		t.Setenv("HTTP_TIMEOUT", "soon")

		cfg := FromEnv()

		assert.Equal(t, 3, cfg.GetFeaturedCount())
		assert.Equal(t, 10*time.Second, cfg.GetHTTPTimeout())
	})
}
