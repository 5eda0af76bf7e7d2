package testutils

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigForTests(t *testing.T) {
	cfg := ConfigForTests(t)

	assert.Equal(t, "log", cfg.GetEmailProvider())
	assert.Empty(t, cfg.GetIPLookupURL())
	assert.Equal(t, 2, cfg.GetContactRateLimit())
	assert.Equal(t, "en", cfg.GetSiteLang())
}

func TestMemFs(t *testing.T) {
	fs := MemFs(t, SiteFiles())

	data, err := afero.ReadFile(fs, "data/works.json")
	require.NoError(t, err)
	assert.Equal(t, WorksJSON, string(data))
}
