package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "yaml_files", cfg.CatalogDir)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 50, cfg.DefaultPageSize)
	assert.Equal(t, 200, cfg.MaxPageSize)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9999")
	t.Setenv("CATALOG_DIR", "/srv/catalog")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example,")
	t.Setenv("DEFAULT_PAGE_SIZE", "25")
	t.Setenv("MAX_PAGE_SIZE", "100")

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "/srv/catalog", cfg.CatalogDir)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
}

func TestFromEnv_Validation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "zero max page size", key: "MAX_PAGE_SIZE", value: "0", wantErr: ErrInvalidMaxPageSize},
		{name: "zero default page size", key: "DEFAULT_PAGE_SIZE", value: "0", wantErr: ErrInvalidDefaultPageSize},
		{name: "default above max", key: "DEFAULT_PAGE_SIZE", value: "500", wantErr: ErrDefaultExceedsMax},
		{name: "negative rps", key: "RATE_LIMIT_RPS", value: "-1", wantErr: ErrInvalidRateLimitRPS},
		{name: "zero burst", key: "RATE_LIMIT_BURST", value: "0", wantErr: ErrInvalidRateLimitBurst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFromEnv_NonNumericValues(t *testing.T) {
	t.Setenv("MAX_PAGE_SIZE", "lots")

	_, err := FromEnv()

	assert.Error(t, err)
}
