package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Martynas09/shop-browser/internal/config"
)

func TestLoadRequiresRedisURL(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"REDIS_URL":   "",
		"CATALOG_DIR": "/data",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "REDIS_URL")
}

func TestLoadRequiresCatalogDir(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"REDIS_URL":   "redis://localhost:6379/0",
		"CATALOG_DIR": "",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "CATALOG_DIR")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"REDIS_URL":         "redis://localhost:6379/0",
		"CATALOG_DIR":       "/data",
		"PORT":              "",
		"BASKET_KEY":        "",
		"DEFAULT_PAGE_SIZE": "",
		"MAX_PAGE_SIZE":     "",
	})
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "basket", cfg.BasketKey)
	require.Equal(t, 16, cfg.DefaultPageSize)
	require.Equal(t, 100, cfg.MaxPageSize)
}

func TestDefaultPageSizeClampedToMax(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"REDIS_URL":         "redis://localhost:6379/0",
		"CATALOG_DIR":       "/data",
		"DEFAULT_PAGE_SIZE": "50",
		"MAX_PAGE_SIZE":     "20",
	})
	require.NoError(t, err)
	require.Equal(t, 20, cfg.DefaultPageSize)
}
