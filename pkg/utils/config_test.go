package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "film-catalog", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, StorageMemory, cfg.App.Storage)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.True(t, cfg.Database.Migrate)
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nSTORAGE=postgres\nDB_NAME=films\nDB_MAX_CONNS=4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("DB_NAME", "films_from_env")

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, StoragePostgres, cfg.App.Storage)
	assert.Equal(t, "films_from_env", cfg.Database.Name)
	assert.Equal(t, int32(4), cfg.Database.MaxConns)
}

func TestLoadConfigStorage(t *testing.T) {
	tests := []struct {
		storage string
		wantErr bool
	}{
		{"memory", false},
		{"postgres", false},
		{"redis", true},
	}

	for _, tt := range tests {
		t.Run(tt.storage, func(t *testing.T) {
			t.Setenv("STORAGE", tt.storage)

			cfg, err := loadConfig(filepath.Join(t.TempDir(), ".env"))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.storage, cfg.App.Storage)
		})
	}
}
