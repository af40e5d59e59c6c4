package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "costmanager", cfg.Database.DBName)
	assert.Equal(t, "utf8mb4", cfg.Database.Charset)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("COSTMANAGER_SERVER_PORT", ":9090")
	t.Setenv("COSTMANAGER_DATABASE_HOST", "db.internal")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}
