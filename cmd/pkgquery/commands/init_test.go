package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgquery/internal/config"
	"pkgquery/internal/prompt"
)

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	var out bytes.Buffer

	err := runInit(prompt.NewScripted("https://api.example.com/v1/packages", "packages.internal"), path, &out)

	require.NoError(t, err)
	env, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1/packages", env[config.EnvURL])
	assert.Equal(t, "packages.internal", env[config.EnvHost])
	assert.Contains(t, out.String(), "Configuration saved to "+path)
}

func TestRunInit_HostFromURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	var out bytes.Buffer

	err := runInit(prompt.NewScripted("https://api.example.com:8443/v1/packages", ""), path, &out)

	require.NoError(t, err)
	env, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "api.example.com:8443", env[config.EnvHost])
}

func TestRunInit_EmptyURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	var out bytes.Buffer

	err := runInit(prompt.NewScripted("  "), path, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissing)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunInit_ExistingFile(t *testing.T) {
	tests := []struct {
		name      string
		overwrite bool
		wantURL   string
	}{
		{"keep", false, "https://old.example.com"},
		{"overwrite", true, "https://new.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".env")
			require.NoError(t, config.WriteDotEnv(path, "old.example.com", "https://old.example.com"))
			var out bytes.Buffer

			err := runInit(prompt.NewScripted("https://new.example.com", "", tt.overwrite), path, &out)

			require.NoError(t, err)
			env, err := godotenv.Read(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, env[config.EnvURL])
		})
	}
}
