package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "config.yaml", `
broker:
  name: groww
  base_url: https://api.groww.in
  timeout: 30s
directory:
  db_path: /var/lib/brokerhub/symbols.sqlite
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "groww", cfg.Broker.Name)
	assert.Equal(t, "https://api.groww.in", cfg.Broker.BaseURL)
	assert.Equal(t, "/var/lib/brokerhub/symbols.sqlite", cfg.Directory.DBPath)

	d, err := cfg.Broker.ParseTimeout()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "config.json", `{
  "broker": {"name": "groww", "base_url": "https://api.groww.in"},
  "directory": {"db_path": "./symbols.sqlite"}
}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "groww", cfg.Broker.Name)

	d, err := cfg.Broker.ParseTimeout()
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadFromFileInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"missing broker name", "broker:\n  base_url: https://x\ndirectory:\n  db_path: ./s.db\n"},
		{"missing base url", "broker:\n  name: groww\ndirectory:\n  db_path: ./s.db\n"},
		{"missing db path", "broker:\n  name: groww\n  base_url: https://x\n"},
		{"bad timeout", "broker:\n  name: groww\n  base_url: https://x\n  timeout: soon\ndirectory:\n  db_path: ./s.db\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeTemp(t, "config.yaml", tt.content)
			_, err := LoadFromFile(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
