package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Full(t *testing.T) {
	cfg, err := Parse("sure.cue", []byte(`
format:  "json"
verbose: true
timeout: "1m30s"
record:  "ledger.db"
`))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Format:  FormatJSON,
		Verbose: true,
		Timeout: 90 * time.Second,
		Record:  "ledger.db",
	}, cfg)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse("sure.cue", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown format", `format: "xml"`},
		{"unknown field", `colour: "blue"`},
		{"bad timeout", `timeout: "soon"`},
		{"wrong type", `verbose: "yes"`},
		{"syntax", `format: `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("sure.cue", []byte(tt.src))
			require.Error(t, err)
			assert.True(t, IsConfigError(err), "got %T: %v", err, err)
		})
	}
}

func TestLoad_MissingOptionalFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.cue"))
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestLoad_DefaultFileName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`timeout: "2s"`), 0o644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestError_NamesField(t *testing.T) {
	_, err := Parse("project.cue", []byte("verbose: true\nformat: \"xml\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}
