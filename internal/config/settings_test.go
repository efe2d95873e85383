package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

func TestLoadSettings_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "info", s.Logging.Level)
	assert.Equal(t, "console", s.Logging.Format)
	assert.Equal(t, "console", s.Output.Format)
	assert.Equal(t, domain.DefaultRates(), s.Rates)
}

func TestLoadSettings_File(t *testing.T) {
	doc := "logging:\n  level: debug\n  format: json\noutput:\n  format: csv\nrates:\n  ppf_rate: 7.5\n  cess_rate: 3\n"
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "json", s.Logging.Format)
	assert.Equal(t, "csv", s.Output.Format)
	assert.True(t, s.Rates.PPFRate.Equal(decimal.RequireFromString("7.5")))
	assert.True(t, s.Rates.CessRate.Equal(decimal.NewFromInt(3)))
	assert.True(t, s.Rates.EPFRate.Equal(domain.DefaultRates().EPFRate))
}

func TestLoadSettings_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644))
	t.Setenv("WEALTHCALC_LOGGING_LEVEL", "warn")
	t.Setenv("WEALTHCALC_RATES_EPF_RATE", "8.25")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", s.Logging.Level)
	assert.True(t, s.Rates.EPFRate.Equal(decimal.RequireFromString("8.25")))
}

func TestLoadSettings_ExplicitFileMissing(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
