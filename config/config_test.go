package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv(CurrencyEnvVar, "")
	t.Setenv(TaxRateEnvVar, "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(Overrides{})
	require.NoError(t, err)
	require.Equal(t, "EUR", cfg.ReportingCurrency)
	require.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.33")))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(CurrencyEnvVar, "GBP")
	t.Setenv(TaxRateEnvVar, "0.4")
	cfg, err := Load(Overrides{})
	require.NoError(t, err)
	require.Equal(t, "GBP", cfg.ReportingCurrency)
	require.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.4")))
}

func TestExplicitOverridesBeatEnv(t *testing.T) {
	t.Setenv(CurrencyEnvVar, "GBP")
	t.Setenv(TaxRateEnvVar, "0.4")
	cfg, err := Load(Overrides{Currency: "USD", TaxRate: "0.2"})
	require.NoError(t, err)
	require.Equal(t, "USD", cfg.ReportingCurrency)
	require.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.2")))
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cgt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestConfigFileBeatsEnv(t *testing.T) {
	t.Setenv(CurrencyEnvVar, "GBP")
	t.Setenv(TaxRateEnvVar, "0.4")
	path := writeConfigFile(t, "currency: USD\nrate: \"0.1\"\n")

	cfg, err := Load(Overrides{File: path})
	require.NoError(t, err)
	require.Equal(t, "USD", cfg.ReportingCurrency)
	require.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.1")))
}

func TestFlagBeatsConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, "currency: USD\nrate: \"0.1\"\n")

	cfg, err := Load(Overrides{Currency: "CHF", File: path})
	require.NoError(t, err)
	require.Equal(t, "CHF", cfg.ReportingCurrency)
	// Rate not overridden: file value applies.
	require.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.1")))
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(Overrides{TaxRate: "a third"})
	require.Error(t, err)

	_, err = Load(Overrides{TaxRate: "-0.1"})
	require.Error(t, err)

	_, err = Load(Overrides{File: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)

	path := writeConfigFile(t, ":\tnot yaml{{{")
	_, err = Load(Overrides{File: path})
	require.Error(t, err)
}
