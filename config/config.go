package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCurrency = "EUR"
	DefaultTaxRate  = "0.33"

	CurrencyEnvVar = "T212_CURRENCY"
	TaxRateEnvVar  = "CGT_RATE"
)

// Config is the explicit runtime configuration. Values are resolved
// with the precedence: explicit flag > config file > environment
// (including a .env file) > hard-coded default.
type Config struct {
	ReportingCurrency string
	TaxRate           decimal.Decimal
}

// Overrides carries explicitly supplied values (usually from flags).
// Empty strings mean "not supplied".
type Overrides struct {
	Currency string
	TaxRate  string
	File     string // optional YAML config file path
}

// fileConfig is the YAML config file shape. Rate is kept as a string so
// that values like "0.33" parse losslessly.
type fileConfig struct {
	Currency string `yaml:"currency"`
	Rate     string `yaml:"rate"`
}

func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	fc := &fileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Load resolves the configuration. A .env file in the working directory
// is honored if present.
func Load(o Overrides) (*Config, error) {
	_ = godotenv.Load()

	var fc *fileConfig
	if o.File != "" {
		var err error
		fc, err = loadFile(o.File)
		if err != nil {
			return nil, err
		}
	}

	currency := o.Currency
	if currency == "" && fc != nil {
		currency = fc.Currency
	}
	if currency == "" {
		currency = getEnv(CurrencyEnvVar, DefaultCurrency)
	}

	rateStr := o.TaxRate
	if rateStr == "" && fc != nil {
		rateStr = fc.Rate
	}
	if rateStr == "" {
		rateStr = getEnv(TaxRateEnvVar, DefaultTaxRate)
	}
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid tax rate %q: %w", rateStr, err)
	}

	cfg := &Config{ReportingCurrency: currency, TaxRate: rate}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ReportingCurrency == "" {
		return fmt.Errorf("reporting currency is required")
	}
	if c.TaxRate.IsNegative() {
		return fmt.Errorf("tax rate must not be negative")
	}
	return nil
}
