package bankxterm

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Node     int64 `yaml:"node"`
	Accounts struct {
		SavingsOpening decimal.Decimal `yaml:"savings_opening"`
		CurrentOpening decimal.Decimal `yaml:"current_opening"`
	} `yaml:"accounts"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Statement struct {
		Dir string `yaml:"dir"`
	} `yaml:"statement"`
}

func DefaultConfig() *Config {
	cfg := &Config{Node: 1}
	cfg.Accounts.SavingsOpening = SavingsMinimumBalance
	cfg.Log.Level = zerolog.LevelWarnValue
	cfg.Statement.Dir = "."
	return cfg
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// not an error; the defaults are returned as is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	fl, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	defer fl.Close()

	if err = DecodeConfig(fl, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeConfig decodes YAML from r into cfg and validates the result.
func DecodeConfig(r io.Reader, cfg *Config) error {
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	fields := map[string]string{}
	// snowflake reserves 10 bits for the node number
	if c.Node < 0 || c.Node > 1023 {
		fields["node"] = "must be between 0 and 1023"
	}
	if c.Accounts.CurrentOpening.IsNegative() {
		fields["accounts.current_opening"] = "must not be negative"
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		fields["log.level"] = "unknown level"
	}
	if len(fields) > 0 {
		return ErrInvalidConfig{Fields: fields}
	}
	return nil
}

func (c *Config) SavingsOpening() decimal.Decimal {
	return c.Accounts.SavingsOpening
}

func (c *Config) CurrentOpening() decimal.Decimal {
	return c.Accounts.CurrentOpening
}
