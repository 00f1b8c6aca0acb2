// Package config loads the statement import configuration from a YAML file
// with optional overrides from the environment or a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"fintrack/internal/domain"
	"fintrack/internal/engine"
)

// Config represents the application configuration.
type Config struct {
	Paths      PathsConfig  `yaml:"paths"`
	Files      FilesConfig  `yaml:"files"`
	Engine     EngineConfig `yaml:"engine"`
	Categories Categories   `yaml:"categories"`
}

type PathsConfig struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
	LedgerDB  string `yaml:"ledger_db"`
}

type FilesConfig struct {
	Filetype   string `yaml:"filetype"`
	OutputFile string `yaml:"output_file"`
}

// EngineConfig overrides the reconstruction defaults. Zero values keep the default.
type EngineConfig struct {
	BalanceTolerance string  `yaml:"balance_tolerance"`
	YTolerance       float64 `yaml:"y_tolerance"`
	XTolerance       float64 `yaml:"x_tolerance"`
	Currency         string  `yaml:"currency"`
	StartLabel       string  `yaml:"start_label"`
	EndLabel         string  `yaml:"end_label"`
	DefaultCategory  string  `yaml:"default_category"`
	DuplicatePolicy  string  `yaml:"duplicate_policy"`
	AmountMatch      string  `yaml:"amount_match"`
}

// Categories keeps the category mapping in file order.
type Categories struct {
	Rules domain.CategoryRules
}

// UnmarshalYAML walks the mapping node so that rule order survives decoding.
func (c *Categories) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("categories: expected a mapping, got line %d", node.Line)
	}
	c.Rules = make(domain.CategoryRules, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var rule domain.CategoryRule
		if err := node.Content[i+1].Decode(&rule); err != nil {
			return fmt.Errorf("category %q: %w", node.Content[i].Value, err)
		}
		rule.ID = node.Content[i].Value
		for k, kw := range rule.Keywords {
			rule.Keywords[k] = strings.ToLower(kw)
		}
		c.Rules = append(c.Rules, rule)
	}
	return nil
}

// Load reads the YAML file at path and applies environment overrides.
// envPath, when given, names a .env file that must exist; otherwise a .env
// in the working directory is loaded if present.
func Load(path string, envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// Parse decodes YAML configuration and fills in defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Files.Filetype == "" {
		cfg.Files.Filetype = "pdf"
	}
	if cfg.Files.OutputFile == "" {
		cfg.Files.OutputFile = "transactions.csv"
	}
	cfg.Files.Filetype = strings.ToLower(strings.TrimPrefix(cfg.Files.Filetype, "."))
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Paths.InputDir = getEnvOrDefault("FINTRACK_INPUT_DIR", c.Paths.InputDir)
	c.Paths.OutputDir = getEnvOrDefault("FINTRACK_OUTPUT_DIR", c.Paths.OutputDir)
	c.Paths.LedgerDB = getEnvOrDefault("FINTRACK_LEDGER_DB", c.Paths.LedgerDB)
	c.Files.Filetype = strings.ToLower(getEnvOrDefault("FINTRACK_FILETYPE", c.Files.Filetype))
	c.Files.OutputFile = getEnvOrDefault("FINTRACK_OUTPUT_FILE", c.Files.OutputFile)
}

// Validate checks required fields and engine settings.
func (c *Config) Validate() error {
	var errs []error
	if c.Paths.InputDir == "" {
		errs = append(errs, errors.New("paths.input_dir is required"))
	}
	if c.Paths.OutputDir == "" {
		errs = append(errs, errors.New("paths.output_dir is required"))
	}
	for _, rule := range c.Categories.Rules {
		if rule.Name == "" {
			errs = append(errs, fmt.Errorf("category %q has no name", rule.ID))
		}
		for _, kw := range rule.Keywords {
			if kw == "" {
				errs = append(errs, fmt.Errorf("category %q has an empty keyword", rule.ID))
			}
		}
	}
	if _, err := c.EngineOptions(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// EngineOptions converts the engine section into engine options.
func (c *Config) EngineOptions() ([]engine.Option, error) {
	e := c.Engine
	var opts []engine.Option
	if e.BalanceTolerance != "" {
		tol, err := decimal.NewFromString(e.BalanceTolerance)
		if err != nil {
			return nil, fmt.Errorf("engine.balance_tolerance: %w", err)
		}
		opts = append(opts, engine.WithBalanceTolerance(tol))
	}
	if e.YTolerance > 0 {
		opts = append(opts, engine.WithYTolerance(e.YTolerance))
	}
	if e.XTolerance > 0 {
		opts = append(opts, engine.WithXTolerance(e.XTolerance))
	}
	if e.Currency != "" {
		opts = append(opts, engine.WithCurrency(e.Currency))
	}
	if e.StartLabel != "" || e.EndLabel != "" {
		start, end := e.StartLabel, e.EndLabel
		if start == "" {
			start = engine.DefaultStartLabel
		}
		if end == "" {
			end = engine.DefaultEndLabel
		}
		opts = append(opts, engine.WithBalanceLabels(start, end))
	}
	if e.DefaultCategory != "" {
		opts = append(opts, engine.WithDefaultCategory(e.DefaultCategory))
	}
	switch p := engine.DuplicatePolicy(e.DuplicatePolicy); p {
	case "":
	case engine.LastWriteWins, engine.FirstWriteWins:
		opts = append(opts, engine.WithDuplicatePolicy(p))
	default:
		return nil, fmt.Errorf("engine.duplicate_policy: unknown policy %q", e.DuplicatePolicy)
	}
	switch m := engine.AmountMatch(e.AmountMatch); m {
	case "":
	case engine.AmountMatchOneSided, engine.AmountMatchAbsolute:
		opts = append(opts, engine.WithAmountMatch(m))
	default:
		return nil, fmt.Errorf("engine.amount_match: unknown mode %q", e.AmountMatch)
	}
	return opts, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
