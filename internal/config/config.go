// =============================================================================
// Amazon Order Ledger - Configuration Module
// =============================================================================
//
// Configuration is optional: the built-in defaults match the column names
// and conventions of Amazon's order-history export, and a YAML file can
// override them for exports from other marketplaces or older formats.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mwhitfield/amzledger/internal/ledger"
)

// Config holds the run configuration.
type Config struct {
	// Columns maps the logical fields to input column headers.
	Columns Columns `yaml:"columns"`

	// OrderURLTemplate is the order-details URL with an {order_id}
	// placeholder. Defaults to the amazon.com template.
	OrderURLTemplate string `yaml:"order_url_template"`

	// Encoding is the character encoding of CSV inputs.
	// Supported: "utf-8" (default, BOM tolerated), "windows-1252",
	// "iso-8859-1". XLSX inputs ignore this.
	Encoding string `yaml:"encoding"`

	// ReportDir is where run reports for skipped rows are written.
	// Default: "./reports"
	ReportDir string `yaml:"report_dir"`
}

// Columns names the input columns of the orders and returns tables. The
// returns table shares the orders table's shape, so one set of names serves
// both.
type Columns struct {
	OrderID     string `yaml:"order_id"`
	OrderDate   string `yaml:"order_date"`
	Subtotal    string `yaml:"subtotal"`
	ProductName string `yaml:"product_name"`
}

// Default returns the configuration for a stock Amazon export.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads a YAML configuration file, fills unset fields with defaults
// and validates the result. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// RowMapping converts the configured column names into the normalizer's
// mapping form.
func (c *Config) RowMapping() ledger.RowMapping {
	return ledger.RowMapping{
		OrderID:     c.Columns.OrderID,
		OrderDate:   c.Columns.OrderDate,
		Subtotal:    c.Columns.Subtotal,
		ProductName: c.Columns.ProductName,
	}
}

func applyDefaults(cfg *Config) {
	def := ledger.DefaultRowMapping()
	if cfg.Columns.OrderID == "" {
		cfg.Columns.OrderID = def.OrderID
	}
	if cfg.Columns.OrderDate == "" {
		cfg.Columns.OrderDate = def.OrderDate
	}
	if cfg.Columns.Subtotal == "" {
		cfg.Columns.Subtotal = def.Subtotal
	}
	if cfg.Columns.ProductName == "" {
		cfg.Columns.ProductName = def.ProductName
	}
	if cfg.OrderURLTemplate == "" {
		cfg.OrderURLTemplate = ledger.DefaultOrderURLTemplate
	}
	if cfg.Encoding == "" {
		cfg.Encoding = "utf-8"
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "./reports"
	}
}

func validate(cfg *Config) error {
	switch strings.ToLower(cfg.Encoding) {
	case "utf-8", "utf8", "utf-8-sig", "windows-1252", "cp1252", "iso-8859-1", "latin-1", "latin1":
	default:
		return fmt.Errorf("unsupported encoding %q", cfg.Encoding)
	}
	if !strings.Contains(cfg.OrderURLTemplate, "{order_id}") {
		return fmt.Errorf("order_url_template must contain {order_id}")
	}
	return nil
}
