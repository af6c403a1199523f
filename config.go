package pdfmd

import (
	"fmt"

	"github.com/tsawler/pdfmd/layout"
	"github.com/tsawler/pdfmd/tables"
)

// Config bundles the thresholds that shape the Markdown output
type Config struct {
	Layout layout.Config `yaml:"layout" mapstructure:"layout"`
	Tables tables.Config `yaml:"tables" mapstructure:"tables"`

	// HeaderFooter controls removal of running headers and footers
	HeaderFooter layout.HeaderFooterConfig `yaml:"header_footer" mapstructure:"header_footer"`
}

// DefaultConfig returns the standard conversion thresholds
func DefaultConfig() Config {
	return Config{
		Layout:       layout.DefaultConfig(),
		Tables:       tables.DefaultConfig(),
		HeaderFooter: layout.DefaultHeaderFooterConfig(),
	}
}

// Validate checks every stage's configuration
func (c Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if err := c.Tables.Validate(); err != nil {
		return fmt.Errorf("tables: %w", err)
	}
	if c.HeaderFooter.Enabled {
		if err := c.HeaderFooter.Validate(); err != nil {
			return fmt.Errorf("header_footer: %w", err)
		}
	}
	return nil
}
