package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Environment variables read by ConfigBuilder.WithEnvConfig.
const (
	envFormat  = "TINCTCONV_FORMAT"
	envPreview = "TINCTCONV_PREVIEW"
	envNoColor = "NO_COLOR"
)

// Format selects how command results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var _ pflag.Value = (*Format)(nil)

// ParseFormat parses a format name, case-insensitively. "yml" is accepted
// as an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", s)
	}
}

// String implements pflag.Value.
func (f *Format) String() string {
	return string(*f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// Config holds the settings shared by all commands.
type Config struct {
	// Format is the output format for command results.
	Format Format

	// Preview enables colour swatches in text output.
	Preview bool

	// NoColor suppresses all ANSI colour output, overriding Preview.
	NoColor bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{Format: FormatText}
}

// ConfigBuilder provides a fluent interface for resolving a Config.
type ConfigBuilder struct {
	config Config
	useEnv bool
	lookup func(string) (string, bool)
}

// NewConfigBuilder creates a builder starting from DefaultConfig.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: DefaultConfig(),
		lookup: os.LookupEnv,
	}
}

// WithConfig sets the base configuration.
func (b *ConfigBuilder) WithConfig(config Config) *ConfigBuilder {
	b.config = config
	return b
}

// WithEnvConfig layers environment variables over the base configuration.
// Reads TINCTCONV_FORMAT, TINCTCONV_PREVIEW and NO_COLOR.
func (b *ConfigBuilder) WithEnvConfig() *ConfigBuilder {
	b.useEnv = true
	return b
}

// Build resolves the configuration.
func (b *ConfigBuilder) Build() (Config, error) {
	config := b.config
	if !b.useEnv {
		return config, nil
	}

	if v, ok := b.lookup(envFormat); ok && v != "" {
		format, err := ParseFormat(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envFormat, err)
		}
		config.Format = format
	}

	if v, ok := b.lookup(envPreview); ok && v != "" {
		preview, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envPreview, err)
		}
		config.Preview = preview
	}

	// https://no-color.org: any non-empty value disables colour.
	if v, ok := b.lookup(envNoColor); ok && v != "" {
		config.NoColor = true
	}

	return config, nil
}
