package yml

import "context"

type contextKey string

const configContextKey = contextKey("config")

// OutputFormat selects the serialization format used when marshalling a document.
type OutputFormat string

const (
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatJSON OutputFormat = "json"
)

// Config holds the output configuration used when marshalling a document.
type Config struct {
	Indentation  int          // The indentation level of the document
	OutputFormat OutputFormat // The output format to use when marshalling
	EnsureASCII  bool         // Whether to escape non-ASCII characters in JSON output
}

var defaultConfig = Config{
	Indentation:  2,
	OutputFormat: OutputFormatYAML,
}

// GetDefaultConfig returns a copy of the default output configuration.
func GetDefaultConfig() *Config {
	cfg := defaultConfig
	return &cfg
}

// ContextWithConfig attaches the provided config to the context.
func ContextWithConfig(ctx context.Context, config *Config) context.Context {
	if config == nil {
		return ctx
	}

	return context.WithValue(ctx, configContextKey, config)
}

// GetConfigFromContext returns a copy of the config attached to the context,
// or the default config. Callers may mutate the returned config without
// affecting the attached one.
func GetConfigFromContext(ctx context.Context) *Config {
	val := ctx.Value(configContextKey)
	if val == nil {
		return GetDefaultConfig()
	}

	attached, ok := val.(*Config)
	if !ok {
		return GetDefaultConfig()
	}

	cfg := *attached
	if cfg.Indentation <= 0 {
		cfg.Indentation = defaultConfig.Indentation
	}

	return &cfg
}
