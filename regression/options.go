package regression

import (
	"github.com/arloliu/hellomath/internal/options"
)

// Config holds the construction-time configuration of a Simple regression.
type Config struct {
	// HasIntercept selects the model y = slope*x + intercept when true,
	// and y = slope*x (fit through the origin) when false.
	HasIntercept bool
}

// defaultConfig returns the default config (intercept enabled).
func defaultConfig() Config {
	return Config{
		HasIntercept: true,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithIntercept sets whether the fitted model includes an intercept term.
func WithIntercept(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.HasIntercept = enabled
	})
}
