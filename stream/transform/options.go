package transform

import "github.com/cwbudde/algo-vecmath/cpu"

// Config holds construction settings shared by all units.
type Config struct {
	// Features is the CPU capability set kernel selection runs against.
	Features cpu.Features

	// Listeners are attached to parametrized units before the initial
	// constant is set, so each of them observes it.
	Listeners []Listener
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig selects kernels for the detected CPU.
func DefaultConfig() Config {
	return Config{
		Features: cpu.DetectFeatures(),
	}
}

// WithCPUFeatures selects kernels for the given capability set instead of
// the detected one. Use cpu.Features{ForceGeneric: true} to pin the
// portable kernels.
func WithCPUFeatures(features cpu.Features) Option {
	return func(cfg *Config) {
		cfg.Features = features
	}
}

// WithConstantListener attaches l to the constructed unit. Units without a
// constant ignore it.
func WithConstantListener(l Listener) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Listeners = append(cfg.Listeners, l)
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
