package fontatlas

// Config holds atlas generation settings.
type Config struct {
	// Width is the fixed atlas width in pixels; the height grows to
	// fit. Default: 256.
	Width int

	// Padding is the minimum gap between packed glyphs, in pixels.
	// Default: 1.
	Padding int

	// Tolerance is the maximum curve flattening error in pixels.
	// Default: 0.35.
	Tolerance float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:     256,
		Padding:   1,
		Tolerance: 0.35,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width < 16 {
		return &ConfigError{Field: "Width", Reason: "must be at least 16"}
	}
	if c.Padding < 1 {
		return &ConfigError{Field: "Padding", Reason: "must be at least 1"}
	}
	if c.Tolerance <= 0 {
		return &ConfigError{Field: "Tolerance", Reason: "must be positive"}
	}
	return nil
}
