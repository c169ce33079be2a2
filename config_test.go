package fontatlas

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"default", DefaultConfig(), ""},
		{"minimum width", Config{Width: 16, Padding: 1, Tolerance: 0.35}, ""},
		{"narrow", Config{Width: 8, Padding: 1, Tolerance: 0.35}, "Width"},
		{"no padding", Config{Width: 256, Padding: 0, Tolerance: 0.35}, "Padding"},
		{"zero tolerance", Config{Width: 256, Padding: 1}, "Tolerance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate failed: %v", err)
				}
				return
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, cerr.Field)
			}
		})
	}
}
