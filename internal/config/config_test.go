package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		setEnv       bool
		want         string
	}{
		{
			name:         "returns default when env not set",
			key:          "TEST_GET_ENV_MISSING",
			defaultValue: "default_val",
			setEnv:       false,
			want:         "default_val",
		},
		{
			name:         "returns env value when set",
			key:          "TEST_GET_ENV_SET",
			defaultValue: "default_val",
			envValue:     "custom_val",
			setEnv:       true,
			want:         "custom_val",
		},
		{
			name:         "returns default when env is empty string",
			key:          "TEST_GET_ENV_EMPTY",
			defaultValue: "fallback",
			envValue:     "",
			setEnv:       true,
			want:         "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			got := getEnv(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnv(%q, %q) = %q, want %q", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue int
		envValue     string
		setEnv       bool
		want         int
	}{
		{
			name:         "returns default when env not set",
			key:          "TEST_INT_MISSING",
			defaultValue: 42,
			setEnv:       false,
			want:         42,
		},
		{
			name:         "returns parsed int when valid",
			key:          "TEST_INT_VALID",
			defaultValue: 10,
			envValue:     "100",
			setEnv:       true,
			want:         100,
		},
		{
			name:         "returns default when not a number",
			key:          "TEST_INT_INVALID",
			defaultValue: 7,
			envValue:     "not-a-number",
			setEnv:       true,
			want:         7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			got := getEnvAsInt(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnvAsInt(%q, %d) = %d, want %d", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestGetEnvAsSlice(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue []string
		envValue     string
		setEnv       bool
		want         []string
	}{
		{
			name:         "returns default when env not set",
			key:          "TEST_SLICE_MISSING",
			defaultValue: []string{"a", "b"},
			setEnv:       false,
			want:         []string{"a", "b"},
		},
		{
			name:         "splits and trims comma separated values",
			key:          "TEST_SLICE_SET",
			defaultValue: []string{"a"},
			envValue:     " one , two ,three",
			setEnv:       true,
			want:         []string{"one", "two", "three"},
		},
		{
			name:         "returns default when only separators",
			key:          "TEST_SLICE_SEPARATORS",
			defaultValue: []string{"fallback"},
			envValue:     " , , ",
			setEnv:       true,
			want:         []string{"fallback"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			got := getEnvAsSlice(tt.key, tt.defaultValue)
			if len(got) != len(tt.want) {
				t.Fatalf("getEnvAsSlice(%q) = %v, want %v", tt.key, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("getEnvAsSlice(%q)[%d] = %q, want %q", tt.key, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Default port = %q, want 8080", cfg.Port)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("Default driver = %q, want sqlite", cfg.DBDriver)
	}
	if cfg.DBQueryTimeout != 5*time.Second {
		t.Errorf("Default query timeout = %v, want 5s", cfg.DBQueryTimeout)
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		t.Error("Expected default CORS origins")
	}
}

func TestMustInitLogger(t *testing.T) {
	t.Run("development logger", func(t *testing.T) {
		logger := MustInitLogger("development", "info")
		if logger == nil {
			t.Fatal("Expected non-nil logger from MustInitLogger")
		}
		logger.Info("test from MustInitLogger")
	})

	t.Run("falls back to info on bad level", func(t *testing.T) {
		logger := MustInitLogger("production", "not-a-level")
		if logger == nil {
			t.Fatal("Expected non-nil logger from MustInitLogger")
		}
	})
}
