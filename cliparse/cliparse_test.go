package cliparse

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "BASE_URL", "ADMIN_TOKEN"} {
		t.Setenv(key, "")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 3322 {
		t.Errorf("Expected default port 3322, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected default database type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "file:flashpoll.db" {
		t.Errorf("Expected default database URL, got %q", cfg.DatabaseURL)
	}
	if cfg.BaseURL != "http://localhost:3322" {
		t.Errorf("Expected derived base URL, got %q", cfg.BaseURL)
	}
	if cfg.AdminToken != "" {
		t.Errorf("Expected empty admin token, got %q", cfg.AdminToken)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{
		"-p", "8080",
		"-t", "postgres",
		"-d", "postgres://localhost/flashpoll",
		"-b", "https://polls.example.com/",
		"-admin-token", "secret",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("Expected database type postgres, got %q", cfg.DatabaseType)
	}
	if cfg.BaseURL != "https://polls.example.com" {
		t.Errorf("Expected trailing slash trimmed, got %q", cfg.BaseURL)
	}
	if cfg.AdminToken != "secret" {
		t.Errorf("Expected admin token from flag, got %q", cfg.AdminToken)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_TOKEN", "env-secret")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000 from env, got %d", cfg.Port)
	}
	if cfg.AdminToken != "env-secret" {
		t.Errorf("Expected admin token from env, got %q", cfg.AdminToken)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{
			name: "invalid PORT env",
			env:  map[string]string{"PORT": "not-a-number"},
		},
		{
			name: "postgres without URL",
			args: []string{"-t", "postgres"},
		},
		{
			name: "unknown database type",
			args: []string{"-t", "mysql"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
