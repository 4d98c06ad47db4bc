// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("EMBEDDER_URL", "http://localhost:9009")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.MatchThreshold != 0.6 {
		t.Errorf("expected default threshold 0.6, got %v", cfg.MatchThreshold)
	}
	if cfg.MaxImageDim != 500 {
		t.Errorf("expected default max dim 500, got %d", cfg.MaxImageDim)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("MATCH_THRESHOLD", "0.4")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "postgres://test", "-e", "http://embedder", "-threshold", "0.5"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.MatchThreshold != 0.5 {
		t.Errorf("CLI should override env: expected 0.5, got %v", cfg.MatchThreshold)
	}
}

func TestParseFlags_MissingDatabaseURL(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-e", "http://embedder"})
	if err == nil {
		t.Error("expected error for missing database URL")
	}
}

func TestParseFlags_MissingEmbedderURL(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-d", "postgres://test"})
	if err == nil {
		t.Error("expected error for missing embedder URL")
	}
}
