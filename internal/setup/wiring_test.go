package setup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/diagnostics/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_TTL", "DIAGNOSTICS_API_PORT"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %s", cfg.LogLevel)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("expected no redis address, got %s", cfg.RedisAddr)
	}
	if cfg.RedisTTL != 0 {
		t.Errorf("expected no redis ttl override, got %s", cfg.RedisTTL)
	}
	if cfg.APIPort != "18082" {
		t.Errorf("expected default port 18082, got %s", cfg.APIPort)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TTL", "90s")
	t.Setenv("DIAGNOSTICS_API_PORT", "9000")

	cfg := LoadConfig()

	if cfg.LogLevel != "debug" || cfg.RedisAddr != "localhost:6379" || cfg.APIPort != "9000" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.RedisTTL != 90*time.Second {
		t.Errorf("expected ttl 90s, got %s", cfg.RedisTTL)
	}
}

func TestWire_WithoutRedis(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "diagnostics.yaml")
	if err := os.WriteFile(configPath, []byte("report:\n  max_width: 8\ncache:\n  enabled: true\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("DIAGNOSTICS_CONFIG_PATH", configPath)

	deps, err := Wire(context.Background(), &Config{}, newTestLogger())
	if err != nil {
		t.Fatalf("Wire() failed: %v", err)
	}
	defer deps.Close()

	if deps.Settings.Report.MaxWidth != 8 {
		t.Errorf("expected max width 8, got %d", deps.Settings.Report.MaxWidth)
	}

	req := models.DiagnosticRequest{ReportID: "wired", Entries: []string{"10", "11", "01"}}
	report, err := deps.Executor.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if report.LifeSupport.OxygenGenerator != "11" || report.LifeSupport.CO2Scrubber != "01" {
		t.Errorf("unexpected ratings %+v", report.LifeSupport)
	}

	_, err = deps.Executor.Execute(context.Background(), models.DiagnosticRequest{Entries: []string{"010101010"}})
	if err == nil {
		t.Error("expected configured max width to reject a 9 bit report")
	}
}

func TestWire_InvalidConfig(t *testing.T) {
	t.Setenv("DIAGNOSTICS_CONFIG_PATH", "/nonexistent/diagnostics.yaml")

	if _, err := Wire(context.Background(), &Config{}, newTestLogger()); err == nil {
		t.Error("expected Wire() to fail on a missing explicit config file")
	}
}
