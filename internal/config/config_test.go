package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("COLLABORATOR_TIMEOUT", "")
	t.Setenv("SCHEDULER_ENABLED", "")
	t.Setenv("PENALTY_DAILY_CRON", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.CollaboratorTimeout != 5*time.Second {
		t.Errorf("CollaboratorTimeout = %s, want 5s", cfg.CollaboratorTimeout)
	}
	if !cfg.SchedulerEnabled {
		t.Error("scheduler should be enabled by default")
	}
	if cfg.PenaltyDailyCron != "0 2 * * *" {
		t.Errorf("PenaltyDailyCron = %q", cfg.PenaltyDailyCron)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_MAX_OPEN_CONNS", "40")
	t.Setenv("COLLABORATOR_TIMEOUT", "750ms")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	if cfg.DBHost != "db" || cfg.DBMaxOpenConns != 40 {
		t.Errorf("db overrides not applied: %+v", cfg)
	}
	if cfg.CollaboratorTimeout != 750*time.Millisecond {
		t.Errorf("CollaboratorTimeout = %s", cfg.CollaboratorTimeout)
	}
	if cfg.SchedulerEnabled {
		t.Error("SCHEDULER_ENABLED=false ignored")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "many")
	t.Setenv("SCHEDULER_TIMEOUT", "-5m")

	cfg := Load()

	if cfg.DBMaxIdleConns != 5 {
		t.Errorf("DBMaxIdleConns = %d, want 5", cfg.DBMaxIdleConns)
	}
	if cfg.SchedulerTimeout != 10*time.Minute {
		t.Errorf("SchedulerTimeout = %s, want 10m", cfg.SchedulerTimeout)
	}
}
