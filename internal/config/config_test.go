package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	os.Unsetenv(EnvPort)
	os.Unsetenv(EnvSilenceThresholdDB)
	os.Unsetenv(EnvSilenceMinSeconds)
	os.Unsetenv(EnvSilenceAutoAccept)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port() != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port(), DefaultPort)
	}
	if cfg.SilenceThresholdDB() != DefaultSilenceThresholdDB {
		t.Errorf("SilenceThresholdDB = %v, want %v", cfg.SilenceThresholdDB(), DefaultSilenceThresholdDB)
	}
	if cfg.SilenceMinSeconds() != DefaultSilenceMinSeconds {
		t.Errorf("SilenceMinSeconds = %v, want %v", cfg.SilenceMinSeconds(), DefaultSilenceMinSeconds)
	}
	if cfg.SilenceAutoAccept() != 0 {
		t.Errorf("SilenceAutoAccept = %v, want disabled by default", cfg.SilenceAutoAccept())
	}
}

func TestPort_Invalid(t *testing.T) {
	os.Setenv(EnvPort, "not-a-port")
	defer os.Unsetenv(EnvPort)

	if _, err := New(); err == nil {
		t.Error("expected error for non-numeric port")
	}

	os.Setenv(EnvPort, "70000")
	if _, err := New(); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestExportsDir_Default(t *testing.T) {
	os.Setenv(EnvDataDir, "/tmp/loom-test")
	os.Unsetenv(EnvExportsDir)
	defer os.Unsetenv(EnvDataDir)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join("/tmp/loom-test", "exports")
	if cfg.ExportsDir() != want {
		t.Errorf("ExportsDir = %q, want %q", cfg.ExportsDir(), want)
	}
}

func TestExportsDir_FromEnv(t *testing.T) {
	os.Setenv(EnvExportsDir, "/tmp/custom-exports")
	defer os.Unsetenv(EnvExportsDir)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ExportsDir() != "/tmp/custom-exports" {
		t.Errorf("ExportsDir = %q, want override", cfg.ExportsDir())
	}
}

func TestSilenceTuning_FromEnv(t *testing.T) {
	os.Setenv(EnvSilenceThresholdDB, "-40")
	os.Setenv(EnvSilenceMinSeconds, "1.5")
	os.Setenv(EnvSilenceAutoAccept, "3")
	defer func() {
		os.Unsetenv(EnvSilenceThresholdDB)
		os.Unsetenv(EnvSilenceMinSeconds)
		os.Unsetenv(EnvSilenceAutoAccept)
	}()

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SilenceThresholdDB() != -40 {
		t.Errorf("SilenceThresholdDB = %v, want -40", cfg.SilenceThresholdDB())
	}
	if cfg.SilenceMinSeconds() != 1.5 {
		t.Errorf("SilenceMinSeconds = %v, want 1.5", cfg.SilenceMinSeconds())
	}
	if cfg.SilenceAutoAccept() != 3 {
		t.Errorf("SilenceAutoAccept = %v, want 3", cfg.SilenceAutoAccept())
	}
}

func TestSilenceMinSeconds_Invalid(t *testing.T) {
	os.Setenv(EnvSilenceMinSeconds, "0")
	defer os.Unsetenv(EnvSilenceMinSeconds)

	if _, err := New(); err == nil {
		t.Error("expected error for non-positive minimum silence length")
	}
}
