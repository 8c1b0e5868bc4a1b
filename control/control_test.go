// File: control/control_test.go

package control

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMetricsCounters(t *testing.T) {
	mr := NewMetricsRegistry()
	if got := mr.Counter("requests_handled_total"); got != 0 {
		t.Errorf("unregistered counter = %d, want 0", got)
	}
	mr.Inc("requests_handled_total")
	mr.Inc("requests_handled_total")
	if got := mr.Counter("requests_handled_total"); got != 2 {
		t.Errorf("counter = %d, want 2", got)
	}
}

func TestMetricsSnapshotIsCopy(t *testing.T) {
	mr := NewMetricsRegistry()
	mr.Set("last_job_duration", "5ms")
	snap := mr.GetSnapshot()
	snap["last_job_duration"] = "tampered"
	if got := mr.GetSnapshot()["last_job_duration"]; got != "5ms" {
		t.Errorf("snapshot mutation leaked into registry: %v", got)
	}
}

func TestMetricsLastUpdated(t *testing.T) {
	mr := NewMetricsRegistry()
	if !mr.LastUpdated().IsZero() {
		t.Error("LastUpdated() nonzero before any write")
	}
	mr.Inc("connections_total")
	if mr.LastUpdated().IsZero() {
		t.Error("LastUpdated() zero after Inc")
	}
}

func TestLoadAppConfigDefaults(t *testing.T) {
	cfg, err := LoadAppConfig("")
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}
	want := DefaultAppConfig()
	if *cfg != *want {
		t.Errorf("LoadAppConfig(\"\") = %+v, want %+v", cfg, want)
	}
}

func TestLoadAppConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "httpd.toml")
	data := "listen_addr = \"0.0.0.0:9000\"\nworkers = 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:9000" || cfg.Workers != 4 {
		t.Errorf("overridden fields = %q/%d", cfg.ListenAddr, cfg.Workers)
	}
	// untouched keys keep defaults
	if cfg.ReadBufferSize != 30000 || cfg.Root != "public" || cfg.LogLevel != "info" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	if _, err := LoadAppConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadAppConfig() = nil error for missing file")
	}
}

func TestInitLoggingWritesToSink(t *testing.T) {
	var buf bytes.Buffer
	if err := InitLogging("debug", &buf); err != nil {
		t.Fatalf("InitLogging() error: %v", err)
	}
	defer ShutdownLogging()

	log := Logger()
	log.Info().Str("event", "probe").Msg("logging test")
	if !strings.Contains(buf.String(), `"event":"probe"`) {
		t.Errorf("log output = %q", buf.String())
	}
}

func TestInitLoggingRejectsBadLevel(t *testing.T) {
	if err := InitLogging("loud", os.Stderr); err == nil {
		t.Error("InitLogging(\"loud\") = nil error")
	}
}

func TestShutdownLoggingSilences(t *testing.T) {
	var buf bytes.Buffer
	if err := InitLogging("info", &buf); err != nil {
		t.Fatal(err)
	}
	ShutdownLogging()
	log := Logger()
	log.Error().Msg("should not appear")
	if buf.Len() != 0 {
		t.Errorf("output after shutdown: %q", buf.String())
	}
}
