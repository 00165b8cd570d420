package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":8080")
	}
	if cfg.GeminiBaseURL != "https://generativelanguage.googleapis.com" {
		t.Errorf("GeminiBaseURL = %q, want default", cfg.GeminiBaseURL)
	}
	if cfg.GeminiModel != "gemini-3-flash-preview" {
		t.Errorf("GeminiModel = %q, want default", cfg.GeminiModel)
	}
	if cfg.SimulationInterval != "5s" {
		t.Errorf("SimulationInterval = %q, want %q", cfg.SimulationInterval, "5s")
	}
	if !cfg.SimulationEnabled {
		t.Error("SimulationEnabled should default to true")
	}
	if len(cfg.APIKeyList()) != 0 {
		t.Errorf("APIKeyList() = %v, want empty", cfg.APIKeyList())
	}
}

func TestLoad_EnvVarOverride(t *testing.T) {
	os.Clearenv()
	os.Setenv("LISTEN_ADDR", ":9090")
	os.Setenv("GEMINI_MODEL", "custom-model")
	os.Setenv("SIMULATION_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":9090")
	}
	if cfg.GeminiModel != "custom-model" {
		t.Errorf("GeminiModel = %q, want %q", cfg.GeminiModel, "custom-model")
	}
	if cfg.SimulationEnabled {
		t.Error("SimulationEnabled should be overridden to false")
	}
}

func TestInterval_ParsesDuration(t *testing.T) {
	cfg := &Config{SimulationInterval: "250ms"}
	if got := cfg.Interval(); got != 250*time.Millisecond {
		t.Errorf("Interval() = %v, want 250ms", got)
	}
}

func TestInterval_FallsBackOnInvalid(t *testing.T) {
	cfg := &Config{SimulationInterval: "not-a-duration"}
	if got := cfg.Interval(); got != 5*time.Second {
		t.Errorf("Interval() = %v, want 5s fallback", got)
	}
}

func TestAPIKeyList_SplitsAndTrims(t *testing.T) {
	cfg := &Config{APIKeys: "key-a, key-b ,,key-c"}
	keys := cfg.APIKeyList()
	if len(keys) != 3 {
		t.Fatalf("APIKeyList() returned %d keys, want 3", len(keys))
	}
	want := []string{"key-a", "key-b", "key-c"}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], k)
		}
	}
}
