package config

import (
	"os"
	"path/filepath"
	"testing"

	"global-translator/internal/domain"
)

// TestDefaultSettings verifies baseline defaults are present.
func TestDefaultSettings(t *testing.T) {
	cfg := DefaultSettings()
	if cfg.APIBaseURL != "http://localhost:8080/api/v1" {
		t.Fatalf("api base url = %q", cfg.APIBaseURL)
	}
	if cfg.CountryCode != "IN" || cfg.TargetLanguage != "hi" {
		t.Fatalf("country/language = %s/%s, want IN/hi", cfg.CountryCode, cfg.TargetLanguage)
	}
	if cfg.PollIntervalSeconds != 2 {
		t.Fatalf("poll interval = %d, want 2", cfg.PollIntervalSeconds)
	}
	if cfg.MaxPollMinutes != 0 {
		t.Fatalf("max poll minutes = %d, want 0", cfg.MaxPollMinutes)
	}
}

// TestJSONStoreLoadMissingReturnsDefaults checks first-run behavior.
func TestJSONStoreLoadMissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "settings.json")
	store := NewJSONStore(path)

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", got)
	}
}

// TestJSONStoreSaveAndLoadRoundTrip checks persisted settings fidelity.
func TestJSONStoreSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "settings.json")
	store := NewJSONStore(path)
	want := domain.Settings{
		APIBaseURL:          "https://dubber.example.com/api/v1",
		CountryCode:         "FR",
		TargetLanguage:      "fr",
		PollIntervalSeconds: 5,
		MaxPollMinutes:      30,
	}

	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Fatalf("settings = %+v, want %+v", got, want)
	}
}

// TestJSONStoreLoadFillsMissingFields checks upgrades from older files.
func TestJSONStoreLoadFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "settings.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"countryCode":"JP"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := NewJSONStore(path)
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.CountryCode != "JP" {
		t.Fatalf("country = %q, want JP", got.CountryCode)
	}
	if got.APIBaseURL == "" || got.PollIntervalSeconds != 2 {
		t.Fatalf("defaults not filled: %+v", got)
	}
}

// TestJSONStoreLoadInvalidJSON checks parse error handling.
func TestJSONStoreLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "settings.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not-json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := NewJSONStore(path)
	if _, err := store.Load(); err == nil {
		t.Fatal("expected json parse error")
	}
}

// TestApplyEnvOverrides checks GT_* environment overrides.
func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("GT_API_BASE_URL", "http://staging:9090/api/v1")
	t.Setenv("GT_POLL_INTERVAL_SECONDS", "7")
	t.Setenv("GT_MAX_POLL_MINUTES", "15")

	got := ApplyEnv(DefaultSettings())
	if got.APIBaseURL != "http://staging:9090/api/v1" {
		t.Fatalf("api base url = %q", got.APIBaseURL)
	}
	if got.PollIntervalSeconds != 7 || got.MaxPollMinutes != 15 {
		t.Fatalf("intervals = %d/%d, want 7/15", got.PollIntervalSeconds, got.MaxPollMinutes)
	}
}

// TestApplyEnvIgnoresInvalidNumbers checks malformed override handling.
func TestApplyEnvIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("GT_POLL_INTERVAL_SECONDS", "soon")

	got := ApplyEnv(DefaultSettings())
	if got.PollIntervalSeconds != 2 {
		t.Fatalf("poll interval = %d, want default 2", got.PollIntervalSeconds)
	}
}
