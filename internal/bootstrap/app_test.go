package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"global-translator/internal/api"
	"global-translator/internal/config"
	"global-translator/internal/domain"
	"global-translator/internal/jobs"
)

// fakeStore records saved settings for App tests.
type fakeStore struct {
	settings domain.Settings
	saved    []domain.Settings
}

// Load returns preconfigured settings.
func (s *fakeStore) Load() (domain.Settings, error) {
	return s.settings, nil
}

// Save records the settings for assertions.
func (s *fakeStore) Save(settings domain.Settings) error {
	s.settings = settings
	s.saved = append(s.saved, settings)
	return nil
}

// fakeAPI drives the controller to a quick completion.
type fakeAPI struct {
	submitID int64
	status   api.JobStatus
	url      string
}

// SubmitJob returns the configured job id.
func (f *fakeAPI) SubmitJob(ctx context.Context, filePath, targetLang string, options map[string]any) (int64, error) {
	return f.submitID, nil
}

// GetJobStatus returns the configured snapshot.
func (f *fakeAPI) GetJobStatus(ctx context.Context, jobID int64) (api.JobStatus, error) {
	return f.status, nil
}

// GetDownload returns the configured URL.
func (f *fakeAPI) GetDownload(ctx context.Context, jobID int64) (string, error) {
	return f.url, nil
}

// newTestApp builds an App around a fake transport without Wails.
func newTestApp(t *testing.T, client jobs.API) (*App, *fakeStore) {
	t.Helper()
	store := &fakeStore{settings: config.DefaultSettings()}
	app := &App{
		Settings: store.settings,
		Store:    store,
		events:   jobs.NewEventBus(100),
	}
	app.Controller = jobs.NewController(client, 10*time.Millisecond, 0, app.events)
	t.Cleanup(app.Controller.Shutdown)
	return app, store
}

// writeTempVideo creates a small fake mp4 for selection tests.
func writeTempVideo(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, []byte("fake-mp4"), 0o644); err != nil {
		t.Fatalf("write video: %v", err)
	}
	return path
}

// waitForJobState polls until the app's job reaches the wanted state.
func waitForJobState(t *testing.T, app *App, want domain.JobState) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if app.CurrentJob().State == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("state = %s, want %s", app.CurrentJob().State, want)
}

// TestStartDubbingWithoutSelection checks the local validation error.
func TestStartDubbingWithoutSelection(t *testing.T) {
	app, _ := newTestApp(t, &fakeAPI{})

	snap, err := app.StartDubbing()
	if !errors.Is(err, jobs.ErrNoFileSelected) {
		t.Fatalf("error = %v, want %v", err, jobs.ErrNoFileSelected)
	}
	if snap.ErrorMessage != "Please select a file first" {
		t.Fatalf("message = %q", snap.ErrorMessage)
	}
}

// TestSelectVideoDefaultsCountryFromSettings checks selection wiring.
func TestSelectVideoDefaultsCountryFromSettings(t *testing.T) {
	app, _ := newTestApp(t, &fakeAPI{})

	selection, err := app.SelectVideo(writeTempVideo(t))
	if err != nil {
		t.Fatalf("SelectVideo: %v", err)
	}
	if selection.CountryCode != "IN" || selection.TargetLanguage != "hi" {
		t.Fatalf("selection defaults = %s/%s, want IN/hi", selection.CountryCode, selection.TargetLanguage)
	}
	if selection.FileName != "clip.mp4" || selection.FileSize == 0 {
		t.Fatalf("file metadata missing: %+v", selection)
	}
}

// TestDubbingFlowCompletesAndExposesEvents walks the bound methods end
// to end against a fake transport.
func TestDubbingFlowCompletesAndExposesEvents(t *testing.T) {
	app, _ := newTestApp(t, &fakeAPI{
		submitID: 42,
		status:   api.JobStatus{Status: "COMPLETED", Progress: 100},
		url:      "https://cdn.example.com/out/42.mp4",
	})

	if _, err := app.SelectVideo(writeTempVideo(t)); err != nil {
		t.Fatalf("SelectVideo: %v", err)
	}
	if _, err := app.StartDubbing(); err != nil {
		t.Fatalf("StartDubbing: %v", err)
	}
	waitForJobState(t, app, domain.JobStateCompleted)

	if got := app.CurrentJob().JobID; got != 42 {
		t.Fatalf("job id = %d, want 42", got)
	}

	url, err := app.GetDownloadLink()
	if err != nil {
		t.Fatalf("GetDownloadLink: %v", err)
	}
	if url != "https://cdn.example.com/out/42.mp4" {
		t.Fatalf("url = %q", url)
	}

	if len(app.JobEvents(0)) == 0 {
		t.Fatal("expected job events")
	}
}

// TestSetTargetLanguageValidatesAgainstCatalog checks selection rules.
func TestSetTargetLanguageValidatesAgainstCatalog(t *testing.T) {
	app, store := newTestApp(t, &fakeAPI{})

	if _, err := app.SetTargetLanguage("ZZ", "xx"); err == nil {
		t.Fatal("expected error for unknown country")
	}
	if _, err := app.SetTargetLanguage("FR", "hi"); err == nil {
		t.Fatal("expected error for language not offered in FR")
	}

	selection, err := app.SetTargetLanguage("FR", "fr")
	if err != nil {
		t.Fatalf("SetTargetLanguage: %v", err)
	}
	if selection.CountryCode != "FR" || selection.TargetLanguage != "fr" {
		t.Fatalf("selection = %s/%s, want FR/fr", selection.CountryCode, selection.TargetLanguage)
	}
	if len(store.saved) == 0 || store.saved[len(store.saved)-1].TargetLanguage != "fr" {
		t.Fatal("expected updated settings to be persisted")
	}
}

// TestSaveSettingsRebuildsControllerAndKeepsSelection checks that a
// transport change does not lose the pending selection.
func TestSaveSettingsRebuildsControllerAndKeepsSelection(t *testing.T) {
	app, store := newTestApp(t, &fakeAPI{})

	if _, err := app.SelectVideo(writeTempVideo(t)); err != nil {
		t.Fatalf("SelectVideo: %v", err)
	}
	before := app.Controller

	settings := store.settings
	settings.APIBaseURL = "http://staging:9090/api/v1/"
	saved, err := app.SaveSettings(settings)
	if err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	if saved.APIBaseURL != "http://staging:9090/api/v1" {
		t.Fatalf("api base url = %q, want trailing slash trimmed", saved.APIBaseURL)
	}

	if app.Controller == before {
		t.Fatal("expected a rebuilt controller")
	}
	if got := app.Controller.Selection(); got.FileName != "clip.mp4" {
		t.Fatalf("selection lost after rebuild: %+v", got)
	}
}

// TestNormalizeSettingsAppliesCatalogDefaults checks fallback rules.
func TestNormalizeSettingsAppliesCatalogDefaults(t *testing.T) {
	got := normalizeSettings(domain.Settings{
		APIBaseURL:  " http://localhost:8080/api/v1/ ",
		CountryCode: "ZZ",
	})

	if got.APIBaseURL != "http://localhost:8080/api/v1" {
		t.Fatalf("api base url = %q", got.APIBaseURL)
	}
	if got.CountryCode != "IN" || got.TargetLanguage != "hi" {
		t.Fatalf("country/language = %s/%s, want IN/hi", got.CountryCode, got.TargetLanguage)
	}
	if got.PollIntervalSeconds != 2 {
		t.Fatalf("poll interval = %d, want 2", got.PollIntervalSeconds)
	}

	got = normalizeSettings(domain.Settings{CountryCode: "FR"})
	if got.TargetLanguage != "fr" {
		t.Fatalf("language = %q, want first offered fr", got.TargetLanguage)
	}
}
