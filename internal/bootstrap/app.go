package bootstrap

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"global-translator/internal/api"
	"global-translator/internal/catalog"
	"global-translator/internal/config"
	"global-translator/internal/diagnostics"
	"global-translator/internal/domain"
	"global-translator/internal/jobs"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// videoDialogFilter matches the container types the service accepts.
var videoDialogFilter = []wailsruntime.FileFilter{
	{
		DisplayName: "Video files",
		Pattern:     "*.mp4;*.avi;*.mkv;*.mov;*.wmv;*.flv;*.webm",
	},
	{
		DisplayName: "All files",
		Pattern:     "*",
	},
}

// App wires configuration, the job lifecycle controller, and UI
// runtime callbacks.
type App struct {
	Settings    domain.Settings
	Store       config.Store
	Controller  *jobs.Controller
	Diagnostics domain.DiagnosticReport
	assets      fs.FS
	checker     *diagnostics.Checker
	events      *jobs.EventBus

	mu         sync.Mutex
	runtimeCtx context.Context
}

// New builds the application with persisted settings and startup
// diagnostics.
func New() (*App, error) {
	return NewWithAssets(nil)
}

// NewWithAssets builds the application and optionally configures
// embedded frontend assets.
func NewWithAssets(assets fs.FS) (*App, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user home: %w", err)
	}

	store := config.NewJSONStore(filepath.Join(homeDir, ".global-translator", "settings.json"))
	settings, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	settings = config.ApplyEnv(settings)

	checker := diagnostics.NewChecker()
	report := checker.Run(settings)

	app := &App{
		Settings:    settings,
		Store:       store,
		Diagnostics: report,
		assets:      assets,
		checker:     checker,
		events:      jobs.NewEventBus(1000),
	}
	app.Controller = app.newController(settings)
	return app, nil
}

// newController builds a lifecycle controller from current settings.
func (a *App) newController(settings domain.Settings) *jobs.Controller {
	controller := jobs.NewController(
		api.NewClient(settings.APIBaseURL),
		time.Duration(settings.PollIntervalSeconds)*time.Second,
		time.Duration(settings.MaxPollMinutes)*time.Minute,
		a.events,
	)
	controller.SetNotify(a.emitJobEvent)
	return controller
}

// Run starts the Wails desktop application and binds backend methods.
func (a *App) Run() error {
	assetOptions := &assetserver.Options{}
	if a.assets != nil {
		assetOptions.Assets = a.assets
	} else {
		assetOptions.Handler = http.FileServer(http.Dir("./frontend"))
	}

	return wails.Run(&options.App{
		Title:       "Global Translator",
		Width:       1400,
		Height:      900,
		AssetServer: assetOptions,
		OnStartup:   a.Startup,
		OnShutdown: func(ctx context.Context) {
			a.Controller.Shutdown()
			a.mu.Lock()
			defer a.mu.Unlock()
			a.runtimeCtx = nil
		},
		Bind: []interface{}{a},
	})
}

// Startup stores Wails runtime context for push events and dialogs.
func (a *App) Startup(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.runtimeCtx = ctx
}

// GetCountries returns the selectable markets.
func (a *App) GetCountries() []domain.Country {
	return catalog.Countries()
}

// GetLanguages returns the dubbing languages offered for a country.
func (a *App) GetLanguages(countryCode string) []domain.Language {
	return catalog.LanguagesFor(countryCode)
}

// GetDiagnostics returns the latest cached diagnostics report.
func (a *App) GetDiagnostics() domain.DiagnosticReport {
	return a.Diagnostics
}

// RefreshDiagnostics reloads settings and reruns the startup checks.
func (a *App) RefreshDiagnostics() (domain.DiagnosticReport, error) {
	settings, err := a.Store.Load()
	if err != nil {
		return domain.DiagnosticReport{}, fmt.Errorf("load settings: %w", err)
	}
	settings = config.ApplyEnv(settings)

	a.mu.Lock()
	a.Settings = settings
	a.Diagnostics = a.checker.Run(settings)
	report := a.Diagnostics
	a.mu.Unlock()
	return report, nil
}

// GetSettings loads and returns the latest persisted settings.
func (a *App) GetSettings() (domain.Settings, error) {
	settings, err := a.Store.Load()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	a.mu.Lock()
	a.Settings = settings
	a.mu.Unlock()

	return settings, nil
}

// SaveSettings normalizes and persists settings, refreshes diagnostics,
// and rebuilds the controller so transport changes apply immediately.
// The current selection and any finished job survive; an in-flight
// polling loop from the old controller is stopped.
func (a *App) SaveSettings(settings domain.Settings) (domain.Settings, error) {
	normalized := normalizeSettings(settings)
	if err := a.Store.Save(normalized); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	a.Controller.Shutdown()

	a.mu.Lock()
	a.Settings = normalized
	if a.checker != nil {
		a.Diagnostics = a.checker.Run(normalized)
	}
	a.mu.Unlock()

	selection := a.Controller.Selection()
	a.Controller = a.newController(normalized)
	a.Controller.Select(selection)

	return normalized, nil
}

// PickVideoFile opens a native file dialog and records the selection.
// Cancelling the dialog leaves the previous selection untouched.
func (a *App) PickVideoFile() (domain.Selection, error) {
	ctx, err := a.runtimeContext()
	if err != nil {
		return domain.Selection{}, err
	}

	path, err := wailsruntime.OpenFileDialog(ctx, wailsruntime.OpenDialogOptions{
		Title:   "Select video file",
		Filters: videoDialogFilter,
	})
	if err != nil {
		return domain.Selection{}, err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return a.Controller.Selection(), nil
	}

	return a.SelectVideo(path)
}

// SelectVideo records a video path as the pending selection, keeping
// the previously chosen country and language.
func (a *App) SelectVideo(path string) (domain.Selection, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Selection{}, fmt.Errorf("inspect selected file: %w", err)
	}
	if info.IsDir() {
		return domain.Selection{}, fmt.Errorf("selected path is a directory: %s", path)
	}

	selection := a.Controller.Selection()
	if selection.CountryCode == "" {
		a.mu.Lock()
		selection.CountryCode = a.Settings.CountryCode
		selection.TargetLanguage = a.Settings.TargetLanguage
		a.mu.Unlock()
	}
	selection.FilePath = path
	selection.FileName = filepath.Base(path)
	selection.FileSize = info.Size()

	a.Controller.Select(selection)
	return selection, nil
}

// SetTargetLanguage records the country and dubbing language for the
// next submission. The language must be offered for the country.
func (a *App) SetTargetLanguage(countryCode, languageCode string) (domain.Selection, error) {
	offered := catalog.LanguagesFor(countryCode)
	if len(offered) == 0 {
		return domain.Selection{}, fmt.Errorf("unknown country code: %s", countryCode)
	}

	valid := false
	for _, language := range offered {
		if language.Code == languageCode {
			valid = true
			break
		}
	}
	if !valid {
		return domain.Selection{}, fmt.Errorf("language %s is not offered for %s", languageCode, countryCode)
	}

	selection := a.Controller.Selection()
	selection.CountryCode = countryCode
	selection.TargetLanguage = languageCode
	a.Controller.Select(selection)

	a.mu.Lock()
	a.Settings.CountryCode = countryCode
	a.Settings.TargetLanguage = languageCode
	settings := a.Settings
	a.mu.Unlock()
	if err := a.Store.Save(settings); err != nil {
		return selection, fmt.Errorf("save settings: %w", err)
	}

	return selection, nil
}

// StartDubbing submits the pending selection for translation.
func (a *App) StartDubbing() (domain.JobSnapshot, error) {
	if err := a.Controller.Submit(); err != nil {
		return a.Controller.Snapshot(), err
	}
	return a.Controller.Snapshot(), nil
}

// CurrentJob returns the current job snapshot.
func (a *App) CurrentJob() domain.JobSnapshot {
	return a.Controller.Snapshot()
}

// JobEvents returns all events with sequence greater than sinceSeq.
func (a *App) JobEvents(sinceSeq int64) []jobs.Event {
	return a.Controller.Events(sinceSeq)
}

// GetDownloadLink retrieves the download URL for the completed job.
func (a *App) GetDownloadLink() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return a.Controller.Download(ctx)
}

// OpenDownload retrieves the download URL and opens it in the system
// browser.
func (a *App) OpenDownload() error {
	url, err := a.GetDownloadLink()
	if err != nil {
		return err
	}

	ctx, err := a.runtimeContext()
	if err != nil {
		return err
	}
	wailsruntime.BrowserOpenURL(ctx, url)
	return nil
}

// emitJobEvent pushes one controller event to the UI.
func (a *App) emitJobEvent(event jobs.Event) {
	a.mu.Lock()
	ctx := a.runtimeCtx
	a.mu.Unlock()
	if ctx != nil {
		wailsruntime.EventsEmit(ctx, "job:event", event)
	}
}

// runtimeContext returns current Wails runtime context for dialog APIs.
func (a *App) runtimeContext() (context.Context, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.runtimeCtx == nil {
		return nil, fmt.Errorf("runtime context is not initialized")
	}
	return a.runtimeCtx, nil
}

// normalizeSettings trims user inputs and applies defaults for unset
// or out-of-range values.
func normalizeSettings(settings domain.Settings) domain.Settings {
	defaults := config.DefaultSettings()

	settings.APIBaseURL = strings.TrimRight(strings.TrimSpace(settings.APIBaseURL), "/")
	if settings.APIBaseURL == "" {
		settings.APIBaseURL = defaults.APIBaseURL
	}

	settings.CountryCode = strings.TrimSpace(settings.CountryCode)
	if !catalog.HasCountry(settings.CountryCode) {
		settings.CountryCode = defaults.CountryCode
		settings.TargetLanguage = defaults.TargetLanguage
	}

	settings.TargetLanguage = strings.TrimSpace(settings.TargetLanguage)
	if settings.TargetLanguage == "" {
		if offered := catalog.LanguagesFor(settings.CountryCode); len(offered) > 0 {
			settings.TargetLanguage = offered[0].Code
		}
	}

	if settings.PollIntervalSeconds <= 0 {
		settings.PollIntervalSeconds = defaults.PollIntervalSeconds
	}
	if settings.MaxPollMinutes < 0 {
		settings.MaxPollMinutes = 0
	}
	return settings
}
