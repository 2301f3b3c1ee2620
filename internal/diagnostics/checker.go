package diagnostics

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"global-translator/internal/catalog"
	"global-translator/internal/domain"
)

// Checker validates the configured dubbing service and selection
// settings at startup.
type Checker struct {
	httpGet func(url string) (*http.Response, error)
}

// NewChecker builds a checker using a real HTTP client with a short
// probe timeout.
func NewChecker() *Checker {
	client := &http.Client{Timeout: 5 * time.Second}
	return &Checker{httpGet: client.Get}
}

// NewCheckerForTests creates a checker with an injectable HTTP getter.
func NewCheckerForTests(httpGet func(url string) (*http.Response, error)) *Checker {
	return &Checker{httpGet: httpGet}
}

// Run executes all startup checks and returns a combined report.
func (c *Checker) Run(settings domain.Settings) domain.DiagnosticReport {
	items := []domain.DiagnosticItem{
		c.checkBaseURL(settings.APIBaseURL),
		c.checkHealth(settings.APIBaseURL),
		c.checkCountry(settings.CountryCode),
		c.checkPollInterval(settings.PollIntervalSeconds),
	}

	hasFailures := false
	for _, item := range items {
		if item.Status == domain.DiagnosticStatusFail {
			hasFailures = true
			break
		}
	}

	return domain.DiagnosticReport{
		GeneratedAt: time.Now().UTC(),
		HasFailures: hasFailures,
		Items:       items,
	}
}

// checkBaseURL validates the configured API base URL shape.
func (c *Checker) checkBaseURL(baseURL string) domain.DiagnosticItem {
	item := domain.DiagnosticItem{
		ID:   "api_base_url",
		Name: "API base URL",
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		item.Status = domain.DiagnosticStatusFail
		item.Message = fmt.Sprintf("API base URL is not a valid http(s) URL: %q", baseURL)
		item.Hint = "Set apiBaseUrl in settings or the GT_API_BASE_URL environment variable."
		return item
	}

	item.Status = domain.DiagnosticStatusPass
	item.Message = fmt.Sprintf("Using %s", baseURL)
	return item
}

// checkHealth probes the service health endpoint at the server root.
func (c *Checker) checkHealth(baseURL string) domain.DiagnosticItem {
	item := domain.DiagnosticItem{
		ID:   "api_health",
		Name: "API reachability",
	}

	healthURL, err := healthEndpoint(baseURL)
	if err != nil {
		item.Status = domain.DiagnosticStatusFail
		item.Message = fmt.Sprintf("Cannot derive health endpoint from %q", baseURL)
		item.Hint = "Fix the API base URL first."
		return item
	}

	resp, err := c.httpGet(healthURL)
	if err != nil {
		item.Status = domain.DiagnosticStatusFail
		item.Message = fmt.Sprintf("Service is unreachable: %v", err)
		item.Hint = "Start the dubbing service (or the mock server) and check the API base URL."
		return item
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		item.Status = domain.DiagnosticStatusFail
		item.Message = fmt.Sprintf("Health endpoint returned HTTP %d", resp.StatusCode)
		item.Hint = "The service is up but unhealthy; check its logs."
		return item
	}

	item.Status = domain.DiagnosticStatusPass
	item.Message = fmt.Sprintf("Service healthy at %s", healthURL)
	return item
}

// checkCountry verifies the saved country still exists in the catalog.
func (c *Checker) checkCountry(countryCode string) domain.DiagnosticItem {
	item := domain.DiagnosticItem{
		ID:   "country",
		Name: "Selected country",
	}

	if !catalog.HasCountry(countryCode) {
		item.Status = domain.DiagnosticStatusWarn
		item.Message = fmt.Sprintf("Saved country %q is not in the catalog; the first catalog entry will be used.", countryCode)
		return item
	}

	item.Status = domain.DiagnosticStatusPass
	item.Message = fmt.Sprintf("Country %s offers %d languages", countryCode, len(catalog.LanguagesFor(countryCode)))
	return item
}

// checkPollInterval sanity-checks the configured polling cadence.
func (c *Checker) checkPollInterval(seconds int) domain.DiagnosticItem {
	item := domain.DiagnosticItem{
		ID:   "poll_interval",
		Name: "Poll interval",
	}

	if seconds < 1 {
		item.Status = domain.DiagnosticStatusWarn
		item.Message = fmt.Sprintf("Poll interval %ds is too aggressive; the default of 2s will be used.", seconds)
		return item
	}

	item.Status = domain.DiagnosticStatusPass
	item.Message = fmt.Sprintf("Polling every %ds", seconds)
	return item
}

// healthEndpoint maps a versioned API base URL to the root /health path.
func healthEndpoint(baseURL string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("missing host in %q", baseURL)
	}
	parsed.Path = "/health"
	parsed.RawQuery = ""
	return parsed.String(), nil
}
