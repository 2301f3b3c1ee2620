package diagnostics

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"global-translator/internal/domain"
)

// healthyGet fakes a 200 response from any URL.
func healthyGet(url string) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"status":"healthy"}`)),
	}, nil
}

// testSettings returns a fully valid configuration.
func testSettings() domain.Settings {
	return domain.Settings{
		APIBaseURL:          "http://localhost:8080/api/v1",
		CountryCode:         "IN",
		TargetLanguage:      "hi",
		PollIntervalSeconds: 2,
	}
}

// TestRunAllChecksPass checks the healthy configuration report.
func TestRunAllChecksPass(t *testing.T) {
	var probed string
	checker := NewCheckerForTests(func(url string) (*http.Response, error) {
		probed = url
		return healthyGet(url)
	})

	report := checker.Run(testSettings())
	if report.HasFailures {
		t.Fatalf("unexpected failures: %+v", report.Items)
	}
	if probed != "http://localhost:8080/health" {
		t.Fatalf("probed %q, want root /health", probed)
	}
	for _, item := range report.Items {
		if item.Status != domain.DiagnosticStatusPass {
			t.Fatalf("item %s = %s, want pass", item.ID, item.Status)
		}
	}
}

// TestRunFlagsUnreachableService checks connection failure reporting.
func TestRunFlagsUnreachableService(t *testing.T) {
	checker := NewCheckerForTests(func(url string) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	report := checker.Run(testSettings())
	if !report.HasFailures {
		t.Fatal("expected failures")
	}
	item := findItem(t, report, "api_health")
	if item.Status != domain.DiagnosticStatusFail {
		t.Fatalf("health status = %s, want fail", item.Status)
	}
	if item.Hint == "" {
		t.Fatal("expected a hint for unreachable service")
	}
}

// TestRunFlagsUnhealthyService checks non-200 health responses.
func TestRunFlagsUnhealthyService(t *testing.T) {
	checker := NewCheckerForTests(func(url string) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil
	})

	report := checker.Run(testSettings())
	item := findItem(t, report, "api_health")
	if item.Status != domain.DiagnosticStatusFail {
		t.Fatalf("health status = %s, want fail", item.Status)
	}
}

// TestRunFlagsBadBaseURL checks URL shape validation.
func TestRunFlagsBadBaseURL(t *testing.T) {
	checker := NewCheckerForTests(healthyGet)

	settings := testSettings()
	settings.APIBaseURL = "not-a-url"
	report := checker.Run(settings)

	item := findItem(t, report, "api_base_url")
	if item.Status != domain.DiagnosticStatusFail {
		t.Fatalf("base url status = %s, want fail", item.Status)
	}
}

// TestRunWarnsOnUnknownCountry checks the catalog fallback warning.
func TestRunWarnsOnUnknownCountry(t *testing.T) {
	checker := NewCheckerForTests(healthyGet)

	settings := testSettings()
	settings.CountryCode = "ZZ"
	report := checker.Run(settings)

	item := findItem(t, report, "country")
	if item.Status != domain.DiagnosticStatusWarn {
		t.Fatalf("country status = %s, want warn", item.Status)
	}
	if report.HasFailures {
		t.Fatal("a warning must not mark the report as failed")
	}
}

// findItem locates a report item by id.
func findItem(t *testing.T, report domain.DiagnosticReport, id string) domain.DiagnosticItem {
	t.Helper()
	for _, item := range report.Items {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("item %s not found in %+v", id, report.Items)
	return domain.DiagnosticItem{}
}
