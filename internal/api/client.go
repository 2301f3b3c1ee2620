// Package api is a thin protocol mapper for the versioned dubbing
// service. It performs no retries and no caching; classification of
// failures and polling policy live in the jobs controller.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// supportedContainers are the upload container types the service accepts.
var supportedContainers = []string{"mp4", "avi", "mkv", "mov", "wmv", "flv", "webm"}

// SupportedContainer reports whether a file name has an accepted
// video container extension.
func SupportedContainer(fileName string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	for _, allowed := range supportedContainers {
		if ext == allowed {
			return true
		}
	}
	return false
}

// SupportedContainers returns the accepted container extensions in order.
func SupportedContainers() []string {
	out := make([]string, len(supportedContainers))
	copy(out, supportedContainers)
	return out
}

// JobStatus is one job snapshot as reported by the server. Status is
// passed through verbatim; only COMPLETED and FAILED end polling.
type JobStatus struct {
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	ETR      string `json:"estimatedTimeRemaining"`
	Activity string `json:"activity"`
}

// Client calls the dubbing API under its versioned path prefix.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:8080/api/v1". Uploads can be large, so the shared
// transport timeout is generous; callers bound individual requests
// through context.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Minute,
		},
	}
}

// NewClientWithHTTPClient creates a client with a caller-owned transport.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// SubmitJob uploads one video for dubbing into targetLang and returns
// the server-assigned job id. Each successful call creates exactly one
// job. Options are encoded as a JSON object form field when non-empty.
func (c *Client) SubmitJob(ctx context.Context, filePath, targetLang string, options map[string]any) (int64, error) {
	if strings.TrimSpace(targetLang) == "" {
		return 0, fmt.Errorf("target language is required")
	}
	if !SupportedContainer(filePath) {
		return 0, &APIError{
			Code:    CodeInvalidFileType,
			Message: "Invalid file type. Allowed: mp4, avi, mkv, mov, wmv, flv, webm",
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("open upload file: %w", err)
	}
	defer file.Close()

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeUploadForm(form, file, filepath.Base(filePath), targetLang, options))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", pr)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, decodeAPIError(resp)
	}

	var result struct {
		JobID int64 `json:"jobId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decode upload response: %w", err)
	}
	return result.JobID, nil
}

// GetJobStatus fetches the current status snapshot for a job.
func (c *Client) GetJobStatus(ctx context.Context, jobID int64) (JobStatus, error) {
	url := fmt.Sprintf("%s/job/%d", c.baseURL, jobID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return JobStatus{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return JobStatus{}, fmt.Errorf("status request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return JobStatus{}, decodeAPIError(resp)
	}

	var status JobStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return JobStatus{}, fmt.Errorf("decode status response: %w", err)
	}
	return status, nil
}

// GetDownload fetches the download descriptor for a completed job and
// returns its resource URL.
func (c *Client) GetDownload(ctx context.Context, jobID int64) (string, error) {
	url := fmt.Sprintf("%s/job/%d/download", c.baseURL, jobID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("download request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeAPIError(resp)
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode download response: %w", err)
	}
	return result.URL, nil
}

// writeUploadForm streams the multipart body for one upload.
func writeUploadForm(form *multipart.Writer, file io.Reader, fileName, targetLang string, options map[string]any) error {
	part, err := form.CreateFormFile("file", fileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := form.WriteField("targetLang", targetLang); err != nil {
		return err
	}

	if len(options) > 0 {
		encoded, err := json.Marshal(options)
		if err != nil {
			return fmt.Errorf("encode options: %w", err)
		}
		if err := form.WriteField("options", string(encoded)); err != nil {
			return err
		}
	}

	return form.Close()
}

// decodeAPIError maps a non-2xx response body to a structured error.
// Malformed payloads still yield an APIError so callers always get the
// HTTP status and a displayable fallback.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{HTTPStatus: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Error        string `json:"error"`
		Code         string `json:"code"`
		Message      string `json:"message"`
		MaxSize      string `json:"maxSize"`
		UploadedSize string `json:"uploadedSize"`
	}
	// A body that does not parse stays code-less and message-less so the
	// generic fallback message is shown.
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	apiErr.Code = payload.Code
	apiErr.MaxSize = payload.MaxSize
	apiErr.UploadedSize = payload.UploadedSize
	if payload.Error != "" {
		apiErr.Message = payload.Error
	} else {
		apiErr.Message = payload.Message
	}
	return apiErr
}
