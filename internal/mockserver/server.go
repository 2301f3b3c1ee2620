// Package mockserver is a development stand-in for the dubbing service
// gateway. It implements the same versioned HTTP contract the desktop
// client consumes and simulates job progress in the background, so the
// client can be exercised without the real processing pipeline.
package mockserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"global-translator/internal/api"
)

// defaultMaxFileSize mirrors the gateway's 5GB upload cap.
const defaultMaxFileSize = 5 << 30

// processingSteps is the simulated pipeline the server walks through
// before marking a job COMPLETED.
var processingSteps = []struct {
	Progress int
	Activity string
}{
	{10, "Extracting audio"},
	{30, "Transcribing speech"},
	{50, "Translating dialogue"},
	{70, "Synthesizing voice"},
	{90, "Rendering video"},
}

// job is one tracked translation job.
type job struct {
	ID             int64     `json:"jobId"`
	FileName       string    `json:"filename"`
	ObjectKey      string    `json:"-"`
	TargetLanguage string    `json:"targetLanguage"`
	Status         string    `json:"status"`
	Progress       int       `json:"progress"`
	ETR            string    `json:"estimatedTimeRemaining"`
	Activity       string    `json:"activity"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Options tunes the simulated server.
type Options struct {
	UploadDir   string
	MaxFileSize int64
	// StepEvery is the delay between simulated progress steps.
	StepEvery time.Duration
}

// Server holds the in-memory job store and uploaded files.
type Server struct {
	uploadDir   string
	maxFileSize int64
	stepEvery   time.Duration

	mu     sync.Mutex
	nextID int64
	jobs   map[int64]*job
}

// New creates a mock server storing uploads under opts.UploadDir.
func New(opts Options) (*Server, error) {
	if opts.UploadDir == "" {
		opts.UploadDir = "uploads"
	}
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = defaultMaxFileSize
	}
	if opts.StepEvery <= 0 {
		opts.StepEvery = 2 * time.Second
	}
	if err := os.MkdirAll(opts.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Server{
		uploadDir:   opts.UploadDir,
		maxFileSize: opts.MaxFileSize,
		stepEvery:   opts.StepEvery,
		jobs:        make(map[int64]*job),
	}, nil
}

// Router builds the HTTP routes under the versioned prefix.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:4200", "http://localhost:4201", "wails://wails.localhost"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/upload", s.handleUpload)
		r.Get("/job/{jobID}", s.handleJobStatus)
		r.Get("/job/{jobID}/download", s.handleDownload)
		r.Get("/files/{objectKey}", s.handleFile)
	})

	return r
}

// handleHealth reports liveness for the client's startup diagnostics.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "dubber-api",
	})
}

// handleUpload validates and stores one video, creates a job, and
// starts the simulated processing.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, api.CodeUploadError, "Malformed multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, api.CodeUploadError, "No file provided")
		return
	}
	defer file.Close()

	targetLang := r.FormValue("targetLang")
	if targetLang == "" {
		writeError(w, http.StatusBadRequest, api.CodeUploadError, "targetLang is required")
		return
	}

	if header.Size == 0 {
		writeError(w, http.StatusBadRequest, api.CodeFileEmpty, "File is empty")
		return
	}
	if !api.SupportedContainer(header.Filename) {
		writeError(w, http.StatusBadRequest, api.CodeInvalidFileType,
			"Invalid file type. Allowed: mp4, avi, mkv, mov, wmv, flv, webm")
		return
	}
	if header.Size > s.maxFileSize {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{
			"error":        "File too large. Maximum size is 5GB",
			"code":         api.CodeFileTooLarge,
			"maxSize":      "5GB",
			"uploadedSize": fmt.Sprintf("%.2fMB", float64(header.Size)/(1024*1024)),
		})
		return
	}

	objectKey := uuid.New().String() + "_" + filepath.Base(header.Filename)
	target, err := os.Create(filepath.Join(s.uploadDir, objectKey))
	if err != nil {
		writeError(w, http.StatusInternalServerError, api.CodeUploadError, "Upload failed: cannot store file")
		return
	}
	defer target.Close()
	if _, err := io.Copy(target, file); err != nil {
		writeError(w, http.StatusInternalServerError, api.CodeUploadError, "Upload failed: cannot store file")
		return
	}

	now := time.Now().UTC()
	s.mu.Lock()
	s.nextID++
	created := &job{
		ID:             s.nextID,
		FileName:       header.Filename,
		ObjectKey:      objectKey,
		TargetLanguage: targetLang,
		Status:         "QUEUED",
		Progress:       0,
		ETR:            "Waiting...",
		Activity:       "Queued",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.jobs[created.ID] = created
	s.mu.Unlock()

	go s.simulate(created.ID)

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "QUEUED",
		"jobId":   created.ID,
		"message": "File uploaded successfully",
	})
}

// handleJobStatus returns the current snapshot for one job.
func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	tracked, ok := s.lookup(chi.URLParam(r, "jobID"))
	if !ok {
		writeError(w, http.StatusNotFound, api.CodeJobNotFound, "Job not found")
		return
	}
	writeJSON(w, http.StatusOK, tracked)
}

// handleDownload returns the download descriptor once a job completed.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	tracked, ok := s.lookup(chi.URLParam(r, "jobID"))
	if !ok {
		writeError(w, http.StatusNotFound, api.CodeJobNotFound, "Job not found")
		return
	}
	if tracked.Status != "COMPLETED" {
		writeError(w, http.StatusBadRequest, api.CodeOutputNotReady, "Output not ready yet")
		return
	}

	// The mock serves the stored upload back as the "dubbed" output.
	url := fmt.Sprintf("http://%s/api/v1/files/%s", r.Host, tracked.ObjectKey)
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// handleFile serves a stored upload by object key.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	objectKey := chi.URLParam(r, "objectKey")
	if objectKey == "" || objectKey != filepath.Base(objectKey) {
		writeError(w, http.StatusNotFound, api.CodeDownloadError, "File not found")
		return
	}

	path := filepath.Join(s.uploadDir, objectKey)
	if _, err := os.Stat(path); err != nil {
		writeError(w, http.StatusNotFound, api.CodeDownloadError, "File not found")
		return
	}
	http.ServeFile(w, r, path)
}

// simulate walks one job through the processing steps to COMPLETED.
func (s *Server) simulate(jobID int64) {
	for i, step := range processingSteps {
		time.Sleep(s.stepEvery)
		remaining := time.Duration(len(processingSteps)-i) * s.stepEvery
		if !s.updateJob(jobID, "PROCESSING", step.Progress, formatETR(remaining), step.Activity) {
			return
		}
	}

	time.Sleep(s.stepEvery)
	s.updateJob(jobID, "COMPLETED", 100, "", "Done")
}

// updateJob applies one progress snapshot; reports false when the job
// disappeared.
func (s *Server) updateJob(jobID int64, status string, progress int, etr, activity string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tracked, ok := s.jobs[jobID]
	if !ok {
		return false
	}
	tracked.Status = status
	tracked.Progress = progress
	tracked.ETR = etr
	tracked.Activity = activity
	tracked.UpdatedAt = time.Now().UTC()
	return true
}

// lookup resolves a job id path parameter to a snapshot copy.
func (s *Server) lookup(rawID string) (job, bool) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return job{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tracked, ok := s.jobs[id]
	if !ok {
		return job{}, false
	}
	return *tracked, true
}

// formatETR renders a rough remaining-time label.
func formatETR(remaining time.Duration) string {
	if remaining >= time.Minute {
		return fmt.Sprintf("%d minutes", int(remaining.Minutes())+1)
	}
	return fmt.Sprintf("%d seconds", int(remaining.Seconds())+1)
}

// writeError sends one structured error payload.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
		"code":  code,
	})
}

// writeJSON encodes a response body with the right content type.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
