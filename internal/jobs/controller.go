package jobs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"global-translator/internal/api"
	"global-translator/internal/domain"
)

// ErrNoFileSelected is returned when submit is requested without a file.
var ErrNoFileSelected = errors.New("no file selected")

// ErrNoActiveJob is returned when download is requested before any upload.
var ErrNoActiveJob = errors.New("no active job")

// API is the slice of the transport client the controller depends on.
type API interface {
	SubmitJob(ctx context.Context, filePath, targetLang string, options map[string]any) (int64, error)
	GetJobStatus(ctx context.Context, jobID int64) (api.JobStatus, error)
	GetDownload(ctx context.Context, jobID int64) (string, error)
}

// Controller owns the lifecycle of at most one dubbing job: it uploads
// the selected file, polls status until terminal, classifies failures,
// and retrieves the final download link. Starting a new submission
// replaces any previous polling loop; the server is never told to
// abort its side of the work.
type Controller struct {
	api      API
	interval time.Duration
	// maxPoll caps total polling time for one job. Zero means poll
	// until the server reports a terminal status.
	maxPoll time.Duration

	mu         sync.Mutex
	gen        int64
	selection  domain.Selection
	snap       domain.JobSnapshot
	cancelPoll context.CancelFunc

	events *EventBus
	notify func(Event)
}

// NewController creates an idle controller polling at the given interval.
func NewController(client API, interval, maxPoll time.Duration, events *EventBus) *Controller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if events == nil {
		events = NewEventBus(0)
	}
	return &Controller{
		api:      client,
		interval: interval,
		maxPoll:  maxPoll,
		snap:     domain.JobSnapshot{State: domain.JobStateIdle},
		events:   events,
	}
}

// SetNotify registers a push hook invoked for every published event.
func (c *Controller) SetNotify(notify func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = notify
}

// Select records the pending file and target language. Re-selecting
// clears any prior error message but never changes the job state.
func (c *Controller) Select(selection domain.Selection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection = selection
	c.snap.ErrorMessage = ""
}

// Selection returns the pending selection.
func (c *Controller) Selection() domain.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// Snapshot returns the current renderable job view.
func (c *Controller) Snapshot() domain.JobSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Events returns all published events with sequence greater than seq.
func (c *Controller) Events(sinceSeq int64) []Event {
	return c.events.Since(sinceSeq)
}

// Submit validates the pending selection and starts the upload. The
// upload and the subsequent polling run on a single goroutine owned by
// this submission; any previous loop is replaced first. A missing file
// fails locally without any network call.
func (c *Controller) Submit() error {
	c.mu.Lock()
	if strings.TrimSpace(c.selection.FilePath) == "" {
		c.snap.ErrorMessage = "Please select a file first"
		c.mu.Unlock()
		return ErrNoFileSelected
	}

	if c.cancelPoll != nil {
		c.cancelPoll()
		c.cancelPoll = nil
	}
	c.gen++
	gen := c.gen

	ctx, cancel := context.WithCancel(context.Background())
	c.cancelPoll = cancel

	selection := c.selection
	c.snap = domain.JobSnapshot{State: domain.JobStateUploading}
	c.mu.Unlock()

	c.publish(Event{Type: EventTypeStatus, State: domain.JobStateUploading, Message: "Uploading " + selection.FileName})

	go c.run(ctx, gen, selection)
	return nil
}

// Download retrieves the download descriptor for the current job once.
// Failures are surfaced as messages but never change the job state, so
// the user can always retry.
func (c *Controller) Download(ctx context.Context) (string, error) {
	c.mu.Lock()
	jobID := c.snap.JobID
	c.mu.Unlock()

	if jobID == 0 {
		c.setError("No job found. Please upload a file first.")
		return "", ErrNoActiveJob
	}

	url, err := c.api.GetDownload(ctx, jobID)
	if err != nil {
		c.setError(api.UserMessage(err))
		return "", err
	}

	c.mu.Lock()
	c.snap.ErrorMessage = ""
	c.mu.Unlock()
	c.publish(Event{Type: EventTypeResult, JobID: jobID, State: domain.JobStateCompleted, URL: url, Message: "Download ready"})
	return url, nil
}

// Shutdown stops any active polling loop. Purely local; server-side
// work continues.
func (c *Controller) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelPoll != nil {
		c.cancelPoll()
		c.cancelPoll = nil
	}
}

// run performs the upload and, on success, drives the polling loop.
func (c *Controller) run(ctx context.Context, gen int64, selection domain.Selection) {
	jobID, err := c.api.SubmitJob(ctx, selection.FilePath, selection.TargetLanguage, nil)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		message := api.UserMessage(err)
		if c.update(gen, func(snap *domain.JobSnapshot) {
			*snap = domain.JobSnapshot{State: domain.JobStateIdle, ErrorMessage: message}
		}) {
			c.publish(Event{Type: EventTypeError, State: domain.JobStateIdle, Message: message})
		}
		return
	}

	if !c.update(gen, func(snap *domain.JobSnapshot) {
		*snap = domain.JobSnapshot{
			State:        domain.JobStateQueued,
			JobID:        jobID,
			ServerStatus: "QUEUED",
		}
	}) {
		return
	}
	c.publish(Event{Type: EventTypeStatus, JobID: jobID, State: domain.JobStateQueued, Status: "QUEUED"})

	if c.maxPoll > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.maxPoll)
		defer cancel()
	}
	c.poll(ctx, gen, jobID)
}

// poll issues one status request per interval until the job reaches a
// terminal status. Ticks are gated: the next one is scheduled only
// after the previous request returns. Transient errors are swallowed;
// only an explicit not-found ends the loop early.
func (c *Controller) poll(ctx context.Context, gen int64, jobID int64) {
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.terminate(gen, jobID, domain.JobStateFailed, "Timed out waiting for the job to finish.")
			}
			return
		case <-time.After(c.interval):
		}

		status, err := c.api.GetJobStatus(ctx, jobID)
		if err != nil {
			if ctx.Err() != nil {
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					c.terminate(gen, jobID, domain.JobStateFailed, "Timed out waiting for the job to finish.")
				}
				return
			}
			if api.IsNotFound(err) {
				c.terminate(gen, jobID, domain.JobStateNotFound, "Job not found. Please upload a new file.")
				return
			}
			// Transient failure: keep the last known snapshot and retry
			// on the next tick.
			continue
		}

		state := domain.JobStateRunning
		if status.Status == "QUEUED" {
			state = domain.JobStateQueued
		}
		if !c.update(gen, func(snap *domain.JobSnapshot) {
			snap.State = state
			snap.ServerStatus = status.Status
			snap.Progress = status.Progress
			snap.ETR = status.ETR
			snap.Activity = status.Activity
		}) {
			return
		}
		c.publish(Event{
			Type:     EventTypeStatus,
			JobID:    jobID,
			State:    state,
			Status:   status.Status,
			Progress: status.Progress,
			ETR:      status.ETR,
			Activity: status.Activity,
		})

		switch status.Status {
		case domain.ServerStatusCompleted:
			c.terminate(gen, jobID, domain.JobStateCompleted, "")
			return
		case domain.ServerStatusFailed:
			c.terminate(gen, jobID, domain.JobStateFailed, "Translation failed. Please try again.")
			return
		}
	}
}

// terminate records a terminal state and releases the poll handle.
func (c *Controller) terminate(gen, jobID int64, state domain.JobState, message string) {
	changed := c.update(gen, func(snap *domain.JobSnapshot) {
		snap.State = state
		snap.ErrorMessage = message
		if state == domain.JobStateCompleted {
			snap.Progress = 100
		}
	})
	if !changed {
		return
	}

	c.mu.Lock()
	if c.gen == gen && c.cancelPoll != nil {
		c.cancelPoll()
		c.cancelPoll = nil
	}
	c.mu.Unlock()

	eventType := EventTypeStatus
	if message != "" {
		eventType = EventTypeError
	}
	c.publish(Event{Type: eventType, JobID: jobID, State: state, Message: message})
}

// update applies fn to the snapshot unless the submission has been
// superseded by a newer one.
func (c *Controller) update(gen int64, fn func(*domain.JobSnapshot)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	fn(&c.snap)
	return true
}

// setError records a user-facing message without touching the state.
func (c *Controller) setError(message string) {
	c.mu.Lock()
	c.snap.ErrorMessage = message
	jobID := c.snap.JobID
	state := c.snap.State
	c.mu.Unlock()
	c.publish(Event{Type: EventTypeError, JobID: jobID, State: state, Message: message})
}

// publish stores the event and invokes the push hook, if any.
func (c *Controller) publish(event Event) {
	published := c.events.Publish(event)

	c.mu.Lock()
	notify := c.notify
	c.mu.Unlock()
	if notify != nil {
		notify(published)
	}
}
