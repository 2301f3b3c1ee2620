package domain

// JobState tracks the client-observed lifecycle of a single dubbing job.
type JobState string

const (
	JobStateIdle      JobState = "idle"
	JobStateUploading JobState = "uploading"
	JobStateQueued    JobState = "queued"
	JobStateRunning   JobState = "running"
	JobStateCompleted JobState = "completed"
	JobStateFailed    JobState = "failed"
	JobStateNotFound  JobState = "notFound"
)

// Terminal server statuses on the wire. Anything else keeps polling alive.
const (
	ServerStatusCompleted = "COMPLETED"
	ServerStatusFailed    = "FAILED"
)

// Terminal reports whether no further polling is meaningful in a state.
func (s JobState) Terminal() bool {
	switch s {
	case JobStateCompleted, JobStateFailed, JobStateNotFound:
		return true
	default:
		return false
	}
}

// Selection is the pending file and target language before submission.
type Selection struct {
	FilePath       string `json:"filePath"`
	FileName       string `json:"fileName"`
	FileSize       int64  `json:"fileSize"`
	CountryCode    string `json:"countryCode"`
	TargetLanguage string `json:"targetLanguage"`
}

// JobSnapshot is the renderable view of the current job.
type JobSnapshot struct {
	State        JobState `json:"state"`
	JobID        int64    `json:"jobId"`
	ServerStatus string   `json:"serverStatus"`
	Progress     int      `json:"progress"`
	ETR          string   `json:"estimatedTimeRemaining"`
	Activity     string   `json:"activity"`
	ErrorMessage string   `json:"errorMessage"`
}

// InFlight reports whether the snapshot represents a job worth polling.
func (s JobSnapshot) InFlight() bool {
	return s.State == JobStateQueued || s.State == JobStateRunning
}

// Settings contains user-selectable runtime configuration.
type Settings struct {
	APIBaseURL          string `json:"apiBaseUrl"`
	CountryCode         string `json:"countryCode"`
	TargetLanguage      string `json:"targetLanguage"`
	PollIntervalSeconds int    `json:"pollIntervalSeconds"`
	// MaxPollMinutes caps total polling time for one job. Zero polls
	// until the server reports a terminal status.
	MaxPollMinutes int `json:"maxPollMinutes"`
}
