package pipeline

import "sync"

// Job statuses as reported to pollers.
const (
	JobStatusNotFound  = "not_found"
	JobStatusWaiting   = "waiting"
	JobStatusActive    = "active"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// JobState is a point-in-time snapshot of one job. Progress is advisory and
// monotonically increasing.
type JobState struct {
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Error    string `json:"error,omitempty"`
}

// JobTracker is the in-memory status registry backing the job-status poll
// endpoint. Safe for concurrent use.
type JobTracker struct {
	mu   sync.RWMutex
	jobs map[string]JobState
}

func NewJobTracker() *JobTracker {
	return &JobTracker{jobs: make(map[string]JobState)}
}

// Enqueued registers a job as waiting.
func (t *JobTracker) Enqueued(jobID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.jobs[jobID] = JobState{Status: JobStatusWaiting}
}

// Progress marks a job active at the given completion percentage. Progress
// never moves backwards.
func (t *JobTracker) Progress(jobID string, percent int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	state := t.jobs[jobID]
	if percent < state.Progress {
		percent = state.Progress
	}
	t.jobs[jobID] = JobState{Status: JobStatusActive, Progress: percent}
}

// Completed marks a job done at 100%.
func (t *JobTracker) Completed(jobID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.jobs[jobID] = JobState{Status: JobStatusCompleted, Progress: 100}
}

// Failed marks a job failed, keeping the progress it reached.
func (t *JobTracker) Failed(jobID string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	state := t.jobs[jobID]
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	t.jobs[jobID] = JobState{Status: JobStatusFailed, Progress: state.Progress, Error: msg}
}

// Status returns the state of one job.
func (t *JobTracker) Status(jobID string) JobState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	state, ok := t.jobs[jobID]
	if !ok {
		return JobState{Status: JobStatusNotFound}
	}
	return state
}
