package pipeline

import "time"

// StageStatus is the lifecycle state of one stage run.
type StageStatus string

const (
	StatusPending   StageStatus = "pending"
	StatusRunning   StageStatus = "running"
	StatusCompleted StageStatus = "completed"
	StatusFailed    StageStatus = "failed"
)

// StageReport is the structured outcome of one stage run. Counts holds the
// per-artifact row counts the stage produced.
type StageReport struct {
	Stage        string         `json:"stage"`
	Status       StageStatus    `json:"status"`
	StartedAt    time.Time      `json:"started_at"`
	CompletedAt  time.Time      `json:"completed_at"`
	Counts       map[string]int `json:"counts,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

func newReport(stage string) *StageReport {
	return &StageReport{
		Stage:     stage,
		Status:    StatusRunning,
		StartedAt: time.Now(),
		Counts:    make(map[string]int),
	}
}

func (r *StageReport) complete() *StageReport {
	r.Status = StatusCompleted
	r.CompletedAt = time.Now()
	return r
}

func (r *StageReport) fail(err error) *StageReport {
	r.Status = StatusFailed
	r.CompletedAt = time.Now()
	r.ErrorMessage = err.Error()
	return r
}

// Duration is the stage wall time.
func (r *StageReport) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}

// RunReport aggregates the stage reports of one pipeline run.
type RunReport struct {
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt time.Time      `json:"completed_at"`
	Stages      []*StageReport `json:"stages"`
}

// Failed reports whether any stage failed.
func (r *RunReport) Failed() bool {
	for _, s := range r.Stages {
		if s.Status == StatusFailed {
			return true
		}
	}
	return false
}
