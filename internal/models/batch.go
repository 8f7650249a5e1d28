package models

import "time"

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type FileResult struct {
	Name       string `json:"name"`
	Source     string `json:"source"`
	OutputPath string `json:"output_path,omitempty"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

type BatchResult struct {
	RunID        string       `json:"run_id"`
	InputPath    string       `json:"input_path"`
	OutputDir    string       `json:"output_dir"`
	StartedAt    time.Time    `json:"started_at"`
	FinishedAt   time.Time    `json:"finished_at"`
	SuccessCount int          `json:"success_count"`
	FailCount    int          `json:"fail_count"`
	Files        []FileResult `json:"files"`
}

// Add records one file outcome and keeps the counters in step with Files.
func (r *BatchResult) Add(fr FileResult) {
	if fr.Status == StatusCompleted {
		r.SuccessCount++
	} else {
		r.FailCount++
	}
	r.Files = append(r.Files, fr)
}
