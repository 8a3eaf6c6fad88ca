// Package queue consumes analysis jobs from AMQP and publishes their status.
package queue

import "time"

// Job statuses published to the update exchange.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Job asks the worker to analyze one stored object.
type Job struct {
	ID        string `json:"id"`
	ObjectKey string `json:"object_key"`
	FileName  string `json:"file_name,omitempty"`
}

// Update reports progress for one job.
type Update struct {
	JobID     string    `json:"job_id"`
	ObjectKey string    `json:"object_key,omitempty"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	ReportID  string    `json:"report_id,omitempty"`
	Score     int       `json:"score,omitempty"`
	Field     string    `json:"field,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RoutingKey is the topic key updates for a job are published under.
func RoutingKey(jobID string) string {
	return "report." + jobID
}
