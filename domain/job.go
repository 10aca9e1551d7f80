package domain

// ScreeningJob is the queue message for one uploaded document. Requirements
// are embedded as a snapshot taken at enqueue time so a long-running batch is
// not affected by the job profile changing underneath it.
type ScreeningJob struct {
	JobID        string          `json:"job_id"`
	SessionID    uint            `json:"session_id"`
	ResumeID     uint            `json:"resume_id"`
	DocumentKey  string          `json:"document_key"`
	MimeType     string          `json:"mime_type"`
	Requirements JobRequirements `json:"requirements"`
}
