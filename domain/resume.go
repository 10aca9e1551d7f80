package domain

import "time"

// Resume statuses. A record is created as processing before the job is
// enqueued and always reaches one of the three terminal statuses.
const (
	ResumeStatusProcessing  = "processing"
	ResumeStatusProcessed   = "processed"
	ResumeStatusNeedsReview = "needs_review"
	ResumeStatusFailed      = "failed"
)

type Resume struct {
	ID             uint    `gorm:"primaryKey"`
	SessionID      uint    `gorm:"not null;index"`
	DocumentKey    string  `gorm:"size:512;not null"`
	FileName       string  `gorm:"size:255"`
	MimeType       string  `gorm:"size:128"`
	ExtractedText  string  `gorm:"type:longtext"`
	StructuredData *string `gorm:"type:json"` // CandidateProfile, NULL until parsed
	Status         string  `gorm:"type:enum('processing','processed','needs_review','failed');default:'processing'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
