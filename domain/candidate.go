package domain

import "time"

// Triage bucket names. All three must exist for a session before its jobs run.
const (
	BucketExcellent = "Excellent"
	BucketGood      = "Good"
	BucketNoGo      = "No Go"
)

type Bucket struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID uint   `gorm:"not null;index"`
	Name      string `gorm:"size:64;not null"`
	Position  int
	CreatedAt time.Time
}

// Candidate is created once per processed résumé. BucketID is the current
// bucket; OriginalBucketID records the first assignment and is never changed
// by the pipeline (reassignment is a UI concern).
type Candidate struct {
	ID               uint   `gorm:"primaryKey"`
	SessionID        uint   `gorm:"not null;index"`
	ResumeID         uint   `gorm:"not null;index"`
	Name             string `gorm:"size:255"`
	Email            string `gorm:"size:255"`
	BucketID         uint   `gorm:"not null"`
	OriginalBucketID uint   `gorm:"not null"`
	Score            float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
