package domain

import "time"

// Evaluation is append-only: re-evaluating a résumé inserts a new row.
// All three scores are in [0,1].
type Evaluation struct {
	ID               uint `gorm:"primaryKey"`
	ResumeID         uint `gorm:"not null;index"`
	KeywordScore     float64
	QualitativeScore float64
	TotalScore       float64
	CreatedAt        time.Time
}
