package infrastructure

import (
	"context"
	"time"

	"gorm.io/gorm"

	"resume-screener/domain"
)

// Repository implements pipeline.Store over GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) UpdateResumeStatus(ctx context.Context, resumeID uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Resume{}).
		Where("id = ?", resumeID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *Repository) UpdateResumeResult(ctx context.Context, resumeID uint, extractedText string, structuredData *string, status string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Resume{}).
		Where("id = ?", resumeID).
		Updates(map[string]interface{}{
			"extracted_text":  extractedText,
			"structured_data": structuredData,
			"status":          status,
			"updated_at":      time.Now(),
		}).Error
}

func (r *Repository) BucketsByName(ctx context.Context, sessionID uint) (map[string]domain.Bucket, error) {
	var buckets []domain.Bucket
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Find(&buckets).Error; err != nil {
		return nil, err
	}
	byName := make(map[string]domain.Bucket, len(buckets))
	for _, b := range buckets {
		byName[b.Name] = b
	}
	return byName, nil
}

func (r *Repository) CreateCandidate(ctx context.Context, candidate *domain.Candidate) error {
	return r.db.WithContext(ctx).Create(candidate).Error
}

func (r *Repository) CreateEvaluation(ctx context.Context, eval *domain.Evaluation) error {
	return r.db.WithContext(ctx).Create(eval).Error
}
