package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"resume-screener/domain"
)

// DocumentStore retrieves and stores raw document bytes by opaque key.
type DocumentStore interface {
	Put(ctx context.Context, data []byte, name, contentType string) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// Store is the persistence surface the worker needs. Implemented over GORM
// in infrastructure; faked in tests.
type Store interface {
	UpdateResumeStatus(ctx context.Context, resumeID uint, status string) error
	UpdateResumeResult(ctx context.Context, resumeID uint, extractedText string, structuredData *string, status string) error
	BucketsByName(ctx context.Context, sessionID uint) (map[string]domain.Bucket, error)
	CreateCandidate(ctx context.Context, candidate *domain.Candidate) error
	CreateEvaluation(ctx context.Context, eval *domain.Evaluation) error
}

// Worker owns everything one job invocation needs. It is constructed once at
// startup and shared by the queue consumers; all mutable per-job state stays
// on the stack of Process.
type Worker struct {
	docs    DocumentStore
	store   Store
	parser  *StructuredParser
	scorer  *QualitativeScorer
	tracker *JobTracker
	log     *logrus.Logger

	// extract is swappable in tests; defaults to ExtractText.
	extract func(data []byte, mimeType string) (string, error)
}

func NewWorker(docs DocumentStore, store Store, parser *StructuredParser, scorer *QualitativeScorer, tracker *JobTracker, log *logrus.Logger) *Worker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Worker{
		docs:    docs,
		store:   store,
		parser:  parser,
		scorer:  scorer,
		tracker: tracker,
		log:     log,
		extract: ExtractText,
	}
}

// Process runs one job through fetch, extract, parse, score and persist.
// A nil return means the job reached a successful terminal resume status
// (processed or needs_review); an error means the job failed and the resume
// record was force-transitioned to failed.
func (w *Worker) Process(ctx context.Context, job domain.ScreeningJob) error {
	log := w.log.WithFields(logrus.Fields{
		"job_id":    job.JobID,
		"resume_id": job.ResumeID,
	})

	stage := StageQueued
	var err error

	fail := func(cause error) error {
		w.tracker.Failed(job.JobID, cause)
		stage = StageFailed
		// The placeholder record must never stay in processing.
		if serr := w.store.UpdateResumeStatus(ctx, job.ResumeID, domain.ResumeStatusFailed); serr != nil {
			log.WithError(serr).Error("mark resume failed")
		}
		log.WithError(cause).Error("job failed")
		return cause
	}

	// Fetch.
	if stage, err = advance(stage, StageFetching); err != nil {
		return fail(err)
	}
	data, err := w.docs.Get(ctx, job.DocumentKey)
	if err != nil {
		return fail(fmt.Errorf("%w: %s: %v", ErrFetchFailed, stage, err))
	}
	w.tracker.Progress(job.JobID, stageProgress[StageFetching])

	// Extract.
	if stage, err = advance(stage, StageExtracting); err != nil {
		return fail(err)
	}
	text, err := w.extract(data, job.MimeType)
	if err != nil {
		return fail(fmt.Errorf("%s: %w", stage, err))
	}
	w.tracker.Progress(job.JobID, stageProgress[StageExtracting])

	// Parse. Failure here degrades the job: the extracted text is still
	// worth keeping, so the résumé lands in needs_review and scoring is
	// skipped (no score exists without structured data).
	if stage, err = advance(stage, StageParsing); err != nil {
		return fail(err)
	}
	profile, perr := w.parser.Parse(ctx, text, job.Requirements)
	if perr != nil {
		log.WithError(perr).Warn("structured parsing failed, degrading to needs_review")
		if stage, err = advance(stage, StagePersisting); err != nil {
			return fail(err)
		}
		if err := w.store.UpdateResumeResult(ctx, job.ResumeID, text, nil, domain.ResumeStatusNeedsReview); err != nil {
			return fail(fmt.Errorf("%w: %s: %v", ErrPersistenceFailed, stage, err))
		}
		if stage, err = advance(stage, StageDone); err != nil {
			return fail(err)
		}
		w.tracker.Completed(job.JobID)
		log.Info("job done (needs review)")
		return nil
	}
	w.tracker.Progress(job.JobID, stageProgress[StageParsing])

	// Score.
	if stage, err = advance(stage, StageScoring); err != nil {
		return fail(err)
	}
	keywordScore := KeywordScore(job.Requirements, text)
	qualitativeScore := w.scorer.Score(ctx, job.Requirements, profile)
	totalScore := CombineScores(keywordScore, qualitativeScore)

	// Persist candidate, bucket assignment, evaluation and résumé result.
	if stage, err = advance(stage, StagePersisting); err != nil {
		return fail(err)
	}
	buckets, err := w.store.BucketsByName(ctx, job.SessionID)
	if err != nil {
		return fail(fmt.Errorf("%w: %s: %v", ErrBucketsMissing, stage, err))
	}
	bucket, ok := buckets[ClassifyBucket(totalScore)]
	if !ok {
		return fail(fmt.Errorf("%w: bucket %q not found for session %d", ErrBucketsMissing, ClassifyBucket(totalScore), job.SessionID))
	}

	candidate := &domain.Candidate{
		SessionID:        job.SessionID,
		ResumeID:         job.ResumeID,
		Name:             contactField(profile, func(c *domain.ContactInfo) *string { return c.Name }),
		Email:            contactField(profile, func(c *domain.ContactInfo) *string { return c.Email }),
		BucketID:         bucket.ID,
		OriginalBucketID: bucket.ID,
		Score:            totalScore,
	}
	if err := w.store.CreateCandidate(ctx, candidate); err != nil {
		return fail(fmt.Errorf("%w: %s: %v", ErrPersistenceFailed, stage, err))
	}
	w.tracker.Progress(job.JobID, stageProgress[StagePersisting])

	eval := &domain.Evaluation{
		ResumeID:         job.ResumeID,
		KeywordScore:     keywordScore,
		QualitativeScore: qualitativeScore,
		TotalScore:       totalScore,
	}
	if err := w.store.CreateEvaluation(ctx, eval); err != nil {
		return fail(fmt.Errorf("%w: %s: %v", ErrPersistenceFailed, stage, err))
	}

	structured, err := json.Marshal(profile)
	if err != nil {
		return fail(fmt.Errorf("%w: %s: %v", ErrPersistenceFailed, stage, err))
	}
	structuredStr := string(structured)
	if err := w.store.UpdateResumeResult(ctx, job.ResumeID, text, &structuredStr, domain.ResumeStatusProcessed); err != nil {
		return fail(fmt.Errorf("%w: %s: %v", ErrPersistenceFailed, stage, err))
	}

	if stage, err = advance(stage, StageDone); err != nil {
		return fail(err)
	}
	w.tracker.Completed(job.JobID)
	log.WithFields(logrus.Fields{
		"keyword_score":     keywordScore,
		"qualitative_score": qualitativeScore,
		"total_score":       totalScore,
		"bucket":            bucket.Name,
	}).Info("job done")
	return nil
}

func contactField(profile *domain.CandidateProfile, pick func(*domain.ContactInfo) *string) string {
	if profile == nil || profile.Contact == nil {
		return ""
	}
	if v := pick(profile.Contact); v != nil {
		return *v
	}
	return ""
}
