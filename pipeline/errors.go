package pipeline

import "errors"

// Stage error taxonomy. Fetch, extraction, bucket and persistence errors are
// fatal for the job; completion and response errors degrade the job instead
// (needs_review for the structured parser, score 0 for the qualitative scorer).
var (
	ErrFetchFailed       = errors.New("document fetch failed")
	ErrExtractionFailed  = errors.New("text extraction failed")
	ErrCompletionFailed  = errors.New("completion service failed")
	ErrMalformedResponse = errors.New("malformed completion response")
	ErrBucketsMissing    = errors.New("triage buckets missing")
	ErrPersistenceFailed = errors.New("persistence failed")
)
