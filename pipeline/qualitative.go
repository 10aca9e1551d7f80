package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"resume-screener/domain"
)

// QualitativeScorer asks the completion service for a single fit score in
// [0,1]. It never returns an error: qualitative judgment is one signal among
// two, so any failure degrades the score to 0 and processing continues.
type QualitativeScorer struct {
	completion Completion
	log        *logrus.Logger
}

func NewQualitativeScorer(completion Completion, log *logrus.Logger) *QualitativeScorer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &QualitativeScorer{completion: completion, log: log}
}

const qualitativeSystemInstruction = "You are an experienced technical recruiter. " +
	"Respond with a single bare decimal number between 0 and 1 and nothing else."

// Score rates how well the structured profile fits the requirements.
func (s *QualitativeScorer) Score(ctx context.Context, req domain.JobRequirements, profile *domain.CandidateProfile) float64 {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		s.log.WithError(err).Warn("qualitative: marshal requirements")
		return 0
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		s.log.WithError(err).Warn("qualitative: marshal profile")
		return 0
	}

	prompt := fmt.Sprintf(`Rate how well this candidate fits the job on a scale from 0 to 1.

Consider:
- relevance and seniority of work experience
- coverage of required and preferred skills
- certifications and education against the stated requirements
- overall career trajectory toward the role

Job requirements:
%s

Candidate profile:
%s

Respond with a single number between 0 and 1, for example 0.73. No explanation.`,
		string(reqJSON), string(profileJSON))

	raw, err := s.completion.Complete(ctx, prompt, qualitativeSystemInstruction)
	if err != nil {
		s.log.WithError(err).Warn("qualitative: completion failed, scoring 0")
		return 0
	}

	return ParseScore(raw)
}

// ParseScore parses a model reply as a float in [0,1]. Unparseable or NaN
// replies score 0.
func ParseScore(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return clamp01(v)
}
