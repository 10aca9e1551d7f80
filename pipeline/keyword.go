package pipeline

import (
	"regexp"
	"strings"

	"resume-screener/domain"
)

var (
	tokenSplitRe = regexp.MustCompile(`[\s,.;:()\[\]{}]+`)
	alphaOnlyRe  = regexp.MustCompile(`^[a-z]+$`)
)

// KeywordScore measures lexical overlap between the job requirements and the
// résumé text. Keywords are not deduplicated: a term the requirements repeat
// weighs more in the denominator. Pure function, result in [0,1].
func KeywordScore(req domain.JobRequirements, resumeText string) float64 {
	keywords := requirementKeywords(req)
	if len(keywords) == 0 {
		return 0
	}

	haystack := strings.ToLower(resumeText)
	found := 0
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			found++
		}
	}
	return float64(found) / float64(len(keywords))
}

// requirementKeywords flattens the requirements into lowercase tokens,
// keeping only alphabetic tokens longer than two characters that are not
// stop words.
func requirementKeywords(req domain.JobRequirements) []string {
	parts := []string{
		req.Title,
		req.Description,
		req.Location,
		req.EmploymentType,
	}
	parts = append(parts, req.RequiredSkills...)
	parts = append(parts, req.PreferredSkills...)
	parts = append(parts, req.Responsibilities...)
	parts = append(parts, req.EducationRequired...)
	parts = append(parts, req.EducationPreferred...)

	blob := strings.ToLower(strings.Join(parts, " "))

	var keywords []string
	for _, tok := range tokenSplitRe.Split(blob, -1) {
		if len(tok) <= 2 || !alphaOnlyRe.MatchString(tok) {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		keywords = append(keywords, tok)
	}
	return keywords
}
