package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resume-screener/domain"
)

// StructuredParser turns extracted résumé text into a CandidateProfile via
// the completion service.
type StructuredParser struct {
	completion Completion
}

func NewStructuredParser(completion Completion) *StructuredParser {
	return &StructuredParser{completion: completion}
}

const profileSchemaDescription = `{
  "contact": {"name": string|null, "email": string|null, "phone": string|null, "location": string|null, "linkedin": string|null},
  "summary": string|null,
  "experience": [{"company": string|null, "title": string|null, "start_date": string|null, "end_date": string|null, "description": string|null, "highlights": [string]}],
  "education": [{"institution": string|null, "degree": string|null, "field": string|null, "start_year": string|null, "end_year": string|null}],
  "skills": {"technical": [string], "soft": [string], "tools": [string], "other": [string]},
  "certifications": [string],
  "projects": [{"name": string|null, "description": string|null, "url": string|null}],
  "languages": [string],
  "additional_info": string|null,
  "confidence": {"contact": "high|medium|low", "experience": "high|medium|low", "education": "high|medium|low", "skills": "high|medium|low"}
}`

const profileExample = `{
  "contact": {"name": "Jane Doe", "email": "jane@example.com", "phone": null, "location": "Berlin", "linkedin": null},
  "summary": "Backend engineer with six years of Go and MySQL experience.",
  "experience": [{"company": "Acme", "title": "Backend Engineer", "start_date": "2019-03", "end_date": null, "description": "Built payment services.", "highlights": ["Cut p99 latency 40%"]}],
  "education": [{"institution": "TU Berlin", "degree": "BSc", "field": "Computer Science", "start_year": "2012", "end_year": "2016"}],
  "skills": {"technical": ["Go", "MySQL"], "soft": ["Mentoring"], "tools": ["Docker"], "other": []},
  "certifications": [],
  "projects": [],
  "languages": ["English", "German"],
  "additional_info": null,
  "confidence": {"contact": "high", "experience": "high", "education": "medium", "skills": "high"}
}`

const parserSystemInstruction = "You are a résumé parser. Respond with a single JSON object only, " +
	"no markdown formatting, code blocks, or additional text. Use null for any field " +
	"not present in the résumé; never invent values."

// Parse sends the extracted text and the job context to the completion
// service and decodes the response into a CandidateProfile. Service errors
// are ErrCompletionFailed; undecodable output is ErrMalformedResponse.
func (p *StructuredParser) Parse(ctx context.Context, text string, req domain.JobRequirements) (*domain.CandidateProfile, error) {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal requirements: %v", ErrMalformedResponse, err)
	}

	prompt := fmt.Sprintf(`Extract a structured candidate profile from the résumé below.

Target JSON schema:
%s

Job context (for disambiguation only, do not copy into the profile):
%s

Résumé text:
%s

Example of valid output:
%s

Return ONLY the raw JSON object.`, profileSchemaDescription, string(reqJSON), text, profileExample)

	raw, err := p.completion.Complete(ctx, prompt, parserSystemInstruction)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	cleaned := CleanJSONResponse(raw)
	var profile domain.CandidateProfile
	if err := json.Unmarshal([]byte(cleaned), &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &profile, nil
}

// CleanJSONResponse strips markdown code fences the model may wrap its output
// in and slices down to the outermost JSON object.
func CleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start != -1 && end != -1 && end > start {
		content = content[start : end+1]
	}
	return strings.TrimSpace(content)
}
