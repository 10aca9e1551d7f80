package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-screener/domain"
)

// fakeCompletion replays canned responses in call order.
type fakeCompletion struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
	systems   []string
}

func (f *fakeCompletion) Complete(_ context.Context, prompt, systemInstruction string) (string, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.systems = append(f.systems, systemInstruction)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	resp := ""
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	if err != nil {
		return "", err
	}
	return resp, nil
}

func TestStructuredParserParse(t *testing.T) {
	profileJSON := `{
		"contact": {"name": "Jane Doe", "email": "jane@example.com"},
		"summary": "Backend engineer.",
		"skills": {"technical": ["Go", "MySQL"]},
		"confidence": {"contact": "high", "skills": "medium"}
	}`

	tests := []struct {
		name     string
		response string
		err      error
		wantErr  error
		validate func(*testing.T, *domain.CandidateProfile)
	}{
		{
			name:     "plain JSON response",
			response: profileJSON,
			validate: func(t *testing.T, p *domain.CandidateProfile) {
				require.NotNil(t, p.Contact)
				require.NotNil(t, p.Contact.Name)
				assert.Equal(t, "Jane Doe", *p.Contact.Name)
				require.NotNil(t, p.Skills)
				assert.Equal(t, []string{"Go", "MySQL"}, p.Skills.Technical)
				assert.Equal(t, "high", p.Confidence["contact"])
			},
		},
		{
			name:     "response wrapped in code fences",
			response: "```json\n" + profileJSON + "\n```",
			validate: func(t *testing.T, p *domain.CandidateProfile) {
				require.NotNil(t, p.Contact)
				require.NotNil(t, p.Contact.Email)
				assert.Equal(t, "jane@example.com", *p.Contact.Email)
			},
		},
		{
			name:     "absent sections stay nil",
			response: `{"summary": "Short résumé."}`,
			validate: func(t *testing.T, p *domain.CandidateProfile) {
				assert.Nil(t, p.Contact)
				assert.Nil(t, p.Skills)
				assert.Empty(t, p.Experience)
				require.NotNil(t, p.Summary)
				assert.Equal(t, "Short résumé.", *p.Summary)
			},
		},
		{
			name:     "malformed response",
			response: "I could not parse this résumé, sorry!",
			wantErr:  ErrMalformedResponse,
		},
		{
			name:    "completion service error",
			err:     errors.New("upstream 503"),
			wantErr: ErrCompletionFailed,
		},
	}

	req := domain.JobRequirements{Title: "Backend Engineer"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCompletion{responses: []string{tt.response}, errs: []error{tt.err}}
			parser := NewStructuredParser(fake)

			profile, err := parser.Parse(context.Background(), "some resume text", req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, profile)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, profile)
			tt.validate(t, profile)
		})
	}
}

func TestStructuredParserPromptContents(t *testing.T) {
	fake := &fakeCompletion{responses: []string{`{}`}}
	parser := NewStructuredParser(fake)

	req := domain.JobRequirements{Title: "Platform Engineer"}
	_, err := parser.Parse(context.Background(), "RESUME BODY HERE", req)
	require.NoError(t, err)
	require.Len(t, fake.prompts, 1)

	// The payload embeds the schema, the requirements and the text.
	assert.Contains(t, fake.prompts[0], "RESUME BODY HERE")
	assert.Contains(t, fake.prompts[0], "Platform Engineer")
	assert.Contains(t, fake.prompts[0], `"confidence"`)
	assert.Contains(t, fake.systems[0], "JSON")
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", "Here you go:\n{\"a\":1}\nHope that helps.", `{"a":1}`},
		{"whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
		{"no json at all", "nothing here", "nothing here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONResponse(tt.input))
		})
	}
}
