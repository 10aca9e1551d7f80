package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-screener/domain"
)

func TestKeywordScore(t *testing.T) {
	tests := []struct {
		name       string
		req        domain.JobRequirements
		resumeText string
		want       float64
	}{
		{
			name: "single required skill found",
			req: domain.JobRequirements{
				RequiredSkills: domain.StringList{"Python"},
			},
			resumeText: "Experienced Python developer",
			want:       1.0,
		},
		{
			name: "all keywords present",
			req: domain.JobRequirements{
				Title:          "Go Developer",
				RequiredSkills: domain.StringList{"golang", "mysql"},
			},
			// "go" is dropped (too short), leaving developer, golang, mysql.
			resumeText: "golang and mysql developer",
			want:       1.0,
		},
		{
			name: "partial match",
			req: domain.JobRequirements{
				Title:          "Go Developer",
				RequiredSkills: domain.StringList{"golang", "mysql"},
			},
			resumeText: "golang enthusiast",
			want:       1.0 / 3.0,
		},
		{
			name: "repeated keywords count multiple times",
			req: domain.JobRequirements{
				Description: "kubernetes kubernetes terraform",
			},
			resumeText: "kubernetes operator",
			want:       2.0 / 3.0,
		},
		{
			name: "substring containment not whole-word match",
			req: domain.JobRequirements{
				RequiredSkills: domain.StringList{"java"},
			},
			resumeText: "javascript developer",
			want:       1.0,
		},
		{
			name: "only stop words and short tokens",
			req: domain.JobRequirements{
				Title: "the and for it",
			},
			resumeText: "anything",
			want:       0,
		},
		{
			name:       "empty requirements",
			req:        domain.JobRequirements{},
			resumeText: "anything",
			want:       0,
		},
		{
			name: "no match",
			req: domain.JobRequirements{
				RequiredSkills: domain.StringList{"erlang", "haskell"},
			},
			resumeText: "golang developer",
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeywordScore(tt.req, tt.resumeText)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestKeywordScoreAllKeywordsConcatenated(t *testing.T) {
	req := domain.JobRequirements{
		Title:          "Backend Engineer",
		Description:    "building distributed systems with golang",
		RequiredSkills: domain.StringList{"mysql", "rabbitmq"},
	}

	resumeText := strings.Join(requirementKeywords(req), " ")
	assert.NotEmpty(t, requirementKeywords(req))
	assert.Equal(t, 1.0, KeywordScore(req, resumeText))
}

func TestKeywordScoreDeterministic(t *testing.T) {
	req := domain.JobRequirements{
		Title:          "Data Engineer",
		RequiredSkills: domain.StringList{"spark", "airflow", "python"},
	}
	text := "python and spark pipelines"

	first := KeywordScore(req, text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, KeywordScore(req, text))
	}
}

func TestRequirementKeywordsFiltering(t *testing.T) {
	req := domain.JobRequirements{
		Description: "5+ years Go (golang), CI/CD, the cloud",
	}
	keywords := requirementKeywords(req)

	// Numeric, short and stop-word tokens are filtered out.
	assert.NotContains(t, keywords, "5")
	assert.NotContains(t, keywords, "go")
	assert.NotContains(t, keywords, "the")
	assert.Contains(t, keywords, "golang")
	assert.Contains(t, keywords, "cloud")
}
