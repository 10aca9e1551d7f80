package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name    string
		from    Stage
		to      Stage
		wantErr bool
	}{
		{"queued to fetching", StageQueued, StageFetching, false},
		{"fetching to extracting", StageFetching, StageExtracting, false},
		{"extracting to parsing", StageExtracting, StageParsing, false},
		{"parsing to scoring", StageParsing, StageScoring, false},
		{"parsing skips scoring on degrade", StageParsing, StagePersisting, false},
		{"scoring to persisting", StageScoring, StagePersisting, false},
		{"persisting to done", StagePersisting, StageDone, false},
		{"any stage may fail", StageExtracting, StageFailed, false},
		{"no stage skipping", StageQueued, StageParsing, true},
		{"no going backwards", StageScoring, StageExtracting, true},
		{"done is terminal", StageDone, StageFetching, true},
		{"failed is terminal", StageFailed, StageFetching, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := advance(tt.from, tt.to)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.from, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.to, got)
			}
		})
	}
}

func TestStageProgressMonotonic(t *testing.T) {
	order := []Stage{StageQueued, StageFetching, StageExtracting, StageParsing, StagePersisting, StageDone}
	prev := -1
	for _, s := range order {
		p, ok := stageProgress[s]
		require.True(t, ok, "stage %s has no progress checkpoint", s)
		assert.Greater(t, p, prev, "progress must increase at %s", s)
		prev = p
	}
	assert.Equal(t, 100, stageProgress[StageDone])
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "queued", StageQueued.String())
	assert.Equal(t, "persisting", StagePersisting.String())
	assert.Equal(t, "failed", StageFailed.String())
}
