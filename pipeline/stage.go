package pipeline

import "fmt"

// Stage is the explicit per-job state. Transitions are restricted to the
// table below so a job can never skip a stage or resurrect after failing.
type Stage int

const (
	StageQueued Stage = iota
	StageFetching
	StageExtracting
	StageParsing
	StageScoring
	StagePersisting
	StageDone
	StageFailed
)

var stageNames = map[Stage]string{
	StageQueued:     "queued",
	StageFetching:   "fetching",
	StageExtracting: "extracting",
	StageParsing:    "parsing",
	StageScoring:    "scoring",
	StagePersisting: "persisting",
	StageDone:       "done",
	StageFailed:     "failed",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// allowedTransitions maps a stage to the stages it may move to. Every
// non-terminal stage may fail; parsing may jump straight to persisting when
// structured parsing degrades and scoring is skipped.
var allowedTransitions = map[Stage][]Stage{
	StageQueued:     {StageFetching, StageFailed},
	StageFetching:   {StageExtracting, StageFailed},
	StageExtracting: {StageParsing, StageFailed},
	StageParsing:    {StageScoring, StagePersisting, StageFailed},
	StageScoring:    {StagePersisting, StageFailed},
	StagePersisting: {StageDone, StageFailed},
	StageDone:       {},
	StageFailed:     {},
}

// stageProgress is the advisory completion percentage reported once a stage
// has finished.
var stageProgress = map[Stage]int{
	StageQueued:     0,
	StageFetching:   25,
	StageExtracting: 40,
	StageParsing:    60,
	StagePersisting: 80,
	StageDone:       100,
}

// advance validates and performs a transition, returning the new stage.
func advance(from, to Stage) (Stage, error) {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return to, nil
		}
	}
	return from, fmt.Errorf("illegal stage transition %s -> %s", from, to)
}
