package pipeline

import "context"

// Completion is the single capability the pipeline needs from a language
// model backend. Implementations live in infrastructure and are selected by
// configuration.
type Completion interface {
	Complete(ctx context.Context, prompt, systemInstruction string) (string, error)
}
