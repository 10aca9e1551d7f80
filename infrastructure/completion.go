package infrastructure

import (
	"context"
	"fmt"

	"resume-screener/pipeline"
)

// NewCompletion builds the completion backend selected by configuration.
// All backends satisfy the same one-method contract; nothing downstream
// knows which provider is in use.
func NewCompletion(ctx context.Context, cfg CompletionConfig) (pipeline.Completion, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiCompletion(cfg), nil
	case "openai":
		return NewOpenAICompletion(cfg), nil
	case "vertex":
		return NewVertexCompletion(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
	}
}
