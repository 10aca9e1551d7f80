package infrastructure

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// VertexCompletion backs the completion contract with Vertex AI, for
// deployments that authenticate with a service account instead of an API key.
type VertexCompletion struct {
	cfg    CompletionConfig
	client *genai.Client
}

func NewVertexCompletion(ctx context.Context, cfg CompletionConfig) (*VertexCompletion, error) {
	if cfg.VertexProject == "" {
		return nil, fmt.Errorf("VERTEX_PROJECT is required for the vertex provider")
	}
	client, err := genai.NewClient(ctx, cfg.VertexProject, cfg.VertexLocation)
	if err != nil {
		return nil, fmt.Errorf("create vertex client: %w", err)
	}
	return &VertexCompletion{cfg: cfg, client: client}, nil
}

func (v *VertexCompletion) Complete(ctx context.Context, prompt, systemInstruction string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, v.cfg.Timeout)
	defer cancel()

	model := v.client.GenerativeModel(v.cfg.Model)
	model.SetTemperature(v.cfg.Temperature)
	if systemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemInstruction)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				builder.WriteString(string(text))
			}
		}
	}
	out := strings.TrimSpace(builder.String())
	if out == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return out, nil
}

// Close releases the underlying gRPC connection.
func (v *VertexCompletion) Close() error {
	return v.client.Close()
}
