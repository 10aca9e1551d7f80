package infrastructure

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAICompletion backs the completion contract with the OpenAI chat API
// (or any compatible endpoint via COMPLETION_ENDPOINT).
type OpenAICompletion struct {
	cfg    CompletionConfig
	client *openai.Client
}

func NewOpenAICompletion(cfg CompletionConfig) *OpenAICompletion {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientCfg.BaseURL = cfg.Endpoint
	}
	return &OpenAICompletion{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientCfg),
	}
}

func (o *OpenAICompletion) Complete(ctx context.Context, prompt, systemInstruction string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	messages := []openai.ChatCompletionMessage{}
	if systemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemInstruction,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.cfg.Model,
		Temperature: o.cfg.Temperature,
		Messages:    messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
