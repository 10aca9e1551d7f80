package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const geminiDefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// GeminiCompletion talks to the Gemini generateContent REST API.
type GeminiCompletion struct {
	cfg      CompletionConfig
	endpoint string
	client   *http.Client
}

func NewGeminiCompletion(cfg CompletionConfig) *GeminiCompletion {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = geminiDefaultEndpoint
	}
	return &GeminiCompletion{
		cfg:      cfg,
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

func (g *GeminiCompletion) Complete(ctx context.Context, prompt, systemInstruction string) (string, error) {
	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": g.cfg.Temperature,
			"topP":        0.8,
			"topK":        40,
		},
	}
	if systemInstruction != "" {
		requestBody["system_instruction"] = map[string]interface{}{
			"parts": []map[string]interface{}{
				{"text": systemInstruction},
			},
		}
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.endpoint, g.cfg.Model, g.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var apiResponse map[string]interface{}
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}

	return geminiResponseText(apiResponse)
}

func geminiResponseText(apiResponse map[string]interface{}) (string, error) {
	candidates, ok := apiResponse["candidates"].([]interface{})
	if !ok || len(candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	firstCandidate, ok := candidates[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid candidate format")
	}
	content, ok := firstCandidate["content"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid content format")
	}
	parts, ok := content["parts"].([]interface{})
	if !ok || len(parts) == 0 {
		return "", fmt.Errorf("no parts in content")
	}
	firstPart, ok := parts[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid part format")
	}
	text, ok := firstPart["text"].(string)
	if !ok {
		return "", fmt.Errorf("no text in part")
	}
	return text, nil
}
