package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"dietary-advisor/config"
)

var (
	ErrEmptyGeneration = errors.New("text generation returned no usable candidate")
)

// StatusError is returned when the inference API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("text generation failed with status %d: %s", e.StatusCode, e.Body)
}

type generationParameters struct {
	MaxLength         int     `json:"max_length"`
	Temperature       float64 `json:"temperature"`
	DoSample          bool    `json:"do_sample"`
	TopP              float64 `json:"top_p"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
}

type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generationCandidate struct {
	GeneratedText string `json:"generated_text"`
}

// HuggingFaceClient calls the Hugging Face inference API for a single text model.
type HuggingFaceClient struct {
	httpClient  *http.Client
	endpoint    string
	apiKey      string
	maxLength   int
	temperature float64
}

func NewHuggingFaceClient(cfg config.AIConfig) *HuggingFaceClient {
	return &HuggingFaceClient{
		// No timeout: the request lives as long as the inference API keeps it open.
		httpClient:  &http.Client{},
		endpoint:    strings.TrimRight(cfg.BaseURL, "/") + "/models/" + cfg.Model,
		apiKey:      cfg.APIKey,
		maxLength:   cfg.MaxLength,
		temperature: cfg.Temperature,
	}
}

// Generate sends prompt and returns the first candidate's text.
func (c *HuggingFaceClient) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generationRequest{
		Inputs: prompt,
		Parameters: generationParameters{
			MaxLength:         c.maxLength,
			Temperature:       c.temperature,
			DoSample:          true,
			TopP:              0.9,
			RepetitionPenalty: 1.1,
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("text generation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read text generation response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var candidates []generationCandidate
	if err := json.Unmarshal(body, &candidates); err != nil {
		return "", fmt.Errorf("unexpected text generation response: %w", err)
	}
	if len(candidates) == 0 {
		return "", ErrEmptyGeneration
	}

	text := strings.TrimSpace(candidates[0].GeneratedText)
	if text == "" {
		return "", ErrEmptyGeneration
	}
	return text, nil
}
