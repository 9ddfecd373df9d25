// Package assistant provides the Gemini-backed implementation of
// ports.Assistant. Construction fails softly: a missing API key yields a nil
// client and the service layer degrades to canned replies.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient forwards chat messages to the Gemini text-generation API.
type GeminiClient struct {
	model *genai.GenerativeModel
}

// NewGeminiClient initialises the Gemini client. Returns an error when the
// backend cannot be constructed; callers treat that as "no backend".
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiClient{model: client.GenerativeModel(model)}, nil
}

func (g *GeminiClient) Reply(ctx context.Context, message, role string) (string, error) {
	prompt := fmt.Sprintf(
		"You are JobMatch's assistant. Be concise, helpful, actionable. "+
			"User role: %s. If asked for steps, give short bullet points.\n\nUser: %s\nAssistant:",
		role, message)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String(), nil
}
