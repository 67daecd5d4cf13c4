package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/keerthiramGR/skillbridge-ai/internal/config"
	"google.golang.org/genai"
)

// Completer generates a single chat completion.
type Completer interface {
	AnalyzeText(ctx context.Context, systemPrompt, userInput string) string
}

// Client wraps the Gemini API for the AI modules. When no API key is
// configured, or when a call fails, it returns a canned demo-mode response
// instead of an error — AI output is never load-bearing.
type Client struct {
	genai *genai.Client
	model string
}

func NewClient(ctx context.Context, cfg *config.Config) *Client {
	c := &Client{model: cfg.GeminiModel}
	if cfg.GeminiAPIKey == "" {
		slog.Info("GEMINI_API_KEY not set, AI modules run in demo mode")
		return c
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		slog.Warn("gemini client unavailable, falling back to demo mode", "err", err)
		return c
	}
	c.genai = gc
	return c
}

// AnalyzeText runs a single-turn analysis: one system prompt, one user input.
func (c *Client) AnalyzeText(ctx context.Context, systemPrompt, userInput string) string {
	if c.genai == nil {
		return demoResponse(userInput)
	}
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(userInput),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.7),
		})
	if err != nil {
		slog.Warn("gemini api error", "err", err)
		return demoResponse(userInput)
	}
	return resp.Text()
}

func demoResponse(input string) string {
	if len(input) > 100 {
		input = input[:100]
	}
	return fmt.Sprintf(
		"[AI Response — Demo Mode] Analysis of input received. In production, "+
			"this would be powered by Gemini analysis of: '%s...'. "+
			"Configure GEMINI_API_KEY for live AI responses.", input)
}
