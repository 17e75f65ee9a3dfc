package assistant

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"finmind/internal/core"
)

const defaultModel = "gemini-2.5-flash"

type GeminiGateway struct {
	client *genai.Client
	model  string
	now    func() time.Time
}

var _ Gateway = (*GeminiGateway)(nil)

// NewGeminiGateway creates a Gateway backed by the hosted Gemini API.
func NewGeminiGateway(ctx context.Context, apiKey, model string) (*GeminiGateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiGateway{
		client: client,
		model:  model,
		now:    time.Now,
	}, nil
}

// Ask forwards the query with the serialized snapshot as system context.
// All failures come back as *GatewayError so the caller can substitute
// the fallback reply.
func (g *GeminiGateway) Ask(ctx context.Context, query string, snapshot []core.FinancialItem, voiceMode bool) (string, error) {
	system, err := BuildSystemInstruction(snapshot, g.now(), voiceMode)
	if err != nil {
		return "", &GatewayError{Err: err}
	}

	// Low temperature keeps the answers factual against the snapshot.
	temp := float32(0.3)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       &temp,
	}

	contents := []*genai.Content{genai.NewContentFromText(query, genai.RoleUser)}

	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", &GatewayError{Err: fmt.Errorf("generate content: %w", err)}
	}

	text := res.Text()
	if text == "" {
		return "", &GatewayError{Err: fmt.Errorf("model returned empty text")}
	}

	return text, nil
}
