package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

// The bot's persona. All conversational replies go through it.
const personaPrompt = "אתה 'הנודניק', בוט חצוף שעוזר לתלמידים. ענה בעברית קצרה, צינית ומצחיקה."

const textTimeout = 2 * time.Minute

// TextGenerator is the single call-and-reply contract the bot needs from a
// text-generation provider.
type TextGenerator interface {
	Generate(ctx context.Context, system, userText string) (string, error)
}

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: geminiModel}, nil
}

func (g *GeminiClient) Generate(ctx context.Context, system, userText string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(userText),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		},
	)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
			return "", errRateLimited
		}
		return "", fmt.Errorf("%w: %v", errProviderFailure, err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response", errProviderFailure)
	}
	return text, nil
}

// chatReply relays userText to the text provider under the fixed persona and
// always returns something sendable. A rate limit gets the fixed quota
// message; any other failure gets a fixed reply with no internal detail.
func chatReply(ctx context.Context, gen TextGenerator, userText string) string {
	ctx, cancel := context.WithTimeout(ctx, textTimeout)
	defer cancel()

	reply, err := gen.Generate(ctx, personaPrompt, "התלמיד אמר: "+userText)
	if err != nil {
		log.Printf("chat: generate error: %v", err)
		if errors.Is(err, errRateLimited) {
			return userMessage(err)
		}
		return "אפילו ה-AI שלי קרס מהשטויות שכתבת. נסה שוב עוד דקה."
	}
	return reply
}
