package geminiclient

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"career-coach-backend/lib/prompts"
	"career-coach-backend/models"
)

type Client struct {
	client       *genai.Client
	defaultModel string
}

func NewClient(ctx context.Context, apiKey, defaultModel string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("не указан api key для gemini")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания клиента genai")
	}
	return &Client{
		client:       client,
		defaultModel: defaultModel,
	}, nil
}

func (c *Client) Name() models.AiProviderName {
	return models.AiProviderGemini
}

func (c *Client) Generate(ctx context.Context, model string, promt prompts.Prompt) (string, error) {
	if model == "" {
		model = c.defaultModel
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: promt.SystemInstruction}},
		},
	}
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(promt.UserPrompt), cfg)
	if err != nil {
		return "", errors.Wrap(err, "ошибка запроса к Gemini API")
	}

	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(text)
		}
	}
	output := strings.TrimSpace(sb.String())
	if output == "" {
		return "", errors.New("Gemini API вернул пустой ответ")
	}
	return output, nil
}
