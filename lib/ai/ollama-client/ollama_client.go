package ollamaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"career-coach-backend/lib/prompts"
	"career-coach-backend/models"
)

// Структуры для работы с Ollama API
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature   float64  `json:"temperature,omitempty"`
	TopP          float64  `json:"top_p,omitempty"`
	TopK          int      `json:"top_k,omitempty"`
	NumPredict    int      `json:"num_predict,omitempty"` // аналог MaxTokens
	RepeatPenalty float64  `json:"repeat_penalty,omitempty"`
	Stop          []string `json:"stop,omitempty"`
}

type ollamaResponse struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
}

func deepSeekOptions() ollamaOptions {
	return ollamaOptions{
		Temperature:   0.7,
		TopP:          0.9,
		TopK:          40,
		NumPredict:    2000,
		RepeatPenalty: 1.1,
	}
}

type Client struct {
	ollamaURL    string
	defaultModel string
	httpClient   *http.Client
}

func NewClient(ollamaURL, defaultModel string) *Client {
	return &Client{
		ollamaURL:    ollamaURL,
		defaultModel: defaultModel,
		httpClient:   http.DefaultClient,
	}
}

func (c *Client) Name() models.AiProviderName {
	return models.AiProviderOllama
}

func (c *Client) Generate(ctx context.Context, model string, promt prompts.Prompt) (string, error) {
	if c.ollamaURL == "" {
		return "", errors.New("не указан url для ollama")
	}
	if model == "" {
		model = c.defaultModel
	}
	if model == "" {
		return "", errors.New("не указана модель для ollama")
	}

	request := ollamaRequest{
		Model:   model,
		System:  promt.SystemInstruction,
		Prompt:  promt.UserPrompt,
		Stream:  false,
		Options: deepSeekOptions(),
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ollamaURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ошибка Ollama API: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var response ollamaResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return "", err
	}

	return extractAnswer(response.Response), nil
}

// extractAnswer отбрасывает рассуждения reasoning-моделей до тега </think>
func extractAnswer(response string) string {
	responseSlice := strings.Split(response, "</think>")
	if len(responseSlice) == 1 {
		return response
	}
	return responseSlice[1]
}
