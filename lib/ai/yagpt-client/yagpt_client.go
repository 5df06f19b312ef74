package yagptclient

import (
	"context"

	"github.com/pkg/errors"
	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"

	"career-coach-backend/lib/prompts"
	"career-coach-backend/models"
)

type Client struct {
	client    *yandexgptclient.YandexGPTClient
	catalogID string
}

func NewClient(token, catalog string) *Client {
	return &Client{
		client:    yandexgptclient.NewYandexGPTClientWithIAMToken(token),
		catalogID: catalog,
	}
}

func (c *Client) Name() models.AiProviderName {
	return models.AiProviderYandexGPT
}

// Generate выполняет запрос к YandexGPT. Используется только модель lite,
// параметр model оставлен для совместимости с интерфейсом роутера.
func (c *Client) Generate(ctx context.Context, model string, promt prompts.Prompt) (string, error) {
	request := yandexgptclient.YandexGPTRequest{
		ModelURI: yandexgptclient.MakeModelURI(c.catalogID, yandexgptclient.YandexGPTModelLite),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: 0.3,
			MaxTokens:   2000,
		},
		Messages: []yandexgptclient.YandexGPTMessage{
			{
				Role: yandexgptclient.YandexGPTMessageRoleSystem,
				Text: promt.SystemInstruction,
			},
			{
				Role: yandexgptclient.YandexGPTMessageRoleUser,
				Text: promt.UserPrompt,
			},
		},
	}

	response, err := c.client.CreateRequest(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "ошибка при отправке запроса на генерацию в API YandexGPT")
	}
	if len(response.Result.Alternatives) == 0 {
		return "", errors.New("API YandexGPT вернул пустой ответ")
	}
	return response.Result.Alternatives[0].Message.Text, nil
}
