package airouter

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"career-coach-backend/lib/prompts"
	"career-coach-backend/models"
)

type fakeClient struct {
	name   models.AiProviderName
	answer string
	err    error
	calls  int
}

func (f *fakeClient) Name() models.AiProviderName {
	return f.name
}

func (f *fakeClient) Generate(ctx context.Context, model string, promt prompts.Prompt) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func testRoutes() map[models.Complexity]RouteConfig {
	return DefaultRoutes("deepseek-r1:14b", "gemini-2.5-flash", "gemini-2.5-pro")
}

func TestRouter(t *testing.T) {
	t.Run(`Route table check`, func(t *testing.T) {
		router := NewInstance(nil, Config{Routes: testRoutes()}, nil)

		route := router.Route(models.ComplexityMedium, "")
		require.Equal(t, models.AiProviderOllama, route.Primary.Provider)
		require.Equal(t, models.AiProviderYandexGPT, route.Fallback.Provider)

		route = router.Route(models.ComplexityComplex, "")
		require.Equal(t, models.AiProviderGemini, route.Primary.Provider)
		require.Equal(t, "gemini-2.5-pro", route.Primary.Model)
	})

	t.Run(`Route override check`, func(t *testing.T) {
		router := NewInstance(nil, Config{Routes: testRoutes()}, nil)

		// auto и пустое значение не меняют выбор таблицы
		require.Equal(t,
			router.Route(models.ComplexityMedium, ""),
			router.Route(models.ComplexityMedium, models.AiProviderAuto))

		route := router.Route(models.ComplexityMedium, models.AiProviderGemini)
		require.Equal(t, models.AiProviderGemini, route.Primary.Provider)
		// резерв остаётся табличным
		require.Equal(t, models.AiProviderYandexGPT, route.Fallback.Provider)
	})

	t.Run(`Call transparent fallback check`, func(t *testing.T) {
		primary := &fakeClient{name: models.AiProviderOllama, err: errors.New("timeout")}
		fallback := &fakeClient{name: models.AiProviderYandexGPT, answer: `{"score": 80}`}
		router := NewInstance([]Client{primary, fallback}, Config{Routes: testRoutes()}, nil)

		resp, err := router.Call(context.TODO(), CallRequest{
			Complexity: models.ComplexityMedium,
		})
		require.Nil(t, err)
		require.Equal(t, `{"score": 80}`, resp.RawText)
		require.Equal(t, models.AiProviderYandexGPT, resp.Provider)
		require.Equal(t, 1, primary.calls)
		require.Equal(t, 1, fallback.calls)
	})

	t.Run(`Call both fail check`, func(t *testing.T) {
		primary := &fakeClient{name: models.AiProviderOllama, err: errors.New("timeout")}
		fallback := &fakeClient{name: models.AiProviderYandexGPT, err: errors.New("refused")}
		router := NewInstance([]Client{primary, fallback}, Config{Routes: testRoutes()}, nil)

		_, err := router.Call(context.TODO(), CallRequest{
			Complexity: models.ComplexityMedium,
		})
		require.NotNil(t, err)
		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
		require.Equal(t, models.AiProviderYandexGPT, provErr.Provider)
		require.Equal(t, "refused", errors.Cause(provErr.Cause).Error())
		// ровно одна повторная попытка
		require.Equal(t, 1, primary.calls)
		require.Equal(t, 1, fallback.calls)
	})

	t.Run(`Call primary success check`, func(t *testing.T) {
		primary := &fakeClient{name: models.AiProviderOllama, answer: "ok"}
		fallback := &fakeClient{name: models.AiProviderYandexGPT, answer: "never"}
		router := NewInstance([]Client{primary, fallback}, Config{Routes: testRoutes()}, nil)

		resp, err := router.Call(context.TODO(), CallRequest{
			Complexity: models.ComplexityMedium,
		})
		require.Nil(t, err)
		require.Equal(t, "ok", resp.RawText)
		require.Equal(t, 0, fallback.calls)
	})

	t.Run(`Call unknown provider check`, func(t *testing.T) {
		router := NewInstance(nil, Config{Routes: testRoutes()}, nil)
		_, err := router.Call(context.TODO(), CallRequest{
			Complexity: models.ComplexityMedium,
		})
		require.NotNil(t, err)
		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
	})
}
