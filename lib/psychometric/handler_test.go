package psychohandler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	airouter "career-coach-backend/lib/ai/router"
	"career-coach-backend/models"
	aiapimodels "career-coach-backend/models/api/ai"
	psychoapimodels "career-coach-backend/models/api/psychometric"
)

type fakeRouter struct {
	answer string
	err    error
	calls  []airouter.CallRequest
}

func (f *fakeRouter) Route(complexity models.Complexity, override models.AiProviderName) airouter.RouteConfig {
	return airouter.RouteConfig{}
}

func (f *fakeRouter) Call(ctx context.Context, req airouter.CallRequest) (aiapimodels.ModelResponse, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return aiapimodels.ModelResponse{}, f.err
	}
	return aiapimodels.ModelResponse{RawText: f.answer, Provider: models.AiProviderGemini}, nil
}

func TestPsychometricHandler(t *testing.T) {
	answers := psychoapimodels.AnswerMap{
		"dass_1": 3, "dass_2": 2, "dass_3": 1,
		"flow_22": 5,
		"big5_32": 4,
	}

	t.Run(`Submit success check`, func(t *testing.T) {
		router := &fakeRouter{answer: "```json\n" + `{
			"porcentaje_match": 78,
			"analisis_brechas": ["falta experiencia en liderazgo"],
			"ajuste_cultural": "Alto",
			"prediccion_performance": "Buena",
			"guia_entrevista": ["pregunta sobre conflictos"]
		}` + "\n```"}
		handler := NewInstance(router, nil, nil, "")

		resp, err := handler.Submit(context.TODO(), psychoapimodels.SubmitRequest{Answers: answers})
		require.Nil(t, err)
		require.Equal(t, 78, resp.AiReport.PorcentajeMatch)
		require.Equal(t, "Alto", resp.AiReport.AjusteCultural)
		require.Equal(t, []string{"falta experiencia en liderazgo"}, resp.AiReport.AnalisisBrechas)
		require.Len(t, router.calls, 1)
		require.Equal(t, models.ComplexityHard, router.calls[0].Complexity)
	})

	t.Run(`Submit provider failure keeps scores check`, func(t *testing.T) {
		router := &fakeRouter{err: &airouter.ProviderError{
			Provider: models.AiProviderYandexGPT,
			Cause:    errors.New("timeout"),
		}}
		handler := NewInstance(router, nil, nil, "")

		resp, err := handler.Submit(context.TODO(), psychoapimodels.SubmitRequest{Answers: answers})
		require.Nil(t, err)
		require.Equal(t, 6, resp.Scores.Dass.Stress)
		require.Equal(t, 4, resp.Scores.Dass.Anxiety)
		require.Equal(t, 2, resp.Scores.Dass.Depression)
		require.Equal(t, 50, resp.AiReport.PorcentajeMatch)
		require.Equal(t, []string{"Error generating AI analysis"}, resp.AiReport.AnalisisBrechas)
		require.Equal(t, "N/A", resp.AiReport.AjusteCultural)
	})

	t.Run(`Submit malformed answer fallback check`, func(t *testing.T) {
		router := &fakeRouter{answer: "lo siento, no puedo generar JSON"}
		handler := NewInstance(router, nil, nil, "")

		resp, err := handler.Submit(context.TODO(), psychoapimodels.SubmitRequest{Answers: answers})
		require.Nil(t, err)
		require.Equal(t, 50, resp.AiReport.PorcentajeMatch)
		require.Equal(t, "N/A", resp.AiReport.PrediccionPerformance)
	})

	t.Run(`Submit nil slices normalized check`, func(t *testing.T) {
		router := &fakeRouter{answer: `{"porcentaje_match": 60, "ajuste_cultural": "Medio", "prediccion_performance": "Regular"}`}
		handler := NewInstance(router, nil, nil, "")

		resp, err := handler.Submit(context.TODO(), psychoapimodels.SubmitRequest{Answers: answers})
		require.Nil(t, err)
		require.NotNil(t, resp.AiReport.AnalisisBrechas)
		require.NotNil(t, resp.AiReport.GuiaEntrevista)
	})
}
