package airouter

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	ailogstore "career-coach-backend/lib/ai/log-store"
	"career-coach-backend/lib/prompts"
	"career-coach-backend/models"
	aiapimodels "career-coach-backend/models/api/ai"
	dbmodels "career-coach-backend/models/db"
)

// Client — единый интерфейс провайдера LLM
type Client interface {
	Name() models.AiProviderName
	Generate(ctx context.Context, model string, promt prompts.Prompt) (string, error)
}

// Target — провайдер и модель для одной попытки
type Target struct {
	Provider models.AiProviderName
	Model    string
}

// RouteConfig — основная и резервная цель для запроса
type RouteConfig struct {
	Primary  Target
	Fallback Target
}

// ProviderError — основной и резервный вызовы завершились ошибкой
type ProviderError struct {
	Provider models.AiProviderName
	Cause    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("провайдеры ИИ недоступны, последняя ошибка (%s): %v", e.Provider, e.Cause)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

type CallRequest struct {
	Promt      prompts.Prompt
	Complexity models.Complexity
	// Override форсирует провайдера основной попытки;
	// пустое значение и "auto" оставляют выбор таблице маршрутизации
	Override    models.AiProviderName
	RequestType models.AssessmentKind
	UserID      string
}

type Provider interface {
	Route(complexity models.Complexity, override models.AiProviderName) RouteConfig
	Call(ctx context.Context, req CallRequest) (aiapimodels.ModelResponse, error)
}

var Instance Provider

type Config struct {
	// таймаут одной попытки
	AttemptTimeout time.Duration
	Routes         map[models.Complexity]RouteConfig
}

// DefaultRoutes — детерминированная таблица маршрутизации.
// Модели для ollama/gemini берутся из конфигурации провайдеров.
func DefaultRoutes(ollamaModel, geminiModel, geminiModelPro string) map[models.Complexity]RouteConfig {
	return map[models.Complexity]RouteConfig{
		models.ComplexityMedium: {
			Primary:  Target{Provider: models.AiProviderOllama, Model: ollamaModel},
			Fallback: Target{Provider: models.AiProviderYandexGPT},
		},
		models.ComplexityHard: {
			Primary:  Target{Provider: models.AiProviderYandexGPT},
			Fallback: Target{Provider: models.AiProviderGemini, Model: geminiModel},
		},
		models.ComplexityComplex: {
			Primary:  Target{Provider: models.AiProviderGemini, Model: geminiModelPro},
			Fallback: Target{Provider: models.AiProviderYandexGPT},
		},
	}
}

func NewInstance(clients []Client, cfg Config, logStore ailogstore.Provider) Provider {
	clientMap := make(map[models.AiProviderName]Client, len(clients))
	for _, client := range clients {
		clientMap[client.Name()] = client
	}
	return &impl{
		clients:  clientMap,
		cfg:      cfg,
		logStore: logStore,
	}
}

type impl struct {
	clients  map[models.AiProviderName]Client
	cfg      Config
	logStore ailogstore.Provider
}

func (i *impl) Route(complexity models.Complexity, override models.AiProviderName) RouteConfig {
	route, exist := i.cfg.Routes[complexity]
	if !exist {
		route = i.cfg.Routes[models.ComplexityMedium]
	}
	if override != "" && override != models.AiProviderAuto {
		route.Primary = Target{Provider: override}
	}
	return route
}

// Call выполняет запрос с одним повтором на резервном провайдере.
// Успешный ответ резерва неотличим для вызывающего от ответа основного.
func (i *impl) Call(ctx context.Context, req CallRequest) (aiapimodels.ModelResponse, error) {
	route := i.Route(req.Complexity, req.Override)

	resp, primaryErr := i.attempt(ctx, route.Primary, req)
	if primaryErr == nil {
		return resp, nil
	}
	log.
		WithField("provider", route.Primary.Provider).
		WithField("complexity", req.Complexity).
		WithError(primaryErr).
		Warn("основной провайдер ИИ недоступен, переключение на резервный")

	resp, fallbackErr := i.attempt(ctx, route.Fallback, req)
	if fallbackErr == nil {
		return resp, nil
	}
	log.
		WithField("provider", route.Fallback.Provider).
		WithField("complexity", req.Complexity).
		WithError(fallbackErr).
		Error("резервный провайдер ИИ недоступен")
	return aiapimodels.ModelResponse{}, &ProviderError{
		Provider: route.Fallback.Provider,
		Cause:    fallbackErr,
	}
}

func (i *impl) attempt(ctx context.Context, target Target, req CallRequest) (aiapimodels.ModelResponse, error) {
	client, exist := i.clients[target.Provider]
	if !exist {
		return aiapimodels.ModelResponse{}, errors.Errorf("провайдер ИИ не сконфигурирован: %s", target.Provider)
	}

	attemptCtx := ctx
	if i.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, i.cfg.AttemptTimeout)
		defer cancel()
	}

	now := time.Now()
	answer, err := client.Generate(attemptCtx, target.Model, req.Promt)
	latency := time.Since(now)
	if err != nil {
		return aiapimodels.ModelResponse{}, err
	}

	resp := aiapimodels.ModelResponse{
		RawText:   answer,
		Provider:  target.Provider,
		ModelName: target.Model,
		LatencyMs: latency.Milliseconds(),
	}
	i.saveLog(req, resp)
	return resp, nil
}

func (i *impl) saveLog(req CallRequest, resp aiapimodels.ModelResponse) {
	if i.logStore == nil {
		return
	}
	_, err := i.logStore.Save(dbmodels.AiLog{
		SysPromt:   req.Promt.SystemInstruction,
		UserPromt:  req.Promt.UserPrompt,
		Answer:     resp.RawText,
		UserID:     req.UserID,
		AiName:     resp.Provider,
		ModelName:  resp.ModelName,
		LatencyMs:  resp.LatencyMs,
		ReqestType: req.RequestType,
	})
	if err != nil {
		log.
			WithField("provider", resp.Provider).
			WithError(err).
			Error("ошибка сохранения лога запроса к ИИ")
	}
}
