package aiapimodels

import "career-coach-backend/models"

// ModelResponse — сырой ответ провайдера, живёт только в рамках запроса
type ModelResponse struct {
	RawText   string                `json:"raw_text"`
	Provider  models.AiProviderName `json:"provider"`
	ModelName string                `json:"model_name"`
	LatencyMs int64                 `json:"latency_ms"`
}
