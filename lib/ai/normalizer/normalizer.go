package normalizer

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	careerapimodels "career-coach-backend/models/api/career"
)

// StripFences убирает обрамление markdown-кодом из ответа модели
func StripFences(raw string) string {
	answer := strings.ReplaceAll(raw, "```json", "")
	answer = strings.ReplaceAll(answer, "```", "")
	return strings.TrimSpace(answer)
}

// DecodeContract — общий разбор JSON-контракта из свободного текста модели
func DecodeContract(raw string, out any) error {
	answer := StripFences(raw)
	if answer == "" {
		return errors.New("пустой ответ модели")
	}
	if err := json.Unmarshal([]byte(answer), out); err != nil {
		return errors.Wrap(err, "ошибка декодирования json из ответа модели")
	}
	return nil
}

// Normalize приводит свободный текст модели к контракту AnalysisReport.
// Функция тотальна: при любом входе возвращается структурно валидный отчёт;
// ненулевая ошибка означает, что возвращён фиксированный fallback-отчёт.
func Normalize(rawText string) (careerapimodels.AnalysisReport, error) {
	var fields map[string]json.RawMessage
	if err := DecodeContract(rawText, &fields); err != nil {
		return careerapimodels.FallbackReport(), err
	}

	// без score и matchLevel ответ считается некорректным
	if _, exist := fields["score"]; !exist {
		return careerapimodels.FallbackReport(), errors.New("в ответе модели отсутствует поле score")
	}
	if _, exist := fields["matchLevel"]; !exist {
		return careerapimodels.FallbackReport(), errors.New("в ответе модели отсутствует поле matchLevel")
	}

	var report careerapimodels.AnalysisReport
	if err := json.Unmarshal([]byte(StripFences(rawText)), &report); err != nil {
		return careerapimodels.FallbackReport(), errors.Wrap(err, "ошибка декодирования отчёта")
	}
	report.EnsureShape()
	return report, nil
}
