package psychoapimodels

import (
	"github.com/pkg/errors"
)

// AnswerMap — ответы опросника, ключ вида "<dimension>_<questionId>",
// например "dass_1", "flow_12", "big5_33"
type AnswerMap map[string]int

type DassScores struct {
	Stress     int `json:"stress"`
	Anxiety    int `json:"anxiety"`
	Depression int `json:"depression"`
}

type FlowScores struct {
	Average      float64            `json:"average"`
	PerDimension map[string]float64 `json:"dimensions"`
}

type Big5Scores struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// ScoreSet — детерминированные баллы, выводятся только из AnswerMap
type ScoreSet struct {
	Dass DassScores `json:"dass"`
	Flow FlowScores `json:"flow"`
	Big5 Big5Scores `json:"big5"`
}

type UserData struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	CvText         string `json:"cv_text"`
	JobDescription string `json:"job_description"`
}

type SubmitRequest struct {
	Answers  AnswerMap `json:"answers"`
	UserData UserData  `json:"user_data"`
	UserID   string    `json:"user_id"`
}

func (r SubmitRequest) Validate() error {
	if len(r.Answers) == 0 {
		return errors.New("ответы опросника не должны быть пустыми")
	}
	return nil
}

// AiReport — контракт ИИ-отчёта психометрии.
// Испанские имена полей фиксированы, их читает веб-клиент.
type AiReport struct {
	PorcentajeMatch       int      `json:"porcentaje_match"`
	AnalisisBrechas       []string `json:"analisis_brechas"`
	AjusteCultural        string   `json:"ajuste_cultural"`
	PrediccionPerformance string   `json:"prediccion_performance"`
	GuiaEntrevista        []string `json:"guia_entrevista"`
}

func FallbackAiReport() AiReport {
	return AiReport{
		PorcentajeMatch:       50,
		AnalisisBrechas:       []string{"Error generating AI analysis"},
		AjusteCultural:        "N/A",
		PrediccionPerformance: "N/A",
		GuiaEntrevista:        []string{},
	}
}

type SubmitResponse struct {
	Scores   ScoreSet `json:"scores"`
	AiReport AiReport `json:"ai_report"`
}
