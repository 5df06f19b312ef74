package careerapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

const minCvTextLen = 50

type AnalyzeCvRequest struct {
	CvText         string `json:"cv_text"`         // Текст резюме (если файл не передан)
	CvFileName     string `json:"cv_file_name"`    // Имя ранее загруженного файла резюме
	JobDescription string `json:"job_description"` // Текст вакансии
	UserID         string `json:"user_id"`         // Идентификатор пользователя (опционально)
}

func (r AnalyzeCvRequest) Validate() error {
	if len(strings.TrimSpace(r.CvText)) < minCvTextLen {
		return errors.New("текст резюме слишком короткий")
	}
	if len(strings.TrimSpace(r.JobDescription)) == 0 {
		return errors.New("описание вакансии не должно быть пустым")
	}
	return nil
}

// AnalysisReport — контракт отчёта оценки резюме.
// Имена json-полей фиксированы, их читает веб-клиент.
type AnalysisReport struct {
	Score                int                   `json:"score"`
	MatchLevel           string                `json:"matchLevel"`
	Summary              string                `json:"summary"`
	Breakdown            Breakdown             `json:"breakdown"`
	HardSkillsAnalysis   HardSkillsAnalysis    `json:"hardSkillsAnalysis"`
	ExperienceAnalysis   SectionAnalysis       `json:"experienceAnalysis"`
	SoftSkillsAnalysis   SectionAnalysis       `json:"softSkillsAnalysis"`
	FormattingAnalysis   FormattingAnalysis    `json:"formattingAnalysis"`
	RedFlags             []string              `json:"redFlags"`
	ImprovementPlan      []string              `json:"improvementPlan"`
	KillerQuestionsCheck *KillerQuestionsCheck `json:"killerQuestionsCheck,omitempty"`
}

type Breakdown struct {
	HardSkills int `json:"hardSkills"`
	Experience int `json:"experience"`
	Languages  int `json:"languages"`
	Education  int `json:"education"`
	SoftSkills int `json:"softSkills"`
	Format     int `json:"format"`
}

type HardSkillsAnalysis struct {
	MissingKeywords []string `json:"missingKeywords"`
	MatchedKeywords []string `json:"matchedKeywords"`
	TotalHidden     int      `json:"totalHidden,omitempty"` // истинная длина списка до усечения
}

type SectionAnalysis struct {
	Feedback string `json:"feedback"`
	Locked   bool   `json:"locked,omitempty"`
}

type FormattingAnalysis struct {
	Issues []string `json:"issues"`
	Locked bool     `json:"locked,omitempty"`
}

type KillerQuestionsCheck struct {
	Passed bool   `json:"passed"`
	Reason string `json:"reason"`
}

// RedactedReport — отчёт после тарифного усечения.
// Структурно совпадает с AnalysisReport, дополнен признаком locked.
type RedactedReport struct {
	AnalysisReport
	Locked bool `json:"locked"`
}

// EnsureShape — заменяет nil-срезы пустыми, чтобы клиент всегда получал
// структурно валидный объект без null-проверок
func (r *AnalysisReport) EnsureShape() {
	if r.HardSkillsAnalysis.MissingKeywords == nil {
		r.HardSkillsAnalysis.MissingKeywords = []string{}
	}
	if r.HardSkillsAnalysis.MatchedKeywords == nil {
		r.HardSkillsAnalysis.MatchedKeywords = []string{}
	}
	if r.FormattingAnalysis.Issues == nil {
		r.FormattingAnalysis.Issues = []string{}
	}
	if r.RedFlags == nil {
		r.RedFlags = []string{}
	}
	if r.ImprovementPlan == nil {
		r.ImprovementPlan = []string{}
	}
}

// FallbackReport — фиксированный отчёт на случай сбоя провайдера или
// некорректного ответа модели
func FallbackReport() AnalysisReport {
	return AnalysisReport{
		Score:      0,
		MatchLevel: "Error",
		Summary:    "Analysis failed due to technical issues.",
		HardSkillsAnalysis: HardSkillsAnalysis{
			MissingKeywords: []string{},
			MatchedKeywords: []string{},
		},
		FormattingAnalysis: FormattingAnalysis{
			Issues: []string{},
		},
		RedFlags:        []string{},
		ImprovementPlan: []string{"Retry analysis"},
	}
}
