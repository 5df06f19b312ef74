package tier

import (
	"career-coach-backend/models"
	careerapimodels "career-coach-backend/models/api/career"
)

// Тарифное усечение — маркетинговый приём, а не граница безопасности:
// скрываются только тексты рекомендаций и хвосты списков, числовые
// баллы остаются доступными для отрисовки шкал.
const (
	maxFreeMissingKeywords = 2
	maxFreeRedFlags        = 1

	lockedSectionPlaceholder = "Análisis detallado disponible en el plan Pro."
	lockedPlanPlaceholder    = "Desbloquea tu plan de mejora personalizado con Pro."
)

// Redact приводит отчёт к виду, соответствующему тарифу.
// Для pro — тождественное преобразование, для free — усечение.
// Повторное применение не меняет результат.
func Redact(report careerapimodels.AnalysisReport, userTier models.Tier) careerapimodels.RedactedReport {
	report.EnsureShape()
	if userTier.IsPro() {
		return careerapimodels.RedactedReport{
			AnalysisReport: report,
			Locked:         false,
		}
	}

	// score, matchLevel, summary и breakdown остаются как есть

	if report.HardSkillsAnalysis.TotalHidden == 0 {
		report.HardSkillsAnalysis.TotalHidden = len(report.HardSkillsAnalysis.MissingKeywords)
	}
	if len(report.HardSkillsAnalysis.MissingKeywords) > maxFreeMissingKeywords {
		report.HardSkillsAnalysis.MissingKeywords = report.HardSkillsAnalysis.MissingKeywords[:maxFreeMissingKeywords]
	}

	report.ExperienceAnalysis = careerapimodels.SectionAnalysis{
		Feedback: lockedSectionPlaceholder,
		Locked:   true,
	}
	report.SoftSkillsAnalysis = careerapimodels.SectionAnalysis{
		Feedback: lockedSectionPlaceholder,
		Locked:   true,
	}
	report.FormattingAnalysis = careerapimodels.FormattingAnalysis{
		Issues: []string{lockedSectionPlaceholder},
		Locked: true,
	}

	if len(report.RedFlags) > maxFreeRedFlags {
		report.RedFlags = report.RedFlags[:maxFreeRedFlags]
	}

	report.ImprovementPlan = []string{lockedPlanPlaceholder}

	return careerapimodels.RedactedReport{
		AnalysisReport: report,
		Locked:         true,
	}
}
