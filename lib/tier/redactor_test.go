package tier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"career-coach-backend/models"
	careerapimodels "career-coach-backend/models/api/career"
)

func sampleReport() careerapimodels.AnalysisReport {
	return careerapimodels.AnalysisReport{
		Score:      74,
		MatchLevel: "Medium",
		Summary:    "Buen perfil con brechas técnicas.",
		Breakdown: careerapimodels.Breakdown{
			HardSkills: 60, Experience: 80, Languages: 70,
			Education: 90, SoftSkills: 65, Format: 50,
		},
		HardSkillsAnalysis: careerapimodels.HardSkillsAnalysis{
			MissingKeywords: []string{"kubernetes", "terraform", "grpc", "kafka", "sql"},
			MatchedKeywords: []string{"go", "docker"},
		},
		ExperienceAnalysis: careerapimodels.SectionAnalysis{Feedback: "Experiencia sólida."},
		SoftSkillsAnalysis: careerapimodels.SectionAnalysis{Feedback: "Buena comunicación."},
		FormattingAnalysis: careerapimodels.FormattingAnalysis{Issues: []string{"Fechas inconsistentes."}},
		RedFlags:           []string{"Hueco de 2 años", "Cambios frecuentes"},
		ImprovementPlan:    []string{"Aprender kubernetes", "Certificación cloud"},
	}
}

func TestRedact(t *testing.T) {
	t.Run(`pro identity check`, func(t *testing.T) {
		report := sampleReport()
		redacted := Redact(report, models.TierPro)
		require.Equal(t, false, redacted.Locked)
		require.Equal(t, report, redacted.AnalysisReport)
	})

	t.Run(`free truncation check`, func(t *testing.T) {
		redacted := Redact(sampleReport(), models.TierFree)
		require.Equal(t, true, redacted.Locked)

		// крючок остаётся нетронутым
		require.Equal(t, 74, redacted.Score)
		require.Equal(t, "Medium", redacted.MatchLevel)
		require.Equal(t, "Buen perfil con brechas técnicas.", redacted.Summary)

		require.LessOrEqual(t, len(redacted.HardSkillsAnalysis.MissingKeywords), 2)
		require.Equal(t, []string{"kubernetes", "terraform"}, redacted.HardSkillsAnalysis.MissingKeywords)
		require.Equal(t, 5, redacted.HardSkillsAnalysis.TotalHidden)

		require.True(t, redacted.ExperienceAnalysis.Locked)
		require.True(t, redacted.SoftSkillsAnalysis.Locked)
		require.True(t, redacted.FormattingAnalysis.Locked)
		require.NotEqual(t, "Experiencia sólida.", redacted.ExperienceAnalysis.Feedback)

		// числовые баллы не скрываются
		require.Equal(t, sampleReport().Breakdown, redacted.Breakdown)

		require.Len(t, redacted.RedFlags, 1)
		require.Equal(t, []string{lockedPlanPlaceholder}, redacted.ImprovementPlan)
	})

	t.Run(`free idempotence check`, func(t *testing.T) {
		once := Redact(sampleReport(), models.TierFree)
		twice := Redact(once.AnalysisReport, models.TierFree)
		require.Equal(t, once, twice)
	})

	t.Run(`free short lists check`, func(t *testing.T) {
		report := sampleReport()
		report.HardSkillsAnalysis.MissingKeywords = []string{"sql"}
		report.RedFlags = nil
		redacted := Redact(report, models.TierFree)
		require.Equal(t, []string{"sql"}, redacted.HardSkillsAnalysis.MissingKeywords)
		require.Equal(t, 1, redacted.HardSkillsAnalysis.TotalHidden)
		require.Empty(t, redacted.RedFlags)
	})

	t.Run(`unknown tier defaults to free check`, func(t *testing.T) {
		redacted := Redact(sampleReport(), models.ParseTier("enterprise"))
		require.True(t, redacted.Locked)
	})
}
