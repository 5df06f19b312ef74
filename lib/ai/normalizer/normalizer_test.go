package normalizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run(`fenced json check`, func(t *testing.T) {
		report, err := Normalize("```json\n{\"score\":85,\"matchLevel\":\"Aceptado\"}\n```")
		require.Nil(t, err)
		require.Equal(t, 85, report.Score)
		require.Equal(t, "Aceptado", report.MatchLevel)
		// отсутствующие поля приводятся к пустым значениям, не к null
		require.NotNil(t, report.RedFlags)
		require.NotNil(t, report.ImprovementPlan)
		require.NotNil(t, report.HardSkillsAnalysis.MissingKeywords)
	})

	t.Run(`full report check`, func(t *testing.T) {
		raw := `{"score":70,"matchLevel":"Medium","summary":"ok",
			"breakdown":{"hardSkills":60,"experience":70,"languages":80,"education":90,"softSkills":50,"format":40},
			"hardSkillsAnalysis":{"missingKeywords":["go","sql"],"matchedKeywords":["docker"]},
			"experienceAnalysis":{"feedback":"solid"},
			"redFlags":["gap"],
			"improvementPlan":["learn sql"]}`
		report, err := Normalize(raw)
		require.Nil(t, err)
		require.Equal(t, 70, report.Score)
		require.Equal(t, 60, report.Breakdown.HardSkills)
		require.Equal(t, []string{"go", "sql"}, report.HardSkillsAnalysis.MissingKeywords)
		require.Equal(t, "solid", report.ExperienceAnalysis.Feedback)
	})

	t.Run(`never fails check`, func(t *testing.T) {
		for _, raw := range []string{
			"",
			"not json at all",
			"```json\n```",
			"{\"foo\":1}",
			"{\"score\":10}",
			"{\"matchLevel\":\"Low\"}",
			"{broken",
			"null",
		} {
			report, err := Normalize(raw)
			require.NotNil(t, err, raw)
			require.Equal(t, 0, report.Score)
			require.Equal(t, "Error", report.MatchLevel)
			require.Equal(t, "Analysis failed due to technical issues.", report.Summary)
			require.Empty(t, report.RedFlags)
			require.Equal(t, []string{"Retry analysis"}, report.ImprovementPlan)
		}
	})

	t.Run(`StripFences check`, func(t *testing.T) {
		require.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
		require.Equal(t, `{"a":1}`, StripFences(`{"a":1}`))
	})

	t.Run(`DecodeContract check`, func(t *testing.T) {
		var out struct {
			GeneralAdvice string `json:"general_advice"`
		}
		err := DecodeContract("```json\n{\"general_advice\":\"tighten bullets\"}\n```", &out)
		require.Nil(t, err)
		require.Equal(t, "tighten bullets", out.GeneralAdvice)

		err = DecodeContract("nope", &out)
		require.NotNil(t, err)
	})
}
