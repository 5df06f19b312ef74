package careerhandler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	airouter "career-coach-backend/lib/ai/router"
	"career-coach-backend/models"
	aiapimodels "career-coach-backend/models/api/ai"
)

type fakeRouter struct {
	answer string
	err    error
}

func (f *fakeRouter) Route(complexity models.Complexity, override models.AiProviderName) airouter.RouteConfig {
	return airouter.RouteConfig{}
}

func (f *fakeRouter) Call(ctx context.Context, req airouter.CallRequest) (aiapimodels.ModelResponse, error) {
	if f.err != nil {
		return aiapimodels.ModelResponse{}, f.err
	}
	return aiapimodels.ModelResponse{RawText: f.answer, Provider: models.AiProviderOllama}, nil
}

func TestCareerHandler(t *testing.T) {
	t.Run(`AnalyzeCV provider failure fallback check`, func(t *testing.T) {
		router := &fakeRouter{err: &airouter.ProviderError{
			Provider: models.AiProviderYandexGPT,
			Cause:    errors.New("timeout"),
		}}
		handler := NewInstance(router, nil, models.CvRubricStrictATS)

		report, err := handler.AnalyzeCV(context.TODO(), "u1", "cv", "jd", models.TierPro)
		require.Nil(t, err)
		require.Equal(t, 0, report.Score)
		require.Equal(t, "Error", report.MatchLevel)
		require.Equal(t, "Analysis failed due to technical issues.", report.Summary)
		require.Equal(t, []string{"Retry analysis"}, report.ImprovementPlan)
	})

	t.Run(`AnalyzeCV success check`, func(t *testing.T) {
		router := &fakeRouter{answer: "```json\n{\"score\":85,\"matchLevel\":\"High\",\"summary\":\"ok\"}\n```"}
		handler := NewInstance(router, nil, models.CvRubricStrictATS)

		report, err := handler.AnalyzeCV(context.TODO(), "u1", "cv", "jd", models.TierPro)
		require.Nil(t, err)
		require.Equal(t, 85, report.Score)
		require.Equal(t, "High", report.MatchLevel)
		require.Equal(t, false, report.Locked)
	})

	t.Run(`AnalyzeCV free tier redaction check`, func(t *testing.T) {
		router := &fakeRouter{answer: `{"score":70,"matchLevel":"Medium",
			"hardSkillsAnalysis":{"missingKeywords":["a","b","c","d"]}}`}
		handler := NewInstance(router, nil, models.CvRubricStrictATS)

		report, err := handler.AnalyzeCV(context.TODO(), "u1", "cv", "jd", models.TierFree)
		require.Nil(t, err)
		require.Equal(t, true, report.Locked)
		require.Len(t, report.HardSkillsAnalysis.MissingKeywords, 2)
		require.Equal(t, 4, report.HardSkillsAnalysis.TotalHidden)
		require.Equal(t, 70, report.Score)
	})

	t.Run(`AnalyzeCV malformed answer fallback check`, func(t *testing.T) {
		router := &fakeRouter{answer: "I am sorry, I cannot do that."}
		handler := NewInstance(router, nil, models.CvRubricStrictATS)

		report, err := handler.AnalyzeCV(context.TODO(), "u1", "cv", "jd", models.TierPro)
		require.Nil(t, err)
		require.Equal(t, "Error", report.MatchLevel)
	})

	t.Run(`RewriteCV success check`, func(t *testing.T) {
		router := &fakeRouter{answer: `{"improvements":[{"original":"did sales","improved":"Spearheaded regional sales"}],"general_advice":"quantify"}`}
		handler := NewInstance(router, nil, models.CvRubricStrictATS)

		result, err := handler.RewriteCV(context.TODO(), "u1", "cv")
		require.Nil(t, err)
		require.Len(t, result.Improvements, 1)
		require.Equal(t, "quantify", result.GeneralAdvice)
	})

	t.Run(`RewriteCV failure fallback check`, func(t *testing.T) {
		router := &fakeRouter{err: errors.New("boom")}
		handler := NewInstance(router, nil, models.CvRubricStrictATS)

		result, err := handler.RewriteCV(context.TODO(), "u1", "cv")
		require.Nil(t, err)
		require.Empty(t, result.Improvements)
		require.Equal(t, "Rewrite failed due to technical issues.", result.GeneralAdvice)
	})
}
