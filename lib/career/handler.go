package careerhandler

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"career-coach-backend/config"
	"career-coach-backend/db"
	"career-coach-backend/lib/ai/normalizer"
	airouter "career-coach-backend/lib/ai/router"
	assessmentstore "career-coach-backend/lib/assessment/store"
	"career-coach-backend/lib/prompts"
	"career-coach-backend/lib/tier"
	"career-coach-backend/models"
	careerapimodels "career-coach-backend/models/api/career"
	dbmodels "career-coach-backend/models/db"
)

type Provider interface {
	AnalyzeCV(ctx context.Context, userID, cvText, jobDescription string, userTier models.Tier) (careerapimodels.RedactedReport, error)
	RewriteCV(ctx context.Context, userID, cvText string) (careerapimodels.RewriteResult, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		airouter.Instance,
		assessmentstore.NewInstance(db.DB),
		models.CvRubric(config.Conf.AI.CvRubric),
	)
}

func NewInstance(router airouter.Provider, store assessmentstore.Provider, rubric models.CvRubric) Provider {
	return &impl{
		router: router,
		store:  store,
		rubric: rubric,
	}
}

type impl struct {
	router airouter.Provider
	store  assessmentstore.Provider
	rubric models.CvRubric
}

// AnalyzeCV — оценка резюме против вакансии.
// Сбой провайдера и некорректный ответ модели не поднимаются наверх:
// клиент в любом случае получает структурно валидный отчёт.
func (i *impl) AnalyzeCV(ctx context.Context, userID, cvText, jobDescription string, userTier models.Tier) (careerapimodels.RedactedReport, error) {
	logger := log.
		WithField("user_id", userID).
		WithField("rubric", i.rubric)

	promt := prompts.BuildCvAudit(cvText, jobDescription, i.rubric)
	report := careerapimodels.FallbackReport()

	resp, err := i.router.Call(ctx, airouter.CallRequest{
		Promt:       promt,
		Complexity:  models.ComplexityMedium,
		RequestType: models.AssessmentCvAudit,
		UserID:      userID,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка оценки резюме через ИИ, возвращается fallback-отчёт")
	} else {
		report, err = normalizer.Normalize(resp.RawText)
		if err != nil {
			logger.
				WithField("provider", resp.Provider).
				WithError(err).
				Warn("ответ модели не соответствует контракту отчёта, возвращается fallback-отчёт")
		}
	}

	i.saveAssessment(userID, models.AssessmentCvAudit, userTier, report.Score, report.MatchLevel, report)

	return tier.Redact(report, userTier), nil
}

// RewriteCV — переписывание слабых пунктов резюме по методу STAR
func (i *impl) RewriteCV(ctx context.Context, userID, cvText string) (careerapimodels.RewriteResult, error) {
	logger := log.WithField("user_id", userID)

	resp, err := i.router.Call(ctx, airouter.CallRequest{
		Promt:       prompts.BuildCvRewrite(cvText),
		Complexity:  models.ComplexityMedium,
		RequestType: models.AssessmentCvRewrite,
		UserID:      userID,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка переписывания резюме через ИИ, возвращается fallback-результат")
		return careerapimodels.FallbackRewriteResult(), nil
	}

	var result careerapimodels.RewriteResult
	if err = normalizer.DecodeContract(resp.RawText, &result); err != nil {
		logger.
			WithField("provider", resp.Provider).
			WithError(err).
			Warn("ответ модели не соответствует контракту переписывания, возвращается fallback-результат")
		return careerapimodels.FallbackRewriteResult(), nil
	}
	if result.Improvements == nil {
		result.Improvements = []careerapimodels.RewriteImprovement{}
	}

	i.saveAssessment(userID, models.AssessmentCvRewrite, "", 0, "", result)

	return result, nil
}

func (i *impl) saveAssessment(userID string, kind models.AssessmentKind, userTier models.Tier, score int, matchLevel string, report any) {
	if i.store == nil {
		return
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		log.WithError(err).Error("ошибка сериализации отчёта для сохранения")
		return
	}
	_, err = i.store.Save(dbmodels.Assessment{
		UserID:     userID,
		Kind:       kind,
		Tier:       userTier,
		Score:      score,
		MatchLevel: matchLevel,
		ReportJSON: string(reportJSON),
	})
	if err != nil {
		log.
			WithField("user_id", userID).
			WithField("kind", kind).
			WithError(err).
			Error("ошибка сохранения результата оценки")
	}
}
