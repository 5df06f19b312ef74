package psychohandler

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"career-coach-backend/config"
	"career-coach-backend/db"
	"career-coach-backend/lib/ai/normalizer"
	airouter "career-coach-backend/lib/ai/router"
	assessmentstore "career-coach-backend/lib/assessment/store"
	"career-coach-backend/lib/prompts"
	"career-coach-backend/lib/scoring"
	libsmtp "career-coach-backend/lib/smtp"
	"career-coach-backend/models"
	psychoapimodels "career-coach-backend/models/api/psychometric"
	dbmodels "career-coach-backend/models/db"
)

type Provider interface {
	Submit(ctx context.Context, req psychoapimodels.SubmitRequest) (psychoapimodels.SubmitResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		airouter.Instance,
		assessmentstore.NewInstance(db.DB),
		libsmtp.Instance,
		config.Conf.Smtp.User,
	)
}

func NewInstance(router airouter.Provider, store assessmentstore.Provider, mail libsmtp.Provider, mailFrom string) Provider {
	return &impl{
		router:   router,
		store:    store,
		mail:     mail,
		mailFrom: mailFrom,
	}
}

type impl struct {
	router   airouter.Provider
	store    assessmentstore.Provider
	mail     libsmtp.Provider
	mailFrom string
}

// Submit считает детерминированные баллы опросника и дополняет их ИИ-отчётом.
// Баллы возвращаются всегда, сбой ИИ подменяется фиксированным отчётом
func (i *impl) Submit(ctx context.Context, req psychoapimodels.SubmitRequest) (psychoapimodels.SubmitResponse, error) {
	scores := scoring.ComputeScoreSet(req.Answers)
	report := i.buildAiReport(ctx, req, scores)

	resp := psychoapimodels.SubmitResponse{
		Scores:   scores,
		AiReport: report,
	}
	i.saveAssessment(req.UserID, resp)
	i.sendReportMail(req.UserData, resp)
	return resp, nil
}

func (i *impl) buildAiReport(ctx context.Context, req psychoapimodels.SubmitRequest, scores psychoapimodels.ScoreSet) psychoapimodels.AiReport {
	modelResp, err := i.router.Call(ctx, airouter.CallRequest{
		Promt:       prompts.BuildPsychometricReport(req.UserData.CvText, req.UserData.JobDescription, scores),
		Complexity:  models.ComplexityHard,
		RequestType: models.AssessmentPsychometricReport,
		UserID:      req.UserID,
	})
	if err != nil {
		log.WithError(err).Error("ошибка получения психометрического отчёта через ИИ")
		return psychoapimodels.FallbackAiReport()
	}
	var report psychoapimodels.AiReport
	if err = normalizer.DecodeContract(modelResp.RawText, &report); err != nil {
		log.
			WithField("provider", modelResp.Provider).
			WithError(err).
			Error("ответ ИИ не соответствует контракту психометрического отчёта")
		return psychoapimodels.FallbackAiReport()
	}
	if report.AnalisisBrechas == nil {
		report.AnalisisBrechas = []string{}
	}
	if report.GuiaEntrevista == nil {
		report.GuiaEntrevista = []string{}
	}
	return report
}

func (i *impl) saveAssessment(userID string, resp psychoapimodels.SubmitResponse) {
	if i.store == nil {
		return
	}
	reportJSON, err := json.Marshal(resp)
	if err != nil {
		log.WithError(err).Error("ошибка сериализации психометрического отчёта")
		return
	}
	_, err = i.store.Save(dbmodels.Assessment{
		UserID:     userID,
		Kind:       models.AssessmentPsychometricReport,
		Tier:       models.TierFree,
		Score:      resp.AiReport.PorcentajeMatch,
		MatchLevel: resp.AiReport.AjusteCultural,
		ReportJSON: string(reportJSON),
	})
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка сохранения психометрической оценки")
	}
}

// отправка отчёта на почту кандидата, сбой не влияет на ответ API
func (i *impl) sendReportMail(userData psychoapimodels.UserData, resp psychoapimodels.SubmitResponse) {
	if i.mail == nil || userData.Email == "" {
		return
	}
	message := fmt.Sprintf(
		"Кандидат: %s\nСовпадение с вакансией: %d%%\nСтресс: %d, Тревожность: %d, Депрессия: %d\nВовлечённость (среднее): %.2f",
		userData.Name,
		resp.AiReport.PorcentajeMatch,
		resp.Scores.Dass.Stress,
		resp.Scores.Dass.Anxiety,
		resp.Scores.Dass.Depression,
		resp.Scores.Flow.Average,
	)
	if err := i.mail.SendEMail(i.mailFrom, userData.Email, message, "Психометрический отчёт"); err != nil {
		log.WithError(err).Error("ошибка отправки психометрического отчёта на почту")
	}
}
