package interviewhandler

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"career-coach-backend/config"
	"career-coach-backend/db"
	airouter "career-coach-backend/lib/ai/router"
	historystore "career-coach-backend/lib/interview/history-store"
	"career-coach-backend/lib/prompts"
	"career-coach-backend/models"
	interviewapimodels "career-coach-backend/models/api/interview"
	dbmodels "career-coach-backend/models/db"
)

// фиксированная реплика на случай недоступности провайдера,
// интервьюер не выходит из роли
const interviewerBusyLine = "Interviewer is reviewing notes... (Error)"

type Provider interface {
	Start(ctx context.Context, req interviewapimodels.StartRequest) (interviewapimodels.ChatResponse, error)
	Chat(ctx context.Context, req interviewapimodels.ChatRequest) (interviewapimodels.ChatResponse, error)
	Speak(ctx context.Context, req interviewapimodels.ChatRequest) (interviewapimodels.ChatResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		airouter.Instance,
		historystore.NewInstance(db.DB),
		models.InterviewMode(config.Conf.AI.InterviewMode),
	)
}

func NewInstance(router airouter.Provider, history historystore.Provider, mode models.InterviewMode) Provider {
	return &impl{
		router:  router,
		history: history,
		mode:    mode,
	}
}

type impl struct {
	router  airouter.Provider
	history historystore.Provider
	mode    models.InterviewMode
}

// Start открывает сессию интервью и возвращает первый вопрос
func (i *impl) Start(ctx context.Context, req interviewapimodels.StartRequest) (interviewapimodels.ChatResponse, error) {
	sessionID := uuid.NewString()
	message := i.nextTurn(ctx, req.CvText, req.JobDescription, nil)
	i.saveTurn(sessionID, "assistant", message)
	return interviewapimodels.ChatResponse{
		SessionID: sessionID,
		Message:   message,
	}, nil
}

// Chat возвращает следующую реплику интервьюера по истории диалога
func (i *impl) Chat(ctx context.Context, req interviewapimodels.ChatRequest) (interviewapimodels.ChatResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	history := req.Messages
	if len(history) == 0 && req.SessionID != "" {
		history = i.loadHistory(req.SessionID)
	}
	message := i.nextTurn(ctx, req.CvText, req.JobDescription, history)

	if last := lastByRole(req.Messages, "user"); last != "" {
		i.saveTurn(sessionID, "user", last)
	}
	i.saveTurn(sessionID, "assistant", message)

	return interviewapimodels.ChatResponse{
		SessionID: sessionID,
		Message:   message,
	}, nil
}

// Speak — то же, что Chat, плюс краткая оценка последнего ответа кандидата
func (i *impl) Speak(ctx context.Context, req interviewapimodels.ChatRequest) (interviewapimodels.ChatResponse, error) {
	resp, err := i.Chat(ctx, req)
	if err != nil {
		return resp, err
	}

	question := lastByRole(req.Messages, "assistant")
	answer := lastByRole(req.Messages, "user")
	if answer == "" {
		return resp, nil
	}

	feedbackResp, err := i.router.Call(ctx, airouter.CallRequest{
		Promt:       prompts.BuildInterviewFeedback(question, answer),
		Complexity:  models.ComplexityMedium,
		RequestType: models.AssessmentInterviewTurn,
	})
	if err != nil {
		// оценка — необязательное дополнение, её сбой не портит ход интервью
		log.WithError(err).Warn("ошибка получения оценки ответа кандидата")
		return resp, nil
	}
	resp.Feedback = feedbackResp.RawText
	return resp, nil
}

func (i *impl) nextTurn(ctx context.Context, cvText, jobDescription string, history []interviewapimodels.ChatMessage) string {
	resp, err := i.router.Call(ctx, airouter.CallRequest{
		Promt:       prompts.BuildInterviewTurn(cvText, jobDescription, i.mode, history),
		Complexity:  models.ComplexityComplex,
		RequestType: models.AssessmentInterviewTurn,
	})
	if err != nil {
		log.WithError(err).Error("ошибка получения реплики интервьюера через ИИ")
		return interviewerBusyLine
	}
	return resp.RawText
}

// loadHistory восстанавливает историю диалога по сохранённым репликам сессии
func (i *impl) loadHistory(sessionID string) []interviewapimodels.ChatMessage {
	if i.history == nil {
		return nil
	}
	turns, err := i.history.GetBySession(sessionID)
	if err != nil {
		log.
			WithField("session_id", sessionID).
			WithError(err).
			Error("ошибка загрузки истории интервью")
		return nil
	}
	messages := make([]interviewapimodels.ChatMessage, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, interviewapimodels.ChatMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	return messages
}

func (i *impl) saveTurn(sessionID, role, content string) {
	if i.history == nil || content == "" {
		return
	}
	_, err := i.history.Save(dbmodels.InterviewTurn{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	})
	if err != nil {
		log.
			WithField("session_id", sessionID).
			WithError(err).
			Error("ошибка сохранения реплики интервью")
	}
}

func lastByRole(messages []interviewapimodels.ChatMessage, role string) string {
	for idx := len(messages) - 1; idx >= 0; idx-- {
		if messages[idx].Role == role {
			return messages[idx].Content
		}
	}
	return ""
}
