package interviewhandler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	airouter "career-coach-backend/lib/ai/router"
	"career-coach-backend/models"
	aiapimodels "career-coach-backend/models/api/ai"
	interviewapimodels "career-coach-backend/models/api/interview"
	dbmodels "career-coach-backend/models/db"
)

type fakeRouter struct {
	answers []string
	err     error
	calls   []airouter.CallRequest
}

func (f *fakeRouter) Route(complexity models.Complexity, override models.AiProviderName) airouter.RouteConfig {
	return airouter.RouteConfig{}
}

func (f *fakeRouter) Call(ctx context.Context, req airouter.CallRequest) (aiapimodels.ModelResponse, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return aiapimodels.ModelResponse{}, f.err
	}
	answer := "ok"
	if len(f.answers) > 0 {
		answer = f.answers[0]
		f.answers = f.answers[1:]
	}
	return aiapimodels.ModelResponse{RawText: answer, Provider: models.AiProviderOllama}, nil
}

type fakeHistory struct {
	turns []dbmodels.InterviewTurn
	err   error
}

func (f *fakeHistory) Save(rec dbmodels.InterviewTurn) (string, error) {
	f.turns = append(f.turns, rec)
	return "id", nil
}

func (f *fakeHistory) GetBySession(sessionID string) ([]dbmodels.InterviewTurn, error) {
	if f.err != nil {
		return nil, f.err
	}
	var list []dbmodels.InterviewTurn
	for _, turn := range f.turns {
		if turn.SessionID == sessionID {
			list = append(list, turn)
		}
	}
	return list, nil
}

func TestInterviewHandler(t *testing.T) {
	t.Run(`Start first question check`, func(t *testing.T) {
		router := &fakeRouter{answers: []string{"Tell me about yourself."}}
		handler := NewInstance(router, nil, models.InterviewModeHardcore)

		resp, err := handler.Start(context.TODO(), interviewapimodels.StartRequest{
			CvText:         "golang developer",
			JobDescription: "backend engineer",
		})
		require.Nil(t, err)
		require.NotEmpty(t, resp.SessionID)
		require.Equal(t, "Tell me about yourself.", resp.Message)
		require.Empty(t, resp.Feedback)
		require.Len(t, router.calls, 1)
		require.Equal(t, models.ComplexityComplex, router.calls[0].Complexity)
	})

	t.Run(`Start provider failure fallback check`, func(t *testing.T) {
		router := &fakeRouter{err: &airouter.ProviderError{
			Provider: models.AiProviderYandexGPT,
			Cause:    errors.New("timeout"),
		}}
		handler := NewInstance(router, nil, models.InterviewModeHardcore)

		resp, err := handler.Start(context.TODO(), interviewapimodels.StartRequest{
			CvText:         "cv",
			JobDescription: "jd",
		})
		require.Nil(t, err)
		require.Equal(t, "Interviewer is reviewing notes... (Error)", resp.Message)
	})

	t.Run(`Chat keeps session id check`, func(t *testing.T) {
		router := &fakeRouter{answers: []string{"Next question."}}
		handler := NewInstance(router, nil, models.InterviewModeCoach)

		resp, err := handler.Chat(context.TODO(), interviewapimodels.ChatRequest{
			SessionID:      "session-1",
			CvText:         "cv",
			JobDescription: "jd",
			Messages: []interviewapimodels.ChatMessage{
				{Role: "assistant", Content: "Tell me about yourself."},
				{Role: "user", Content: "I build backends."},
			},
		})
		require.Nil(t, err)
		require.Equal(t, "session-1", resp.SessionID)
		require.Equal(t, "Next question.", resp.Message)
	})

	t.Run(`Chat rebuilds history by session id check`, func(t *testing.T) {
		router := &fakeRouter{answers: []string{"Next question."}}
		history := &fakeHistory{turns: []dbmodels.InterviewTurn{
			{SessionID: "session-4", Role: "assistant", Content: "Tell me about yourself."},
			{SessionID: "session-4", Role: "user", Content: "I build backends."},
			{SessionID: "other", Role: "assistant", Content: "чужая сессия"},
		}}
		handler := NewInstance(router, history, models.InterviewModeHardcore)

		resp, err := handler.Chat(context.TODO(), interviewapimodels.ChatRequest{
			SessionID:      "session-4",
			CvText:         "cv",
			JobDescription: "jd",
		})
		require.Nil(t, err)
		require.Equal(t, "session-4", resp.SessionID)
		require.Equal(t, "Next question.", resp.Message)
		require.Len(t, router.calls, 1)
		require.Contains(t, router.calls[0].Promt.UserPrompt, "Interviewer: Tell me about yourself.")
		require.Contains(t, router.calls[0].Promt.UserPrompt, "Candidate: I build backends.")
		require.NotContains(t, router.calls[0].Promt.UserPrompt, "чужая сессия")
	})

	t.Run(`Chat history load failure still answers check`, func(t *testing.T) {
		router := &fakeRouter{answers: []string{"Begin."}}
		history := &fakeHistory{err: errors.New("db down")}
		handler := NewInstance(router, history, models.InterviewModeHardcore)

		resp, err := handler.Chat(context.TODO(), interviewapimodels.ChatRequest{
			SessionID:      "session-5",
			CvText:         "cv",
			JobDescription: "jd",
		})
		require.Nil(t, err)
		require.Equal(t, "Begin.", resp.Message)
	})

	t.Run(`Speak adds feedback check`, func(t *testing.T) {
		router := &fakeRouter{answers: []string{"Next question.", "Solid answer, add metrics."}}
		handler := NewInstance(router, nil, models.InterviewModeHardcore)

		resp, err := handler.Speak(context.TODO(), interviewapimodels.ChatRequest{
			SessionID:      "session-2",
			CvText:         "cv",
			JobDescription: "jd",
			Messages: []interviewapimodels.ChatMessage{
				{Role: "assistant", Content: "Why should we hire you?"},
				{Role: "user", Content: "I ship fast."},
			},
		})
		require.Nil(t, err)
		require.Equal(t, "Next question.", resp.Message)
		require.Equal(t, "Solid answer, add metrics.", resp.Feedback)
		require.Len(t, router.calls, 2)
		require.Equal(t, models.ComplexityComplex, router.calls[0].Complexity)
		require.Equal(t, models.ComplexityMedium, router.calls[1].Complexity)
	})

	t.Run(`Speak without user answer skips feedback check`, func(t *testing.T) {
		router := &fakeRouter{answers: []string{"First question."}}
		handler := NewInstance(router, nil, models.InterviewModeHardcore)

		resp, err := handler.Speak(context.TODO(), interviewapimodels.ChatRequest{
			SessionID:      "session-3",
			CvText:         "cv",
			JobDescription: "jd",
			Messages: []interviewapimodels.ChatMessage{
				{Role: "assistant", Content: "Why should we hire you?"},
			},
		})
		require.Nil(t, err)
		require.Empty(t, resp.Feedback)
		require.Len(t, router.calls, 1)
	})
}
