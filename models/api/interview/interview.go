package interviewapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type ChatMessage struct {
	Role    string `json:"role"`    // user/assistant
	Content string `json:"content"` // текст реплики
}

type StartRequest struct {
	CvText         string `json:"cv_text"`
	JobDescription string `json:"job_description"`
}

func (r StartRequest) Validate() error {
	if len(strings.TrimSpace(r.CvText)) == 0 {
		return errors.New("текст резюме не должен быть пустым")
	}
	if len(strings.TrimSpace(r.JobDescription)) == 0 {
		return errors.New("описание вакансии не должно быть пустым")
	}
	return nil
}

type ChatRequest struct {
	SessionID      string        `json:"session_id"`
	CvText         string        `json:"cv_text"`
	JobDescription string        `json:"job_description"`
	Messages       []ChatMessage `json:"messages"`
}

func (r ChatRequest) Validate() error {
	if len(strings.TrimSpace(r.CvText)) == 0 {
		return errors.New("текст резюме не должен быть пустым")
	}
	if len(strings.TrimSpace(r.JobDescription)) == 0 {
		return errors.New("описание вакансии не должно быть пустым")
	}
	if len(r.Messages) == 0 && len(strings.TrimSpace(r.SessionID)) == 0 {
		return errors.New("нужна история сообщений или идентификатор сессии")
	}
	return nil
}

type ChatResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`            // реплика интервьюера
	Feedback  string `json:"feedback,omitempty"` // краткая оценка последнего ответа кандидата
}
