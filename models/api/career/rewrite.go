package careerapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type RewriteCvRequest struct {
	CvText string `json:"cv_text"` // Текст резюме (если файл не передан)
	UserID string `json:"user_id"` // Идентификатор пользователя (опционально)
}

func (r RewriteCvRequest) Validate() error {
	if len(strings.TrimSpace(r.CvText)) == 0 {
		return errors.New("текст резюме не должен быть пустым")
	}
	return nil
}

// RewriteResult — контракт ответа переписывания резюме по методу STAR
type RewriteResult struct {
	Improvements  []RewriteImprovement `json:"improvements"`
	GeneralAdvice string               `json:"general_advice"`
}

type RewriteImprovement struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
}

func FallbackRewriteResult() RewriteResult {
	return RewriteResult{
		Improvements:  []RewriteImprovement{},
		GeneralAdvice: "Rewrite failed due to technical issues.",
	}
}
