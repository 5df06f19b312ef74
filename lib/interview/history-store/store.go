package historystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "career-coach-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.InterviewTurn) (string, error)
	GetBySession(sessionID string) ([]dbmodels.InterviewTurn, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.InterviewTurn) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetBySession(sessionID string) (list []dbmodels.InterviewTurn, err error) {
	err = i.db.
		Model(&dbmodels.InterviewTurn{}).
		Where("session_id = ?", sessionID).
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
