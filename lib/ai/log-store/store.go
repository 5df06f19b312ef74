package ailogstore

import (
	"time"

	"gorm.io/gorm"

	dbmodels "career-coach-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.AiLog) (string, error)
	DeleteOlderThan(deadline time.Time) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.AiLog) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) DeleteOlderThan(deadline time.Time) (int64, error) {
	tx := i.db.
		Where("created_at < ?", deadline).
		Delete(&dbmodels.AiLog{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
