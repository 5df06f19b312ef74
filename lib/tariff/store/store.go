package tariffstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "career-coach-backend/models/db"
)

type Provider interface {
	GetByUserID(userID string) (*dbmodels.UserTariff, error)
	Upsert(rec dbmodels.UserTariff) (id string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByUserID(userID string) (*dbmodels.UserTariff, error) {
	rec := dbmodels.UserTariff{}
	err := i.db.
		Where("user_id = ?", userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Upsert(rec dbmodels.UserTariff) (id string, err error) {
	existed, err := i.GetByUserID(rec.UserID)
	if err != nil {
		return "", err
	}
	if existed != nil {
		rec.ID = existed.ID
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
