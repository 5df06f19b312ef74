package assessmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "career-coach-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Assessment) (string, error)
	GetByID(userID, id string) (*dbmodels.Assessment, error)
	List(userID string, limit int) ([]dbmodels.Assessment, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Assessment) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(userID, id string) (*dbmodels.Assessment, error) {
	rec := dbmodels.Assessment{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) List(userID string, limit int) (list []dbmodels.Assessment, err error) {
	tx := i.db.
		Model(&dbmodels.Assessment{}).
		Order("created_at desc")
	if userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
