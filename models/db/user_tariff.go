package dbmodels

import (
	"time"

	"career-coach-backend/models"
)

type UserTariff struct {
	BaseModel
	UserID    string      `gorm:"type:varchar(36);uniqueIndex" comment:"Идентификатор пользователя"`
	Tier      models.Tier `gorm:"type:varchar(16)" comment:"Тариф"`
	ExpiresAt time.Time   `comment:"Дата окончания тарифа"`
}

func (t UserTariff) IsActive(now time.Time) bool {
	return t.ExpiresAt.After(now)
}
