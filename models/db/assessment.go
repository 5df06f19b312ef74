package dbmodels

import "career-coach-backend/models"

type Assessment struct {
	BaseModel
	UserID     string                `gorm:"type:varchar(36);index" comment:"Идентификатор пользователя"`
	Kind       models.AssessmentKind `gorm:"type:varchar(255)" comment:"Тип оценки"`
	Tier       models.Tier           `gorm:"type:varchar(16)" comment:"Тариф на момент запроса"`
	Score      int                   `comment:"Итоговый балл"`
	MatchLevel string                `gorm:"type:varchar(64)" comment:"Уровень соответствия"`
	ReportJSON string                `gorm:"type:text" comment:"Полный отчёт в JSON"`
}
