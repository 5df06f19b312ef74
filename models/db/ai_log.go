package dbmodels

import "career-coach-backend/models"

type AiLog struct {
	BaseModel
	SysPromt   string                `comment:"System промт"`
	UserPromt  string                `comment:"User промт"`
	Answer     string                `comment:"Ответ ИИ"`
	UserID     string                `gorm:"type:varchar(36);index" comment:"Идентификатор пользователя"`
	AiName     models.AiProviderName `gorm:"type:varchar(255)" comment:"Название ИИ"`
	ModelName  string                `gorm:"type:varchar(255)" comment:"Название модели"`
	LatencyMs  int64                 `comment:"Длительность запроса, мс"`
	ReqestType models.AssessmentKind `gorm:"type:varchar(255)" comment:"Тип запроса к ИИ"`
}
