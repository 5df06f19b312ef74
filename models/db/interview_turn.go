package dbmodels

type InterviewTurn struct {
	BaseModel
	SessionID string `gorm:"type:varchar(36);index" comment:"Идентификатор сессии интервью"`
	Role      string `gorm:"type:varchar(16)" comment:"Роль: user/assistant"`
	Content   string `gorm:"type:text" comment:"Текст реплики"`
}
