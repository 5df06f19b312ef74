package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "career-coach-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.AiLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AiLog")
	}
	if err := DB.AutoMigrate(&dbmodels.Assessment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Assessment")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewTurn{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewTurn")
	}
	if err := DB.AutoMigrate(&dbmodels.UserTariff{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры UserTariff")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
