package db

import (
	dbmodels "recruit-track-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateProfile{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CandidateProfile")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateProject{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CandidateProject")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateAchievement{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CandidateAchievement")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.ResumeUpload{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ResumeUpload")
	}
	if err := DB.AutoMigrate(&dbmodels.Feedback{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Feedback")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.Query{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Query")
	}
	if err := DB.AutoMigrate(&dbmodels.QueryResponse{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры QueryResponse")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
