package db

import (
	"recruit-track-backend/config"
	usersstore "recruit-track-backend/lib/users/store"
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	dbmodels "recruit-track-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addAdmin(usersstore.NewInstance(DB))
}

func addAdmin(userStore usersstore.Provider) {
	if config.Conf.Admin.Email == "" {
		log.Warn("администратор не добавлен, отсутвует настройка ADMIN_EMAIL")
		return
	}
	// в системе может быть только один администратор,
	// смена ADMIN_EMAIL не должна создавать второго
	adminExist, err := userStore.ExistByRole(models.UserRoleAdmin)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if adminExist {
		return
	}
	existedRec, err := userStore.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	rec := dbmodels.User{
		IsActive:    true,
		Role:        models.UserRoleAdmin,
		Password:    hash,
		FirstName:   config.Conf.Admin.FirstName,
		LastName:    config.Conf.Admin.LastName,
		Email:       config.Conf.Admin.Email,
		PhoneNumber: config.Conf.Admin.PhoneNumber,
	}
	_, err = userStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
	}
}
