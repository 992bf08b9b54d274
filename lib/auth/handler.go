package authhandler

import (
	"fmt"
	"recruit-track-backend/db"
	usersstore "recruit-track-backend/lib/users/store"
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	authapimodels "recruit-track-backend/models/api/auth"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrDuplicateEmail     = errors.New("пользователь с такой почтой уже зарегистрирован")
	ErrAdminAlreadyExists = errors.New("администратор уже зарегистрирован")
	ErrInvalidCredentials = errors.New("неверная почта или пароль")
)

type Provider interface {
	SignUp(req authapimodels.SignUpRequest) (response authapimodels.SignUpResponse, err error)
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	GetUser(userID string) (view authapimodels.UserView, err error)
	ListByRole(role models.UserRole) (list []authapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) SignUp(req authapimodels.SignUpRequest) (authapimodels.SignUpResponse, error) {
	logger := log.WithField("email", req.Email)
	exist, err := i.store.ExistByEmail(req.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки почты")
		return authapimodels.SignUpResponse{}, err
	}
	if exist {
		return authapimodels.SignUpResponse{}, ErrDuplicateEmail
	}
	// в системе может быть только один администратор
	if req.Role.IsAdmin() {
		adminExist, err := i.store.ExistByRole(models.UserRoleAdmin)
		if err != nil {
			logger.WithError(err).Error("ошибка проверки наличия администратора")
			return authapimodels.SignUpResponse{}, err
		}
		if adminExist {
			return authapimodels.SignUpResponse{}, ErrAdminAlreadyExists
		}
	}
	hash, err := authutils.HashPassword(req.Password)
	if err != nil {
		logger.WithError(err).Error("ошибка хэширования пароля")
		return authapimodels.SignUpResponse{}, err
	}
	rec := dbUserFromSignUp(req, hash)
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания пользователя")
		return authapimodels.SignUpResponse{}, err
	}
	return authapimodels.SignUpResponse{
		UserID: id,
		Role:   req.Role,
	}, nil
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	if !authutils.CheckPassword(user.Password, password) {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	name := fmt.Sprintf("%s %s", user.FirstName, user.LastName)
	token, err := authutils.GetToken(user.ID, name, user.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	refresh, err := authutils.GetRefreshToken(user.ID, name)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации refresh-токена")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления даты последнего входа")
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refresh,
		UserID:       user.ID,
		Role:         user.Role,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
	}, nil
}

func (i impl) GetUser(userID string) (authapimodels.UserView, error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.UserView{}, err
	}
	if user == nil {
		return authapimodels.UserView{}, errors.New("пользователь не найден")
	}
	return userView(*user), nil
}

func (i impl) ListByRole(role models.UserRole) ([]authapimodels.UserView, error) {
	list, err := i.store.ListByRole(role)
	if err != nil {
		return nil, err
	}
	result := make([]authapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, userView(rec))
	}
	return result, nil
}
