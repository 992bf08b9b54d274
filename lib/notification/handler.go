package notificationhandler

import (
	"recruit-track-backend/config"
	"recruit-track-backend/db"
	notificationstore "recruit-track-backend/lib/notification/store"
	"recruit-track-backend/lib/smtp"
	usersstore "recruit-track-backend/lib/users/store"
	"recruit-track-backend/models"
	notificationapimodels "recruit-track-backend/models/api/notification"
	dbmodels "recruit-track-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Notify(userID, title, message string, nType models.NotificationType, relatedID string) error
	ListForUser(userID string) (list []notificationapimodels.NotificationView, err error)
	UnreadCount(userID string) (count int64, err error)
	MarkAsRead(userID, notificationID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     notificationstore.NewInstance(db.DB),
		userStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store     notificationstore.Provider
	userStore usersstore.Provider
}

func (i impl) Notify(userID, title, message string, nType models.NotificationType, relatedID string) error {
	rec := dbmodels.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      nType,
		RelatedID: relatedID,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		return errors.Wrap(err, "ошибка создания уведомления")
	}
	// письмо отправляется по возможности, ошибка не прерывает операцию
	i.sendEmail(userID, title, message)
	return nil
}

func (i impl) sendEmail(userID, title, message string) {
	if smtp.Instance == nil {
		return
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil || user == nil {
		log.WithField("user_id", userID).Warn("не удалось определить почту получателя уведомления")
		return
	}
	err = smtp.Instance.SendEMail(config.Conf.Smtp.EmailFrom, user.Email, message, title)
	if err != nil {
		log.WithError(err).
			WithField("user_id", userID).
			Error("ошибка отправки почтового уведомления")
	}
}

func (i impl) ListForUser(userID string) ([]notificationapimodels.NotificationView, error) {
	list, err := i.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result, nil
}

func (i impl) UnreadCount(userID string) (int64, error) {
	return i.store.CountUnread(userID)
}

func (i impl) MarkAsRead(userID, notificationID string) error {
	rec, err := i.store.GetByID(notificationID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("уведомление не найдено")
	}
	if rec.UserID != userID {
		return errors.New("операция недоступна")
	}
	return i.store.Update(notificationID, map[string]interface{}{"is_read": true})
}
