package jobhandler

import (
	"fmt"
	"recruit-track-backend/db"
	applicationstore "recruit-track-backend/lib/application/store"
	jobstore "recruit-track-backend/lib/job/store"
	notificationhandler "recruit-track-backend/lib/notification"
	usersstore "recruit-track-backend/lib/users/store"
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	jobapimodels "recruit-track-backend/models/api/job"
	dbmodels "recruit-track-backend/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrJobNotFound = errors.New("вакансия не найдена")

type Provider interface {
	Create(postedBy string, role models.UserRole, data jobapimodels.JobData) (id string, err error)
	GetByID(id string) (view *jobapimodels.JobView, err error)
	List() (list []jobapimodels.JobView, err error)
	Applications(jobID string) (list []jobapimodels.ApplicationView, err error)
	MyApplications(candidateUserID string) (list []jobapimodels.ApplicationView, err error)
	Close(role models.UserRole, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            jobstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		userStore:        usersstore.NewInstance(db.DB),
		notifier:         notificationhandler.Instance,
	}
}

type impl struct {
	store            jobstore.Provider
	applicationStore applicationstore.Provider
	userStore        usersstore.Provider
	notifier         notificationhandler.Provider
}

func (i impl) Create(postedBy string, role models.UserRole, data jobapimodels.JobData) (string, error) {
	if err := authutils.RequireRole(role, models.UserRoleAdmin); err != nil {
		return "", err
	}
	logger := log.WithField("job_title", data.Title)
	rec := dbmodels.Job{
		Title:              data.Title,
		Role:               data.Role,
		Department:         data.Department,
		Location:           data.Location,
		Description:        data.Description,
		RequiredSkills:     pq.StringArray(data.RequiredSkills),
		ExperienceRequired: data.ExperienceRequired,
		SalaryFrom:         data.SalaryFrom,
		SalaryTo:           data.SalaryTo,
		Status:             models.JobStatusActive,
		PostedBy:           postedBy,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания вакансии")
		return "", err
	}
	// каждый HR получает уведомление о новой вакансии
	hrList, err := i.userStore.ListByRole(models.UserRoleHR)
	if err != nil {
		logger.WithError(err).Error("вакансия создана, но уведомления HR не отправлены")
		return id, errors.Wrap(err, "вакансия создана, но уведомления HR не отправлены")
	}
	for _, hr := range hrList {
		err = i.notifier.Notify(
			hr.ID,
			"Новая вакансия",
			fmt.Sprintf("Опубликована вакансия «%s» (%s)", data.Title, data.Department),
			models.NotificationTypeJobPosted,
			id,
		)
		if err != nil {
			logger.WithError(err).
				WithField("user_id", hr.ID).
				Error("ошибка отправки уведомления о вакансии")
			return id, errors.Wrap(err, "вакансия создана, но уведомления HR не отправлены")
		}
	}
	return id, nil
}

func (i impl) GetByID(id string) (*jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := jobapimodels.JobConvertExt(*rec)
	return &view, nil
}

func (i impl) List() ([]jobapimodels.JobView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.JobConvertExt(rec))
	}
	return result, nil
}

func (i impl) Applications(jobID string) ([]jobapimodels.ApplicationView, error) {
	list, err := i.applicationStore.ListByJob(jobID)
	if err != nil {
		return nil, err
	}
	return convertApplications(list), nil
}

func (i impl) MyApplications(candidateUserID string) ([]jobapimodels.ApplicationView, error) {
	list, err := i.applicationStore.ListByCandidate(candidateUserID)
	if err != nil {
		return nil, err
	}
	return convertApplications(list), nil
}

func convertApplications(list []dbmodels.Application) []jobapimodels.ApplicationView {
	result := make([]jobapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.ApplicationConvert(rec))
	}
	return result
}

func (i impl) Close(role models.UserRole, id string) error {
	if err := authutils.RequireRole(role, models.UserRoleAdmin); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrJobNotFound
	}
	return i.store.Update(id, map[string]interface{}{"status": models.JobStatusClosed})
}
