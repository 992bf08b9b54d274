package feedbackhandler

import (
	"fmt"
	"recruit-track-backend/db"
	feedbackstore "recruit-track-backend/lib/feedback/store"
	notificationhandler "recruit-track-backend/lib/notification"
	usersstore "recruit-track-backend/lib/users/store"
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	feedbackapimodels "recruit-track-backend/models/api/feedback"
	dbmodels "recruit-track-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrFeedbackNotFound = errors.New("обратная связь не найдена")

type Provider interface {
	Submit(interviewerID string, role models.UserRole, data feedbackapimodels.FeedbackData) (id string, err error)
	Update(role models.UserRole, id string, data feedbackapimodels.UpdateData) error
	Delete(role models.UserRole, id string) error
	GetByID(id string) (view *feedbackapimodels.FeedbackView, err error)
	ListByInterview(interviewID string) (list []feedbackapimodels.FeedbackView, err error)
	ListByCandidate(candidateID string) (list []feedbackapimodels.FeedbackView, err error)
	ListByJob(jobID string) (list []feedbackapimodels.FeedbackView, err error)
	List() (list []feedbackapimodels.FeedbackView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     feedbackstore.NewInstance(db.DB),
		userStore: usersstore.NewInstance(db.DB),
		notifier:  notificationhandler.Instance,
	}
}

type impl struct {
	store     feedbackstore.Provider
	userStore usersstore.Provider
	notifier  notificationhandler.Provider
}

func (i impl) Submit(interviewerID string, role models.UserRole, data feedbackapimodels.FeedbackData) (string, error) {
	if err := authutils.RequireRole(role, models.UserRoleHR, models.UserRoleAdmin); err != nil {
		return "", err
	}
	logger := log.WithField("interview_id", data.InterviewID)
	rec := data.ToModel(interviewerID)
	if err := rec.ValidateRatings(); err != nil {
		return "", err
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения обратной связи")
		return "", err
	}
	admins, err := i.userStore.ListByRole(models.UserRoleAdmin)
	if err != nil {
		return id, errors.Wrap(err, "обратная связь сохранена, но уведомления не отправлены")
	}
	for _, admin := range admins {
		err = i.notifier.Notify(
			admin.ID,
			"Обратная связь по интервью",
			fmt.Sprintf("Интервьюер %s оставил обратную связь, рекомендация: %s",
				data.InterviewerName, data.Recommendation),
			models.NotificationTypeFeedbackSubmitted,
			id,
		)
		if err != nil {
			logger.WithError(err).
				WithField("user_id", admin.ID).
				Error("ошибка отправки уведомления об обратной связи")
			return id, errors.Wrap(err, "обратная связь сохранена, но уведомления не отправлены")
		}
	}
	return id, nil
}

func (i impl) Update(role models.UserRole, id string, data feedbackapimodels.UpdateData) error {
	if err := authutils.RequireRole(role, models.UserRoleHR, models.UserRoleAdmin); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrFeedbackNotFound
	}
	// проверяется итоговое состояние, частичное обновление не должно его ломать
	next := *rec
	applyUpdate(&next, data)
	if err := next.ValidateRatings(); err != nil {
		return err
	}
	return i.store.Update(id, data.UpdateMap())
}

func (i impl) Delete(role models.UserRole, id string) error {
	if err := authutils.RequireRole(role, models.UserRoleHR, models.UserRoleAdmin); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrFeedbackNotFound
	}
	return i.store.Delete(id)
}

func (i impl) GetByID(id string) (*feedbackapimodels.FeedbackView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := feedbackapimodels.FeedbackConvert(*rec)
	return &view, nil
}

func (i impl) ListByInterview(interviewID string) ([]feedbackapimodels.FeedbackView, error) {
	list, err := i.store.ListByInterview(interviewID)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListByCandidate(candidateID string) ([]feedbackapimodels.FeedbackView, error) {
	list, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListByJob(jobID string) ([]feedbackapimodels.FeedbackView, error) {
	list, err := i.store.ListByJob(jobID)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) List() ([]feedbackapimodels.FeedbackView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func applyUpdate(rec *dbmodels.Feedback, data feedbackapimodels.UpdateData) {
	if data.OverallRating != nil {
		rec.OverallRating = *data.OverallRating
	}
	if data.TechnicalSkills != nil {
		rec.TechnicalSkills = *data.TechnicalSkills
	}
	if data.CommunicationSkills != nil {
		rec.CommunicationSkills = *data.CommunicationSkills
	}
	if data.ProblemSolving != nil {
		rec.ProblemSolving = *data.ProblemSolving
	}
	if data.CulturalFit != nil {
		rec.CulturalFit = *data.CulturalFit
	}
	if data.Strengths != nil {
		rec.Strengths = *data.Strengths
	}
	if data.Weaknesses != nil {
		rec.Weaknesses = *data.Weaknesses
	}
	if data.Recommendation != nil {
		rec.Recommendation = *data.Recommendation
	}
	if data.AdditionalComments != nil {
		rec.AdditionalComments = *data.AdditionalComments
	}
}

func convertList(list []dbmodels.Feedback) []feedbackapimodels.FeedbackView {
	result := make([]feedbackapimodels.FeedbackView, 0, len(list))
	for _, rec := range list {
		result = append(result, feedbackapimodels.FeedbackConvert(rec))
	}
	return result
}
