package interviewhandler

import (
	"fmt"
	"recruit-track-backend/db"
	applicationstore "recruit-track-backend/lib/application/store"
	interviewstore "recruit-track-backend/lib/interview/store"
	jobstore "recruit-track-backend/lib/job/store"
	notificationhandler "recruit-track-backend/lib/notification"
	usersstore "recruit-track-backend/lib/users/store"
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	interviewapimodels "recruit-track-backend/models/api/interview"
	dbmodels "recruit-track-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInterviewNotFound = errors.New("интервью не найдено")
	ErrCandidateNotFound = errors.New("кандидат не найден")
	ErrJobNotFound       = errors.New("вакансия не найдена")
)

type Provider interface {
	Schedule(schedulerID string, role models.UserRole, req interviewapimodels.ScheduleRequest) (id string, err error)
	ConfirmByHR(confirmerID string, role models.UserRole, interviewID string, req interviewapimodels.ConfirmRequest) error
	GetByID(id string) (view *interviewapimodels.InterviewView, err error)
	PendingList() (list []interviewapimodels.InterviewView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            interviewstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		jobStore:         jobstore.NewInstance(db.DB),
		userStore:        usersstore.NewInstance(db.DB),
		notifier:         notificationhandler.Instance,
	}
}

type impl struct {
	store            interviewstore.Provider
	applicationStore applicationstore.Provider
	jobStore         jobstore.Provider
	userStore        usersstore.Provider
	notifier         notificationhandler.Provider
}

func (i impl) Schedule(schedulerID string, role models.UserRole, req interviewapimodels.ScheduleRequest) (string, error) {
	if err := authutils.RequireRole(role, models.UserRoleAdmin); err != nil {
		return "", err
	}
	logger := log.
		WithField("candidate_id", req.CandidateID).
		WithField("job_id", req.JobID)
	candidate, err := i.userStore.GetByID(req.CandidateID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		return "", ErrCandidateNotFound
	}
	job, err := i.jobStore.GetByID(req.JobID)
	if err != nil {
		return "", err
	}
	if job == nil {
		return "", ErrJobNotFound
	}
	application, err := i.applicationStore.GetByCandidateAndJob(req.CandidateID, req.JobID)
	if err != nil {
		return "", err
	}
	if application == nil {
		rec := dbmodels.Application{
			JobID:       req.JobID,
			CandidateID: req.CandidateID,
			Status:      models.ApplicationStatusInterviewScheduled,
			CoverLetter: "Shortlisted by admin for interview",
			AppliedAt:   time.Now(),
		}
		id, err := i.applicationStore.Create(rec)
		if err != nil {
			logger.WithError(err).Error("ошибка создания отклика")
			return "", err
		}
		rec.ID = id
		application = &rec
	} else if application.Status != models.ApplicationStatusInterviewScheduled {
		ok, err := application.IsAllowStatusChange(models.ApplicationStatusInterviewScheduled)
		if err != nil {
			return "", err
		}
		if ok {
			err = i.applicationStore.Update(application.ID, map[string]interface{}{
				"status": models.ApplicationStatusInterviewScheduled,
			})
			if err != nil {
				logger.WithError(err).Error("ошибка обновления статуса отклика")
				return "", err
			}
		}
	}
	// по отклику может быть только одно активное интервью,
	// прежние запланированные отменяются
	active, err := i.store.ListActiveByApplication(application.ID)
	if err != nil {
		return "", err
	}
	for _, prev := range active {
		err = i.store.Update(prev.ID, map[string]interface{}{
			"status": models.InterviewStatusCancelled,
		})
		if err != nil {
			logger.WithError(err).
				WithField("interview_id", prev.ID).
				Error("ошибка отмены прежнего интервью")
			return "", err
		}
	}
	notes := req.Notes
	if req.ScheduledTime != "" {
		notes = notes + "\nScheduled Time: " + req.ScheduledTime
	}
	rec := dbmodels.Interview{
		ApplicationID:    application.ID,
		ScheduledDate:    req.ScheduledDate,
		InterviewerName:  req.InterviewerName,
		InterviewerEmail: req.InterviewerEmail,
		MeetingLink:      req.MeetingLink,
		Notes:            notes,
		Status:           models.InterviewStatusScheduled,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания интервью")
		return "", err
	}
	message := fmt.Sprintf("Интервью по вакансии «%s» назначено на %s",
		job.Title, req.ScheduledDate.Format("02.01.2006"))
	err = i.notify(req.CandidateID, "Интервью назначено", message, models.NotificationTypeInterviewScheduled, id, logger)
	if err != nil {
		return id, errors.Wrap(err, "интервью создано, но уведомление кандидату не отправлено")
	}
	err = i.notify(schedulerID, "Интервью назначено",
		fmt.Sprintf("Кандидат %s: %s", candidate.GetFullName(), message),
		models.NotificationTypeInterviewScheduled, id, logger)
	if err != nil {
		return id, errors.Wrap(err, "интервью создано, но уведомление организатору не отправлено")
	}
	return id, nil
}

func (i impl) ConfirmByHR(confirmerID string, role models.UserRole, interviewID string, req interviewapimodels.ConfirmRequest) error {
	if err := authutils.RequireRole(role, models.UserRoleHR, models.UserRoleAdmin); err != nil {
		return err
	}
	logger := log.WithField("interview_id", interviewID)
	rec, err := i.store.GetByID(interviewID)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrInterviewNotFound
	}
	updMap := map[string]interface{}{}
	if req.MeetingLink != "" {
		updMap["meeting_link"] = req.MeetingLink
	}
	// отметка о подтверждении дописывается к заметкам
	confirmation := "\n\nHR Confirmation: " + time.Now().Format("02.01.2006 15:04")
	if req.AdditionalNotes != "" {
		confirmation += "\n" + req.AdditionalNotes
	}
	updMap["notes"] = rec.Notes + confirmation
	err = i.store.Update(interviewID, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка подтверждения интервью")
		return err
	}
	application, err := i.applicationStore.GetByID(rec.ApplicationID)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Интервью по вакансии «%s» подтверждено HR", rec.JobTitle)
	if application != nil {
		err = i.notify(application.CandidateID, "Интервью подтверждено", message,
			models.NotificationTypeInterviewConfirmed, interviewID, logger)
		if err != nil {
			return errors.Wrap(err, "интервью подтверждено, но уведомление кандидату не отправлено")
		}
	}
	err = i.notify(confirmerID, "Интервью подтверждено",
		fmt.Sprintf("Кандидат %s %s: %s", rec.CandidateFirstName, rec.CandidateLastName, message),
		models.NotificationTypeInterviewConfirmed, interviewID, logger)
	if err != nil {
		return errors.Wrap(err, "интервью подтверждено, но уведомление HR не отправлено")
	}
	return nil
}

func (i impl) GetByID(id string) (*interviewapimodels.InterviewView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	application, err := i.applicationStore.GetByID(rec.ApplicationID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, nil
	}
	view := interviewapimodels.InterviewConvertExt(*rec)
	return &view, nil
}

func (i impl) PendingList() ([]interviewapimodels.InterviewView, error) {
	list, err := i.store.ListScheduled()
	if err != nil {
		return nil, err
	}
	result := make([]interviewapimodels.InterviewView, 0, len(list))
	for _, rec := range list {
		application, err := i.applicationStore.GetByID(rec.ApplicationID)
		if err != nil {
			return nil, err
		}
		// интервью с потерянным откликом пропускаются
		if application == nil {
			continue
		}
		result = append(result, interviewapimodels.InterviewConvertExt(rec))
	}
	return result, nil
}

func (i impl) notify(userID, title, message string, nType models.NotificationType, relatedID string, logger *log.Entry) error {
	err := i.notifier.Notify(userID, title, message, nType, relatedID)
	if err != nil {
		logger.WithError(err).
			WithField("user_id", userID).
			Error("ошибка отправки уведомления об интервью")
	}
	return err
}
