package interviewhandler

import (
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	interviewapimodels "recruit-track-backend/models/api/interview"
	notificationapimodels "recruit-track-backend/models/api/notification"
	dbmodels "recruit-track-backend/models/db"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeInterviewStore struct {
	active  []dbmodels.Interview
	created []dbmodels.Interview
	updates map[string]map[string]interface{}
}

func newFakeInterviewStore() *fakeInterviewStore {
	return &fakeInterviewStore{updates: map[string]map[string]interface{}{}}
}

func (f *fakeInterviewStore) Create(rec dbmodels.Interview) (string, error) {
	f.created = append(f.created, rec)
	return "interview-id", nil
}

func (f *fakeInterviewStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeInterviewStore) GetByID(id string) (*dbmodels.InterviewExt, error) { return nil, nil }

func (f *fakeInterviewStore) ListScheduled() ([]dbmodels.InterviewExt, error) { return nil, nil }

func (f *fakeInterviewStore) ListActiveByApplication(applicationID string) ([]dbmodels.Interview, error) {
	return f.active, nil
}

type fakeApplicationStore struct {
	existing *dbmodels.Application
	created  []dbmodels.Application
	updates  map[string]map[string]interface{}
}

func newFakeApplicationStore(existing *dbmodels.Application) *fakeApplicationStore {
	return &fakeApplicationStore{
		existing: existing,
		updates:  map[string]map[string]interface{}{},
	}
}

func (f *fakeApplicationStore) Create(rec dbmodels.Application) (string, error) {
	f.created = append(f.created, rec)
	return "application-id", nil
}

func (f *fakeApplicationStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.Application, error) {
	if f.existing != nil && f.existing.ID == id {
		return f.existing, nil
	}
	return nil, nil
}

func (f *fakeApplicationStore) GetByCandidateAndJob(candidateID, jobID string) (*dbmodels.Application, error) {
	return f.existing, nil
}

func (f *fakeApplicationStore) ListByCandidate(candidateID string) ([]dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListByJob(jobID string) ([]dbmodels.Application, error) {
	return nil, nil
}

type fakeJobStore struct {
	job *dbmodels.JobExt
}

func (f fakeJobStore) Create(rec dbmodels.Job) (string, error)               { return "", nil }
func (f fakeJobStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f fakeJobStore) GetByID(id string) (*dbmodels.JobExt, error)           { return f.job, nil }
func (f fakeJobStore) List() ([]dbmodels.JobExt, error)                      { return nil, nil }

type fakeUserStore struct {
	user *dbmodels.User
}

func (f fakeUserStore) Create(rec dbmodels.User) (string, error)               { return "", nil }
func (f fakeUserStore) Update(userID string, updMap map[string]interface{}) error {
	return nil
}
func (f fakeUserStore) GetByID(userID string) (*dbmodels.User, error)          { return f.user, nil }
func (f fakeUserStore) FindByEmail(email string) (*dbmodels.User, error)       { return nil, nil }
func (f fakeUserStore) ExistByEmail(email string) (bool, error)                { return false, nil }
func (f fakeUserStore) ExistByRole(role models.UserRole) (bool, error)         { return false, nil }
func (f fakeUserStore) ListByRole(role models.UserRole) ([]dbmodels.User, error) {
	return nil, nil
}

type sentNotification struct {
	UserID string
	Title  string
	NType  models.NotificationType
}

type fakeNotifier struct {
	sent []sentNotification
}

func (f *fakeNotifier) Notify(userID, title, message string, nType models.NotificationType, relatedID string) error {
	f.sent = append(f.sent, sentNotification{UserID: userID, Title: title, NType: nType})
	return nil
}

func (f *fakeNotifier) ListForUser(userID string) ([]notificationapimodels.NotificationView, error) {
	return nil, nil
}

func (f *fakeNotifier) UnreadCount(userID string) (int64, error) { return 0, nil }

func (f *fakeNotifier) MarkAsRead(userID, notificationID string) error { return nil }

func TestSchedule(t *testing.T) {
	candidate := &dbmodels.User{FirstName: "Иван", LastName: "Петров"}
	candidate.ID = "candidate-id"
	job := &dbmodels.JobExt{}
	job.ID = "job-id"
	job.Title = "Go-разработчик"

	baseReq := interviewapimodels.ScheduleRequest{
		CandidateID:     "candidate-id",
		JobID:           "job-id",
		ScheduledDate:   time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		InterviewerName: "Анна Смирнова",
	}

	t.Run(`без отклика создается новый на этапе интервью`, func(t *testing.T) {
		applications := newFakeApplicationStore(nil)
		store := newFakeInterviewStore()
		notifier := &fakeNotifier{}
		handler := impl{
			store:            store,
			applicationStore: applications,
			jobStore:         fakeJobStore{job: job},
			userStore:        fakeUserStore{user: candidate},
			notifier:         notifier,
		}
		id, err := handler.Schedule("admin-id", models.UserRoleAdmin, baseReq)
		require.Nil(t, err)
		require.Equal(t, "interview-id", id)
		require.Equal(t, 1, len(applications.created))
		require.Equal(t, models.ApplicationStatusInterviewScheduled, applications.created[0].Status)
		require.Equal(t, 1, len(store.created))
		require.Equal(t, models.InterviewStatusScheduled, store.created[0].Status)
	})

	t.Run(`существующий отклик переводится на этап интервью`, func(t *testing.T) {
		existing := &dbmodels.Application{Status: models.ApplicationStatusScreening}
		existing.ID = "application-id"
		applications := newFakeApplicationStore(existing)
		store := newFakeInterviewStore()
		handler := impl{
			store:            store,
			applicationStore: applications,
			jobStore:         fakeJobStore{job: job},
			userStore:        fakeUserStore{user: candidate},
			notifier:         &fakeNotifier{},
		}
		_, err := handler.Schedule("admin-id", models.UserRoleAdmin, baseReq)
		require.Nil(t, err)
		require.Equal(t, 0, len(applications.created))
		upd := applications.updates["application-id"]
		require.Equal(t, models.ApplicationStatusInterviewScheduled, upd["status"])
	})

	t.Run(`прежние запланированные интервью отменяются`, func(t *testing.T) {
		existing := &dbmodels.Application{Status: models.ApplicationStatusInterviewScheduled}
		existing.ID = "application-id"
		prev := dbmodels.Interview{Status: models.InterviewStatusScheduled}
		prev.ID = "prev-interview-id"
		store := newFakeInterviewStore()
		store.active = []dbmodels.Interview{prev}
		handler := impl{
			store:            store,
			applicationStore: newFakeApplicationStore(existing),
			jobStore:         fakeJobStore{job: job},
			userStore:        fakeUserStore{user: candidate},
			notifier:         &fakeNotifier{},
		}
		_, err := handler.Schedule("admin-id", models.UserRoleAdmin, baseReq)
		require.Nil(t, err)
		upd := store.updates["prev-interview-id"]
		require.Equal(t, models.InterviewStatusCancelled, upd["status"])
		// новое интервью создано взамен отмененного
		require.Equal(t, 1, len(store.created))
	})

	t.Run(`время собеседования уходит в заметки`, func(t *testing.T) {
		store := newFakeInterviewStore()
		handler := impl{
			store:            store,
			applicationStore: newFakeApplicationStore(nil),
			jobStore:         fakeJobStore{job: job},
			userStore:        fakeUserStore{user: candidate},
			notifier:         &fakeNotifier{},
		}
		req := baseReq
		req.Notes = "Техническое интервью"
		req.ScheduledTime = "10:00 МСК"
		_, err := handler.Schedule("admin-id", models.UserRoleAdmin, req)
		require.Nil(t, err)
		require.Equal(t, "Техническое интервью\nScheduled Time: 10:00 МСК", store.created[0].Notes)
	})

	t.Run(`уведомления получают кандидат и организатор`, func(t *testing.T) {
		notifier := &fakeNotifier{}
		handler := impl{
			store:            newFakeInterviewStore(),
			applicationStore: newFakeApplicationStore(nil),
			jobStore:         fakeJobStore{job: job},
			userStore:        fakeUserStore{user: candidate},
			notifier:         notifier,
		}
		_, err := handler.Schedule("admin-id", models.UserRoleAdmin, baseReq)
		require.Nil(t, err)
		require.Equal(t, 2, len(notifier.sent))
		require.Equal(t, "candidate-id", notifier.sent[0].UserID)
		require.Equal(t, "admin-id", notifier.sent[1].UserID)
		for _, n := range notifier.sent {
			require.Equal(t, models.NotificationTypeInterviewScheduled, n.NType)
		}
	})

	t.Run(`неизвестный кандидат отклоняется`, func(t *testing.T) {
		handler := impl{
			store:            newFakeInterviewStore(),
			applicationStore: newFakeApplicationStore(nil),
			jobStore:         fakeJobStore{job: job},
			userStore:        fakeUserStore{user: nil},
			notifier:         &fakeNotifier{},
		}
		_, err := handler.Schedule("admin-id", models.UserRoleAdmin, baseReq)
		require.Equal(t, ErrCandidateNotFound, err)
	})

	t.Run(`неизвестная вакансия отклоняется`, func(t *testing.T) {
		handler := impl{
			store:            newFakeInterviewStore(),
			applicationStore: newFakeApplicationStore(nil),
			jobStore:         fakeJobStore{job: nil},
			userStore:        fakeUserStore{user: candidate},
			notifier:         &fakeNotifier{},
		}
		_, err := handler.Schedule("admin-id", models.UserRoleAdmin, baseReq)
		require.Equal(t, ErrJobNotFound, err)
	})

	t.Run(`назначение доступно только администратору`, func(t *testing.T) {
		store := newFakeInterviewStore()
		handler := impl{
			store:            store,
			applicationStore: newFakeApplicationStore(nil),
			jobStore:         fakeJobStore{job: job},
			userStore:        fakeUserStore{user: candidate},
			notifier:         &fakeNotifier{},
		}
		_, err := handler.Schedule("hr-id", models.UserRoleHR, baseReq)
		require.Equal(t, authutils.ErrForbidden, err)
		require.Equal(t, 0, len(store.created))
	})
}

type confirmStore struct {
	*fakeInterviewStore
	rec *dbmodels.InterviewExt
}

func (f confirmStore) GetByID(id string) (*dbmodels.InterviewExt, error) { return f.rec, nil }

func TestConfirmByHR(t *testing.T) {
	application := &dbmodels.Application{CandidateID: "candidate-id"}
	application.ID = "application-id"

	newRec := func() *dbmodels.InterviewExt {
		rec := &dbmodels.InterviewExt{}
		rec.ID = "interview-id"
		rec.ApplicationID = "application-id"
		rec.Notes = "Техническое интервью"
		rec.JobTitle = "Go-разработчик"
		return rec
	}

	t.Run(`отметка о подтверждении дописывается к заметкам`, func(t *testing.T) {
		store := confirmStore{fakeInterviewStore: newFakeInterviewStore(), rec: newRec()}
		notifier := &fakeNotifier{}
		handler := impl{
			store:            store,
			applicationStore: newFakeApplicationStore(application),
			jobStore:         fakeJobStore{},
			userStore:        fakeUserStore{},
			notifier:         notifier,
		}
		err := handler.ConfirmByHR("hr-id", models.UserRoleHR, "interview-id", interviewapimodels.ConfirmRequest{
			MeetingLink:     "https://meet.example.com/room",
			AdditionalNotes: "Переговорная забронирована",
		})
		require.Nil(t, err)
		upd := store.updates["interview-id"]
		require.Equal(t, "https://meet.example.com/room", upd["meeting_link"])
		notes := upd["notes"].(string)
		require.Equal(t, true, strings.HasPrefix(notes, "Техническое интервью\n\nHR Confirmation: "))
		require.Equal(t, true, strings.HasSuffix(notes, "\nПереговорная забронирована"))
		// уведомления получают кандидат и подтвердивший HR
		require.Equal(t, 2, len(notifier.sent))
		require.Equal(t, "candidate-id", notifier.sent[0].UserID)
		require.Equal(t, "hr-id", notifier.sent[1].UserID)
	})

	t.Run(`без ссылки на встречу она не затирается`, func(t *testing.T) {
		store := confirmStore{fakeInterviewStore: newFakeInterviewStore(), rec: newRec()}
		handler := impl{
			store:            store,
			applicationStore: newFakeApplicationStore(application),
			jobStore:         fakeJobStore{},
			userStore:        fakeUserStore{},
			notifier:         &fakeNotifier{},
		}
		err := handler.ConfirmByHR("hr-id", models.UserRoleHR, "interview-id", interviewapimodels.ConfirmRequest{})
		require.Nil(t, err)
		_, exist := store.updates["interview-id"]["meeting_link"]
		require.Equal(t, false, exist)
	})

	t.Run(`неизвестное интервью отклоняется`, func(t *testing.T) {
		store := confirmStore{fakeInterviewStore: newFakeInterviewStore(), rec: nil}
		handler := impl{
			store:            store,
			applicationStore: newFakeApplicationStore(nil),
			jobStore:         fakeJobStore{},
			userStore:        fakeUserStore{},
			notifier:         &fakeNotifier{},
		}
		err := handler.ConfirmByHR("hr-id", models.UserRoleHR, "missing", interviewapimodels.ConfirmRequest{})
		require.Equal(t, ErrInterviewNotFound, err)
	})

	t.Run(`кандидату подтверждение недоступно`, func(t *testing.T) {
		store := confirmStore{fakeInterviewStore: newFakeInterviewStore(), rec: newRec()}
		handler := impl{
			store:            store,
			applicationStore: newFakeApplicationStore(application),
			jobStore:         fakeJobStore{},
			userStore:        fakeUserStore{},
			notifier:         &fakeNotifier{},
		}
		err := handler.ConfirmByHR("candidate-id", models.UserRoleCandidate, "interview-id", interviewapimodels.ConfirmRequest{})
		require.Equal(t, authutils.ErrForbidden, err)
		require.Equal(t, 0, len(store.updates))
	})
}
