package jobhandler

import (
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	jobapimodels "recruit-track-backend/models/api/job"
	notificationapimodels "recruit-track-backend/models/api/notification"
	dbmodels "recruit-track-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeApplicationStore struct {
	byCandidate map[string][]dbmodels.Application
	byJob       map[string][]dbmodels.Application
}

func (f *fakeApplicationStore) Create(rec dbmodels.Application) (string, error) { return "", nil }
func (f *fakeApplicationStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.Application, error) { return nil, nil }
func (f *fakeApplicationStore) GetByCandidateAndJob(candidateID, jobID string) (*dbmodels.Application, error) {
	return nil, nil
}
func (f *fakeApplicationStore) ListByCandidate(candidateID string) ([]dbmodels.Application, error) {
	return f.byCandidate[candidateID], nil
}
func (f *fakeApplicationStore) ListByJob(jobID string) ([]dbmodels.Application, error) {
	return f.byJob[jobID], nil
}

type fakeJobStore struct {
	job     *dbmodels.JobExt
	created []dbmodels.Job
	updates map[string]map[string]interface{}
}

func newFakeJobStore(job *dbmodels.JobExt) *fakeJobStore {
	return &fakeJobStore{job: job, updates: map[string]map[string]interface{}{}}
}

func (f *fakeJobStore) Create(rec dbmodels.Job) (string, error) {
	f.created = append(f.created, rec)
	return "job-id", nil
}

func (f *fakeJobStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeJobStore) GetByID(id string) (*dbmodels.JobExt, error) { return f.job, nil }

func (f *fakeJobStore) List() ([]dbmodels.JobExt, error) { return nil, nil }

type fakeUserStore struct {
	hrList []dbmodels.User
}

func (f fakeUserStore) Create(rec dbmodels.User) (string, error) { return "", nil }
func (f fakeUserStore) Update(userID string, updMap map[string]interface{}) error {
	return nil
}
func (f fakeUserStore) GetByID(userID string) (*dbmodels.User, error)    { return nil, nil }
func (f fakeUserStore) FindByEmail(email string) (*dbmodels.User, error) { return nil, nil }
func (f fakeUserStore) ExistByEmail(email string) (bool, error)          { return false, nil }
func (f fakeUserStore) ExistByRole(role models.UserRole) (bool, error)   { return false, nil }
func (f fakeUserStore) ListByRole(role models.UserRole) ([]dbmodels.User, error) {
	if role == models.UserRoleHR {
		return f.hrList, nil
	}
	return nil, nil
}

type fakeNotifier struct {
	sent []string // кому отправлено
}

func (f *fakeNotifier) Notify(userID, title, message string, nType models.NotificationType, relatedID string) error {
	f.sent = append(f.sent, userID)
	return nil
}

func (f *fakeNotifier) ListForUser(userID string) ([]notificationapimodels.NotificationView, error) {
	return nil, nil
}

func (f *fakeNotifier) UnreadCount(userID string) (int64, error) { return 0, nil }

func (f *fakeNotifier) MarkAsRead(userID, notificationID string) error { return nil }

func hrUser(id string) dbmodels.User {
	rec := dbmodels.User{Role: models.UserRoleHR}
	rec.ID = id
	return rec
}

func TestJobCreate(t *testing.T) {
	data := jobapimodels.JobData{
		Title:              "Go-разработчик",
		Department:         "Разработка",
		RequiredSkills:     []string{"go", "postgresql"},
		ExperienceRequired: 3,
	}

	t.Run(`вакансия создается активной`, func(t *testing.T) {
		store := newFakeJobStore(nil)
		handler := impl{
			store:     store,
			userStore: fakeUserStore{},
			notifier:  &fakeNotifier{},
		}
		id, err := handler.Create("admin-id", models.UserRoleAdmin, data)
		require.Nil(t, err)
		require.Equal(t, "job-id", id)
		require.Equal(t, 1, len(store.created))
		rec := store.created[0]
		require.Equal(t, models.JobStatusActive, rec.Status)
		require.Equal(t, "admin-id", rec.PostedBy)
	})

	t.Run(`каждый HR получает уведомление`, func(t *testing.T) {
		notifier := &fakeNotifier{}
		handler := impl{
			store: newFakeJobStore(nil),
			userStore: fakeUserStore{hrList: []dbmodels.User{
				hrUser("hr-1"), hrUser("hr-2"), hrUser("hr-3"),
			}},
			notifier: notifier,
		}
		_, err := handler.Create("admin-id", models.UserRoleAdmin, data)
		require.Nil(t, err)
		require.Equal(t, []string{"hr-1", "hr-2", "hr-3"}, notifier.sent)
	})

	t.Run(`создание доступно только администратору`, func(t *testing.T) {
		store := newFakeJobStore(nil)
		handler := impl{
			store:     store,
			userStore: fakeUserStore{},
			notifier:  &fakeNotifier{},
		}
		_, err := handler.Create("hr-id", models.UserRoleHR, data)
		require.Equal(t, authutils.ErrForbidden, err)
		require.Equal(t, 0, len(store.created))
	})
}

func TestJobClose(t *testing.T) {
	t.Run(`закрытие меняет статус`, func(t *testing.T) {
		job := &dbmodels.JobExt{}
		job.ID = "job-id"
		store := newFakeJobStore(job)
		handler := impl{store: store, userStore: fakeUserStore{}, notifier: &fakeNotifier{}}
		err := handler.Close(models.UserRoleAdmin, "job-id")
		require.Nil(t, err)
		require.Equal(t, models.JobStatusClosed, store.updates["job-id"]["status"])
	})

	t.Run(`неизвестная вакансия отклоняется`, func(t *testing.T) {
		store := newFakeJobStore(nil)
		handler := impl{store: store, userStore: fakeUserStore{}, notifier: &fakeNotifier{}}
		err := handler.Close(models.UserRoleAdmin, "missing")
		require.Equal(t, ErrJobNotFound, err)
	})

	t.Run(`кандидату закрытие недоступно`, func(t *testing.T) {
		job := &dbmodels.JobExt{}
		job.ID = "job-id"
		store := newFakeJobStore(job)
		handler := impl{store: store, userStore: fakeUserStore{}, notifier: &fakeNotifier{}}
		err := handler.Close(models.UserRoleCandidate, "job-id")
		require.Equal(t, authutils.ErrForbidden, err)
		require.Equal(t, 0, len(store.updates))
	})
}

func TestJobApplications(t *testing.T) {
	application := func(id, jobID, candidateID string, status models.ApplicationStatus) dbmodels.Application {
		rec := dbmodels.Application{
			JobID:       jobID,
			CandidateID: candidateID,
			Status:      status,
			AppliedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		}
		rec.ID = id
		return rec
	}

	t.Run(`отклики по вакансии`, func(t *testing.T) {
		applications := &fakeApplicationStore{byJob: map[string][]dbmodels.Application{
			"job-id": {
				application("app-1", "job-id", "user-1", models.ApplicationStatusScreening),
				application("app-2", "job-id", "user-2", models.ApplicationStatusApplied),
			},
		}}
		handler := impl{store: newFakeJobStore(nil), applicationStore: applications}
		list, err := handler.Applications("job-id")
		require.Nil(t, err)
		require.Equal(t, 2, len(list))
		require.Equal(t, "app-1", list[0].ID)
		require.Equal(t, string(models.ApplicationStatusScreening), list[0].Status)
	})

	t.Run(`отклики кандидата`, func(t *testing.T) {
		applications := &fakeApplicationStore{byCandidate: map[string][]dbmodels.Application{
			"user-1": {application("app-1", "job-id", "user-1", models.ApplicationStatusApplied)},
		}}
		handler := impl{store: newFakeJobStore(nil), applicationStore: applications}
		list, err := handler.MyApplications("user-1")
		require.Nil(t, err)
		require.Equal(t, 1, len(list))
		require.Equal(t, "job-id", list[0].JobID)
	})

	t.Run(`без откликов возвращается пустой список`, func(t *testing.T) {
		handler := impl{store: newFakeJobStore(nil), applicationStore: &fakeApplicationStore{}}
		list, err := handler.Applications("job-id")
		require.Nil(t, err)
		require.Equal(t, 0, len(list))
	})
}
