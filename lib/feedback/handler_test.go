package feedbackhandler

import (
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	feedbackapimodels "recruit-track-backend/models/api/feedback"
	notificationapimodels "recruit-track-backend/models/api/notification"
	dbmodels "recruit-track-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeFeedbackStore struct {
	rec     *dbmodels.Feedback
	created []dbmodels.Feedback
	updates map[string]map[string]interface{}
	deleted []string
}

func newFakeFeedbackStore(rec *dbmodels.Feedback) *fakeFeedbackStore {
	return &fakeFeedbackStore{rec: rec, updates: map[string]map[string]interface{}{}}
}

func (f *fakeFeedbackStore) Create(rec dbmodels.Feedback) (string, error) {
	f.created = append(f.created, rec)
	return "feedback-id", nil
}

func (f *fakeFeedbackStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeFeedbackStore) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeFeedbackStore) GetByID(id string) (*dbmodels.Feedback, error) { return f.rec, nil }

func (f *fakeFeedbackStore) ListByInterview(interviewID string) ([]dbmodels.Feedback, error) {
	return nil, nil
}

func (f *fakeFeedbackStore) ListByCandidate(candidateID string) ([]dbmodels.Feedback, error) {
	return nil, nil
}

func (f *fakeFeedbackStore) ListByJob(jobID string) ([]dbmodels.Feedback, error) { return nil, nil }

func (f *fakeFeedbackStore) List() ([]dbmodels.Feedback, error) { return nil, nil }

type fakeUserStore struct {
	admins []dbmodels.User
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
	if role == models.UserRoleAdmin {
		return f.admins, nil
	}
	return nil, nil
}

type fakeNotifier struct {
	sent []string
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

func validData() feedbackapimodels.FeedbackData {
	return feedbackapimodels.FeedbackData{
		InterviewID:         "interview-id",
		CandidateID:         "candidate-id",
		JobID:               "job-id",
		InterviewerName:     "Анна Смирнова",
		OverallRating:       4,
		TechnicalSkills:     5,
		CommunicationSkills: 4,
		ProblemSolving:      4,
		CulturalFit:         3,
		Strengths:           "Сильная алгоритмическая подготовка",
		Recommendation:      models.RecommendationHire,
	}
}

func TestFeedbackSubmit(t *testing.T) {
	t.Run(`обратная связь сохраняется`, func(t *testing.T) {
		store := newFakeFeedbackStore(nil)
		handler := impl{store: store, userStore: fakeUserStore{}, notifier: &fakeNotifier{}}
		id, err := handler.Submit("interviewer-id", models.UserRoleHR, validData())
		require.Nil(t, err)
		require.Equal(t, "feedback-id", id)
		rec := store.created[0]
		require.Equal(t, "interviewer-id", rec.InterviewerID)
		require.Equal(t, models.RecommendationHire, rec.Recommendation)
	})

	t.Run(`оценка вне диапазона отклоняется`, func(t *testing.T) {
		store := newFakeFeedbackStore(nil)
		handler := impl{store: store, userStore: fakeUserStore{}, notifier: &fakeNotifier{}}
		data := validData()
		data.TechnicalSkills = 6
		_, err := handler.Submit("interviewer-id", models.UserRoleHR, data)
		require.NotNil(t, err)
		require.Equal(t, 0, len(store.created))

		data = validData()
		data.CulturalFit = 0
		_, err = handler.Submit("interviewer-id", models.UserRoleHR, data)
		require.NotNil(t, err)
	})

	t.Run(`недопустимая рекомендация отклоняется`, func(t *testing.T) {
		handler := impl{store: newFakeFeedbackStore(nil), userStore: fakeUserStore{}, notifier: &fakeNotifier{}}
		data := validData()
		data.Recommendation = models.Recommendation("strong-hire")
		_, err := handler.Submit("interviewer-id", models.UserRoleHR, data)
		require.NotNil(t, err)
	})

	t.Run(`администраторы уведомляются`, func(t *testing.T) {
		admin := dbmodels.User{Role: models.UserRoleAdmin}
		admin.ID = "admin-id"
		notifier := &fakeNotifier{}
		handler := impl{
			store:     newFakeFeedbackStore(nil),
			userStore: fakeUserStore{admins: []dbmodels.User{admin}},
			notifier:  notifier,
		}
		_, err := handler.Submit("interviewer-id", models.UserRoleHR, validData())
		require.Nil(t, err)
		require.Equal(t, []string{"admin-id"}, notifier.sent)
	})

	t.Run(`кандидату отправка недоступна`, func(t *testing.T) {
		store := newFakeFeedbackStore(nil)
		handler := impl{store: store, userStore: fakeUserStore{}, notifier: &fakeNotifier{}}
		_, err := handler.Submit("candidate-id", models.UserRoleCandidate, validData())
		require.Equal(t, authutils.ErrForbidden, err)
		require.Equal(t, 0, len(store.created))
	})
}

func TestFeedbackUpdate(t *testing.T) {
	existing := func() *dbmodels.Feedback {
		rec := validData().ToModel("interviewer-id")
		rec.ID = "feedback-id"
		return &rec
	}

	t.Run(`частичное обновление сохраняется`, func(t *testing.T) {
		store := newFakeFeedbackStore(existing())
		handler := impl{store: store, userStore: fakeUserStore{}, notifier: &fakeNotifier{}}
		rating := 5
		err := handler.Update(models.UserRoleHR, "feedback-id", feedbackapimodels.UpdateData{OverallRating: &rating})
		require.Nil(t, err)
		require.Equal(t, 5, store.updates["feedback-id"]["overall_rating"])
	})

	t.Run(`обновление не может сломать оценки`, func(t *testing.T) {
		store := newFakeFeedbackStore(existing())
		handler := impl{store: store, userStore: fakeUserStore{}, notifier: &fakeNotifier{}}
		rating := 7
		err := handler.Update(models.UserRoleHR, "feedback-id", feedbackapimodels.UpdateData{OverallRating: &rating})
		require.NotNil(t, err)
		require.Equal(t, 0, len(store.updates))
	})

	t.Run(`неизвестная запись отклоняется`, func(t *testing.T) {
		handler := impl{store: newFakeFeedbackStore(nil), userStore: fakeUserStore{}, notifier: &fakeNotifier{}}
		err := handler.Update(models.UserRoleHR, "missing", feedbackapimodels.UpdateData{})
		require.Equal(t, ErrFeedbackNotFound, err)
	})
}

func TestFeedbackDelete(t *testing.T) {
	t.Run(`удаление существующей записи`, func(t *testing.T) {
		rec := validData().ToModel("interviewer-id")
		rec.ID = "feedback-id"
		store := newFakeFeedbackStore(&rec)
		handler := impl{store: store, userStore: fakeUserStore{}, notifier: &fakeNotifier{}}
		err := handler.Delete(models.UserRoleHR, "feedback-id")
		require.Nil(t, err)
		require.Equal(t, []string{"feedback-id"}, store.deleted)
	})

	t.Run(`неизвестная запись отклоняется`, func(t *testing.T) {
		handler := impl{store: newFakeFeedbackStore(nil), userStore: fakeUserStore{}, notifier: &fakeNotifier{}}
		err := handler.Delete(models.UserRoleHR, "missing")
		require.Equal(t, ErrFeedbackNotFound, err)
	})

	t.Run(`кандидату удаление недоступно`, func(t *testing.T) {
		rec := validData().ToModel("interviewer-id")
		rec.ID = "feedback-id"
		store := newFakeFeedbackStore(&rec)
		handler := impl{store: store, userStore: fakeUserStore{}, notifier: &fakeNotifier{}}
		err := handler.Delete(models.UserRoleCandidate, "feedback-id")
		require.Equal(t, authutils.ErrForbidden, err)
		require.Equal(t, 0, len(store.deleted))
	})
}
