package resumeuploadhandler

import (
	"context"
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	notificationapimodels "recruit-track-backend/models/api/notification"
	uploadapimodels "recruit-track-backend/models/api/upload"
	dbmodels "recruit-track-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeUploadStore struct {
	upload  *dbmodels.ResumeUpload
	created []dbmodels.ResumeUpload
	updates map[string]map[string]interface{}
}

func newFakeUploadStore(upload *dbmodels.ResumeUpload) *fakeUploadStore {
	return &fakeUploadStore{upload: upload, updates: map[string]map[string]interface{}{}}
}

func (f *fakeUploadStore) Create(rec dbmodels.ResumeUpload) (string, error) {
	f.created = append(f.created, rec)
	return "upload-id", nil
}

func (f *fakeUploadStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeUploadStore) GetByID(id string) (*dbmodels.ResumeUpload, error) { return f.upload, nil }

func (f *fakeUploadStore) List() ([]dbmodels.ResumeUploadExt, error) { return nil, nil }

func (f *fakeUploadStore) ListByCandidate(candidateID string) ([]dbmodels.ResumeUploadExt, error) {
	return nil, nil
}

type fakeCandidateStore struct {
	profile *dbmodels.CandidateProfileExt
	created []dbmodels.CandidateProfile
	updates map[string]map[string]interface{}
}

func newFakeCandidateStore(profile *dbmodels.CandidateProfileExt) *fakeCandidateStore {
	return &fakeCandidateStore{profile: profile, updates: map[string]map[string]interface{}{}}
}

func (f *fakeCandidateStore) Create(rec dbmodels.CandidateProfile) (string, error) {
	f.created = append(f.created, rec)
	return "stub-profile-id", nil
}

func (f *fakeCandidateStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeCandidateStore) UpdateByUserID(userID string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeCandidateStore) GetByID(id string) (*dbmodels.CandidateProfile, error) {
	if f.profile == nil {
		return nil, nil
	}
	return &f.profile.CandidateProfile, nil
}

func (f *fakeCandidateStore) GetByUserID(userID string) (*dbmodels.CandidateProfileExt, error) {
	return f.profile, nil
}

func (f *fakeCandidateStore) ExistByUserID(userID string) (bool, error) {
	return f.profile != nil, nil
}

func (f *fakeCandidateStore) List() ([]dbmodels.CandidateProfileExt, error) { return nil, nil }

func (f *fakeCandidateStore) ListByFilter(filter dbmodels.CandidateFilter) ([]dbmodels.CandidateProfileExt, error) {
	return nil, nil
}

type fakeApplicationStore struct {
	existing *dbmodels.Application
	created  []dbmodels.Application
	updates  map[string]map[string]interface{}
}

func newFakeApplicationStore(existing *dbmodels.Application) *fakeApplicationStore {
	return &fakeApplicationStore{existing: existing, updates: map[string]map[string]interface{}{}}
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
	return f.existing, nil
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

type fakeUserStore struct {
	user   *dbmodels.User
	byRole map[models.UserRole][]dbmodels.User
}

func (f fakeUserStore) Create(rec dbmodels.User) (string, error) { return "", nil }
func (f fakeUserStore) Update(userID string, updMap map[string]interface{}) error {
	return nil
}
func (f fakeUserStore) GetByID(userID string) (*dbmodels.User, error)    { return f.user, nil }
func (f fakeUserStore) FindByEmail(email string) (*dbmodels.User, error) { return nil, nil }
func (f fakeUserStore) ExistByEmail(email string) (bool, error)          { return false, nil }
func (f fakeUserStore) ExistByRole(role models.UserRole) (bool, error)   { return false, nil }
func (f fakeUserStore) ListByRole(role models.UserRole) ([]dbmodels.User, error) {
	return f.byRole[role], nil
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

type fakeFileStorage struct {
	uploaded map[string][]byte
}

func (f *fakeFileStorage) UploadResume(ctx context.Context, candidateID string, file []byte, fileName string) (string, error) {
	if f.uploaded == nil {
		f.uploaded = map[string][]byte{}
	}
	f.uploaded["file-id"] = file
	return "file-id", nil
}

func (f *fakeFileStorage) GetResume(ctx context.Context, fileID string) ([]byte, error) {
	return f.uploaded[fileID], nil
}

func roleUser(id string, role models.UserRole) dbmodels.User {
	rec := dbmodels.User{Role: role}
	rec.ID = id
	return rec
}

func TestUpload(t *testing.T) {
	candidate := &dbmodels.User{FirstName: "Иван", LastName: "Петров", Role: models.UserRoleCandidate}
	candidate.ID = "candidate-user-id"

	req := uploadapimodels.UploadRequest{
		CandidateUserID: "candidate-user-id",
		Notes:           "Кандидат с конференции",
	}
	file := []byte("resume content")

	t.Run(`загрузка с существующим профилем`, func(t *testing.T) {
		profile := &dbmodels.CandidateProfileExt{}
		profile.ID = "profile-id"
		profile.UserID = "candidate-user-id"
		store := newFakeUploadStore(nil)
		candidates := newFakeCandidateStore(profile)
		handler := impl{
			store:            store,
			candidateStore:   candidates,
			applicationStore: newFakeApplicationStore(nil),
			userStore:        fakeUserStore{user: candidate},
			notifier:         &fakeNotifier{},
			files:            &fakeFileStorage{},
		}
		id, err := handler.Upload(context.Background(), "hr-id", models.UserRoleHR, req, file, "resume.pdf")
		require.Nil(t, err)
		require.Equal(t, "upload-id", id)
		require.Equal(t, 0, len(candidates.created))
		rec := store.created[0]
		require.Equal(t, "profile-id", rec.CandidateID)
		require.Equal(t, "hr-id", rec.UploadedBy)
		require.Equal(t, models.ResumeUploadStatusUploaded, rec.Status)
		require.Equal(t, int64(len(file)), rec.FileSize)
		require.Nil(t, rec.JobID)
		// ссылка на файл резюме проставляется в профиль
		require.Equal(t, "file-id", candidates.updates["profile-id"]["resume_id"])
	})

	t.Run(`без профиля создается заготовка`, func(t *testing.T) {
		candidates := newFakeCandidateStore(nil)
		store := newFakeUploadStore(nil)
		handler := impl{
			store:            store,
			candidateStore:   candidates,
			applicationStore: newFakeApplicationStore(nil),
			userStore:        fakeUserStore{user: candidate},
			notifier:         &fakeNotifier{},
			files:            &fakeFileStorage{},
		}
		_, err := handler.Upload(context.Background(), "hr-id", models.UserRoleHR, req, file, "resume.pdf")
		require.Nil(t, err)
		require.Equal(t, 1, len(candidates.created))
		stub := candidates.created[0]
		require.Equal(t, "candidate-user-id", stub.UserID)
		require.Equal(t, "hybrid", stub.WorkPreference)
		require.Equal(t, "stub-profile-id", store.created[0].CandidateID)
	})

	t.Run(`администраторы уведомляются о загрузке`, func(t *testing.T) {
		profile := &dbmodels.CandidateProfileExt{}
		profile.ID = "profile-id"
		profile.UserID = "candidate-user-id"
		notifier := &fakeNotifier{}
		handler := impl{
			store:            newFakeUploadStore(nil),
			candidateStore:   newFakeCandidateStore(profile),
			applicationStore: newFakeApplicationStore(nil),
			userStore: fakeUserStore{
				user: candidate,
				byRole: map[models.UserRole][]dbmodels.User{
					models.UserRoleAdmin: {roleUser("admin-id", models.UserRoleAdmin)},
				},
			},
			notifier: notifier,
			files:    &fakeFileStorage{},
		}
		_, err := handler.Upload(context.Background(), "hr-id", models.UserRoleHR, req, file, "resume.pdf")
		require.Nil(t, err)
		require.Equal(t, []string{"admin-id"}, notifier.sent)
	})

	t.Run(`неизвестный пользователь отклоняется`, func(t *testing.T) {
		handler := impl{
			store:            newFakeUploadStore(nil),
			candidateStore:   newFakeCandidateStore(nil),
			applicationStore: newFakeApplicationStore(nil),
			userStore:        fakeUserStore{user: nil},
			notifier:         &fakeNotifier{},
			files:            &fakeFileStorage{},
		}
		_, err := handler.Upload(context.Background(), "hr-id", models.UserRoleHR, req, file, "resume.pdf")
		require.Equal(t, ErrUserNotFound, err)
	})

	t.Run(`кандидату загрузка недоступна`, func(t *testing.T) {
		store := newFakeUploadStore(nil)
		handler := impl{
			store:            store,
			candidateStore:   newFakeCandidateStore(nil),
			applicationStore: newFakeApplicationStore(nil),
			userStore:        fakeUserStore{user: candidate},
			notifier:         &fakeNotifier{},
			files:            &fakeFileStorage{},
		}
		_, err := handler.Upload(context.Background(), "candidate-user-id", models.UserRoleCandidate, req, file, "resume.pdf")
		require.Equal(t, authutils.ErrForbidden, err)
		require.Equal(t, 0, len(store.created))
	})
}

func TestShortlist(t *testing.T) {
	jobID := "job-id"
	newUpload := func(withJob bool) *dbmodels.ResumeUpload {
		rec := &dbmodels.ResumeUpload{CandidateID: "profile-id", Status: models.ResumeUploadStatusUploaded}
		rec.ID = "upload-id"
		if withJob {
			rec.JobID = &jobID
		}
		return rec
	}
	profile := &dbmodels.CandidateProfileExt{}
	profile.ID = "profile-id"
	profile.UserID = "candidate-user-id"
	candidate := &dbmodels.User{FirstName: "Иван", LastName: "Петров"}
	candidate.ID = "candidate-user-id"

	t.Run(`отбор фиксируется в записи о загрузке`, func(t *testing.T) {
		store := newFakeUploadStore(newUpload(false))
		handler := impl{
			store:            store,
			candidateStore:   newFakeCandidateStore(profile),
			applicationStore: newFakeApplicationStore(nil),
			userStore:        fakeUserStore{user: candidate},
			notifier:         &fakeNotifier{},
			files:            &fakeFileStorage{},
		}
		err := handler.Shortlist("admin-id", models.UserRoleAdmin, "upload-id", uploadapimodels.ShortlistRequest{ReviewNotes: "Сильный кандидат"})
		require.Nil(t, err)
		upd := store.updates["upload-id"]
		require.Equal(t, models.ResumeUploadStatusShortlisted, upd["status"])
		require.Equal(t, "admin-id", upd["reviewed_by"])
		require.Equal(t, "Сильный кандидат", upd["review_notes"])
	})

	t.Run(`отбор по вакансии создает отклик на скрининге`, func(t *testing.T) {
		applications := newFakeApplicationStore(nil)
		handler := impl{
			store:            newFakeUploadStore(newUpload(true)),
			candidateStore:   newFakeCandidateStore(profile),
			applicationStore: applications,
			userStore:        fakeUserStore{user: candidate},
			notifier:         &fakeNotifier{},
			files:            &fakeFileStorage{},
		}
		err := handler.Shortlist("admin-id", models.UserRoleAdmin, "upload-id", uploadapimodels.ShortlistRequest{})
		require.Nil(t, err)
		require.Equal(t, 1, len(applications.created))
		rec := applications.created[0]
		require.Equal(t, "candidate-user-id", rec.CandidateID)
		require.Equal(t, models.ApplicationStatusScreening, rec.Status)
	})

	t.Run(`отклик с позднего этапа не откатывается`, func(t *testing.T) {
		existing := &dbmodels.Application{Status: models.ApplicationStatusInterviewScheduled}
		existing.ID = "application-id"
		applications := newFakeApplicationStore(existing)
		handler := impl{
			store:            newFakeUploadStore(newUpload(true)),
			candidateStore:   newFakeCandidateStore(profile),
			applicationStore: applications,
			userStore:        fakeUserStore{user: candidate},
			notifier:         &fakeNotifier{},
			files:            &fakeFileStorage{},
		}
		err := handler.Shortlist("admin-id", models.UserRoleAdmin, "upload-id", uploadapimodels.ShortlistRequest{})
		require.Nil(t, err)
		require.Equal(t, 0, len(applications.created))
		require.Equal(t, 0, len(applications.updates))
	})

	t.Run(`HR уведомляются об отборе`, func(t *testing.T) {
		notifier := &fakeNotifier{}
		handler := impl{
			store:            newFakeUploadStore(newUpload(false)),
			candidateStore:   newFakeCandidateStore(profile),
			applicationStore: newFakeApplicationStore(nil),
			userStore: fakeUserStore{
				user: candidate,
				byRole: map[models.UserRole][]dbmodels.User{
					models.UserRoleHR: {roleUser("hr-1", models.UserRoleHR), roleUser("hr-2", models.UserRoleHR)},
				},
			},
			notifier: notifier,
			files:    &fakeFileStorage{},
		}
		err := handler.Shortlist("admin-id", models.UserRoleAdmin, "upload-id", uploadapimodels.ShortlistRequest{})
		require.Nil(t, err)
		require.Equal(t, []string{"hr-1", "hr-2"}, notifier.sent)
	})

	t.Run(`неизвестная загрузка отклоняется`, func(t *testing.T) {
		handler := impl{
			store:            newFakeUploadStore(nil),
			candidateStore:   newFakeCandidateStore(profile),
			applicationStore: newFakeApplicationStore(nil),
			userStore:        fakeUserStore{user: candidate},
			notifier:         &fakeNotifier{},
			files:            &fakeFileStorage{},
		}
		err := handler.Shortlist("admin-id", models.UserRoleAdmin, "missing", uploadapimodels.ShortlistRequest{})
		require.Equal(t, ErrUploadNotFound, err)
	})

	t.Run(`отбор доступен только администратору`, func(t *testing.T) {
		store := newFakeUploadStore(newUpload(false))
		handler := impl{
			store:            store,
			candidateStore:   newFakeCandidateStore(profile),
			applicationStore: newFakeApplicationStore(nil),
			userStore:        fakeUserStore{user: candidate},
			notifier:         &fakeNotifier{},
			files:            &fakeFileStorage{},
		}
		err := handler.Shortlist("hr-id", models.UserRoleHR, "upload-id", uploadapimodels.ShortlistRequest{})
		require.Equal(t, authutils.ErrForbidden, err)
		require.Equal(t, 0, len(store.updates))
	})

	t.Run(`без пользователя кандидата отбор завершается ошибкой`, func(t *testing.T) {
		notifier := &fakeNotifier{}
		handler := impl{
			store:            newFakeUploadStore(newUpload(false)),
			candidateStore:   newFakeCandidateStore(profile),
			applicationStore: newFakeApplicationStore(nil),
			userStore:        fakeUserStore{user: nil},
			notifier:         notifier,
			files:            &fakeFileStorage{},
		}
		err := handler.Shortlist("admin-id", models.UserRoleAdmin, "upload-id", uploadapimodels.ShortlistRequest{})
		require.NotNil(t, err)
		require.Equal(t, 0, len(notifier.sent))
	})
}
