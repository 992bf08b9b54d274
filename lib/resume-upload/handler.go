package resumeuploadhandler

import (
	"context"
	"fmt"
	"recruit-track-backend/db"
	applicationstore "recruit-track-backend/lib/application/store"
	candidatestore "recruit-track-backend/lib/candidate/store"
	filestorage "recruit-track-backend/lib/file-storage"
	notificationhandler "recruit-track-backend/lib/notification"
	resumeuploadstore "recruit-track-backend/lib/resume-upload/store"
	usersstore "recruit-track-backend/lib/users/store"
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	uploadapimodels "recruit-track-backend/models/api/upload"
	dbmodels "recruit-track-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUploadNotFound    = errors.New("загрузка резюме не найдена")
	ErrCandidateNotFound = errors.New("кандидат не найден")
	ErrUserNotFound      = errors.New("пользователь не найден")
)

type Provider interface {
	Upload(ctx context.Context, uploaderID string, role models.UserRole, req uploadapimodels.UploadRequest, file []byte, fileName string) (id string, err error)
	List() (list []uploadapimodels.UploadView, err error)
	ListByCandidate(candidateProfileID string) (list []uploadapimodels.UploadView, err error)
	Shortlist(reviewerID string, role models.UserRole, uploadID string, req uploadapimodels.ShortlistRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            resumeuploadstore.NewInstance(db.DB),
		candidateStore:   candidatestore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		userStore:        usersstore.NewInstance(db.DB),
		notifier:         notificationhandler.Instance,
		files:            filestorage.Instance,
	}
}

type impl struct {
	store            resumeuploadstore.Provider
	candidateStore   candidatestore.Provider
	applicationStore applicationstore.Provider
	userStore        usersstore.Provider
	notifier         notificationhandler.Provider
	files            filestorage.Provider
}

func (i impl) Upload(ctx context.Context, uploaderID string, role models.UserRole, req uploadapimodels.UploadRequest, file []byte, fileName string) (string, error) {
	if err := authutils.RequireRole(role, models.UserRoleHR, models.UserRoleAdmin); err != nil {
		return "", err
	}
	logger := log.
		WithField("candidate_user_id", req.CandidateUserID).
		WithField("file_name", fileName)
	candidate, err := i.userStore.GetByID(req.CandidateUserID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		return "", ErrUserNotFound
	}
	// HR может загрузить резюме до того, как кандидат заполнил профиль
	profile, err := i.candidateStore.GetByUserID(req.CandidateUserID)
	if err != nil {
		return "", err
	}
	profileID := ""
	if profile == nil {
		stub := dbmodels.CandidateProfile{
			UserID:         req.CandidateUserID,
			WorkPreference: "hybrid",
			Availability:   "negotiable",
		}
		profileID, err = i.candidateStore.Create(stub)
		if err != nil {
			logger.WithError(err).Error("ошибка создания профиля кандидата")
			return "", err
		}
	} else {
		profileID = profile.ID
	}
	fileID, err := i.files.UploadResume(ctx, profileID, file, fileName)
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки файла резюме")
		return "", err
	}
	rec := dbmodels.ResumeUpload{
		CandidateID: profileID,
		UploadedBy:  uploaderID,
		FileName:    fileName,
		FileURL:     fileID,
		FileSize:    int64(len(file)),
		Notes:       req.Notes,
		Status:      models.ResumeUploadStatusUploaded,
	}
	if req.JobID != "" {
		rec.JobID = &req.JobID
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения записи о загрузке")
		return "", err
	}
	err = i.candidateStore.Update(profileID, map[string]interface{}{"resume_id": fileID})
	if err != nil {
		return id, errors.Wrap(err, "резюме загружено, но ссылка в профиле не обновлена")
	}
	admins, err := i.userStore.ListByRole(models.UserRoleAdmin)
	if err != nil {
		return id, errors.Wrap(err, "резюме загружено, но уведомления не отправлены")
	}
	for _, admin := range admins {
		err = i.notifier.Notify(
			admin.ID,
			"Загружено резюме",
			fmt.Sprintf("HR загрузил резюме кандидата %s", candidate.GetFullName()),
			models.NotificationTypeResumeUploaded,
			id,
		)
		if err != nil {
			logger.WithError(err).
				WithField("user_id", admin.ID).
				Error("ошибка отправки уведомления о загрузке резюме")
			return id, errors.Wrap(err, "резюме загружено, но уведомления не отправлены")
		}
	}
	return id, nil
}

func (i impl) List() ([]uploadapimodels.UploadView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) ListByCandidate(candidateProfileID string) ([]uploadapimodels.UploadView, error) {
	list, err := i.store.ListByCandidate(candidateProfileID)
	if err != nil {
		return nil, err
	}
	return convertList(list), nil
}

func (i impl) Shortlist(reviewerID string, role models.UserRole, uploadID string, req uploadapimodels.ShortlistRequest) error {
	if err := authutils.RequireRole(role, models.UserRoleAdmin); err != nil {
		return err
	}
	logger := log.WithField("upload_id", uploadID)
	upload, err := i.store.GetByID(uploadID)
	if err != nil {
		return err
	}
	if upload == nil {
		return ErrUploadNotFound
	}
	profile, err := i.candidateStore.GetByID(upload.CandidateID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrCandidateNotFound
	}
	now := time.Now()
	err = i.store.Update(uploadID, map[string]interface{}{
		"status":       models.ResumeUploadStatusShortlisted,
		"reviewed_by":  reviewerID,
		"reviewed_at":  now,
		"review_notes": req.ReviewNotes,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления статуса загрузки")
		return err
	}
	// отбор фиксируется в отклике, запись о загрузке остается журналом приема
	if upload.JobID != nil {
		err = i.upsertApplication(profile.UserID, *upload.JobID)
		if err != nil {
			return errors.Wrap(err, "резюме отобрано, но отклик не обновлен")
		}
	}
	candidate, err := i.userStore.GetByID(profile.UserID)
	if err != nil {
		return errors.Wrap(err, "резюме отобрано, но уведомления не отправлены")
	}
	if candidate == nil {
		return errors.New("резюме отобрано, но уведомления не отправлены: пользователь не найден")
	}
	hrList, err := i.userStore.ListByRole(models.UserRoleHR)
	if err != nil {
		return errors.Wrap(err, "резюме отобрано, но уведомления не отправлены")
	}
	for _, hr := range hrList {
		err = i.notifier.Notify(
			hr.ID,
			"Кандидат отобран",
			fmt.Sprintf("Кандидат %s отобран для интервью", candidate.GetFullName()),
			models.NotificationTypeCandidateShortlisted,
			uploadID,
		)
		if err != nil {
			logger.WithError(err).
				WithField("user_id", hr.ID).
				Error("ошибка отправки уведомления об отборе")
			return errors.Wrap(err, "резюме отобрано, но уведомления не отправлены")
		}
	}
	return nil
}

func (i impl) upsertApplication(candidateUserID, jobID string) error {
	application, err := i.applicationStore.GetByCandidateAndJob(candidateUserID, jobID)
	if err != nil {
		return err
	}
	if application == nil {
		_, err = i.applicationStore.Create(dbmodels.Application{
			JobID:       jobID,
			CandidateID: candidateUserID,
			Status:      models.ApplicationStatusScreening,
			CoverLetter: "Shortlisted by admin for interview",
			AppliedAt:   time.Now(),
		})
		return err
	}
	// статус двигается только вперед, с поздних этапов не откатываем
	ok, err := application.IsAllowStatusChange(models.ApplicationStatusScreening)
	if err != nil || !ok {
		return nil
	}
	return i.applicationStore.Update(application.ID, map[string]interface{}{
		"status": models.ApplicationStatusScreening,
	})
}

func convertList(list []dbmodels.ResumeUploadExt) []uploadapimodels.UploadView {
	result := make([]uploadapimodels.UploadView, 0, len(list))
	for _, rec := range list {
		result = append(result, uploadapimodels.UploadConvertExt(rec))
	}
	return result
}
