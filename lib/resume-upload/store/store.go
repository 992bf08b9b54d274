package resumeuploadstore

import (
	dbmodels "recruit-track-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.ResumeUpload) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.ResumeUpload, err error)
	List() (list []dbmodels.ResumeUploadExt, err error)
	ListByCandidate(candidateID string) (list []dbmodels.ResumeUploadExt, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ResumeUpload) (string, error) {
	err := i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ResumeUpload{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.ResumeUpload, error) {
	rec := dbmodels.ResumeUpload{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List() (list []dbmodels.ResumeUploadExt, err error) {
	list = []dbmodels.ResumeUploadExt{}
	err = i.db.
		Select(extSelect).
		Model(&dbmodels.ResumeUpload{}).
		Joins("left join candidate_profiles as cp on resume_uploads.candidate_id = cp.id").
		Joins("left join users as cu on cp.user_id = cu.id").
		Joins("left join users as up on resume_uploads.uploaded_by = up.id").
		Joins("left join users as rv on resume_uploads.reviewed_by = rv.id").
		Joins("left join jobs as j on resume_uploads.job_id = j.id").
		Order("resume_uploads.created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.ResumeUploadExt, err error) {
	list = []dbmodels.ResumeUploadExt{}
	err = i.db.
		Select(extSelect).
		Model(&dbmodels.ResumeUpload{}).
		Joins("left join candidate_profiles as cp on resume_uploads.candidate_id = cp.id").
		Joins("left join users as cu on cp.user_id = cu.id").
		Joins("left join users as up on resume_uploads.uploaded_by = up.id").
		Joins("left join users as rv on resume_uploads.reviewed_by = rv.id").
		Joins("left join jobs as j on resume_uploads.job_id = j.id").
		Where("resume_uploads.candidate_id = ?", candidateID).
		Order("resume_uploads.created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

const extSelect = "resume_uploads.*, " +
	"cu.first_name as candidate_first_name, cu.last_name as candidate_last_name, cu.email as candidate_email, " +
	"up.first_name as uploader_first_name, up.last_name as uploader_last_name, " +
	"j.title as job_title, " +
	"rv.first_name as reviewer_first_name, rv.last_name as reviewer_last_name"
