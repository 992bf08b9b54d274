package interviewstore

import (
	"recruit-track-backend/models"
	dbmodels "recruit-track-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.InterviewExt, err error)
	ListScheduled() (list []dbmodels.InterviewExt, err error)
	ListActiveByApplication(applicationID string) (list []dbmodels.Interview, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (string, error) {
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
		Model(&dbmodels.Interview{}).
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

func (i impl) GetByID(id string) (*dbmodels.InterviewExt, error) {
	rec := dbmodels.InterviewExt{}
	err := i.db.
		Select(extSelect).
		Model(&dbmodels.Interview{}).
		Joins("left join applications as a on interviews.application_id = a.id").
		Joins("left join users as u on a.candidate_id = u.id").
		Joins("left join jobs as j on a.job_id = j.id").
		Where("interviews.id = ?", id).
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

func (i impl) ListScheduled() (list []dbmodels.InterviewExt, err error) {
	list = []dbmodels.InterviewExt{}
	err = i.db.
		Select(extSelect).
		Model(&dbmodels.Interview{}).
		Joins("left join applications as a on interviews.application_id = a.id").
		Joins("left join users as u on a.candidate_id = u.id").
		Joins("left join jobs as j on a.job_id = j.id").
		Where("interviews.status = ?", models.InterviewStatusScheduled).
		Order("interviews.scheduled_date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListActiveByApplication(applicationID string) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	err = i.db.
		Where("application_id = ?", applicationID).
		Where("status = ?", models.InterviewStatusScheduled).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

const extSelect = "interviews.*, " +
	"u.first_name as candidate_first_name, u.last_name as candidate_last_name, u.email as candidate_email, " +
	"j.title as job_title, j.department as job_department"
