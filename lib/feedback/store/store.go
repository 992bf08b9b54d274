package feedbackstore

import (
	dbmodels "recruit-track-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Feedback) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.Feedback, err error)
	ListByInterview(interviewID string) (list []dbmodels.Feedback, err error)
	ListByCandidate(candidateID string) (list []dbmodels.Feedback, err error)
	ListByJob(jobID string) (list []dbmodels.Feedback, err error)
	List() (list []dbmodels.Feedback, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Feedback) (string, error) {
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
		Model(&dbmodels.Feedback{}).
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

func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Feedback{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Feedback, error) {
	rec := dbmodels.Feedback{}
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

func (i impl) ListByInterview(interviewID string) (list []dbmodels.Feedback, err error) {
	return i.list("interview_id = ?", interviewID)
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.Feedback, err error) {
	return i.list("candidate_id = ?", candidateID)
}

func (i impl) ListByJob(jobID string) (list []dbmodels.Feedback, err error) {
	return i.list("job_id = ?", jobID)
}

func (i impl) List() (list []dbmodels.Feedback, err error) {
	list = []dbmodels.Feedback{}
	err = i.db.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) list(cond string, arg string) (list []dbmodels.Feedback, err error) {
	list = []dbmodels.Feedback{}
	err = i.db.
		Where(cond, arg).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
