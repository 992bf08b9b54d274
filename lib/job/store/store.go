package jobstore

import (
	dbmodels "recruit-track-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.JobExt, err error)
	List() (list []dbmodels.JobExt, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (string, error) {
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
		Model(&dbmodels.Job{}).
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

func (i impl) GetByID(id string) (*dbmodels.JobExt, error) {
	rec := dbmodels.JobExt{}
	err := i.db.
		Select("jobs.*, u.first_name as poster_first_name, u.last_name as poster_last_name").
		Model(&dbmodels.Job{}).
		Joins("left join users as u on jobs.posted_by = u.id").
		Where("jobs.id = ?", id).
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

func (i impl) List() (list []dbmodels.JobExt, err error) {
	list = []dbmodels.JobExt{}
	err = i.db.
		Select("jobs.*, u.first_name as poster_first_name, u.last_name as poster_last_name").
		Model(&dbmodels.Job{}).
		Joins("left join users as u on jobs.posted_by = u.id").
		Order("jobs.created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
