package achievementstore

import (
	dbmodels "recruit-track-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.CandidateAchievement) (id string, err error)
	Delete(id string) error
	GetByID(id string) (rec *dbmodels.CandidateAchievement, err error)
	List(candidateUserID string) (list []dbmodels.CandidateAchievement, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateAchievement) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.CandidateAchievement{}).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.CandidateAchievement, err error) {
	err = i.db.Model(dbmodels.CandidateAchievement{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) List(candidateUserID string) (list []dbmodels.CandidateAchievement, err error) {
	list = []dbmodels.CandidateAchievement{}
	err = i.db.Model(dbmodels.CandidateAchievement{}).
		Where("candidate_id = ?", candidateUserID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
