package candidatestore

import (
	dbmodels "recruit-track-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.CandidateProfile) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	UpdateByUserID(userID string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.CandidateProfile, err error)
	GetByUserID(userID string) (rec *dbmodels.CandidateProfileExt, err error)
	ExistByUserID(userID string) (bool, error)
	List() (list []dbmodels.CandidateProfileExt, err error)
	ListByFilter(filter dbmodels.CandidateFilter) (list []dbmodels.CandidateProfileExt, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateProfile) (string, error) {
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
		Model(&dbmodels.CandidateProfile{}).
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

func (i impl) UpdateByUserID(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.CandidateProfile{}).
		Where("user_id = ?", userID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) GetByID(id string) (rec *dbmodels.CandidateProfile, err error) {
	err = i.db.Model(dbmodels.CandidateProfile{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) GetByUserID(userID string) (*dbmodels.CandidateProfileExt, error) {
	rec := dbmodels.CandidateProfileExt{}
	err := i.db.
		Select("candidate_profiles.*, u.first_name, u.last_name, u.email, u.phone_number").
		Model(&dbmodels.CandidateProfile{}).
		Joins("left join users as u on candidate_profiles.user_id = u.id").
		Where("candidate_profiles.user_id = ?", userID).
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

func (i impl) ExistByUserID(userID string) (bool, error) {
	var exists bool
	err := i.db.Model(&dbmodels.CandidateProfile{}).
		Select("count(*) > 0").
		Where("user_id = ?", userID).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) List() (list []dbmodels.CandidateProfileExt, err error) {
	list = []dbmodels.CandidateProfileExt{}
	err = i.db.
		Select("candidate_profiles.*, u.first_name, u.last_name, u.email, u.phone_number").
		Model(&dbmodels.CandidateProfile{}).
		Joins("left join users as u on candidate_profiles.user_id = u.id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByFilter(filter dbmodels.CandidateFilter) (list []dbmodels.CandidateProfileExt, err error) {
	list = []dbmodels.CandidateProfileExt{}
	tx := i.db.
		Select("candidate_profiles.*, u.first_name, u.last_name, u.email, u.phone_number").
		Model(&dbmodels.CandidateProfile{}).
		Joins("left join users as u on candidate_profiles.user_id = u.id")
	i.addFilter(tx, filter)
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.CandidateFilter) {
	if filter.Location != "" {
		tx.Where("LOWER(candidate_profiles.location) like ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.MinExperience != nil {
		tx.Where("candidate_profiles.experience >= ?", *filter.MinExperience)
	}
	if filter.MaxExperience != nil {
		tx.Where("candidate_profiles.experience <= ?", *filter.MaxExperience)
	}
	if filter.WorkPreference != "" {
		tx.Where("candidate_profiles.work_preference = ?", filter.WorkPreference)
	}
	if filter.IsActivelyLooking != nil {
		tx.Where("candidate_profiles.is_actively_looking = ?", *filter.IsActivelyLooking)
	}
	// фильтр по навыкам — нечеткое совпадение подстрок, применяется в обработчике
}
