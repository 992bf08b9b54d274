package dbmodels

import (
	"recruit-track-backend/models"
	"time"

	"github.com/pkg/errors"
)

type Application struct {
	BaseModel
	JobID       string `gorm:"type:varchar(36);index:idx_candidate_job"`
	Job         *Job   `gorm:"foreignKey:JobID"`
	CandidateID string `gorm:"type:varchar(36);index:idx_candidate_job"` // ид пользователя-кандидата
	Status      models.ApplicationStatus `gorm:"type:varchar(50)"`
	CoverLetter string
	AppliedAt   time.Time
}

// IsAllowStatusChange проверяет переход по воронке подбора
func (a Application) IsAllowStatusChange(newStatus models.ApplicationStatus) (bool, error) {
	if !newStatus.IsValid() {
		return false, errors.New("неизвестный статус")
	}
	if a.Status == newStatus {
		return false, nil
	}
	if a.Status.IsTerminal() {
		return false, errors.New("смена статуса недоступна, по кандидату уже принято решение")
	}
	if !a.Status.CanAdvanceTo(newStatus) {
		return false, errors.New("смена статуса недоступна, этапы воронки идут только вперед")
	}
	return true, nil
}
