package dbmodels

import (
	"recruit-track-backend/models"

	"github.com/pkg/errors"
)

type Feedback struct {
	BaseModel
	InterviewID         string     `gorm:"type:varchar(36);index"`
	Interview           *Interview `gorm:"foreignKey:InterviewID"`
	CandidateID         string     `gorm:"type:varchar(36);index"` // ид профиля кандидата
	JobID               string     `gorm:"type:varchar(36);index"`
	InterviewerID       string     `gorm:"type:varchar(36)"`
	InterviewerName     string     `gorm:"type:varchar(255)"`
	OverallRating       int
	TechnicalSkills     int
	CommunicationSkills int
	ProblemSolving      int
	CulturalFit         int
	Strengths           string
	Weaknesses          string
	Recommendation      models.Recommendation `gorm:"type:varchar(20)"`
	AdditionalComments  string
}

// ValidateRatings проверяет оценки и рекомендацию на границе API
func (f Feedback) ValidateRatings() error {
	ratings := []int{f.OverallRating, f.TechnicalSkills, f.CommunicationSkills, f.ProblemSolving, f.CulturalFit}
	for _, r := range ratings {
		if r < 1 || r > 5 {
			return errors.New("оценка должна быть в диапазоне от 1 до 5")
		}
	}
	if !f.Recommendation.IsValid() {
		return errors.New("недопустимое значение рекомендации")
	}
	return nil
}
