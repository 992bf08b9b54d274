package dbmodels

import (
	"recruit-track-backend/models"

	"github.com/lib/pq"
)

type Job struct {
	BaseModel
	Title              string `gorm:"type:varchar(255)"`
	Role               string `gorm:"type:varchar(255)"`
	Department         string `gorm:"type:varchar(255)"`
	Location           string `gorm:"type:varchar(255)"`
	Description        string
	RequiredSkills     pq.StringArray `gorm:"type:text[]"`
	ExperienceRequired int            // требуемый опыт в годах
	SalaryFrom         int
	SalaryTo           int
	Status             models.JobStatus `gorm:"type:varchar(50)"`
	PostedBy           string           `gorm:"type:varchar(36)"`
	Poster             *User            `gorm:"foreignKey:PostedBy"`
}

type JobExt struct {
	Job
	PosterFirstName string
	PosterLastName  string
}
