package dbmodels

import (
	"recruit-track-backend/models"
	"time"
)

type Interview struct {
	BaseModel
	ApplicationID    string       `gorm:"type:varchar(36);not null;index"`
	Application      *Application `gorm:"foreignKey:ApplicationID"`
	ScheduledDate    time.Time
	InterviewerName  string `gorm:"type:varchar(255)"`
	InterviewerEmail string `gorm:"type:varchar(255)"`
	MeetingLink      string `gorm:"type:varchar(255)"`
	Notes            string // свободный текст, время интервью и отметка HR дописываются сюда же
	Status           models.InterviewStatus `gorm:"type:varchar(50)"`
}

// InterviewExt — интервью с денормализованными данными кандидата и вакансии
type InterviewExt struct {
	Interview
	CandidateFirstName string
	CandidateLastName  string
	CandidateEmail     string
	JobTitle           string
	JobDepartment      string
}
