package dbmodels

import (
	"recruit-track-backend/models"
	"time"
)

type ResumeUpload struct {
	BaseModel
	CandidateID string            `gorm:"type:varchar(36);index"` // ид профиля кандидата
	Candidate   *CandidateProfile `gorm:"foreignKey:CandidateID"`
	UploadedBy  string            `gorm:"type:varchar(36)"`
	Uploader    *User             `gorm:"foreignKey:UploadedBy"`
	JobID       *string           `gorm:"type:varchar(36)"`
	Job         *Job              `gorm:"foreignKey:JobID"`
	FileName    string            `gorm:"type:varchar(255)"`
	FileURL     string            `gorm:"type:varchar(512)"`
	FileSize    int64
	Notes       string
	Status      models.ResumeUploadStatus `gorm:"type:varchar(50)"`
	ReviewedBy  *string                   `gorm:"type:varchar(36)"`
	ReviewedAt  *time.Time
	ReviewNotes string
}

type ResumeUploadExt struct {
	ResumeUpload
	CandidateFirstName string
	CandidateLastName  string
	CandidateEmail     string
	UploaderFirstName  string
	UploaderLastName   string
	JobTitle           string
	ReviewerFirstName  string
	ReviewerLastName   string
}
