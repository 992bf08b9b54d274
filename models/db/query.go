package dbmodels

import (
	"recruit-track-backend/models"
)

type Query struct {
	BaseModel
	FromUserID  string  `gorm:"type:varchar(36);index"`
	FromUser    *User   `gorm:"foreignKey:FromUserID"`
	ToUserID    string  `gorm:"type:varchar(36);index"`
	ToUser      *User   `gorm:"foreignKey:ToUserID"`
	JobID       *string `gorm:"type:varchar(36)"`
	CandidateID *string `gorm:"type:varchar(36)"`
	InterviewID *string `gorm:"type:varchar(36)"`
	Subject     string  `gorm:"type:varchar(255)"`
	Message     string
	Priority    models.QueryPriority `gorm:"type:varchar(20)"`
	Category    models.QueryCategory `gorm:"type:varchar(50)"`
	Status      models.QueryStatus   `gorm:"type:varchar(20)"`
}

type QueryResponse struct {
	BaseModel
	QueryID     string `gorm:"type:varchar(36);index"`
	ResponderID string `gorm:"type:varchar(36)"`
	Message     string
	IsRead      bool
}
