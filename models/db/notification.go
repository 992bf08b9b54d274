package dbmodels

import (
	"recruit-track-backend/models"
)

type Notification struct {
	BaseModel
	UserID    string `gorm:"type:varchar(36);index"`
	Title     string `gorm:"type:varchar(255)"`
	Message   string
	Type      models.NotificationType `gorm:"type:varchar(50)"`
	RelatedID string                  `gorm:"type:varchar(36)"`
	IsRead    bool
}

// RelatedEntity — тип сущности, на которую указывает RelatedID
func (n Notification) RelatedEntity() models.RelatedEntity {
	return n.Type.RelatedEntity()
}
