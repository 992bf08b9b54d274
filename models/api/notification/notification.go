package notificationapimodels

import (
	dbmodels "recruit-track-backend/models/db"
	"time"
)

type NotificationView struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Type          string    `json:"type"`
	RelatedID     string    `json:"related_id,omitempty"`
	RelatedEntity string    `json:"related_entity,omitempty"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:            rec.ID,
		Title:         rec.Title,
		Message:       rec.Message,
		Type:          string(rec.Type),
		RelatedID:     rec.RelatedID,
		RelatedEntity: string(rec.RelatedEntity()),
		IsRead:        rec.IsRead,
		CreatedAt:     rec.CreatedAt,
	}
}
