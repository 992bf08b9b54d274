package dbmodels

import (
	"fmt"
	"recruit-track-backend/models"
	"time"
)

type User struct {
	BaseModel
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	Password    string `gorm:"type:varchar(128)"` // bcrypt-хэш
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Role        models.UserRole `gorm:"type:varchar(50)"`
	PhoneNumber string          `gorm:"type:varchar(20)"`
	IsActive    bool
	LastLogin   time.Time
}

func (u User) GetFullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
