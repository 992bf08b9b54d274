package authapimodels

import (
	"net/mail"
	"recruit-track-backend/models"

	"github.com/pkg/errors"
)

type SignUpRequest struct {
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Role        models.UserRole `json:"role"`
	PhoneNumber string          `json:"phone_number"`
}

func (r SignUpRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if len(r.Password) < 8 {
		return errors.New("пароль должен содержать не менее 8 символов")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("не указаны имя и фамилия")
	}
	if !r.Role.IsValid() {
		return errors.New("неизвестная роль")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	return nil
}

type SignUpResponse struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
}

type JWTResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refresh_token"`
	UserID       string          `json:"user_id"`
	Role         models.UserRole `json:"role"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
}

type UserView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        string `json:"role"`
	RoleName    string `json:"role_name"`
	PhoneNumber string `json:"phone_number"`
}
