package authutils

import (
	"recruit-track-backend/models"

	"github.com/pkg/errors"
)

var ErrForbidden = errors.New("операция недоступна")

// RequireRole проверяет роль действующего пользователя внутри операции.
// Middleware на маршрутах остается внешним барьером.
func RequireRole(role models.UserRole, allowed ...models.UserRole) error {
	if !role.OneOf(allowed...) {
		return ErrForbidden
	}
	return nil
}
