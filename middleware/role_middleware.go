package middleware

import (
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	apimodels "recruit-track-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func AdminRequired() fiber.Handler {
	return roleRequired(models.UserRoleAdmin)
}

func HrOrAdminRequired() fiber.Handler {
	return roleRequired(models.UserRoleHR, models.UserRoleAdmin)
}

func CandidateRequired() fiber.Handler {
	return roleRequired(models.UserRoleCandidate)
}

func roleRequired(allowed ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).OneOf(allowed...) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
