package apiv1

import (
	"recruit-track-backend/controllers"
	notificationhandler "recruit-track-backend/lib/notification"
	"recruit-track-backend/middleware"
	apimodels "recruit-track-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get("unread-count", controller.unreadCount)
		router.Post(":id/read", controller.markAsRead)
	})
}

// @Summary Уведомления пользователя
// @Tags Уведомления
// @Description Список уведомлений текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	resp, err := notificationhandler.Instance.ListForUser(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Количество непрочитанных
// @Tags Уведомления
// @Description Количество непрочитанных уведомлений
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/unread-count [get]
func (c *notificationApiController) unreadCount(ctx *fiber.Ctx) error {
	resp, err := notificationhandler.Instance.UnreadCount(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отметить уведомление прочитанным
// @Tags Уведомления
// @Description Отметить уведомление прочитанным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид уведомления"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/{id}/read [post]
func (c *notificationApiController) markAsRead(ctx *fiber.Ctx) error {
	err := notificationhandler.Instance.MarkAsRead(middleware.GetUserID(ctx), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
