package apiv1

import (
	"recruit-track-backend/controllers"
	queryhandler "recruit-track-backend/lib/query"
	"recruit-track-backend/middleware"
	apimodels "recruit-track-backend/models/api"
	queryapimodels "recruit-track-backend/models/api/query"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type queryApiController struct {
	controllers.BaseAPIController
}

func InitQueryApiRouters(app *fiber.App) {
	controller := queryApiController{}
	app.Route("queries", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.create)
		router.Get("", controller.listForUser)
		router.Post(":id/respond", controller.respond)
		router.Post(":id/status", controller.updateStatus)
		router.Post("responses/:id/read", controller.markResponseAsRead)
	})
}

// @Summary Создать обращение
// @Tags Обращения
// @Description Создать обращение к другому пользователю
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		queryapimodels.QueryData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/queries [post]
func (c *queryApiController) create(ctx *fiber.Ctx) error {
	var payload queryapimodels.QueryData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := queryhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обращения пользователя
// @Tags Обращения
// @Description Отправленные и полученные обращения текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]queryapimodels.QueryView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/queries [get]
func (c *queryApiController) listForUser(ctx *fiber.Ctx) error {
	resp, err := queryhandler.Instance.ListForUser(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Ответить на обращение
// @Tags Обращения
// @Description Ответить на обращение
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид обращения"
// @Param	body				body		queryapimodels.RespondRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/queries/{id}/respond [post]
func (c *queryApiController) respond(ctx *fiber.Ctx) error {
	var payload queryapimodels.RespondRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := queryhandler.Instance.Respond(middleware.GetUserID(ctx), ctx.Params("id"), payload)
	if err != nil {
		if errors.Is(err, queryhandler.ErrQueryNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Сменить статус обращения
// @Tags Обращения
// @Description Сменить статус обращения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид обращения"
// @Param	body				body		queryapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/queries/{id}/status [post]
func (c *queryApiController) updateStatus(ctx *fiber.Ctx) error {
	var payload queryapimodels.StatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := queryhandler.Instance.UpdateStatus(ctx.Params("id"), payload.Status)
	if err != nil {
		if errors.Is(err, queryhandler.ErrQueryNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Отметить ответ прочитанным
// @Tags Обращения
// @Description Отметить ответ на обращение прочитанным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид ответа"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/queries/responses/{id}/read [post]
func (c *queryApiController) markResponseAsRead(ctx *fiber.Ctx) error {
	err := queryhandler.Instance.MarkResponseAsRead(middleware.GetUserID(ctx), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, queryhandler.ErrResponseNotFound) || errors.Is(err, queryhandler.ErrQueryNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
