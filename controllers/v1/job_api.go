package apiv1

import (
	"recruit-track-backend/controllers"
	jobhandler "recruit-track-backend/lib/job"
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/middleware"
	apimodels "recruit-track-backend/models/api"
	jobapimodels "recruit-track-backend/models/api/job"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		// регистрируется раньше ":id", иначе fiber примет "my" за ид
		router.Get("my/applications", controller.myApplications)
		router.Get(":id", controller.getByID)
		hr := router.Use(middleware.HrOrAdminRequired())
		hr.Get(":id/applications", controller.applications)
		admin := router.Use(middleware.AdminRequired())
		admin.Post("", controller.create)
		admin.Post(":id/close", controller.close)
	})
}

// @Summary Список вакансий
// @Tags Вакансии
// @Description Список вакансий
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	resp, err := jobhandler.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получить вакансию
// @Tags Вакансии
// @Description Получить вакансию по ид
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид вакансии"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id} [get]
func (c *jobApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := jobhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("вакансия не найдена"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создать вакансию
// @Tags Вакансии
// @Description Создать вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := jobhandler.Instance.Create(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload)
	if err != nil {
		if errors.Is(err, authutils.ErrForbidden) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Отклики по вакансии
// @Tags Вакансии
// @Description Список откликов по вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид вакансии"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.ApplicationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id}/applications [get]
func (c *jobApiController) applications(ctx *fiber.Ctx) error {
	resp, err := jobhandler.Instance.Applications(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Мои отклики
// @Tags Вакансии
// @Description Отклики текущего кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.ApplicationView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/my/applications [get]
func (c *jobApiController) myApplications(ctx *fiber.Ctx) error {
	resp, err := jobhandler.Instance.MyApplications(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Закрыть вакансию
// @Tags Вакансии
// @Description Закрыть вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид вакансии"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id}/close [post]
func (c *jobApiController) close(ctx *fiber.Ctx) error {
	err := jobhandler.Instance.Close(middleware.GetUserRole(ctx), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, authutils.ErrForbidden) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
