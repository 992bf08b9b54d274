package apiv1

import (
	"recruit-track-backend/controllers"
	interviewhandler "recruit-track-backend/lib/interview"
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/middleware"
	apimodels "recruit-track-backend/models/api"
	interviewapimodels "recruit-track-backend/models/api/interview"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interviews", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get(":id", controller.getByID)
		hr := router.Use(middleware.HrOrAdminRequired())
		hr.Get("pending/list", controller.pendingList)
		hr.Post(":id/confirm", controller.confirm)
		admin := router.Use(middleware.AdminRequired())
		admin.Post("", controller.schedule)
	})
}

// @Summary Получить интервью
// @Tags Интервью
// @Description Получить интервью по ид
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид интервью"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [get]
func (c *interviewApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := interviewhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("интервью не найдено"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Назначить интервью
// @Tags Интервью
// @Description Назначить интервью кандидату по вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		interviewapimodels.ScheduleRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [post]
func (c *interviewApiController) schedule(ctx *fiber.Ctx) error {
	var payload interviewapimodels.ScheduleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := interviewhandler.Instance.Schedule(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload)
	if err != nil {
		if errors.Is(err, authutils.ErrForbidden) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		}
		if errors.Is(err, interviewhandler.ErrCandidateNotFound) || errors.Is(err, interviewhandler.ErrJobNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Подтвердить интервью
// @Tags Интервью
// @Description Подтверждение интервью HR-специалистом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид интервью"
// @Param	body				body		interviewapimodels.ConfirmRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/confirm [post]
func (c *interviewApiController) confirm(ctx *fiber.Ctx) error {
	var payload interviewapimodels.ConfirmRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := interviewhandler.Instance.ConfirmByHR(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), ctx.Params("id"), payload)
	if err != nil {
		if errors.Is(err, authutils.ErrForbidden) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		}
		if errors.Is(err, interviewhandler.ErrInterviewNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Предстоящие интервью
// @Tags Интервью
// @Description Список запланированных интервью
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/pending/list [get]
func (c *interviewApiController) pendingList(ctx *fiber.Ctx) error {
	resp, err := interviewhandler.Instance.PendingList()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
