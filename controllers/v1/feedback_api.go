package apiv1

import (
	"recruit-track-backend/controllers"
	feedbackhandler "recruit-track-backend/lib/feedback"
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/middleware"
	apimodels "recruit-track-backend/models/api"
	feedbackapimodels "recruit-track-backend/models/api/feedback"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type feedbackApiController struct {
	controllers.BaseAPIController
}

func InitFeedbackApiRouters(app *fiber.App) {
	controller := feedbackApiController{}
	app.Route("feedback", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		hr := router.Use(middleware.HrOrAdminRequired())
		hr.Post("", controller.submit)
		hr.Get("", controller.list)
		hr.Get(":id", controller.getByID)
		hr.Put(":id", controller.update)
		hr.Delete(":id", controller.delete)
		hr.Get("interview/:interviewId", controller.listByInterview)
		hr.Get("candidate/:candidateId", controller.listByCandidate)
		hr.Get("job/:jobId", controller.listByJob)
	})
}

// @Summary Оставить обратную связь
// @Tags Обратная связь
// @Description Обратная связь по итогам интервью
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		feedbackapimodels.FeedbackData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback [post]
func (c *feedbackApiController) submit(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.FeedbackData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := feedbackhandler.Instance.Submit(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload)
	if err != nil {
		if errors.Is(err, authutils.ErrForbidden) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Вся обратная связь
// @Tags Обратная связь
// @Description Вся обратная связь
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.FeedbackView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback [get]
func (c *feedbackApiController) list(ctx *fiber.Ctx) error {
	resp, err := feedbackhandler.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получить обратную связь
// @Tags Обратная связь
// @Description Обратная связь по ид
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид записи"
// @Success 200 {object} apimodels.Response{data=feedbackapimodels.FeedbackView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/{id} [get]
func (c *feedbackApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := feedbackhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("обратная связь не найдена"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновить обратную связь
// @Tags Обратная связь
// @Description Частичное обновление обратной связи
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид записи"
// @Param	body				body		feedbackapimodels.UpdateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/{id} [put]
func (c *feedbackApiController) update(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.UpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := feedbackhandler.Instance.Update(middleware.GetUserRole(ctx), ctx.Params("id"), payload)
	if err != nil {
		if errors.Is(err, authutils.ErrForbidden) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		}
		if errors.Is(err, feedbackhandler.ErrFeedbackNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Удалить обратную связь
// @Tags Обратная связь
// @Description Удалить обратную связь
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид записи"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/{id} [delete]
func (c *feedbackApiController) delete(ctx *fiber.Ctx) error {
	err := feedbackhandler.Instance.Delete(middleware.GetUserRole(ctx), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, authutils.ErrForbidden) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		}
		if errors.Is(err, feedbackhandler.ErrFeedbackNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Обратная связь по интервью
// @Tags Обратная связь
// @Description Обратная связь по интервью
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	interviewId			path		string	true	"ид интервью"
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.FeedbackView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/interview/{interviewId} [get]
func (c *feedbackApiController) listByInterview(ctx *fiber.Ctx) error {
	resp, err := feedbackhandler.Instance.ListByInterview(ctx.Params("interviewId"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обратная связь по кандидату
// @Tags Обратная связь
// @Description Обратная связь по кандидату
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	candidateId			path		string	true	"ид профиля кандидата"
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.FeedbackView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/candidate/{candidateId} [get]
func (c *feedbackApiController) listByCandidate(ctx *fiber.Ctx) error {
	resp, err := feedbackhandler.Instance.ListByCandidate(ctx.Params("candidateId"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обратная связь по вакансии
// @Tags Обратная связь
// @Description Обратная связь по вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	jobId				path		string	true	"ид вакансии"
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.FeedbackView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/job/{jobId} [get]
func (c *feedbackApiController) listByJob(ctx *fiber.Ctx) error {
	resp, err := feedbackhandler.Instance.ListByJob(ctx.Params("jobId"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
