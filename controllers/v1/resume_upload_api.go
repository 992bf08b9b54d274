package apiv1

import (
	"io"
	"recruit-track-backend/controllers"
	resumeuploadhandler "recruit-track-backend/lib/resume-upload"
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/middleware"
	apimodels "recruit-track-backend/models/api"
	uploadapimodels "recruit-track-backend/models/api/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type resumeUploadApiController struct {
	controllers.BaseAPIController
}

func InitResumeUploadApiRouters(app *fiber.App) {
	controller := resumeUploadApiController{}
	app.Route("resume-uploads", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		hr := router.Use(middleware.HrOrAdminRequired())
		hr.Post("", controller.upload)
		hr.Get("", controller.list)
		hr.Get("candidate/:candidateId", controller.listByCandidate)
		admin := router.Use(middleware.AdminRequired())
		admin.Post(":id/shortlist", controller.shortlist)
	})
}

// @Summary Загрузить резюме
// @Tags Резюме
// @Description Загрузка файла резюме кандидата (multipart)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	candidate_user_id	formData	string	true	"ид пользователя-кандидата"
// @Param	job_id				formData	string	false	"ид вакансии"
// @Param	notes				formData	string	false	"заметки"
// @Param	file				formData	file	true	"файл резюме"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resume-uploads [post]
func (c *resumeUploadApiController) upload(ctx *fiber.Ctx) error {
	req := uploadapimodels.UploadRequest{
		CandidateUserID: ctx.FormValue("candidate_user_id"),
		JobID:           ctx.FormValue("job_id"),
		Notes:           ctx.FormValue("notes"),
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить файл из запроса"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл"))
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл"))
	}
	id, err := resumeuploadhandler.Instance.Upload(ctx.Context(), middleware.GetUserID(ctx), middleware.GetUserRole(ctx), req, body, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, authutils.ErrForbidden) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		}
		if errors.Is(err, resumeuploadhandler.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список загрузок резюме
// @Tags Резюме
// @Description Список всех загрузок резюме
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]uploadapimodels.UploadView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resume-uploads [get]
func (c *resumeUploadApiController) list(ctx *fiber.Ctx) error {
	resp, err := resumeuploadhandler.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Загрузки резюме кандидата
// @Tags Резюме
// @Description Загрузки резюме по профилю кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	candidateId			path		string	true	"ид профиля кандидата"
// @Success 200 {object} apimodels.Response{data=[]uploadapimodels.UploadView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resume-uploads/candidate/{candidateId} [get]
func (c *resumeUploadApiController) listByCandidate(ctx *fiber.Ctx) error {
	resp, err := resumeuploadhandler.Instance.ListByCandidate(ctx.Params("candidateId"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отобрать кандидата
// @Tags Резюме
// @Description Отбор кандидата по загруженному резюме
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид загрузки"
// @Param	body				body		uploadapimodels.ShortlistRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resume-uploads/{id}/shortlist [post]
func (c *resumeUploadApiController) shortlist(ctx *fiber.Ctx) error {
	var payload uploadapimodels.ShortlistRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := resumeuploadhandler.Instance.Shortlist(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), ctx.Params("id"), payload)
	if err != nil {
		if errors.Is(err, authutils.ErrForbidden) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		}
		if errors.Is(err, resumeuploadhandler.ErrUploadNotFound) || errors.Is(err, resumeuploadhandler.ErrCandidateNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}
