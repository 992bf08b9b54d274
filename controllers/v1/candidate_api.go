package apiv1

import (
	"recruit-track-backend/controllers"
	candidatehandler "recruit-track-backend/lib/candidate"
	xlsexport "recruit-track-backend/lib/export/xls"
	matchinghandler "recruit-track-backend/lib/matching"
	"recruit-track-backend/middleware"
	apimodels "recruit-track-backend/models/api"
	candidateapimodels "recruit-track-backend/models/api/candidate"
	dbmodels "recruit-track-backend/models/db"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidates", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Route("profile", func(profile fiber.Router) {
			profile.Post("", controller.createProfile)
			profile.Put("", controller.updateProfile)
			profile.Get("", controller.myProfile)
			profile.Post("completion", controller.calculateCompletion)
		})
		router.Route("projects", func(projects fiber.Router) {
			projects.Post("", controller.addProject)
			projects.Get("", controller.listProjects)
			projects.Put(":id", controller.updateProject)
			projects.Delete(":id", controller.deleteProject)
		})
		router.Route("achievements", func(achievements fiber.Router) {
			achievements.Post("", controller.addAchievement)
			achievements.Get("", controller.listAchievements)
			achievements.Delete(":id", controller.deleteAchievement)
		})
		hr := router.Use(middleware.HrOrAdminRequired())
		hr.Get("", controller.list)
		hr.Post("search", controller.search)
		hr.Get("export/xls", controller.exportXls)
		hr.Get("match/:jobId", controller.match)
	})
}

// @Summary Создать профиль кандидата
// @Tags Кандидаты
// @Description Создать профиль кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		candidateapimodels.ProfileData	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/profile [post]
func (c *candidateApiController) createProfile(ctx *fiber.Ctx) error {
	var payload candidateapimodels.ProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := candidatehandler.Instance.CreateProfile(middleware.GetUserID(ctx), payload)
	if err != nil {
		if errors.Is(err, candidatehandler.ErrProfileAlreadyExists) {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновить профиль кандидата
// @Tags Кандидаты
// @Description Обновить профиль кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		candidateapimodels.ProfileData	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/profile [put]
func (c *candidateApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload candidateapimodels.ProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := candidatehandler.Instance.UpdateProfile(middleware.GetUserID(ctx), payload)
	if err != nil {
		if errors.Is(err, candidatehandler.ErrProfileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Профиль текущего кандидата
// @Tags Кандидаты
// @Description Профиль текущего кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.ProfileView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/profile [get]
func (c *candidateApiController) myProfile(ctx *fiber.Ctx) error {
	resp, err := candidatehandler.Instance.GetProfile(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("профиль кандидата не найден"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Пересчитать заполненность профиля
// @Tags Кандидаты
// @Description Пересчитать заполненность профиля
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CompletionView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/profile/completion [post]
func (c *candidateApiController) calculateCompletion(ctx *fiber.Ctx) error {
	resp, err := candidatehandler.Instance.CalculateCompletion(middleware.GetUserID(ctx))
	if err != nil {
		if errors.Is(err, candidatehandler.ErrProfileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Добавить проект
// @Tags Кандидаты
// @Description Добавить проект в профиль кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		candidateapimodels.ProjectData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/projects [post]
func (c *candidateApiController) addProject(ctx *fiber.Ctx) error {
	var payload candidateapimodels.ProjectData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := candidatehandler.Instance.AddProject(middleware.GetUserID(ctx), payload)
	if err != nil {
		if errors.Is(err, candidatehandler.ErrProfileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список проектов
// @Tags Кандидаты
// @Description Список проектов кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.CandidateProject}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/projects [get]
func (c *candidateApiController) listProjects(ctx *fiber.Ctx) error {
	resp, err := candidatehandler.Instance.ListProjects(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновить проект
// @Tags Кандидаты
// @Description Обновить проект в профиле кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид проекта"
// @Param	body				body		candidateapimodels.ProjectData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/projects/{id} [put]
func (c *candidateApiController) updateProject(ctx *fiber.Ctx) error {
	var payload candidateapimodels.ProjectData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := candidatehandler.Instance.UpdateProject(middleware.GetUserID(ctx), ctx.Params("id"), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Удалить проект
// @Tags Кандидаты
// @Description Удалить проект из профиля кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид проекта"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/projects/{id} [delete]
func (c *candidateApiController) deleteProject(ctx *fiber.Ctx) error {
	err := candidatehandler.Instance.DeleteProject(middleware.GetUserID(ctx), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Добавить достижение
// @Tags Кандидаты
// @Description Добавить достижение в профиль кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		candidateapimodels.AchievementData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/achievements [post]
func (c *candidateApiController) addAchievement(ctx *fiber.Ctx) error {
	var payload candidateapimodels.AchievementData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := candidatehandler.Instance.AddAchievement(middleware.GetUserID(ctx), payload)
	if err != nil {
		if errors.Is(err, candidatehandler.ErrProfileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список достижений
// @Tags Кандидаты
// @Description Список достижений кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.CandidateAchievement}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/achievements [get]
func (c *candidateApiController) listAchievements(ctx *fiber.Ctx) error {
	resp, err := candidatehandler.Instance.ListAchievements(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удалить достижение
// @Tags Кандидаты
// @Description Удалить достижение из профиля кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"ид достижения"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/achievements/{id} [delete]
func (c *candidateApiController) deleteAchievement(ctx *fiber.Ctx) error {
	err := candidatehandler.Instance.DeleteAchievement(middleware.GetUserID(ctx), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// @Summary Список кандидатов
// @Tags Кандидаты
// @Description Список всех кандидатов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.ProfileView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	resp, err := candidatehandler.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Поиск кандидатов
// @Tags Кандидаты
// @Description Поиск кандидатов по фильтру
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		dbmodels.CandidateFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/search [post]
func (c *candidateApiController) search(ctx *fiber.Ctx) error {
	var payload dbmodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := candidatehandler.Instance.Search(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка кандидатов в xlsx
// @Tags Кандидаты
// @Description Выгрузка списка кандидатов в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/export/xls [get]
func (c *candidateApiController) exportXls(ctx *fiber.Ctx) error {
	list, err := candidatehandler.Instance.ListExt()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := xlsexport.Instance.ExportCandidateList(list)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="candidates.xlsx"`)
	return ctx.SendStream(buf)
}

// @Summary Подбор кандидатов под вакансию
// @Tags Кандидаты
// @Description Подбор кандидатов под вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	jobId				path		string	true	"ид вакансии"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.MatchView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/match/{jobId} [get]
func (c *candidateApiController) match(ctx *fiber.Ctx) error {
	resp, err := matchinghandler.Instance.MatchCandidatesForJob(ctx.Params("jobId"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
