package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"career-coach-backend/controllers"
	psychohandler "career-coach-backend/lib/psychometric"
	"career-coach-backend/middleware"
	apimodels "career-coach-backend/models/api"
	psychoapimodels "career-coach-backend/models/api/psychometric"
)

type psychometricApiController struct {
	controllers.BaseAPIController
}

func InitPsychometricApiRouters(app *fiber.App) {
	controller := psychometricApiController{}
	app.Route("psychometric", func(router fiber.Router) {
		router.Use(middleware.OptionalAuthorization())
		router.Post("submit", controller.Submit)
	})
}

// @Summary Обработка ответов психометрического опросника
// @Tags Психометрия
// @Description Подсчёт баллов DASS-21/Flow/Big5 и формирование ИИ-отчёта
// @Param	body body	psychoapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=psychoapimodels.SubmitResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/psychometric/submit [post]
func (c *psychometricApiController) Submit(ctx *fiber.Ctx) error {
	var payload psychoapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.UserID == "" {
		payload.UserID = middleware.GetUserID(ctx)
	}

	resp, err := psychohandler.Instance.Submit(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обработки психометрического опросника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
