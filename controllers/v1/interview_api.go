package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"career-coach-backend/controllers"
	interviewhandler "career-coach-backend/lib/interview"
	"career-coach-backend/middleware"
	apimodels "career-coach-backend/models/api"
	interviewapimodels "career-coach-backend/models/api/interview"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interview", func(router fiber.Router) {
		router.Use(middleware.OptionalAuthorization())
		router.Post("start", controller.Start)
		router.Post("chat", controller.Chat)
		router.Post("speak", controller.Speak)
	})
}

// @Summary Старт тренировочного интервью
// @Tags Интервью
// @Description Открывает сессию и возвращает первый вопрос интервьюера
// @Param	body body	interviewapimodels.StartRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.ChatResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/start [post]
func (c *interviewApiController) Start(ctx *fiber.Ctx) error {
	var payload interviewapimodels.StartRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := interviewhandler.Instance.Start(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка старта интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Следующая реплика интервьюера
// @Tags Интервью
// @Description Возвращает следующий вопрос интервьюера по истории диалога
// @Param	body body	interviewapimodels.ChatRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.ChatResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/chat [post]
func (c *interviewApiController) Chat(ctx *fiber.Ctx) error {
	var payload interviewapimodels.ChatRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := interviewhandler.Instance.Chat(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения реплики интервьюера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Реплика интервьюера с оценкой ответа
// @Tags Интервью
// @Description То же, что chat, плюс краткая оценка последнего ответа кандидата
// @Param	body body	interviewapimodels.ChatRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.ChatResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/speak [post]
func (c *interviewApiController) Speak(ctx *fiber.Ctx) error {
	var payload interviewapimodels.ChatRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := interviewhandler.Instance.Speak(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения реплики интервьюера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
