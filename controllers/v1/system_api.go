package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"career-coach-backend/controllers"
	"career-coach-backend/db"
	apimodels "career-coach-backend/models/api"
)

type systemApiController struct {
	controllers.BaseAPIController
}

func InitSystemApiRouters(app *fiber.App) {
	controller := systemApiController{}
	app.Get("health", controller.Health)
}

// @Summary Проверка работоспособности сервиса
// @Tags Система
// @Description Проверка доступности сервиса и подключения к БД
// @Success 200 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /health [get]
func (c *systemApiController) Health(ctx *fiber.Ctx) error {
	if err := db.PingDB(); err != nil {
		c.GetLogger(ctx).WithError(err).Error("проверка БД не пройдена")
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("база данных недоступна"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}
