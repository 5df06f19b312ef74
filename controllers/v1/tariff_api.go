package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"career-coach-backend/controllers"
	tariffhandler "career-coach-backend/lib/tariff"
	"career-coach-backend/middleware"
	"career-coach-backend/models"
	apimodels "career-coach-backend/models/api"
)

type tariffApiController struct {
	controllers.BaseAPIController
}

func InitTariffApiRouters(app *fiber.App) {
	controller := tariffApiController{}
	app.Route("tariff", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.Get)
		router.Put("", controller.Set)
	})
}

type setTariffRequest struct {
	Tier      string     `json:"tier"`       // free/pro
	ExpiresAt *time.Time `json:"expires_at"` // для pro обязательно
}

func (r setTariffRequest) Validate() error {
	if models.Tier(r.Tier) == models.TierPro && r.ExpiresAt == nil {
		return errors.New("для платного тарифа не указана дата окончания")
	}
	return nil
}

// @Summary Действующий тариф пользователя
// @Tags Тариф
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/tariff [get]
func (c *tariffApiController) Get(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("пользователь не идентифицирован"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tariffhandler.Instance.ResolveTier(userID)))
}

// @Summary Смена тарифа пользователя
// @Tags Тариф
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	setTariffRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tariff [put]
func (c *tariffApiController) Set(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("пользователь не идентифицирован"))
	}
	var payload setTariffRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	tier := models.ParseTier(payload.Tier)
	expiresAt := time.Now().AddDate(100, 0, 0)
	if payload.ExpiresAt != nil {
		expiresAt = *payload.ExpiresAt
	}
	if err := tariffhandler.Instance.SetTier(userID, tier, expiresAt); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены тарифа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
