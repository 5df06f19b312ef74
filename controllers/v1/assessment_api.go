package apiv1

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"career-coach-backend/controllers"
	"career-coach-backend/db"
	assessmentstore "career-coach-backend/lib/assessment/store"
	pdfexport "career-coach-backend/lib/export/pdf"
	xlsexport "career-coach-backend/lib/export/xls"
	"career-coach-backend/middleware"
	"career-coach-backend/models"
	apimodels "career-coach-backend/models/api"
	careerapimodels "career-coach-backend/models/api/career"
)

const assessmentListLimit = 100

type assessmentApiController struct {
	controllers.BaseAPIController
}

func InitAssessmentApiRouters(app *fiber.App) {
	controller := assessmentApiController{}
	app.Route("assessment", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("history", controller.History)
		router.Get("export", controller.Export)
		router.Get(":id/report.pdf", controller.ReportPdf)
	})
}

// @Summary История оценок пользователя
// @Tags Оценки
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   limit		query	int	false	"Максимум записей"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Assessment}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/history [get]
func (c *assessmentApiController) History(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("пользователь не идентифицирован"))
	}
	limit, err := strconv.Atoi(ctx.Query("limit", strconv.Itoa(assessmentListLimit)))
	if err != nil || limit <= 0 || limit > assessmentListLimit {
		limit = assessmentListLimit
	}

	list, err := assessmentstore.NewInstance(db.DB).List(userID, limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения истории оценок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary История оценок. Выгрузить в Excel
// @Tags Оценки
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/export [get]
func (c *assessmentApiController) Export(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("пользователь не идентифицирован"))
	}

	list, err := assessmentstore.NewInstance(db.DB).List(userID, assessmentListLimit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения истории оценок для выгрузки в Excel")
	}
	data, err := xlsexport.Instance.ExportAssessmentList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки истории оценок в Excel")
	}
	fileName := fmt.Sprintf("assessments-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Отчёт об оценке резюме в PDF
// @Tags Оценки
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path	string	true	"ID оценки"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assessment/{id}/report.pdf [get]
func (c *assessmentApiController) ReportPdf(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("пользователь не идентифицирован"))
	}
	recID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	rec, err := assessmentstore.NewInstance(db.DB).GetByID(userID, recID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения оценки")
	}
	if rec == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("оценка не найдена"))
	}
	if rec.Kind != models.AssessmentCvAudit {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("PDF доступен только для оценок резюме"))
	}

	var report careerapimodels.RedactedReport
	if err = json.Unmarshal([]byte(rec.ReportJSON), &report); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка разбора сохранённого отчёта")
	}
	data, err := pdfexport.GenerateAnalysisReportPdf(report)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования PDF с отчётом")
	}
	fileName := fmt.Sprintf("cv-report-%s.pdf", recID)
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}
