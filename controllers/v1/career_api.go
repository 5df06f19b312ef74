package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"career-coach-backend/controllers"
	careerhandler "career-coach-backend/lib/career"
	filestorage "career-coach-backend/lib/file-storage"
	tariffhandler "career-coach-backend/lib/tariff"
	textextract "career-coach-backend/lib/text-extract"
	"career-coach-backend/middleware"
	apimodels "career-coach-backend/models/api"
	careerapimodels "career-coach-backend/models/api/career"
)

type careerApiController struct {
	controllers.BaseAPIController
}

func InitCareerApiRouters(app *fiber.App) {
	controller := careerApiController{}
	app.Route("career", func(router fiber.Router) {
		router.Use(middleware.OptionalAuthorization())
		router.Post("analyze-cv", controller.AnalyzeCv)
		router.Post("rewrite-cv", controller.RewriteCv)
	})
}

// @Summary Оценка резюме против вакансии
// @Tags Карьера
// @Description Оценка резюме ATS-движком, для бесплатного тарифа отчёт урезается
// @Param	body body	careerapimodels.AnalyzeCvRequest	true	"request body"
// @Param   cv_file	formData	file	false	"Файл резюме (txt/md), вместо cv_text"
// @Success 200 {object} apimodels.Response{data=careerapimodels.RedactedReport}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/career/analyze-cv [post]
func (c *careerApiController) AnalyzeCv(ctx *fiber.Ctx) error {
	var payload careerapimodels.AnalyzeCvRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := c.resolveUserID(ctx, payload.UserID)

	cvText, hErr := c.cvTextFromFile(ctx, userID)
	if hErr != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hErr))
	}
	if cvText == "" && payload.CvText == "" && payload.CvFileName != "" {
		cvText, hErr = c.cvTextFromStorage(ctx, userID, payload.CvFileName)
		if hErr != "" {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hErr))
		}
	}
	if cvText != "" {
		payload.CvText = cvText
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	tier := tariffhandler.Instance.ResolveTier(userID)
	report, err := careerhandler.Instance.AnalyzeCV(ctx.UserContext(), userID, payload.CvText, payload.JobDescription, tier)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка оценки резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(report))
}

// @Summary Переписывание слабых пунктов резюме
// @Tags Карьера
// @Description Переписывание пунктов резюме по методу STAR
// @Param	body body	careerapimodels.RewriteCvRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=careerapimodels.RewriteResult}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/career/rewrite-cv [post]
func (c *careerApiController) RewriteCv(ctx *fiber.Ctx) error {
	var payload careerapimodels.RewriteCvRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := c.resolveUserID(ctx, payload.UserID)
	result, err := careerhandler.Instance.RewriteCV(ctx.UserContext(), userID, payload.CvText)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка переписывания резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

func (c *careerApiController) resolveUserID(ctx *fiber.Ctx, fromPayload string) string {
	if userID := middleware.GetUserID(ctx); userID != "" {
		return userID
	}
	return fromPayload
}

// cvTextFromFile извлекает текст резюме из приложенного файла,
// пустой результат означает, что файл не передан
func (c *careerApiController) cvTextFromFile(ctx *fiber.Ctx, userID string) (string, string) {
	file, err := ctx.FormFile("cv_file")
	if err != nil || file == nil {
		return "", ""
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Ошибка при получении файла резюме")
		return "", "не удалось открыть файл резюме"
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("Ошибка при загрузке файла резюме")
		return "", "не удалось прочитать файл резюме"
	}

	text, err := textextract.ExtractText(file.Filename, fileBody)
	if err != nil {
		return "", err.Error()
	}
	if userID != "" && filestorage.Instance != nil {
		if err = filestorage.Instance.UploadCv(ctx.UserContext(), userID, file.Filename, fileBody); err != nil {
			log.WithError(err).Error("Ошибка сохранения файла резюме в хранилище")
		}
	}
	return text, ""
}

// cvTextFromStorage извлекает текст из ранее загруженного файла резюме
func (c *careerApiController) cvTextFromStorage(ctx *fiber.Ctx, userID, fileName string) (string, string) {
	if userID == "" {
		return "", "для использования сохранённого резюме нужна авторизация или user_id"
	}
	if filestorage.Instance == nil {
		return "", "хранилище файлов недоступно"
	}
	fileBody, err := filestorage.Instance.GetCv(ctx.UserContext(), userID, fileName)
	if err != nil {
		log.
			WithField("file_name", fileName).
			WithError(err).
			Error("Ошибка чтения файла резюме из хранилища")
		return "", "не удалось получить сохранённое резюме"
	}
	text, err := textextract.ExtractText(fileName, fileBody)
	if err != nil {
		return "", err.Error()
	}
	return text, ""
}
