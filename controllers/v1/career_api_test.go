package apiv1

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"career-coach-backend/config"
	careerhandler "career-coach-backend/lib/career"
	filestorage "career-coach-backend/lib/file-storage"
	tariffhandler "career-coach-backend/lib/tariff"
	"career-coach-backend/models"
	careerapimodels "career-coach-backend/models/api/career"
)

type fakeCareerHandler struct {
	cvText string
	tier   models.Tier
}

func (f *fakeCareerHandler) AnalyzeCV(ctx context.Context, userID, cvText, jobDescription string, userTier models.Tier) (careerapimodels.RedactedReport, error) {
	f.cvText = cvText
	f.tier = userTier
	return careerapimodels.RedactedReport{}, nil
}

func (f *fakeCareerHandler) RewriteCV(ctx context.Context, userID, cvText string) (careerapimodels.RewriteResult, error) {
	return careerapimodels.RewriteResult{}, nil
}

type fakeTariffHandler struct{}

func (f *fakeTariffHandler) ResolveTier(userID string) models.Tier { return models.TierFree }
func (f *fakeTariffHandler) SetTier(userID string, tier models.Tier, expiresAt time.Time) error {
	return nil
}

type fakeFileStorage struct {
	cv       []byte
	fileName string
}

func (f *fakeFileStorage) UploadCv(ctx context.Context, userID, fileName string, data []byte) error {
	return nil
}

func (f *fakeFileStorage) GetCv(ctx context.Context, userID, fileName string) ([]byte, error) {
	f.fileName = fileName
	return f.cv, nil
}

func TestCareerApiAnalyzeCv(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "secret"
	careerhandler.Instance = &fakeCareerHandler{}
	tariffhandler.Instance = &fakeTariffHandler{}

	newApp := func() *fiber.App {
		app := fiber.New()
		InitCareerApiRouters(app)
		return app
	}

	t.Run(`analyze cv from stored file check`, func(t *testing.T) {
		cvText := "Опытный разработчик Go, десять лет практики в бэкенде и распределённых системах."
		storage := &fakeFileStorage{cv: []byte(cvText)}
		filestorage.Instance = storage
		handler := &fakeCareerHandler{}
		careerhandler.Instance = handler

		body := `{"cv_file_name":"cv.txt","job_description":"бэкенд-разработчик","user_id":"user-1"}`
		req := httptest.NewRequest(fiber.MethodPost, "/career/analyze-cv", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := newApp().Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "cv.txt", storage.fileName)
		require.Equal(t, cvText, handler.cvText)
	})

	t.Run(`stored file without user id check`, func(t *testing.T) {
		filestorage.Instance = &fakeFileStorage{cv: []byte("cv")}

		body := `{"cv_file_name":"cv.txt","job_description":"бэкенд-разработчик"}`
		req := httptest.NewRequest(fiber.MethodPost, "/career/analyze-cv", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := newApp().Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
