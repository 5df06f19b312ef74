package initializers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"career-coach-backend/config"
	"career-coach-backend/db"
	"career-coach-backend/fiberlog"
	geminiclient "career-coach-backend/lib/ai/gemini-client"
	logcleanupworker "career-coach-backend/lib/ai/log-cleanup-worker"
	ailogstore "career-coach-backend/lib/ai/log-store"
	ollamaclient "career-coach-backend/lib/ai/ollama-client"
	airouter "career-coach-backend/lib/ai/router"
	yagptclient "career-coach-backend/lib/ai/yagpt-client"
	careerhandler "career-coach-backend/lib/career"
	xlsexport "career-coach-backend/lib/export/xls"
	filestorage "career-coach-backend/lib/file-storage"
	interviewhandler "career-coach-backend/lib/interview"
	psychohandler "career-coach-backend/lib/psychometric"
	tariffhandler "career-coach-backend/lib/tariff"
	s3client "career-coach-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	if s3client.Client != nil {
		filestorage.NewInstance(s3client.Client)
	}
	initAiRouter(ctx)
	tariffhandler.NewHandler()
	careerhandler.NewHandler()
	interviewhandler.NewHandler()
	psychohandler.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

func initAiRouter(ctx context.Context) {
	aiConf := config.Conf.AI
	clients := []airouter.Client{
		yagptclient.NewClient(aiConf.YandexGPT.IAMToken, aiConf.YandexGPT.CatalogID),
		ollamaclient.NewClient(aiConf.Ollama.OllamaURL, aiConf.Ollama.OllamaModel),
	}
	gemini, err := geminiclient.NewClient(ctx, aiConf.Gemini.APIKey, aiConf.Gemini.Model)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента Gemini, маршруты без него")
	} else {
		clients = append(clients, gemini)
	}

	airouter.Instance = airouter.NewInstance(clients, airouter.Config{
		AttemptTimeout: time.Second * time.Duration(aiConf.RequestTimeoutSec),
		Routes:         airouter.DefaultRoutes(aiConf.Ollama.OllamaModel, aiConf.Gemini.Model, aiConf.Gemini.ModelPro),
	}, ailogstore.NewInstance(db.DB))
}

func initWorkers(ctx context.Context) {
	// Задача чистки устаревших логов запросов к ИИ
	logcleanupworker.StartWorker(ctx)
}
