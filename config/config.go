package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		// вебхук для уведомлений о 5xx ответах, пусто - отключено
		ErrNotifyURL string `default:"" env:"APP_ERR_NOTIFY_URL"`
		// максимальный размер тела запроса, в мегабайтах
		BodyLimitMB int64 `default:"5" env:"APP_BODY_LIMIT_MB"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"career-coach" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"career-coach" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Auth struct {
		JWTSecret string `default:"secret" env:"AUTH_JWT_SECRET"`
	}
	AI struct {
		// таймаут одной попытки запроса к провайдеру
		RequestTimeoutSec int `default:"60" env:"AI_REQUEST_TIMEOUT_SEC"`
		// рубрика оценки резюме: strict_ats/knockout/europass
		CvRubric string `default:"strict_ats" env:"AI_CV_RUBRIC"`
		// тон интервьюера: hardcore/coach
		InterviewMode string `default:"hardcore" env:"AI_INTERVIEW_MODE"`
		// время хранения логов запросов к ИИ, в днях
		LogRetentionDays int `default:"30" env:"AI_LOG_RETENTION_DAYS"`
		YandexGPT struct {
			IAMToken  string `default:"" env:"AI_YAGPT_IAM_TOKEN"`
			CatalogID string `default:"" env:"AI_YAGPT_CATALOG_ID"`
		}
		Ollama struct {
			OllamaURL   string `default:"http://127.0.0.1:11434/api/generate" env:"AI_OLLAMA_URL"`
			OllamaModel string `default:"deepseek-r1:14b" env:"AI_OLLAMA_MODEL"`
		}
		Gemini struct {
			APIKey   string `default:"" env:"AI_GEMINI_API_KEY"`
			Model    string `default:"gemini-2.5-flash" env:"AI_GEMINI_MODEL"`
			ModelPro string `default:"gemini-2.5-pro" env:"AI_GEMINI_MODEL_PRO"`
		}
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
