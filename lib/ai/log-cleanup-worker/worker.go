package logcleanupworker

import (
	"context"
	"time"

	"career-coach-backend/config"
	"career-coach-backend/db"
	ailogstore "career-coach-backend/lib/ai/log-store"
	baseworker "career-coach-backend/lib/utils/base-worker"
)

// чистка логов запросов к ИИ старше настроенного срока хранения

const (
	workerName    = "ai_log_cleanup"
	firstRunDelay = 5 * time.Minute
	runInterval   = 24 * time.Hour
)

type impl struct {
	*baseworker.BaseImpl
	store         ailogstore.Provider
	retentionDays int
}

func StartWorker(ctx context.Context) {
	w := impl{
		BaseImpl:      baseworker.NewInstance(workerName, firstRunDelay, runInterval),
		store:         ailogstore.NewInstance(db.DB),
		retentionDays: config.Conf.AI.LogRetentionDays,
	}
	go w.Run(ctx, w.do)
}

func (i impl) do(ctx context.Context) {
	if i.retentionDays <= 0 {
		return
	}
	deadline := time.Now().AddDate(0, 0, -i.retentionDays)
	deleted, err := i.store.DeleteOlderThan(deadline)
	if err != nil {
		i.GetLogger().WithError(err).Error("ошибка удаления устаревших логов ИИ")
		return
	}
	if deleted > 0 {
		i.GetLogger().
			WithField("deleted", deleted).
			Info("удалены устаревшие логи ИИ")
	}
}
