package tariffhandler

import (
	"time"

	log "github.com/sirupsen/logrus"

	"career-coach-backend/db"
	tariffstore "career-coach-backend/lib/tariff/store"
	"career-coach-backend/models"
	dbmodels "career-coach-backend/models/db"
)

type Provider interface {
	// ResolveTier определяет действующий тариф пользователя,
	// при любой неоднозначности возвращает бесплатный
	ResolveTier(userID string) models.Tier
	SetTier(userID string, tier models.Tier, expiresAt time.Time) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(tariffstore.NewInstance(db.DB))
}

func NewInstance(store tariffstore.Provider) Provider {
	return &impl{
		store: store,
	}
}

type impl struct {
	store tariffstore.Provider
}

func (i *impl) ResolveTier(userID string) models.Tier {
	if userID == "" || i.store == nil {
		return models.TierFree
	}
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка получения тарифа пользователя")
		return models.TierFree
	}
	if rec == nil || !rec.IsActive(time.Now()) {
		return models.TierFree
	}
	return rec.Tier
}

func (i *impl) SetTier(userID string, tier models.Tier, expiresAt time.Time) error {
	_, err := i.store.Upsert(dbmodels.UserTariff{
		UserID:    userID,
		Tier:      tier,
		ExpiresAt: expiresAt,
	})
	return err
}
