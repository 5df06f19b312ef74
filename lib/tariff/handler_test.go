package tariffhandler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"career-coach-backend/models"
	dbmodels "career-coach-backend/models/db"
)

type fakeStore struct {
	rec *dbmodels.UserTariff
	err error
}

func (f *fakeStore) GetByUserID(userID string) (*dbmodels.UserTariff, error) {
	return f.rec, f.err
}

func (f *fakeStore) Upsert(rec dbmodels.UserTariff) (string, error) {
	f.rec = &rec
	return rec.ID, f.err
}

func TestResolveTier(t *testing.T) {
	t.Run(`active pro tariff check`, func(t *testing.T) {
		handler := NewInstance(&fakeStore{rec: &dbmodels.UserTariff{
			UserID:    "u1",
			Tier:      models.TierPro,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}})
		require.Equal(t, models.TierPro, handler.ResolveTier("u1"))
	})

	t.Run(`expired tariff falls back to free check`, func(t *testing.T) {
		handler := NewInstance(&fakeStore{rec: &dbmodels.UserTariff{
			UserID:    "u1",
			Tier:      models.TierPro,
			ExpiresAt: time.Now().Add(-time.Hour),
		}})
		require.Equal(t, models.TierFree, handler.ResolveTier("u1"))
	})

	t.Run(`missing record check`, func(t *testing.T) {
		handler := NewInstance(&fakeStore{})
		require.Equal(t, models.TierFree, handler.ResolveTier("u1"))
	})

	t.Run(`store error check`, func(t *testing.T) {
		handler := NewInstance(&fakeStore{err: errors.New("db down")})
		require.Equal(t, models.TierFree, handler.ResolveTier("u1"))
	})

	t.Run(`empty user id check`, func(t *testing.T) {
		handler := NewInstance(&fakeStore{rec: &dbmodels.UserTariff{Tier: models.TierPro}})
		require.Equal(t, models.TierFree, handler.ResolveTier(""))
	})
}
