package database

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/forecast-bot/internal/domain"
	"github.com/diegoclair/forecast-bot/internal/domain/contract"
	"github.com/diegoclair/forecast-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_WithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("should commit user and profile together", func(t *testing.T) {
		dm := NewInstance(SetupTestDB(t))

		var profileKey string
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			profile := &entity.Profile{OwnerKey: "1", Name: domain.DefaultProfileName}
			if err := tx.Profile().Create(ctx, profile); err != nil {
				return err
			}
			profileKey = profile.Key
			return tx.User().Create(ctx, &entity.User{Key: "1", ChatID: 1, Language: domain.LangEnglish, DefaultProfileKey: profile.Key})
		})
		require.NoError(t, err)

		user, err := dm.User().Get(ctx, "1")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, profileKey, user.DefaultProfileKey)
	})

	t.Run("should roll back on error", func(t *testing.T) {
		dm := NewInstance(SetupTestDB(t))
		boom := errors.New("boom")

		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.User().Create(ctx, &entity.User{Key: "2", ChatID: 2, Language: domain.LangEnglish}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		user, err := dm.User().Get(ctx, "2")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("should reuse outer transaction when nested", func(t *testing.T) {
		dm := NewInstance(SetupTestDB(t))

		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			return tx.WithTransaction(ctx, func(inner contract.DataManager) error {
				return inner.User().Create(ctx, &entity.User{Key: "3", ChatID: 3, Language: domain.LangEnglish})
			})
		})
		require.NoError(t, err)

		user, err := dm.User().Get(ctx, "3")
		require.NoError(t, err)
		assert.NotNil(t, user)
	})
}
