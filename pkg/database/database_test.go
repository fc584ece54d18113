package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Tinaglini/RV-Project/internal/model"
	"github.com/Tinaglini/RV-Project/internal/testutil"
	"github.com/Tinaglini/RV-Project/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestInitDBSQLite(t *testing.T) {
	cfg := &config.DBConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "clients.db"),
		LogLevel:   logger.Silent,
	}

	db, err := InitDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.Same(t, db, GetDB())
	for _, m := range model.All() {
		assert.True(t, db.Migrator().HasTable(m))
	}
}

func TestInitDBRejectsUnknownDriver(t *testing.T) {
	_, err := InitDB(&config.DBConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	require.NoError(t, Seed(ctx, db))
	require.NoError(t, Seed(ctx, db))

	var categories []model.Category
	require.NoError(t, db.Order("id").Find(&categories).Error)
	require.Len(t, categories, 2)
	assert.Equal(t, IndividualCategory, categories[0].Name)

	var services []model.Service
	require.NoError(t, db.Order("id").Find(&services).Error)
	require.Len(t, services, 4)
	assert.Equal(t, model.ServiceRecharge, services[0].Category)
	assert.InDelta(t, 15.0, services[3].Price, 1e-9)
}

func TestResolveDefaultCategory(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)

	id, err := ResolveDefaultCategory(ctx, db, 0)
	require.NoError(t, err)
	assert.Zero(t, id, "no category before seeding")

	require.NoError(t, Seed(ctx, db))

	id, err = ResolveDefaultCategory(ctx, db, 0)
	require.NoError(t, err)
	var individual model.Category
	require.NoError(t, db.Where("name = ?", IndividualCategory).First(&individual).Error)
	assert.Equal(t, individual.ID, id)

	id, err = ResolveDefaultCategory(ctx, db, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(2), id)

	_, err = ResolveDefaultCategory(ctx, db, 99)
	assert.Error(t, err)
}
