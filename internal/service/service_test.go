package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/akiram/casting-agency/internal/models"
	"github.com/akiram/casting-agency/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Movie{}, &models.Actor{}))

	return db
}

func newServices(t *testing.T) (*MovieService, *ActorService) {
	t.Helper()

	store := &repo.GormRepo{DB: newTestDB(t)}
	return &MovieService{Repo: store}, &ActorService{Repo: store}
}
