package services

import (
	"fmt"
	"testing"

	"housing-assist-backend/db/models"
	"housing-assist-backend/importer/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepo spins up an isolated in-memory database per test.
func newTestRepo(t *testing.T) (repositories.ImportRepository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Building{},
		&models.Property{},
		&models.Client{},
		&models.BulkUploadErrorClients{},
		&models.EmailLog{},
	)
	require.NoError(t, err)

	return repositories.NewImportRepository(db), db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
