package repositories

import (
	"fmt"
	"testing"
	"time"

	"housing-assist-backend/config"
	"housing-assist-backend/db/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) ReimbursementRepository {
	t.Helper()
	config.Logger = zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CountyReimbursement{}))

	return NewReimbursementRepository(db)
}

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		received string
		status   models.ReimbursementStatus
	}{
		{"nothing received", "1000", "0", models.ReimbursementPending},
		{"partial payment", "1000", "400", models.ReimbursementPartial},
		{"almost full", "1000", "999.99", models.ReimbursementPartial},
		{"exact payment", "1000", "1000", models.ReimbursementReceived},
		{"overpayment", "1000", "1100", models.ReimbursementReceived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, DeriveStatus(amount(tt.expected), amount(tt.received)))
		})
	}
}

func TestRecordReceivedAccumulates(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.CreateReimbursement(&models.CountyReimbursement{
		CompanyID:      uuid.New(),
		ClientID:       uuid.New(),
		County:         "Ramsey",
		ExpectedAmount: amount("1000"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReimbursementPending, created.Status)

	updated, err := repo.RecordReceived(created.ID, amount("400"), time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.ReimbursementPartial, updated.Status)
	assert.Equal(t, "400.00", updated.ReceivedAmount.StringFixed(2))
	require.NotNil(t, updated.ReceivedAt)

	updated, err = repo.RecordReceived(created.ID, amount("600"), time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.ReimbursementReceived, updated.Status)
	assert.Equal(t, "1000.00", updated.ReceivedAmount.StringFixed(2))
}

func TestRecordReceivedRejectsNonPositive(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.CreateReimbursement(&models.CountyReimbursement{
		CompanyID:      uuid.New(),
		ClientID:       uuid.New(),
		ExpectedAmount: amount("500"),
	})
	require.NoError(t, err)

	_, err = repo.RecordReceived(created.ID, decimal.Zero, time.Now())
	assert.Error(t, err)
}

func TestRecordReceivedUnknownID(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.RecordReceived(uuid.New(), amount("100"), time.Now())
	assert.Error(t, err)
}
