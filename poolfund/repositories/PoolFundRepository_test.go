package repositories

import (
	"fmt"
	"testing"

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

func newTestRepo(t *testing.T) PoolFundRepository {
	t.Helper()
	config.Logger = zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PoolFundTransaction{}))

	return NewPoolFundRepository(db)
}

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPoolFundBalanceMath(t *testing.T) {
	repo := newTestRepo(t)
	companyID := uuid.New()

	_, err := repo.Deposit(companyID, nil, amount("500.00"), "county surplus", "tester@example.com")
	require.NoError(t, err)
	_, err = repo.Deposit(companyID, nil, amount("250.50"), "county surplus", "tester@example.com")
	require.NoError(t, err)
	_, err = repo.Withdraw(companyID, nil, amount("100.25"), "cleaning supplies", "tester@example.com")
	require.NoError(t, err)

	balance, err := repo.GetBalance(companyID)
	require.NoError(t, err)
	assert.Equal(t, "650.25", balance.StringFixed(2))
}

func TestPoolFundBalanceIsPerCompany(t *testing.T) {
	repo := newTestRepo(t)
	companyA := uuid.New()
	companyB := uuid.New()

	_, err := repo.Deposit(companyA, nil, amount("300"), "", "tester@example.com")
	require.NoError(t, err)

	balance, err := repo.GetBalance(companyB)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestPoolFundWithdrawRejectsOverdraft(t *testing.T) {
	repo := newTestRepo(t)
	companyID := uuid.New()

	_, err := repo.Deposit(companyID, nil, amount("100"), "", "tester@example.com")
	require.NoError(t, err)

	_, err = repo.Withdraw(companyID, nil, amount("100.01"), "", "tester@example.com")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// The rejected withdrawal must leave the ledger untouched.
	balance, err := repo.GetBalance(companyID)
	require.NoError(t, err)
	assert.Equal(t, "100.00", balance.StringFixed(2))

	// Withdrawing the exact balance is allowed.
	_, err = repo.Withdraw(companyID, nil, amount("100"), "", "tester@example.com")
	require.NoError(t, err)

	balance, err = repo.GetBalance(companyID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestPoolFundRejectsNonPositiveAmounts(t *testing.T) {
	repo := newTestRepo(t)
	companyID := uuid.New()

	_, err := repo.Deposit(companyID, nil, decimal.Zero, "", "tester@example.com")
	assert.Error(t, err)

	_, err = repo.Withdraw(companyID, nil, amount("-5"), "", "tester@example.com")
	assert.Error(t, err)
}

func TestPoolFundAssignsReceiptNumbers(t *testing.T) {
	repo := newTestRepo(t)
	companyID := uuid.New()

	first, err := repo.Deposit(companyID, nil, amount("50"), "", "tester@example.com")
	require.NoError(t, err)
	second, err := repo.Deposit(companyID, nil, amount("50"), "", "tester@example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, first.ReceiptNumber)
	assert.NotEmpty(t, second.ReceiptNumber)
	assert.NotEqual(t, first.ReceiptNumber, second.ReceiptNumber)
}
