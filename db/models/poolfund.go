package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PoolFundTransactionType distinguishes money going into or out of the
// shared pool fund.
type PoolFundTransactionType string

const (
	PoolFundDeposit    PoolFundTransactionType = "DEPOSIT"
	PoolFundWithdrawal PoolFundTransactionType = "WITHDRAWAL"
)

// PoolFundTransaction is one entry in the shared ledger of surplus
// county-reimbursement funds. The fund balance is the sum of deposits minus
// the sum of withdrawals for a company; there is no per-client bucket, any
// client's supplies can draw on the pool.
type PoolFundTransaction struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	CompanyID uuid.UUID  `gorm:"type:uuid;not null;index" json:"company_id"`
	ClientID  *uuid.UUID `gorm:"type:uuid;index" json:"client_id"`

	Type          PoolFundTransactionType `gorm:"not null" json:"type"`
	Amount        decimal.Decimal         `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description   string                  `json:"description"`
	ReceiptNumber string                  `gorm:"index" json:"receipt_number"`

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
