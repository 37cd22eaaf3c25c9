package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

type DepositRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"200"`
	Method string          `json:"method,omitempty" example:"qr_auto"`
}

type WithdrawRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
	Bank        string          `json:"bank,omitempty" example:"KBank"`
	BankAccount string          `json:"bank_account,omitempty" example:"123-4-56789-0"`
}

type TransactionDTO struct {
	ID          int64            `json:"id,string" example:"1790452165558394880"`
	User        string           `json:"user" example:"miner42"`
	Type        string           `json:"type" example:"deposit"`
	Amount      decimal.Decimal  `json:"amount" swaggertype:"string" example:"200"`
	Status      string           `json:"status" example:"pending"`
	Method      string           `json:"method,omitempty" example:"qr_auto"`
	Bank        string           `json:"bank,omitempty" example:"KBank"`
	BankAccount string           `json:"bank_account,omitempty" example:"123-4-56789-0"`
	Item        string           `json:"item,omitempty" example:"RTX Miner"`
	Fee         *decimal.Decimal `json:"fee,omitempty" swaggertype:"string" example:"10"`
	NetAmount   *decimal.Decimal `json:"net_amount,omitempty" swaggertype:"string" example:"190"`
	CreatedAt   time.Time        `json:"created_at" example:"2024-05-01T10:00:00Z"`
	ProcessedAt *time.Time       `json:"processed_at,omitempty" example:"2024-05-01T10:05:00Z"`
}

func NewTransaction(tx *domain.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          tx.ID,
		User:        tx.User,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Status:      string(tx.Status),
		Method:      tx.Method,
		Bank:        tx.Bank,
		BankAccount: tx.BankAccount,
		Item:        tx.Item,
		Fee:         tx.Fee,
		NetAmount:   tx.NetAmount,
		CreatedAt:   tx.CreatedAt,
		ProcessedAt: tx.ProcessedAt,
	}
}

func NewTransactions(txs []domain.Transaction) []TransactionDTO {
	out := make([]TransactionDTO, len(txs))
	for i := range txs {
		out[i] = NewTransaction(&txs[i])
	}
	return out
}
