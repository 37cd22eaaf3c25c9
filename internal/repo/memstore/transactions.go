package memstore

import (
	"context"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

type Transactions struct {
	s *Store
}

func (r *Transactions) Create(ctx context.Context, tx *domain.Transaction) error {
	return r.s.write(ctx, func(d *data) error {
		d.transactions = append(d.transactions, *tx)
		return nil
	})
}

func (r *Transactions) FindByID(_ context.Context, id int64) (*domain.Transaction, error) {
	var found *domain.Transaction
	r.s.read(func(d *data) {
		if i := indexOf(d, id); i >= 0 {
			tx := d.transactions[i]
			found = &tx
		}
	})
	return found, nil
}

func (r *Transactions) UpdateStatus(ctx context.Context, tx *domain.Transaction) error {
	return r.s.write(ctx, func(d *data) error {
		i := indexOf(d, tx.ID)
		if i < 0 {
			return domain.ErrTransactionNotFound
		}
		stored := &d.transactions[i]
		if stored.Status != domain.TransactionStatusPending {
			return domain.ErrInvalidState
		}
		stored.Status = tx.Status
		stored.Fee = tx.Fee
		stored.NetAmount = tx.NetAmount
		stored.ProcessedAt = tx.ProcessedAt
		return nil
	})
}

// FindByUser returns the user's transactions, newest first.
func (r *Transactions) FindByUser(_ context.Context, username string) ([]domain.Transaction, error) {
	txs := []domain.Transaction{}
	r.s.read(func(d *data) {
		for i := len(d.transactions) - 1; i >= 0; i-- {
			if d.transactions[i].User == username {
				txs = append(txs, d.transactions[i])
			}
		}
	})
	return txs, nil
}

func (r *Transactions) FindAll(_ context.Context) ([]domain.Transaction, error) {
	txs := []domain.Transaction{}
	r.s.read(func(d *data) {
		for i := len(d.transactions) - 1; i >= 0; i-- {
			txs = append(txs, d.transactions[i])
		}
	})
	return txs, nil
}

func (r *Transactions) DeleteAll(ctx context.Context) error {
	return r.s.write(ctx, func(d *data) error {
		d.transactions = nil
		return nil
	})
}

func indexOf(d *data, id int64) int {
	for i := range d.transactions {
		if d.transactions[i].ID == id {
			return i
		}
	}
	return -1
}
