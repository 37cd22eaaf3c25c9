package transactionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/pg"
)

const (
	selectTransaction = `SELECT id, username, type, amount, status, method, bank, bank_account, item, fee, net_amount,
		created_at, processed_at FROM transactions`
	queryByID         = selectTransaction + ` WHERE id = $1`
	queryByUser       = selectTransaction + ` WHERE username = $1 ORDER BY created_at DESC, id DESC`
	queryAll          = selectTransaction + ` ORDER BY created_at DESC, id DESC`
	insertTransaction = `INSERT INTO transactions (id, username, type, amount, status, method, bank, bank_account, item,
		fee, net_amount, created_at, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	settleTransaction = `UPDATE transactions SET status = $2, fee = $3, net_amount = $4, processed_at = $5
		WHERE id = $1 AND status = 'pending'`
	deleteTransactions = `DELETE FROM transactions`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) error {
	_, err := r.db.Exec(ctx, insertTransaction,
		tx.ID, tx.User, string(tx.Type), tx.Amount, string(tx.Status), tx.Method, tx.Bank, tx.BankAccount, tx.Item,
		tx.Fee, tx.NetAmount, tx.CreatedAt, tx.ProcessedAt,
	)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Int64("id", tx.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	tx, err := scanTransaction(r.db.QueryRow(ctx, queryByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// UpdateStatus moves a pending transaction to its final status. A transaction
// that is no longer pending is left untouched and ErrInvalidState is returned.
func (r *Repository) UpdateStatus(ctx context.Context, tx *domain.Transaction) error {
	tag, err := r.db.Exec(ctx, settleTransaction, tx.ID, string(tx.Status), tx.Fee, tx.NetAmount, tx.ProcessedAt)
	if err != nil {
		zap.L().Error("can't update transaction", zap.Int64("id", tx.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidState
	}
	return nil
}

func (r *Repository) FindByUser(ctx context.Context, username string) ([]domain.Transaction, error) {
	return r.list(ctx, queryByUser, username)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	return r.list(ctx, queryAll)
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	tag, err := r.db.Exec(ctx, deleteTransactions)
	if err != nil {
		zap.L().Error("can't clear transactions", zap.Error(err))
		return err
	}
	zap.L().Info("transactions cleared", zap.Int64("rows", tag.RowsAffected()))
	return nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	txs := []domain.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction", zap.Error(err))
			return nil, err
		}
		txs = append(txs, *tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var tx domain.Transaction
	var fee, net decimal.NullDecimal
	err := row.Scan(
		&tx.ID, &tx.User, &tx.Type, &tx.Amount, &tx.Status, &tx.Method, &tx.Bank, &tx.BankAccount, &tx.Item,
		&fee, &net, &tx.CreatedAt, &tx.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	if fee.Valid {
		tx.Fee = &fee.Decimal
	}
	if net.Valid {
		tx.NetAmount = &net.Decimal
	}
	return &tx, nil
}
