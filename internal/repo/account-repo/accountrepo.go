package accountrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/pg"
)

const (
	uniqueViolation = "23505"
	idConstraint    = "accounts_id_key"
)

const (
	selectAccount = `SELECT username, id, password_hash, name, bank, bank_account, balance, hashrate, status,
		referrer_id, referral_settled, rigs, created_at, last_active FROM accounts`
	queryByUsername = selectAccount + ` WHERE username = $1`
	queryByID       = selectAccount + ` WHERE id = $1 ORDER BY created_at LIMIT 1`
	queryReferrals  = selectAccount + ` WHERE referrer_id = $1 ORDER BY created_at, username`
	queryAll        = selectAccount + ` ORDER BY created_at, username`
	insertAccount   = `INSERT INTO accounts (username, id, password_hash, name, bank, bank_account, balance, hashrate,
		status, referrer_id, referral_settled, rigs, created_at, last_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	updateAccount = `UPDATE accounts SET password_hash = $2, name = $3, bank = $4, bank_account = $5, balance = $6,
		hashrate = $7, status = $8, referrer_id = $9, referral_settled = $10, rigs = $11, last_active = $12
		WHERE username = $1`
	deleteAccount = `DELETE FROM accounts WHERE username = $1`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx, queryByUsername, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get account", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx, queryByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account by id", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindReferrals(ctx context.Context, id int64) ([]domain.Account, error) {
	return r.list(ctx, queryReferrals, id)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Account, error) {
	return r.list(ctx, queryAll)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("can't scan account", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) error {
	rigs, err := marshalRigs(account.Rigs)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, insertAccount,
		account.Username, account.ID, account.PasswordHash, account.Name, account.Bank, account.BankAccount,
		account.Balance, account.Hashrate, string(account.Status), account.ReferrerID, account.ReferralSettled,
		rigs, account.CreatedAt, account.LastActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if pgErr.ConstraintName == idConstraint {
				return domain.ErrAccountIDTaken
			}
			return domain.ErrUsernameTaken
		}
		zap.L().Error("can't create account", zap.String("username", account.Username), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, account *domain.Account) error {
	rigs, err := marshalRigs(account.Rigs)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, updateAccount,
		account.Username, account.PasswordHash, account.Name, account.Bank, account.BankAccount,
		account.Balance, account.Hashrate, string(account.Status), account.ReferrerID, account.ReferralSettled,
		rigs, account.LastActive,
	)
	if err != nil {
		zap.L().Error("can't update account", zap.String("username", account.Username), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, username string) error {
	tag, err := r.db.Exec(ctx, deleteAccount, username)
	if err != nil {
		zap.L().Error("can't delete account", zap.String("username", username), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	var rigs []byte
	err := row.Scan(
		&account.Username, &account.ID, &account.PasswordHash, &account.Name, &account.Bank, &account.BankAccount,
		&account.Balance, &account.Hashrate, &account.Status, &account.ReferrerID, &account.ReferralSettled,
		&rigs, &account.CreatedAt, &account.LastActive,
	)
	if err != nil {
		return nil, err
	}
	if len(rigs) > 0 {
		if err := json.Unmarshal(rigs, &account.Rigs); err != nil {
			return nil, fmt.Errorf("can't decode rigs of %s: %w", account.Username, err)
		}
	}
	return &account, nil
}

func marshalRigs(rigs []domain.Rig) ([]byte, error) {
	if rigs == nil {
		rigs = []domain.Rig{}
	}
	data, err := json.Marshal(rigs)
	if err != nil {
		return nil, fmt.Errorf("can't encode rigs: %w", err)
	}
	return data, nil
}
