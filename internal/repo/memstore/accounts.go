package memstore

import (
	"context"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

type Accounts struct {
	s *Store
}

func (r *Accounts) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	var account *domain.Account
	r.s.read(func(d *data) {
		if a, ok := d.accounts[username]; ok {
			account = a.Clone()
		}
	})
	return account, nil
}

// FindByID returns the oldest account with the id.
func (r *Accounts) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	var account *domain.Account
	r.s.read(func(d *data) {
		if list := sorted(d, func(a *domain.Account) bool { return a.ID == id }); len(list) > 0 {
			account = list[0].Clone()
		}
	})
	return account, nil
}

func (r *Accounts) FindReferrals(_ context.Context, id int64) ([]domain.Account, error) {
	accounts := []domain.Account{}
	r.s.read(func(d *data) {
		for _, a := range sorted(d, func(a *domain.Account) bool { return a.ReferrerID != nil && *a.ReferrerID == id }) {
			accounts = append(accounts, *a.Clone())
		}
	})
	return accounts, nil
}

func (r *Accounts) FindAll(_ context.Context) ([]domain.Account, error) {
	accounts := []domain.Account{}
	r.s.read(func(d *data) {
		for _, a := range sorted(d, nil) {
			accounts = append(accounts, *a.Clone())
		}
	})
	return accounts, nil
}

func (r *Accounts) Create(ctx context.Context, account *domain.Account) error {
	return r.s.write(ctx, func(d *data) error {
		if _, ok := d.accounts[account.Username]; ok {
			return domain.ErrUsernameTaken
		}
		for _, a := range d.accounts {
			if a.ID == account.ID {
				return domain.ErrAccountIDTaken
			}
		}
		d.accounts[account.Username] = account.Clone()
		return nil
	})
}

func (r *Accounts) Update(ctx context.Context, account *domain.Account) error {
	return r.s.write(ctx, func(d *data) error {
		stored, ok := d.accounts[account.Username]
		if !ok {
			return domain.ErrAccountNotFound
		}
		updated := account.Clone()
		updated.ID = stored.ID
		updated.CreatedAt = stored.CreatedAt
		d.accounts[account.Username] = updated
		return nil
	})
}

func (r *Accounts) Delete(ctx context.Context, username string) error {
	return r.s.write(ctx, func(d *data) error {
		if _, ok := d.accounts[username]; !ok {
			return domain.ErrAccountNotFound
		}
		delete(d.accounts, username)
		return nil
	})
}

func sorted(d *data, match func(a *domain.Account) bool) []*domain.Account {
	list := make([]domain.Account, 0, len(d.accounts))
	for _, a := range d.accounts {
		if match == nil || match(a) {
			list = append(list, *a)
		}
	}
	sortAccounts(list)

	out := make([]*domain.Account, len(list))
	for i := range list {
		out[i] = &list[i]
	}
	return out
}
