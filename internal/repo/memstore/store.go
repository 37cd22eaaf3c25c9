// Package memstore keeps every repository in process memory.
//
// All writes are serialized by a single writer lock. TX holds that lock for the
// whole unit of work and restores a snapshot when the unit fails, so a failed
// operation leaves no trace. Reads are not isolated from a running unit of work.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/pg"
)

type txKey struct{}

type data struct {
	accounts      map[string]*domain.Account
	transactions  []domain.Transaction
	settings      domain.Settings
	items         map[int64]domain.ShopItem
	notifications []domain.Notification
	notificationN int64
	activity      []domain.ActivityLog
	activityN     int64
}

type Store struct {
	writer sync.Mutex
	mu     sync.RWMutex
	data   data

	Accounts      *Accounts
	Transactions  *Transactions
	Settings      *Settings
	Shop          *Shop
	Notifications *Notifications
	Activity      *Activity
	TX            *TX
}

func New() *Store {
	s := &Store{
		data: data{
			accounts: map[string]*domain.Account{},
			items:    map[int64]domain.ShopItem{},
			settings: domain.Settings{DepositFeePercent: decimal.Zero, WithdrawFeePercent: decimal.Zero},
		},
	}
	s.Accounts = &Accounts{s: s}
	s.Transactions = &Transactions{s: s}
	s.Settings = &Settings{s: s}
	s.Shop = &Shop{s: s}
	s.Notifications = &Notifications{s: s}
	s.Activity = &Activity{s: s}
	s.TX = &TX{s: s}
	return s
}

// TX implements pg.TXManager on top of the store.
type TX struct {
	s *Store
}

var _ pg.TXManager = (*TX)(nil)

func (t *TX) Begin(ctx context.Context, fn pg.TransactionalFn) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	t.s.writer.Lock()
	defer t.s.writer.Unlock()

	snap := t.s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			t.s.restore(snap)
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

func (s *Store) read(fn func(d *data)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

func (s *Store) write(ctx context.Context, fn func(d *data) error) error {
	if !inTx(ctx) {
		s.writer.Lock()
		defer s.writer.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

func (s *Store) snapshot() data {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := s.data
	d.accounts = make(map[string]*domain.Account, len(s.data.accounts))
	for k, v := range s.data.accounts {
		d.accounts[k] = v.Clone()
	}
	d.transactions = append([]domain.Transaction(nil), s.data.transactions...)
	d.items = make(map[int64]domain.ShopItem, len(s.data.items))
	for k, v := range s.data.items {
		d.items[k] = v
	}
	d.notifications = append([]domain.Notification(nil), s.data.notifications...)
	d.activity = append([]domain.ActivityLog(nil), s.data.activity...)
	return d
}

func (s *Store) restore(d data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = d
}

func sortAccounts(accounts []domain.Account) {
	sort.SliceStable(accounts, func(i, j int) bool {
		if !accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
		}
		return accounts[i].Username < accounts[j].Username
	})
}
