package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusApproved AccountStatus = "approved"
	AccountStatusActive   AccountStatus = "active"
	AccountStatusBanned   AccountStatus = "banned"
)

func (s AccountStatus) Valid() bool {
	switch s {
	case AccountStatusPending, AccountStatusApproved, AccountStatusActive, AccountStatusBanned:
		return true
	}
	return false
}

type RigStatus string

const (
	RigStatusActive RigStatus = "active"
	RigStatusPaused RigStatus = "paused"
)

type TransactionType string

const (
	TransactionTypeDeposit       TransactionType = "deposit"
	TransactionTypeWithdraw      TransactionType = "withdraw"
	TransactionTypePurchase      TransactionType = "purchase"
	TransactionTypeReferralBonus TransactionType = "referral_bonus"
	TransactionTypeSignupBonus   TransactionType = "signup_bonus"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusApproved  TransactionStatus = "approved"
	TransactionStatusRejected  TransactionStatus = "rejected"
	TransactionStatusCompleted TransactionStatus = "completed"
)

type Account struct {
	ID              int64           `db:"id"`
	Username        string          `db:"username"`
	PasswordHash    string          `db:"password_hash"`
	Name            string          `db:"name"`
	Bank            string          `db:"bank"`
	BankAccount     string          `db:"bank_account"`
	Balance         decimal.Decimal `db:"balance"`
	Hashrate        decimal.Decimal `db:"hashrate"`
	Status          AccountStatus   `db:"status"`
	ReferrerID      *int64          `db:"referrer_id"`
	ReferralSettled bool            `db:"referral_settled"`
	Rigs            []Rig           `db:"rigs"`
	CreatedAt       time.Time       `db:"created_at"`
	LastActive      time.Time       `db:"last_active"`
}

// Clone returns a copy whose rig list does not alias the receiver's.
func (a *Account) Clone() *Account {
	c := *a
	if a.ReferrerID != nil {
		id := *a.ReferrerID
		c.ReferrerID = &id
	}
	if a.Rigs != nil {
		c.Rigs = make([]Rig, len(a.Rigs))
		copy(c.Rigs, a.Rigs)
	}
	return &c
}

type Rig struct {
	Name        string          `json:"name"`
	Speed       decimal.Decimal `json:"speed"`
	Status      RigStatus       `json:"status"`
	Type        string          `json:"type"`
	Temp        float64         `json:"temp"`
	Power       float64         `json:"power"`
	Fan         float64         `json:"fan"`
	PurchasedAt time.Time       `json:"purchased_at"`
}

type Transaction struct {
	ID          int64             `db:"id"`
	User        string            `db:"username"`
	Type        TransactionType   `db:"type"`
	Amount      decimal.Decimal   `db:"amount"`
	Status      TransactionStatus `db:"status"`
	Method      string            `db:"method"`
	Bank        string            `db:"bank"`
	BankAccount string            `db:"bank_account"`
	Item        string            `db:"item"`
	Fee         *decimal.Decimal  `db:"fee"`
	NetAmount   *decimal.Decimal  `db:"net_amount"`
	CreatedAt   time.Time         `db:"created_at"`
	ProcessedAt *time.Time        `db:"processed_at"`
}

type Settings struct {
	DepositFeePercent  decimal.Decimal
	WithdrawFeePercent decimal.Decimal
	ShopDisabled       bool
	ShopNotice         string
	Maintenance        bool
	Announcement       string
	AnnouncementActive bool
}

type ShopItem struct {
	ID    int64           `db:"id"`
	Name  string          `db:"name"`
	Price decimal.Decimal `db:"price"`
	Speed decimal.Decimal `db:"speed"`
	Tier  string          `db:"tier"`
	Icon  string          `db:"icon"`
	Tag   string          `db:"tag"`
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

type Notification struct {
	ID        int64            `db:"id"`
	User      string           `db:"username"`
	Message   string           `db:"message"`
	Kind      NotificationKind `db:"kind"`
	Read      bool             `db:"read"`
	CreatedAt time.Time        `db:"created_at"`
}

type ActivityType string

const (
	ActivityRegister    ActivityType = "register"
	ActivityLogin       ActivityType = "login"
	ActivityTransaction ActivityType = "transaction"
	ActivityPurchase    ActivityType = "purchase"
	ActivityAdmin       ActivityType = "admin_action"
	ActivitySystem      ActivityType = "system"
	ActivityClient      ActivityType = "client"
)

// ActivityLog is one line of the admin-facing audit trail.
type ActivityLog struct {
	ID        int64        `db:"id"`
	Type      ActivityType `db:"type"`
	User      string       `db:"username"`
	Action    string       `db:"action"`
	Details   string       `db:"details"`
	CreatedAt time.Time    `db:"created_at"`
}
