package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

type RegisterRequestDTO struct {
	Username     string `json:"username" example:"miner42"`
	Password     string `json:"password" example:"s3cret"`
	Name         string `json:"name" example:"Somchai"`
	Bank         string `json:"bank" example:"KBank"`
	BankAccount  string `json:"bank_account" example:"123-4-56789-0"`
	ReferralCode string `json:"referral_code,omitempty" example:"x100008"`
}

type LoginRequestDTO struct {
	Username string `json:"username" example:"miner42"`
	Password string `json:"password" example:"s3cret"`
}

type LoginResponseDTO struct {
	Token string     `json:"token"`
	User  AccountDTO `json:"user"`
}

type AccountDTO struct {
	ID              int64           `json:"id" example:"100008"`
	Username        string          `json:"username" example:"miner42"`
	Name            string          `json:"name" example:"Somchai"`
	Bank            string          `json:"bank" example:"KBank"`
	BankAccount     string          `json:"bank_account" example:"123-4-56789-0"`
	Balance         decimal.Decimal `json:"balance" swaggertype:"string" example:"150.5"`
	Hashrate        decimal.Decimal `json:"hashrate" swaggertype:"string" example:"12.5"`
	Status          string          `json:"status" example:"approved"`
	ReferrerID      *int64          `json:"referrer_id,omitempty" example:"200006"`
	ReferralSettled bool            `json:"referral_settled"`
	Rigs            []RigDTO        `json:"rigs"`
	CreatedAt       time.Time       `json:"created_at" example:"2024-05-01T10:00:00Z"`
	LastActive      time.Time       `json:"last_active" example:"2024-05-01T10:00:00Z"`
}

type RigDTO struct {
	Name        string          `json:"name" example:"RTX Miner"`
	Speed       decimal.Decimal `json:"speed" swaggertype:"string" example:"12.5"`
	Status      string          `json:"status" example:"active"`
	Type        string          `json:"type" example:"GPU"`
	Temp        float64         `json:"temp" example:"65"`
	Power       float64         `json:"power" example:"150"`
	Fan         float64         `json:"fan" example:"60"`
	PurchasedAt time.Time       `json:"purchased_at" example:"2024-05-01T10:00:00Z"`
}

type ReferralDTO struct {
	Username  string    `json:"username" example:"friend1"`
	Name      string    `json:"name" example:"Niran"`
	Status    string    `json:"status" example:"approved"`
	CreatedAt time.Time `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

type CheckReferralResponseDTO struct {
	Valid    bool         `json:"valid"`
	Referrer *ReferrerDTO `json:"referrer,omitempty"`
}

type ReferrerDTO struct {
	ID       int64  `json:"id" example:"100008"`
	Username string `json:"username" example:"miner42"`
}

type NotificationDTO struct {
	ID        int64     `json:"id" example:"1"`
	Message   string    `json:"message" example:"Deposit of 100 approved, credited 95"`
	Kind      string    `json:"type" example:"success"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

type MaintenanceResponseDTO struct {
	Maintenance        bool            `json:"maintenance"`
	Announcement       string          `json:"announcement" example:"Withdrawals resume Monday"`
	AnnouncementActive bool            `json:"announcement_active"`
	DepositFeePercent  decimal.Decimal `json:"deposit_fee_percent" swaggertype:"string" example:"5"`
	WithdrawFeePercent decimal.Decimal `json:"withdraw_fee_percent" swaggertype:"string" example:"2"`
}

type SyncResponseDTO struct {
	Credited decimal.Decimal `json:"credited" swaggertype:"string" example:"0.00347222"`
	User     AccountDTO      `json:"user"`
}

type ClientLogRequestDTO struct {
	User    string `json:"user,omitempty" example:"miner42"`
	Action  string `json:"action" example:"page_error"`
	Details string `json:"details,omitempty" example:"TypeError in shop.js"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}

func NewAccount(a *domain.Account) AccountDTO {
	rigs := make([]RigDTO, len(a.Rigs))
	for i, r := range a.Rigs {
		rigs[i] = NewRig(r)
	}
	return AccountDTO{
		ID:              a.ID,
		Username:        a.Username,
		Name:            a.Name,
		Bank:            a.Bank,
		BankAccount:     a.BankAccount,
		Balance:         a.Balance,
		Hashrate:        a.Hashrate,
		Status:          string(a.Status),
		ReferrerID:      a.ReferrerID,
		ReferralSettled: a.ReferralSettled,
		Rigs:            rigs,
		CreatedAt:       a.CreatedAt,
		LastActive:      a.LastActive,
	}
}

func NewRig(r domain.Rig) RigDTO {
	return RigDTO{
		Name:        r.Name,
		Speed:       r.Speed,
		Status:      string(r.Status),
		Type:        r.Type,
		Temp:        r.Temp,
		Power:       r.Power,
		Fan:         r.Fan,
		PurchasedAt: r.PurchasedAt,
	}
}
