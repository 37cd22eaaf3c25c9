package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

type UsernameRequestDTO struct {
	Username string `json:"username" example:"miner42"`
}

type ResetPasswordRequestDTO struct {
	Username string `json:"username" example:"miner42"`
	Password string `json:"password" example:"n3wpass"`
}

type UpdateStatusRequestDTO struct {
	Username string `json:"username" example:"miner42"`
	Status   string `json:"status" example:"approved"`
}

type SettingsDTO struct {
	DepositFeePercent  decimal.Decimal `json:"deposit_fee_percent" swaggertype:"string" example:"5"`
	WithdrawFeePercent decimal.Decimal `json:"withdraw_fee_percent" swaggertype:"string" example:"2"`
	ShopDisabled       bool            `json:"shop_disabled"`
	ShopNotice         string          `json:"shop_notice" example:"Restocking soon"`
	Maintenance        bool            `json:"maintenance"`
	Announcement       string          `json:"system_announcement" example:"Withdrawals resume Monday"`
	AnnouncementActive bool            `json:"system_announcement_active"`
}

type AddRigRequestDTO struct {
	Username string          `json:"username" example:"miner42"`
	Name     string          `json:"name" example:"Bonus Rig"`
	Speed    decimal.Decimal `json:"speed" swaggertype:"string" example:"5"`
	Status   string          `json:"status,omitempty" example:"active"`
	Type     string          `json:"type,omitempty" example:"ASIC"`
}

type RigRequestDTO struct {
	Username string `json:"username" example:"miner42"`
	RigName  string `json:"rig_name" example:"Bonus Rig"`
}

type RemoveRigResponseDTO struct {
	Removed bool `json:"removed"`
}

type RegenerateResponseDTO struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

type ActivityLogDTO struct {
	ID        int64     `json:"id" example:"1"`
	Type      string    `json:"type" example:"login"`
	User      string    `json:"user,omitempty" example:"miner42"`
	Action    string    `json:"action" example:"account.logged_in"`
	Details   string    `json:"details" example:"ip=10.0.0.7"`
	CreatedAt time.Time `json:"timestamp" example:"2024-05-01T10:00:00Z"`
}

func NewActivityLogs(logs []domain.ActivityLog) []ActivityLogDTO {
	out := make([]ActivityLogDTO, len(logs))
	for i, l := range logs {
		out[i] = ActivityLogDTO{
			ID:        l.ID,
			Type:      string(l.Type),
			User:      l.User,
			Action:    l.Action,
			Details:   l.Details,
			CreatedAt: l.CreatedAt,
		}
	}
	return out
}
