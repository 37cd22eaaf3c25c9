package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/rigledger/internal/domain"
)

type ShopItemDTO struct {
	ID    int64           `json:"id,string" example:"7"`
	Name  string          `json:"name" example:"RTX Miner"`
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"150"`
	Speed decimal.Decimal `json:"speed" swaggertype:"string" example:"12.5"`
	Tier  string          `json:"tier,omitempty" example:"basic"`
	Icon  string          `json:"icon,omitempty" example:"gpu"`
	Tag   string          `json:"tag,omitempty" example:"hot"`
}

type CatalogResponseDTO struct {
	Disabled bool          `json:"disabled"`
	Notice   string        `json:"notice,omitempty" example:"Restocking soon"`
	Items    []ShopItemDTO `json:"items"`
}

type BuyRequestDTO struct {
	ItemID int64 `json:"item_id,string" example:"7"`
}

type BuyResponseDTO struct {
	Balance     decimal.Decimal `json:"balance" swaggertype:"string" example:"50"`
	Hashrate    decimal.Decimal `json:"hashrate" swaggertype:"string" example:"12.5"`
	Rig         RigDTO          `json:"rig"`
	Transaction TransactionDTO  `json:"transaction"`
}

func NewShopItem(item domain.ShopItem) ShopItemDTO {
	return ShopItemDTO{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Speed: item.Speed,
		Tier:  item.Tier,
		Icon:  item.Icon,
		Tag:   item.Tag,
	}
}

func (d ShopItemDTO) ToDomain() domain.ShopItem {
	return domain.ShopItem{
		ID:    d.ID,
		Name:  d.Name,
		Price: d.Price,
		Speed: d.Speed,
		Tier:  d.Tier,
		Icon:  d.Icon,
		Tag:   d.Tag,
	}
}

func NewCatalog(disabled bool, notice string, items []domain.ShopItem) CatalogResponseDTO {
	out := make([]ShopItemDTO, len(items))
	for i, item := range items {
		out[i] = NewShopItem(item)
	}
	return CatalogResponseDTO{Disabled: disabled, Notice: notice, Items: out}
}
