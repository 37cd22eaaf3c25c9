package shop

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/rigledger/internal/dto"
	"github.com/GlebRadaev/rigledger/internal/handlers/httperr"
	"github.com/GlebRadaev/rigledger/internal/service/shopservice"
	"github.com/GlebRadaev/rigledger/pkg/auth"
	"github.com/GlebRadaev/rigledger/pkg/utils"
)

type Service interface {
	Items(ctx context.Context) (*shopservice.Catalog, error)
	Buy(ctx context.Context, username string, itemID int64) (*shopservice.Receipt, error)
}

type ShopHandler struct {
	shopService Service
}

func New(shopService Service) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
	}
}

// GetItems godoc
//
//	@Summary	Shop catalog
//	@Tags		Shop
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.CatalogResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/shop/items [get]
func (h *ShopHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.shopService.Items(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCatalog(catalog.Disabled, catalog.Notice, catalog.Items))
}

// Buy godoc
//
//	@Summary		Buy a rig
//	@Description	Debit the item price, attach a new active rig and record a completed purchase.
//	@Tags			Shop
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BuyRequestDTO	true	"Item to buy"
//	@Success		200		{object}	dto.BuyResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Item not found"
//	@Failure		503		{object}	utils.Response	"Shop is disabled"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/shop/buy [post]
func (h *ShopHandler) Buy(w http.ResponseWriter, r *http.Request) {
	var req dto.BuyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	receipt, err := h.shopService.Buy(r.Context(), auth.UsernameFromContext(r.Context()), req.ItemID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BuyResponseDTO{
		Balance:     receipt.Account.Balance,
		Hashrate:    receipt.Account.Hashrate,
		Rig:         dto.NewRig(receipt.Rig),
		Transaction: dto.NewTransaction(receipt.Transaction),
	})
}
