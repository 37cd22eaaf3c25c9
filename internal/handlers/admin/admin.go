package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/dto"
	"github.com/GlebRadaev/rigledger/internal/handlers/httperr"
	"github.com/GlebRadaev/rigledger/internal/service/accountservice"
	"github.com/GlebRadaev/rigledger/internal/service/rigservice"
	"github.com/GlebRadaev/rigledger/internal/service/shopservice"
	"github.com/GlebRadaev/rigledger/pkg/auth"
	"github.com/GlebRadaev/rigledger/pkg/utils"
)

type AccountService interface {
	List(ctx context.Context) ([]domain.Account, error)
	CreateUser(ctx context.Context, in accountservice.RegisterInput) (*domain.Account, error)
	Delete(ctx context.Context, username string) error
	ResetPassword(ctx context.Context, username, password string) error
}

type StatusService interface {
	UpdateStatus(ctx context.Context, username string, status domain.AccountStatus) (*domain.Account, error)
}

type LedgerService interface {
	ListAll(ctx context.Context) ([]domain.Transaction, error)
	Approve(ctx context.Context, id int64) (*domain.Transaction, error)
	Reject(ctx context.Context, id int64) (*domain.Transaction, error)
	Clear(ctx context.Context) error
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, actor string, settings domain.Settings) (*domain.Settings, error)
}

type ActivityService interface {
	List(ctx context.Context, limit int) ([]domain.ActivityLog, error)
	Clear(ctx context.Context, actor string) error
}

type RigService interface {
	AddRig(ctx context.Context, username string, rig domain.Rig) (*domain.Account, error)
	RemoveRig(ctx context.Context, username, rigName string) (bool, error)
	ToggleRig(ctx context.Context, username, rigName string) (rigservice.ToggleResult, error)
}

type ShopService interface {
	Items(ctx context.Context) (*shopservice.Catalog, error)
	AddItem(ctx context.Context, item domain.ShopItem) (*domain.ShopItem, error)
	DeleteItem(ctx context.Context, id int64) error
	ClearItems(ctx context.Context) error
	Regenerate(ctx context.Context) (int, error)
}

type AdminHandler struct {
	accounts AccountService
	statuses StatusService
	ledger   LedgerService
	settings SettingsService
	rigs     RigService
	shop     ShopService
	activity ActivityService
}

func New(
	accounts AccountService,
	statuses StatusService,
	ledger LedgerService,
	settings SettingsService,
	rigs RigService,
	shop ShopService,
	activity ActivityService,
) *AdminHandler {
	return &AdminHandler{
		accounts: accounts,
		statuses: statuses,
		ledger:   ledger,
		settings: settings,
		rigs:     rigs,
		shop:     shop,
		activity: activity,
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// ListUsers godoc
//
//	@Summary	All accounts
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.AccountDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Router		/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.List(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.AccountDTO, len(accounts))
	for i := range accounts {
		response[i] = dto.NewAccount(&accounts[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateUser godoc
//
//	@Summary	Create an active account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.RegisterRequestDTO	true	"Account"
//	@Success	200		{object}	dto.AccountDTO
//	@Failure	409		{object}	utils.Response	"Username already taken"
//	@Failure	422		{object}	utils.Response	"Missing required fields"
//	@Router		/api/admin/users [post]
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if !decode(w, r, &req) {
		return
	}
	account, err := h.accounts.CreateUser(r.Context(), accountservice.RegisterInput{
		Username:     req.Username,
		Password:     req.Password,
		Name:         req.Name,
		Bank:         req.Bank,
		BankAccount:  req.BankAccount,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccount(account))
}

// DeleteUser godoc
//
//	@Summary	Delete an account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.UsernameRequestDTO	true	"Account"
//	@Success	200		{object}	dto.MessageResponseDTO
//	@Failure	404		{object}	utils.Response	"Account not found"
//	@Router		/api/admin/users/delete [post]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UsernameRequestDTO
	if !decode(w, r, &req) {
		return
	}
	if err := h.accounts.Delete(r.Context(), req.Username); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "account deleted"})
}

// ResetPassword godoc
//
//	@Summary	Set a new password for an account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ResetPasswordRequestDTO	true	"New password"
//	@Success	200		{object}	dto.MessageResponseDTO
//	@Failure	404		{object}	utils.Response	"Account not found"
//	@Router		/api/admin/users/reset-password [post]
func (h *AdminHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequestDTO
	if !decode(w, r, &req) {
		return
	}
	if err := h.accounts.ResetPassword(r.Context(), req.Username, req.Password); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "password updated"})
}

// UpdateStatus godoc
//
//	@Summary		Change an account status
//	@Description	The first approval of a referred account pays the referral bonuses.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.AccountDTO
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		409		{object}	utils.Response	"Concurrent update"
//	@Failure		422		{object}	utils.Response	"Invalid status"
//	@Router			/api/admin/update-status [post]
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateStatusRequestDTO
	if !decode(w, r, &req) {
		return
	}
	account, err := h.statuses.UpdateStatus(r.Context(), req.Username, domain.AccountStatus(req.Status))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccount(account))
}

// ListTransactions godoc
//
//	@Summary	Every transaction, newest first
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.TransactionDTO
//	@Router		/api/admin/transactions [get]
func (h *AdminHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.ledger.ListAll(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactions(txs))
}

// ApproveTransaction godoc
//
//	@Summary	Approve a pending deposit or withdrawal
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Transaction id"
//	@Success	200	{object}	dto.TransactionDTO
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Failure	409	{object}	utils.Response	"Transaction is not pending"
//	@Router		/api/admin/transactions/{id}/approve [post]
func (h *AdminHandler) ApproveTransaction(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, h.ledger.Approve)
}

// RejectTransaction godoc
//
//	@Summary	Reject a pending deposit or withdrawal
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Transaction id"
//	@Success	200	{object}	dto.TransactionDTO
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Failure	409	{object}	utils.Response	"Transaction is not pending"
//	@Router		/api/admin/transactions/{id}/reject [post]
func (h *AdminHandler) RejectTransaction(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, h.ledger.Reject)
}

func (h *AdminHandler) settle(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id int64) (*domain.Transaction, error)) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}
	tx, err := fn(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransaction(tx))
}

// ClearTransactions godoc
//
//	@Summary	Drop the transaction log
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.MessageResponseDTO
//	@Router		/api/admin/transactions/clear [post]
func (h *AdminHandler) ClearTransactions(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.Clear(r.Context()); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "transactions cleared"})
}

// GetSettings godoc
//
//	@Summary	Fees, shop and maintenance switches
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.SettingsDTO
//	@Router		/api/admin/settings [get]
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newSettings(settings))
}

// UpdateSettings godoc
//
//	@Summary	Replace the settings
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.SettingsDTO	true	"Settings"
//	@Success	200		{object}	dto.SettingsDTO
//	@Failure	422		{object}	utils.Response	"Fee out of range"
//	@Router		/api/admin/settings [post]
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.SettingsDTO
	if !decode(w, r, &req) {
		return
	}
	settings, err := h.settings.Update(r.Context(), auth.UsernameFromContext(r.Context()), domain.Settings{
		DepositFeePercent:  req.DepositFeePercent,
		WithdrawFeePercent: req.WithdrawFeePercent,
		ShopDisabled:       req.ShopDisabled,
		ShopNotice:         req.ShopNotice,
		Maintenance:        req.Maintenance,
		Announcement:       req.Announcement,
		AnnouncementActive: req.AnnouncementActive,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newSettings(settings))
}

func newSettings(s *domain.Settings) dto.SettingsDTO {
	return dto.SettingsDTO{
		DepositFeePercent:  s.DepositFeePercent,
		WithdrawFeePercent: s.WithdrawFeePercent,
		ShopDisabled:       s.ShopDisabled,
		ShopNotice:         s.ShopNotice,
		Maintenance:        s.Maintenance,
		Announcement:       s.Announcement,
		AnnouncementActive: s.AnnouncementActive,
	}
}

// AddRig godoc
//
//	@Summary	Give a rig to an account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.AddRigRequestDTO	true	"Rig"
//	@Success	200		{object}	dto.AccountDTO
//	@Failure	404		{object}	utils.Response	"Account not found"
//	@Failure	422		{object}	utils.Response	"Invalid rig"
//	@Router		/api/admin/rigs/add [post]
func (h *AdminHandler) AddRig(w http.ResponseWriter, r *http.Request) {
	var req dto.AddRigRequestDTO
	if !decode(w, r, &req) {
		return
	}
	account, err := h.rigs.AddRig(r.Context(), req.Username, domain.Rig{
		Name:   req.Name,
		Speed:  req.Speed,
		Status: domain.RigStatus(req.Status),
		Type:   req.Type,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccount(account))
}

// DeleteRig godoc
//
//	@Summary	Remove a rig by name
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.RigRequestDTO	true	"Rig"
//	@Success	200		{object}	dto.RemoveRigResponseDTO
//	@Failure	404		{object}	utils.Response	"Account not found"
//	@Router		/api/admin/rigs/delete [post]
func (h *AdminHandler) DeleteRig(w http.ResponseWriter, r *http.Request) {
	var req dto.RigRequestDTO
	if !decode(w, r, &req) {
		return
	}
	removed, err := h.rigs.RemoveRig(r.Context(), req.Username, req.RigName)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RemoveRigResponseDTO{Removed: removed})
}

// ToggleRig godoc
//
//	@Summary	Pause or resume a rig
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.RigRequestDTO	true	"Rig"
//	@Success	200		{object}	rigservice.ToggleResult
//	@Failure	404		{object}	utils.Response	"Account not found"
//	@Router		/api/admin/rigs/toggle [post]
func (h *AdminHandler) ToggleRig(w http.ResponseWriter, r *http.Request) {
	var req dto.RigRequestDTO
	if !decode(w, r, &req) {
		return
	}
	result, err := h.rigs.ToggleRig(r.Context(), req.Username, req.RigName)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// ListItems godoc
//
//	@Summary	Shop catalog including a disabled shop
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.CatalogResponseDTO
//	@Router		/api/admin/shop/items [get]
func (h *AdminHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.shop.Items(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCatalog(catalog.Disabled, catalog.Notice, catalog.Items))
}

// SaveItem godoc
//
//	@Summary		Add or replace a shop item
//	@Description	An item without id gets a new one.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ShopItemDTO	true	"Item"
//	@Success		200		{object}	dto.ShopItemDTO
//	@Failure		422		{object}	utils.Response	"Invalid item"
//	@Router			/api/admin/shop/items [post]
func (h *AdminHandler) SaveItem(w http.ResponseWriter, r *http.Request) {
	var req dto.ShopItemDTO
	if !decode(w, r, &req) {
		return
	}
	item, err := h.shop.AddItem(r.Context(), req.ToDomain())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewShopItem(*item))
}

// DeleteItem godoc
//
//	@Summary	Remove a shop item
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Item id"
//	@Success	200	{object}	dto.MessageResponseDTO
//	@Failure	404	{object}	utils.Response	"Item not found"
//	@Router		/api/admin/shop/items/{id} [delete]
func (h *AdminHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid item id")
		return
	}
	if err := h.shop.DeleteItem(r.Context(), id); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "item deleted"})
}

// ClearItems godoc
//
//	@Summary	Remove every shop item
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.MessageResponseDTO
//	@Router		/api/admin/shop/clear [post]
func (h *AdminHandler) ClearItems(w http.ResponseWriter, r *http.Request) {
	if err := h.shop.ClearItems(r.Context()); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "shop cleared"})
}

// RegenerateItems godoc
//
//	@Summary		Regenerate the shop catalog
//	@Description	Replace every item with the generated level progression.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RegenerateResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/shop/regenerate [post]
func (h *AdminHandler) RegenerateItems(w http.ResponseWriter, r *http.Request) {
	count, err := h.shop.Regenerate(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RegenerateResponseDTO{Success: true, Count: count})
}

// ListLogs godoc
//
//	@Summary	Activity log, newest first
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query		int	false	"Maximum number of entries"
//	@Success	200		{array}		dto.ActivityLogDTO
//	@Failure	400		{object}	utils.Response	"Invalid limit"
//	@Router		/api/admin/logs [get]
func (h *AdminHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}
	logs, err := h.activity.List(r.Context(), limit)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewActivityLogs(logs))
}

// ClearLogs godoc
//
//	@Summary		Drop the activity log
//	@Description	The log keeps a single entry recording who cleared it.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Router			/api/admin/logs/clear [post]
func (h *AdminHandler) ClearLogs(w http.ResponseWriter, r *http.Request) {
	if err := h.activity.Clear(r.Context(), auth.UsernameFromContext(r.Context())); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "logs cleared"})
}
