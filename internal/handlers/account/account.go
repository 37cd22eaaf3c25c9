package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/dto"
	"github.com/GlebRadaev/rigledger/internal/handlers/httperr"
	"github.com/GlebRadaev/rigledger/internal/service/accountservice"
	"github.com/GlebRadaev/rigledger/pkg/auth"
	"github.com/GlebRadaev/rigledger/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, in accountservice.RegisterInput) (*domain.Account, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)
	GenerateToken(username string) (string, error)
	CheckReferral(ctx context.Context, code string) (*domain.Account, error)
	Get(ctx context.Context, username string) (*domain.Account, error)
	Referrals(ctx context.Context, username string) ([]domain.Account, error)
	Notifications(ctx context.Context, username string, unreadOnly bool) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, username string, id int64) error
	PublicStatus(ctx context.Context) (*domain.Settings, error)
	Sync(ctx context.Context, username string) (*domain.Account, decimal.Decimal, error)
}

type ActivityRecorder interface {
	RecordClient(ctx context.Context, user, action, details string) error
}

type AccountHandler struct {
	accountService Service
	activity       ActivityRecorder
}

func New(accountService Service, activity ActivityRecorder) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		activity:       activity,
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create a pending account. The referral code is optional but must resolve when given.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AccountDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Referrer not found"
//	@Failure		409		{object}	utils.Response	"Username already taken"
//	@Failure		422		{object}	utils.Response	"Missing required fields"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/register [post]
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	account, err := h.accountService.Register(r.Context(), accountservice.RegisterInput{
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
	token, err := h.accountService.GenerateToken(account.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccount(account))
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in and get a JWT token. During maintenance only the admin can log in.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		503		{object}	utils.Response	"Maintenance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/login [post]
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	account, err := h.accountService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	token, err := h.accountService.GenerateToken(account.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token: token,
		User:  dto.NewAccount(account),
	})
}

// CheckReferral godoc
//
//	@Summary		Check a referral code
//	@Tags			Account
//	@Produce		json
//	@Param			code	path		string	true	"Referral code"
//	@Success		200		{object}	dto.CheckReferralResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/check-referral/{code} [get]
func (h *AccountHandler) CheckReferral(w http.ResponseWriter, r *http.Request) {
	referrer, err := h.accountService.CheckReferral(r.Context(), chi.URLParam(r, "code"))
	if errors.Is(err, domain.ErrReferrerNotFound) {
		utils.RespondWithJSON(w, http.StatusOK, dto.CheckReferralResponseDTO{Valid: false})
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check referral")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckReferralResponseDTO{
		Valid:    true,
		Referrer: &dto.ReferrerDTO{ID: referrer.ID, Username: referrer.Username},
	})
}

// MaintenanceStatus godoc
//
//	@Summary		Public system status
//	@Description	Maintenance flag, announcement and the current fees.
//	@Tags			Account
//	@Produce		json
//	@Success		200	{object}	dto.MaintenanceResponseDTO
//	@Router			/api/maintenance-status [get]
func (h *AccountHandler) MaintenanceStatus(w http.ResponseWriter, r *http.Request) {
	settings, err := h.accountService.PublicStatus(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MaintenanceResponseDTO{
		Maintenance:        settings.Maintenance,
		Announcement:       settings.Announcement,
		AnnouncementActive: settings.AnnouncementActive,
		DepositFeePercent:  settings.DepositFeePercent,
		WithdrawFeePercent: settings.WithdrawFeePercent,
	})
}

// ClientLog godoc
//
//	@Summary	Record a client-side log line
//	@Tags		Account
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ClientLogRequestDTO	true	"Log line"
//	@Success	200		{object}	dto.MessageResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	422		{object}	utils.Response	"Missing action"
//	@Failure	429		{object}	utils.Response	"Too many requests"
//	@Router		/api/log [post]
func (h *AccountHandler) ClientLog(w http.ResponseWriter, r *http.Request) {
	var req dto.ClientLogRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.activity.RecordClient(r.Context(), req.User, req.Action, req.Details); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "ok"})
}

// GetUser godoc
//
//	@Summary	Current account with rigs, balance and hashrate
//	@Tags		Account
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.AccountDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	404	{object}	utils.Response	"Account not found"
//	@Router		/api/user [get]
func (h *AccountHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountService.Get(r.Context(), auth.UsernameFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccount(account))
}

// Sync godoc
//
//	@Summary		Collect mining income
//	@Description	Credit the income earned since the last activity, capped at one day.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SyncResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Router			/api/user/sync [post]
func (h *AccountHandler) Sync(w http.ResponseWriter, r *http.Request) {
	account, credited, err := h.accountService.Sync(r.Context(), auth.UsernameFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SyncResponseDTO{
		Credited: credited,
		User:     dto.NewAccount(account),
	})
}

// GetReferrals godoc
//
//	@Summary	Accounts registered with the current user's code
//	@Tags		Account
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.ReferralDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/user/referrals [get]
func (h *AccountHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	referrals, err := h.accountService.Referrals(r.Context(), auth.UsernameFromContext(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.ReferralDTO, len(referrals))
	for i, a := range referrals {
		response[i] = dto.ReferralDTO{
			Username:  a.Username,
			Name:      a.Name,
			Status:    string(a.Status),
			CreatedAt: a.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetNotifications godoc
//
//	@Summary	Notifications of the current user, newest first
//	@Tags		Account
//	@Security	BearerAuth
//	@Produce	json
//	@Param		unread	query		bool	false	"Only unread"
//	@Success	200		{array}		dto.NotificationDTO
//	@Failure	401		{object}	utils.Response	"User not authorized"
//	@Router		/api/user/notifications [get]
func (h *AccountHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	unread := r.URL.Query().Get("unread") == "true"
	notifications, err := h.accountService.Notifications(r.Context(), auth.UsernameFromContext(r.Context()), unread)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.NotificationDTO, len(notifications))
	for i, n := range notifications {
		response[i] = dto.NotificationDTO{
			ID:        n.ID,
			Message:   n.Message,
			Kind:      string(n.Kind),
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkNotificationRead godoc
//
//	@Summary	Mark a notification as read
//	@Tags		Account
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Notification id"
//	@Success	200	{object}	dto.MessageResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	404	{object}	utils.Response	"Notification not found"
//	@Router		/api/user/notifications/{id}/read [post]
func (h *AccountHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}
	if err := h.accountService.MarkNotificationRead(r.Context(), auth.UsernameFromContext(r.Context()), id); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "ok"})
}
