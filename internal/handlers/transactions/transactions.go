package transactions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/internal/dto"
	"github.com/GlebRadaev/rigledger/internal/handlers/httperr"
	"github.com/GlebRadaev/rigledger/pkg/auth"
	"github.com/GlebRadaev/rigledger/pkg/utils"
)

type Service interface {
	CreateDeposit(ctx context.Context, username string, amount decimal.Decimal, method string) (*domain.Transaction, error)
	CreateWithdraw(ctx context.Context, username string, amount decimal.Decimal, bank, bankAccount string) (*domain.Transaction, error)
	ListByUser(ctx context.Context, username string) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
	}
}

// Deposit godoc
//
//	@Summary		Request a deposit
//	@Description	Record a pending deposit. The balance is credited when an admin approves it.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request"
//	@Success		200		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Amount must be positive"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/deposit [post]
func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tx, err := h.ledgerService.CreateDeposit(r.Context(), auth.UsernameFromContext(r.Context()), req.Amount, req.Method)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransaction(tx))
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Hold the amount on the balance and record a pending withdrawal.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request"
//	@Success		200		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		422		{object}	utils.Response	"Amount must be positive"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/withdraw [post]
func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tx, err := h.ledgerService.CreateWithdraw(r.Context(), auth.UsernameFromContext(r.Context()), req.Amount, req.Bank, req.BankAccount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransaction(tx))
}

// GetTransactions godoc
//
//	@Summary	Transaction history of the current user, newest first
//	@Tags		Transactions
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.TransactionDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/user/transactions [get]
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.ledgerService.ListByUser(r.Context(), auth.UsernameFromContext(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactions(txs))
}
