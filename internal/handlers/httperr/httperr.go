// Package httperr maps domain errors onto HTTP responses.
package httperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/pkg/utils"
)

type mapping struct {
	err  error
	code int
}

var mappings = []mapping{
	{domain.ErrAccountNotFound, http.StatusNotFound},
	{domain.ErrItemNotFound, http.StatusNotFound},
	{domain.ErrTransactionNotFound, http.StatusNotFound},
	{domain.ErrNotificationNotFound, http.StatusNotFound},
	{domain.ErrReferrerNotFound, http.StatusNotFound},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
	{domain.ErrInvalidState, http.StatusConflict},
	{domain.ErrUsernameTaken, http.StatusConflict},
	{domain.ErrAccountIDTaken, http.StatusConflict},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrPendingTransactions, http.StatusConflict},
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{domain.ErrInvalidStatus, http.StatusUnprocessableEntity},
	{domain.ErrInvalidBonusKind, http.StatusUnprocessableEntity},
	{domain.ErrInvalidInput, http.StatusUnprocessableEntity},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrShopDisabled, http.StatusServiceUnavailable},
	{domain.ErrMaintenance, http.StatusServiceUnavailable},
	{context.Canceled, http.StatusServiceUnavailable},
	{context.DeadlineExceeded, http.StatusServiceUnavailable},
}

// Status returns the response code for err. Unknown errors are internal.
func Status(err error) int {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return m.code
		}
	}
	return http.StatusInternalServerError
}

// Respond writes err as a JSON error body. Internal errors are not exposed.
func Respond(w http.ResponseWriter, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}
