package domain

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidState        = errors.New("transaction is not pending")
	ErrInvalidAmount       = errors.New("amount must be positive with at most 8 decimals")

	ErrInvalidStatus      = errors.New("invalid account status")
	ErrInvalidBonusKind   = errors.New("invalid bonus kind")
	ErrReferrerNotFound   = errors.New("referrer not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrShopDisabled       = errors.New("shop is disabled")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAccountIDTaken       = errors.New("account id already taken")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrConflict             = errors.New("concurrent update, retry")
	ErrMaintenance          = errors.New("system is under maintenance")
	ErrPendingTransactions  = errors.New("account has pending transactions")
)
