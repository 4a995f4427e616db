package domain

import "errors"

var (
	ErrProfileIncomplete  = errors.New("user profile is incomplete")
	ErrInvalidAmount      = errors.New("invalid order amount")
	ErrInvalidCardNumber  = errors.New("card number failed validation")
	ErrNoWalletAvailable  = errors.New("no wallet available for network")
	ErrOrderNotModifiable = errors.New("order status does not allow this transition")
	ErrNotOwner           = errors.New("order belongs to another user")
	ErrNotAuthorized      = errors.New("actor is not authorized for this operation")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrRateNotSet         = errors.New("exchange rate is not set")
)
