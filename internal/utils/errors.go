package utils

import "errors"

// Common application errors used across packages.
var (
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrProductNotFound    = errors.New("PRODUCT_NOT_FOUND")
	ErrOrderNotFound      = errors.New("ORDER_NOT_FOUND")
	ErrInvalidStatus      = errors.New("INVALID_STATUS")
	ErrNotLoggedIn        = errors.New("NOT_LOGGED_IN")
)
