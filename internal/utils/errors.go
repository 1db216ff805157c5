package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrAccountInactive    = errors.New("ACCOUNT_INACTIVE")
	ErrProductNotFound    = errors.New("PRODUCT_NOT_FOUND")
	ErrVariantNotFound    = errors.New("VARIANT_NOT_FOUND")
	ErrOrderNotFound      = errors.New("ORDER_NOT_FOUND")
	ErrUserNotFound       = errors.New("USER_NOT_FOUND")
	ErrPreOrderClosed     = errors.New("PREORDER_CLOSED")
	ErrEmailExists        = errors.New("EMAIL_EXISTS")
	ErrUploadFailed       = errors.New("UPLOAD_FAILED")
)
