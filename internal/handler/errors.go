package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/warungpo/preorder_api/internal/service"
	"github.com/warungpo/preorder_api/internal/utils"
)

// respondError maps service errors onto the response envelope. Anything
// unrecognized is logged and surfaced as a 500.
func respondError(c *gin.Context, err error) {
	var fields service.ValidationErrors
	if errors.As(err, &fields) {
		utils.ValidationError(c, fields)
		return
	}

	switch {
	case errors.Is(err, utils.ErrProductNotFound):
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
	case errors.Is(err, utils.ErrVariantNotFound):
		utils.Error(c, 404, "VARIANT_NOT_FOUND", "Variant not found")
	case errors.Is(err, utils.ErrOrderNotFound):
		utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
	case errors.Is(err, utils.ErrUserNotFound):
		utils.Error(c, 404, "USER_NOT_FOUND", "Admin user not found")
	case errors.Is(err, utils.ErrPreOrderClosed):
		utils.Error(c, 403, "PREORDER_CLOSED", "Pre-order is currently closed")
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, utils.ErrAccountInactive):
		utils.Error(c, 403, "ACCOUNT_INACTIVE", "Account is disabled")
	case errors.Is(err, utils.ErrInvalidToken):
		utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
	case errors.Is(err, utils.ErrEmailExists):
		utils.Error(c, 409, "EMAIL_EXISTS", "Email is already registered")
	case errors.Is(err, utils.ErrUploadFailed):
		utils.Error(c, 502, "UPLOAD_FAILED", "Image upload failed")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
		utils.Error(c, 500, "INTERNAL_ERROR", "Internal server error")
	}
}
