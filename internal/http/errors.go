package http

import (
	"errors"
	"net/http"

	"github.com/vbncursed/vkr/wallet-service/internal/credentials"
	"github.com/vbncursed/vkr/wallet-service/internal/http/dto"
	issvc "github.com/vbncursed/vkr/wallet-service/internal/service"
	"github.com/vbncursed/vkr/wallet-service/internal/wallet"
)

// MapError переводит доменные/DTO ошибки в HTTP статус и тело APIError
func MapError(err error) (int, APIError) {
	switch {
	// DTO validation
	case errors.Is(err, dto.ErrIssuerIDRequired):
		return http.StatusBadRequest, APIError{Code: "invalid_request", Message: "issuer_id required"}
	case errors.Is(err, dto.ErrPassIDRequired):
		return http.StatusBadRequest, APIError{Code: "invalid_request", Message: "pass_id required"}
	case errors.Is(err, dto.ErrClassIDRequired):
		return http.StatusBadRequest, APIError{Code: "invalid_request", Message: "class_id required"}
	case errors.Is(err, dto.ErrBarcodeValue):
		return http.StatusBadRequest, APIError{Code: "invalid_request", Message: "barcode value required"}
	case errors.Is(err, dto.ErrBadPlatform):
		return http.StatusBadRequest, APIError{Code: "invalid_request", Message: "unknown app link platform"}

	// Builder preconditions
	case errors.Is(err, wallet.ErrClassRequired):
		return http.StatusBadRequest, APIError{Code: "precondition", Message: "pass class must exist first"}
	case errors.Is(err, wallet.ErrNotConfigured):
		return http.StatusServiceUnavailable, APIError{Code: "not_configured", Message: "signing credentials not configured"}

	// Credentials
	case errors.Is(err, credentials.ErrNoKeyMaterial), errors.Is(err, credentials.ErrUnreadable):
		return http.StatusServiceUnavailable, APIError{Code: "credentials", Message: "issuer credentials unavailable"}

	// Service errors
	case errors.Is(err, issvc.ErrNotFound):
		return http.StatusNotFound, APIError{Code: "not_found", Message: "pass not found"}
	}
	return http.StatusInternalServerError, APIError{Code: "internal", Message: "internal error"}
}
