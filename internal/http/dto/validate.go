package dto

import (
	"errors"
	"strings"
)

var (
	ErrIssuerIDRequired = errors.New("issuer_id required")
	ErrPassIDRequired   = errors.New("pass_id required")
	ErrClassIDRequired  = errors.New("class_id required")
	ErrBarcodeValue     = errors.New("barcode value required")
	ErrBadPlatform      = errors.New("app link platform must be android, ios or web")
)

// Validate проверяет инварианты CreatePassRequest
func (r CreatePassRequest) Validate() error {
	if strings.TrimSpace(r.IssuerID) == "" {
		return ErrIssuerIDRequired
	}
	if strings.TrimSpace(r.PassID) == "" {
		return ErrPassIDRequired
	}
	if strings.TrimSpace(r.ClassID) == "" {
		return ErrClassIDRequired
	}
	if r.Barcode != nil && strings.TrimSpace(r.Barcode.Value) == "" {
		return ErrBarcodeValue
	}
	for _, al := range r.AppLinks {
		switch al.Platform {
		case "android", "ios", "web":
		default:
			return ErrBadPlatform
		}
	}
	return nil
}
