package http

import (
	"crypto/rsa"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vbncursed/vkr/wallet-service/internal/http/dto"
)

type keyHolder interface {
	PublicKey() (string, *rsa.PublicKey)
}

// JWKS — отдать публичный ключ эмитента
// @Summary     JWKS набор ключей
// @Tags        keys
// @Produce     json
// @Success     200 {object} dto.JWKSet
// @Router      /.well-known/keys [get]
func JWKS(svc keyHolder) echo.HandlerFunc {
	return func(c echo.Context) error {
		kid, pub := svc.PublicKey()
		return writeJSON(c, http.StatusOK, dto.FromRSAPublicKey(kid, pub))
	}
}
