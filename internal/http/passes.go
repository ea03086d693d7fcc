package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vbncursed/vkr/wallet-service/internal/http/dto"
	issvc "github.com/vbncursed/vkr/wallet-service/internal/service"
)

// Issuer — срез use case'ов, нужных HTTP-слою
type Issuer interface {
	IssueSaveLink(ctx context.Context, cmd issvc.IssuePassCommand) (issvc.IssuePassResult, error)
	GetIssuedPass(ctx context.Context, id string) (issvc.IssuedPassRecord, error)
	PreviewEnvelope(cmd issvc.IssuePassCommand) string
}

// CreatePass — выпуск save-ссылки
// @Summary     Выпуск пасса и save-ссылки
// @Tags        passes
// @Accept      json
// @Produce     json
// @Param       request body dto.CreatePassRequest true "Create pass"
// @Success     201 {object} dto.CreatePassResponse
// @Failure     400 {object} APIError
// @Failure     503 {object} APIError
// @Router      /passes [post]
func CreatePass(svc Issuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreatePassRequest
		if err := c.Bind(&req); err != nil {
			return writeJSON(c, http.StatusBadRequest, APIError{Code: "invalid_request", Message: "malformed"})
		}
		if err := req.Validate(); err != nil {
			status, body := MapError(err)
			return writeJSON(c, status, body)
		}
		res, err := svc.IssueSaveLink(c.Request().Context(), req.ToCommand())
		if err != nil {
			status, body := MapError(err)
			return writeJSON(c, status, body)
		}
		return writeJSON(c, http.StatusCreated, dto.FromIssueResult(res))
	}
}

// GetPass — запись о выпуске по идентификатору
// @Summary     Получить запись о выпуске
// @Tags        passes
// @Produce     json
// @Param       id  path string true "Issued pass ID"
// @Success     200 {object} dto.GetPassResponse
// @Failure     404 {object} APIError
// @Router      /passes/{id} [get]
func GetPass(svc Issuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			return writeJSON(c, http.StatusBadRequest, APIError{Code: "invalid_request", Message: "id"})
		}
		rec, err := svc.GetIssuedPass(c.Request().Context(), id)
		if err != nil {
			status, body := MapError(err)
			return writeJSON(c, status, body)
		}
		return writeJSON(c, http.StatusOK, dto.FromRecord(rec))
	}
}

// PreviewPass — отладочный конверт без подписи; ошибки сборки попадают в
// тело ответа, а не в статус (диагностический путь)
// @Summary     Конверт пасса без подписи
// @Tags        passes
// @Accept      json
// @Produce     json
// @Param       request body dto.CreatePassRequest true "Preview pass"
// @Success     200 {object} dto.PreviewResponse
// @Failure     400 {object} APIError
// @Router      /passes/preview [post]
func PreviewPass(svc Issuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreatePassRequest
		if err := c.Bind(&req); err != nil {
			return writeJSON(c, http.StatusBadRequest, APIError{Code: "invalid_request", Message: "malformed"})
		}
		if err := req.Validate(); err != nil {
			status, body := MapError(err)
			return writeJSON(c, status, body)
		}
		return writeJSON(c, http.StatusOK, dto.PreviewResponse{Envelope: svc.PreviewEnvelope(req.ToCommand())})
	}
}
