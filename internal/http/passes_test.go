package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	issvc "github.com/vbncursed/vkr/wallet-service/internal/service"
	"github.com/vbncursed/vkr/wallet-service/internal/wallet"
)

type mockIssuer struct {
	gotCmd   issvc.IssuePassCommand
	issueRes issvc.IssuePassResult
	issueErr error
	rec      issvc.IssuedPassRecord
	recErr   error
	preview  string
}

func (m *mockIssuer) IssueSaveLink(_ context.Context, cmd issvc.IssuePassCommand) (issvc.IssuePassResult, error) {
	m.gotCmd = cmd
	return m.issueRes, m.issueErr
}

func (m *mockIssuer) GetIssuedPass(_ context.Context, _ string) (issvc.IssuedPassRecord, error) {
	return m.rec, m.recErr
}

func (m *mockIssuer) PreviewEnvelope(cmd issvc.IssuePassCommand) string {
	m.gotCmd = cmd
	return m.preview
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Binder = StrictJSONBinder{}
	e.HTTPErrorHandler = DefaultHTTPErrorHandler
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreatePassOK(t *testing.T) {
	m := &mockIssuer{issueRes: issvc.IssuePassResult{
		ID:       "rec-1",
		ObjectID: "3388.p1",
		ClassID:  "3388.c1",
		Token:    "a.b.c",
		SaveURL:  wallet.SaveURLPrefix + "a.b.c",
	}}
	e := newEcho()
	e.POST("/passes", CreatePass(m))

	rec := doJSON(e, http.MethodPost, "/passes",
		`{"issuer_id":"3388","pass_id":"p1","class_id":"c1","issuer_name":"Acme","card_title":""}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rec-1", resp["id"])
	assert.Equal(t, wallet.SaveURLPrefix+"a.b.c", resp["save_url"])

	// пустая строка в card_title должна дойти до команды как заданное значение
	require.NotNil(t, m.gotCmd.CardTitle)
	assert.Equal(t, "", *m.gotCmd.CardTitle)
	assert.Equal(t, "Acme", m.gotCmd.IssuerName)
}

func TestCreatePassValidation(t *testing.T) {
	e := newEcho()
	e.POST("/passes", CreatePass(&mockIssuer{}))

	rec := doJSON(e, http.MethodPost, "/passes", `{"pass_id":"p1","class_id":"c1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp.Code)
}

func TestCreatePassPreconditionMapped(t *testing.T) {
	m := &mockIssuer{issueErr: wallet.ErrClassRequired}
	e := newEcho()
	e.POST("/passes", CreatePass(m))

	rec := doJSON(e, http.MethodPost, "/passes",
		`{"issuer_id":"3388","pass_id":"p1","class_id":"c1","template_rows":[{"first":"object.header"}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "precondition", resp.Code)
}

func TestGetPassNotFound(t *testing.T) {
	m := &mockIssuer{recErr: issvc.ErrNotFound}
	e := newEcho()
	e.GET("/passes/:id", GetPass(m))

	rec := doJSON(e, http.MethodGet, "/passes/missing", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Code)
}

func TestPreviewPass(t *testing.T) {
	m := &mockIssuer{preview: `{"aud": "google"}`}
	e := newEcho()
	e.POST("/passes/preview", PreviewPass(m))

	rec := doJSON(e, http.MethodPost, "/passes/preview",
		`{"issuer_id":"3388","pass_id":"p1","class_id":"c1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, `{"aud": "google"}`, resp["envelope"])
}

func TestStrictJSONBinderRejectsUnknownFields(t *testing.T) {
	e := newEcho()
	e.POST("/passes", CreatePass(&mockIssuer{}))

	rec := doJSON(e, http.MethodPost, "/passes",
		`{"issuer_id":"3388","pass_id":"p1","class_id":"c1","bogus":true}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
