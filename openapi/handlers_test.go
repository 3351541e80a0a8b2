package openapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/avollard/tradebook/internal/auth"
	"gitlab.com/avollard/tradebook/internal/config"
	"gitlab.com/avollard/tradebook/internal/journal"
	"gitlab.com/avollard/tradebook/internal/models"
	"gitlab.com/avollard/tradebook/internal/store/inmemorydb"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := inmemorydb.NewClient()
	require.NoError(t, err)
	issuer := auth.NewIssuer(config.AuthConfiguration{
		Secret:     "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: 4,
	})
	svc := journal.New(db, issuer, zerolog.Nop())

	e := echo.New()
	e.Validator = NewValidator()
	RegisterHandlers(e, New(svc, zerolog.Nop()), issuer.Middleware())
	return e
}

func do(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/v1/auth/register", "",
		`{"email":"`+email+`","username":"trader","password":"hunter22"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(e, http.MethodPost, "/v1/auth/login", "",
		`{"email":"`+email+`","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tokenResp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokenResp))
	require.NotEmpty(t, tokenResp.AccessToken)
	return tokenResp.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t)
	rec := do(e, http.MethodGet, "/v1/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"ok"`)
}

func TestRegisterValidation(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/v1/auth/register", "",
		`{"email":"not-an-email","username":"trader","password":"hunter22"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/v1/auth/register", "",
		`{"email":"a@b.c","username":"trader","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDuplicateRegistration(t *testing.T) {
	e := newTestServer(t)
	registerAndLogin(t, e, "a@b.c")

	rec := do(e, http.MethodPost, "/v1/auth/register", "",
		`{"email":"a@b.c","username":"trader2","password":"hunter22"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	e := newTestServer(t)
	registerAndLogin(t, e, "a@b.c")

	rec := do(e, http.MethodPost, "/v1/auth/login", "",
		`{"email":"a@b.c","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTradesRequireToken(t *testing.T) {
	e := newTestServer(t)
	assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodGet, "/v1/trades", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodGet, "/v1/stats/global", "", "").Code)
}

func TestTradeLifecycle(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e, "a@b.c")

	// Created without an explicit result: the classifier fills it in.
	rec := do(e, http.MethodPost, "/v1/trades", token,
		`{"devise":"EURUSD","type":"LONG","entry_price":1.1,"exit_price":1.12,"gain":50,"rr":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var trade models.Trade
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trade))
	assert.Equal(t, models.ResultWin, trade.Result)
	require.NotEmpty(t, trade.ID)

	rec = do(e, http.MethodGet, "/v1/trades", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var trades models.Trades
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trades))
	require.Len(t, trades, 1)

	rec = do(e, http.MethodPut, "/v1/trades/"+trade.ID, token, `{"comment":"scaled out early"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trade))
	assert.Equal(t, "scaled out early", trade.Comment)

	rec = do(e, http.MethodDelete, "/v1/trades/"+trade.ID, token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodGet, "/v1/trades/"+trade.ID, token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateTradeRejectsNegativePrice(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e, "a@b.c")

	rec := do(e, http.MethodPost, "/v1/trades", token,
		`{"devise":"EURUSD","type":"LONG","entry_price":-1.1,"result":"WIN"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/v1/trades", token,
		`{"devise":"NOTAPAIR","type":"LONG","entry_price":1.1,"result":"WIN"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGlobalStatisticsEndpoint(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e, "a@b.c")

	rec := do(e, http.MethodPost, "/v1/trades", token,
		`{"devise":"EURUSD","type":"LONG","entry_price":1.1,"result":"WIN","gain":100}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(e, http.MethodPost, "/v1/trades", token,
		`{"devise":"EURUSD","type":"SHORT","entry_price":1.2,"result":"LOSS","loss":40}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodGet, "/v1/stats/global", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.GlobalStatistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalTrades)
	assert.Equal(t, 100.0, stats.TotalGain)
	assert.Equal(t, 40.0, stats.TotalLoss)
	assert.Equal(t, 60.0, stats.NetResult)
	assert.Equal(t, 50.0, stats.WinRate)
}

func TestBestRRNullBelowThreshold(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e, "a@b.c")

	rec := do(e, http.MethodPost, "/v1/trades", token,
		`{"devise":"EURUSD","type":"LONG","entry_price":1.1,"result":"WIN","gain":10,"rr":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodGet, "/v1/stats/best-rr/winrate", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestStatsIsolationBetweenUsers(t *testing.T) {
	e := newTestServer(t)
	alice := registerAndLogin(t, e, "alice@b.c")
	bob := registerAndLogin(t, e, "bob@b.c")

	rec := do(e, http.MethodPost, "/v1/trades", alice,
		`{"devise":"EURUSD","type":"LONG","entry_price":1.1,"result":"WIN","gain":100}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodGet, "/v1/stats/global", bob, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.GlobalStatistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 0, stats.TotalTrades)
}
