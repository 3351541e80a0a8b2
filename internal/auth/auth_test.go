package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/avollard/tradebook/internal/config"
	"gitlab.com/avollard/tradebook/internal/models"
)

func testIssuer(ttl time.Duration) *Issuer {
	return NewIssuer(config.AuthConfiguration{
		Secret:     "test-secret",
		TokenTTL:   ttl,
		BcryptCost: 4, // minimum cost keeps the tests fast
	})
}

func TestPasswordRoundTrip(t *testing.T) {
	issuer := testIssuer(time.Hour)

	hash, err := issuer.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, issuer.CheckPassword(hash, "hunter22"))
	assert.False(t, issuer.CheckPassword(hash, "hunter23"))
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := testIssuer(time.Hour)
	user := models.User{ID: "u1", Email: "a@b.c"}

	token, err := issuer.IssueToken(user)
	require.NoError(t, err)

	userID, err := issuer.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := testIssuer(-time.Minute)
	token, err := issuer.IssueToken(models.User{ID: "u1"})
	require.NoError(t, err)

	_, err = issuer.VerifyToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestForeignSecretRejected(t *testing.T) {
	token, err := testIssuer(time.Hour).IssueToken(models.User{ID: "u1"})
	require.NoError(t, err)

	other := NewIssuer(config.AuthConfiguration{Secret: "other-secret", TokenTTL: time.Hour})
	_, err = other.VerifyToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestMiddleware(t *testing.T) {
	issuer := testIssuer(time.Hour)
	e := echo.New()
	handler := issuer.Middleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, UserID(c))
	})

	call := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authHeader != "" {
			req.Header.Set(echo.HeaderAuthorization, authHeader)
		}
		rec := httptest.NewRecorder()
		err := handler(e.NewContext(req, rec))
		if err != nil {
			e.HTTPErrorHandler(err, e.NewContext(req, rec))
		}
		return rec
	}

	// No header.
	rec := call("")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	rec = call("Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token reaches the handler with the user id set.
	token, err := issuer.IssueToken(models.User{ID: "u42"})
	require.NoError(t, err)
	rec = call("Bearer " + token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u42", rec.Body.String())
}
