// Package journal is the service layer: it owns the store handle, applies the
// result classifier and the loss sign convention on writes, and hands trade
// snapshots to the pure statistics engine.
package journal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"gitlab.com/avollard/tradebook/internal/auth"
	"gitlab.com/avollard/tradebook/internal/models"
	"gitlab.com/avollard/tradebook/internal/store"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrResultRequired is returned when a trade carries neither an explicit
	// result nor an exit price to derive one from.
	ErrResultRequired = errors.New("result or exit price required")
)

type Journal struct {
	store  store.Store
	issuer *auth.Issuer
	logger zerolog.Logger
}

func New(s store.Store, issuer *auth.Issuer, logger zerolog.Logger) *Journal {
	return &Journal{
		store:  s,
		issuer: issuer,
		logger: logger.With().Str("module", "journal").Logger(),
	}
}

// Register creates a user with a hashed password. The returned user carries
// no hash.
func (j *Journal) Register(ctx context.Context, email, username, password string) (models.User, error) {
	hash, err := j.issuer.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := j.store.CreateUser(ctx, user); err != nil {
		return models.User{}, err
	}
	j.logger.Info().Str("user", user.ID).Msg("user registered")
	user.PasswordHash = ""
	return user, nil
}

// Authenticate checks the credentials and returns a signed access token.
func (j *Journal) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := j.store.GetUserByEmail(ctx, email)
	if err == store.ErrNotFound {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !j.issuer.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return j.issuer.IssueToken(user)
}

// Health reports the state of the service and its database.
func (j *Journal) Health(ctx context.Context) models.HealthStatus {
	health := models.HealthStatus{Service: "ok", Database: "ok"}
	if err := j.store.Ping(ctx); err != nil {
		j.logger.Err(err).Msg("database ping failed")
		health.Database = "unreachable"
	}
	return health
}
