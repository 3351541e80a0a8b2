package store

import (
	"context"

	"github.com/pkg/errors"

	"gitlab.com/avollard/tradebook/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist or belongs to
	// another user. The two cases are indistinguishable on purpose.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when registering an email twice.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store persists users and their trades. Every trade operation is scoped by
// the owning user's id; ownership is enforced here and nowhere else.
type Store interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)

	InsertTrade(ctx context.Context, trade models.Trade) error
	// GetTrades returns the user's trades newest first. Callers needing
	// chronological order must sort themselves.
	GetTrades(ctx context.Context, userID string) (models.Trades, error)
	GetTrade(ctx context.Context, userID, id string) (models.Trade, error)
	UpdateTrade(ctx context.Context, trade models.Trade) error
	DeleteTrade(ctx context.Context, userID, id string) error
}
