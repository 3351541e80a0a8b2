// Package inmemorydb is a mutex-guarded store used by tests and by the
// no-database development mode.
package inmemorydb

import (
	"context"
	"sort"
	"sync"

	"gitlab.com/avollard/tradebook/internal/models"
	"gitlab.com/avollard/tradebook/internal/store"
)

type InMemoryDb struct {
	mux    sync.Mutex
	users  map[string]models.User
	trades map[string]models.Trade
}

func NewClient() (*InMemoryDb, error) {
	return &InMemoryDb{
		users:  make(map[string]models.User),
		trades: make(map[string]models.Trade),
	}, nil
}

func (m *InMemoryDb) Ping(ctx context.Context) error {
	return nil
}

func (m *InMemoryDb) CreateUser(ctx context.Context, user models.User) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *InMemoryDb) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (m *InMemoryDb) GetUserByID(ctx context.Context, id string) (models.User, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	user, ok := m.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func (m *InMemoryDb) InsertTrade(ctx context.Context, trade models.Trade) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.trades[trade.ID] = trade
	return nil
}

// GetTrades lists the user's trades newest first, matching the mongo store.
func (m *InMemoryDb) GetTrades(ctx context.Context, userID string) (models.Trades, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	result := make(models.Trades, 0)
	for _, trade := range m.trades {
		if trade.UserID == userID {
			result = append(result, trade)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *InMemoryDb) GetTrade(ctx context.Context, userID, id string) (models.Trade, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	trade, ok := m.trades[id]
	if !ok || trade.UserID != userID {
		return models.Trade{}, store.ErrNotFound
	}
	return trade, nil
}

func (m *InMemoryDb) UpdateTrade(ctx context.Context, trade models.Trade) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	existing, ok := m.trades[trade.ID]
	if !ok || existing.UserID != trade.UserID {
		return store.ErrNotFound
	}
	m.trades[trade.ID] = trade
	return nil
}

func (m *InMemoryDb) DeleteTrade(ctx context.Context, userID, id string) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	trade, ok := m.trades[id]
	if !ok || trade.UserID != userID {
		return store.ErrNotFound
	}
	delete(m.trades, id)
	return nil
}
