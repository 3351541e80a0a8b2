package journal

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/avollard/tradebook/internal/auth"
	"gitlab.com/avollard/tradebook/internal/config"
	"gitlab.com/avollard/tradebook/internal/models"
	"gitlab.com/avollard/tradebook/internal/store"
	"gitlab.com/avollard/tradebook/internal/store/inmemorydb"
)

func f(v float64) *float64 { return &v }

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	db, err := inmemorydb.NewClient()
	require.NoError(t, err)
	issuer := auth.NewIssuer(config.AuthConfiguration{
		Secret:     "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: 4,
	})
	return New(db, issuer, zerolog.Nop())
}

func TestRegisterAndAuthenticate(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	user, err := j.Register(ctx, "a@b.c", "alice", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.PasswordHash, "hash must not leave the service")

	token, err := j.Authenticate(ctx, "a@b.c", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = j.Authenticate(ctx, "a@b.c", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
	_, err = j.Authenticate(ctx, "nobody@b.c", "hunter22")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	_, err := j.Register(ctx, "a@b.c", "alice", "hunter22")
	require.NoError(t, err)
	_, err = j.Register(ctx, "a@b.c", "alice2", "hunter22")
	assert.Equal(t, store.ErrDuplicateEmail, err)
}

func TestCreateTradeDerivesResult(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	trade, err := j.CreateTrade(ctx, "u1", TradeInput{
		Devise:     models.DeviseEURUSD,
		Type:       models.TradeTypeLong,
		EntryPrice: 1.1000,
		ExitPrice:  f(1.1100),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ResultWin, trade.Result)

	trade, err = j.CreateTrade(ctx, "u1", TradeInput{
		Devise:     models.DeviseEURUSD,
		Type:       models.TradeTypeShort,
		EntryPrice: 1.1000,
		ExitPrice:  f(1.1100),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ResultLoss, trade.Result)
}

func TestCreateTradeExplicitResultWins(t *testing.T) {
	j := newTestJournal(t)

	// A supplied result is kept even when an exit price is present.
	trade, err := j.CreateTrade(context.Background(), "u1", TradeInput{
		Devise:     models.DeviseEURUSD,
		Type:       models.TradeTypeLong,
		EntryPrice: 1.1000,
		ExitPrice:  f(1.1000),
		Result:     models.ResultBreakEven,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ResultBreakEven, trade.Result)
}

func TestCreateTradeWithoutResultOrExit(t *testing.T) {
	j := newTestJournal(t)
	_, err := j.CreateTrade(context.Background(), "u1", TradeInput{
		Devise:     models.DeviseEURUSD,
		Type:       models.TradeTypeLong,
		EntryPrice: 1.1000,
	})
	assert.Equal(t, ErrResultRequired, err)
}

func TestLossStoredNonPositive(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	trade, err := j.CreateTrade(ctx, "u1", TradeInput{
		Devise:     models.DeviseEURUSD,
		Type:       models.TradeTypeLong,
		EntryPrice: 1.1,
		Result:     models.ResultLoss,
		Loss:       f(35), // magnitude supplied positive
	})
	require.NoError(t, err)
	require.NotNil(t, trade.Loss)
	assert.Equal(t, -35.0, *trade.Loss)

	// Already-negative input stays as is.
	trade, err = j.CreateTrade(ctx, "u1", TradeInput{
		Devise:     models.DeviseEURUSD,
		Type:       models.TradeTypeLong,
		EntryPrice: 1.1,
		Result:     models.ResultLoss,
		Loss:       f(-20),
	})
	require.NoError(t, err)
	assert.Equal(t, -20.0, *trade.Loss)
}

func TestUpdateTradeReclassifies(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	trade, err := j.CreateTrade(ctx, "u1", TradeInput{
		Devise:     models.DeviseEURUSD,
		Type:       models.TradeTypeLong,
		EntryPrice: 1.1000,
		Result:     models.ResultBreakEven,
	})
	require.NoError(t, err)

	// Supplying an exit price without a result rederives the outcome.
	updated, err := j.UpdateTrade(ctx, "u1", trade.ID, TradeUpdate{ExitPrice: f(1.1200)})
	require.NoError(t, err)
	assert.Equal(t, models.ResultWin, updated.Result)

	// An explicit result wins over the classifier.
	breakEven := models.ResultBreakEven
	updated, err = j.UpdateTrade(ctx, "u1", trade.ID, TradeUpdate{
		ExitPrice: f(1.1300),
		Result:    &breakEven,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ResultBreakEven, updated.Result)
}

func TestUpdateForeignTrade(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	trade, err := j.CreateTrade(ctx, "owner", TradeInput{
		Devise:     models.DeviseEURUSD,
		Type:       models.TradeTypeLong,
		EntryPrice: 1.1,
		Result:     models.ResultWin,
		Gain:       f(10),
	})
	require.NoError(t, err)

	_, err = j.UpdateTrade(ctx, "intruder", trade.ID, TradeUpdate{Comment: strPtr("mine now")})
	assert.Equal(t, store.ErrNotFound, err)
	assert.Equal(t, store.ErrNotFound, j.DeleteTrade(ctx, "intruder", trade.ID))
}

func strPtr(s string) *string { return &s }

func TestStatisticsOverOwnTradesOnly(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	for _, userID := range []string{"u1", "u2"} {
		_, err := j.CreateTrade(ctx, userID, TradeInput{
			Devise:     models.DeviseEURUSD,
			Type:       models.TradeTypeLong,
			EntryPrice: 1.1,
			Result:     models.ResultWin,
			Gain:       f(100),
		})
		require.NoError(t, err)
	}
	_, err := j.CreateTrade(ctx, "u2", TradeInput{
		Devise:     models.DeviseGBPUSD,
		Type:       models.TradeTypeShort,
		EntryPrice: 1.3,
		Result:     models.ResultLoss,
		Loss:       f(40),
	})
	require.NoError(t, err)

	s1, err := j.GlobalStatistics(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, s1.TotalTrades)
	assert.Equal(t, 100.0, s1.TotalGain)

	s2, err := j.GlobalStatistics(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 2, s2.TotalTrades)
	assert.Equal(t, 60.0, s2.NetResult)
}

func TestHealth(t *testing.T) {
	j := newTestJournal(t)
	health := j.Health(context.Background())
	assert.Equal(t, "ok", health.Service)
	assert.Equal(t, "ok", health.Database)
}
