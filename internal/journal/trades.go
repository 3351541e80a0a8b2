package journal

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"gitlab.com/avollard/tradebook/internal/models"
)

// TradeInput carries the caller-supplied fields of a new trade. An empty
// Result is derived from the prices when an exit price is present.
type TradeInput struct {
	Devise     models.Devise
	Type       models.TradeType
	EntryPrice float64
	ExitPrice  *float64
	StopLoss   *float64
	TakeProfit *float64
	RR         *float64
	Result     models.TradeResult
	Gain       *float64
	Loss       *float64
	Comment    string
}

// TradeUpdate carries a partial update; nil fields keep their current value.
type TradeUpdate struct {
	Devise     *models.Devise
	Type       *models.TradeType
	EntryPrice *float64
	ExitPrice  *float64
	StopLoss   *float64
	TakeProfit *float64
	RR         *float64
	Result     *models.TradeResult
	Gain       *float64
	Loss       *float64
	Comment    *string
}

// normalizeLoss enforces the storage convention that loss is non-positive,
// so running balances can be summed as gain + loss everywhere.
func normalizeLoss(loss *float64) *float64 {
	if loss == nil {
		return nil
	}
	l := -math.Abs(*loss)
	return &l
}

func (j *Journal) CreateTrade(ctx context.Context, userID string, in TradeInput) (models.Trade, error) {
	result := in.Result
	if result == "" {
		if in.ExitPrice == nil {
			return models.Trade{}, ErrResultRequired
		}
		result = models.ClassifyResult(in.Type, in.EntryPrice, *in.ExitPrice)
	}

	now := time.Now().UTC()
	trade := models.Trade{
		ID:         uuid.NewString(),
		UserID:     userID,
		Devise:     in.Devise,
		Type:       in.Type,
		EntryPrice: in.EntryPrice,
		ExitPrice:  in.ExitPrice,
		StopLoss:   in.StopLoss,
		TakeProfit: in.TakeProfit,
		RR:         in.RR,
		Result:     result,
		Gain:       in.Gain,
		Loss:       normalizeLoss(in.Loss),
		Comment:    in.Comment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := j.store.InsertTrade(ctx, trade); err != nil {
		return models.Trade{}, err
	}
	j.logger.Debug().Str("trade", trade.ID).Str("user", userID).Msg("trade created")
	return trade, nil
}

func (j *Journal) UpdateTrade(ctx context.Context, userID, id string, in TradeUpdate) (models.Trade, error) {
	trade, err := j.store.GetTrade(ctx, userID, id)
	if err != nil {
		return models.Trade{}, err
	}

	if in.Devise != nil {
		trade.Devise = *in.Devise
	}
	if in.Type != nil {
		trade.Type = *in.Type
	}
	if in.EntryPrice != nil {
		trade.EntryPrice = *in.EntryPrice
	}
	if in.ExitPrice != nil {
		trade.ExitPrice = in.ExitPrice
	}
	if in.StopLoss != nil {
		trade.StopLoss = in.StopLoss
	}
	if in.TakeProfit != nil {
		trade.TakeProfit = in.TakeProfit
	}
	if in.RR != nil {
		trade.RR = in.RR
	}
	if in.Gain != nil {
		trade.Gain = in.Gain
	}
	if in.Loss != nil {
		trade.Loss = normalizeLoss(in.Loss)
	}
	if in.Comment != nil {
		trade.Comment = *in.Comment
	}

	switch {
	case in.Result != nil:
		trade.Result = *in.Result
	case in.ExitPrice != nil:
		trade.Result = models.ClassifyResult(trade.Type, trade.EntryPrice, *in.ExitPrice)
	}

	trade.UpdatedAt = time.Now().UTC()
	if err := j.store.UpdateTrade(ctx, trade); err != nil {
		return models.Trade{}, err
	}
	return trade, nil
}

func (j *Journal) GetTrade(ctx context.Context, userID, id string) (models.Trade, error) {
	return j.store.GetTrade(ctx, userID, id)
}

// ListTrades returns the user's trades newest first.
func (j *Journal) ListTrades(ctx context.Context, userID string) (models.Trades, error) {
	return j.store.GetTrades(ctx, userID)
}

func (j *Journal) DeleteTrade(ctx context.Context, userID, id string) error {
	return j.store.DeleteTrade(ctx, userID, id)
}
