package models

import (
	"time"
)

// Devise is the tradable pair a journal entry was taken on.
type Devise string

const (
	DeviseEURUSD Devise = "EURUSD"
	DeviseGBPUSD Devise = "GBPUSD"
	DeviseUSDJPY Devise = "USDJPY"
	DeviseUSDCHF Devise = "USDCHF"
	DeviseAUDUSD Devise = "AUDUSD"
	DeviseUSDCAD Devise = "USDCAD"
	DeviseNZDUSD Devise = "NZDUSD"
	DeviseEURGBP Devise = "EURGBP"
	DeviseEURJPY Devise = "EURJPY"
	DeviseGBPJPY Devise = "GBPJPY"
	DeviseXAUUSD Devise = "XAUUSD"
	DeviseBTCUSD Devise = "BTCUSD"
)

// Devises lists every tradable pair accepted by the API.
var Devises = []Devise{
	DeviseEURUSD, DeviseGBPUSD, DeviseUSDJPY, DeviseUSDCHF,
	DeviseAUDUSD, DeviseUSDCAD, DeviseNZDUSD, DeviseEURGBP,
	DeviseEURJPY, DeviseGBPJPY, DeviseXAUUSD, DeviseBTCUSD,
}

// IsValid reports whether d is one of the known pairs.
func (d Devise) IsValid() bool {
	for _, known := range Devises {
		if d == known {
			return true
		}
	}
	return false
}

// TradeType is the direction of a trade.
type TradeType string

const (
	TradeTypeLong  TradeType = "LONG"
	TradeTypeShort TradeType = "SHORT"
)

// IsValid reports whether t is a known direction.
func (t TradeType) IsValid() bool {
	return t == TradeTypeLong || t == TradeTypeShort
}

// TradeResult is the outcome of a closed trade.
type TradeResult string

const (
	ResultWin       TradeResult = "WIN"
	ResultLoss      TradeResult = "LOSS"
	ResultBreakEven TradeResult = "BREAK_EVEN"
)

// IsValid reports whether r is a known outcome.
func (r TradeResult) IsValid() bool {
	return r == ResultWin || r == ResultLoss || r == ResultBreakEven
}

// Trade is a single journal entry owned by one user.
// Loss, when set, is stored as a non-positive number so that cumulative
// balances can always be computed as gain + loss.
type Trade struct {
	ID         string      `json:"id" bson:"_id"`
	UserID     string      `json:"userId" bson:"userId"`
	Devise     Devise      `json:"devise" bson:"devise"`
	Type       TradeType   `json:"type" bson:"type"`
	EntryPrice float64     `json:"entry_price" bson:"entryPrice"`
	ExitPrice  *float64    `json:"exit_price,omitempty" bson:"exitPrice,omitempty"`
	StopLoss   *float64    `json:"stop_loss,omitempty" bson:"stopLoss,omitempty"`
	TakeProfit *float64    `json:"take_profit,omitempty" bson:"takeProfit,omitempty"`
	RR         *float64    `json:"rr,omitempty" bson:"rr,omitempty"`
	Result     TradeResult `json:"result" bson:"result"`
	Gain       *float64    `json:"gain,omitempty" bson:"gain,omitempty"`
	Loss       *float64    `json:"loss,omitempty" bson:"loss,omitempty"`
	Comment    string      `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt  time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt" bson:"updatedAt"`
}

type Trades []Trade

// ClassifyResult derives a trade outcome from its direction and prices.
// A LONG wins when it exits above its entry, a SHORT when it exits below.
// Exact equality counts as a loss, and so does an unknown direction.
func ClassifyResult(tradeType TradeType, entryPrice, exitPrice float64) TradeResult {
	switch tradeType {
	case TradeTypeLong:
		if exitPrice > entryPrice {
			return ResultWin
		}
		return ResultLoss
	case TradeTypeShort:
		if exitPrice < entryPrice {
			return ResultWin
		}
		return ResultLoss
	default:
		return ResultLoss
	}
}
