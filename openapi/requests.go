package openapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"gitlab.com/avollard/tradebook/internal/journal"
	"gitlab.com/avollard/tradebook/internal/models"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type CreateTradeRequest struct {
	Devise     string   `json:"devise" validate:"required"`
	Type       string   `json:"type" validate:"required,oneof=LONG SHORT"`
	EntryPrice float64  `json:"entry_price" validate:"required,gt=0"`
	ExitPrice  *float64 `json:"exit_price,omitempty" validate:"omitempty,gt=0"`
	StopLoss   *float64 `json:"stop_loss,omitempty" validate:"omitempty,gt=0"`
	TakeProfit *float64 `json:"take_profit,omitempty" validate:"omitempty,gt=0"`
	RR         *float64 `json:"rr,omitempty" validate:"omitempty,gt=0"`
	Result     string   `json:"result,omitempty" validate:"omitempty,oneof=WIN LOSS BREAK_EVEN"`
	Gain       *float64 `json:"gain,omitempty" validate:"omitempty,gte=0"`
	Loss       *float64 `json:"loss,omitempty"`
	Comment    string   `json:"comment,omitempty"`
}

func (r CreateTradeRequest) toInput() (journal.TradeInput, error) {
	devise := models.Devise(r.Devise)
	if !devise.IsValid() {
		return journal.TradeInput{}, echo.NewHTTPError(http.StatusBadRequest, "unknown devise")
	}
	return journal.TradeInput{
		Devise:     devise,
		Type:       models.TradeType(r.Type),
		EntryPrice: r.EntryPrice,
		ExitPrice:  r.ExitPrice,
		StopLoss:   r.StopLoss,
		TakeProfit: r.TakeProfit,
		RR:         r.RR,
		Result:     models.TradeResult(r.Result),
		Gain:       r.Gain,
		Loss:       r.Loss,
		Comment:    r.Comment,
	}, nil
}

type UpdateTradeRequest struct {
	Devise     *string  `json:"devise,omitempty"`
	Type       *string  `json:"type,omitempty" validate:"omitempty,oneof=LONG SHORT"`
	EntryPrice *float64 `json:"entry_price,omitempty" validate:"omitempty,gt=0"`
	ExitPrice  *float64 `json:"exit_price,omitempty" validate:"omitempty,gt=0"`
	StopLoss   *float64 `json:"stop_loss,omitempty" validate:"omitempty,gt=0"`
	TakeProfit *float64 `json:"take_profit,omitempty" validate:"omitempty,gt=0"`
	RR         *float64 `json:"rr,omitempty" validate:"omitempty,gt=0"`
	Result     *string  `json:"result,omitempty" validate:"omitempty,oneof=WIN LOSS BREAK_EVEN"`
	Gain       *float64 `json:"gain,omitempty" validate:"omitempty,gte=0"`
	Loss       *float64 `json:"loss,omitempty"`
	Comment    *string  `json:"comment,omitempty"`
}

func (r UpdateTradeRequest) toUpdate() (journal.TradeUpdate, error) {
	update := journal.TradeUpdate{
		EntryPrice: r.EntryPrice,
		ExitPrice:  r.ExitPrice,
		StopLoss:   r.StopLoss,
		TakeProfit: r.TakeProfit,
		RR:         r.RR,
		Gain:       r.Gain,
		Loss:       r.Loss,
		Comment:    r.Comment,
	}
	if r.Devise != nil {
		devise := models.Devise(*r.Devise)
		if !devise.IsValid() {
			return journal.TradeUpdate{}, echo.NewHTTPError(http.StatusBadRequest, "unknown devise")
		}
		update.Devise = &devise
	}
	if r.Type != nil {
		tradeType := models.TradeType(*r.Type)
		update.Type = &tradeType
	}
	if r.Result != nil {
		result := models.TradeResult(*r.Result)
		update.Result = &result
	}
	return update, nil
}
