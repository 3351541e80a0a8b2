package openapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"gitlab.com/avollard/tradebook/internal/auth"
	"gitlab.com/avollard/tradebook/internal/journal"
	"gitlab.com/avollard/tradebook/internal/metrics"
	"gitlab.com/avollard/tradebook/internal/store"
)

// GeneralErrorResponse is the JSON body of every error reply.
type GeneralErrorResponse struct {
	Error string `json:"error"`
}

// Handlers is the api/interface into the journal business logic service.
type Handlers struct {
	journal *journal.Journal
	logger  zerolog.Logger
}

func New(j *journal.Journal, logger zerolog.Logger) *Handlers {
	return &Handlers{
		journal: j,
		logger:  logger,
	}
}

// (POST /v1/auth/register)
func (h *Handlers) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, GeneralErrorResponse{Error: "malformed request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}
	user, err := h.journal.Register(ctx.Request().Context(), req.Email, req.Username, req.Password)
	if err == store.ErrDuplicateEmail {
		return echo.NewHTTPError(http.StatusBadRequest, GeneralErrorResponse{Error: err.Error()})
	}
	if err != nil {
		h.logger.Err(err).Msg("failure with Register")
		return echo.NewHTTPError(http.StatusInternalServerError, GeneralErrorResponse{Error: err.Error()})
	}
	metrics.UsersRegistered.Inc()
	return ctx.JSON(http.StatusCreated, user)
}

// (POST /v1/auth/login)
func (h *Handlers) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, GeneralErrorResponse{Error: "malformed request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}
	token, err := h.journal.Authenticate(ctx.Request().Context(), req.Email, req.Password)
	if err == journal.ErrInvalidCredentials {
		return echo.NewHTTPError(http.StatusUnauthorized, GeneralErrorResponse{Error: err.Error()})
	}
	if err != nil {
		h.logger.Err(err).Msg("failure with Login")
		return echo.NewHTTPError(http.StatusInternalServerError, GeneralErrorResponse{Error: err.Error()})
	}
	return ctx.JSON(http.StatusOK, TokenResponse{AccessToken: token})
}

// (GET /v1/health)
func (h *Handlers) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, h.journal.Health(ctx.Request().Context()))
}

// (GET /v1/trades)
func (h *Handlers) GetTrades(ctx echo.Context) error {
	trades, err := h.journal.ListTrades(ctx.Request().Context(), auth.UserID(ctx))
	if err != nil {
		h.logger.Err(err).Msg("failure with GetTrades")
		return echo.NewHTTPError(http.StatusInternalServerError, GeneralErrorResponse{Error: err.Error()})
	}
	return ctx.JSON(http.StatusOK, trades)
}

// (POST /v1/trades)
func (h *Handlers) CreateTrade(ctx echo.Context) error {
	var req CreateTradeRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, GeneralErrorResponse{Error: "malformed request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}
	trade, err := h.journal.CreateTrade(ctx.Request().Context(), auth.UserID(ctx), input)
	if err == journal.ErrResultRequired {
		return echo.NewHTTPError(http.StatusBadRequest, GeneralErrorResponse{Error: err.Error()})
	}
	if err != nil {
		h.logger.Err(err).Msg("failure with CreateTrade")
		return echo.NewHTTPError(http.StatusInternalServerError, GeneralErrorResponse{Error: err.Error()})
	}
	metrics.TradesCreated.Inc()
	return ctx.JSON(http.StatusCreated, trade)
}

// (GET /v1/trades/:id)
func (h *Handlers) GetTrade(ctx echo.Context) error {
	trade, err := h.journal.GetTrade(ctx.Request().Context(), auth.UserID(ctx), ctx.Param("id"))
	if err == store.ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, GeneralErrorResponse{Error: err.Error()})
	}
	if err != nil {
		h.logger.Err(err).Msg("failure with GetTrade")
		return echo.NewHTTPError(http.StatusInternalServerError, GeneralErrorResponse{Error: err.Error()})
	}
	return ctx.JSON(http.StatusOK, trade)
}

// (PUT /v1/trades/:id)
func (h *Handlers) UpdateTrade(ctx echo.Context) error {
	var req UpdateTradeRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, GeneralErrorResponse{Error: "malformed request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}
	update, err := req.toUpdate()
	if err != nil {
		return err
	}
	trade, err := h.journal.UpdateTrade(ctx.Request().Context(), auth.UserID(ctx), ctx.Param("id"), update)
	if err == store.ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, GeneralErrorResponse{Error: err.Error()})
	}
	if err != nil {
		h.logger.Err(err).Msg("failure with UpdateTrade")
		return echo.NewHTTPError(http.StatusInternalServerError, GeneralErrorResponse{Error: err.Error()})
	}
	return ctx.JSON(http.StatusOK, trade)
}

// (DELETE /v1/trades/:id)
func (h *Handlers) DeleteTrade(ctx echo.Context) error {
	err := h.journal.DeleteTrade(ctx.Request().Context(), auth.UserID(ctx), ctx.Param("id"))
	if err == store.ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, GeneralErrorResponse{Error: err.Error()})
	}
	if err != nil {
		h.logger.Err(err).Msg("failure with DeleteTrade")
		return echo.NewHTTPError(http.StatusInternalServerError, GeneralErrorResponse{Error: err.Error()})
	}
	return ctx.NoContent(http.StatusNoContent)
}
