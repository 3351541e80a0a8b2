package server

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ziflex/lecho/v3"

	"gitlab.com/avollard/tradebook/internal/auth"
	"gitlab.com/avollard/tradebook/internal/config"
	"gitlab.com/avollard/tradebook/internal/journal"
	"gitlab.com/avollard/tradebook/internal/store"
	"gitlab.com/avollard/tradebook/internal/store/inmemorydb"
	"gitlab.com/avollard/tradebook/internal/store/mongo"
	httpdelivery "gitlab.com/avollard/tradebook/openapi"
)

// Server ties the config, store, journal service and echo engine together.
type Server struct {
	cfg        config.Configuration
	srv        *http.Server
	logger     zerolog.Logger
	echoEngine *echo.Echo
}

func initLog(level string, pretty bool) zerolog.Logger {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("%s is not a valid log-level, falling back to 'info'", level)
		l = zerolog.InfoLevel
	}
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	zerolog.SetGlobalLevel(l)
	return log.With().Str("service", "tradebook").Logger()
}

// newStore selects the backing store. A mongo host of "skip" runs the service
// on the in-memory store, which is what the tests and local dev use.
func newStore(cfg config.MongoConfiguration) (store.Store, error) {
	if cfg.Host == "skip" {
		return inmemorydb.NewClient()
	}
	return mongo.NewClient(cfg)
}

func NewServer(cfgFile *string) (*Server, error) {
	cfg, err := config.LoadConfiguration(*cfgFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load service config")
	}

	log := initLog(cfg.LogLevel, cfg.Pretty)

	db, err := newStore(cfg.Mongo)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}

	issuer := auth.NewIssuer(cfg.Auth)
	svc := journal.New(db, issuer, log)

	// Setup echo
	echoEngine := echo.New()
	echoEngine.HideBanner = true
	echoEngine.Use(middleware.Recover())
	echoEngine.Use(middleware.CORS())
	echoEngine.Validator = httpdelivery.NewValidator()

	logger := log.With().Str("module", "httpServer").Logger()

	h := httpdelivery.New(svc, logger)
	httpdelivery.RegisterHandlers(echoEngine, h, issuer.Middleware())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%v", cfg.ListenPort),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		echoEngine: echoEngine,
		cfg:        *cfg,
		srv:        srv,
		logger:     logger,
	}, nil
}

func (s *Server) Start() error {
	s.registerEchoWithLogger()
	go s.startServer()
	return nil
}

func (s *Server) startServer() {
	err := s.echoEngine.StartServer(s.srv)
	if err != nil && err != http.ErrServerClosed {
		s.logger.Fatal().Err(err).Msg("http server stopped")
	}
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.echoEngine.Shutdown(ctx)
}

func (s *Server) Log() *zerolog.Logger {
	return &s.logger
}

func (s *Server) registerEchoWithLogger() {
	l := lecho.New(s.logger)
	s.echoEngine.Use(lecho.Middleware(lecho.Config{Logger: l}))
	s.echoEngine.Use(middleware.RequestID())
}
