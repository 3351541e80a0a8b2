package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	mongodb "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gitlab.com/avollard/tradebook/internal/config"
)

const (
	usersCollection  = "users"
	tradesCollection = "trades"

	connectTimeout = 10 * time.Second
)

// Mongo implements store.Store on a mongodb database.
type Mongo struct {
	logger zerolog.Logger
	cfg    config.MongoConfiguration
	db     *mongodb.Client
}

func NewClient(cfg config.MongoConfiguration) (*Mongo, error) {
	logger := log.With().Str("module", "mongo").Logger()
	connStr := fmt.Sprintf("mongodb://%s:%v", cfg.Host, cfg.Port)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := mongodb.Connect(ctx, options.Client().ApplyURI(connStr))
	if err != nil {
		logger.Err(err).Msg("Connect")
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}
	if err := db.Ping(ctx, nil); err != nil {
		logger.Err(err).Msg("Ping")
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	m := &Mongo{
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.Ping(ctx, nil)
}

func (m *Mongo) collection(name string) *mongodb.Collection {
	return m.db.Database(m.cfg.Database).Collection(name)
}

// ensureIndexes creates the unique email index and the per-user listing index.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	_, err := m.collection(usersCollection).Indexes().CreateOne(ctx, mongodb.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create user email index")
	}
	_, err = m.collection(tradesCollection).Indexes().CreateOne(ctx, mongodb.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create trade listing index")
	}
	return nil
}
