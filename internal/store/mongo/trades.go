package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	mongodb "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gitlab.com/avollard/tradebook/internal/models"
	"gitlab.com/avollard/tradebook/internal/store"
)

func (m *Mongo) InsertTrade(ctx context.Context, trade models.Trade) error {
	_, err := m.collection(tradesCollection).InsertOne(ctx, trade)
	if err != nil {
		return errors.Wrap(err, "failed to insert trade into mongo")
	}
	return nil
}

// GetTrades lists one user's trades newest first.
func (m *Mongo) GetTrades(ctx context.Context, userID string) (models.Trades, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	results := make(models.Trades, 0)

	cur, err := m.collection(tradesCollection).Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return results, errors.Wrap(err, "failed to read trades from mongo")
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var trade models.Trade
		if err := cur.Decode(&trade); err != nil {
			return results, errors.Wrap(err, "failed to decode trade from mongo")
		}
		results = append(results, trade)
	}
	if err := cur.Err(); err != nil {
		return results, errors.Wrap(err, "failed to read trades from mongo")
	}
	return results, nil
}

func (m *Mongo) GetTrade(ctx context.Context, userID, id string) (models.Trade, error) {
	var trade models.Trade
	err := m.collection(tradesCollection).
		FindOne(ctx, bson.M{"_id": id, "userId": userID}).
		Decode(&trade)
	if err == mongodb.ErrNoDocuments {
		return trade, store.ErrNotFound
	}
	if err != nil {
		return trade, errors.Wrap(err, "failed to read trade from mongo")
	}
	return trade, nil
}

func (m *Mongo) UpdateTrade(ctx context.Context, trade models.Trade) error {
	res, err := m.collection(tradesCollection).ReplaceOne(ctx,
		bson.M{"_id": trade.ID, "userId": trade.UserID}, trade)
	if err != nil {
		return errors.Wrap(err, "failed to update trade in mongo")
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (m *Mongo) DeleteTrade(ctx context.Context, userID, id string) error {
	res, err := m.collection(tradesCollection).DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return errors.Wrap(err, "failed to delete trade from mongo")
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
