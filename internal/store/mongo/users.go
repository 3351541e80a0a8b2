package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	mongodb "go.mongodb.org/mongo-driver/mongo"

	"gitlab.com/avollard/tradebook/internal/models"
	"gitlab.com/avollard/tradebook/internal/store"
)

func (m *Mongo) CreateUser(ctx context.Context, user models.User) error {
	_, err := m.collection(usersCollection).InsertOne(ctx, user)
	if mongodb.IsDuplicateKeyError(err) {
		return store.ErrDuplicateEmail
	}
	if err != nil {
		return errors.Wrap(err, "failed to insert user into mongo")
	}
	return nil
}

func (m *Mongo) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUser(ctx, bson.M{"email": email})
}

func (m *Mongo) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return m.findUser(ctx, bson.M{"_id": id})
}

func (m *Mongo) findUser(ctx context.Context, filter bson.M) (models.User, error) {
	var user models.User
	err := m.collection(usersCollection).FindOne(ctx, filter).Decode(&user)
	if err == mongodb.ErrNoDocuments {
		return user, store.ErrNotFound
	}
	if err != nil {
		return user, errors.Wrap(err, "failed to read user from mongo")
	}
	return user, nil
}
