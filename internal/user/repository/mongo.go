package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/marketgo/storefront-service/internal/database"
	"github.com/marketgo/storefront-service/internal/model"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(database.CollUsers)}
}

func (r *MongoRepository) Sync(ctx context.Context, email string) (*model.User, error) {
	// Single upsert: $setOnInsert keeps an existing user's role untouched,
	// so this path can never promote or demote anyone.
	filter := bson.M{"email": email}
	update := bson.M{"$setOnInsert": bson.M{
		"email": email,
		"role":  model.RoleUser,
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user model.User
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
