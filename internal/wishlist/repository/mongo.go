package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/marketgo/storefront-service/internal/database"
	"github.com/marketgo/storefront-service/internal/model"
	"github.com/marketgo/storefront-service/pkg/httperr"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(database.CollWishlist)}
}

func (r *MongoRepository) Insert(ctx context.Context, item *model.WishlistItem) error {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return httperr.Wrap(httperr.ErrDuplicate, "product already in wishlist")
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

func (r *MongoRepository) FindByOwnerAndProduct(ctx context.Context, email, productID string) (*model.WishlistItem, error) {
	var item model.WishlistItem
	err := r.coll.FindOne(ctx, bson.M{"email": email, "productId": productID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *MongoRepository) FindByOwner(ctx context.Context, email string) ([]model.WishlistItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []model.WishlistItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) UpdateNote(ctx context.Context, email, id, note string) (*model.WishlistItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, httperr.Wrap(httperr.ErrInvalidInput, "malformed wishlist id")
	}

	// Owner is part of the filter so one user can never touch another's
	// entry, even with a guessed id.
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item model.WishlistItem
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "email": email},
		bson.M{"$set": bson.M{"note": note, "updatedAt": time.Now()}},
		opts,
	).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *MongoRepository) DeleteByID(ctx context.Context, email, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, httperr.Wrap(httperr.ErrInvalidInput, "malformed wishlist id")
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "email": email})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) DeleteByProduct(ctx context.Context, email, productID string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email, "productId": productID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
