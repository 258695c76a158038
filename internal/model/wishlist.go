package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem references its product by string. Upstream callers send
// either a document id or an opaque product code; the reference is
// normalized once at the DTO boundary and stored as-is after that.
type WishlistItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	ProductID string             `bson:"productId" json:"productId"`
	Note      string             `bson:"note" json:"note"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// WishlistEntry is a wishlist item joined with its product document for
// list responses. Product is null when the product no longer exists.
type WishlistEntry struct {
	WishlistItem `bson:",inline"`
	Product      *Product `json:"product"`
}
