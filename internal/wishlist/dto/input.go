package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/marketgo/storefront-service/pkg/httperr"
)

// NormalizeProductRef is the single normalization point for product
// references. Callers send either a document id or an opaque product code;
// ids are canonicalized to their hex form, anything else is kept verbatim.
// Every write and lookup goes through this, so the same product can never
// be stored under two spellings.
func NormalizeProductRef(ref string) string {
	if oid, err := primitive.ObjectIDFromHex(ref); err == nil {
		return oid.Hex()
	}
	return ref
}

type AddInput struct {
	ProductID string `json:"productId"`
}

func (in *AddInput) Validate() error {
	if in.ProductID == "" {
		return httperr.Wrap(httperr.ErrInvalidInput, "productId is required")
	}
	return nil
}

type UpdateNoteInput struct {
	Note string `json:"note"`
}

type CheckResult struct {
	Exists bool   `json:"exists"`
	ID     string `json:"id,omitempty"`
}
