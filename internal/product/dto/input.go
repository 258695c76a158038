package dto

import (
	"bytes"
	"strconv"

	"github.com/marketgo/storefront-service/pkg/httperr"
)

// CategoryAll is the sentinel filter value meaning "no category filter".
const CategoryAll = "All"

type ProductFilters struct {
	Category string
	Limit    int64
}

// Numeric accepts a JSON number or a numeric string; upstream clients are
// inconsistent about how they send prices. The zero value means "absent".
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if string(data) == "null" {
		return nil
	}
	*n = Numeric(data)
	return nil
}

func (n Numeric) Float64() (float64, error) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, httperr.Wrap(httperr.ErrInvalidInput, "price must be numeric")
	}
	return f, nil
}

type CreateProductInput struct {
	Name     string  `json:"name"`
	Price    Numeric `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	InStock  *bool   `json:"inStock"`
}

func (in *CreateProductInput) Validate() error {
	if in.Name == "" || in.Price == "" || in.Category == "" {
		return httperr.Wrap(httperr.ErrInvalidInput, "name, price and category are required")
	}
	return nil
}

// UpdateProductInput is a partial merge: nil fields are left untouched.
type UpdateProductInput struct {
	ID       string   `json:"-"`
	Name     *string  `json:"name"`
	Price    *Numeric `json:"price"`
	Category *string  `json:"category"`
	Image    *string  `json:"image"`
	InStock  *bool    `json:"inStock"`
}

// Fields returns the update document for the provided fields only.
func (in *UpdateProductInput) Fields() (map[string]any, error) {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Price != nil {
		price, err := in.Price.Float64()
		if err != nil {
			return nil, err
		}
		fields["price"] = price
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Image != nil {
		fields["image"] = *in.Image
	}
	if in.InStock != nil {
		fields["inStock"] = *in.InStock
	}
	return fields, nil
}
