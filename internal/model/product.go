package model

// Product represents a catalogue item shown on the storefront.
// Price is carried as decimal text to keep currency maths exact.
type Product struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Price       string `json:"price" db:"price"`
	Image       string `json:"image" db:"image"`
}

// ProductInput represents the request payload for creating a product.
type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}

// ProductUpdate represents a partial product update. A nil field was
// omitted from the payload and leaves the stored value untouched; a
// present-but-empty field fails validation because required fields
// cannot be cleared.
type ProductUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Image       *string `json:"image"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u *ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Image == nil
}
