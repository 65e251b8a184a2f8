package models

import (
	"encoding/json"
	"fmt"
)

// Product represents a catalog product as stored in the backing document.
type Product struct {
	ID          int        `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"type:varchar(255)" validate:"required"`
	Description string     `json:"description" gorm:"type:varchar(1000)" validate:"required"`
	Code        string     `json:"code" gorm:"uniqueIndex;type:varchar(100)" validate:"required"`
	Price       float64    `json:"price"`
	Status      bool       `json:"status"`
	Stock       int        `json:"stock"`
	Category    string     `json:"category" gorm:"type:varchar(100)" validate:"required"`
	Thumbnails  Thumbnails `json:"thumbnails,omitempty" gorm:"serializer:json"`
}

// ProductInput is the candidate payload for creating a product. Price,
// status and stock are pointers so that an absent field can be told apart
// from a legitimate zero value during validation.
type ProductInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Code        string     `json:"code" validate:"required"`
	Price       *float64   `json:"price" validate:"required"`
	Status      *bool      `json:"status" validate:"required"`
	Stock       *int       `json:"stock" validate:"required"`
	Category    string     `json:"category" validate:"required"`
	Thumbnails  Thumbnails `json:"thumbnails"`
}

// Product converts a validated input into a Product. The ID is left zero;
// the store assigns it on creation.
func (in ProductInput) Product() Product {
	p := Product{
		Title:       in.Title,
		Description: in.Description,
		Code:        in.Code,
		Category:    in.Category,
		Thumbnails:  in.Thumbnails,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	return p
}

// ProductPatch is a partial update. Nil fields are left untouched on merge.
// There is deliberately no ID field: the stored ID can never be overwritten
// through an update.
type ProductPatch struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Code        *string     `json:"code"`
	Price       *float64    `json:"price"`
	Status      *bool       `json:"status"`
	Stock       *int        `json:"stock"`
	Category    *string     `json:"category"`
	Thumbnails  *Thumbnails `json:"thumbnails"`
}

// Apply merges the patch into the product, field by field.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Code != nil {
		p.Code = *patch.Code
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Thumbnails != nil {
		p.Thumbnails = *patch.Thumbnails
	}
}

// Thumbnails is an ordered list of thumbnail tokens.
type Thumbnails []Thumbnail

// Thumbnail is a single thumbnail token. The backing documents hold
// thumbnails as either JSON strings or bare numbers; the raw token is kept
// as written so it round-trips unchanged.
type Thumbnail struct {
	raw json.RawMessage
}

// NewThumbnail builds a string thumbnail token.
func NewThumbnail(s string) Thumbnail {
	raw, _ := json.Marshal(s)
	return Thumbnail{raw: raw}
}

// UnmarshalJSON accepts a JSON string or number and rejects anything else.
func (t *Thumbnail) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.raw = append(t.raw[:0], data...)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		t.raw = append(t.raw[:0], data...)
		return nil
	}
	return fmt.Errorf("thumbnail must be a string or a number, got %s", data)
}

// MarshalJSON writes the token back exactly as it was read.
func (t Thumbnail) MarshalJSON() ([]byte, error) {
	if len(t.raw) == 0 {
		return []byte(`""`), nil
	}
	return t.raw, nil
}

func (t Thumbnail) String() string {
	var s string
	if err := json.Unmarshal(t.raw, &s); err == nil {
		return s
	}
	return string(t.raw)
}
