package models_test

import (
	"encoding/json"
	"testing"

	"tienda/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestThumbnailAcceptsStringsAndNumbers(t *testing.T) {
	var thumbs models.Thumbnails
	err := json.Unmarshal([]byte(`["pen.png", 42, "2"]`), &thumbs)
	assert.NoError(t, err)
	assert.Len(t, thumbs, 3)
	assert.Equal(t, "pen.png", thumbs[0].String())

	// Tokens round-trip exactly as written, numbers included.
	out, err := json.Marshal(thumbs)
	assert.NoError(t, err)
	assert.Equal(t, `["pen.png",42,"2"]`, string(out))
}

func TestThumbnailRejectsOtherTypes(t *testing.T) {
	var thumbs models.Thumbnails
	err := json.Unmarshal([]byte(`[true]`), &thumbs)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`[{"url": "pen.png"}]`), &thumbs)
	assert.Error(t, err)
}

func TestProductPatchApply(t *testing.T) {
	p := models.Product{
		ID:          3,
		Title:       "Pen",
		Description: "Blue pen",
		Code:        "P1",
		Price:       1.5,
		Status:      true,
		Stock:       10,
		Category:    "office",
	}

	newTitle := "Pencil"
	newStock := 0
	patch := models.ProductPatch{Title: &newTitle, Stock: &newStock}
	patch.Apply(&p)

	assert.Equal(t, "Pencil", p.Title)
	assert.Equal(t, 0, p.Stock)

	// Unpatched fields are untouched.
	assert.Equal(t, 3, p.ID)
	assert.Equal(t, "P1", p.Code)
	assert.Equal(t, 1.5, p.Price)
	assert.True(t, p.Status)
}

func TestProductInputConversion(t *testing.T) {
	price := 1.5
	status := false
	stock := 0
	in := models.ProductInput{
		Title:       "Pen",
		Description: "Blue pen",
		Code:        "P1",
		Price:       &price,
		Status:      &status,
		Stock:       &stock,
		Category:    "office",
	}

	p := in.Product()
	assert.Equal(t, 0, p.ID)
	assert.Equal(t, "Pen", p.Title)
	assert.Equal(t, 1.5, p.Price)
	assert.False(t, p.Status)
	assert.Equal(t, 0, p.Stock)
}
