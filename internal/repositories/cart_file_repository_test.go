package repositories_test

import (
	"path/filepath"
	"testing"

	"tienda/internal/models"
	"tienda/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestFileCartRepository_Create(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cartsDb.json")
	repo := repositories.NewFileCartRepository(path)

	first, err := repo.Create()
	assert.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.NotNil(t, first.Products)
	assert.Empty(t, first.Products)

	second, err := repo.Create()
	assert.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestFileCartRepository_GetByID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cartsDb.json")
	repo := repositories.NewFileCartRepository(path)

	_, err := repo.Create()
	assert.NoError(t, err)

	cart, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, cart.ID)

	var notFoundErr *models.NotFoundError
	_, err = repo.GetByID(7)
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "cart", notFoundErr.Entity)
}

func TestFileCartRepository_AddProduct(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cartsDb.json")
	repo := repositories.NewFileCartRepository(path)

	_, err := repo.Create()
	assert.NoError(t, err)

	cart, err := repo.AddProduct(1, 5)
	assert.NoError(t, err)
	assert.Len(t, cart.Products, 1)
	assert.Equal(t, models.CartItem{ProductID: 5, Quantity: 1}, cart.Products[0])

	// Adding the same product again bumps the quantity on the existing
	// line item instead of appending a second one.
	cart, err = repo.AddProduct(1, 5)
	assert.NoError(t, err)
	assert.Len(t, cart.Products, 1)
	assert.Equal(t, 2, cart.Products[0].Quantity)

	cart, err = repo.AddProduct(1, 9)
	assert.NoError(t, err)
	assert.Len(t, cart.Products, 2)
	assert.Equal(t, models.CartItem{ProductID: 9, Quantity: 1}, cart.Products[1])
}

func TestFileCartRepository_AddProductUnknownCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cartsDb.json")
	repo := repositories.NewFileCartRepository(path)

	var notFoundErr *models.NotFoundError
	_, err := repo.AddProduct(3, 1)
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "cart", notFoundErr.Entity)
	assert.Equal(t, 3, notFoundErr.ID)
}
