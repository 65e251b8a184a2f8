package repositories

import (
	"tienda/internal/models"
)

// CartRepository defines the interface for cart data access. Carts are
// created empty and only grow: adding a product either increments an
// existing line item or appends a new one with quantity 1.
type CartRepository interface {
	Create() (*models.Cart, error)
	GetByID(id int) (*models.Cart, error)
	AddProduct(cartID, productID int) (*models.Cart, error)
}
