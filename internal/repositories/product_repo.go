package repositories

import (
	"tienda/internal/models"
)

// ProductRepository defines the interface for product data access.
// Implementations assign sequential ids (max existing + 1, so the highest
// freed id can be reused), enforce code uniqueness on create, and return
// the typed errors from the models package.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	Create(product *models.Product) error
	Update(id int, patch models.ProductPatch) (*models.Product, error)
	Delete(id int) error
}
