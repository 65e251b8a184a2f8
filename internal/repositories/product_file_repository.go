package repositories

import (
	"sync"

	"tienda/internal/models"
)

// FileProductRepository is the JSON-document implementation of
// ProductRepository. Every operation is a full load-mutate-save cycle; the
// mutex serializes those cycles so two in-flight mutations cannot lose an
// update to each other.
type FileProductRepository struct {
	file *jsonFile[models.Product]
	mu   sync.Mutex
}

// NewFileProductRepository creates a repository backed by the JSON document
// at path. The document is created on first use if it does not exist.
func NewFileProductRepository(path string) *FileProductRepository {
	return &FileProductRepository{
		file: newJSONFile[models.Product](path),
	}
}

// GetAll returns the full collection in insertion order.
func (r *FileProductRepository) GetAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.file.load()
}

// GetByID returns the product with the given id, or a NotFoundError.
func (r *FileProductRepository) GetByID(id int) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.file.load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, &models.NotFoundError{Entity: "product", ID: id}
}

// Create appends a new product, assigning the next sequential id. A
// product whose code already exists (case-sensitive exact match) is
// rejected with a ConflictError and the collection is left untouched.
func (r *FileProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.file.load()
	if err != nil {
		return err
	}

	maxID := 0
	for _, p := range products {
		if p.Code == product.Code {
			return &models.ConflictError{Entity: "product", Field: "code", Value: product.Code}
		}
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product.ID = maxID + 1

	products = append(products, *product)
	return r.file.save(products)
}

// Update merges the patch over the stored product and persists the result.
// Fields absent from the patch are untouched and the id can never change.
// The code field is intentionally not re-checked for uniqueness here.
func (r *FileProductRepository) Update(id int, patch models.ProductPatch) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.file.load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		patch.Apply(&products[i])
		if err := r.file.save(products); err != nil {
			return nil, err
		}
		updated := products[i]
		return &updated, nil
	}
	return nil, &models.NotFoundError{Entity: "product", ID: id}
}

// Delete removes the product with the given id.
func (r *FileProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.file.load()
	if err != nil {
		return err
	}

	remaining := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(products) {
		return &models.NotFoundError{Entity: "product", ID: id}
	}
	return r.file.save(remaining)
}
