package repositories

import (
	"sync"

	"tienda/internal/models"
)

// FileCartRepository is the JSON-document implementation of CartRepository,
// with the same per-store serialization as the product repository.
type FileCartRepository struct {
	file *jsonFile[models.Cart]
	mu   sync.Mutex
}

// NewFileCartRepository creates a repository backed by the JSON document at
// path.
func NewFileCartRepository(path string) *FileCartRepository {
	return &FileCartRepository{
		file: newJSONFile[models.Cart](path),
	}
}

// Create appends an empty cart with the next sequential id.
func (r *FileCartRepository) Create() (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	carts, err := r.file.load()
	if err != nil {
		return nil, err
	}

	maxID := 0
	for _, c := range carts {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	cart := models.Cart{
		ID:       maxID + 1,
		Products: []models.CartItem{},
	}

	carts = append(carts, cart)
	if err := r.file.save(carts); err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetByID returns the cart with the given id, or a NotFoundError.
func (r *FileCartRepository) GetByID(id int) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	carts, err := r.file.load()
	if err != nil {
		return nil, err
	}
	for i := range carts {
		if carts[i].ID == id {
			return &carts[i], nil
		}
	}
	return nil, &models.NotFoundError{Entity: "cart", ID: id}
}

// AddProduct increments the quantity of an existing line item or appends a
// new one with quantity 1, then persists the cart. The product id is taken
// as already resolved; existence against the product store is the service
// layer's concern.
func (r *FileCartRepository) AddProduct(cartID, productID int) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	carts, err := r.file.load()
	if err != nil {
		return nil, err
	}
	for i := range carts {
		if carts[i].ID != cartID {
			continue
		}
		if item := carts[i].Item(productID); item != nil {
			item.Quantity++
		} else {
			carts[i].Products = append(carts[i].Products, models.CartItem{
				ProductID: productID,
				Quantity:  1,
			})
		}
		if err := r.file.save(carts); err != nil {
			return nil, err
		}
		updated := carts[i]
		return &updated, nil
	}
	return nil, &models.NotFoundError{Entity: "cart", ID: cartID}
}
