package repositories

import (
	"fmt"

	"tienda/internal/models"

	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository. Line items
// live in a JSON column, so a cart row is read and written whole just like
// a record in the file backend.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Create inserts an empty cart with the next sequential id.
func (r *GORMCartRepository) Create() (*models.Cart, error) {
	cart := models.Cart{Products: []models.CartItem{}}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&models.Cart{}).Select("COALESCE(MAX(id), 0) + 1").Scan(&next).Error; err != nil {
			return fmt.Errorf("failed to assign cart id: %w", err)
		}
		cart.ID = next
		if err := tx.Create(&cart).Error; err != nil {
			return fmt.Errorf("failed to create cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetByID retrieves a single cart by its ID from the database.
func (r *GORMCartRepository) GetByID(id int) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.First(&cart, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &models.NotFoundError{Entity: "cart", ID: id}
		}
		return nil, fmt.Errorf("failed to get cart by ID %d: %w", id, err)
	}
	return &cart, nil
}

// AddProduct increments an existing line item or appends a new one with
// quantity 1, then writes the cart back.
func (r *GORMCartRepository) AddProduct(cartID, productID int) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cart, "id = ?", cartID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &models.NotFoundError{Entity: "cart", ID: cartID}
			}
			return fmt.Errorf("failed to get cart by ID %d: %w", cartID, err)
		}
		if item := cart.Item(productID); item != nil {
			item.Quantity++
		} else {
			cart.Products = append(cart.Products, models.CartItem{
				ProductID: productID,
				Quantity:  1,
			})
		}
		if err := tx.Save(&cart).Error; err != nil {
			return fmt.Errorf("failed to update cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}
