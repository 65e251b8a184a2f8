package repositories

import (
	"fmt"

	"tienda/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository. It
// mirrors the file backend's external behavior exactly: sequential max+1
// ids, code uniqueness enforced on create only, shallow patch merge.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &models.NotFoundError{Entity: "product", ID: id}
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product, assigning the next sequential id inside a
// transaction so the conflict check and the id selection see one snapshot.
func (r *GORMProductRepository) Create(product *models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		err := tx.First(&existing, "code = ?", product.Code).Error
		if err == nil {
			return &models.ConflictError{Entity: "product", Field: "code", Value: product.Code}
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to check product code %s: %w", product.Code, err)
		}

		var next int
		if err := tx.Model(&models.Product{}).Select("COALESCE(MAX(id), 0) + 1").Scan(&next).Error; err != nil {
			return fmt.Errorf("failed to assign product id: %w", err)
		}
		product.ID = next

		if err := tx.Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		return nil
	})
}

// Update merges the patch over the stored product. The code field is not
// re-checked for uniqueness, matching the file backend.
func (r *GORMProductRepository) Update(id int, patch models.ProductPatch) (*models.Product, error) {
	var product models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &models.NotFoundError{Entity: "product", ID: id}
			}
			return fmt.Errorf("failed to get product by ID %d: %w", id, err)
		}
		patch.Apply(&product)
		if err := tx.Save(&product).Error; err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id int) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "product", ID: id}
	}
	return nil
}
