package services

import (
	"fmt"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/pkg/broadcast"

	"github.com/go-playground/validator/v10"
)

// ProductService handles business logic related to products: structural
// validation of creation candidates and change notification after every
// successful mutation.
type ProductService struct {
	repo     repositories.ProductRepository
	notifier broadcast.Notifier
	validate *validator.Validate
}

// NewProductService creates a new ProductService. The notifier may be nil;
// all mutations and persistence behave the same without a broadcast
// channel attached.
func NewProductService(repo repositories.ProductRepository, notifier broadcast.Notifier) *ProductService {
	return &ProductService{
		repo:     repo,
		notifier: notifier,
		validate: validator.New(),
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates the candidate, stores it and notifies viewers.
// An invalid candidate never reaches the repository.
func (s *ProductService) CreateProduct(input models.ProductInput) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, err
		}
		fields := make(map[string]string)
		for _, e := range validationErrors {
			fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return nil, &models.ValidationError{Fields: fields}
	}

	product := input.Product()
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}

	s.emit(broadcast.NewCreateEvent(&product))
	return &product, nil
}

// UpdateProduct merges the patch over an existing product and notifies
// viewers with the merged record.
func (s *ProductService) UpdateProduct(id int, patch models.ProductPatch) (*models.Product, error) {
	product, err := s.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}

	s.emit(broadcast.NewUpdateEvent(product))
	return product, nil
}

// DeleteProduct deletes a product by its ID and notifies viewers with the
// deleted id.
func (s *ProductService) DeleteProduct(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.emit(broadcast.NewDeleteEvent(id))
	return nil
}

func (s *ProductService) emit(event broadcast.Event) {
	if s.notifier == nil {
		return
	}
	s.notifier.Emit(event)
}
