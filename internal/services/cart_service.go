package services

import (
	"tienda/internal/models"
	"tienda/internal/repositories"
)

// CartService handles business logic related to carts, including the
// cart-product linkage: a product must resolve in the product store at the
// moment it is added to a cart. The linkage only reads the product store,
// it never mutates it.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CreateCart creates a new empty cart.
func (s *CartService) CreateCart() (*models.Cart, error) {
	return s.cartRepo.Create()
}

// GetCartByID retrieves a single cart by its ID.
func (s *CartService) GetCartByID(id int) (*models.Cart, error) {
	return s.cartRepo.GetByID(id)
}

// AddProductToCart adds one unit of a product to a cart. The cart is
// resolved first, then the product; if either is missing the cart is left
// untouched. There is no cross-store transaction: the product could vanish
// between the check and the cart write, which is the accepted contract.
func (s *CartService) AddProductToCart(cartID, productID int) (*models.Cart, error) {
	if _, err := s.cartRepo.GetByID(cartID); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}
	return s.cartRepo.AddProduct(cartID, productID)
}
