package handlers

import (
	"log"

	"tienda/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for carts.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/carts", h.HandleCreateCart)
	router.Get("/carts/:cid", h.HandleGetCart)
	router.Post("/carts/:cid/product/:pid", h.HandleAddProduct)
}

// HandleCreateCart creates a new empty cart.
func (h *CartHandler) HandleCreateCart(c *fiber.Ctx) error {
	cart, err := h.service.CreateCart()
	if err != nil {
		log.Printf("Error creating cart: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Cart created successfully",
		"data":    cart,
	})
}

// HandleGetCart returns the line items of a cart.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cartID, err := c.ParamsInt("cid")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Cart id must be numeric",
		})
	}

	cart, err := h.service.GetCartByID(cartID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cart.Products)
}

// HandleAddProduct adds one unit of a product to a cart.
func (h *CartHandler) HandleAddProduct(c *fiber.Ctx) error {
	cartID, err := c.ParamsInt("cid")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Cart id must be numeric",
		})
	}
	productID, err := c.ParamsInt("pid")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Product id must be numeric",
		})
	}

	cart, err := h.service.AddProductToCart(cartID, productID)
	if err != nil {
		log.Printf("Error adding product %d to cart %d: %v", productID, cartID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Product added to cart",
		"data":    cart,
	})
}
