package models

// CartItem is a single line item within a cart.
type CartItem struct {
	ProductID int `json:"productID"`
	Quantity  int `json:"quantity"`
}

// Cart represents a shopping cart. Line items hold at most one entry per
// product id; under the database backend they persist as a JSON column.
type Cart struct {
	ID       int        `json:"id" gorm:"primaryKey"`
	Products []CartItem `json:"products" gorm:"serializer:json"`
}

// Item returns the line item for the given product id, or nil.
func (c *Cart) Item(productID int) *CartItem {
	for i := range c.Products {
		if c.Products[i].ProductID == productID {
			return &c.Products[i]
		}
	}
	return nil
}
