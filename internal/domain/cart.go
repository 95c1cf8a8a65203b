package domain

// CartItem is a menu item added to a diner's cart
type CartItem struct {
	ID         string  `json:"_id"`
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	Email      string  `json:"email"`
}
