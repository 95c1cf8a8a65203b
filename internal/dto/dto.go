package dto

// TokenResponse is returned by POST /jwt
type TokenResponse struct {
	Token string `json:"token"`
}

// IssueTokenRequest is the body of POST /jwt. Only these fields are signed.
type IssueTokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AdminStatusResponse is returned by GET /users/admin/:email
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

// ExistsResponse is returned when signup finds an existing account
type ExistsResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health and GET /ready
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Storage string `json:"storage,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	PhotoURL string `json:"photoURL"`
}

// AddCartItemRequest is the body of POST /carts
type AddCartItemRequest struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	Email      string  `json:"email" binding:"required"`
}
