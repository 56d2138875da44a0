package backend

import "github.com/spec-kit/supplychain-dashboard/internal/domain"

// LoginRequest is the body of POST /auth/login. The backend looks accounts up
// by email, which travels in the username field.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the answer of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email    string      `json:"email"`
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// ProductCreate is the body of POST /products.
type ProductCreate struct {
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Ingredients string  `json:"ingredients"`
}

// OrderCreate is the body of POST /orders.
type OrderCreate struct {
	ProductIDs      []int64 `json:"product_id"`
	TotalAmount     float64 `json:"total_amount"`
	DeliveryAddress string  `json:"delivery_address"`
	CustomerName    string  `json:"customer_name"`
	Email           string  `json:"email"`
	ContactNumber   string  `json:"contact_number"`
}

// PaymentCreate is the body of POST /orders/{id}/payment.
type PaymentCreate struct {
	OrderID int64   `json:"order_id"`
	Amount  float64 `json:"amount"`
}

// OrderUpdate is the body of PUT /orders/{id}.
type OrderUpdate struct {
	Status                domain.OrderStatus `json:"status"`
	EstimatedDeliveryDays *int               `json:"estimated_delivery_days,omitempty"`
	DeliveryNotes         *string            `json:"delivery_notes,omitempty"`
}
