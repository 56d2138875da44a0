package domain

// Supplier identifies who registered a flagged product.
type Supplier struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// FlaggedProduct is a product the backend's fraud detection marked as suspect.
type FlaggedProduct struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"product_id"`
	SupplierID int64     `json:"supplier_id"`
	Reason     string    `json:"reason"`
	CreatedAt  Timestamp `json:"created_at"`
	Supplier   *Supplier `json:"supplier,omitempty"`
	Product    *Product  `json:"product,omitempty"`
}
