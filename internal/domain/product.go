package domain

// Registration outcomes reported by the backend in Product.Status.
const (
	ProductStatusSuccess        = "success"
	ProductStatusWarning        = "warning"
	ProductStatusPartialSuccess = "partial_success"
)

// Product is a registered supply-chain item.
type Product struct {
	ID              int64     `json:"id"`
	ProductName     string    `json:"product_name"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category"`
	Origin          string    `json:"origin,omitempty"`
	Price           float64   `json:"price"`
	Ingredients     string    `json:"ingredients"`
	Label           string    `json:"label,omitempty"`
	SupplierID      int64     `json:"supplier_id"`
	CreatedAt       Timestamp `json:"created_at"`
	Status          string    `json:"status,omitempty"`
	Message         string    `json:"message,omitempty"`
	BlockchainTx    *string   `json:"blockchain_tx,omitempty"`
	FraudConfidence *float64  `json:"fraud_confidence,omitempty"`
	IsFlagged       bool      `json:"is_flagged"`
}

// NeedsAttention reports whether the backend accepted the product with a caveat
// (flagged as counterfeit, or stored without a ledger entry).
func (p Product) NeedsAttention() bool {
	return p.Status == ProductStatusWarning || p.Status == ProductStatusPartialSuccess
}
