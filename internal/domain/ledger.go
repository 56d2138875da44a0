package domain

// LedgerEntry is one provenance record of an order on the ledger.
type LedgerEntry struct {
	TransactionHash string         `json:"transaction_hash"`
	Timestamp       string         `json:"timestamp"`
	Action          string         `json:"action"`
	Details         map[string]any `json:"details"`
}
