package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OrderStatus enumerates the delivery lifecycle of an order.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusInTransit OrderStatus = "IN_TRANSIT"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

// Next returns the status logistics moves an order to, if any.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusNew:
		return OrderStatusConfirmed, true
	case OrderStatusConfirmed, OrderStatusInTransit:
		return OrderStatusDelivered, true
	default:
		return "", false
	}
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusInTransit, OrderStatusDelivered:
		return true
	}
	return false
}

// IDList holds product references. The backend answers with either a single
// id or a list, depending on how the order was created.
type IDList []int64

// UnmarshalJSON accepts a number, an array of numbers, or null.
func (l *IDList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if data[0] == '[' {
		var ids []int64
		if err := json.Unmarshal(data, &ids); err != nil {
			return fmt.Errorf("product ids: %w", err)
		}
		*l = ids
		return nil
	}
	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*l = IDList{id}
	return nil
}

// Order is a consumer purchase tracked through delivery.
type Order struct {
	ID                    int64       `json:"id"`
	ProductIDs            IDList      `json:"product_id"`
	ConsumerID            int64       `json:"consumer_id,omitempty"`
	CustomerName          string      `json:"customer_name"`
	Email                 string      `json:"email,omitempty"`
	ContactNumber         string      `json:"contact_number"`
	DeliveryAddress       string      `json:"delivery_address"`
	TotalAmount           float64     `json:"total_amount,omitempty"`
	Status                OrderStatus `json:"status"`
	CreatedAt             Timestamp   `json:"created_at"`
	EstimatedDeliveryDays *int        `json:"estimated_delivery_days,omitempty"`
	DeliveryNotes         *string     `json:"delivery_notes,omitempty"`
	BlockchainTx          *string     `json:"blockchain_tx,omitempty"`
}

// Payment records the amount paid for an order.
type Payment struct {
	ID      int64   `json:"id"`
	OrderID int64   `json:"order_id"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status,omitempty"`
}
