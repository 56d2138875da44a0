package events

import (
	"time"

	"github.com/spec-kit/supplychain-dashboard/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLogin              EventType = "login"
	EventLogout             EventType = "logout"
	EventSessionExpired     EventType = "session_expired"
	EventOrderPlaced        EventType = "order_placed"
	EventProductRegistered  EventType = "product_registered"
	EventOrderStatusChanged EventType = "order_status_changed"
)

// AllEventTypes lists every event the dashboard publishes.
var AllEventTypes = []EventType{
	EventLogin,
	EventLogout,
	EventSessionExpired,
	EventOrderPlaced,
	EventProductRegistered,
	EventOrderStatusChanged,
}

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Subject string      `json:"subject,omitempty"`
	Role    domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SessionPayload accompanies login, logout and session_expired.
type SessionPayload struct {
	SessionID string `json:"session_id"`
	Reason    string `json:"reason,omitempty"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	OrderID     int64   `json:"order_id"`
	ProductIDs  []int64 `json:"product_ids"`
	TotalAmount float64 `json:"total_amount"`
	PaymentID   int64   `json:"payment_id"`
}

// ProductRegisteredPayload payload.
type ProductRegisteredPayload struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Flagged   bool   `json:"flagged"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OrderID   int64              `json:"order_id"`
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
}
