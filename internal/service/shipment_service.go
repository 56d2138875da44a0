package service

import (
	"context"
	"fmt"

	"github.com/spec-kit/supplychain-dashboard/internal/backend"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/events"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

// ShipmentService serves order views for every role.
type ShipmentService struct {
	api        OrderAPI
	dispatcher events.Dispatcher
}

// NewShipmentService builds the service.
func NewShipmentService(api OrderAPI, dispatcher events.Dispatcher) *ShipmentService {
	return &ShipmentService{api: api, dispatcher: dispatcher}
}

// List returns orders in status, or all orders when status is empty.
func (s *ShipmentService) List(ctx context.Context, token string, status domain.OrderStatus) ([]domain.Order, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.NewValidationError("Unknown order status", map[string]any{"status": string(status)})
	}
	return s.api.ListOrders(ctx, token, status)
}

// Mine returns the caller's own orders.
func (s *ShipmentService) Mine(ctx context.Context, token string) ([]domain.Order, error) {
	return s.api.MyOrders(ctx, token)
}

// Ledger returns the provenance entries of an order.
func (s *ShipmentService) Ledger(ctx context.Context, token string, orderID int64) ([]domain.LedgerEntry, error) {
	if orderID <= 0 {
		return nil, apperrors.NewValidationError("Invalid order id", map[string]any{"order_id": orderID})
	}
	return s.api.OrderLedger(ctx, token, orderID)
}

// Advance moves an order from current to the next delivery status.
func (s *ShipmentService) Advance(ctx context.Context, token string, orderID int64, current domain.OrderStatus) (domain.Order, error) {
	next, ok := current.Next()
	if !ok {
		return domain.Order{}, apperrors.NewValidationError(
			fmt.Sprintf("Orders in status %s cannot be advanced", current),
			map[string]any{"status": string(current)},
		)
	}
	order, err := s.api.UpdateOrderStatus(ctx, token, orderID, backend.OrderUpdate{Status: next})
	if err != nil {
		return domain.Order{}, err
	}

	publishEvent(ctx, s.dispatcher, events.EventOrderStatusChanged, tokenActor(token), events.OrderStatusChangedPayload{
		OrderID:   orderID,
		OldStatus: current,
		NewStatus: next,
	})
	return order, nil
}
