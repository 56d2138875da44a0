package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-dashboard/internal/backend"
	"github.com/spec-kit/supplychain-dashboard/internal/cart"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/events"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

// Contact is the delivery information entered at checkout.
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

func (c Contact) trimmed() Contact {
	return Contact{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
	}
}

// Receipt is what a successful checkout produced.
type Receipt struct {
	Order   domain.Order
	Payment domain.Payment
}

// CheckoutService turns a consumer's cart into an order and its payment.
type CheckoutService struct {
	orders     OrderAPI
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewCheckoutService builds the service.
func NewCheckoutService(orders OrderAPI, dispatcher events.Dispatcher, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{orders: orders, dispatcher: dispatcher, logger: logger}
}

// PlaceOrder submits the cart. On success the cart is emptied; on any failure
// it is left exactly as it was. When only the payment fails, the returned
// receipt still names the created order and the error message cites its id.
func (s *CheckoutService) PlaceOrder(ctx context.Context, token string, c *cart.Cart, contact Contact) (Receipt, error) {
	if c == nil || c.Empty() {
		return Receipt{}, apperrors.NewValidationError("Your cart is empty", map[string]any{"cart": "Add at least one product"})
	}
	contact = contact.trimmed()
	if err := validateContact(contact); err != nil {
		return Receipt{}, err
	}

	total := c.Total()
	order, err := s.orders.CreateOrder(ctx, token, backend.OrderCreate{
		ProductIDs:      c.ProductIDs(),
		TotalAmount:     total,
		DeliveryAddress: contact.Address,
		CustomerName:    contact.Name,
		Email:           contact.Email,
		ContactNumber:   contact.Phone,
	})
	if err != nil {
		return Receipt{}, err
	}

	payment, err := s.orders.RecordPayment(ctx, token, backend.PaymentCreate{OrderID: order.ID, Amount: total})
	if err != nil {
		s.logger.Warn("order placed without payment", zap.Int64("order_id", order.ID), zap.Error(err))
		de := apperrors.ToDomainError(err)
		return Receipt{Order: order}, apperrors.NewNetworkError(de.HTTPStatus, fmt.Sprintf(
			"Order #%d was created but its payment failed (%s). Check My Orders before ordering again.",
			order.ID, de.Message), err)
	}

	publishEvent(ctx, s.dispatcher, events.EventOrderPlaced, tokenActor(token), events.OrderPlacedPayload{
		OrderID:     order.ID,
		ProductIDs:  c.ProductIDs(),
		TotalAmount: total,
		PaymentID:   payment.ID,
	})
	c.Clear()
	return Receipt{Order: order, Payment: payment}, nil
}

func validateContact(c Contact) error {
	fields := map[string]any{}
	if c.Name == "" {
		fields["name"] = "Name is required"
	}
	if c.Email == "" {
		fields["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(c.Email); err != nil {
		fields["email"] = "Email is not valid"
	}
	if c.Phone == "" {
		fields["phone"] = "Phone is required"
	}
	if c.Address == "" {
		fields["address"] = "Address is required"
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError("Please fill in all the fields", fields)
	}
	return nil
}
