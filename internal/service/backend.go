package service

import (
	"context"

	"github.com/spec-kit/supplychain-dashboard/internal/auth"
	"github.com/spec-kit/supplychain-dashboard/internal/backend"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/events"
)

// AuthAPI is the part of the backend the auth flows use.
type AuthAPI interface {
	Login(ctx context.Context, in backend.LoginRequest) (backend.TokenResponse, error)
	Signup(ctx context.Context, in backend.SignupRequest) (domain.User, error)
}

// ProductAPI is the part of the backend the product views use.
type ProductAPI interface {
	ListProducts(ctx context.Context, token string) ([]domain.Product, error)
	RegisterProduct(ctx context.Context, token string, in backend.ProductCreate) (domain.Product, error)
	FlaggedProducts(ctx context.Context, token string) ([]domain.FlaggedProduct, error)
}

// OrderAPI is the part of the backend the order views use.
type OrderAPI interface {
	ListOrders(ctx context.Context, token string, status domain.OrderStatus) ([]domain.Order, error)
	CreateOrder(ctx context.Context, token string, in backend.OrderCreate) (domain.Order, error)
	RecordPayment(ctx context.Context, token string, in backend.PaymentCreate) (domain.Payment, error)
	MyOrders(ctx context.Context, token string) ([]domain.Order, error)
	OrderLedger(ctx context.Context, token string, orderID int64) ([]domain.LedgerEntry, error)
	UpdateOrderStatus(ctx context.Context, token string, orderID int64, in backend.OrderUpdate) (domain.Order, error)
}

var (
	_ AuthAPI    = (*backend.Client)(nil)
	_ ProductAPI = (*backend.Client)(nil)
	_ OrderAPI   = (*backend.Client)(nil)
)

// publishEvent stamps and publishes an event; handler errors do not fail the caller.
func publishEvent(ctx context.Context, dispatcher events.Dispatcher, eventType events.EventType, actor events.Actor, payload any) {
	if dispatcher == nil {
		return
	}
	_ = dispatcher.Publish(ctx, events.NewEvent(eventType, actor, payload))
}

// tokenActor names the caller of an event; undecodable tokens yield an anonymous actor.
func tokenActor(token string) events.Actor {
	claims, err := auth.DecodeClaims(token)
	if err != nil {
		return events.Actor{}
	}
	return events.Actor{Subject: claims.Subject, Role: claims.Role}
}
