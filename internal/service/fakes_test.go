package service

import (
	"context"
	"net/http"
	"sync"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/supplychain-dashboard/internal/backend"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/events"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

func roleToken(t *testing.T, role domain.Role, subject string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject, "role": string(role)}).
		SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

// fakeAPI records calls and answers from its fields.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	loginToken string
	loginErr   error
	signupErr  error

	products    []domain.Product
	productsErr error
	registered  domain.Product
	registerErr error
	flagged     []domain.FlaggedProduct

	orders     []domain.Order
	orderErr   error
	paymentErr error
	updateErr  error
	lastOrder  backend.OrderCreate
	lastUpdate backend.OrderUpdate
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Login(_ context.Context, in backend.LoginRequest) (backend.TokenResponse, error) {
	f.record("login:" + in.Username)
	if f.loginErr != nil {
		return backend.TokenResponse{}, f.loginErr
	}
	return backend.TokenResponse{AccessToken: f.loginToken, TokenType: "bearer"}, nil
}

func (f *fakeAPI) Signup(_ context.Context, in backend.SignupRequest) (domain.User, error) {
	f.record("signup:" + string(in.Role))
	if f.signupErr != nil {
		return domain.User{}, f.signupErr
	}
	return domain.User{ID: 1, Email: in.Email, Username: in.Username, Role: in.Role}, nil
}

func (f *fakeAPI) ListProducts(context.Context, string) ([]domain.Product, error) {
	f.record("products")
	return f.products, f.productsErr
}

func (f *fakeAPI) RegisterProduct(_ context.Context, _ string, in backend.ProductCreate) (domain.Product, error) {
	f.record("register:" + in.ProductName)
	return f.registered, f.registerErr
}

func (f *fakeAPI) FlaggedProducts(context.Context, string) ([]domain.FlaggedProduct, error) {
	f.record("flagged")
	return f.flagged, nil
}

func (f *fakeAPI) ListOrders(_ context.Context, _ string, status domain.OrderStatus) ([]domain.Order, error) {
	f.record("orders:" + string(status))
	return f.orders, nil
}

func (f *fakeAPI) CreateOrder(_ context.Context, _ string, in backend.OrderCreate) (domain.Order, error) {
	f.record("create-order")
	f.mu.Lock()
	f.lastOrder = in
	f.mu.Unlock()
	if f.orderErr != nil {
		return domain.Order{}, f.orderErr
	}
	return domain.Order{ID: 12, ProductIDs: in.ProductIDs, Status: domain.OrderStatusNew, TotalAmount: in.TotalAmount}, nil
}

func (f *fakeAPI) RecordPayment(_ context.Context, _ string, in backend.PaymentCreate) (domain.Payment, error) {
	f.record("payment")
	if f.paymentErr != nil {
		return domain.Payment{}, f.paymentErr
	}
	return domain.Payment{ID: 3, OrderID: in.OrderID, Amount: in.Amount}, nil
}

func (f *fakeAPI) MyOrders(context.Context, string) ([]domain.Order, error) {
	f.record("my-orders")
	return f.orders, nil
}

func (f *fakeAPI) OrderLedger(context.Context, string, int64) ([]domain.LedgerEntry, error) {
	f.record("ledger")
	return []domain.LedgerEntry{{TransactionHash: "0xabc", Action: "ORDER_CREATED"}}, nil
}

func (f *fakeAPI) UpdateOrderStatus(_ context.Context, _ string, id int64, in backend.OrderUpdate) (domain.Order, error) {
	f.record("update-order")
	f.mu.Lock()
	f.lastUpdate = in
	f.mu.Unlock()
	if f.updateErr != nil {
		return domain.Order{}, f.updateErr
	}
	return domain.Order{ID: id, Status: in.Status}, nil
}

var backendDown = apperrors.NewNetworkError(http.StatusInternalServerError, "Failed to create order", nil)

// eventRecorder subscribes to every event type.
type eventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func newEventRecorder(d events.Dispatcher) *eventRecorder {
	r := &eventRecorder{}
	for _, et := range events.AllEventTypes {
		d.Subscribe(et, func(_ context.Context, e events.Event) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.events = append(r.events, e)
			return nil
		})
	}
	return r
}

func (r *eventRecorder) Types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func (r *eventRecorder) Last() events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}
