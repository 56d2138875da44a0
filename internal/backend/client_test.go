package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/observability"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *observability.Metrics) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	m := observability.NewMetrics()
	return NewClient(srv.URL+"/", WithMetrics(m)), m
}

func TestLoginSendsCredentialsWithoutBearer(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("login must not carry a bearer")
		}
		var body LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Username != "ada@example.com" || body.Password != "pw" {
			t.Errorf("unexpected body %+v", body)
		}
		_, _ = w.Write([]byte(`{"access_token":"abc","token_type":"bearer"}`))
	})

	tok, err := c.Login(context.Background(), LoginRequest{Username: "ada@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok.AccessToken != "abc" {
		t.Fatalf("unexpected token %+v", tok)
	}
}

func TestAuthenticatedCallsCarryBearer(t *testing.T) {
	c, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("unexpected auth header %q", got)
		}
		_, _ = w.Write([]byte(`[{"id":1,"product_name":"Rose Serum","price":5,"is_flagged":false}]`))
	})

	products, err := c.ListProducts(context.Background(), "tok")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 1 || products[0].ProductName != "Rose Serum" {
		t.Fatalf("unexpected products %+v", products)
	}
	if m.Snapshot().BackendCalls["/products|GET|200"] != 1 {
		t.Fatalf("expected the call to be counted")
	}
}

func TestListOrdersPassesStatusFilter(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("status") != "IN_TRANSIT" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[{"id":4,"product_id":2,"status":"IN_TRANSIT"}]`))
	})

	orders, err := c.ListOrders(context.Background(), "tok", domain.OrderStatusInTransit)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 || orders[0].Status != domain.OrderStatusInTransit {
		t.Fatalf("unexpected orders %+v", orders)
	}
}

func TestDecodesZonelessBackendTimestamps(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders/my-orders":
			_, _ = w.Write([]byte(`[{"id":1,"product_id":[1,2],"status":"NEW","created_at":"2025-03-01T10:20:30.123456"}]`))
		case "/flagged-products":
			_, _ = w.Write([]byte(`[{"id":3,"product_id":9,"reason":"price","created_at":"2025-03-02T08:00:00"}]`))
		default:
			_, _ = w.Write([]byte(`[{"id":9,"product_name":"Clay Mask","created_at":null}]`))
		}
	})
	ctx := context.Background()

	orders, err := c.MyOrders(ctx, "tok")
	if err != nil {
		t.Fatalf("my orders: %v", err)
	}
	want := time.Date(2025, 3, 1, 10, 20, 30, 123456000, time.UTC)
	if len(orders) != 1 || !orders[0].CreatedAt.Equal(want) {
		t.Fatalf("unexpected orders %+v", orders)
	}

	flagged, err := c.FlaggedProducts(ctx, "tok")
	if err != nil || len(flagged) != 1 || flagged[0].CreatedAt.Hour() != 8 {
		t.Fatalf("flagged: %+v, %v", flagged, err)
	}

	products, err := c.ListProducts(ctx, "tok")
	if err != nil || len(products) != 1 || !products[0].CreatedAt.IsZero() {
		t.Fatalf("products: %+v, %v", products, err)
	}
}

func TestRecordPaymentAndUpdateHitOrderPaths(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		mu.Unlock()
		_, _ = w.Write([]byte(`{"id":9,"order_id":12,"amount":8}`))
	})
	ctx := context.Background()

	if _, err := c.RecordPayment(ctx, "tok", PaymentCreate{OrderID: 12, Amount: 8}); err != nil {
		t.Fatalf("payment: %v", err)
	}
	if _, err := c.UpdateOrderStatus(ctx, "tok", 12, OrderUpdate{Status: domain.OrderStatusConfirmed}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := c.OrderLedger(ctx, "tok", 12); err == nil {
		t.Fatalf("object body cannot decode into a ledger list")
	}
	mu.Lock()
	defer mu.Unlock()
	want := []string{"POST /orders/12/payment", "PUT /orders/12", "GET /orders/12/ledger"}
	for i, p := range want {
		if paths[i] != p {
			t.Fatalf("call %d: expected %s, got %s", i, p, paths[i])
		}
	}
}

func TestNon2xxBecomesNetworkErrorWithDetail(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
		want   string
	}{
		"string detail": {http.StatusForbidden, `{"detail":"Only suppliers can register products"}`, "Only suppliers can register products"},
		"list detail":   {http.StatusUnprocessableEntity, `{"detail":[{"msg":"field required"},{"msg":"value is not a valid float"}]}`, "field required, value is not a valid float"},
		"no detail":     {http.StatusInternalServerError, `oops`, "Internal Server Error"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := c.RegisterProduct(context.Background(), "tok", ProductCreate{ProductName: "x"})
			de := apperrors.ToDomainError(err)
			if de.Code != apperrors.CodeNetwork || de.HTTPStatus != tc.status {
				t.Fatalf("unexpected error %+v", de)
			}
			if de.Message != tc.want {
				t.Fatalf("expected message %q, got %q", tc.want, de.Message)
			}
		})
	}
}

func TestUnauthorizedIsDetectable(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	})

	res := Do(context.Background(), func(ctx context.Context) ([]domain.Order, error) {
		return c.MyOrders(ctx, "expired")
	})
	if res.OK() || !res.Unauthorized() {
		t.Fatalf("expected unauthorized result, got %+v", res)
	}
	if res.Message() != "Could not validate credentials" {
		t.Fatalf("unexpected message %q", res.Message())
	}
}

func TestTransportFailureIsBadGateway(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url)
	_, err := c.FlaggedProducts(context.Background(), "tok")
	de := apperrors.ToDomainError(err)
	if de.Code != apperrors.CodeNetwork || de.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("unexpected error %+v", de)
	}
	if c.Ping(context.Background()) == nil {
		t.Fatalf("expected ping to fail")
	}
}

func TestPingAcceptsAnyResponse(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestResultSuccess(t *testing.T) {
	res := Do(context.Background(), func(context.Context) (int, error) { return 3, nil })
	if !res.OK() || res.Value != 3 || res.Message() != "" || res.Unauthorized() {
		t.Fatalf("unexpected result %+v", res)
	}
}
