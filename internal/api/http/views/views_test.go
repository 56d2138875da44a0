package views

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/supplychain-dashboard/internal/auth"
	"github.com/spec-kit/supplychain-dashboard/internal/cart"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/session"
)

func loadedEngine(t *testing.T) *Engine {
	t.Helper()
	e := New("CosmoChain")
	if err := e.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return e
}

func TestEveryPageRendersEmpty(t *testing.T) {
	e := loadedEngine(t)
	pages := map[string]any{
		"login":          nil,
		"signup":         domain.SignupRoles,
		"admin_home":     nil,
		"admin_products": []domain.Product(nil),
		"admin_shipments": struct {
			Status domain.OrderStatus
			Orders []domain.Order
		}{},
		"admin_anomalies":   []domain.FlaggedProduct(nil),
		"supplier_home":     []domain.Product(nil),
		"supplier_register": nil,
		"consumer_buy": struct {
			Products []domain.Product
			Cart     cart.Cart
		}{},
		"consumer_orders": []domain.Order(nil),
		"consumer_ledger": struct {
			OrderID int64
			Entries []domain.LedgerEntry
		}{},
		"error": struct{ Message string }{"boom"},
	}
	for name, data := range pages {
		var buf bytes.Buffer
		if err := e.Render(&buf, name, Page{Title: name, Data: data}); err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		if !strings.Contains(buf.String(), "CosmoChain") {
			t.Fatalf("%s: layout not applied", name)
		}
	}
}

func TestLayoutShowsNavigationAndFlashes(t *testing.T) {
	e := loadedEngine(t)
	page := Page{
		Title:   "Buy Product",
		Path:    "/consumer",
		Role:    domain.RoleConsumer,
		Nav:     auth.NavigationFor(domain.RoleConsumer),
		Flashes: []session.Flash{{Level: session.LevelSuccess, Message: "Order placed successfully!"}},
		Data: struct {
			Products []domain.Product
			Cart     cart.Cart
		}{Products: []domain.Product{{ID: 1, ProductName: "Rose <Serum>", Price: 5}}},
	}
	var buf bytes.Buffer
	if err := e.Render(&buf, "consumer_buy", page); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	for _, want := range []string{`href="/consumer/verify"`, "Order placed successfully!", `action="/logout"`, "$5.00", "Rose &lt;Serum&gt;"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestLogisticPageOffersNextStatus(t *testing.T) {
	e := loadedEngine(t)
	data := struct {
		Status   domain.OrderStatus
		Statuses []domain.OrderStatus
		Orders   []domain.Order
	}{
		Status:   domain.OrderStatusNew,
		Statuses: []domain.OrderStatus{domain.OrderStatusNew},
		Orders:   []domain.Order{{ID: 7, Status: domain.OrderStatusNew, CreatedAt: domain.Timestamp{Time: time.Now()}}},
	}
	var buf bytes.Buffer
	if err := e.Render(&buf, "logistic", Page{Data: data}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "/logistic/orders/7/advance") || !strings.Contains(buf.String(), "Mark CONFIRMED") {
		t.Fatalf("missing advance form:\n%s", buf.String())
	}
}

func TestRenderUnknownView(t *testing.T) {
	e := loadedEngine(t)
	if err := e.Render(&bytes.Buffer{}, "missing", Page{}); err == nil {
		t.Fatalf("expected error for unknown view")
	}
}

func TestPagesDoNotShareHelperTemplates(t *testing.T) {
	e := loadedEngine(t)
	orders := []domain.Order{{ID: 3, Status: domain.OrderStatusInTransit, CustomerName: "Ada"}}

	var shipments bytes.Buffer
	err := e.Render(&shipments, "admin_shipments", Page{Data: struct {
		Status domain.OrderStatus
		Orders []domain.Order
	}{Status: domain.OrderStatusInTransit, Orders: orders}})
	if err != nil {
		t.Fatalf("render shipments: %v", err)
	}
	if !strings.Contains(shipments.String(), "<td>Ada</td>") {
		t.Fatalf("admin table should list the customer:\n%s", shipments.String())
	}

	var verify bytes.Buffer
	err = e.Render(&verify, "consumer_verify", Page{Data: struct {
		Result *struct{}
		Orders []domain.Order
	}{Orders: orders}})
	if err != nil {
		t.Fatalf("render verify: %v", err)
	}
	if !strings.Contains(verify.String(), "/consumer/orders/3/ledger") || strings.Contains(verify.String(), "<td>Ada</td>") {
		t.Fatalf("verify page should use its own orders table:\n%s", verify.String())
	}
}

func TestExplicitLayoutArgument(t *testing.T) {
	e := loadedEngine(t)
	var buf bytes.Buffer
	if err := e.Render(&buf, "login", Page{Title: "Login"}, LayoutName); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "<title>Login | CosmoChain</title>") {
		t.Fatalf("layout not applied:\n%s", buf.String())
	}
}
