package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-dashboard/internal/backend"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/service"
	"github.com/spec-kit/supplychain-dashboard/internal/session"
)

// shipmentStatuses are the filters of the admin shipments view.
var shipmentStatuses = []domain.OrderStatus{domain.OrderStatusInTransit, domain.OrderStatusDelivered}

// AdminHandler serves the admin views.
type AdminHandler struct {
	*Base
	products  *service.ProductService
	shipments *service.ShipmentService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(base *Base, products *service.ProductService, shipments *service.ShipmentService) *AdminHandler {
	return &AdminHandler{Base: base, products: products, shipments: shipments}
}

type shipmentsView struct {
	Status domain.OrderStatus
	Orders []domain.Order
}

// Home handles GET /admin.
func (h *AdminHandler) Home(c *fiber.Ctx) error {
	return h.render(c, "admin_home", "Admin Dashboard", nil)
}

// Products handles GET /admin/products.
func (h *AdminHandler) Products(c *fiber.Ctx) error {
	token := bearer(c)
	res := backend.Do(c.UserContext(), func(ctx context.Context) ([]domain.Product, error) {
		return h.products.List(ctx, token)
	})
	if res.Unauthorized() {
		return h.expire(c)
	}
	if !res.OK() {
		h.notifyFailure(c, res.Err)
	}
	return h.render(c, "admin_products", "Products Registered", res.Value)
}

// Shipments handles GET /admin/shipments?status=.
func (h *AdminHandler) Shipments(c *fiber.Ctx) error {
	status := domain.OrderStatus(c.Query("status", string(domain.OrderStatusInTransit)))
	if !containsStatus(shipmentStatuses, status) {
		notify(c, session.LevelWarning, "Unknown shipment filter; showing shipments in transit.")
		status = domain.OrderStatusInTransit
	}

	token := bearer(c)
	res := backend.Do(c.UserContext(), func(ctx context.Context) ([]domain.Order, error) {
		return h.shipments.List(ctx, token, status)
	})
	if res.Unauthorized() {
		return h.expire(c)
	}
	if !res.OK() {
		h.notifyFailure(c, res.Err)
	}
	return h.render(c, "admin_shipments", "Shipments", shipmentsView{Status: status, Orders: res.Value})
}

// Anomalies handles GET /admin/anomalies.
func (h *AdminHandler) Anomalies(c *fiber.Ctx) error {
	token := bearer(c)
	res := backend.Do(c.UserContext(), func(ctx context.Context) ([]domain.FlaggedProduct, error) {
		return h.products.Flagged(ctx, token)
	})
	if res.Unauthorized() {
		return h.expire(c)
	}
	if !res.OK() {
		h.notifyFailure(c, res.Err)
	}
	return h.render(c, "admin_anomalies", "Anomalies Flagged", res.Value)
}

func containsStatus(list []domain.OrderStatus, s domain.OrderStatus) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}
