package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-dashboard/internal/api/dto"
	"github.com/spec-kit/supplychain-dashboard/internal/backend"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/service"
	"github.com/spec-kit/supplychain-dashboard/internal/session"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

// logisticStatuses are the tabs of the logistics dashboard.
var logisticStatuses = []domain.OrderStatus{domain.OrderStatusNew, domain.OrderStatusConfirmed, domain.OrderStatusDelivered}

// LogisticsHandler serves the logistics dashboard.
type LogisticsHandler struct {
	*Base
	shipments *service.ShipmentService
}

// NewLogisticsHandler constructs handler.
func NewLogisticsHandler(base *Base, shipments *service.ShipmentService) *LogisticsHandler {
	return &LogisticsHandler{Base: base, shipments: shipments}
}

type logisticView struct {
	Status   domain.OrderStatus
	Statuses []domain.OrderStatus
	Orders   []domain.Order
}

// Dashboard handles GET /logistic?status=.
func (h *LogisticsHandler) Dashboard(c *fiber.Ctx) error {
	status := domain.OrderStatus(c.Query("status", string(domain.OrderStatusNew)))
	if !containsStatus(logisticStatuses, status) {
		notify(c, session.LevelWarning, "Unknown order filter; showing new orders.")
		status = domain.OrderStatusNew
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
	return h.render(c, "logistic", "Logistics Dashboard", logisticView{
		Status:   status,
		Statuses: logisticStatuses,
		Orders:   res.Value,
	})
}

// Advance handles POST /logistic/orders/:id/advance.
func (h *LogisticsHandler) Advance(c *fiber.Ctx) error {
	var form dto.AdvanceForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid form")
	}
	current := domain.OrderStatus(form.Status)
	back := "/logistic?" + url.Values{"status": []string{string(current)}}.Encode()

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		notify(c, session.LevelError, "Invalid order id.")
		return c.Redirect(back, http.StatusFound)
	}

	order, err := h.shipments.Advance(c.UserContext(), bearer(c), int64(id), current)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			return h.expire(c)
		}
		h.notifyFailure(c, err)
		return c.Redirect(back, http.StatusFound)
	}

	notify(c, session.LevelSuccess, fmt.Sprintf("Order #%d marked %s.", id, order.Status))
	return c.Redirect(back, http.StatusFound)
}
