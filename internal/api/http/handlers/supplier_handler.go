package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-dashboard/internal/api/dto"
	"github.com/spec-kit/supplychain-dashboard/internal/backend"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/service"
	"github.com/spec-kit/supplychain-dashboard/internal/session"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

// SupplierHandler serves the supplier views.
type SupplierHandler struct {
	*Base
	products *service.ProductService
}

// NewSupplierHandler constructs handler.
func NewSupplierHandler(base *Base, products *service.ProductService) *SupplierHandler {
	return &SupplierHandler{Base: base, products: products}
}

// Home handles GET /supplier.
func (h *SupplierHandler) Home(c *fiber.Ctx) error {
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
	return h.render(c, "supplier_home", "Supplier Dashboard", res.Value)
}

// RegisterPage handles GET /supplier/register-product.
func (h *SupplierHandler) RegisterPage(c *fiber.Ctx) error {
	return h.render(c, "supplier_register", "Register Product", nil)
}

// Register handles POST /supplier/register-product.
func (h *SupplierHandler) Register(c *fiber.Ctx) error {
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid form")
	}

	var price float64
	if raw := strings.TrimSpace(form.Price); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			err = apperrors.NewValidationError("Price must be a number", map[string]any{"price": "Price must be a number"})
			return h.failedForm(c, err, "supplier_register", "Register Product", nil, form.Values())
		}
		price = parsed
	}

	product, err := h.products.Register(c.UserContext(), bearer(c), service.ProductInput{
		Name:        form.ProductName,
		Category:    form.Category,
		Price:       price,
		Ingredients: form.Ingredients,
	})
	if err != nil {
		return h.failedForm(c, err, "supplier_register", "Register Product", nil, form.Values())
	}

	if product.NeedsAttention() {
		notify(c, session.LevelWarning, product.Message)
	} else {
		notify(c, session.LevelSuccess, "Product registered successfully!")
	}
	return c.Redirect("/supplier", http.StatusFound)
}
