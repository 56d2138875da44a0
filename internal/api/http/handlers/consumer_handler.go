package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-dashboard/internal/api/dto"
	"github.com/spec-kit/supplychain-dashboard/internal/backend"
	"github.com/spec-kit/supplychain-dashboard/internal/cart"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/service"
	"github.com/spec-kit/supplychain-dashboard/internal/session"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

// ConsumerHandler serves the consumer views: shopping, verification and orders.
type ConsumerHandler struct {
	*Base
	products  *service.ProductService
	checkout  *service.CheckoutService
	shipments *service.ShipmentService
	verifier  *service.VerificationService
}

// ConsumerDependencies bundles services for ConsumerHandler.
type ConsumerDependencies struct {
	Products     *service.ProductService
	Checkout     *service.CheckoutService
	Shipments    *service.ShipmentService
	Verification *service.VerificationService
}

// NewConsumerHandler constructs handler.
func NewConsumerHandler(base *Base, deps ConsumerDependencies) *ConsumerHandler {
	return &ConsumerHandler{
		Base:      base,
		products:  deps.Products,
		checkout:  deps.Checkout,
		shipments: deps.Shipments,
		verifier:  deps.Verification,
	}
}

type buyView struct {
	Products []domain.Product
	Cart     cart.Cart
}

type verifyView struct {
	Result *service.Verification
	Orders []domain.Order
}

type ledgerView struct {
	OrderID int64
	Entries []domain.LedgerEntry
}

const buyPath = "/consumer"

// Buy handles GET /consumer.
func (h *ConsumerHandler) Buy(c *fiber.Ctx) error {
	return h.renderBuy(c, formState{})
}

func (h *ConsumerHandler) renderBuy(c *fiber.Ctx, form formState) error {
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
	view := buyView{Products: res.Value, Cart: session.FromCtx(c).Cart()}
	return h.renderForm(c, "consumer_buy", "Buy Product", view, form)
}

// AddToCart handles POST /consumer/cart.
func (h *ConsumerHandler) AddToCart(c *fiber.Ctx) error {
	var form dto.CartForm
	if err := c.BodyParser(&form); err != nil || form.ProductID <= 0 {
		notify(c, session.LevelError, "Please choose a product.")
		return c.Redirect(buyPath, http.StatusFound)
	}

	products, err := h.products.List(c.UserContext(), bearer(c))
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			return h.expire(c)
		}
		h.notifyFailure(c, err)
		return c.Redirect(buyPath, http.StatusFound)
	}

	sess := session.FromCtx(c)
	for _, p := range products {
		if p.ID != form.ProductID {
			continue
		}
		ct := sess.Cart()
		if ct.Add(p) {
			sess.SetCart(ct)
			notify(c, session.LevelSuccess, fmt.Sprintf("%s added to cart.", p.ProductName))
		} else {
			notify(c, session.LevelInfo, fmt.Sprintf("%s is already in your cart.", p.ProductName))
		}
		return c.Redirect(buyPath, http.StatusFound)
	}

	notify(c, session.LevelError, "Product not found.")
	return c.Redirect(buyPath, http.StatusFound)
}

// RemoveFromCart handles POST /consumer/cart/remove.
func (h *ConsumerHandler) RemoveFromCart(c *fiber.Ctx) error {
	var form dto.CartForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid form")
	}
	sess := session.FromCtx(c)
	ct := sess.Cart()
	if ct.Remove(form.ProductID) {
		sess.SetCart(ct)
	}
	return c.Redirect(buyPath, http.StatusFound)
}

// Checkout handles POST /consumer/checkout.
func (h *ConsumerHandler) Checkout(c *fiber.Ctx) error {
	var form dto.CheckoutForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid form")
	}

	sess := session.FromCtx(c)
	ct := sess.Cart()
	receipt, err := h.checkout.PlaceOrder(c.UserContext(), bearer(c), &ct, service.Contact{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Address: form.Address,
	})
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			return h.expire(c)
		}
		de := apperrors.ToDomainError(err)
		state := formState{values: form.Values()}
		if de.Code == apperrors.CodeValidation {
			state.errors = apperrors.FieldErrors(err)
			notify(c, session.LevelWarning, de.Message)
		} else {
			h.notifyFailure(c, err)
		}
		c.Status(de.HTTPStatus)
		return h.renderBuy(c, state)
	}

	sess.SetCart(ct)
	notify(c, session.LevelSuccess, fmt.Sprintf("Order #%d placed successfully!", receipt.Order.ID))
	return c.Redirect("/consumer/orders", http.StatusFound)
}

// VerifyPage handles GET /consumer/verify.
func (h *ConsumerHandler) VerifyPage(c *fiber.Ctx) error {
	return h.renderVerify(c, nil, formState{})
}

// Verify handles POST /consumer/verify.
func (h *ConsumerHandler) Verify(c *fiber.Ctx) error {
	var form dto.VerifyForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid form")
	}
	state := formState{values: map[string]string{"product_id": form.ProductID}}

	result, err := h.verifier.Verify(c.UserContext(), bearer(c), form.ProductID)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			return h.expire(c)
		}
		de := apperrors.ToDomainError(err)
		if de.Code == apperrors.CodeValidation {
			state.errors = apperrors.FieldErrors(err)
		} else {
			h.notifyFailure(c, err)
		}
		c.Status(de.HTTPStatus)
		return h.renderVerify(c, nil, state)
	}
	return h.renderVerify(c, &result, state)
}

func (h *ConsumerHandler) renderVerify(c *fiber.Ctx, result *service.Verification, form formState) error {
	token := bearer(c)
	res := backend.Do(c.UserContext(), func(ctx context.Context) ([]domain.Order, error) {
		return h.shipments.Mine(ctx, token)
	})
	if res.Unauthorized() {
		return h.expire(c)
	}
	if !res.OK() {
		h.notifyFailure(c, res.Err)
	}
	return h.renderForm(c, "consumer_verify", "Verify Product", verifyView{Result: result, Orders: res.Value}, form)
}

// Orders handles GET /consumer/orders.
func (h *ConsumerHandler) Orders(c *fiber.Ctx) error {
	token := bearer(c)
	res := backend.Do(c.UserContext(), func(ctx context.Context) ([]domain.Order, error) {
		return h.shipments.Mine(ctx, token)
	})
	if res.Unauthorized() {
		return h.expire(c)
	}
	if !res.OK() {
		h.notifyFailure(c, res.Err)
	}
	return h.render(c, "consumer_orders", "My Orders", res.Value)
}

// Ledger handles GET /consumer/orders/:id/ledger.
func (h *ConsumerHandler) Ledger(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		notify(c, session.LevelError, "Invalid order id.")
		return c.Redirect("/consumer/orders", http.StatusFound)
	}
	orderID := int64(id)

	token := bearer(c)
	res := backend.Do(c.UserContext(), func(ctx context.Context) ([]domain.LedgerEntry, error) {
		return h.shipments.Ledger(ctx, token, orderID)
	})
	if res.Unauthorized() {
		return h.expire(c)
	}
	if !res.OK() {
		h.notifyFailure(c, res.Err)
	}
	return h.render(c, "consumer_ledger", "Order Ledger", ledgerView{OrderID: orderID, Entries: res.Value})
}
