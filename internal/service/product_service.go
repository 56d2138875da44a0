package service

import (
	"context"
	"strings"

	"github.com/spec-kit/supplychain-dashboard/internal/backend"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/events"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

// ProductInput is the supplier's registration form.
type ProductInput struct {
	Name        string
	Category    string
	Price       float64
	Ingredients string
}

// ProductService serves catalog and anomaly views.
type ProductService struct {
	api        ProductAPI
	dispatcher events.Dispatcher
}

// NewProductService builds the service.
func NewProductService(api ProductAPI, dispatcher events.Dispatcher) *ProductService {
	return &ProductService{api: api, dispatcher: dispatcher}
}

// List returns every registered product.
func (s *ProductService) List(ctx context.Context, token string) ([]domain.Product, error) {
	return s.api.ListProducts(ctx, token)
}

// Flagged returns the products the backend marked as suspect.
func (s *ProductService) Flagged(ctx context.Context, token string) ([]domain.FlaggedProduct, error) {
	return s.api.FlaggedProducts(ctx, token)
}

// Register validates and submits a new product. A product accepted with a
// caveat is still returned without error; callers check NeedsAttention.
func (s *ProductService) Register(ctx context.Context, token string, in ProductInput) (domain.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Ingredients = strings.TrimSpace(in.Ingredients)

	fields := map[string]any{}
	if in.Name == "" {
		fields["product_name"] = "Product name is required"
	}
	if in.Category == "" {
		fields["category"] = "Category is required"
	}
	if in.Price <= 0 {
		fields["price"] = "Price must be greater than zero"
	}
	if in.Ingredients == "" {
		fields["ingredients"] = "Ingredients are required"
	}
	if len(fields) > 0 {
		return domain.Product{}, apperrors.NewValidationError("Please fill in all the fields", fields)
	}

	product, err := s.api.RegisterProduct(ctx, token, backend.ProductCreate{
		ProductName: in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Ingredients: in.Ingredients,
	})
	if err != nil {
		return domain.Product{}, err
	}

	publishEvent(ctx, s.dispatcher, events.EventProductRegistered, tokenActor(token), events.ProductRegisteredPayload{
		ProductID: product.ID,
		Name:      product.ProductName,
		Status:    product.Status,
		Flagged:   product.IsFlagged,
	})
	return product, nil
}
