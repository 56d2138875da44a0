package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

// Verdict is the outcome of a product authenticity check.
type Verdict string

const (
	VerdictTrusted Verdict = "trusted"
	VerdictSuspect Verdict = "suspect"
)

// Verification describes why a product was judged the way it was.
type Verification struct {
	ProductID int64
	Verdict   Verdict
	Reason    string
	Product   *domain.Product
}

// VerificationService checks products a consumer received against the registry.
type VerificationService struct {
	api ProductAPI
}

// NewVerificationService builds the service.
func NewVerificationService(api ProductAPI) *VerificationService {
	return &VerificationService{api: api}
}

// Verify looks productID up among registered products. Unknown and flagged
// products are suspect.
func (s *VerificationService) Verify(ctx context.Context, token, productID string) (Verification, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Verification{}, apperrors.NewValidationError("Please enter a product ID", map[string]any{"product_id": "Product ID is required"})
	}
	id, err := strconv.ParseInt(productID, 10, 64)
	if err != nil || id <= 0 {
		return Verification{}, apperrors.NewValidationError("Product ID must be a positive number", map[string]any{"product_id": "Product ID must be a positive number"})
	}

	products, err := s.api.ListProducts(ctx, token)
	if err != nil {
		return Verification{}, err
	}
	for i := range products {
		p := products[i]
		if p.ID != id {
			continue
		}
		if p.IsFlagged {
			return Verification{ProductID: id, Verdict: VerdictSuspect, Reason: "This product was flagged as a possible counterfeit.", Product: &p}, nil
		}
		return Verification{ProductID: id, Verdict: VerdictTrusted, Reason: "This product is registered on the ledger.", Product: &p}, nil
	}
	return Verification{ProductID: id, Verdict: VerdictSuspect, Reason: "No registered product has this ID."}, nil
}
