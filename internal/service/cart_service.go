package service

import (
	"context"
	"errors"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/KakonDebnath/bistro-boss-server/internal/repository"
	"github.com/KakonDebnath/bistro-boss-server/pkg/telemetry"
	"go.opentelemetry.io/otel/codes"
)

var ErrCartOwnerMismatch = errors.New("cart email does not match token")

// CartService defines the interface for cart operations
type CartService interface {
	// List returns the cart of email. An empty email yields an empty cart.
	// A requester asking for someone else's cart gets ErrCartOwnerMismatch.
	List(ctx context.Context, requester, email string) ([]*domain.CartItem, error)
	Add(ctx context.Context, item *domain.CartItem) (*domain.InsertResult, error)
	Remove(ctx context.Context, id string) (*domain.DeleteResult, error)
}

type cartService struct {
	cartRepo repository.CartRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartService{cartRepo: cartRepo}
}

func (s *cartService) List(ctx context.Context, requester, email string) ([]*domain.CartItem, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.cart.list")
	defer span.End()

	if email == "" {
		return []*domain.CartItem{}, nil
	}
	if email != requester {
		span.SetStatus(codes.Error, "owner mismatch")
		return nil, ErrCartOwnerMismatch
	}

	items, err := s.cartRepo.FindByEmail(ctx, email)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return items, nil
}

func (s *cartService) Add(ctx context.Context, item *domain.CartItem) (*domain.InsertResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.cart.add")
	defer span.End()

	result, err := s.cartRepo.Insert(ctx, item)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return result, nil
}

func (s *cartService) Remove(ctx context.Context, id string) (*domain.DeleteResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.cart.remove")
	defer span.End()

	result, err := s.cartRepo.Delete(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return result, nil
}
