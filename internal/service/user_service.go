package service

import (
	"context"
	"errors"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/KakonDebnath/bistro-boss-server/internal/dto"
	"github.com/KakonDebnath/bistro-boss-server/internal/repository"
	"github.com/KakonDebnath/bistro-boss-server/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrUserAlreadyExists = errors.New("user already exists")

// UserService defines the interface for user operations
type UserService interface {
	// List returns every user
	List(ctx context.Context) ([]*domain.User, error)
	// Create registers a user with the default role
	Create(ctx context.Context, user *domain.User) (*domain.InsertResult, error)
	// IsAdmin reports whether the user with email holds the admin role
	IsAdmin(ctx context.Context, email string) (bool, error)
	// AdminStatus answers the admin check for email on behalf of requester
	AdminStatus(ctx context.Context, requester, email string) (*dto.AdminStatusResponse, error)
	// Promote grants the admin role
	Promote(ctx context.Context, id string) (*domain.UpdateResult, error)
	// Delete removes a user
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.list")
	defer span.End()

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("user.count", len(users)))
	return users, nil
}

func (s *userService) Create(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.create")
	defer span.End()

	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if existing != nil {
		span.SetStatus(codes.Error, "user already exists")
		return nil, ErrUserAlreadyExists
	}

	u := *user
	u.Role = domain.RoleDefault

	result, err := s.userRepo.Insert(ctx, &u)
	if err != nil {
		// Lost a concurrent signup race to the unique index
		if errors.Is(err, domain.ErrDuplicateKey) {
			span.SetStatus(codes.Error, "user already exists")
			return nil, ErrUserAlreadyExists
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return result, nil
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.is_admin")
	defer span.End()

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		telemetry.RecordError(span, err)
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.IsAdmin(), nil
}

func (s *userService) AdminStatus(ctx context.Context, requester, email string) (*dto.AdminStatusResponse, error) {
	if requester != email {
		return &dto.AdminStatusResponse{Admin: false}, nil
	}

	admin, err := s.IsAdmin(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.AdminStatusResponse{Admin: admin}, nil
}

func (s *userService) Promote(ctx context.Context, id string) (*domain.UpdateResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.promote")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", id))

	result, err := s.userRepo.PromoteToAdmin(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return result, nil
}

func (s *userService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.delete")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", id))

	result, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return result, nil
}
