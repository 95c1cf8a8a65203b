package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/KakonDebnath/bistro-boss-server/internal/dto"
	"github.com/KakonDebnath/bistro-boss-server/pkg/telemetry"
	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrMissingSecret = errors.New("jwt signing secret is not configured")
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
)

// TokenTTL is the fixed lifetime of an issued session token
const TokenTTL = time.Hour

// TokenServiceConfig holds configuration for TokenService
type TokenServiceConfig struct {
	Secret string
	// Now overrides the clock, used by tests
	Now func() time.Time
}

// TokenService issues and verifies session tokens
type TokenService interface {
	// Issue signs the claim into an HS256 token that expires after TokenTTL
	Issue(ctx context.Context, claim *domain.IdentityClaim) (*dto.TokenResponse, error)
	// Verify checks signature, algorithm and expiry and returns the embedded claim
	Verify(ctx context.Context, token string) (*domain.IdentityClaim, error)
}

type tokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a new TokenService
func NewTokenService(config *TokenServiceConfig) TokenService {
	s := &tokenService{
		secret: []byte(config.Secret),
		now:    config.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *tokenService) Issue(ctx context.Context, claim *domain.IdentityClaim) (*dto.TokenResponse, error) {
	_, span := telemetry.StartSpan(ctx, "service.token.issue")
	defer span.End()

	if len(s.secret) == 0 {
		span.SetStatus(codes.Error, "missing secret")
		return nil, ErrMissingSecret
	}
	if claim == nil || strings.TrimSpace(claim.Email) == "" {
		span.SetStatus(codes.Error, "email required")
		return nil, ErrEmailRequired
	}

	// Role and any registered claims from the caller are never signed
	now := s.now()
	claims := domain.IdentityClaim{
		Email: claim.Email,
		Name:  claim.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(s.secret)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return &dto.TokenResponse{Token: token}, nil
}

func (s *tokenService) Verify(ctx context.Context, tokenString string) (*domain.IdentityClaim, error) {
	_, span := telemetry.StartSpan(ctx, "service.token.verify")
	defer span.End()

	if len(s.secret) == 0 {
		span.SetStatus(codes.Error, "missing secret")
		return nil, ErrMissingSecret
	}

	claim := &domain.IdentityClaim{}
	token, err := jwt.ParseWithClaims(tokenString, claim,
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, jwt.ErrTokenExpired) {
			span.SetStatus(codes.Error, "token expired")
			return nil, ErrTokenExpired
		}
		span.SetStatus(codes.Error, "invalid token")
		return nil, ErrInvalidToken
	}

	if !token.Valid || strings.TrimSpace(claim.Email) == "" {
		span.SetStatus(codes.Error, "invalid claims")
		return nil, ErrInvalidToken
	}

	span.SetStatus(codes.Ok, "")
	return claim, nil
}
