package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KakonDebnath/bistro-boss-server/internal/domain"
	"github.com/KakonDebnath/bistro-boss-server/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(ctx context.Context, token string) (*domain.IdentityClaim, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IdentityClaim), args.Error(1)
}

type MockAdminChecker struct {
	mock.Mock
}

func (m *MockAdminChecker) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func setupAuthRouter(verifier TokenVerifier, checker AdminChecker) (*gin.Engine, *bool) {
	reached := false
	router := gin.New()
	handler := func(c *gin.Context) {
		reached = true
		claim, _ := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"email": claim.Email})
	}
	router.GET("/protected", VerifyJWT(verifier), handler)
	router.GET("/admin", VerifyJWT(verifier), VerifyAdmin(checker), handler)
	router.GET("/unguarded-admin", VerifyAdmin(checker), handler)
	return router, &reached
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestVerifyJWT_HeaderParsing(t *testing.T) {
	tests := []struct {
		name   string
		header string
		valid  bool
	}{
		{"missing header", "", false},
		{"bearer only", "Bearer", false},
		{"bearer with space", "Bearer ", false},
		{"wrong scheme", "Basic abc", false},
		{"extra parts", "Bearer abc def", false},
		{"token only", "abc", false},
		{"canonical", "Bearer good", true},
		{"lowercase scheme", "bearer good", true},
		{"extra whitespace", "  Bearer   good ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := new(MockTokenVerifier)
			verifier.On("Verify", mock.Anything, "good").Return(&domain.IdentityClaim{Email: "a@x.com"}, nil)
			router, reached := setupAuthRouter(verifier, new(MockAdminChecker))

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.valid, *reached)
			if tt.valid {
				assert.Equal(t, http.StatusOK, w.Code)
				return
			}
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			body := decodeError(t, w)
			assert.True(t, body.Error)
			assert.Equal(t, response.MsgUnauthorized, body.Message)
			verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
		})
	}
}

func TestVerifyJWT_InvalidToken(t *testing.T) {
	verifier := new(MockTokenVerifier)
	verifier.On("Verify", mock.Anything, "expired").Return(nil, errors.New("token expired"))
	router, reached := setupAuthRouter(verifier, new(MockAdminChecker))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.MsgUnauthorized, decodeError(t, w).Message)
}

func TestVerifyAdmin(t *testing.T) {
	tests := []struct {
		name       string
		admin      bool
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"admin passes", true, nil, http.StatusOK, ""},
		{"non admin", false, nil, http.StatusForbidden, response.MsgForbiddenUser},
		{"storage failure", false, errors.New("db down"), http.StatusInternalServerError, response.MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := new(MockTokenVerifier)
			verifier.On("Verify", mock.Anything, "tok").Return(&domain.IdentityClaim{Email: "a@x.com"}, nil)
			checker := new(MockAdminChecker)
			checker.On("IsAdmin", mock.Anything, "a@x.com").Return(tt.admin, tt.err).Once()
			router, reached := setupAuthRouter(verifier, checker)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer tok")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, *reached)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeError(t, w).Message)
			}
			checker.AssertNumberOfCalls(t, "IsAdmin", 1)
		})
	}
}

func TestVerifyAdmin_WithoutVerifiedClaim(t *testing.T) {
	checker := new(MockAdminChecker)
	router, reached := setupAuthRouter(new(MockTokenVerifier), checker)

	req := httptest.NewRequest(http.MethodGet, "/unguarded-admin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	checker.AssertNotCalled(t, "IsAdmin", mock.Anything, mock.Anything)
}

func TestGetClaims_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	claim, ok := GetClaims(c)

	assert.False(t, ok)
	assert.Nil(t, claim)
}
