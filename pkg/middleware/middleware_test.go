package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KakonDebnath/bistro-boss-server/pkg/logger"
	"github.com/KakonDebnath/bistro-boss-server/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_GeneratesNew(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		requestID := GetRequestID(c)
		c.String(http.StatusOK, requestID)
	})

	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, c.Request)

	// Check response header
	headerID := w.Header().Get(RequestIDHeader)
	if headerID == "" {
		t.Error("Expected X-Request-ID header to be set")
	}

	// Check response body (request ID returned)
	bodyID := w.Body.String()
	if bodyID == "" {
		t.Error("Expected request ID in body")
	}

	// Header and body should match
	if headerID != bodyID {
		t.Errorf("Header ID (%s) should match body ID (%s)", headerID, bodyID)
	}
}

func TestRequestID_UsesExisting(t *testing.T) {
	existingID := "existing-request-id-123"

	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	c.Request.Header.Set(RequestIDHeader, existingID)
	r.ServeHTTP(w, c.Request)

	// Should use existing ID
	if w.Body.String() != existingID {
		t.Errorf("Expected existing ID %s, got %s", existingID, w.Body.String())
	}
}

func TestRequestID_ReplacesInvalid(t *testing.T) {
	cases := map[string]string{
		"too long":      strings.Repeat("a", MaxRequestIDLength+1),
		"log injection": "abc\nlevel=error",
		"spaces":        "id with spaces",
	}

	for name, inbound := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)
			r.Use(RequestID())
			r.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set(RequestIDHeader, inbound)
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == inbound {
				t.Fatalf("Expected inbound id %q to be replaced", inbound)
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("Expected a generated UUID, got %q", got)
			}
			if w.Body.String() != got {
				t.Errorf("Context id %q should match header %q", w.Body.String(), got)
			}
		})
	}
}

func TestRequestID_AcceptsMaxLength(t *testing.T) {
	inbound := strings.Repeat("a", MaxRequestIDLength)

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, inbound)
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != inbound {
		t.Errorf("Expected %q, got %q", inbound, got)
	}
}

func TestCORS_Headers(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.Use(CORS())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	c.Request.Header.Set("Origin", "http://example.com")
	r.ServeHTTP(w, c.Request)

	// Check CORS headers
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Expected Access-Control-Allow-Origin header")
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Expected Access-Control-Allow-Methods header")
	}
}

func TestCORS_Preflight(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.Use(CORS())
	r.OPTIONS("/test", func(c *gin.Context) {
		// This shouldn't be reached, CORS middleware handles OPTIONS
	})

	c.Request = httptest.NewRequest(http.MethodOptions, "/test", nil)
	c.Request.Header.Set("Origin", "http://example.com")
	r.ServeHTTP(w, c.Request)

	// Preflight should return 204
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status %d for preflight, got %d", http.StatusNoContent, w.Code)
	}
}

func TestCORS_MaxAgeHeader(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	r.Use(CORS())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Max-Age"); got != "86400" {
		t.Errorf("Expected Access-Control-Max-Age 86400, got %q", got)
	}
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.Use(CORS())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://bistro.example.com")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin *, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, IdempotencyKeyHeader) {
		t.Errorf("Expected %s in allowed headers, got %q", IdempotencyKeyHeader, got)
	}
}

func TestRecovery_ReturnsErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	r.Use(Recovery(logger.Nop()))
	r.GET("/boom", func(c *gin.Context) {
		panic("storage exploded")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	var body response.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if !body.Error || body.Message != response.MsgInternalError {
		t.Errorf("Unexpected body: %+v", body)
	}
}

func TestLogger_PassesThrough(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	r.Use(RequestID(), Logger(logger.Nop()))
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusTeapot, "short and stout")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, w.Code)
	}
}
