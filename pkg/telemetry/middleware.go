package telemetry

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TracerName is the instrumentation name of the HTTP spans
	TracerName = "bistro-boss/gin"
	// TraceIDHeader echoes the trace id so clients can quote it in bug reports
	TraceIDHeader = "X-Trace-ID"
	// ContextKeyTraceID is the gin context key of the current trace id
	ContextKeyTraceID = "trace_id"

	// set by the token gate once the caller is verified
	contextKeyEmail = "email"
)

type middlewareConfig struct {
	provider   trace.TracerProvider
	propagator propagation.TextMapPropagator
}

// MiddlewareOption customizes TracingMiddleware
type MiddlewareOption func(*middlewareConfig)

// WithTracerProvider overrides the global tracer provider
func WithTracerProvider(tp trace.TracerProvider) MiddlewareOption {
	return func(cfg *middlewareConfig) { cfg.provider = tp }
}

// TracingMiddleware starts one server span per request, named
// "<METHOD> <route template>" so ids in paths do not explode span names.
// Responses with status >= 500 mark the span as failed.
func TracingMiddleware(opts ...MiddlewareOption) gin.HandlerFunc {
	cfg := &middlewareConfig{
		provider:   otel.GetTracerProvider(),
		propagator: otel.GetTextMapPropagator(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	tracer := cfg.provider.Tracer(TracerName)

	return func(c *gin.Context) {
		ctx := cfg.propagator.Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		route := c.FullPath()
		spanName := c.Request.Method + " " + route
		if route == "" {
			spanName = "HTTP " + c.Request.Method
		}

		ctx, span := tracer.Start(ctx, spanName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPMethod(c.Request.Method),
				semconv.HTTPRoute(route),
				semconv.NetHostName(c.Request.Host),
				semconv.UserAgentOriginal(c.Request.UserAgent()),
			),
		)
		defer span.End()

		if sc := span.SpanContext(); sc.HasTraceID() {
			traceID := sc.TraceID().String()
			c.Header(TraceIDHeader, traceID)
			c.Set(ContextKeyTraceID, traceID)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(semconv.HTTPStatusCode(status))
		if email := c.GetString(contextKeyEmail); email != "" {
			span.SetAttributes(attribute.String("enduser.id", email))
		}
		for _, err := range c.Errors {
			span.RecordError(err.Err)
		}
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}
