package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	apierrors "github.com/ShwetaPawar0705/IRIS/internal/errors"
	"github.com/ShwetaPawar0705/IRIS/internal/infrastructure"
)

// RequestIDHeader carries the request id in and out
const RequestIDHeader = "X-Request-ID"

// RequestID tags the request context with the caller's X-Request-ID, or a
// fresh UUID when there is none, and echoes it on the response. chi's own
// request id slot gets the same value.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := r.Header.Get(RequestIDHeader); id != "" {
			ctx = infrastructure.WithTraceID(ctx, id)
		}
		ctx = infrastructure.EnsureTraceID(ctx)

		id := infrastructure.GetTraceID(ctx)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, chimw.RequestIDKey, id)))
	})
}

// StructuredLogger writes one access record per request, at warn for 4xx
// and error for 5xx
func StructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	logger = infrastructure.WithComponent(logger, "http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
			}
			if r.URL.RawQuery != "" {
				attrs = append(attrs, slog.String("query", r.URL.RawQuery))
			}
			logger.LogAttrs(r.Context(), levelFor(status), "request completed", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// RateLimiter is a token bucket shared by every client of the process
type RateLimiter struct {
	bucket *rate.Limiter
	logger *slog.Logger
	errors *apierrors.ErrorHandler
}

// NewRateLimiter allows rps requests per second with bursts of burst
func NewRateLimiter(rps float64, burst int, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(rps), burst),
		logger: infrastructure.WithComponent(logger, "rate_limiter"),
		errors: errorHandler,
	}
}

// Handler rejects requests over the limit with 429 and Retry-After: 1
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.bucket.Allow() {
			next.ServeHTTP(w, r)
			return
		}
		rl.logger.WarnContext(r.Context(), "request throttled",
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))
		w.Header().Set("Retry-After", "1")
		rl.errors.HandleError(w, r, apierrors.ErrRateLimitExceeded)
	})
}

// Timeout bounds the request context. A handler that returns after the
// deadline without writing anything gets a 504 problem response.
func Timeout(timeout time.Duration, errorHandler *apierrors.ErrorHandler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if ctx.Err() == context.DeadlineExceeded && ww.Status() == 0 {
				errorHandler.HandleError(ww, r, ctx.Err())
			}
		})
	}
}

// CORSConfig lists the origins allowed to read responses. "*" allows any.
type CORSConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
}

// the API is read-only, so only GET and preflight are advertised
const (
	corsMethods = "GET, OPTIONS"
	corsHeaders = "Accept, Content-Type, " + RequestIDHeader
	corsMaxAge  = "300"
)

func (c CORSConfig) allows(origin string) bool {
	return origin != "" && slices.ContainsFunc(c.AllowedOrigins, func(o string) bool {
		return o == "*" || strings.EqualFold(o, origin)
	})
}

// CORS echoes an allowed Origin and answers preflight requests with 204
func CORS(cfg CORSConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			h := w.Header()
			if cfg.allows(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Methods", corsMethods)
			h.Set("Access-Control-Allow-Headers", corsHeaders)
			h.Set("Access-Control-Expose-Headers", RequestIDHeader)
			h.Set("Access-Control-Max-Age", corsMaxAge)

			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			if cfg.Logger != nil {
				cfg.Logger.DebugContext(r.Context(), "preflight",
					slog.String("origin", origin),
					slog.Bool("allowed", cfg.allows(origin)))
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

var securityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
}

// SecurityHeaders sets the hardening headers every JSON response carries,
// plus HSTS on TLS connections
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, kv := range securityHeaders {
			w.Header().Set(kv[0], kv[1])
		}
		if r.TLS != nil {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000")
		}
		next.ServeHTTP(w, r)
	})
}
