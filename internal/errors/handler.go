package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/render"

	"github.com/ShwetaPawar0705/IRIS/internal/infrastructure"
	"github.com/ShwetaPawar0705/IRIS/internal/tables"
)

// tableFaults maps table engine sentinels to response statuses, most
// specific first
var tableFaults = []struct {
	target error
	status int
	code   string
}{
	{tables.ErrTableNotFound, http.StatusNotFound, CodeTableNotFound},
	{tables.ErrRowNotFound, http.StatusNotFound, CodeRowNotFound},
	{tables.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{tables.ErrServiceUnavailable, http.StatusServiceUnavailable, CodeServiceUnavailable},
	{tables.ErrResourceUnavailable, http.StatusServiceUnavailable, CodeServiceUnavailable},
}

// ErrorHandler writes every failed request as an RFC 7807 problem document
// carrying the request's trace id
type ErrorHandler struct {
	logger       *slog.Logger
	includeStack bool
}

// NewErrorHandler adds stack traces to 5xx responses when includeStack is
// set
func NewErrorHandler(logger *slog.Logger, includeStack bool) *ErrorHandler {
	return &ErrorHandler{
		logger:       infrastructure.WithComponent(logger, "error_handler"),
		includeStack: includeStack,
	}
}

// HandleError logs err and responds with its problem document. A nil err
// writes nothing.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	problem := h.ErrorToProblem(err, r)
	level := slog.LevelWarn
	if problem.Status >= http.StatusInternalServerError {
		level = slog.LevelError
		if h.includeStack {
			problem.WithExtension("stack", string(debug.Stack()))
		}
	}
	h.logger.Log(r.Context(), level, "request failed",
		slog.String("error", err.Error()),
		slog.Int("status", problem.Status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))

	h.respond(w, r, problem)
}

// ErrorToProblem maps err to a problem document. An *APIError keeps its own
// status; table sentinels and context errors get theirs; anything else is a
// 500 with the error message as detail.
func (h *ErrorHandler) ErrorToProblem(err error, r *http.Request) *ProblemDetails {
	return classify(err).Problem(r.URL.Path)
}

func classify(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	for _, f := range tableFaults {
		if errors.Is(err, f.target) {
			return New(f.status, f.code, err.Error())
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return New(http.StatusGatewayTimeout, CodeRequestTimeout,
			"The request took too long to process and was cancelled")
	}
	return NewInternalError(err.Error())
}

// HandlePanic logs a recovered panic with its stack and responds with a
// generic 500
func (h *ErrorHandler) HandlePanic(w http.ResponseWriter, r *http.Request, recovered interface{}) {
	h.logger.ErrorContext(r.Context(), "panic recovered",
		slog.Any("panic", recovered),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("stack", string(debug.Stack())))

	problem := NewInternalError("An unexpected error occurred").Problem(r.URL.Path)
	if h.includeStack {
		problem.WithExtension("panic", fmt.Sprint(recovered))
	}
	h.respond(w, r, problem)
}

// NotFound answers requests for unknown routes
func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, New(http.StatusNotFound, CodeNotFound,
		"The requested resource was not found").Problem(r.URL.Path))
}

// MethodNotAllowed answers known routes called with the wrong method
func (h *ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, New(http.StatusMethodNotAllowed, CodeMethodNotAllowed,
		fmt.Sprintf("Method %s is not allowed for this endpoint", r.Method)).Problem(r.URL.Path))
}

func (h *ErrorHandler) respond(w http.ResponseWriter, r *http.Request, problem *ProblemDetails) {
	problem.WithExtension("trace_id", infrastructure.GetTraceID(r.Context()))
	_ = render.Render(w, r, problem)
}
