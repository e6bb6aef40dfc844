package errors

import (
	"encoding/json"
	"maps"
	"net/http"

	"github.com/go-chi/render"
)

// Problem type URIs, relative to the service root
const (
	TypeValidation    = "/errors/validation"
	TypeNotFound      = "/errors/not-found"
	TypeTableNotFound = "/errors/tables/not-found"
	TypeRowNotFound   = "/errors/tables/row-not-found"
	TypeRateLimit     = "/errors/rate-limit"
	TypeInternal      = "/errors/internal"
	TypeServiceDown   = "/errors/service-unavailable"
	TypeTimeout       = "/errors/timeout"
	TypeMethod        = "/errors/method-not-allowed"
)

type problemKind struct {
	uri   string
	title string
}

// problemKinds maps an error code to its problem type and title
var problemKinds = map[string]problemKind{
	CodeValidationFailed:   {TypeValidation, "Validation Failed"},
	CodeNotFound:           {TypeNotFound, "Not Found"},
	CodeTableNotFound:      {TypeTableNotFound, "Table Not Found"},
	CodeRowNotFound:        {TypeRowNotFound, "Row Not Found"},
	CodeRateLimitExceeded:  {TypeRateLimit, "Too Many Requests"},
	CodeMethodNotAllowed:   {TypeMethod, "Method Not Allowed"},
	CodeRequestTimeout:     {TypeTimeout, "Request Timeout"},
	CodeServiceUnavailable: {TypeServiceDown, "Service Unavailable"},
	CodeInternalServer:     {TypeInternal, "Internal Server Error"},
}

// ProblemDetails is an RFC 7807 problem document. Extensions are written as
// top-level members and never shadow the standard ones.
type ProblemDetails struct {
	Type       string
	Title      string
	Status     int
	Detail     string
	Instance   string
	Extensions map[string]interface{}
}

func NewProblemDetails(status int, problemType, title, detail, instance string) *ProblemDetails {
	return &ProblemDetails{
		Type:       problemType,
		Title:      title,
		Status:     status,
		Detail:     detail,
		Instance:   instance,
		Extensions: map[string]interface{}{},
	}
}

// WithExtension sets one extension member and returns pd
func (pd *ProblemDetails) WithExtension(key string, value interface{}) *ProblemDetails {
	if pd.Extensions == nil {
		pd.Extensions = map[string]interface{}{}
	}
	pd.Extensions[key] = value
	return pd
}

func (pd *ProblemDetails) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, pd.Status)
	return nil
}

func (pd *ProblemDetails) MarshalJSON() ([]byte, error) {
	doc := maps.Clone(pd.Extensions)
	if doc == nil {
		doc = map[string]interface{}{}
	}
	doc["type"], doc["title"], doc["status"] = pd.Type, pd.Title, pd.Status
	delete(doc, "detail")
	delete(doc, "instance")
	if pd.Detail != "" {
		doc["detail"] = pd.Detail
	}
	if pd.Instance != "" {
		doc["instance"] = pd.Instance
	}
	return json.Marshal(doc)
}
