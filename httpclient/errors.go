package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Kind classifies transport errors.
type Kind int

const (
	// KindUnknown covers non-2xx responses that fit no other category.
	KindUnknown Kind = iota
	// KindAuthentication indicates a rejected API key (401).
	KindAuthentication
	// KindAuthorization indicates insufficient permissions (403).
	KindAuthorization
	// KindNotFound indicates the resource does not exist (404).
	KindNotFound
	// KindValidation indicates rejected request parameters (400/422).
	KindValidation
	// KindRateLimit indicates the rate limit was exceeded (429).
	KindRateLimit
	// KindServer indicates a server-side failure (5xx).
	KindServer
	// KindNetwork indicates a transport-level failure (no HTTP response).
	KindNetwork
)

// String returns the error kind name.
func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Error is a classified transport error. All failures surfaced by the
// client are of this type.
type Error struct {
	// Kind classifies the error.
	Kind Kind
	// StatusCode is the HTTP status code (0 for network-level errors).
	StatusCode int
	// Message is the error message extracted from the response body.
	Message string
	// RequestID is the server-assigned request ID when present.
	RequestID string
	// FieldErrors maps field names to validation messages (422 only).
	FieldErrors map[string][]string
	// Details carries additional error context from the body.
	Details map[string]any
	// Retryable indicates whether the request may be retried.
	Retryable bool
	// Body is the raw error response body (may be nil).
	Body []byte
	// Err is the underlying error for network failures.
	Err error

	retryAfter time.Duration
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("jewelmusic: %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("jewelmusic: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// RetryAfter returns the server-requested backoff for rate-limited
// requests, or zero. Implements the resilience backoff hint.
func (e *Error) RetryAfter() time.Duration {
	return e.retryAfter
}

// NewNetworkError creates a network error from a transport failure.
func NewNetworkError(err error) *Error {
	return &Error{
		Kind:      KindNetwork,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// errorBody is the wire shape of an error response. The API wraps errors
// in the envelope, but bare shapes occur too, so every field is optional.
type errorBody struct {
	Message    string              `json:"message"`
	Error      json.RawMessage     `json:"error"`
	Errors     map[string][]string `json:"errors"`
	RetryAfter *float64            `json:"retryAfter"`
	Meta       struct {
		RequestID string `json:"requestId"`
	} `json:"meta"`
}

type errorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// ClassifyResponse converts a non-2xx response into a typed error.
// Returns nil for 2xx status codes.
func ClassifyResponse(statusCode int, body []byte, headers http.Header) *Error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	e := &Error{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
	parseErrorBody(e, body)

	switch {
	case statusCode == http.StatusUnauthorized:
		e.Kind = KindAuthentication
	case statusCode == http.StatusForbidden:
		e.Kind = KindAuthorization
	case statusCode == http.StatusNotFound:
		e.Kind = KindNotFound
	case statusCode == http.StatusTooManyRequests:
		e.Kind = KindRateLimit
		e.Retryable = true
		if e.retryAfter == 0 {
			e.retryAfter = retryAfterFromHeader(headers)
		}
	case statusCode == http.StatusBadRequest || statusCode == http.StatusUnprocessableEntity:
		e.Kind = KindValidation
	case statusCode >= 500:
		e.Kind = KindServer
		e.Retryable = true
	default:
		e.Kind = KindUnknown
	}
	return e
}

// parseErrorBody fills message, request ID, field errors, and retry-after
// from the error body. Unparseable bodies leave the defaults in place.
func parseErrorBody(e *Error, body []byte) {
	if len(body) == 0 {
		return
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		e.Message = string(body)
		return
	}

	if parsed.Message != "" {
		e.Message = parsed.Message
	}
	if len(parsed.Error) > 0 {
		// "error" is either a bare string or a {code,message,details} object.
		var s string
		if json.Unmarshal(parsed.Error, &s) == nil {
			if s != "" {
				e.Message = s
			}
		} else {
			var detail errorDetail
			if json.Unmarshal(parsed.Error, &detail) == nil {
				if detail.Message != "" {
					e.Message = detail.Message
				}
				e.Details = detail.Details
			}
		}
	}
	if len(parsed.Errors) > 0 {
		e.FieldErrors = parsed.Errors
	}
	if parsed.RetryAfter != nil && *parsed.RetryAfter > 0 {
		e.retryAfter = time.Duration(*parsed.RetryAfter * float64(time.Second))
	}
	e.RequestID = parsed.Meta.RequestID
}

// retryAfterFromHeader parses a seconds-valued Retry-After header.
func retryAfterFromHeader(headers http.Header) time.Duration {
	if headers == nil {
		return 0
	}
	v := headers.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}

func isKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// IsAuthentication checks if an error is an authentication error.
func IsAuthentication(err error) bool { return isKind(err, KindAuthentication) }

// IsAuthorization checks if an error is an authorization error.
func IsAuthorization(err error) bool { return isKind(err, KindAuthorization) }

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool { return isKind(err, KindValidation) }

// IsRateLimit checks if an error is a rate-limit error.
func IsRateLimit(err error) bool { return isKind(err, KindRateLimit) }

// IsServer checks if an error is a server error.
func IsServer(err error) bool { return isKind(err, KindServer) }

// IsNetwork checks if an error is a network error.
func IsNetwork(err error) bool { return isKind(err, KindNetwork) }

// IsRetryable checks if an error may be retried.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}
