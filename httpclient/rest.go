package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// TypedResponse pairs a decoded value with the raw response it came from.
type TypedResponse[T any] struct {
	Data     T
	Response *Response
}

// RequestOption customizes a single request before it is sent.
type RequestOption func(*Request)

// WithHeader sets a header on the request.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithQueryParam sets a query parameter on the request. Empty values
// are dropped at send time.
func WithQueryParam(key, value string) RequestOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(map[string]string)
		}
		r.Query[key] = value
	}
}

// WithQuery merges a set of query parameters onto the request.
func WithQuery(params map[string]string) RequestOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(map[string]string, len(params))
		}
		for k, v := range params {
			r.Query[k] = v
		}
	}
}

// Get issues a GET request and decodes the response body into T.
func Get[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*TypedResponse[T], error) {
	return exchange[T](ctx, c, http.MethodGet, path, nil, opts...)
}

// Post issues a POST request with the given body and decodes the
// response body into T.
func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	return exchange[T](ctx, c, http.MethodPost, path, body, opts...)
}

// Put issues a PUT request with the given body and decodes the
// response body into T.
func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	return exchange[T](ctx, c, http.MethodPut, path, body, opts...)
}

// Patch issues a PATCH request with the given body and decodes the
// response body into T.
func Patch[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	return exchange[T](ctx, c, http.MethodPatch, path, body, opts...)
}

// Delete issues a DELETE request and decodes the response body into T.
func Delete[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*TypedResponse[T], error) {
	return exchange[T](ctx, c, http.MethodDelete, path, nil, opts...)
}

func exchange[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	req := Request{Method: method, Path: path, Body: body}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &TypedResponse[T]{Response: resp}
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &result.Data); err != nil {
			return nil, &Error{
				Kind:       KindUnknown,
				StatusCode: resp.StatusCode,
				Message:    fmt.Sprintf("decode response: %v", err),
				RequestID:  resp.RequestID,
				Body:       resp.Body,
				Err:        err,
			}
		}
	}
	return result, nil
}
