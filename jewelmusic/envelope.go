package jewelmusic

import (
	"context"
	"encoding/json"

	"github.com/jewelmusic/jewelmusic-go/httpclient"
)

// Meta is the response metadata delivered alongside envelope payloads.
type Meta struct {
	RequestID  string      `json:"requestId,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// envelope is the platform's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    *Meta           `json:"meta"`
}

// decodeEnvelope unwraps a 2xx response body into T. Enveloped bodies
// yield their data field; bare JSON bodies decode directly. A non-JSON
// body is returned as-is when T is a string or byte slice, and is never
// an error on its own for other types.
func decodeEnvelope[T any](resp *httpclient.Response) (T, *Meta, error) {
	var zero T
	if len(resp.Body) == 0 {
		return zero, nil, nil
	}

	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err == nil && len(env.Data) > 0 {
		var data T
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return zero, env.Meta, decodeError(resp, err)
		}
		return data, env.Meta, nil
	}

	// Bare payload without the envelope.
	var data T
	if err := json.Unmarshal(resp.Body, &data); err == nil {
		return data, nil, nil
	}

	// Raw fallback for non-JSON bodies (exports, plain-text responses).
	switch out := any(&zero).(type) {
	case *string:
		*out = string(resp.Body)
		return zero, nil, nil
	case *[]byte:
		*out = resp.Body
		return zero, nil, nil
	}
	return zero, nil, decodeError(resp, json.Unmarshal(resp.Body, &data))
}

func decodeError(resp *httpclient.Response, err error) error {
	return &httpclient.Error{
		Kind:       httpclient.KindUnknown,
		StatusCode: resp.StatusCode,
		Message:    "decode response: " + err.Error(),
		RequestID:  resp.RequestID,
		Body:       resp.Body,
		Err:        err,
	}
}

// do issues a request through the shared transport and unwraps the
// envelope into T. Non-JSON 2xx bodies degrade to raw text only when T
// is string or []byte; for any other T an undecodable body is an error,
// since a typed result cannot carry arbitrary text.
func do[T any](ctx context.Context, c *Client, method, path string, query map[string]string, body any) (T, error) {
	data, _, err := doMeta[T](ctx, c, method, path, query, body)
	return data, err
}

// doMeta is do with the response metadata surfaced.
func doMeta[T any](ctx context.Context, c *Client, method, path string, query map[string]string, body any) (T, *Meta, error) {
	var zero T
	resp, err := c.transport.Do(ctx, httpclient.Request{
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
	})
	if err != nil {
		return zero, nil, err
	}
	return decodeEnvelope[T](resp)
}

// doPage issues a list request and unwraps an items page.
func doPage[T any](ctx context.Context, c *Client, path string, query map[string]string) (*Page[T], error) {
	page, err := do[Page[T]](ctx, c, "GET", path, query, nil)
	if err != nil {
		return nil, err
	}
	return &page, nil
}
