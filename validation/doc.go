// Package validation performs client-side validation of request
// parameters before they reach the wire. It wraps go-playground/validator
// struct-tag validation and exposes the resulting field errors in the
// same field -> messages shape the API uses for 422 responses, so callers
// handle both the same way.
package validation
