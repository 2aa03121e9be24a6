package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignatureHeader is the HTTP header carrying the webhook signature.
const SignatureHeader = "X-JewelMusic-Signature"

// DefaultTolerance is the maximum accepted age of a signed payload.
const DefaultTolerance = 5 * time.Minute

var (
	// ErrInvalidSignature means the signature does not match the payload.
	ErrInvalidSignature = errors.New("webhook: signature mismatch")
	// ErrMalformedHeader means the signature header could not be parsed.
	ErrMalformedHeader = errors.New("webhook: malformed signature header")
	// ErrTimestampOutOfTolerance means the signed timestamp is too old or
	// too far in the future.
	ErrTimestampOutOfTolerance = errors.New("webhook: timestamp outside tolerance")
	// ErrMissingSecret means no endpoint secret was provided.
	ErrMissingSecret = errors.New("webhook: secret is required")
)

// Sign computes a signature header value for a payload. The optional
// timestamp defaults to now; passing one makes signatures reproducible
// in tests.
func Sign(payload []byte, secret string, at ...time.Time) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}
	ts := time.Now()
	if len(at) > 0 {
		ts = at[0]
	}
	unix := ts.Unix()
	return fmt.Sprintf("t=%d,v1=%s", unix, computeSignature(payload, secret, unix)), nil
}

// Verify checks a signature header against the payload using the
// default tolerance.
func Verify(payload []byte, header, secret string) error {
	return VerifyWithTolerance(payload, header, secret, DefaultTolerance)
}

// VerifyWithTolerance checks a signature header against the payload,
// rejecting timestamps older (or newer) than the given tolerance. A
// non-positive tolerance disables the timestamp check. Any parse
// failure is treated as an invalid signature; verification never
// succeeds on malformed input.
func VerifyWithTolerance(payload []byte, header, secret string, tolerance time.Duration) error {
	if secret == "" {
		return ErrMissingSecret
	}

	ts, sigs, err := parseHeader(header)
	if err != nil {
		return err
	}

	if tolerance > 0 {
		age := time.Since(time.Unix(ts, 0))
		if age > tolerance || age < -tolerance {
			return ErrTimestampOutOfTolerance
		}
	}

	expected := computeSignature(payload, secret, ts)
	for _, sig := range sigs {
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}
	return ErrInvalidSignature
}

// computeSignature returns the hex HMAC-SHA256 of "<ts>.<payload>".
func computeSignature(payload []byte, secret string, ts int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// parseHeader extracts the timestamp and v1 signatures from a header of
// the form "t=<unix>,v1=<hex>[,v1=<hex>...]".
func parseHeader(header string) (int64, []string, error) {
	if header == "" {
		return 0, nil, ErrMalformedHeader
	}

	var ts int64
	var haveTS bool
	var sigs []string

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return 0, nil, ErrMalformedHeader
		}
		switch key {
		case "t":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, ErrMalformedHeader
			}
			ts = parsed
			haveTS = true
		case "v1":
			if value == "" {
				return 0, nil, ErrMalformedHeader
			}
			sigs = append(sigs, value)
		}
	}

	if !haveTS || len(sigs) == 0 {
		return 0, nil, ErrMalformedHeader
	}
	return ts, sigs, nil
}
