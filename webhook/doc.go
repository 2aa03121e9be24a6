// Package webhook verifies and parses JewelMusic webhook deliveries.
//
// Every webhook request carries an X-JewelMusic-Signature header of the
// form "t=<unix-ts>,v1=<hex hmac-sha256>". Verify checks the signature
// against the shared endpoint secret and rejects stale timestamps before
// the payload is trusted.
package webhook
