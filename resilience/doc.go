// Package resilience provides the retry and rate-limiting primitives used
// by the SDK transport.
//
// Retry executes a function until it succeeds, the error is classified as
// non-retryable, or the attempt budget is exhausted. The backoff schedule
// is pluggable; the SDK default is the platform's published linear schedule
// (attempt+1 seconds, capped at 5s). Errors that carry their own backoff
// hint (a RetryAfter() time.Duration method) override the schedule.
//
// RateLimiter is a token-bucket limiter for callers that want to pace
// outbound requests client-side.
package resilience
