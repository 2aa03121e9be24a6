// Package observability wires OpenTelemetry tracing for applications that
// want spans around SDK requests. The transport records a span per API
// call when the client is configured with a tracer; this package provides
// the OTLP/HTTP provider setup and small span helpers. Without it the SDK
// emits nothing.
package observability
