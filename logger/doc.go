// Package logger wraps zerolog with the structured-logging conventions
// used across the SDK: level/format/output configuration, component
// tagging, and field helpers. The transport logs request lifecycle events
// through it; applications may pass their own instance or rely on the
// silent default.
package logger
