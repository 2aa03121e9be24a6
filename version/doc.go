// Package version exposes the SDK version and the User-Agent string sent
// with every API request.
package version
