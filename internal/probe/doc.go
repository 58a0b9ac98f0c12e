// Package probe implements the liveness probe for candidate backend
// endpoints. Each endpoint gets one timed HTTP GET whose outcome is
// classified into a tagged Result; network failures are data, not errors.
package probe
