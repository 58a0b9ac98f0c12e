// Package endpoint defines the candidate backend endpoints that the
// probe runner tests. An endpoint pairs a logical name with its base URL.
package endpoint
