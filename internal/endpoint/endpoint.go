package endpoint

import (
	"net/url"
)

// Endpoint is a named candidate base URL for the backend service.
type Endpoint struct {
	name string
	url  *url.URL
}

// New creates a new Endpoint with the given name and URL.
func New(name string, url *url.URL) *Endpoint {
	return &Endpoint{
		name: name,
		url:  url,
	}
}

// Name returns the logical name of the endpoint.
func (e *Endpoint) Name() string {
	return e.name
}

// URL returns the endpoint base URL.
func (e *Endpoint) URL() *url.URL {
	return e.url
}
