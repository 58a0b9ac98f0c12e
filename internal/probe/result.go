package probe

import (
	"time"

	"github.com/htx-audio/backend-probe/internal/endpoint"
)

// Outcome classifies what happened during a single probe.
type Outcome int

const (
	Success Outcome = iota
	ConnectionFailure
	Timeout
	HTTPError
	Unexpected
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case ConnectionFailure:
		return "Connection failure"
	case Timeout:
		return "Timeout"
	case HTTPError:
		return "HTTP error"
	case Unexpected:
		return "Unexpected error"
	default:
		return "Unknown"
	}
}

// Result is the outcome of probing one endpoint. Exactly one Result is
// produced per probed endpoint, whether the probe succeeded or not.
type Result struct {
	Endpoint *endpoint.Endpoint
	Outcome  Outcome

	// Code is the HTTP status code, 0 when no response arrived.
	Code int
	// Elapsed is the request round-trip time, 0 when no response arrived.
	Elapsed time.Duration
	// JSON holds the decoded response body when the endpoint returned
	// valid JSON with status 200.
	JSON any
	// Body holds the raw response body text for non-200 responses.
	Body string
	// Warning is set when a 200 response carried a non-JSON body, which
	// still counts as a successful connection.
	Warning string
	// Err is the failure message for non-Success outcomes.
	Err string
}

// Succeeded reports whether the endpoint answered with HTTP 200.
func (r Result) Succeeded() bool {
	return r.Outcome == Success
}
