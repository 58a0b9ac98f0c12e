package probe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"

	"github.com/htx-audio/backend-probe/internal/endpoint"
)

// maxBodyLog bounds how much response text is logged per endpoint.
const maxBodyLog = 200

// Prober issues one GET request per endpoint and classifies the outcome.
type Prober struct {
	client *http.Client
	logger *slog.Logger
}

// New creates a Prober whose requests time out after the given duration.
func New(timeout time.Duration, logger *slog.Logger) *Prober {
	return &Prober{
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Probe tests every endpoint sequentially and returns one Result per
// endpoint, keyed by name. Failures are recorded in the results, never
// returned as errors, so a bad endpoint cannot stop the round.
func (p *Prober) Probe(ctx context.Context, endpoints []*endpoint.Endpoint) map[string]Result {
	results := make(map[string]Result, len(endpoints))

	for _, ep := range endpoints {
		results[ep.Name()] = p.probeOne(ctx, ep)
	}

	return results
}

func (p *Prober) probeOne(ctx context.Context, ep *endpoint.Endpoint) Result {
	p.logger.Info("Testing connection",
		slog.String("name", ep.Name()),
		slog.String("url", ep.URL().String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.URL().String(), nil)
	if err != nil {
		return Result{Endpoint: ep, Outcome: Unexpected, Err: err.Error()}
	}

	start := time.Now()
	res, err := p.client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		return p.classifyRequestError(ep, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		p.logger.Warn("Failed to read response body",
			slog.String("name", ep.Name()),
			slog.String("error", err.Error()))
		return Result{Endpoint: ep, Outcome: Unexpected, Code: res.StatusCode, Err: err.Error()}
	}

	p.logger.Info("Received response",
		slog.String("name", ep.Name()),
		slog.Int("status_code", res.StatusCode),
		slog.Duration("elapsed", elapsed))

	if res.StatusCode != http.StatusOK {
		p.logger.Warn("Unexpected status code",
			slog.String("name", ep.Name()),
			slog.Int("status_code", res.StatusCode),
			slog.String("body", truncate(string(body), maxBodyLog)))
		return Result{
			Endpoint: ep,
			Outcome:  HTTPError,
			Code:     res.StatusCode,
			Elapsed:  elapsed,
			Body:     string(body),
			Err:      "received status code " + res.Status,
		}
	}

	var decoded any
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		// A 200 with a non-JSON body still proves the endpoint is
		// reachable, so the probe counts as a success.
		p.logger.Warn("Received non-JSON response",
			slog.String("name", ep.Name()),
			slog.String("body", truncate(string(body), maxBodyLog)))
		return Result{
			Endpoint: ep,
			Outcome:  Success,
			Code:     res.StatusCode,
			Elapsed:  elapsed,
			Body:     string(body),
			Warning:  "Not a valid JSON response",
		}
	}

	return Result{
		Endpoint: ep,
		Outcome:  Success,
		Code:     res.StatusCode,
		Elapsed:  elapsed,
		JSON:     decoded,
	}
}

func (p *Prober) classifyRequestError(ep *endpoint.Endpoint, err error) Result {
	var urlErr *url.Error
	var opErr *net.OpError

	switch {
	case errors.As(err, &urlErr) && urlErr.Timeout(),
		errors.Is(err, context.DeadlineExceeded):
		p.logger.Warn("Request timed out", slog.String("name", ep.Name()))
		return Result{Endpoint: ep, Outcome: Timeout, Err: "Request timed out"}

	case errors.As(err, &opErr):
		p.logger.Warn("Connection failed", slog.String("name", ep.Name()))
		return Result{Endpoint: ep, Outcome: ConnectionFailure, Err: "Connection failed"}

	default:
		p.logger.Warn("Request failed",
			slog.String("name", ep.Name()),
			slog.String("error", err.Error()))
		return Result{Endpoint: ep, Outcome: Unexpected, Err: err.Error()}
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
