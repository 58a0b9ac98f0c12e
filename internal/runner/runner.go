package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/htx-audio/backend-probe/internal/endpoint"
	"github.com/htx-audio/backend-probe/internal/envfile"
	"github.com/htx-audio/backend-probe/internal/probe"
	"github.com/htx-audio/backend-probe/internal/selection"
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	// Succeeded means a working connection was found and persisted.
	Succeeded Outcome = iota
	// Failed means every attempt exhausted without a working connection.
	Failed
)

// Settings carries the fixed parameters of the retry loop.
type Settings struct {
	Priority    []string
	PersistKey  string
	PersistFile string
	MaxAttempts int
	RetryDelay  time.Duration
}

// Runner drives the attempt loop: probe all endpoints, pick a winner,
// persist it, or sleep and retry until the attempt budget runs out.
type Runner struct {
	logger    *slog.Logger
	prober    *probe.Prober
	endpoints []*endpoint.Endpoint
	settings  Settings
	out       io.Writer
}

func New(logger *slog.Logger, prober *probe.Prober, endpoints []*endpoint.Endpoint, settings Settings, out io.Writer) *Runner {
	return &Runner{
		logger:    logger,
		prober:    prober,
		endpoints: endpoints,
		settings:  settings,
		out:       out,
	}
}

// Run executes up to MaxAttempts probing rounds separated by RetryDelay.
// The first round with at least one successful endpoint terminates the
// run: the winner is persisted and Succeeded is returned. A cancelled
// context or an exhausted attempt budget returns Failed.
func (r *Runner) Run(ctx context.Context) Outcome {
	for attempt := 1; attempt <= r.settings.MaxAttempts; attempt++ {
		fmt.Fprintf(r.out, "\nAttempt %d/%d to connect to backend server\n",
			attempt, r.settings.MaxAttempts)

		results := r.prober.Probe(ctx, r.endpoints)
		r.printSummary(results)

		if name, ok := selection.Select(results, r.settings.Priority); ok {
			r.persistWinner(name, results[name])
			return Succeeded
		}

		if attempt == r.settings.MaxAttempts {
			break
		}

		r.logger.Info("No working connections found, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("delay", r.settings.RetryDelay))

		select {
		case <-ctx.Done():
			r.logger.Warn("Run cancelled", slog.String("reason", ctx.Err().Error()))
			return Failed
		case <-time.After(r.settings.RetryDelay):
		}
	}

	r.logger.Error("All connection attempts failed; check that the backend service is running and accessible")
	return Failed
}

func (r *Runner) persistWinner(name string, result probe.Result) {
	winningURL := result.Endpoint.URL().String()

	fmt.Fprintf(r.out, "\nBest connection: %s (%s)\n", name, winningURL)

	if err := envfile.Persist(r.settings.PersistKey, winningURL, r.settings.PersistFile); err != nil {
		// The in-process assignment already happened, so the run still
		// counts as a success.
		r.logger.Warn("Could not write env file",
			slog.String("file", r.settings.PersistFile),
			slog.String("error", err.Error()))
		return
	}

	r.logger.Info("Persisted winning connection",
		slog.String("key", r.settings.PersistKey),
		slog.String("value", winningURL),
		slog.String("file", r.settings.PersistFile))
}
