// Package health tracks whether the dependencies of the service are
// reachable and mirrors the result into the gRPC health server.
package health

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alexliesenfeld/health"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/gourmet-server/internal/logger"
)

const checkTimeout = 3 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Check is a named dependency check.
type Check struct {
	Name  string
	Check func(ctx context.Context) error
}

// PingCheck wraps a database style pinger.
func PingCheck(name string, p Pinger) Check {
	return Check{Name: name, Check: p.PingContext}
}

// Checker runs its checks in the background every interval. Results are
// cached between runs, so Err never blocks on a dependency.
type Checker struct {
	checker health.Checker
	grpc    *grpchealth.Server
}

// NewChecker builds a stopped checker. hs may be nil; otherwise its overall
// status follows the aggregated result and starts as NOT_SERVING.
func NewChecker(hs *grpchealth.Server, interval time.Duration, log *logger.Logger, checks ...Check) *Checker {
	opts := []health.CheckerOption{health.WithDisabledAutostart()}
	for _, c := range checks {
		opts = append(opts, health.WithPeriodicCheck(interval, 0, health.Check{
			Name:    c.Name,
			Timeout: checkTimeout,
			Check:   c.Check,
		}))
	}
	opts = append(opts, health.WithStatusListener(func(ctx context.Context, state health.CheckerState) {
		status := healthpb.HealthCheckResponse_NOT_SERVING
		if state.Status == health.StatusUp {
			status = healthpb.HealthCheckResponse_SERVING
		} else {
			log.Warn("readiness changed", "status", string(state.Status))
		}
		if hs != nil {
			hs.SetServingStatus("", status)
		}
	}))

	if hs != nil {
		hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	}
	return &Checker{checker: health.NewChecker(opts...), grpc: hs}
}

// Err reports the latest failures as one error, sorted by check name.
// Checks that have not completed yet count as failures.
func (c *Checker) Err(ctx context.Context) error {
	res := c.checker.Check(ctx)
	if res.Status == health.StatusUp {
		return nil
	}

	names := make([]string, 0, len(res.Details))
	for name, d := range res.Details {
		if d.Error != nil {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("dependencies %s", res.Status)
	}
	sort.Strings(names)

	errs := make([]error, 0, len(names))
	for _, name := range names {
		errs = append(errs, fmt.Errorf("%s: %w", name, res.Details[name].Error))
	}
	return errors.Join(errs...)
}

// Run starts the periodic checks and stops them once ctx is done. The gRPC
// health server is shut down on return.
func (c *Checker) Run(ctx context.Context) {
	c.checker.Start()
	<-ctx.Done()
	c.checker.Stop()
	if c.grpc != nil {
		c.grpc.Shutdown()
	}
}
