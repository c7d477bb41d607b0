package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/gourmet-server/internal/testutil"
)

func runChecker(t *testing.T, c *Checker) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()
	stopped := false
	stop = func() {
		if stopped {
			return
		}
		stopped = true
		cancel()
		<-done
	}
	t.Cleanup(stop)
	return stop
}

func grpcStatus(hs *grpchealth.Server) healthpb.HealthCheckResponse_ServingStatus {
	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN
	}
	return resp.GetStatus()
}

func TestChecker_DatabasePing(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		mock.ExpectPing()

		c := NewChecker(nil, time.Hour, testutil.MakeNoopLogger(), PingCheck("postgres", db))
		runChecker(t, c)

		assert.Eventually(t, func() bool {
			return c.Err(context.Background()) == nil
		}, time.Second, 5*time.Millisecond)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("down", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		c := NewChecker(nil, time.Hour, testutil.MakeNoopLogger(), PingCheck("postgres", db))
		runChecker(t, c)

		assert.Eventually(t, func() bool {
			err := c.Err(context.Background())
			return err != nil && err.Error() == "postgres: connection refused"
		}, time.Second, 5*time.Millisecond)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChecker_ErrJoinsFailuresByName(t *testing.T) {
	c := NewChecker(nil, time.Hour, testutil.MakeNoopLogger(),
		Check{Name: "storage", Check: func(context.Context) error { return nil }},
		Check{Name: "b", Check: func(context.Context) error { return errors.New("down") }},
		Check{Name: "a", Check: func(context.Context) error { return errors.New("slow") }},
	)
	runChecker(t, c)

	assert.Eventually(t, func() bool {
		err := c.Err(context.Background())
		return err != nil && err.Error() == "a: slow\nb: down"
	}, time.Second, 5*time.Millisecond)
}

func TestChecker_NotStartedIsNotReady(t *testing.T) {
	c := NewChecker(nil, time.Hour, testutil.MakeNoopLogger(),
		Check{Name: "dep", Check: func(context.Context) error { return nil }},
	)
	assert.Error(t, c.Err(context.Background()))
}

func TestChecker_CheckHasDeadline(t *testing.T) {
	var sawDeadline atomic.Bool
	c := NewChecker(nil, time.Hour, testutil.MakeNoopLogger(),
		Check{Name: "slow", Check: func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			sawDeadline.Store(ok)
			return nil
		}},
	)
	runChecker(t, c)

	assert.Eventually(t, func() bool {
		return c.Err(context.Background()) == nil
	}, time.Second, 5*time.Millisecond)
	assert.True(t, sawDeadline.Load())
}

func TestChecker_DrivesGRPCHealth(t *testing.T) {
	hs := grpchealth.NewServer()
	var healthy atomic.Bool

	c := NewChecker(hs, 10*time.Millisecond, testutil.MakeNoopLogger(),
		Check{Name: "dep", Check: func(context.Context) error {
			if !healthy.Load() {
				return errors.New("down")
			}
			return nil
		}},
	)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, grpcStatus(hs))

	stop := runChecker(t, c)

	assert.Eventually(t, func() bool {
		return c.Err(context.Background()) != nil
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, grpcStatus(hs))

	healthy.Store(true)
	assert.Eventually(t, func() bool {
		return grpcStatus(hs) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	stop()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, grpcStatus(hs))
}
