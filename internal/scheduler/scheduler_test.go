package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestAddInvalidSpec(t *testing.T) {
	s := New()

	err := s.Add("not a cron spec", "bad", func(ctx context.Context) error { return nil })
	if err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
}

func TestAddValidSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "weekly", spec: "0 7 * * 1"},
		{name: "daily", spec: "30 6 * * *"},
		{name: "interval", spec: "@every 1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			if err := s.Add(tt.spec, tt.name, func(ctx context.Context) error { return nil }); err != nil {
				t.Fatalf("Add(%q) error: %v", tt.spec, err)
			}
			if len(s.Entries()) != 1 {
				t.Errorf("Entries() = %d, want 1", len(s.Entries()))
			}
		})
	}
}

func TestWrapRunsJob(t *testing.T) {
	s := New()

	var runs atomic.Int32
	run := s.wrap("counter", func(ctx context.Context) error {
		if ctx == nil {
			t.Error("job received nil context")
		}
		runs.Add(1)
		return nil
	})

	run()
	run()

	if runs.Load() != 2 {
		t.Errorf("job ran %d times, want 2", runs.Load())
	}
}

func TestWrapKeepsRunningAfterFailure(t *testing.T) {
	s := New()

	var runs atomic.Int32
	run := s.wrap("flaky", func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("transient failure")
	})

	run()
	run()

	if runs.Load() != 2 {
		t.Errorf("failing job should keep running, got %d runs", runs.Load())
	}
}

func TestWrapUsesSchedulerContext(t *testing.T) {
	s := New()

	type ctxKey struct{}
	s.ctx = context.WithValue(context.Background(), ctxKey{}, "marker")

	run := s.wrap("ctx", func(ctx context.Context) error {
		if ctx.Value(ctxKey{}) != "marker" {
			t.Error("job did not receive the scheduler context")
		}
		return nil
	})
	run()
}

func TestRunStopsOnCancel(t *testing.T) {
	s := New()
	if err := s.Add("@every 1h", "noop", func(ctx context.Context) error { return nil }); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
