// Package scheduler runs report jobs on a cron expression.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is a unit of scheduled work. A failing run is logged and does not
// affect later runs.
type Job func(ctx context.Context) error

// Scheduler wraps a cron runner with logging around each job
type Scheduler struct {
	cron *cron.Cron
	ctx  context.Context
}

func New() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
	}
}

// Add registers a job under a standard 5-field cron expression.
func (s *Scheduler) Add(spec, name string, job Job) error {
	_, err := s.cron.AddFunc(spec, s.wrap(name, job))
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}
	return nil
}

// wrap surrounds a job with run logging. A failing run is logged and leaves
// the schedule intact.
func (s *Scheduler) wrap(name string, job Job) func() {
	return func() {
		start := time.Now()
		log.Printf("scheduler: %s: run started", name)

		ctx := s.ctx
		if ctx == nil {
			ctx = context.Background()
		}

		if err := job(ctx); err != nil {
			log.Printf("scheduler: %s: run failed after %v: %v", name, time.Since(start), err)
			return
		}
		log.Printf("scheduler: %s: run completed in %v", name, time.Since(start))
	}
}

// Run starts the cron loop and blocks until ctx is cancelled, then waits for
// any in-flight job to finish.
func (s *Scheduler) Run(ctx context.Context) {
	s.ctx = ctx
	s.cron.Start()
	log.Printf("scheduler: started with %d entries", len(s.cron.Entries()))

	<-ctx.Done()

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	log.Printf("scheduler: stopped")
}

// Entries returns the next scheduled times, for status output.
func (s *Scheduler) Entries() []time.Time {
	entries := s.cron.Entries()
	next := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		next = append(next, e.Next)
	}
	return next
}
