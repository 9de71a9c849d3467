// Package scheduler runs posting jobs on cron strings and the daily maintenance.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/umputun/astrolabe/pkg/config"
	"github.com/umputun/astrolabe/pkg/metrics"
	"github.com/umputun/astrolabe/pkg/misskey"
	"github.com/umputun/astrolabe/pkg/reconcile"
	"github.com/umputun/astrolabe/pkg/retry"
)

//go:generate moq -out mocks/job_runner.go -pkg mocks -skip-ensure -fmt goimports . JobRunner
//go:generate moq -out mocks/gate.go -pkg mocks -skip-ensure -fmt goimports . Gate
//go:generate moq -out mocks/reconciler.go -pkg mocks -skip-ensure -fmt goimports . Reconciler
//go:generate moq -out mocks/observations.go -pkg mocks -skip-ensure -fmt goimports . Observations
//go:generate moq -out mocks/audit_log.go -pkg mocks -skip-ensure -fmt goimports . AuditLog
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// JobRunner executes a configured posting job
type JobRunner interface {
	Run(ctx context.Context, job config.JobConfig) error
}

// Gate is a heat counter reset by maintenance
type Gate interface {
	Name() string
	Reset(ctx context.Context) error
}

// Reconciler converges the bot's following set to its followers
type Reconciler interface {
	ReconcileBulk(ctx context.Context, botID string) (reconcile.Result, error)
}

// Observations is the global timeline observation store
type Observations interface {
	Clear(ctx context.Context) (int64, error)
}

// AuditLog is the audit entries store
type AuditLog interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Notifier reports maintenance results
type Notifier interface {
	Info(ctx context.Context, source, message string)
	Failure(ctx context.Context, source string, err error)
}

// Params configures Scheduler
type Params struct {
	Jobs         JobRunner
	PostGate     Gate
	ChatGate     Gate
	Reconciler   Reconciler
	Observations Observations
	Audit        AuditLog
	Notifier     Notifier
	BotUserID    string
	Config       config.ScheduleConfig
	Location     *time.Location
	JobRetry     retry.Policy // retries job runs failing with misskey.ErrConnectionRefused
}

// Scheduler runs jobs and maintenance on cron strings. Jobs are independent, no cross-job exclusion.
type Scheduler struct {
	Params
	cron *cron.Cron

	mu      sync.Mutex
	entries map[string]cron.EntryID
	ctx     context.Context

	jitter func(max time.Duration) time.Duration
	wait   func(ctx context.Context, d time.Duration) error
	now    func() time.Time
}

// NewScheduler makes a scheduler, call Start to register jobs
func NewScheduler(p Params) *Scheduler {
	if p.Location == nil {
		p.Location = time.UTC
	}
	if p.Config.Maintenance == "" {
		p.Config.Maintenance = "0 3 * * *"
	}
	if p.Config.LogRetention == 0 {
		p.Config.LogRetention = 7 * 24 * time.Hour
	}
	if p.JobRetry.Attempts == 0 {
		p.JobRetry = retry.Policy{Attempts: 3, Delay: time.Minute}
	}
	p.JobRetry.Retryable = func(err error) bool { return errors.Is(err, misskey.ErrConnectionRefused) }

	return &Scheduler{
		Params:  p,
		cron:    newCron(p.Location),
		entries: map[string]cron.EntryID{},
		jitter:  randomJitter,
		wait:    sleepCtx,
		now:     time.Now,
	}
}

// Start registers every job and the maintenance and starts the cron loop
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	for _, job := range s.Config.Jobs {
		id, err := s.cron.AddFunc(job.Cron, func() { s.runScheduled(s.context(), job) })
		if err != nil {
			return fmt.Errorf("schedule job %s (%q): %w", job.Name, job.Cron, err)
		}
		s.entries[job.Name] = id
	}
	id, err := s.cron.AddFunc(s.Config.Maintenance, func() {
		if err := s.Maintenance(s.context()); err != nil {
			lgr.Printf("[WARN] maintenance finished with errors: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule maintenance (%q): %w", s.Config.Maintenance, err)
	}
	s.entries["maintenance"] = id

	s.cron.Start()
	lgr.Printf("[INFO] scheduler started with %d jobs, time zone %s", len(s.Config.Jobs), s.Location)
	return nil
}

// Stop stops the cron loop and waits for running jobs
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	<-s.cron.Stop().Done()
	lgr.Printf("[INFO] scheduler stopped")
}

// NextRuns returns the next run time of every registered entry by name
func (s *Scheduler) NextRuns() map[string]time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make(map[string]time.Time, len(s.entries))
	for name, id := range s.entries {
		res[name] = s.cron.Entry(id).Next
	}
	return res
}

func (s *Scheduler) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

// runScheduled waits the pre-post jitter and runs the job
func (s *Scheduler) runScheduled(ctx context.Context, job config.JobConfig) {
	if !job.NoJitter && s.Config.MaxJitter > 0 {
		delay := s.jitter(s.Config.MaxJitter)
		lgr.Printf("[DEBUG] job %s waits %v before posting", job.Name, delay)
		if err := s.wait(ctx, delay); err != nil {
			return
		}
	}
	if err := s.RunJob(ctx, job); err != nil {
		lgr.Printf("[WARN] job %s failed: %v", job.Name, err)
	}
}

// RunJob runs the job now, retrying while the server is unreachable
func (s *Scheduler) RunJob(ctx context.Context, job config.JobConfig) error {
	err := s.JobRetry.Do(ctx, func(ctx context.Context) error {
		return s.Jobs.Run(ctx, job)
	})
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.JobRuns.WithLabelValues(job.Name, result).Inc()
	return err
}

// Maintenance resets both heat counters, reconciles follows, truncates observations and expires audit entries.
// Every step runs even if an earlier one failed, the errors are joined.
func (s *Scheduler) Maintenance(ctx context.Context) error {
	lgr.Printf("[INFO] maintenance started")
	var errs []error
	step := func(name string, fn func() error) {
		if err := fn(); err != nil {
			s.Notifier.Failure(ctx, "maintenance."+name, err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	for _, g := range []Gate{s.PostGate, s.ChatGate} {
		if g == nil {
			continue
		}
		step("reset_"+g.Name(), func() error { return g.Reset(ctx) })
	}

	step("reconcile", func() error {
		_, err := s.Reconcile(ctx)
		return err
	})

	step("observations", func() error {
		n, err := s.Observations.Clear(ctx)
		if err != nil {
			return err
		}
		s.Notifier.Info(ctx, "maintenance", fmt.Sprintf("%d observations cleared", n))
		return nil
	})

	step("audit", func() error {
		n, err := s.Audit.DeleteOlderThan(ctx, s.now().Add(-s.Config.LogRetention))
		if err != nil {
			return err
		}
		lgr.Printf("[INFO] %d audit entries expired", n)
		return nil
	})

	result := "ok"
	if len(errs) > 0 {
		result = "error"
	}
	metrics.JobRuns.WithLabelValues("maintenance", result).Inc()
	lgr.Printf("[INFO] maintenance completed, %d errors", len(errs))
	return errors.Join(errs...)
}

// Reconcile runs a bulk follow reconciliation and reports the result
func (s *Scheduler) Reconcile(ctx context.Context) (reconcile.Result, error) {
	res, err := s.Reconciler.ReconcileBulk(ctx, s.BotUserID)
	if err != nil {
		return res, fmt.Errorf("reconcile follows: %w", err)
	}

	metrics.ReconcileChanges.WithLabelValues("follow", "ok").Add(float64(res.Followed))
	metrics.ReconcileChanges.WithLabelValues("unfollow", "ok").Add(float64(res.Unfollowed))
	for _, f := range res.Failed {
		metrics.ReconcileChanges.WithLabelValues(f.Op, "error").Inc()
	}

	s.Notifier.Info(ctx, "reconcile", fmt.Sprintf("followers %d, following %d, followed %d, unfollowed %d, failed %d",
		res.Followers, res.Following, res.Followed, res.Unfollowed, len(res.Failed)))
	return res, nil
}

func newCron(loc *time.Location) *cron.Cron {
	return cron.New(cron.WithLocation(loc))
}

func randomJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(max) + 1)) //nolint:gosec // not security related
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
