package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// SweepFunc is one periodic sweep, invoked with the wall-clock time of the
// run.
type SweepFunc func(now time.Time) error

type namedJob struct {
	name     string
	interval time.Duration
	fn       SweepFunc
}

// Scheduler owns the registry of named periodic sweeps. Each job runs in
// isolation: a panic or error in one sweep never touches the others.
type Scheduler struct {
	sched gocron.Scheduler
	jobs  []namedJob
}

// NewScheduler builds an empty scheduler.
func NewScheduler() (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &Scheduler{sched: sched}, nil
}

// Register adds a named sweep with its polling interval.
func (s *Scheduler) Register(name string, interval time.Duration, fn SweepFunc) {
	s.jobs = append(s.jobs, namedJob{name: name, interval: interval, fn: fn})
}

// Start schedules every registered job and begins polling.
func (s *Scheduler) Start() error {
	for _, job := range s.jobs {
		job := job
		_, err := s.sched.NewJob(
			gocron.DurationJob(job.interval),
			gocron.NewTask(func() {
				runSweep(job.name, job.fn, time.Now())
			}),
		)
		if err != nil {
			return err
		}
		log.Printf("Scheduler: registered job %q every %s", job.name, job.interval)
	}
	s.sched.Start()
	return nil
}

// Stop shuts the scheduler down, letting running jobs finish.
func (s *Scheduler) Stop() {
	if err := s.sched.Shutdown(); err != nil {
		log.Printf("Scheduler: shutdown error: %v", err)
	}
}

// RunAllOnce executes every registered sweep immediately with the given
// clock. Used by the sweep CLI and by tests.
func (s *Scheduler) RunAllOnce(now time.Time) {
	for _, job := range s.jobs {
		runSweep(job.name, job.fn, now)
	}
}

func runSweep(name string, fn SweepFunc, now time.Time) {
	runID := uuid.NewString()[:8]
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[sweep %s/%s] panic: %v", name, runID, r)
		}
	}()

	start := time.Now()
	if err := fn(now); err != nil {
		log.Printf("[sweep %s/%s] error: %v", name, runID, err)
		return
	}
	log.Printf("[sweep %s/%s] done in %s", name, runID, time.Since(start).Round(time.Millisecond))
}
