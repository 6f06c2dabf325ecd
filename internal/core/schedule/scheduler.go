package schedule

import (
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"
)

// Scheduler runs recurring background jobs on cron expressions.
type Scheduler struct {
	cron    *cron.Cron
	jobs    map[string]cron.EntryID
	jobsMux sync.RWMutex
}

// NewScheduler creates a new scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		jobs: make(map[string]cron.EntryID),
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	log.Println("⏰ Starting scheduler...")
	s.cron.Start()
	log.Println("✅ Scheduler started")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	log.Println("⏰ Stopping scheduler...")
	s.cron.Stop()
	log.Println("✅ Scheduler stopped")
}

// AddJob registers a named job with a standard 5-field cron expression
// (e.g. "0 6 * * *" for daily at 06:00). Re-registering a name replaces the
// previous schedule.
func (s *Scheduler) AddJob(name string, schedule string, job func()) error {
	s.jobsMux.Lock()
	defer s.jobsMux.Unlock()

	if entryID, exists := s.jobs[name]; exists {
		s.cron.Remove(entryID)
		delete(s.jobs, name)
	}

	entryID, err := s.cron.AddFunc(schedule, job)
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.jobs[name] = entryID
	log.Printf("   ✅ Scheduled job %s: %s", name, schedule)
	return nil
}
