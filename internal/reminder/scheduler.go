package reminder

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Scheduler drives the engine on a fixed cadence for deployments without an
// external scheduler. Runs are not mutually excluded: if a run outlasts the
// interval the next firing proceeds anyway, same as the hosted setup.
type Scheduler struct {
	engine   *Engine
	interval time.Duration
	stopChan chan struct{}
	log      *logrus.Entry
}

// NewScheduler creates a scheduler around the engine
func NewScheduler(engine *Engine, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Scheduler{
		engine:   engine,
		interval: interval,
		stopChan: make(chan struct{}),
		log:      logrus.WithField("component", "reminder-scheduler"),
	}
}

// Start begins the scheduler loop
func (s *Scheduler) Start() {
	s.log.WithField("interval", s.interval.String()).Info("starting reminder scheduler")

	go func() {
		// Run immediately on start
		s.runOnce()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.runOnce()
			case <-s.stopChan:
				s.log.Info("reminder scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	close(s.stopChan)
}

func (s *Scheduler) runOnce() {
	if err := s.engine.Run(context.Background()); err != nil {
		s.log.WithError(err).Error("reminder run failed")
	}
}
