// Package scheduler runs the recurring-transaction materializer on a cron
// schedule. It owns nothing beyond the trigger; the work happens in the
// recurring service.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DailyAtMidnight fires once per day at 00:00 server time.
const DailyAtMidnight = "0 0 * * *"

// DueProcessor is the recurring service surface the scheduler drives.
type DueProcessor interface {
	ProcessDue(ctx context.Context)
}

// Scheduler triggers recurring-transaction processing on a fixed schedule.
type Scheduler struct {
	cron      *cron.Cron
	recurring DueProcessor
	log       *logrus.Logger
}

func NewScheduler(recurring DueProcessor, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		recurring: recurring,
		log:       log,
	}
}

// Start registers the daily job and starts the cron loop. Returns an error
// only when the cron expression does not parse.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		spec = DailyAtMidnight
	}
	_, err := s.cron.AddFunc(spec, func() {
		s.log.Info("Scheduler.ProcessDueRecurringTransactions.Start")
		s.recurring.ProcessDue(context.Background())
		s.log.Info("Scheduler.ProcessDueRecurringTransactions.Complete")
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
