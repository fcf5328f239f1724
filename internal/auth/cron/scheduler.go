package cronjob

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSweepSpec runs the sweep every five minutes.
const DefaultSweepSpec = "0 */5 * * * *"

// Sweepable is a session store that can drop expired sessions.
type Sweepable interface {
	Sweep() int
}

type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

func NewScheduler(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{cron: cron.New(cron.WithSeconds()), log: log}
}

// ScheduleSweep registers a periodic sweep of sessions on spec.
func (s *Scheduler) ScheduleSweep(spec string, sessions Sweepable) error {
	_, err := s.cron.AddFunc(spec, func() {
		if n := sessions.Sweep(); n > 0 {
			s.log.Info("expired sessions swept", zap.Int("removed", n))
		}
	})
	if err != nil {
		s.log.Error("failed to create cron job", zap.String("spec", spec), zap.Error(err))
		return err
	}
	return nil
}

// Start runs the scheduler in the background.
func (s *Scheduler) Start() {
	s.log.Info("cron scheduler started", zap.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
