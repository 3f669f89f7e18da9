// Package scheduler ticks over upcoming events and sends the start
// call-up exactly once per event.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AVick23/ML-Manager/internal/config"
	"github.com/AVick23/ML-Manager/internal/domain"
	"github.com/AVick23/ML-Manager/internal/notify"
	"github.com/AVick23/ML-Manager/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var (
	ticksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_ticks_total",
		Help: "Completed scheduler ticks.",
	})
	callupsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_callups_sent_total",
		Help: "Events whose start call-up was delivered and marked.",
	})
	callupErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_callup_errors_total",
		Help: "Events whose call-up failed and will be retried.",
	})
)

// UserDirectory resolves user ids into mentionable recipients. The bot
// storage implements it.
type UserDirectory interface {
	Recipients(ctx context.Context, userIDs []int64) ([]notify.Recipient, error)
}

type Scheduler struct {
	events    storage.EventStorage
	directory UserDirectory
	gateway   notify.Gateway
	channels  notify.ChannelResolver
	interval  time.Duration
	window    time.Duration
	chunkSize int
	now       func() time.Time
	log       *logrus.Entry
}

func New(
	events storage.EventStorage,
	directory UserDirectory,
	gateway notify.Gateway,
	channels notify.ChannelResolver,
	cfg config.Scheduler,
	l *logrus.Logger,
) *Scheduler {
	return &Scheduler{
		events:    events,
		directory: directory,
		gateway:   gateway,
		channels:  channels,
		interval:  cfg.Interval(),
		window:    cfg.Window(),
		chunkSize: cfg.ChunkSize,
		now:       time.Now,
		log:       l.WithField("name", "scheduler"),
	}
}

// Run ticks until the context is cancelled. Ticks never overlap: the
// next one waits for the previous to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.log.WithField("interval", s.interval).Info("scheduler started")
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick processes every due event independently. One failing event does
// not block the rest, it is retried on the next tick.
func (s *Scheduler) tick(ctx context.Context) {
	now := s.now()
	due, err := s.events.ListDue(ctx, now, now.Add(s.window))
	if err != nil {
		s.log.WithError(err).Error("listing due events")
		return
	}
	for _, event := range due {
		if err := s.notifyEvent(ctx, event); err != nil {
			callupErrorsTotal.Inc()
			s.log.WithError(err).WithField("eventID", event.ID).Error("call-up failed")
		}
	}
	ticksTotal.Inc()
}

// notifyEvent delivers all call-up chunks, then marks the event. The
// mark comes last so a crash mid-delivery retries rather than silently
// drops. Marking is conditional in storage, so a concurrent tick sends
// at most one duplicate, never an unmarked miss.
func (s *Scheduler) notifyEvent(ctx context.Context, event domain.Event) error {
	participants, err := s.events.ListParticipants(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("list participants: %w", err)
	}
	if len(participants) > 0 {
		userIDs := make([]int64, 0, len(participants))
		for _, p := range participants {
			userIDs = append(userIDs, p.UserID)
		}
		recipients, err := s.directory.Recipients(ctx, userIDs)
		if err != nil {
			return fmt.Errorf("resolve recipients: %w", err)
		}
		chatID, err := s.channels.Resolve()
		if err != nil {
			return err
		}
		for _, msg := range notify.ComposeCallup(event.Title, event.StartsAt, recipients, s.chunkSize) {
			if err := s.gateway.Send(chatID, msg); err != nil {
				return fmt.Errorf("send call-up: %w", err)
			}
		}
	}
	err = s.events.MarkNotified(ctx, event.ID, s.now())
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// Another instance won the race after we sent. Nothing to redo.
		s.log.WithField("eventID", event.ID).Warn("event already marked notified")
		return nil
	case err != nil:
		return fmt.Errorf("mark notified: %w", err)
	}
	callupsSentTotal.Inc()
	s.log.WithField("eventID", event.ID).
		WithField("participants", len(participants)).
		Info("call-up sent")
	return nil
}
