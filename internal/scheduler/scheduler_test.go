package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/AVick23/ML-Manager/internal/config"
	"github.com/AVick23/ML-Manager/internal/domain"
	"github.com/AVick23/ML-Manager/internal/notify"
	"github.com/AVick23/ML-Manager/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeEvents struct {
	events       map[int64]domain.Event
	participants map[int64][]domain.Participant
}

func newFakeEvents(events ...domain.Event) *fakeEvents {
	f := &fakeEvents{
		events:       map[int64]domain.Event{},
		participants: map[int64][]domain.Participant{},
	}
	for _, event := range events {
		f.events[event.ID] = event
	}
	return f
}

func (f *fakeEvents) join(eventID int64, userIDs ...int64) {
	for _, id := range userIDs {
		f.participants[eventID] = append(f.participants[eventID], domain.Participant{
			EventID: eventID,
			UserID:  id,
		})
	}
}

func (f *fakeEvents) CreateEvent(context.Context, domain.Event) (domain.Event, error) {
	panic("not used")
}

func (f *fakeEvents) GetEvent(_ context.Context, id int64) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, storage.ErrNotFound
	}
	return event, nil
}

func (f *fakeEvents) ListUpcoming(context.Context) ([]domain.Event, error) {
	panic("not used")
}

func (f *fakeEvents) ListDue(_ context.Context, from, to time.Time) ([]domain.Event, error) {
	var due []domain.Event
	for _, event := range f.events {
		if event.Status == domain.EventCompleted || event.Notified() {
			continue
		}
		if !event.StartsAt.Before(from) && !event.StartsAt.After(to) {
			due = append(due, event)
		}
	}
	return due, nil
}

func (f *fakeEvents) UpdateStatus(context.Context, int64, domain.EventStatus, domain.EventStatus) error {
	panic("not used")
}

func (f *fakeEvents) MarkNotified(_ context.Context, id int64, at time.Time) error {
	event, ok := f.events[id]
	if !ok || event.Notified() {
		return storage.ErrNotFound
	}
	event.NotifiedAt = &at
	f.events[id] = event
	return nil
}

func (f *fakeEvents) DeleteEvent(context.Context, int64) error {
	panic("not used")
}

func (f *fakeEvents) AddParticipant(context.Context, int64, int64) (int, error) {
	panic("not used")
}

func (f *fakeEvents) RemoveParticipant(context.Context, int64, int64) (int, error) {
	panic("not used")
}

func (f *fakeEvents) ListParticipants(_ context.Context, eventID int64) ([]domain.Participant, error) {
	return f.participants[eventID], nil
}

type fakeDirectory struct{}

func (fakeDirectory) Recipients(_ context.Context, userIDs []int64) ([]notify.Recipient, error) {
	recipients := make([]notify.Recipient, 0, len(userIDs))
	for range userIDs {
		recipients = append(recipients, notify.Recipient{Mention: "@player"})
	}
	return recipients, nil
}

type fakeGateway struct {
	sent    []string
	failFor string
}

func (g *fakeGateway) Send(_ int64, text string) error {
	if g.failFor != "" && strings.Contains(text, g.failFor) {
		return errors.New("network down")
	}
	g.sent = append(g.sent, text)
	return nil
}

func newTestScheduler(events *fakeEvents, gw *fakeGateway, now time.Time) *Scheduler {
	s := New(events, fakeDirectory{}, gw, notify.NewChannelResolver(-100, nil), config.Scheduler{
		IntervalMinutes: 1,
		WindowMinutes:   1,
		ChunkSize:       10,
	}, logrus.New())
	s.now = func() time.Time { return now }
	return s
}

func TestTickNotifiesExactlyOnce(t *testing.T) {
	now := time.Date(2024, 5, 1, 19, 59, 30, 0, time.UTC)
	events := newFakeEvents(domain.Event{
		ID:       1,
		Title:    "Вечерний замес",
		StartsAt: now.Add(30 * time.Second),
		Status:   domain.EventActive,
	})
	events.join(1, 2, 3, 4)
	gw := &fakeGateway{}
	s := newTestScheduler(events, gw, now)

	s.tick(context.Background())
	require.Len(t, gw.sent, 1)
	require.True(t, events.events[1].Notified())

	s.tick(context.Background())
	require.Len(t, gw.sent, 1)
}

func TestTickChunksLargeCallups(t *testing.T) {
	now := time.Date(2024, 5, 1, 19, 59, 30, 0, time.UTC)
	events := newFakeEvents(domain.Event{
		ID:       1,
		Title:    "t",
		StartsAt: now,
		Status:   domain.EventActive,
	})
	userIDs := make([]int64, 22)
	for i := range userIDs {
		userIDs[i] = int64(i + 10)
	}
	events.join(1, userIDs...)
	gw := &fakeGateway{}
	s := newTestScheduler(events, gw, now)

	s.tick(context.Background())
	require.Len(t, gw.sent, 3)
}

func TestTickMarksEmptyEventsWithoutSending(t *testing.T) {
	now := time.Date(2024, 5, 1, 19, 59, 30, 0, time.UTC)
	events := newFakeEvents(domain.Event{
		ID:       1,
		Title:    "t",
		StartsAt: now,
		Status:   domain.EventActive,
	})
	gw := &fakeGateway{}
	s := newTestScheduler(events, gw, now)

	s.tick(context.Background())
	require.Empty(t, gw.sent)
	require.True(t, events.events[1].Notified())
}

// blockingGateway holds every delivery until released, to catch a
// shutdown racing an in-flight tick.
type blockingGateway struct {
	entered chan struct{}
	release chan struct{}
}

func (g *blockingGateway) Send(int64, string) error {
	g.entered <- struct{}{}
	<-g.release
	return nil
}

func TestRunFinishesInFlightTickOnCancel(t *testing.T) {
	now := time.Date(2024, 5, 1, 19, 59, 30, 0, time.UTC)
	events := newFakeEvents(domain.Event{
		ID:       1,
		Title:    "t",
		StartsAt: now,
		Status:   domain.EventActive,
	})
	events.join(1, 2, 3)
	gw := &blockingGateway{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	s := New(events, fakeDirectory{}, gw, notify.NewChannelResolver(-100, nil), config.Scheduler{
		IntervalMinutes: 1,
		WindowMinutes:   1,
		ChunkSize:       10,
	}, logrus.New())
	s.now = func() time.Time { return now }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	<-gw.entered
	cancel()
	select {
	case <-done:
		t.Fatal("Run returned with a delivery still in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(gw.release)
	require.ErrorIs(t, <-done, context.Canceled)
	require.True(t, events.events[1].Notified())
}

func TestTickRetriesFailedDelivery(t *testing.T) {
	now := time.Date(2024, 5, 1, 19, 59, 30, 0, time.UTC)
	events := newFakeEvents(
		domain.Event{ID: 1, Title: "broken", StartsAt: now, Status: domain.EventActive},
		domain.Event{ID: 2, Title: "healthy", StartsAt: now, Status: domain.EventActive},
	)
	events.join(1, 2, 3)
	events.join(2, 4, 5)
	gw := &fakeGateway{failFor: "broken"}
	s := newTestScheduler(events, gw, now)

	// one broken event must not block the other
	s.tick(context.Background())
	require.False(t, events.events[1].Notified())
	require.True(t, events.events[2].Notified())

	gw.failFor = ""
	s.tick(context.Background())
	require.True(t, events.events[1].Notified())
	require.Len(t, gw.sent, 2)
}
