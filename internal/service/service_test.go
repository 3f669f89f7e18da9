package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/AVick23/ML-Manager/internal/domain"
	"github.com/AVick23/ML-Manager/internal/mix"
	"github.com/AVick23/ML-Manager/internal/notify"
	"github.com/AVick23/ML-Manager/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	events            map[int64]domain.Event
	participants      map[int64]map[int64]time.Time
	matches           map[int64]domain.Match
	matchParticipants map[int64]domain.MatchParticipant
	ratings           []domain.Rating

	nextEventID       int64
	nextMatchID       int64
	nextParticipantID int64
	nextRatingID      int64
}

func newMemStorage() *memStorage {
	return &memStorage{
		events:            map[int64]domain.Event{},
		participants:      map[int64]map[int64]time.Time{},
		matches:           map[int64]domain.Match{},
		matchParticipants: map[int64]domain.MatchParticipant{},
	}
}

func (m *memStorage) CreateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	m.nextEventID++
	event.ID = m.nextEventID
	event.CreatedAt = time.Now()
	m.events[event.ID] = event
	m.participants[event.ID] = map[int64]time.Time{}
	return event, nil
}

func (m *memStorage) GetEvent(_ context.Context, id int64) (domain.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return domain.Event{}, storage.ErrNotFound
	}
	return event, nil
}

func (m *memStorage) ListUpcoming(_ context.Context) ([]domain.Event, error) {
	var events []domain.Event
	for _, event := range m.events {
		if event.Status != domain.EventCompleted {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartsAt.Before(events[j].StartsAt) })
	return events, nil
}

func (m *memStorage) ListDue(_ context.Context, from, to time.Time) ([]domain.Event, error) {
	var events []domain.Event
	for _, event := range m.events {
		if event.Status == domain.EventCompleted || event.Notified() {
			continue
		}
		if !event.StartsAt.Before(from) && !event.StartsAt.After(to) {
			events = append(events, event)
		}
	}
	return events, nil
}

func (m *memStorage) UpdateStatus(_ context.Context, id int64, from, to domain.EventStatus) error {
	event, ok := m.events[id]
	if !ok || event.Status != from {
		return storage.ErrNotFound
	}
	event.Status = to
	m.events[id] = event
	return nil
}

func (m *memStorage) MarkNotified(_ context.Context, id int64, at time.Time) error {
	event, ok := m.events[id]
	if !ok || event.Notified() {
		return storage.ErrNotFound
	}
	event.NotifiedAt = &at
	m.events[id] = event
	return nil
}

func (m *memStorage) DeleteEvent(_ context.Context, id int64) error {
	if _, ok := m.events[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.events, id)
	delete(m.participants, id)
	delete(m.matches, id)
	return nil
}

func (m *memStorage) AddParticipant(_ context.Context, eventID, userID int64) (int, error) {
	joined, ok := m.participants[eventID]
	if !ok {
		return 0, storage.ErrNotFound
	}
	if _, ok := joined[userID]; ok {
		return 0, storage.ErrDuplicate
	}
	joined[userID] = time.Now()
	return len(joined), nil
}

func (m *memStorage) RemoveParticipant(_ context.Context, eventID, userID int64) (int, error) {
	joined, ok := m.participants[eventID]
	if !ok {
		return 0, storage.ErrNotFound
	}
	if _, ok := joined[userID]; !ok {
		return 0, storage.ErrNotFound
	}
	delete(joined, userID)
	return len(joined), nil
}

func (m *memStorage) ListParticipants(_ context.Context, eventID int64) ([]domain.Participant, error) {
	var list []domain.Participant
	for userID, joinedAt := range m.participants[eventID] {
		list = append(list, domain.Participant{EventID: eventID, UserID: userID, JoinedAt: joinedAt})
	}
	return list, nil
}

func (m *memStorage) CreateMatch(_ context.Context, eventID int64, participants []domain.MatchParticipant) (domain.Match, error) {
	if _, ok := m.events[eventID]; !ok {
		return domain.Match{}, storage.ErrNotFound
	}
	if _, ok := m.matches[eventID]; ok {
		return domain.Match{}, storage.ErrDuplicate
	}
	m.nextMatchID++
	match := domain.Match{ID: m.nextMatchID, EventID: eventID, CreatedAt: time.Now()}
	for _, p := range participants {
		m.nextParticipantID++
		p.ID = m.nextParticipantID
		p.MatchID = match.ID
		match.Participants = append(match.Participants, p)
		m.matchParticipants[p.ID] = p
	}
	m.matches[eventID] = match
	event := m.events[eventID]
	event.Status = domain.EventLineupFixed
	m.events[eventID] = event
	return match, nil
}

func (m *memStorage) GetMatchByEvent(_ context.Context, eventID int64) (domain.Match, error) {
	match, ok := m.matches[eventID]
	if !ok {
		return domain.Match{}, storage.ErrNotFound
	}
	return match, nil
}

func (m *memStorage) GetMatchParticipant(_ context.Context, id int64) (domain.MatchParticipant, error) {
	p, ok := m.matchParticipants[id]
	if !ok {
		return domain.MatchParticipant{}, storage.ErrNotFound
	}
	return p, nil
}

func (m *memStorage) SetPlayed(_ context.Context, matchParticipantID int64, played bool) error {
	p, ok := m.matchParticipants[matchParticipantID]
	if !ok {
		return storage.ErrNotFound
	}
	p.Played = played
	m.matchParticipants[matchParticipantID] = p
	return nil
}

func (m *memStorage) AddRating(_ context.Context, rating domain.Rating) (domain.Rating, error) {
	for _, r := range m.ratings {
		if r.MatchParticipantID == rating.MatchParticipantID && r.RatedBy == rating.RatedBy {
			return domain.Rating{}, storage.ErrDuplicate
		}
	}
	m.nextRatingID++
	rating.ID = m.nextRatingID
	rating.CreatedAt = time.Now()
	m.ratings = append(m.ratings, rating)
	return rating, nil
}

func (m *memStorage) ListMatchRatings(_ context.Context, matchID int64) ([]domain.Rating, error) {
	var list []domain.Rating
	for _, r := range m.ratings {
		if p, ok := m.matchParticipants[r.MatchParticipantID]; ok && p.MatchID == matchID {
			list = append(list, r)
		}
	}
	return list, nil
}

type fakeGateway struct {
	sent []string
}

func (g *fakeGateway) Send(_ int64, text string) error {
	g.sent = append(g.sent, text)
	return nil
}

var (
	admin  = domain.Actor{ID: 1, Name: "admin", IsAdmin: true}
	player = domain.Actor{ID: 2, Name: "player"}
)

func newTestService(t *testing.T) (*EventService, *memStorage, *fakeGateway) {
	t.Helper()
	st := newMemStorage()
	gw := &fakeGateway{}
	channels := notify.NewChannelResolver(-100, nil)
	l := logrus.New()
	return New(st, st, st, gw, channels, l), st, gw
}

func createEvent(t *testing.T, s *EventService) domain.Event {
	t.Helper()
	event, err := s.CreateEvent(context.Background(), admin, "Вечерний замес", time.Now().Add(time.Hour))
	require.NoError(t, err)
	return event
}

func TestCreateEvent(t *testing.T) {
	s, _, gw := newTestService(t)
	ctx := context.Background()

	event := createEvent(t, s)
	require.Equal(t, domain.EventActive, event.Status)
	require.NotZero(t, event.ID)
	require.Len(t, gw.sent, 1)

	participants, err := s.Participants(ctx, event.ID)
	require.NoError(t, err)
	require.Empty(t, participants)

	_, err = s.CreateEvent(ctx, player, "Вечерний замес", time.Now().Add(time.Hour))
	require.ErrorIs(t, err, ErrPermissionDenied)

	_, err = s.CreateEvent(ctx, admin, "аб", time.Now().Add(time.Hour))
	require.ErrorIs(t, err, ErrTitleTooShort)

	_, err = s.CreateEvent(ctx, admin, "Вечерний замес", time.Now().Add(-time.Hour))
	require.ErrorIs(t, err, ErrStartInPast)
}

func TestJoinLeave(t *testing.T) {
	s, _, gw := newTestService(t)
	ctx := context.Background()
	event := createEvent(t, s)
	require.Len(t, gw.sent, 1)

	count, err := s.Join(ctx, player, event.ID)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// the group hears about the sign-up, not only the actor
	require.Len(t, gw.sent, 2)
	require.Contains(t, gw.sent[1], player.Name)
	require.Contains(t, gw.sent[1], event.Title)

	_, err = s.Join(ctx, player, event.ID)
	require.ErrorIs(t, err, ErrAlreadyJoined)
	require.Len(t, gw.sent, 2)

	participants, err := s.Participants(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)

	count, err = s.Leave(ctx, player, event.ID)
	require.NoError(t, err)
	require.Equal(t, 0, count)
	require.Len(t, gw.sent, 3)
	require.Contains(t, gw.sent[2], player.Name)

	_, err = s.Leave(ctx, player, event.ID)
	require.ErrorIs(t, err, ErrNotJoined)
	require.Len(t, gw.sent, 3)

	_, err = s.Join(ctx, player, event.ID+100)
	require.ErrorIs(t, err, ErrEventNotFound)
}

func fourPlayerMix() mix.Result {
	return mix.Result{
		Red: []mix.Player{
			{UserID: 2, Name: "a", Role: domain.RoleMid},
			{UserID: 3, Name: "b"},
		},
		Blue: []mix.Player{
			{UserID: 4, Name: "c", Role: domain.RoleMid},
			{UserID: 5, Name: "d"},
		},
	}
}

func TestFixLineup(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	event := createEvent(t, s)

	_, err := s.FixLineup(ctx, player, event.ID, fourPlayerMix())
	require.ErrorIs(t, err, ErrPermissionDenied)

	_, err = s.FixLineup(ctx, admin, event.ID, mix.Result{})
	require.ErrorIs(t, err, ErrTooFewPlayers)

	match, err := s.FixLineup(ctx, admin, event.ID, fourPlayerMix())
	require.NoError(t, err)
	require.Len(t, match.Participants, 4)

	got, err := s.Event(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, domain.EventLineupFixed, got.Status)

	_, err = s.FixLineup(ctx, admin, event.ID, fourPlayerMix())
	require.ErrorIs(t, err, ErrLineupFixed)

	// the sign-up list stays open after the freeze
	_, err = s.Join(ctx, domain.Actor{ID: 99}, event.ID)
	require.NoError(t, err)
}

func TestRate(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	event := createEvent(t, s)
	match, err := s.FixLineup(ctx, admin, event.ID, fourPlayerMix())
	require.NoError(t, err)
	target := match.Participants[0]

	_, err = s.Rate(ctx, player, target.ID, 6, "")
	require.ErrorIs(t, err, ErrInvalidScore)

	_, err = s.Rate(ctx, player, target.ID, 0, "")
	require.ErrorIs(t, err, ErrInvalidScore)

	self := domain.Actor{ID: target.UserID}
	_, err = s.Rate(ctx, self, target.ID, 5, "")
	require.ErrorIs(t, err, ErrSelfRating)

	rater := domain.Actor{ID: 4}
	rating, err := s.Rate(ctx, rater, target.ID, 5, "carried")
	require.NoError(t, err)
	require.Equal(t, target.UserID, rating.UserID)

	_, err = s.Rate(ctx, rater, target.ID, 3, "")
	require.ErrorIs(t, err, ErrDuplicateRating)

	// a different rater can score the same participation
	_, err = s.Rate(ctx, domain.Actor{ID: 5}, target.ID, 3, "")
	require.NoError(t, err)

	summaries, err := s.RatingSummary(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 4)
	require.Equal(t, target.ID, summaries[0].Participant.ID)
	require.Equal(t, 2, summaries[0].Count)
	require.InDelta(t, 4.0, summaries[0].Average, 0.001)
}

func TestMarkNotPlayed(t *testing.T) {
	s, st, _ := newTestService(t)
	ctx := context.Background()
	event := createEvent(t, s)
	match, err := s.FixLineup(ctx, admin, event.ID, fourPlayerMix())
	require.NoError(t, err)
	target := match.Participants[0]
	require.True(t, target.Played)

	require.ErrorIs(t, s.MarkNotPlayed(ctx, player, target.ID), ErrPermissionDenied)
	require.NoError(t, s.MarkNotPlayed(ctx, admin, target.ID))
	require.False(t, st.matchParticipants[target.ID].Played)
}

func TestCompleteEvent(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	event := createEvent(t, s)

	require.NoError(t, s.CompleteEvent(ctx, admin, event.ID))
	require.ErrorIs(t, s.CompleteEvent(ctx, admin, event.ID), ErrAlreadyCompleted)

	_, err := s.Join(ctx, player, event.ID)
	require.ErrorIs(t, err, ErrEventClosed)

	_, err = s.Leave(ctx, player, event.ID)
	require.ErrorIs(t, err, ErrEventClosed)
}

// raceDeleteStorage simulates an event vanishing between the status
// read and the conditional update.
type raceDeleteStorage struct {
	*memStorage
}

func (r raceDeleteStorage) UpdateStatus(_ context.Context, id int64, _, _ domain.EventStatus) error {
	delete(r.events, id)
	delete(r.participants, id)
	return storage.ErrNotFound
}

func TestCompleteEventConcurrentDelete(t *testing.T) {
	st := newMemStorage()
	gw := &fakeGateway{}
	s := New(raceDeleteStorage{st}, st, st, gw, notify.NewChannelResolver(-100, nil), logrus.New())
	event := createEvent(t, s)

	err := s.CompleteEvent(context.Background(), admin, event.ID)
	require.ErrorIs(t, err, ErrEventNotFound)
	require.NotErrorIs(t, err, ErrAlreadyCompleted)
}

func TestDeleteEvent(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()
	event := createEvent(t, s)

	require.NoError(t, s.DeleteEvent(ctx, admin, event.ID))
	require.ErrorIs(t, s.DeleteEvent(ctx, admin, event.ID), ErrEventNotFound)
	require.ErrorIs(t, s.DeleteEvent(ctx, player, event.ID), ErrPermissionDenied)
}
