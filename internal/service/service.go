// Package service implements the event lifecycle: creation, sign-ups,
// lineup freezing, ratings and completion. All state changes go through
// storage first, announcements are best effort.
package service

import (
	"context"
	"errors"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/AVick23/ML-Manager/internal/domain"
	"github.com/AVick23/ML-Manager/internal/mix"
	"github.com/AVick23/ML-Manager/internal/notify"
	"github.com/AVick23/ML-Manager/internal/storage"
	"github.com/sirupsen/logrus"
)

const minTitleLength = 3

type EventService struct {
	eventStorage  storage.EventStorage
	matchStorage  storage.MatchStorage
	ratingStorage storage.RatingStorage
	gateway       notify.Gateway
	channels      notify.ChannelResolver
	log           *logrus.Entry
}

func New(
	eventStorage storage.EventStorage,
	matchStorage storage.MatchStorage,
	ratingStorage storage.RatingStorage,
	gateway notify.Gateway,
	channels notify.ChannelResolver,
	l *logrus.Logger,
) *EventService {
	return &EventService{
		eventStorage:  eventStorage,
		matchStorage:  matchStorage,
		ratingStorage: ratingStorage,
		gateway:       gateway,
		channels:      channels,
		log:           l.WithField("name", "eventService"),
	}
}

// CreateEvent validates and stores a new event, then announces it to the
// group. A failed announcement does not undo the creation.
func (s *EventService) CreateEvent(ctx context.Context, actor domain.Actor, title string, startsAt time.Time) (domain.Event, error) {
	if !actor.IsAdmin {
		return domain.Event{}, ErrPermissionDenied
	}
	if utf8.RuneCountInString(title) < minTitleLength {
		return domain.Event{}, ErrTitleTooShort
	}
	if !startsAt.After(time.Now()) {
		return domain.Event{}, ErrStartInPast
	}
	event, err := s.eventStorage.CreateEvent(ctx, domain.Event{
		Title:    title,
		StartsAt: startsAt,
		Status:   domain.EventActive,
	})
	if err != nil {
		return domain.Event{}, err
	}
	s.announce(notify.ComposeNewEvent(event.Title, event.StartsAt))
	return event, nil
}

// Join signs the actor up, announces the new headcount to the group and
// returns the updated participant count. Sign-ups stay open until the
// event is completed.
func (s *EventService) Join(ctx context.Context, actor domain.Actor, eventID int64) (int, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if event.Status == domain.EventCompleted {
		return 0, ErrEventClosed
	}
	count, err := s.eventStorage.AddParticipant(ctx, eventID, actor.ID)
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return 0, ErrAlreadyJoined
	case errors.Is(err, storage.ErrNotFound):
		return 0, ErrEventNotFound
	case err != nil:
		return 0, err
	}
	s.announce(notify.ComposeJoin(event.Title, actor.Name, count))
	return count, nil
}

// Leave removes the actor from the sign-up list and announces the
// updated headcount.
func (s *EventService) Leave(ctx context.Context, actor domain.Actor, eventID int64) (int, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if event.Status == domain.EventCompleted {
		return 0, ErrEventClosed
	}
	count, err := s.eventStorage.RemoveParticipant(ctx, eventID, actor.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return 0, ErrNotJoined
	case err != nil:
		return 0, err
	}
	s.announce(notify.ComposeLeave(event.Title, actor.Name, count))
	return count, nil
}

// FixLineup persists a mixed lineup and freezes the event. Each event
// gets at most one lineup.
func (s *EventService) FixLineup(ctx context.Context, actor domain.Actor, eventID int64, result mix.Result) (domain.Match, error) {
	if !actor.IsAdmin {
		return domain.Match{}, ErrPermissionDenied
	}
	if result.Seated() < 2 {
		return domain.Match{}, ErrTooFewPlayers
	}
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return domain.Match{}, err
	}
	if event.Status == domain.EventCompleted {
		return domain.Match{}, ErrEventClosed
	}
	participants := make([]domain.MatchParticipant, 0, len(result.Red)+len(result.Blue)+len(result.Spectators))
	participants = appendSide(participants, result.Red, domain.TeamRed)
	participants = appendSide(participants, result.Blue, domain.TeamBlue)
	participants = appendSide(participants, result.Spectators, domain.TeamSpectator)
	match, err := s.matchStorage.CreateMatch(ctx, eventID, participants)
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return domain.Match{}, ErrLineupFixed
	case errors.Is(err, storage.ErrNotFound):
		return domain.Match{}, ErrEventNotFound
	case err != nil:
		return domain.Match{}, err
	}
	s.announce(notify.ComposeLineup(event.Title, names(result.Red), names(result.Blue), names(result.Spectators)))
	return match, nil
}

func appendSide(dst []domain.MatchParticipant, players []mix.Player, team domain.Team) []domain.MatchParticipant {
	for _, p := range players {
		dst = append(dst, domain.MatchParticipant{
			UserID: p.UserID,
			Team:   team,
			Role:   p.Role,
			Played: team != domain.TeamSpectator,
		})
	}
	return dst
}

func names(players []mix.Player) []string {
	list := make([]string, 0, len(players))
	for _, p := range players {
		list = append(list, p.Name)
	}
	return list
}

// Rate records a 1..5 score for a match participation. One score per
// rater per participation, raters cannot score themselves.
func (s *EventService) Rate(ctx context.Context, actor domain.Actor, matchParticipantID int64, score int, comment string) (domain.Rating, error) {
	if score < domain.MinScore || score > domain.MaxScore {
		return domain.Rating{}, ErrInvalidScore
	}
	participant, err := s.matchStorage.GetMatchParticipant(ctx, matchParticipantID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return domain.Rating{}, ErrParticipantNotFound
	case err != nil:
		return domain.Rating{}, err
	}
	if participant.UserID == actor.ID {
		return domain.Rating{}, ErrSelfRating
	}
	rating, err := s.ratingStorage.AddRating(ctx, domain.Rating{
		MatchParticipantID: matchParticipantID,
		UserID:             participant.UserID,
		Score:              score,
		Comment:            comment,
		RatedBy:            actor.ID,
	})
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return domain.Rating{}, ErrDuplicateRating
	case err != nil:
		return domain.Rating{}, err
	}
	return rating, nil
}

// MarkNotPlayed flags a seated player who skipped the game. Their
// participation is kept but excluded from played statistics.
func (s *EventService) MarkNotPlayed(ctx context.Context, actor domain.Actor, matchParticipantID int64) error {
	if !actor.IsAdmin {
		return ErrPermissionDenied
	}
	err := s.matchStorage.SetPlayed(ctx, matchParticipantID, false)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrParticipantNotFound
	}
	return err
}

// CompleteEvent finishes an event. Completed events reject sign-ups,
// lineups and further completion.
func (s *EventService) CompleteEvent(ctx context.Context, actor domain.Actor, eventID int64) error {
	if !actor.IsAdmin {
		return ErrPermissionDenied
	}
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Status == domain.EventCompleted {
		return ErrAlreadyCompleted
	}
	err = s.eventStorage.UpdateStatus(ctx, eventID, event.Status, domain.EventCompleted)
	if errors.Is(err, storage.ErrNotFound) {
		// Lost the race. Re-read to tell a concurrent delete apart
		// from a concurrent completion.
		if _, err := s.getEvent(ctx, eventID); err != nil {
			return err
		}
		return ErrAlreadyCompleted
	}
	return err
}

// DeleteEvent removes the event with its sign-ups, lineup and ratings.
func (s *EventService) DeleteEvent(ctx context.Context, actor domain.Actor, eventID int64) error {
	if !actor.IsAdmin {
		return ErrPermissionDenied
	}
	err := s.eventStorage.DeleteEvent(ctx, eventID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrEventNotFound
	}
	return err
}

// Upcoming lists events that are not completed yet, soonest first.
func (s *EventService) Upcoming(ctx context.Context) ([]domain.Event, error) {
	return s.eventStorage.ListUpcoming(ctx)
}

func (s *EventService) Event(ctx context.Context, eventID int64) (domain.Event, error) {
	return s.getEvent(ctx, eventID)
}

func (s *EventService) Participants(ctx context.Context, eventID int64) ([]domain.Participant, error) {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.eventStorage.ListParticipants(ctx, eventID)
}

// Lineup returns the frozen match of an event.
func (s *EventService) Lineup(ctx context.Context, eventID int64) (domain.Match, error) {
	match, err := s.matchStorage.GetMatchByEvent(ctx, eventID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return domain.Match{}, ErrNoLineup
	case err != nil:
		return domain.Match{}, err
	}
	return match, nil
}

// ParticipantSummary aggregates the scores one match participation
// received.
type ParticipantSummary struct {
	Participant domain.MatchParticipant
	Average     float64
	Count       int
}

// RatingSummary returns per-player averages for the event's match,
// highest average first. Unrated participations are included with a
// zero count, spectators are skipped.
func (s *EventService) RatingSummary(ctx context.Context, eventID int64) ([]ParticipantSummary, error) {
	match, err := s.Lineup(ctx, eventID)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratingStorage.ListMatchRatings(ctx, match.ID)
	if err != nil {
		return nil, err
	}
	totals := make(map[int64]int)
	counts := make(map[int64]int)
	for _, r := range ratings {
		totals[r.MatchParticipantID] += r.Score
		counts[r.MatchParticipantID]++
	}
	summaries := make([]ParticipantSummary, 0, len(match.Participants))
	for _, p := range match.Participants {
		if p.Team == domain.TeamSpectator {
			continue
		}
		summary := ParticipantSummary{Participant: p, Count: counts[p.ID]}
		if summary.Count > 0 {
			summary.Average = float64(totals[p.ID]) / float64(summary.Count)
		}
		summaries = append(summaries, summary)
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Average > summaries[j].Average
	})
	return summaries, nil
}

func (s *EventService) getEvent(ctx context.Context, eventID int64) (domain.Event, error) {
	event, err := s.eventStorage.GetEvent(ctx, eventID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return domain.Event{}, ErrEventNotFound
	case err != nil:
		return domain.Event{}, err
	}
	return event, nil
}

// announce sends a message to the group channel when one is known.
// Delivery problems are logged and swallowed.
func (s *EventService) announce(text string) {
	chatID, err := s.channels.Resolve()
	if err != nil {
		s.log.WithError(err).Debug("skipping announcement")
		return
	}
	if err := s.gateway.Send(chatID, text); err != nil {
		s.log.WithError(err).Error("announcement delivery failed")
	}
}
