package sqlite

import (
	"github.com/AVick23/ML-Manager/gen/model"
	"github.com/AVick23/ML-Manager/internal/domain"
)

func convertEventFromDomain(event domain.Event) model.Events {
	return model.Events{
		ID:         int32(event.ID),
		Title:      event.Title,
		StartsAt:   event.StartsAt,
		Status:     string(event.Status),
		NotifiedAt: event.NotifiedAt,
		CreatedAt:  event.CreatedAt,
	}
}

func convertEventToDomain(event model.Events) domain.Event {
	return domain.Event{
		ID:         int64(event.ID),
		Title:      event.Title,
		StartsAt:   event.StartsAt,
		Status:     domain.EventStatus(event.Status),
		NotifiedAt: event.NotifiedAt,
		CreatedAt:  event.CreatedAt,
	}
}

func convertEventsToDomain(events []model.Events) []domain.Event {
	converted := make([]domain.Event, 0, len(events))
	for _, event := range events {
		converted = append(converted, convertEventToDomain(event))
	}
	return converted
}

func convertParticipantsToDomain(participants []model.EventParticipants) []domain.Participant {
	converted := make([]domain.Participant, 0, len(participants))
	for _, p := range participants {
		converted = append(converted, domain.Participant{
			EventID:  int64(p.EventID),
			UserID:   p.UserID,
			JoinedAt: p.JoinedAt,
		})
	}
	return converted
}

func convertMatchToDomain(match model.EventMatches) domain.Match {
	return domain.Match{
		ID:        int64(match.ID),
		EventID:   int64(match.EventID),
		CreatedAt: match.CreatedAt,
	}
}

func convertMatchParticipantsFromDomain(matchID int64, participants []domain.MatchParticipant) []model.MatchParticipants {
	converted := make([]model.MatchParticipants, 0, len(participants))
	for _, p := range participants {
		row := model.MatchParticipants{
			MatchID: int32(matchID),
			UserID:  p.UserID,
			Team:    string(p.Team),
			Played:  p.Played,
		}
		if p.Role != domain.RoleNone {
			role := string(p.Role)
			row.RolePlayed = &role
		}
		converted = append(converted, row)
	}
	return converted
}

func convertMatchParticipantToDomain(p model.MatchParticipants) domain.MatchParticipant {
	converted := domain.MatchParticipant{
		ID:      int64(p.ID),
		MatchID: int64(p.MatchID),
		UserID:  p.UserID,
		Team:    domain.Team(p.Team),
		Played:  p.Played,
	}
	if p.RolePlayed != nil {
		converted.Role = domain.Role(*p.RolePlayed)
	}
	return converted
}

func convertMatchParticipantsToDomain(participants []model.MatchParticipants) []domain.MatchParticipant {
	converted := make([]domain.MatchParticipant, 0, len(participants))
	for _, p := range participants {
		converted = append(converted, convertMatchParticipantToDomain(p))
	}
	return converted
}

func convertRatingFromDomain(rating domain.Rating) model.RoleRatings {
	row := model.RoleRatings{
		ID:                 int32(rating.ID),
		MatchParticipantID: int32(rating.MatchParticipantID),
		UserID:             rating.UserID,
		Rating:             int32(rating.Score),
		RatedBy:            rating.RatedBy,
		CreatedAt:          rating.CreatedAt,
	}
	if rating.Comment != "" {
		comment := rating.Comment
		row.Comment = &comment
	}
	return row
}

func convertRatingToDomain(rating model.RoleRatings) domain.Rating {
	converted := domain.Rating{
		ID:                 int64(rating.ID),
		MatchParticipantID: int64(rating.MatchParticipantID),
		UserID:             rating.UserID,
		Score:              int(rating.Rating),
		RatedBy:            rating.RatedBy,
		CreatedAt:          rating.CreatedAt,
	}
	if rating.Comment != nil {
		converted.Comment = *rating.Comment
	}
	return converted
}

func convertRatingsToDomain(ratings []model.RoleRatings) []domain.Rating {
	converted := make([]domain.Rating, 0, len(ratings))
	for _, rating := range ratings {
		converted = append(converted, convertRatingToDomain(rating))
	}
	return converted
}
