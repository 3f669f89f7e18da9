package tgbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/AVick23/ML-Manager/bot/botstorage"
	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/service"
	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type SummaryCommand struct {
	eventService *service.EventService
	botStorage   botstorage.BotStorage
}

func (c *SummaryCommand) Reset(int64) {}

func (c *SummaryCommand) Run(ctx context.Context, _ model.User, args string, resp *tgbotapi.MessageConfig) (bool, error) {
	eventID, err := parseEventID(args)
	if err != nil {
		return false, err
	}
	summaries, err := c.eventService.RatingSummary(ctx, eventID)
	if err != nil {
		return false, err
	}
	userIDs := make([]int64, 0, len(summaries))
	for _, s := range summaries {
		userIDs = append(userIDs, s.Participant.UserID)
	}
	users, err := c.botStorage.GetUsers(ctx, userIDs)
	if err != nil {
		return false, err
	}
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName()
	}
	var buf strings.Builder
	buf.WriteString("📊 Оценки за игру:\n\n")
	for _, s := range summaries {
		buf.WriteString(fmt.Sprintf("#%d %s", s.Participant.ID, names[s.Participant.UserID]))
		if !s.Participant.Played {
			buf.WriteString(" (не играл)")
		}
		if s.Count == 0 {
			buf.WriteString(": оценок нет\n")
			continue
		}
		buf.WriteString(fmt.Sprintf(": %.1f (%d)\n", s.Average, s.Count))
	}
	resp.Text = buf.String()
	return false, nil
}

func (c *SummaryCommand) Help() string {
	return "средние оценки: /summary <номер>"
}

func (c *SummaryCommand) Permission() mapset.Set[model.UserRole] {
	return everyone()
}

func (c *SummaryCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone()
}
