package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/AVick23/ML-Manager/bot/botstorage"
	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/domain"
	"github.com/AVick23/ML-Manager/internal/service"
	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// FixCommand freezes the last /mix preview as the event's match.
type FixCommand struct {
	eventService *service.EventService
	botStorage   botstorage.BotStorage
	previews     *previews
}

func (c *FixCommand) Reset(int64) {}

func (c *FixCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) (bool, error) {
	eventID, err := parseEventID(args)
	if err != nil {
		return false, err
	}
	result, ok := c.previews.Get(eventID)
	if !ok {
		return false, errors.New("сначала сделайте /mix " + strings.TrimSpace(args))
	}
	match, err := c.eventService.FixLineup(ctx, user.Actor(), eventID, result)
	if err != nil {
		return false, err
	}
	c.previews.Delete(eventID)
	resp.Text, err = c.formatMatch(ctx, match)
	return false, err
}

// formatMatch lists participation ids, admins use them with /rate and
// /notplayed.
func (c *FixCommand) formatMatch(ctx context.Context, match domain.Match) (string, error) {
	userIDs := make([]int64, 0, len(match.Participants))
	for _, p := range match.Participants {
		userIDs = append(userIDs, p.UserID)
	}
	users, err := c.botStorage.GetUsers(ctx, userIDs)
	if err != nil {
		return "", err
	}
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName()
	}
	var buf strings.Builder
	buf.WriteString("✅ Составы зафиксированы!\n\n")
	for _, p := range match.Participants {
		buf.WriteString("#")
		buf.WriteString(strconv.FormatInt(p.ID, 10))
		buf.WriteString(" ")
		buf.WriteString(names[p.UserID])
		buf.WriteString(" - ")
		buf.WriteString(string(p.Team))
		if p.Role != "" {
			buf.WriteString(" [")
			buf.WriteString(string(p.Role))
			buf.WriteString("]")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("\nОценки после игры: /rate <номер участника> <1-5>")
	return buf.String(), nil
}

func (c *FixCommand) Help() string {
	return "зафиксировать составы: /fix <номер>"
}

func (c *FixCommand) Permission() mapset.Set[model.UserRole] {
	return adminsOnly()
}

func (c *FixCommand) Visibility() mapset.Set[model.UserRole] {
	return adminsOnly()
}
