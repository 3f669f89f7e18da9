package tgbot

import (
	"context"
	"strconv"
	"strings"

	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/domain"
	"github.com/AVick23/ML-Manager/internal/service"
	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type EventsCommand struct {
	eventService *service.EventService
}

func (c *EventsCommand) Reset(int64) {}

func (c *EventsCommand) Run(ctx context.Context, _ model.User, _ string, resp *tgbotapi.MessageConfig) (bool, error) {
	events, err := c.eventService.Upcoming(ctx)
	if err != nil {
		return false, err
	}
	if len(events) == 0 {
		resp.Text = "предстоящих событий нет"
		return false, nil
	}
	var buf strings.Builder
	buf.WriteString("📅 Предстоящие события:\n\n")
	for _, event := range events {
		participants, err := c.eventService.Participants(ctx, event.ID)
		if err != nil {
			return false, err
		}
		buf.WriteString("#")
		buf.WriteString(strconv.FormatInt(event.ID, 10))
		buf.WriteString(" ")
		buf.WriteString(event.Title)
		buf.WriteString("\n🕒 ")
		buf.WriteString(event.StartsAt.Format("02.01.2006 15:04"))
		buf.WriteString("\n👥 Записано: ")
		buf.WriteString(strconv.Itoa(len(participants)))
		if event.Status == domain.EventLineupFixed {
			buf.WriteString("\n🔒 составы зафиксированы")
		}
		buf.WriteString("\n\n")
	}
	resp.Text = buf.String()
	return false, nil
}

func (c *EventsCommand) Help() string {
	return "список предстоящих событий"
}

func (c *EventsCommand) Permission() mapset.Set[model.UserRole] {
	return everyone()
}

func (c *EventsCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone()
}
