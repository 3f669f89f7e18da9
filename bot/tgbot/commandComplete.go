package tgbot

import (
	"context"

	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/service"
	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type CompleteCommand struct {
	eventService *service.EventService
}

func (c *CompleteCommand) Reset(int64) {}

func (c *CompleteCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) (bool, error) {
	eventID, err := parseEventID(args)
	if err != nil {
		return false, err
	}
	err = c.eventService.CompleteEvent(ctx, user.Actor(), eventID)
	if err != nil {
		return false, err
	}
	resp.Text = "событие завершено"
	return false, nil
}

func (c *CompleteCommand) Help() string {
	return "завершить событие: /complete <номер>"
}

func (c *CompleteCommand) Permission() mapset.Set[model.UserRole] {
	return adminsOnly()
}

func (c *CompleteCommand) Visibility() mapset.Set[model.UserRole] {
	return adminsOnly()
}
