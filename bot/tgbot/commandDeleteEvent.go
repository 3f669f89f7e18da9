package tgbot

import (
	"context"
	"errors"

	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/service"
	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type DeleteEventCommand struct {
	eventService *service.EventService
}

func (c *DeleteEventCommand) Reset(int64) {}

func (c *DeleteEventCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) (bool, error) {
	eventID, err := parseEventID(args)
	if err != nil {
		return false, err
	}
	err = c.eventService.DeleteEvent(ctx, user.Actor(), eventID)
	if errors.Is(err, service.ErrEventNotFound) {
		// Deleting twice is fine, report what is true either way.
		resp.Text = "событие уже удалено"
		return false, nil
	}
	if err != nil {
		return false, err
	}
	resp.Text = "событие удалено вместе с записями и оценками"
	return false, nil
}

func (c *DeleteEventCommand) Help() string {
	return "удалить событие: /delete_event <номер>"
}

func (c *DeleteEventCommand) Permission() mapset.Set[model.UserRole] {
	return adminsOnly()
}

func (c *DeleteEventCommand) Visibility() mapset.Set[model.UserRole] {
	return adminsOnly()
}
