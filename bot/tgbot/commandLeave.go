package tgbot

import (
	"context"
	"strconv"

	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/service"
	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type LeaveCommand struct {
	eventService *service.EventService
}

func (c *LeaveCommand) Reset(int64) {}

func (c *LeaveCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) (bool, error) {
	eventID, err := parseEventID(args)
	if err != nil {
		return false, err
	}
	count, err := c.eventService.Leave(ctx, user.Actor(), eventID)
	if err != nil {
		return false, err
	}
	resp.Text = "вы выписаны, осталось участников: " + strconv.Itoa(count)
	return false, nil
}

func (c *LeaveCommand) Help() string {
	return "выписаться с события: /leave <номер>"
}

func (c *LeaveCommand) Permission() mapset.Set[model.UserRole] {
	return everyone()
}

func (c *LeaveCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone()
}
