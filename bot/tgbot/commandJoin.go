package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/service"
	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type JoinCommand struct {
	eventService *service.EventService
}

func (c *JoinCommand) Reset(int64) {}

func (c *JoinCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) (bool, error) {
	eventID, err := parseEventID(args)
	if err != nil {
		return false, err
	}
	count, err := c.eventService.Join(ctx, user.Actor(), eventID)
	if err != nil {
		return false, err
	}
	resp.Text = "вы записаны, всего участников: " + strconv.Itoa(count)
	return false, nil
}

func (c *JoinCommand) Help() string {
	return "записаться на событие: /join <номер>"
}

func (c *JoinCommand) Permission() mapset.Set[model.UserRole] {
	return everyone()
}

func (c *JoinCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone()
}

func parseEventID(args string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		return 0, errors.New("укажите номер события, например: 3")
	}
	return id, nil
}
