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

type NotPlayedCommand struct {
	eventService *service.EventService
}

func (c *NotPlayedCommand) Reset(int64) {}

func (c *NotPlayedCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) (bool, error) {
	participantID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		return false, errors.New("использование: /notplayed <номер участника>")
	}
	err = c.eventService.MarkNotPlayed(ctx, user.Actor(), participantID)
	if err != nil {
		return false, err
	}
	resp.Text = "отмечено: игрок не играл"
	return false, nil
}

func (c *NotPlayedCommand) Help() string {
	return "отметить неявку: /notplayed <номер участника>"
}

func (c *NotPlayedCommand) Permission() mapset.Set[model.UserRole] {
	return adminsOnly()
}

func (c *NotPlayedCommand) Visibility() mapset.Set[model.UserRole] {
	return adminsOnly()
}
