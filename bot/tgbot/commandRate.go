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

type RateCommand struct {
	eventService *service.EventService
}

func (c *RateCommand) Reset(int64) {}

func (c *RateCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) (bool, error) {
	fields := strings.SplitN(strings.TrimSpace(args), " ", 3)
	if len(fields) < 2 {
		return false, errors.New("использование: /rate <номер участника> <1-5> [комментарий]")
	}
	participantID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return false, errors.New("укажите номер участника из /fix или /summary")
	}
	score, err := strconv.Atoi(fields[1])
	if err != nil {
		return false, errors.New("оценка должна быть числом от 1 до 5")
	}
	var comment string
	if len(fields) == 3 {
		comment = fields[2]
	}
	_, err = c.eventService.Rate(ctx, user.Actor(), participantID, score, comment)
	if err != nil {
		return false, err
	}
	resp.Text = "оценка записана"
	return false, nil
}

func (c *RateCommand) Help() string {
	return "оценить игрока: /rate <номер участника> <1-5> [комментарий]"
}

func (c *RateCommand) Permission() mapset.Set[model.UserRole] {
	return everyone()
}

func (c *RateCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone()
}
