package tgbot

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/normalize"
	"github.com/AVick23/ML-Manager/internal/service"
	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type draftState int

const (
	stateTitle draftState = iota
	stateDay
	stateHour
	stateMinute
)

type eventDraft struct {
	state draftState
	title string
	day   time.Time
	hour  int
}

// NewEventCommand collects an event step by step: title, day, hour,
// minute. Drafts are kept per user, a slash command aborts the draft.
type NewEventCommand struct {
	eventService *service.EventService
	drafts       map[int64]*eventDraft
}

func (c *NewEventCommand) Reset(userID int64) {
	delete(c.drafts, userID)
}

func (c *NewEventCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) (bool, error) {
	draft, ok := c.drafts[user.ID]
	if !ok {
		c.drafts[user.ID] = &eventDraft{state: stateTitle}
		resp.Text = "Введите название события:"
		resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		return true, nil
	}
	switch draft.state {
	case stateTitle:
		draft.title = args
		draft.state = stateDay
		resp.Text = "Когда играем?"
		resp.ReplyMarkup = tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton("сегодня"),
				tgbotapi.NewKeyboardButton("завтра"),
			),
		)
		return true, nil
	case stateDay:
		day, err := parseDay(args)
		if err != nil {
			return true, err
		}
		draft.day = day
		draft.state = stateHour
		resp.Text = "В котором часу? (0-23)"
		resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		return true, nil
	case stateHour:
		hour, err := strconv.Atoi(args)
		if err != nil || hour < 0 || hour > 23 {
			return true, errors.New("введите час от 0 до 23")
		}
		draft.hour = hour
		draft.state = stateMinute
		resp.Text = "Минуты? (0-59)"
		return true, nil
	case stateMinute:
		minute, err := strconv.Atoi(args)
		if err != nil || minute < 0 || minute > 59 {
			return true, errors.New("введите минуты от 0 до 59")
		}
		startsAt := time.Date(
			draft.day.Year(), draft.day.Month(), draft.day.Day(),
			draft.hour, minute, 0, 0, time.Local,
		)
		event, err := c.eventService.CreateEvent(ctx, user.Actor(), draft.title, startsAt)
		if err != nil {
			return false, err
		}
		c.Reset(user.ID)
		resp.Text = "Событие #" + strconv.FormatInt(event.ID, 10) + " создано: " +
			event.Title + ", " + event.StartsAt.Format("02.01.2006 15:04")
		return false, nil
	}
	return false, ErrBadRequest
}

func parseDay(args string) (time.Time, error) {
	now := time.Now()
	switch normalize.Name(args) {
	case "сегодня":
		return now, nil
	case "завтра":
		return now.AddDate(0, 0, 1), nil
	}
	day, err := time.ParseInLocation("02.01.2006", args, time.Local)
	if err != nil {
		return time.Time{}, errors.New(`введите "сегодня", "завтра" или дату в формате 02.01.2006`)
	}
	return day, nil
}

func (c *NewEventCommand) Help() string {
	return "создать событие (пошагово)"
}

func (c *NewEventCommand) Permission() mapset.Set[model.UserRole] {
	return adminsOnly()
}

func (c *NewEventCommand) Visibility() mapset.Set[model.UserRole] {
	return adminsOnly()
}
