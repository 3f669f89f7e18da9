package tgbot

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/AVick23/ML-Manager/bot/botstorage"
	botmodel "github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/config"
	"github.com/AVick23/ML-Manager/internal/service"
	"github.com/sirupsen/logrus"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	bot *tgbotapi.BotAPI

	botStorage botstorage.BotStorage
	log        *logrus.Entry

	admins map[int64]struct{}

	// last group chat an admin wrote in, used as the announcement
	// channel when none is configured
	lastGroupID atomic.Int64

	commands *Commands
}

func New(cfg config.Config, bs botstorage.BotStorage, log *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}

	bot.Debug = cfg.Server.Debug
	_, err = bot.GetMe()
	if err != nil {
		return nil, err
	}

	admins := make(map[int64]struct{}, len(cfg.TgBot.AdminIDs))
	for _, id := range cfg.TgBot.AdminIDs {
		admins[id] = struct{}{}
	}

	return &Bot{
		bot:        bot,
		botStorage: bs,
		log:        log.WithField("name", "tg_bot"),
		admins:     admins,
	}, nil
}

// RegisterCommands wires the command set. Split from New because the
// event service needs the bot as its delivery gateway first.
func (b *Bot) RegisterCommands(es *service.EventService) {
	b.commands = NewCommands(es, b.botStorage)
}

// Send delivers one message, implementing the notify gateway.
func (b *Bot) Send(chatID int64, text string) error {
	_, err := b.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// LastGroupID reports the fallback announcement chat, zero when no
// admin has written in a group yet.
func (b *Bot) LastGroupID() int64 {
	return b.lastGroupID.Load()
}

func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)
	b.log.Info("bot started")

	for {
		select {
		case <-ctx.Done():
			b.bot.StopReceivingUpdates()
			b.log.Info("bot stopped")
			return ctx.Err()
		case update := <-updates:
			b.handleMessage(ctx, update)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	tgUser := update.SentFrom()
	if tgUser == nil {
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"user_id": tgUser.ID,
		"text":    update.Message.Text,
	})
	user, err := b.botStorage.UpsertUser(ctx, botmodel.User{
		ID:        tgUser.ID,
		FirstName: tgUser.FirstName,
		LastName:  tgUser.LastName,
		Username:  tgUser.UserName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	if err != nil {
		log.WithError(err).Error("unable to upsert user")
		return
	}
	if _, ok := b.admins[user.ID]; ok {
		user.Role = botmodel.RoleAdmin
		if chat := update.FromChat(); chat != nil && (chat.IsGroup() || chat.IsSuperGroup()) {
			b.lastGroupID.Store(chat.ID)
		}
	}

	err = b.botStorage.Log(ctx, user, update.Message.Text)
	if err != nil {
		log.WithError(err).Error("can't log to db")
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")

	err = b.commands.RunCommand(ctx, user, update.Message, &msg)
	if err != nil {
		log.WithError(err).Info("command failed")
		msg.Text = reply(err).Error()
	}
	if msg.Text == "" {
		return
	}
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}
