package tgbot

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/AVick23/ML-Manager/bot/botstorage"
	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/service"
	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrBadRequest = errors.New("неизвестная команда, попробуйте /help")

// Command is one bot command. Run returns true when the command wants
// to keep receiving the user's next plain messages (multi-step input).
type Command interface {
	Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) (bool, error)
	Reset(userID int64)
	Help() string
	Permission() mapset.Set[model.UserRole]
	Visibility() mapset.Set[model.UserRole]
}

type Commands struct {
	list map[string]Command

	mu     sync.Mutex
	active map[int64]Command
}

func NewCommands(es *service.EventService, bs botstorage.BotStorage) *Commands {
	hc := &HelpCommand{}
	previews := newPreviews()
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"events": &EventsCommand{
				eventService: es,
			},
			"new_event": &NewEventCommand{
				eventService: es,
				drafts:       map[int64]*eventDraft{},
			},
			"join": &JoinCommand{
				eventService: es,
			},
			"leave": &LeaveCommand{
				eventService: es,
			},
			"mix": &MixCommand{
				eventService: es,
				botStorage:   bs,
				previews:     previews,
				rnd:          rnd,
			},
			"fix": &FixCommand{
				eventService: es,
				botStorage:   bs,
				previews:     previews,
			},
			"rate": &RateCommand{
				eventService: es,
			},
			"notplayed": &NotPlayedCommand{
				eventService: es,
			},
			"complete": &CompleteCommand{
				eventService: es,
			},
			"delete_event": &DeleteEventCommand{
				eventService: es,
			},
			"summary": &SummaryCommand{
				eventService: es,
				botStorage:   bs,
			},
			"role": &RoleCommand{
				botStorage: bs,
			},
		},
		active: map[int64]Command{},
	}
	hc.commands = uc.list
	return &uc
}

// RunCommand routes a message: a slash command looks up the registry and
// cancels any multi-step command in progress, plain text goes to the
// user's active command.
func (uc *Commands) RunCommand(ctx context.Context, user model.User, msg *tgbotapi.Message, resp *tgbotapi.MessageConfig) error {
	if msg.IsCommand() {
		command, ok := uc.list[msg.Command()]
		if !ok {
			return ErrBadRequest
		}
		if !command.Permission().Contains(user.Role) {
			return ErrBadRequest
		}
		uc.clearActive(user.ID)
		return uc.run(ctx, command, user, msg.CommandArguments(), resp)
	}
	uc.mu.Lock()
	command := uc.active[user.ID]
	uc.mu.Unlock()
	if command == nil {
		return ErrBadRequest
	}
	return uc.run(ctx, command, user, msg.Text, resp)
}

func (uc *Commands) run(ctx context.Context, command Command, user model.User, args string, resp *tgbotapi.MessageConfig) error {
	keepActive, err := command.Run(ctx, user, args, resp)
	if err != nil {
		command.Reset(user.ID)
		keepActive = false
	}
	uc.mu.Lock()
	if keepActive {
		uc.active[user.ID] = command
	} else {
		delete(uc.active, user.ID)
	}
	uc.mu.Unlock()
	return err
}

func (uc *Commands) clearActive(userID int64) {
	uc.mu.Lock()
	command := uc.active[userID]
	delete(uc.active, userID)
	uc.mu.Unlock()
	if command != nil {
		command.Reset(userID)
	}
}

func everyone() mapset.Set[model.UserRole] {
	return mapset.NewSet(model.RoleAdmin, model.RoleUser)
}

func adminsOnly() mapset.Set[model.UserRole] {
	return mapset.NewSet(model.RoleAdmin)
}
