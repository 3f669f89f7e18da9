package tgbot

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/AVick23/ML-Manager/bot/botstorage"
	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/mix"
	"github.com/AVick23/ML-Manager/internal/service"
	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MixCommand shuffles the sign-up list into a lineup preview. It can be
// repeated until the admin likes the result and runs /fix.
type MixCommand struct {
	eventService *service.EventService
	botStorage   botstorage.BotStorage
	previews     *previews
	rnd          *rand.Rand
}

func (c *MixCommand) Reset(int64) {}

func (c *MixCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) (bool, error) {
	eventID, err := parseEventID(args)
	if err != nil {
		return false, err
	}
	players, err := c.collectPlayers(ctx, eventID)
	if err != nil {
		return false, err
	}
	result := mix.Split(players, c.rnd)
	if result.Seated() < 2 {
		return false, errors.New("слишком мало игроков для микса")
	}
	c.previews.Set(eventID, result)
	resp.Text = formatMixResult(result) + "\nПовторите /mix или зафиксируйте: /fix " + strings.TrimSpace(args)
	return false, nil
}

func (c *MixCommand) collectPlayers(ctx context.Context, eventID int64) ([]mix.Player, error) {
	participants, err := c.eventService.Participants(ctx, eventID)
	if err != nil {
		return nil, err
	}
	userIDs := make([]int64, 0, len(participants))
	for _, p := range participants {
		userIDs = append(userIDs, p.UserID)
	}
	users, err := c.botStorage.GetUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	regs, err := c.botStorage.ListRegistrations(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	roles := make(map[int64]model.Registration, len(regs))
	for _, reg := range regs {
		roles[reg.UserID] = reg
	}
	players := make([]mix.Player, 0, len(users))
	for _, u := range users {
		players = append(players, mix.Player{
			UserID: u.ID,
			Name:   u.DisplayName(),
			Role:   roles[u.ID].Role,
		})
	}
	return players, nil
}

func formatMixResult(result mix.Result) string {
	var buf strings.Builder
	buf.WriteString("🎲 Вариант составов:\n\n🔴 RED:\n")
	writePlayers(&buf, result.Red)
	buf.WriteString("\n🔵 BLUE:\n")
	writePlayers(&buf, result.Blue)
	if len(result.Spectators) > 0 {
		buf.WriteString("\n👀 Зрители:\n")
		writePlayers(&buf, result.Spectators)
	}
	return buf.String()
}

func writePlayers(buf *strings.Builder, players []mix.Player) {
	for _, p := range players {
		buf.WriteString("• ")
		buf.WriteString(p.Name)
		if p.Role != "" {
			buf.WriteString(" [")
			buf.WriteString(string(p.Role))
			buf.WriteString("]")
		}
		buf.WriteString("\n")
	}
}

func (c *MixCommand) Help() string {
	return "перемешать составы: /mix <номер>"
}

func (c *MixCommand) Permission() mapset.Set[model.UserRole] {
	return adminsOnly()
}

func (c *MixCommand) Visibility() mapset.Set[model.UserRole] {
	return adminsOnly()
}
