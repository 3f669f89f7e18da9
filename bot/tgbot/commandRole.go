package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/AVick23/ML-Manager/bot/botstorage"
	"github.com/AVick23/ML-Manager/bot/model"
	"github.com/AVick23/ML-Manager/internal/domain"
	"github.com/AVick23/ML-Manager/internal/normalize"
	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// RoleCommand registers the user's preferred lane, optionally with the
// in-game account id. One registration per user, repeating replaces it.
type RoleCommand struct {
	botStorage botstorage.BotStorage
}

func (c *RoleCommand) Reset(int64) {}

func (c *RoleCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) (bool, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return false, errors.New("использование: /role <" + roleTokens() + "> [ID ML]")
	}
	role, ok := domain.ParseRole(normalize.Name(fields[0]))
	if !ok {
		return false, errors.New("неизвестная роль, доступны: " + roleTokens())
	}
	reg := model.Registration{
		UserID: user.ID,
		Role:   role,
	}
	if len(fields) > 1 {
		mlID, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return false, errors.New("ID ML должен быть числом")
		}
		reg.MlID = mlID
	}
	if err := c.botStorage.SaveRegistration(ctx, reg); err != nil {
		return false, err
	}
	resp.Text = "роль сохранена: " + string(role)
	return false, nil
}

func roleTokens() string {
	roles := domain.Roles()
	tokens := make([]string, 0, len(roles))
	for _, role := range roles {
		tokens = append(tokens, string(role))
	}
	return strings.Join(tokens, "/")
}

func (c *RoleCommand) Help() string {
	return "выбрать роль: /role <" + roleTokens() + "> [ID ML]"
}

func (c *RoleCommand) Permission() mapset.Set[model.UserRole] {
	return everyone()
}

func (c *RoleCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone()
}
