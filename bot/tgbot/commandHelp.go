package tgbot

import (
	"context"
	"sort"
	"strings"

	"github.com/AVick23/ML-Manager/bot/model"
	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Reset(int64) {}

func (c *HelpCommand) Run(_ context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) (bool, error) {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		if name == "start" {
			continue
		}
		if c.commands[name].Visibility().Contains(user.Role) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	var buf strings.Builder
	buf.WriteString("Доступные команды:\n")
	for _, name := range names {
		buf.WriteString("/")
		buf.WriteString(name)
		buf.WriteString(" - ")
		buf.WriteString(c.commands[name].Help())
		buf.WriteString("\n")
	}
	resp.Text = buf.String()
	return false, nil
}

func (c *HelpCommand) Help() string {
	return "показать этот список"
}

func (c *HelpCommand) Permission() mapset.Set[model.UserRole] {
	return everyone()
}

func (c *HelpCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone()
}
