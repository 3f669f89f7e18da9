// Package notify holds the outbound delivery contract and the text
// composition for group call-ups.
package notify

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Gateway delivers one rendered message to a chat. Transport errors are
// recoverable for callers: state changes stay authoritative even when
// delivery fails.
type Gateway interface {
	Send(chatID int64, text string) error
}

// DefaultChunkSize keeps call-up messages under the transport's length
// limit.
const DefaultChunkSize = 10

var ErrNoChannel = errors.New("no delivery channel configured")

// ChannelResolver picks the target chat at call time: the configured
// group id wins, otherwise the fallback is consulted. The fallback is a
// closure so the last-seen admin group lives with the bot, not in a
// package variable.
type ChannelResolver struct {
	configured int64
	fallback   func() int64
}

func NewChannelResolver(configured int64, fallback func() int64) ChannelResolver {
	return ChannelResolver{
		configured: configured,
		fallback:   fallback,
	}
}

func (r ChannelResolver) Resolve() (int64, error) {
	if r.configured != 0 {
		return r.configured, nil
	}
	if r.fallback != nil {
		if id := r.fallback(); id != 0 {
			return id, nil
		}
	}
	return 0, ErrNoChannel
}

type Recipient struct {
	Mention string
	MlID    string
}

// ComposeCallup renders the start-of-game call-up, split into chunks of
// at most chunkSize recipients. The header and sign-off go only into the
// first chunk.
func ComposeCallup(title string, startsAt time.Time, recipients []Recipient, chunkSize int) []string {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	var messages []string
	for start := 0; start < len(recipients); start += chunkSize {
		end := start + chunkSize
		if end > len(recipients) {
			end = len(recipients)
		}
		var buf strings.Builder
		if start == 0 {
			buf.WriteString("📢 ИГРА НАЧИНАЕТСЯ!\n\n")
			buf.WriteString("🎯 ")
			buf.WriteString(title)
			buf.WriteString("\n🕒 ")
			buf.WriteString(startsAt.Format("02.01.2006 15:04"))
			buf.WriteString("\n\n⚔️ Призыв игроков:\n")
		}
		for _, r := range recipients[start:end] {
			buf.WriteString("• ")
			buf.WriteString(r.Mention)
			if r.MlID != "" {
				buf.WriteString(" (ID ML: ")
				buf.WriteString(r.MlID)
				buf.WriteString(")")
			}
			buf.WriteString("\n")
		}
		if start == 0 {
			buf.WriteString("\nГоу ребята!")
		}
		messages = append(messages, buf.String())
	}
	return messages
}

// ComposeNewEvent announces a freshly created event.
func ComposeNewEvent(title string, startsAt time.Time) string {
	var buf strings.Builder
	buf.WriteString("📢 НОВАЯ ИГРА!\n\n")
	buf.WriteString("🎯 ")
	buf.WriteString(title)
	buf.WriteString("\n🗓 ")
	buf.WriteString(startsAt.Format("02.01.2006 15:04"))
	buf.WriteString("\n\nОткройте бота, чтобы записаться!")
	return buf.String()
}

// ComposeJoin announces a new sign-up with the updated headcount.
func ComposeJoin(title, name string, count int) string {
	return fmt.Sprintf("✅ %s записался на «%s». Нас уже %d!", name, title, count)
}

// ComposeLeave announces a withdrawn sign-up.
func ComposeLeave(title, name string, count int) string {
	return fmt.Sprintf("🚪 %s выписался из «%s». Осталось записавшихся: %d.", name, title, count)
}

// ComposeLineup announces the frozen teams.
func ComposeLineup(title string, red, blue, spectators []string) string {
	var buf strings.Builder
	buf.WriteString("🎲 СОСТАВЫ: ")
	buf.WriteString(title)
	buf.WriteString("\n\n🔴 Команда RED:\n")
	writeNames(&buf, red)
	buf.WriteString("\n🔵 Команда BLUE:\n")
	writeNames(&buf, blue)
	if len(spectators) > 0 {
		buf.WriteString("\n👀 Зрители:\n")
		writeNames(&buf, spectators)
	}
	buf.WriteString("\n🏆 Удачной игры!")
	return buf.String()
}

func writeNames(buf *strings.Builder, names []string) {
	for _, name := range names {
		buf.WriteString("• ")
		buf.WriteString(name)
		buf.WriteString("\n")
	}
}
