package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComposeCallupChunks(t *testing.T) {
	recipients := make([]Recipient, 0, 22)
	for i := 0; i < 22; i++ {
		recipients = append(recipients, Recipient{Mention: "@player"})
	}
	startsAt := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

	messages := ComposeCallup("Вечерний замес", startsAt, recipients, 10)

	require.Len(t, messages, 3)
	require.Contains(t, messages[0], "ИГРА НАЧИНАЕТСЯ")
	require.Contains(t, messages[0], "Вечерний замес")
	require.Contains(t, messages[0], "01.05.2024 20:00")
	require.NotContains(t, messages[1], "ИГРА НАЧИНАЕТСЯ")
	require.NotContains(t, messages[2], "ИГРА НАЧИНАЕТСЯ")

	require.Equal(t, 10, strings.Count(messages[0], "@player"))
	require.Equal(t, 10, strings.Count(messages[1], "@player"))
	require.Equal(t, 2, strings.Count(messages[2], "@player"))
}

func TestComposeCallupEmpty(t *testing.T) {
	messages := ComposeCallup("t", time.Now(), nil, 10)
	require.Empty(t, messages)
}

func TestComposeCallupMlID(t *testing.T) {
	messages := ComposeCallup("t", time.Now(), []Recipient{
		{Mention: "@one", MlID: "123456"},
		{Mention: "@two"},
	}, 10)

	require.Len(t, messages, 1)
	require.Contains(t, messages[0], "@one (ID ML: 123456)")
	require.Contains(t, messages[0], "@two\n")
	require.NotContains(t, messages[0], "@two (")
}

func TestChannelResolver(t *testing.T) {
	t.Run("configured wins", func(t *testing.T) {
		r := NewChannelResolver(-100, func() int64 { return -200 })
		id, err := r.Resolve()
		require.NoError(t, err)
		require.EqualValues(t, -100, id)
	})
	t.Run("fallback", func(t *testing.T) {
		r := NewChannelResolver(0, func() int64 { return -200 })
		id, err := r.Resolve()
		require.NoError(t, err)
		require.EqualValues(t, -200, id)
	})
	t.Run("no channel", func(t *testing.T) {
		r := NewChannelResolver(0, func() int64 { return 0 })
		_, err := r.Resolve()
		require.ErrorIs(t, err, ErrNoChannel)
	})
}
