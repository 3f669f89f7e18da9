package tgbot

import (
	"errors"

	"github.com/AVick23/ML-Manager/internal/service"
)

var userFacing = map[error]string{
	service.ErrEventNotFound:       "событие не найдено",
	service.ErrAlreadyCompleted:    "событие уже завершено",
	service.ErrEventClosed:         "событие завершено, запись закрыта",
	service.ErrAlreadyJoined:       "вы уже записаны на это событие",
	service.ErrNotJoined:           "вы не записаны на это событие",
	service.ErrLineupFixed:         "составы уже зафиксированы",
	service.ErrNoLineup:            "составы ещё не зафиксированы",
	service.ErrTooFewPlayers:       "слишком мало игроков",
	service.ErrParticipantNotFound: "участник матча не найден",
	service.ErrInvalidScore:        "оценка должна быть от 1 до 5",
	service.ErrSelfRating:          "нельзя оценивать самого себя",
	service.ErrDuplicateRating:     "вы уже оценили этого игрока",
	service.ErrPermissionDenied:    "команда доступна только администраторам",
	service.ErrTitleTooShort:       "название слишком короткое",
	service.ErrStartInPast:         "время начала уже прошло",
}

// reply translates service errors into chat answers. Unknown errors
// pass through unchanged so the caller can log them.
func reply(err error) error {
	for sentinel, text := range userFacing {
		if errors.Is(err, sentinel) {
			return errors.New(text)
		}
	}
	return err
}
