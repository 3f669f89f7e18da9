// Package mix splits signed-up players into two squads and spectators.
// The split is randomized but role aware: players who declared a lane are
// scattered across both teams before the free pool fills the rest.
package mix

import (
	"math/rand"

	"github.com/AVick23/ML-Manager/internal/domain"
)

// TeamSize caps each squad.
const TeamSize = 5

type Player struct {
	UserID int64
	Name   string
	Role   domain.Role
}

type Result struct {
	Red        []Player
	Blue       []Player
	Spectators []Player
}

// Seated returns the number of players placed on either team.
func (r Result) Seated() int {
	return len(r.Red) + len(r.Blue)
}

// Split assigns players to red/blue squads of at most TeamSize each,
// everyone left over becomes a spectator. Role buckets and the free pool
// are shuffled with the provided source, then role-tagged players are
// dealt alternately to both sides so no lane stacks on one team. Fewer
// than two players yields an empty result.
func Split(players []Player, rnd *rand.Rand) Result {
	if len(players) < 2 {
		return Result{}
	}

	buckets := make(map[domain.Role][]Player)
	var free []Player
	for _, p := range players {
		if p.Role == domain.RoleNone {
			free = append(free, p)
			continue
		}
		buckets[p.Role] = append(buckets[p.Role], p)
	}
	for _, role := range domain.Roles() {
		shuffle(buckets[role], rnd)
	}
	shuffle(free, rnd)

	var res Result
	side := rnd.Intn(2)
	for _, role := range domain.Roles() {
		for _, p := range buckets[role] {
			side = seat(&res, p, side)
		}
	}
	for _, p := range free {
		side = seat(&res, p, side)
	}
	return res
}

// seat places p on the preferred side, falls back to the other side when
// full, and benches the player when both squads are complete. Returns the
// side the next player should try first.
func seat(res *Result, p Player, side int) int {
	teams := [2]*[]Player{&res.Red, &res.Blue}
	for i := 0; i < 2; i++ {
		team := teams[(side+i)%2]
		if len(*team) >= TeamSize {
			continue
		}
		*team = append(*team, p)
		return (side + i + 1) % 2
	}
	res.Spectators = append(res.Spectators, p)
	return side
}

func shuffle(players []Player, rnd *rand.Rand) {
	rnd.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})
}
