package mix

import (
	"math/rand"
	"testing"

	"github.com/AVick23/ML-Manager/internal/domain"
	"github.com/stretchr/testify/require"
)

func makePlayers(n int, role domain.Role) []Player {
	players := make([]Player, 0, n)
	for i := 0; i < n; i++ {
		players = append(players, Player{
			UserID: int64(i + 1),
			Name:   "player",
			Role:   role,
		})
	}
	return players
}

func TestSplitTooFewPlayers(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	require.Equal(t, Result{}, Split(nil, rnd))
	require.Equal(t, Result{}, Split(makePlayers(1, domain.RoleNone), rnd))
}

func TestSplitExactCover(t *testing.T) {
	players := makePlayers(12, domain.RoleNone)
	rnd := rand.New(rand.NewSource(42))

	result := Split(players, rnd)

	require.Len(t, result.Red, TeamSize)
	require.Len(t, result.Blue, TeamSize)
	require.Len(t, result.Spectators, 2)

	seen := make(map[int64]int)
	for _, p := range result.Red {
		seen[p.UserID]++
	}
	for _, p := range result.Blue {
		seen[p.UserID]++
	}
	for _, p := range result.Spectators {
		seen[p.UserID]++
	}
	require.Len(t, seen, len(players))
	for id, count := range seen {
		require.Equalf(t, 1, count, "player %d seated %d times", id, count)
	}
}

func TestSplitSmallGroup(t *testing.T) {
	players := makePlayers(4, domain.RoleNone)
	rnd := rand.New(rand.NewSource(7))

	result := Split(players, rnd)

	require.Equal(t, 4, result.Seated())
	require.Empty(t, result.Spectators)
	require.Len(t, result.Red, 2)
	require.Len(t, result.Blue, 2)
}

func TestSplitScattersRolePairs(t *testing.T) {
	players := []Player{
		{UserID: 1, Role: domain.RoleMid},
		{UserID: 2, Role: domain.RoleMid},
		{UserID: 3, Role: domain.RoleJungle},
		{UserID: 4, Role: domain.RoleJungle},
	}

	for seed := int64(0); seed < 20; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		result := Split(players, rnd)

		redRoles := make(map[domain.Role]int)
		for _, p := range result.Red {
			redRoles[p.Role]++
		}
		for role, count := range redRoles {
			require.Equalf(t, 1, count, "seed %d stacked %s on one team", seed, role)
		}
	}
}

func TestSplitDeterministicForSeed(t *testing.T) {
	players := makePlayers(10, domain.RoleNone)

	first := Split(players, rand.New(rand.NewSource(3)))
	second := Split(players, rand.New(rand.NewSource(3)))

	require.Equal(t, first, second)
}
