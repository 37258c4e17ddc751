package pairing

import (
	"context"
	"math/rand"
	"testing"

	"github.com/pairforge/swiss-engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, seed int64) *SwissGenerator {
	t.Helper()
	g, err := NewSwissGenerator(models.DefaultPairingConfig(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return g
}

func poolOf(n int) []*models.Participant {
	out := make([]*models.Participant, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &models.Participant{
			ID:           string(rune('a' + i)),
			TournamentID: "t1",
			Active:       true,
		})
	}
	return out
}

func assertEveryoneAppearsOnce(t *testing.T, matches []*models.TournamentMatch, pool []*models.Participant) {
	t.Helper()
	seen := make(map[string]int)
	for _, m := range matches {
		seen[m.Player1ID]++
		if m.Player2ID != nil {
			seen[*m.Player2ID]++
		}
	}
	for _, p := range pool {
		assert.Equal(t, 1, seen[p.ID], p.ID)
	}
}

func TestNewSwissGenerator_RejectsInvalidConfig(t *testing.T) {
	_, err := NewSwissGenerator(models.PairingConfig{Method: "elimination"}, nil)
	assert.ErrorIs(t, err, models.ErrPairingMethodInvalid)

	cfg := models.DefaultPairingConfig()
	cfg.SortBy = models.SortByStat
	cfg.StatKey = "kills"
	_, err = NewSwissGenerator(cfg, nil)
	assert.ErrorIs(t, err, models.ErrPairingSortByInvalid)
}

func TestGeneratePairings_EmptyField(t *testing.T) {
	g := newTestGenerator(t, 1)
	matches, err := g.GeneratePairings(context.Background(), GeneratePairingsParams{RoundNumber: 1})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestGeneratePairings_SingleParticipantGetsBye(t *testing.T) {
	g := newTestGenerator(t, 1)
	matches, err := g.GeneratePairings(context.Background(), GeneratePairingsParams{
		TournamentID: "t1",
		RoundNumber:  1,
		Participants: poolOf(1),
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.True(t, matches[0].IsBye())
	assert.Equal(t, models.ResultBye, matches[0].Result)
	assert.Nil(t, matches[0].TableNumber)
}

func TestGeneratePairings_FourParticipantsRoundOne(t *testing.T) {
	g := newTestGenerator(t, 42)
	pool := poolOf(4)
	matches, err := g.GeneratePairings(context.Background(), GeneratePairingsParams{
		TournamentID: "t1",
		RoundNumber:  1,
		Participants: pool,
	})
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assertEveryoneAppearsOnce(t, matches, pool)
	for _, m := range matches {
		assert.False(t, m.IsBye())
		assert.Equal(t, models.ResultNotPlayed, m.Result)
		assert.Equal(t, "1", m.Round)
		assert.NotEmpty(t, m.ID)
	}
}

func TestGeneratePairings_FiveParticipantsOneByeAndTables(t *testing.T) {
	g := newTestGenerator(t, 7)
	pool := poolOf(5)
	matches, err := g.GeneratePairings(context.Background(), GeneratePairingsParams{
		TournamentID: "t1",
		RoundNumber:  1,
		Participants: pool,
	})
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assertEveryoneAppearsOnce(t, matches, pool)

	var byes, tables []int
	for i, m := range matches {
		if m.IsBye() {
			byes = append(byes, i)
			assert.Equal(t, models.ResultBye, m.Result)
			assert.Nil(t, m.Player2ID)
			assert.Nil(t, m.TableNumber)
		} else {
			require.NotNil(t, m.TableNumber)
			tables = append(tables, *m.TableNumber)
		}
	}
	require.Len(t, byes, 1)
	// The bye comes after all regular pairings.
	assert.Equal(t, len(matches)-1, byes[0])
	assert.ElementsMatch(t, []int{1, 2}, tables)
}

func TestGeneratePairings_LaterRoundsSortByPoints(t *testing.T) {
	g := newTestGenerator(t, 3)
	pool := poolOf(4)
	standings := []*models.Standing{
		{ParticipantID: "a", Points: 3},
		{ParticipantID: "b", Points: 0},
		{ParticipantID: "c", Points: 3},
		{ParticipantID: "d", Points: 0},
	}

	matches, err := g.GeneratePairings(context.Background(), GeneratePairingsParams{
		TournamentID:     "t1",
		RoundNumber:      2,
		Participants:     pool,
		Standings:        standings,
		PreviousMatchups: NewMatchupSet(),
	})
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// Leaders pair together, trailers pair together.
	first := matches[0]
	assert.Equal(t, "a", first.Player1ID)
	assert.Equal(t, "c", *first.Player2ID)
	second := matches[1]
	assert.Equal(t, "b", second.Player1ID)
	assert.Equal(t, "d", *second.Player2ID)
}

func TestGeneratePairings_AvoidsRematches(t *testing.T) {
	g := newTestGenerator(t, 3)
	pool := poolOf(4)
	standings := []*models.Standing{
		{ParticipantID: "a", Points: 3},
		{ParticipantID: "b", Points: 0},
		{ParticipantID: "c", Points: 3},
		{ParticipantID: "d", Points: 0},
	}
	previous := NewMatchupSet()
	previous.Add("a", "c")
	previous.Add("b", "d")

	matches, err := g.GeneratePairings(context.Background(), GeneratePairingsParams{
		TournamentID:     "t1",
		RoundNumber:      2,
		Participants:     pool,
		Standings:        standings,
		PreviousMatchups: previous,
	})
	require.NoError(t, err)
	require.Len(t, matches, 2)

	for _, m := range matches {
		assert.False(t, previous.Played(m.Player1ID, *m.Player2ID),
			"%s vs %s is a rematch", m.Player1ID, *m.Player2ID)
	}
}

func TestGeneratePairings_RematchFallbackWhenUnavoidable(t *testing.T) {
	g := newTestGenerator(t, 3)
	pool := poolOf(2)
	previous := NewMatchupSet()
	previous.Add("a", "b")

	matches, err := g.GeneratePairings(context.Background(), GeneratePairingsParams{
		TournamentID:     "t1",
		RoundNumber:      2,
		Participants:     pool,
		Standings:        []*models.Standing{{ParticipantID: "a", Points: 3}, {ParticipantID: "b", Points: 0}},
		PreviousMatchups: previous,
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "a", matches[0].Player1ID)
	assert.Equal(t, "b", *matches[0].Player2ID)
}

func TestGeneratePairings_ByeGoesToLowestRankedWithoutOne(t *testing.T) {
	g := newTestGenerator(t, 3)
	pool := poolOf(5)
	pool[4].ByeReceived = true // "e" already had one
	standings := []*models.Standing{
		{ParticipantID: "a", Points: 6},
		{ParticipantID: "b", Points: 4},
		{ParticipantID: "c", Points: 3},
		{ParticipantID: "d", Points: 1},
		{ParticipantID: "e", Points: 0, Byes: 1},
	}

	matches, err := g.GeneratePairings(context.Background(), GeneratePairingsParams{
		TournamentID:     "t1",
		RoundNumber:      2,
		Participants:     pool,
		Standings:        standings,
		PreviousMatchups: NewMatchupSet(),
	})
	require.NoError(t, err)

	bye := matches[len(matches)-1]
	require.True(t, bye.IsBye())
	// "e" is lowest but already had a bye; "d" is next from the bottom.
	assert.Equal(t, "d", bye.Player1ID)
}

func TestGeneratePairings_ByeFallbackWhenAllHadOne(t *testing.T) {
	g := newTestGenerator(t, 3)
	pool := poolOf(3)
	for _, p := range pool {
		p.ByeReceived = true
	}
	standings := []*models.Standing{
		{ParticipantID: "a", Points: 6, Byes: 1},
		{ParticipantID: "b", Points: 3, Byes: 1},
		{ParticipantID: "c", Points: 0, Byes: 1},
	}

	matches, err := g.GeneratePairings(context.Background(), GeneratePairingsParams{
		TournamentID:     "t1",
		RoundNumber:      4,
		Participants:     pool,
		Standings:        standings,
		PreviousMatchups: NewMatchupSet(),
	})
	require.NoError(t, err)

	bye := matches[len(matches)-1]
	require.True(t, bye.IsBye())
	assert.Equal(t, "c", bye.Player1ID)
}

func TestGeneratePairings_ByeRotationAcrossRounds(t *testing.T) {
	g := newTestGenerator(t, 99)
	pool := poolOf(5)

	byeCounts := make(map[string]int)
	matchups := NewMatchupSet()
	var standings []*models.Standing

	for round := 1; round <= 5; round++ {
		matches, err := g.GeneratePairings(context.Background(), GeneratePairingsParams{
			TournamentID:     "t1",
			RoundNumber:      round,
			Participants:     pool,
			Standings:        standings,
			PreviousMatchups: matchups,
		})
		require.NoError(t, err)

		byesThisRound := 0
		for _, m := range matches {
			if m.IsBye() {
				byesThisRound++
				byeCounts[m.Player1ID]++
				for _, p := range pool {
					if p.ID == m.Player1ID {
						p.ByeReceived = true
					}
				}
			} else {
				matchups.Add(m.Player1ID, *m.Player2ID)
			}
		}
		require.Equal(t, 1, byesThisRound, "round %d", round)

		standings = nil
		for _, p := range pool {
			s := models.NewStanding("t1", p.ID)
			standings = append(standings, s)
		}
	}

	// Five rounds, five participants: everyone got exactly one bye before
	// anyone got a second.
	for _, p := range pool {
		assert.Equal(t, 1, byeCounts[p.ID], p.ID)
	}
}

func TestGeneratePairings_InactiveParticipantsExcluded(t *testing.T) {
	g := newTestGenerator(t, 5)
	pool := poolOf(4)
	pool[3].Active = false

	matches, err := g.GeneratePairings(context.Background(), GeneratePairingsParams{
		TournamentID: "t1",
		RoundNumber:  1,
		Participants: pool,
	})
	require.NoError(t, err)

	// Three remain: one pair plus a bye.
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.NotEqual(t, "d", m.Player1ID)
		if m.Player2ID != nil {
			assert.NotEqual(t, "d", *m.Player2ID)
		}
	}
}

func TestBuildMatchupSet_ExcludesByes(t *testing.T) {
	b := "b"
	set := BuildMatchupSet([]*models.TournamentMatch{
		{Player1ID: "a", Player2ID: &b, Result: models.ResultPlayer1Win},
		{Player1ID: "c", Result: models.ResultBye},
	})

	assert.True(t, set.Played("a", "b"))
	assert.True(t, set.Played("b", "a"))
	assert.False(t, set.Played("c", "a"))
}
