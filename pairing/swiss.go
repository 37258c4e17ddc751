package pairing

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pairforge/swiss-engine/models"
)

// SwissGenerator pairs a round the Swiss way: participants sorted by current
// score (shuffled in round one), paired greedily while avoiding repeat
// opponents, with a single bye rotated through the field when the count is
// odd.
//
// The greedy matcher only looks forward from each unpaired participant. When
// score adjacency and rematch avoidance conflict it accepts a rematch rather
// than reshuffling the pool, so a rematch-free pairing that would require a
// non-adjacent swap can be missed.
type SwissGenerator struct {
	cfg models.PairingConfig
	rng *rand.Rand
}

// NewSwissGenerator validates the pairing configuration up front. The random
// source drives round-one shuffling and the random bye policy; pass a seeded
// source for reproducible pairings, or nil for a time-seeded one.
func NewSwissGenerator(cfg models.PairingConfig, rng *rand.Rand) (*SwissGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("swiss generator config: %w", err)
	}
	if cfg.SortBy == models.SortByStat {
		return nil, fmt.Errorf("%w: swiss generator sorts by points or random", models.ErrPairingSortByInvalid)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SwissGenerator{cfg: cfg, rng: rng}, nil
}

func (g *SwissGenerator) GetName() string {
	return "Swiss"
}

func (g *SwissGenerator) GeneratePairings(ctx context.Context, params GeneratePairingsParams) ([]*models.TournamentMatch, error) {
	pool := activeParticipants(params.Participants)
	if len(pool) == 0 {
		return []*models.TournamentMatch{}, nil
	}

	g.orderPool(pool, params)

	var byeMatch *models.TournamentMatch
	if len(pool)%2 != 0 {
		var byePlayer *models.Participant
		byePlayer, pool = g.selectBye(pool, params.Standings)
		byeMatch = &models.TournamentMatch{
			ID:           uuid.NewString(),
			TournamentID: params.TournamentID,
			Round:        strconv.Itoa(params.RoundNumber),
			Player1ID:    byePlayer.ID,
			Result:       models.ResultBye,
		}
	}

	matches := g.pairPool(pool, params)

	if byeMatch != nil {
		matches = append(matches, byeMatch)
	}

	table := 0
	for _, m := range matches {
		if m.IsBye() {
			continue
		}
		table++
		t := table
		m.TableNumber = &t
	}
	return matches, nil
}

func activeParticipants(participants []*models.Participant) []*models.Participant {
	pool := make([]*models.Participant, 0, len(participants))
	for _, p := range participants {
		if p.Active {
			pool = append(pool, p)
		}
	}
	return pool
}

// orderPool sorts the pool by the configured criterion. Round one, or any
// round without standings, has no scores to sort by and shuffles instead.
func (g *SwissGenerator) orderPool(pool []*models.Participant, params GeneratePairingsParams) {
	if g.cfg.SortBy == models.SortByRandom || params.RoundNumber <= 1 || len(params.Standings) == 0 {
		g.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		return
	}

	points := make(map[string]float64, len(params.Standings))
	for _, s := range params.Standings {
		points[s.ParticipantID] = s.Points
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return points[pool[i].ID] > points[pool[j].ID]
	})
}

// selectBye picks the bye recipient and returns the remaining pool. The
// lowest-ranked policy scans from the bottom for someone still owed a bye;
// when everyone has had theirs, the strictly lowest-ranked takes another.
func (g *SwissGenerator) selectBye(pool []*models.Participant, standings []*models.Standing) (*models.Participant, []*models.Participant) {
	byeCounts := make(map[string]int, len(standings))
	for _, s := range standings {
		byeCounts[s.ParticipantID] = s.Byes
	}
	eligible := func(p *models.Participant) bool {
		if g.cfg.MaxByesPerPlayer > 1 {
			return byeCounts[p.ID] < g.cfg.MaxByesPerPlayer
		}
		return !p.ByeReceived
	}

	selected := len(pool) - 1
	switch g.cfg.ByePolicy {
	case models.ByeRandom:
		var candidates []int
		for i, p := range pool {
			if eligible(p) {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) > 0 {
			selected = candidates[g.rng.Intn(len(candidates))]
		} else {
			selected = g.rng.Intn(len(pool))
		}
	default:
		for i := len(pool) - 1; i >= 0; i-- {
			if eligible(pool[i]) {
				selected = i
				break
			}
		}
	}

	byePlayer := pool[selected]
	remaining := make([]*models.Participant, 0, len(pool)-1)
	remaining = append(remaining, pool[:selected]...)
	remaining = append(remaining, pool[selected+1:]...)
	return byePlayer, remaining
}

// pairPool walks the score-ordered pool and pairs each unpaired participant
// with the first later candidate they have not met. If only rematches
// remain, the nearest candidate is taken anyway so nobody is left unpaired.
func (g *SwissGenerator) pairPool(pool []*models.Participant, params GeneratePairingsParams) []*models.TournamentMatch {
	matches := make([]*models.TournamentMatch, 0, len(pool)/2)
	paired := make([]bool, len(pool))

	for i := 0; i < len(pool); i++ {
		if paired[i] {
			continue
		}
		opponent := -1
		if g.cfg.AvoidRematch {
			for j := i + 1; j < len(pool); j++ {
				if !paired[j] && !params.PreviousMatchups.Played(pool[i].ID, pool[j].ID) {
					opponent = j
					break
				}
			}
		}
		if opponent == -1 {
			for j := i + 1; j < len(pool); j++ {
				if !paired[j] {
					opponent = j
					break
				}
			}
		}
		if opponent == -1 {
			break
		}

		paired[i], paired[opponent] = true, true
		p2 := pool[opponent].ID
		matches = append(matches, &models.TournamentMatch{
			ID:           uuid.NewString(),
			TournamentID: params.TournamentID,
			Round:        strconv.Itoa(params.RoundNumber),
			Player1ID:    pool[i].ID,
			Player2ID:    &p2,
			Result:       models.ResultNotPlayed,
		})
	}
	return matches
}
