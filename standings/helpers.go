package standings

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pairforge/swiss-engine/models"
)

func standingIndex(standings []*models.Standing) map[string]*models.Standing {
	idx := make(map[string]*models.Standing, len(standings))
	for _, s := range standings {
		idx[s.ParticipantID] = s
	}
	return idx
}

// completedMatches filters to a participant's decided, non-bye matches.
func completedMatches(participantID string, matches []*models.TournamentMatch) []*models.TournamentMatch {
	var out []*models.TournamentMatch
	for _, m := range matches {
		if !m.Result.Decided() || m.IsBye() {
			continue
		}
		if m.Involves(participantID) {
			out = append(out, m)
		}
	}
	return out
}

// opponentPoints collects the current total points of each opponent the
// participant has faced, one entry per completed non-bye match. Opponents
// absent from the standings count as 0.
func opponentPoints(participantID string, matches []*models.TournamentMatch, idx map[string]*models.Standing) []float64 {
	var pts []float64
	for _, m := range completedMatches(participantID, matches) {
		opp := m.OpponentID(participantID)
		if s, ok := idx[opp]; ok {
			pts = append(pts, s.Points)
		} else {
			pts = append(pts, 0)
		}
	}
	return pts
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// medianSum trims the single lowest and single highest value before summing.
// Fewer than 3 values fall back to the plain sum.
func medianSum(values []float64) float64 {
	if len(values) < 3 {
		return sum(values)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sum(sorted[1 : len(sorted)-1])
}

// pointsForPerspective maps one side's view of a decided result to its fixed
// weight.
func pointsForPerspective(p models.Perspective, weights models.ScoreWeights) float64 {
	switch p {
	case models.PerspectiveWin:
		return weights.Win
	case models.PerspectiveDraw:
		return weights.Draw
	case models.PerspectiveLoss:
		return weights.Loss
	case models.PerspectiveBye:
		return weights.Bye
	}
	return 0
}

// progressiveScore is the sum of the participant's running point total taken
// after each round, so early wins weigh more than late ones.
func progressiveScore(participantID string, matches []*models.TournamentMatch, weights models.ScoreWeights) float64 {
	perRound := make(map[string]float64)
	var rounds []string
	for _, m := range matches {
		if !m.Result.Decided() || !m.Involves(participantID) {
			continue
		}
		if _, seen := perRound[m.Round]; !seen {
			rounds = append(rounds, m.Round)
		}
		perRound[m.Round] += pointsForPerspective(m.Result.PerspectiveFor(m.Player1ID == participantID), weights)
	}
	sort.Slice(rounds, func(i, j int) bool {
		return compareRounds(rounds[i], rounds[j]) < 0
	})

	var running, progressive float64
	for _, r := range rounds {
		running += perRound[r]
		progressive += running
	}
	return progressive
}

// compareRounds orders round identifiers naturally: numeric identifiers by
// value ("2" before "10"), everything else lexicographically.
func compareRounds(a, b string) int {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	if aErr == nil && bErr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
