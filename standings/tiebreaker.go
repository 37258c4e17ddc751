package standings

import "github.com/pairforge/swiss-engine/models"

// TiebreakerCalculator evaluates an arbitrary, profile-configured set of
// tiebreaker metrics for one participant. Unlike Calculator it is not tied
// to the four standing-level fields: stat-based metrics aggregate any named
// per-match stat. Missing data never errors; every metric degrades to 0.
type TiebreakerCalculator interface {
	Calculate(participantID string, matches []*models.TournamentMatch, standings []*models.Standing, defs []models.TiebreakerDefinition) map[string]float64
}

type tiebreakerCalculator struct {
	weights models.ScoreWeights
}

// NewTiebreakerCalculator builds a calculator using the given score weights
// for the metrics that need per-round point totals (progressive score).
func NewTiebreakerCalculator(weights models.ScoreWeights) TiebreakerCalculator {
	return &tiebreakerCalculator{weights: weights}
}

func (c *tiebreakerCalculator) Calculate(participantID string, matches []*models.TournamentMatch, standings []*models.Standing, defs []models.TiebreakerDefinition) map[string]float64 {
	out := make(map[string]float64, len(defs))
	idx := standingIndex(standings)

	for _, def := range defs {
		value := c.compute(def, participantID, matches, idx)
		if def.MinValue != nil && value < *def.MinValue {
			value = *def.MinValue
		}
		out[def.Key] = value
	}
	return out
}

func (c *tiebreakerCalculator) compute(def models.TiebreakerDefinition, participantID string, matches []*models.TournamentMatch, idx map[string]*models.Standing) float64 {
	switch def.Type {
	case models.TiebreakerBuchholz:
		return sum(opponentPoints(participantID, matches, idx))
	case models.TiebreakerMedianBuchholz:
		return medianSum(opponentPoints(participantID, matches, idx))
	case models.TiebreakerProgressive:
		return progressiveScore(participantID, matches, c.weights)
	case models.TiebreakerOpponentWinPercentage:
		return opponentWinPercentage(participantID, matches, idx)
	case models.TiebreakerStrengthOfSchedule:
		return strengthOfSchedule(participantID, matches, idx)
	case models.TiebreakerMarginOfVictory:
		return marginOfVictory(participantID, matches)
	case models.TiebreakerStatSum:
		return statSum(participantID, matches, def.StatName)
	case models.TiebreakerStatDiff:
		return statDiff(participantID, matches, def.StatName)
	case models.TiebreakerStatAverage:
		return statAverage(participantID, matches, def.StatName)
	case models.TiebreakerStatMax:
		return statMax(participantID, matches, def.StatName)
	}
	return 0
}

// strengthOfSchedule is the plain mean of opponents' points, one entry per
// completed non-bye match, with no trimming.
func strengthOfSchedule(participantID string, matches []*models.TournamentMatch, idx map[string]*models.Standing) float64 {
	pts := opponentPoints(participantID, matches, idx)
	if len(pts) == 0 {
		return 0
	}
	return sum(pts) / float64(len(pts))
}

// marginOfVictory sums positive score margins only. Losses and draws
// contribute nothing rather than pulling the total negative.
func marginOfVictory(participantID string, matches []*models.TournamentMatch) float64 {
	var total float64
	for _, m := range matches {
		if !m.Involves(participantID) {
			continue
		}
		own, opp, ok := m.SideScores(participantID)
		if !ok {
			continue
		}
		if margin := own - opp; margin > 0 {
			total += margin
		}
	}
	return total
}

// ownStatValues collects the participant's recorded values for one stat
// across all their matches, byes included. Matches without the stat are
// skipped.
func ownStatValues(participantID string, matches []*models.TournamentMatch, stat string) []float64 {
	var values []float64
	for _, m := range matches {
		own, _ := m.SideStats(participantID)
		if own == nil {
			continue
		}
		if v, ok := own[stat]; ok {
			values = append(values, v)
		}
	}
	return values
}

func statSum(participantID string, matches []*models.TournamentMatch, stat string) float64 {
	return sum(ownStatValues(participantID, matches, stat))
}

func statDiff(participantID string, matches []*models.TournamentMatch, stat string) float64 {
	var total float64
	for _, m := range matches {
		own, opp := m.SideStats(participantID)
		if own == nil {
			continue
		}
		v, ok := own[stat]
		if !ok {
			continue
		}
		total += v - opp[stat]
	}
	return total
}

func statAverage(participantID string, matches []*models.TournamentMatch, stat string) float64 {
	values := ownStatValues(participantID, matches, stat)
	if len(values) == 0 {
		return 0
	}
	return sum(values) / float64(len(values))
}

func statMax(participantID string, matches []*models.TournamentMatch, stat string) float64 {
	var max float64
	for _, v := range ownStatValues(participantID, matches, stat) {
		if v > max {
			max = v
		}
	}
	return max
}
