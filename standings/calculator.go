package standings

import (
	"sort"

	"github.com/pairforge/swiss-engine/models"
)

// Calculator rebuilds the full standings table of a tournament from its
// participants and complete match history. Every call starts from zeroed
// standings; nothing is carried over from a previous computation.
type Calculator interface {
	Calculate(participants []*models.Participant, matches []*models.TournamentMatch, weights models.ScoreWeights, tiebreakers []models.TiebreakerType) []*models.Standing
}

type calculator struct{}

func NewCalculator() Calculator {
	return &calculator{}
}

func (c *calculator) Calculate(participants []*models.Participant, matches []*models.TournamentMatch, weights models.ScoreWeights, tiebreakers []models.TiebreakerType) []*models.Standing {
	result := make([]*models.Standing, 0, len(participants))
	if len(participants) == 0 {
		return result
	}

	for _, p := range participants {
		result = append(result, models.NewStanding(p.TournamentID, p.ID))
	}
	idx := standingIndex(result)

	for _, m := range matches {
		foldMatch(m, idx, weights)
	}

	for _, t := range tiebreakers {
		computeTiebreaker(t, result, matches, weights, idx)
	}

	sortStandings(result, tiebreakers)

	for i, s := range result {
		s.Rank = i + 1
	}
	return result
}

// foldMatch applies one decided match to the affected standings. Undecided
// matches do not count as played; matches referencing unknown participants
// are skipped side by side.
func foldMatch(m *models.TournamentMatch, idx map[string]*models.Standing, weights models.ScoreWeights) {
	if !m.Result.Decided() {
		return
	}

	p1 := idx[m.Player1ID]
	var p2 *models.Standing
	if m.Player2ID != nil {
		p2 = idx[*m.Player2ID]
	}

	switch m.Result {
	case models.ResultBye:
		if p1 != nil {
			p1.RecordBye(weights.Bye)
		}
	case models.ResultDoubleLoss:
		if p1 != nil {
			p1.RecordLoss(weights.Loss)
		}
		if p2 != nil {
			p2.RecordLoss(weights.Loss)
		}
	case models.ResultDraw:
		if p1 != nil {
			p1.RecordDraw(weights.Draw)
		}
		if p2 != nil {
			p2.RecordDraw(weights.Draw)
		}
	case models.ResultPlayer1Win:
		if p1 != nil {
			p1.RecordWin(weights.Win)
		}
		if p2 != nil {
			p2.RecordLoss(weights.Loss)
		}
	case models.ResultPlayer2Win:
		if p2 != nil {
			p2.RecordWin(weights.Win)
		}
		if p1 != nil {
			p1.RecordLoss(weights.Loss)
		}
	}
}

// computeTiebreaker fills one of the standing-level tiebreaker fields across
// the whole table. It runs only after every match has been folded, so
// opponent points are final.
func computeTiebreaker(t models.TiebreakerType, standings []*models.Standing, matches []*models.TournamentMatch, weights models.ScoreWeights, idx map[string]*models.Standing) {
	switch t {
	case models.TiebreakerBuchholz:
		for _, s := range standings {
			s.Buchholz = sum(opponentPoints(s.ParticipantID, matches, idx))
		}
	case models.TiebreakerMedianBuchholz:
		for _, s := range standings {
			s.MedianBuchholz = medianSum(opponentPoints(s.ParticipantID, matches, idx))
		}
	case models.TiebreakerProgressive:
		for _, s := range standings {
			s.Progressive = progressiveScore(s.ParticipantID, matches, weights)
		}
	case models.TiebreakerOpponentWinPercentage:
		for _, s := range standings {
			s.OpponentWinPercentage = opponentWinPercentage(s.ParticipantID, matches, idx)
		}
	}
}

// opponentWinPercentage averages each real opponent's win rate, skipping
// opponents who have not completed a match.
func opponentWinPercentage(participantID string, matches []*models.TournamentMatch, idx map[string]*models.Standing) float64 {
	var total float64
	var counted int
	for _, m := range completedMatches(participantID, matches) {
		opp, ok := idx[m.OpponentID(participantID)]
		if !ok || opp.MatchesPlayed == 0 {
			continue
		}
		total += opp.WinPercentage()
		counted++
	}
	if counted == 0 {
		return 0
	}
	return total / float64(counted)
}

func tiebreakerValue(s *models.Standing, t models.TiebreakerType) float64 {
	switch t {
	case models.TiebreakerBuchholz:
		return s.Buchholz
	case models.TiebreakerMedianBuchholz:
		return s.MedianBuchholz
	case models.TiebreakerProgressive:
		return s.Progressive
	case models.TiebreakerOpponentWinPercentage:
		return s.OpponentWinPercentage
	}
	return 0
}

// sortStandings orders by points, then by each requested tiebreaker in turn,
// all descending. The stable sort keeps relative order for fully tied rows.
func sortStandings(standings []*models.Standing, tiebreakers []models.TiebreakerType) {
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		for _, t := range tiebreakers {
			av, bv := tiebreakerValue(a, t), tiebreakerValue(b, t)
			if av != bv {
				return av > bv
			}
		}
		return false
	})
}
