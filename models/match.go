package models

type MatchResult string

const (
	ResultNotPlayed  MatchResult = "not_played"
	ResultPlayer1Win MatchResult = "player1_win"
	ResultPlayer2Win MatchResult = "player2_win"
	ResultDraw       MatchResult = "draw"
	ResultDoubleLoss MatchResult = "double_loss"
	ResultBye        MatchResult = "bye"
)

// ParseMatchResult maps a stored result label to a MatchResult. Unknown
// labels decode to ResultNotPlayed; stored data is never a reason to error.
func ParseMatchResult(s string) MatchResult {
	switch MatchResult(s) {
	case ResultPlayer1Win, ResultPlayer2Win, ResultDraw, ResultDoubleLoss, ResultBye:
		return MatchResult(s)
	default:
		return ResultNotPlayed
	}
}

func (r MatchResult) Decided() bool {
	return r != ResultNotPlayed
}

// Perspective is a match result as seen from one side of the table.
type Perspective string

const (
	PerspectiveWin       Perspective = "win"
	PerspectiveLoss      Perspective = "loss"
	PerspectiveDraw      Perspective = "draw"
	PerspectiveBye       Perspective = "bye"
	PerspectiveNotPlayed Perspective = "not_played"
)

// PerspectiveFor translates the result into the named side's point of view.
// The phantom opponent of a bye records a loss, as do both sides of a
// double loss.
func (r MatchResult) PerspectiveFor(playerOne bool) Perspective {
	switch r {
	case ResultPlayer1Win:
		if playerOne {
			return PerspectiveWin
		}
		return PerspectiveLoss
	case ResultPlayer2Win:
		if playerOne {
			return PerspectiveLoss
		}
		return PerspectiveWin
	case ResultDraw:
		return PerspectiveDraw
	case ResultDoubleLoss:
		return PerspectiveLoss
	case ResultBye:
		if playerOne {
			return PerspectiveBye
		}
		return PerspectiveLoss
	default:
		return PerspectiveNotPlayed
	}
}

// TournamentMatch is one pairing within a round. Player2ID is nil for a bye
// match, which always carries ResultBye and never a table number. Table
// numbers appear on non-bye matches only after pairing assigns them.
type TournamentMatch struct {
	ID           string             `json:"id"`
	TournamentID string             `json:"tournament_id"`
	Round        string             `json:"round"`
	Player1ID    string             `json:"player1_id"`
	Player2ID    *string            `json:"player2_id,omitempty"`
	Result       MatchResult        `json:"result"`
	Player1Score *float64           `json:"player1_score,omitempty"`
	Player2Score *float64           `json:"player2_score,omitempty"`
	Player1Stats map[string]float64 `json:"player1_stats,omitempty"`
	Player2Stats map[string]float64 `json:"player2_stats,omitempty"`
	TableNumber  *int               `json:"table_number,omitempty"`
}

func (m *TournamentMatch) IsBye() bool {
	return m.Player2ID == nil
}

// Involves reports whether the participant plays in this match.
func (m *TournamentMatch) Involves(participantID string) bool {
	if m.Player1ID == participantID {
		return true
	}
	return m.Player2ID != nil && *m.Player2ID == participantID
}

// OpponentID returns the other side of a non-bye match, or "" for a bye or
// for a participant not in the match.
func (m *TournamentMatch) OpponentID(participantID string) string {
	if m.Player2ID == nil {
		return ""
	}
	switch participantID {
	case m.Player1ID:
		return *m.Player2ID
	case *m.Player2ID:
		return m.Player1ID
	}
	return ""
}

// SideStats returns the stat map recorded for the given participant and the
// one recorded for their opponent. Either may be nil.
func (m *TournamentMatch) SideStats(participantID string) (own, opp map[string]float64) {
	if m.Player1ID == participantID {
		return m.Player1Stats, m.Player2Stats
	}
	if m.Player2ID != nil && *m.Player2ID == participantID {
		return m.Player2Stats, m.Player1Stats
	}
	return nil, nil
}

// SideScores returns the numeric scores for the given participant's side and
// the opposing side, if both were recorded.
func (m *TournamentMatch) SideScores(participantID string) (own, opp float64, ok bool) {
	if m.Player1Score == nil || m.Player2Score == nil {
		return 0, 0, false
	}
	if m.Player1ID == participantID {
		return *m.Player1Score, *m.Player2Score, true
	}
	if m.Player2ID != nil && *m.Player2ID == participantID {
		return *m.Player2Score, *m.Player1Score, true
	}
	return 0, 0, false
}
