package models

// Standing is the computed ranking record for one participant. A calculator
// builds standings from scratch on every recomputation; they are never
// patched incrementally. Rank stays 0 until the final sort pass assigns
// 1-based positions.
//
// The record fields only move through the Record* methods, so MatchesPlayed
// always agrees with the sum of Wins, Draws, Losses and Byes.
type Standing struct {
	ParticipantID string `json:"participant_id"`
	TournamentID  string `json:"tournament_id"`
	Rank          int    `json:"rank"`

	MatchesPlayed int `json:"matches_played"`
	Wins          int `json:"wins"`
	Draws         int `json:"draws"`
	Losses        int `json:"losses"`
	Byes          int `json:"byes"`

	Points float64 `json:"points"`

	Buchholz              float64 `json:"buchholz"`
	MedianBuchholz        float64 `json:"median_buchholz"`
	Progressive           float64 `json:"progressive"`
	OpponentWinPercentage float64 `json:"opponent_win_percentage"`
}

func NewStanding(tournamentID, participantID string) *Standing {
	return &Standing{
		ParticipantID: participantID,
		TournamentID:  tournamentID,
	}
}

func (s *Standing) RecordWin(weight float64) {
	s.MatchesPlayed++
	s.Wins++
	s.Points += weight
}

func (s *Standing) RecordDraw(weight float64) {
	s.MatchesPlayed++
	s.Draws++
	s.Points += weight
}

func (s *Standing) RecordLoss(weight float64) {
	s.MatchesPlayed++
	s.Losses++
	s.Points += weight
}

func (s *Standing) RecordBye(weight float64) {
	s.MatchesPlayed++
	s.Byes++
	s.Points += weight
}

// WinPercentage is the fraction of played matches this participant won.
// Zero matches played yields 0 rather than an error.
func (s *Standing) WinPercentage() float64 {
	if s.MatchesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.MatchesPlayed)
}
