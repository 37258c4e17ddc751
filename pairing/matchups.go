package pairing

import "github.com/pairforge/swiss-engine/models"

// MatchupSet records which participant pairs have already met. Lookups are
// symmetric.
type MatchupSet map[string]map[string]struct{}

func NewMatchupSet() MatchupSet {
	return make(MatchupSet)
}

// BuildMatchupSet collects every pair that has faced each other in the given
// matches. Byes have no second side and are excluded.
func BuildMatchupSet(matches []*models.TournamentMatch) MatchupSet {
	set := NewMatchupSet()
	for _, m := range matches {
		if m.Player2ID == nil {
			continue
		}
		set.Add(m.Player1ID, *m.Player2ID)
	}
	return set
}

func (s MatchupSet) Add(a, b string) {
	if s[a] == nil {
		s[a] = make(map[string]struct{})
	}
	if s[b] == nil {
		s[b] = make(map[string]struct{})
	}
	s[a][b] = struct{}{}
	s[b][a] = struct{}{}
}

func (s MatchupSet) Played(a, b string) bool {
	_, ok := s[a][b]
	return ok
}
