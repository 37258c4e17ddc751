package pairing

import (
	"context"

	"github.com/pairforge/swiss-engine/models"
)

type GeneratePairingsParams struct {
	TournamentID string
	RoundNumber  int
	Participants []*models.Participant
	Standings    []*models.Standing

	// PreviousMatchups covers all earlier rounds, byes excluded. The caller
	// derives it from match history, typically via BuildMatchupSet.
	PreviousMatchups MatchupSet
}

type PairingGenerator interface {
	GeneratePairings(ctx context.Context, params GeneratePairingsParams) ([]*models.TournamentMatch, error)

	GetName() string
}
