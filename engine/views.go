package engine

import (
	"context"

	"github.com/pairforge/swiss-engine/models"
)

// ParticipantView is the read-only participant lookup the engine consumes.
// The surrounding persistence layer owns the data; the engine never writes
// through this interface.
type ParticipantView interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]*models.Participant, error)
}

// MatchView is the read-only match-history lookup the engine consumes.
type MatchView interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]*models.TournamentMatch, error)
}
