package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/pairforge/swiss-engine/models"
	"github.com/pairforge/swiss-engine/pairing"
	"github.com/pairforge/swiss-engine/profiles"
	"github.com/pairforge/swiss-engine/scoring"
	"github.com/pairforge/swiss-engine/standings"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProfileRequired = errors.New("a game profile is required")
	ErrViewsRequired   = errors.New("participant and match views are required for round recomputation")
)

// Engine ties the three computation services together under one game
// profile. The computations themselves stay pure; the engine only adds the
// profile's configuration and, when views are provided, the per-tournament
// load-compute orchestration around them.
//
// Concurrent calls for different tournaments are safe. Calls for the same
// tournament must be serialized by the caller so a recomputation never reads
// a half-updated match history.
type Engine struct {
	profile *profiles.GameProfile

	participants ParticipantView
	matches      MatchView

	evaluator   scoring.RuleEvaluator
	calculator  standings.Calculator
	tiebreakers standings.TiebreakerCalculator
	generator   pairing.PairingGenerator

	logger *slog.Logger
}

// New builds an engine for one game profile. Views may be nil for callers
// that only use the pure computation methods. The random source seeds the
// pairing generator; pass a seeded one for reproducible round-one draws.
func New(profile *profiles.GameProfile, participantView ParticipantView, matchView MatchView, rng *rand.Rand, logger *slog.Logger) (*Engine, error) {
	if profile == nil {
		return nil, ErrProfileRequired
	}
	generator, err := pairing.NewSwissGenerator(profile.Pairing, rng)
	if err != nil {
		return nil, fmt.Errorf("engine for profile %q: %w", profile.Name, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		profile:      profile,
		participants: participantView,
		matches:      matchView,
		evaluator:    scoring.NewRuleEvaluator(),
		calculator:   standings.NewCalculator(),
		tiebreakers:  standings.NewTiebreakerCalculator(profile.ScoreWeights),
		generator:    generator,
		logger:       logger,
	}, nil
}

// Evaluate scores one match result under the profile's rule list.
func (e *Engine) Evaluate(result models.MatchResult, player1Stats, player2Stats map[string]float64) (float64, float64) {
	return e.evaluator.Evaluate(result, e.profile.ScoringRules, player1Stats, player2Stats)
}

// CalculateStandings rebuilds the ranked standings table from the full match
// history using the profile's weights and tiebreaker order.
func (e *Engine) CalculateStandings(participants []*models.Participant, matches []*models.TournamentMatch) []*models.Standing {
	return e.calculator.Calculate(participants, matches, e.profile.ScoreWeights, e.profile.TiebreakerTypes())
}

// CalculateTiebreakers evaluates the profile's full tiebreaker definitions
// for one participant.
func (e *Engine) CalculateTiebreakers(participantID string, matches []*models.TournamentMatch, current []*models.Standing) map[string]float64 {
	return e.tiebreakers.Calculate(participantID, matches, current, e.profile.Tiebreakers)
}

// GeneratePairings produces the next round's matches.
func (e *Engine) GeneratePairings(ctx context.Context, params pairing.GeneratePairingsParams) ([]*models.TournamentMatch, error) {
	return e.generator.GeneratePairings(ctx, params)
}

// RoundComputation is the result of one full pipeline pass: the rebuilt
// standings table and the pairings for the next round.
type RoundComputation struct {
	TournamentID string
	Standings    []*models.Standing
	NextRound    []*models.TournamentMatch
}

// RecomputeRound runs the whole pipeline for one tournament: load
// participants and match history through the views, rebuild standings, and
// pair the next round against the accumulated matchup set. The caller
// persists the returned values.
func (e *Engine) RecomputeRound(ctx context.Context, tournamentID string, nextRoundNumber int) (*RoundComputation, error) {
	if e.participants == nil || e.matches == nil {
		return nil, ErrViewsRequired
	}

	participants, err := e.participants.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants for tournament %s: %w", tournamentID, err)
	}
	matches, err := e.matches.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for tournament %s: %w", tournamentID, err)
	}

	table := e.CalculateStandings(participants, matches)

	nextRound, err := e.generator.GeneratePairings(ctx, pairing.GeneratePairingsParams{
		TournamentID:     tournamentID,
		RoundNumber:      nextRoundNumber,
		Participants:     participants,
		Standings:        table,
		PreviousMatchups: pairing.BuildMatchupSet(matches),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate round %d pairings for tournament %s: %w", nextRoundNumber, tournamentID, err)
	}

	e.logger.Info("round recomputed",
		slog.String("tournament_id", tournamentID),
		slog.Int("next_round", nextRoundNumber),
		slog.Int("participants", len(participants)),
		slog.Int("pairings", len(nextRound)),
	)

	return &RoundComputation{
		TournamentID: tournamentID,
		Standings:    table,
		NextRound:    nextRound,
	}, nil
}

// RecomputeStandingsAll rebuilds standings for several tournaments in
// parallel. Tournaments share no state, so the fan-out needs no
// coordination beyond collecting results; the first failure cancels the
// rest.
func (e *Engine) RecomputeStandingsAll(ctx context.Context, tournamentIDs []string) (map[string][]*models.Standing, error) {
	if e.participants == nil || e.matches == nil {
		return nil, ErrViewsRequired
	}

	var mu sync.Mutex
	result := make(map[string][]*models.Standing, len(tournamentIDs))

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range tournamentIDs {
		g.Go(func() error {
			participants, err := e.participants.ListByTournament(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to list participants for tournament %s: %w", id, err)
			}
			matches, err := e.matches.ListByTournament(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to list matches for tournament %s: %w", id, err)
			}
			table := e.CalculateStandings(participants, matches)

			mu.Lock()
			result[id] = table
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
