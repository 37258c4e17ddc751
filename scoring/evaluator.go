package scoring

import (
	"sort"

	"github.com/pairforge/swiss-engine/models"
)

// RuleEvaluator computes per-match point awards from a game profile's rule
// list instead of a hard-coded formula. It holds no state and performs no
// I/O; conditions were validated when the profile was built, so evaluation
// cannot fail.
type RuleEvaluator interface {
	// Evaluate returns the points awarded to each side of a match. Rules
	// are tried highest priority first and the first condition that matches
	// a side's perspective decides that side; a side no rule matches
	// scores 0.
	Evaluate(result models.MatchResult, rules []models.ScoringRule, player1Stats, player2Stats map[string]float64) (float64, float64)
}

type ruleEvaluator struct{}

func NewRuleEvaluator() RuleEvaluator {
	return &ruleEvaluator{}
}

func (e *ruleEvaluator) Evaluate(result models.MatchResult, rules []models.ScoringRule, player1Stats, player2Stats map[string]float64) (float64, float64) {
	if len(rules) == 0 {
		return 0, 0
	}

	ordered := make([]models.ScoringRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	p1 := evaluateSide(result.PerspectiveFor(true), ordered, player1Stats, player2Stats)
	p2 := evaluateSide(result.PerspectiveFor(false), ordered, player2Stats, player1Stats)
	return p1, p2
}

func evaluateSide(perspective models.Perspective, ordered []models.ScoringRule, own, opp map[string]float64) float64 {
	for _, rule := range ordered {
		if rule.Condition.Matches(perspective, own, opp) {
			return rule.Points
		}
	}
	return 0
}
