package models

import (
	"fmt"
	"math"
)

// ScoreWeights holds the fixed point values awarded per recorded outcome.
type ScoreWeights struct {
	Win  float64 `json:"win"`
	Draw float64 `json:"draw"`
	Loss float64 `json:"loss"`
	Bye  float64 `json:"bye"`
}

func NewScoreWeights(win, draw, loss, bye float64) (ScoreWeights, error) {
	for name, v := range map[string]float64{"win": win, "draw": draw, "loss": loss, "bye": bye} {
		if v < 0 {
			return ScoreWeights{}, fmt.Errorf("%w: %s=%g", ErrNegativeScoreWeight, name, v)
		}
	}
	return ScoreWeights{Win: win, Draw: draw, Loss: loss, Bye: bye}, nil
}

// DefaultScoreWeights is the common 3/1/0 scheme with a full-win bye.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Win: 3, Draw: 1, Loss: 0, Bye: 3}
}

type Operator string

const (
	OpGreater   Operator = ">"
	OpGreaterEq Operator = ">="
	OpLess      Operator = "<"
	OpLessEq    Operator = "<="
	OpEqual     Operator = "=="
)

func (o Operator) Valid() bool {
	switch o {
	case OpGreater, OpGreaterEq, OpLess, OpLessEq, OpEqual:
		return true
	}
	return false
}

func (o Operator) Compare(a, b float64) bool {
	switch o {
	case OpGreater:
		return a > b
	case OpGreaterEq:
		return a >= b
	case OpLess:
		return a < b
	case OpLessEq:
		return a <= b
	case OpEqual:
		return a == b
	}
	return false
}

type ConditionType string

const (
	ConditionResult           ConditionType = "result"
	ConditionStatComparison   ConditionType = "stat_comparison"
	ConditionStatThreshold    ConditionType = "stat_threshold"
	ConditionMarginDifference ConditionType = "margin_difference"
)

// ScoringCondition is one predicate over a match outcome as seen from one
// side. The per-kind constructors validate required fields up front, so a
// condition that exists can always be evaluated.
type ScoringCondition struct {
	Type ConditionType

	// Result kind only: the perspective label to match.
	ResultValue Perspective

	// Stat kinds only.
	Stat      string
	Operator  Operator
	Threshold float64
}

// NewResultCondition matches a literal outcome label from the evaluated
// side's perspective.
func NewResultCondition(value string) (ScoringCondition, error) {
	p := Perspective(value)
	switch p {
	case PerspectiveWin, PerspectiveDraw, PerspectiveLoss, PerspectiveBye:
	default:
		return ScoringCondition{}, fmt.Errorf("%w: %q", ErrConditionResultInvalid, value)
	}
	return ScoringCondition{Type: ConditionResult, ResultValue: p}, nil
}

// NewStatComparisonCondition compares the side's named stat against the
// opponent's same-named stat.
func NewStatComparisonCondition(stat string, op Operator) (ScoringCondition, error) {
	if stat == "" {
		return ScoringCondition{}, fmt.Errorf("%w: stat comparison", ErrConditionStatRequired)
	}
	if !op.Valid() {
		return ScoringCondition{}, fmt.Errorf("%w: %q", ErrConditionOperatorInvalid, op)
	}
	return ScoringCondition{Type: ConditionStatComparison, Stat: stat, Operator: op}, nil
}

// NewStatThresholdCondition compares the side's named stat against a fixed
// value.
func NewStatThresholdCondition(stat string, op Operator, value float64) (ScoringCondition, error) {
	if stat == "" || !op.Valid() {
		return ScoringCondition{}, fmt.Errorf("%w (stat=%q, op=%q)", ErrConditionThresholdInvalid, stat, op)
	}
	return ScoringCondition{Type: ConditionStatThreshold, Stat: stat, Operator: op, Threshold: value}, nil
}

// NewMarginDifferenceCondition tests the gap between the two sides' named
// stat. Operators < and <= frame a close loss, > and >= a decisive win; the
// equality operator has no sensible framing here and is rejected.
func NewMarginDifferenceCondition(stat string, op Operator, threshold float64) (ScoringCondition, error) {
	if stat == "" {
		return ScoringCondition{}, fmt.Errorf("%w: margin difference", ErrConditionStatRequired)
	}
	switch op {
	case OpGreater, OpGreaterEq, OpLess, OpLessEq:
	default:
		return ScoringCondition{}, fmt.Errorf("%w: got %q", ErrConditionMarginOperator, op)
	}
	return ScoringCondition{Type: ConditionMarginDifference, Stat: stat, Operator: op, Threshold: threshold}, nil
}

// Matches reports whether the condition holds for the side whose perspective
// and stats are given. Missing stats count as 0.
func (c ScoringCondition) Matches(perspective Perspective, own, opp map[string]float64) bool {
	switch c.Type {
	case ConditionResult:
		return perspective == c.ResultValue
	case ConditionStatComparison:
		return c.Operator.Compare(own[c.Stat], opp[c.Stat])
	case ConditionStatThreshold:
		return c.Operator.Compare(own[c.Stat], c.Threshold)
	case ConditionMarginDifference:
		margin := own[c.Stat] - opp[c.Stat]
		switch c.Operator {
		case OpLess, OpLessEq:
			// Close-loss framing: only a trailing side qualifies, and the
			// threshold bounds how far behind it may be.
			if margin >= 0 {
				return false
			}
			return c.Operator.Compare(math.Abs(margin), c.Threshold)
		case OpGreater, OpGreaterEq:
			// Crushing-victory framing: only a leading side qualifies.
			if margin <= 0 {
				return false
			}
			return c.Operator.Compare(margin, c.Threshold)
		}
		return false
	}
	return false
}

// ScoringRule awards a fixed number of points when its condition matches.
// Rules evaluate highest priority first; the first match wins.
type ScoringRule struct {
	Name      string
	Condition ScoringCondition
	Points    float64
	Priority  int
}
