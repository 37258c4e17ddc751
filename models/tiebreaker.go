package models

import "fmt"

type TiebreakerType string

const (
	TiebreakerBuchholz              TiebreakerType = "buchholz"
	TiebreakerMedianBuchholz        TiebreakerType = "median_buchholz"
	TiebreakerProgressive           TiebreakerType = "progressive"
	TiebreakerOpponentWinPercentage TiebreakerType = "opponent_win_percentage"
	TiebreakerStrengthOfSchedule    TiebreakerType = "strength_of_schedule"
	TiebreakerMarginOfVictory       TiebreakerType = "margin_of_victory"
	TiebreakerStatSum               TiebreakerType = "stat_sum"
	TiebreakerStatDiff              TiebreakerType = "stat_diff"
	TiebreakerStatAverage           TiebreakerType = "stat_average"
	TiebreakerStatMax               TiebreakerType = "stat_max"
)

func (t TiebreakerType) Valid() bool {
	switch t {
	case TiebreakerBuchholz, TiebreakerMedianBuchholz, TiebreakerProgressive,
		TiebreakerOpponentWinPercentage, TiebreakerStrengthOfSchedule,
		TiebreakerMarginOfVictory, TiebreakerStatSum, TiebreakerStatDiff,
		TiebreakerStatAverage, TiebreakerStatMax:
		return true
	}
	return false
}

// StatBased reports whether the metric aggregates a named per-match stat.
func (t TiebreakerType) StatBased() bool {
	switch t {
	case TiebreakerStatSum, TiebreakerStatDiff, TiebreakerStatAverage, TiebreakerStatMax:
		return true
	}
	return false
}

// TiebreakerDefinition names one metric in a game profile's tiebreaker set.
// MinValue, when set, is a floor substituted after computation.
type TiebreakerDefinition struct {
	Key      string         `json:"key"`
	Type     TiebreakerType `json:"type"`
	StatName string         `json:"stat_name,omitempty"`
	SortDesc bool           `json:"sort_desc"`
	MinValue *float64       `json:"min_value,omitempty"`
}

func (d TiebreakerDefinition) Validate() error {
	if d.Key == "" {
		return ErrTiebreakerKeyRequired
	}
	if !d.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrTiebreakerTypeInvalid, d.Type)
	}
	if d.Type.StatBased() && d.StatName == "" {
		return fmt.Errorf("%w: %s (key %q)", ErrTiebreakerStatRequired, d.Type, d.Key)
	}
	return nil
}
