package profiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pairforge/swiss-engine/models"
)

var (
	ErrProfileNameRequired    = errors.New("game profile name is required")
	ErrInvalidProfileJSON     = errors.New("invalid game profile json")
	ErrUnknownConditionType   = errors.New("unknown scoring condition type")
	ErrDuplicateTiebreakerKey = errors.New("duplicate tiebreaker key")
)

// GameProfile bundles the validated configuration the engine runs a game
// under: fixed outcome weights, the conditional scoring rules, the ordered
// tiebreaker set and the pairing settings. Profiles are authored elsewhere
// and stored as JSON; Parse is the only way to obtain one, so a GameProfile
// in hand is always internally valid.
type GameProfile struct {
	Name         string
	ScoreWeights models.ScoreWeights
	ScoringRules []models.ScoringRule
	Tiebreakers  []models.TiebreakerDefinition
	Pairing      models.PairingConfig
}

// TiebreakerTypes returns the profile's tiebreaker kinds in configured
// order, for handing to the standings calculator.
func (p *GameProfile) TiebreakerTypes() []models.TiebreakerType {
	types := make([]models.TiebreakerType, 0, len(p.Tiebreakers))
	for _, d := range p.Tiebreakers {
		types = append(types, d.Type)
	}
	return types
}

type profileJSON struct {
	Name         string                `json:"name"`
	ScoreWeights *scoreWeightsJSON     `json:"score_weights,omitempty"`
	ScoringRules []ruleJSON            `json:"scoring_rules,omitempty"`
	Tiebreakers  []tiebreakerJSON      `json:"tiebreakers,omitempty"`
	Pairing      *models.PairingConfig `json:"pairing,omitempty"`
}

type scoreWeightsJSON struct {
	Win  float64 `json:"win"`
	Draw float64 `json:"draw"`
	Loss float64 `json:"loss"`
	Bye  float64 `json:"bye"`
}

type ruleJSON struct {
	Name      string        `json:"name"`
	Priority  int           `json:"priority"`
	Points    float64       `json:"points"`
	Condition conditionJSON `json:"condition"`
}

type conditionJSON struct {
	Type      string          `json:"type"`
	Value     string          `json:"value,omitempty"`
	Stat      string          `json:"stat,omitempty"`
	Operator  models.Operator `json:"operator,omitempty"`
	Threshold float64         `json:"threshold,omitempty"`
}

type tiebreakerJSON struct {
	Key      string   `json:"key"`
	Type     string   `json:"type"`
	StatName string   `json:"stat_name,omitempty"`
	SortDesc *bool    `json:"sort_desc,omitempty"`
	MinValue *float64 `json:"min_value,omitempty"`
}

// Parse deserializes and validates a stored game profile. Malformed content
// fails loudly here, before any computation runs: a profile that parses can
// be handed to the engine without further checks.
func Parse(raw json.RawMessage) (*GameProfile, error) {
	var dto profileJSON
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfileJSON, err)
	}

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, ErrProfileNameRequired
	}

	profile := &GameProfile{Name: name}

	if dto.ScoreWeights != nil {
		weights, err := models.NewScoreWeights(dto.ScoreWeights.Win, dto.ScoreWeights.Draw, dto.ScoreWeights.Loss, dto.ScoreWeights.Bye)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		profile.ScoreWeights = weights
	} else {
		profile.ScoreWeights = models.DefaultScoreWeights()
	}

	for _, r := range dto.ScoringRules {
		condition, err := buildCondition(r.Condition)
		if err != nil {
			return nil, fmt.Errorf("profile %q, rule %q: %w", name, r.Name, err)
		}
		profile.ScoringRules = append(profile.ScoringRules, models.ScoringRule{
			Name:      r.Name,
			Condition: condition,
			Points:    r.Points,
			Priority:  r.Priority,
		})
	}

	seen := make(map[string]struct{}, len(dto.Tiebreakers))
	for _, t := range dto.Tiebreakers {
		def := models.TiebreakerDefinition{
			Key:      t.Key,
			Type:     models.TiebreakerType(t.Type),
			StatName: t.StatName,
			SortDesc: t.SortDesc == nil || *t.SortDesc,
			MinValue: t.MinValue,
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		if _, dup := seen[def.Key]; dup {
			return nil, fmt.Errorf("%w: %q in profile %q", ErrDuplicateTiebreakerKey, def.Key, name)
		}
		seen[def.Key] = struct{}{}
		profile.Tiebreakers = append(profile.Tiebreakers, def)
	}

	if dto.Pairing != nil {
		if err := dto.Pairing.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		profile.Pairing = *dto.Pairing
	} else {
		profile.Pairing = models.DefaultPairingConfig()
	}

	return profile, nil
}

func buildCondition(c conditionJSON) (models.ScoringCondition, error) {
	switch models.ConditionType(c.Type) {
	case models.ConditionResult:
		return models.NewResultCondition(c.Value)
	case models.ConditionStatComparison:
		return models.NewStatComparisonCondition(c.Stat, c.Operator)
	case models.ConditionStatThreshold:
		return models.NewStatThresholdCondition(c.Stat, c.Operator, c.Threshold)
	case models.ConditionMarginDifference:
		return models.NewMarginDifferenceCondition(c.Stat, c.Operator, c.Threshold)
	default:
		return models.ScoringCondition{}, fmt.Errorf("%w: %q", ErrUnknownConditionType, c.Type)
	}
}
