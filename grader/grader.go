// Package grader resolves a learner's answer against an ordered list of
// answer groups. Each group holds one or more rule instances and the
// outcome to surface when any of them matches; the first matching group
// wins, and an answer matching no group falls through to the default
// outcome.
package grader

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/grishamjindal/oppia/internal/logger"
	"github.com/grishamjindal/oppia/rules"
)

// RuleInstance is a rule bound to concrete parameter values.
type RuleInstance struct {
	Rule   string
	Inputs map[string]any
}

// Outcome is what the learner receives when a group matches: feedback
// text and the state the session moves to.
type Outcome struct {
	Feedback    string
	Destination string
}

// AnswerGroup pairs an outcome with the rule instances that trigger it.
type AnswerGroup struct {
	Rules   []RuleInstance
	Outcome Outcome
}

// Result records one graded attempt.
type Result struct {
	// AttemptID uniquely identifies this grading call for downstream
	// feedback pipelines.
	AttemptID uuid.UUID

	// GroupIndex is the index of the matching group, or -1 when the
	// answer fell through to the default outcome.
	GroupIndex int

	// MatchedRule is the name of the rule that matched, empty on
	// fallthrough.
	MatchedRule string

	Outcome Outcome
}

// Grader classifies answers through a rule engine.
type Grader struct {
	engine *rules.Engine
}

// New creates a grader over the given engine.
func New(engine *rules.Engine) *Grader {
	return &Grader{engine: engine}
}

// Resolve evaluates the answer against each group's rules in order and
// returns the outcome of the first group with any matching rule. Rule
// evaluation errors abort grading; they indicate a malformed group, not a
// wrong answer.
func (g *Grader) Resolve(interactionType string, answer any, groups []AnswerGroup, defaultOutcome Outcome) (*Result, error) {
	result := &Result{
		AttemptID:  uuid.New(),
		GroupIndex: -1,
		Outcome:    defaultOutcome,
	}

	for i, group := range groups {
		for _, instance := range group.Rules {
			matched, err := g.engine.Classify(interactionType, instance.Rule, answer, instance.Inputs)
			if err != nil {
				return nil, fmt.Errorf("group %d rule %s: %w", i, instance.Rule, err)
			}
			if matched {
				result.GroupIndex = i
				result.MatchedRule = instance.Rule
				result.Outcome = group.Outcome
				logger.Debug("answer matched",
					"attempt_id", result.AttemptID.String(),
					"interaction", interactionType,
					"group", i,
					"rule", instance.Rule)
				return result, nil
			}
		}
	}

	logger.Debug("answer fell through to default outcome",
		"attempt_id", result.AttemptID.String(),
		"interaction", interactionType)
	return result, nil
}
