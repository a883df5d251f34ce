package filter

import (
	_ "embed"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"bootsplash/internal/app/errors"
	"bootsplash/internal/app/logs"
)

// Action is what a matching rule does with an entry
type Action string

const (
	ActionPrint   Action = "print"
	ActionReplace Action = "replace"
	ActionCount   Action = "count"
)

//go:embed rules.yaml
var defaultRules []byte

// Rule matches entries by tag and an optional message prefix
type Rule struct {
	Action Action `yaml:"action"`
	Tag    string `yaml:"tag"`
	Prefix string `yaml:"prefix"`
}

// RuleSet is the fixed-tag rule table plus the boot-loop banner
type RuleSet struct {
	Banner []string `yaml:"banner"`
	Rules  []Rule   `yaml:"rules"`
}

// DefaultRules returns the embedded rule table
func DefaultRules() (RuleSet, error) {
	return ParseRules(defaultRules)
}

// ParseRules decodes and validates a YAML rule table
func ParseRules(data []byte) (RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return RuleSet{}, fmt.Errorf("%w: %w", errors.ErrInvalidFilterRule, err)
	}

	for i, r := range rs.Rules {
		switch r.Action {
		case ActionPrint, ActionReplace, ActionCount:
		default:
			return RuleSet{}, fmt.Errorf("%w: rule %d has action '%s'", errors.ErrInvalidFilterRule, i, r.Action)
		}

		if r.Tag == "" {
			return RuleSet{}, fmt.Errorf("%w: rule %d has no tag", errors.ErrInvalidFilterRule, i)
		}
	}

	return rs, nil
}

// Matches reports whether the entry carries the rule's tag and prefix
func (r Rule) Matches(e logs.Entry) bool {
	return e.Tag == r.Tag && strings.HasPrefix(e.Message, r.Prefix)
}

// match returns the first rule matching the entry among those with one of the given actions
func (rs RuleSet) match(e logs.Entry, actions ...Action) (Rule, bool) {
	for _, r := range rs.Rules {
		if !r.Matches(e) {
			continue
		}

		for _, a := range actions {
			if r.Action == a {
				return r, true
			}
		}
	}

	return Rule{}, false
}
