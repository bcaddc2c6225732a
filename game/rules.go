package game

import (
	"fmt"
	"strings"

	"github.com/minaorangina/bartok/deck"
)

// PlayRule reports whether card may be played on target.
type PlayRule func(card, target *deck.Card) bool

// RankOrSuit is the base Bartok rule: match the target's rank or suit.
func RankOrSuit(card, target *deck.Card) bool {
	return card.Rank() == target.Rank() || card.Suit() == target.Suit()
}

// EightsWild lets an eight go on anything.
func EightsWild(card, target *deck.Card) bool {
	return card.Rank() == deck.Eight
}

var houseRules = map[string]PlayRule{
	"eights-wild": EightsWild,
}

// Rules allows a play when any of its rules does.
type Rules []PlayRule

// DefaultRules is just RankOrSuit.
func DefaultRules() Rules {
	return Rules{RankOrSuit}
}

// WithHouseRules adds named house rules to the defaults.
func WithHouseRules(names ...string) (Rules, error) {
	rules := DefaultRules()
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		rule, ok := houseRules[name]
		if !ok {
			return nil, fmt.Errorf("unknown house rule %q", name)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Valid reports whether card can be played on target.
func (r Rules) Valid(card, target *deck.Card) bool {
	if card == nil || target == nil {
		return false
	}
	for _, rule := range r {
		if rule(card, target) {
			return true
		}
	}
	return false
}
