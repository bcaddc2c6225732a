// Package layout reads the table layout: one hand slot per player and the
// positions of the piles. The turn engine only needs the number of slots and
// which slot is human; positions are carried for the presentation layer.
package layout

import (
	"io"

	"github.com/minaorangina/bartok/deck"
	"gopkg.in/yaml.v3"
)

const minSlots = 2

// Anchor is a position on the table.
type Anchor struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Layer string  `yaml:"layer"`
}

// Slot is a player's seat.
type Slot struct {
	Anchor   `yaml:",inline"`
	Human    bool    `yaml:"human"`
	Rotation float64 `yaml:"rotation"`
}

// Layout describes the table.
type Layout struct {
	Slots       []Slot `yaml:"slots"`
	DrawPile    Anchor `yaml:"draw_pile"`
	DiscardPile Anchor `yaml:"discard_pile"`
	Target      Anchor `yaml:"target"`
}

// Default lays out n seats evenly, with seat human (if in range) marked human.
func Default(n, human int) Layout {
	l := Layout{
		DrawPile:    Anchor{X: 1.5, Layer: "draw"},
		DiscardPile: Anchor{X: -1.5, Layer: "discard"},
		Target:      Anchor{X: -1.5, Layer: "target"},
	}
	for i := 0; i < n; i++ {
		l.Slots = append(l.Slots, Slot{
			Anchor:   Anchor{Layer: "hand"},
			Human:    i == human,
			Rotation: float64(i) * 360 / float64(n),
		})
	}
	return l
}

// Parse decodes and validates a YAML layout.
func Parse(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, deck.NewDefinitionError("layout yaml: %s", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Load reads a YAML layout from r.
func Load(r io.Reader) (Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Layout{}, err
	}
	return Parse(data)
}

// Validate checks there are enough seats to play.
func (l Layout) Validate() error {
	if len(l.Slots) < minSlots {
		return deck.NewDefinitionError("layout has %d slots, need at least %d", len(l.Slots), minSlots)
	}
	return nil
}

// NumPlayers is the number of hand slots.
func (l Layout) NumPlayers() int {
	return len(l.Slots)
}

// HumanSlot returns the index of the first human seat, or -1.
func (l Layout) HumanSlot() int {
	for i, s := range l.Slots {
		if s.Human {
			return i
		}
	}
	return -1
}
