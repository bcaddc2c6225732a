package deck

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrDefinition is wrapped by every DefinitionError.
var ErrDefinition = errors.New("bad definition")

// DefinitionError reports a malformed or empty deck or layout definition.
type DefinitionError struct {
	Reason string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDefinition, e.Reason)
}

func (e *DefinitionError) Unwrap() error {
	return ErrDefinition
}

// NewDefinitionError formats a DefinitionError.
func NewDefinitionError(format string, args ...interface{}) error {
	return &DefinitionError{Reason: fmt.Sprintf(format, args...)}
}

// Entry is a single explicit card in a Definition.
type Entry struct {
	Rank int    `yaml:"rank"`
	Suit string `yaml:"suit"`
}

// Definition declares which cards make up a deck. Every rank in Ranks is
// combined with every suit in Suits, and the Cards entries are appended
// after that. Count, when set, must equal the number of cards produced.
type Definition struct {
	Ranks []int    `yaml:"ranks"`
	Suits []string `yaml:"suits"`
	Cards []Entry  `yaml:"cards"`
	Count int      `yaml:"count"`
}

// StandardDefinition is the 52 card French deck.
func StandardDefinition() Definition {
	def := Definition{Count: len(rankNames) * len(suitNames)}
	for i := range suitNames {
		def.Suits = append(def.Suits, suitNames[i])
	}
	for r := Ace; r <= King; r++ {
		def.Ranks = append(def.Ranks, int(r))
	}
	return def
}

// ParseDefinition decodes a YAML deck definition.
func ParseDefinition(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, NewDefinitionError("deck yaml: %s", err)
	}
	return def, nil
}

// LoadDefinition reads a YAML deck definition from r.
func LoadDefinition(r io.Reader) (Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Definition{}, err
	}
	return ParseDefinition(data)
}

// Build constructs the cards described by def, suit by suit.
func Build(def Definition) ([]*Card, error) {
	if len(def.Ranks) > 0 && len(def.Suits) == 0 {
		return nil, NewDefinitionError("ranks given without suits")
	}
	if len(def.Suits) > 0 && len(def.Ranks) == 0 {
		return nil, NewDefinitionError("suits given without ranks")
	}

	cards := []*Card{}
	for _, name := range def.Suits {
		suit, err := ParseSuit(name)
		if err != nil {
			return nil, NewDefinitionError("%s", err)
		}
		for _, r := range def.Ranks {
			rank := Rank(r)
			if !rank.Valid() {
				return nil, NewDefinitionError("rank %d out of range", r)
			}
			cards = append(cards, NewCard(rank, suit))
		}
	}

	for i, e := range def.Cards {
		rank := Rank(e.Rank)
		if !rank.Valid() {
			return nil, NewDefinitionError("card %d: rank %d out of range", i, e.Rank)
		}
		suit, err := ParseSuit(e.Suit)
		if err != nil {
			return nil, NewDefinitionError("card %d: %s", i, err)
		}
		cards = append(cards, NewCard(rank, suit))
	}

	if len(cards) == 0 {
		return nil, NewDefinitionError("definition produces no cards")
	}
	if def.Count != 0 && def.Count != len(cards) {
		return nil, NewDefinitionError("count is %d but definition produces %d cards", def.Count, len(cards))
	}

	return cards, nil
}
