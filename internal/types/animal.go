package types

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/codingchica/patterns/internal/strategy"
)

// Animal is a named creature with a scientific classification and an
// optional way to fly. Everything except the flying strategy is fixed at
// build time.
//
// Animal is not safe for concurrent mutation via SetFlyingStrategy.
type Animal struct {
	classification ScientificClassification
	name           string
	description    string
	flyingStrategy strategy.FlyingStrategy // nil means none set
}

func (a *Animal) Classification() ScientificClassification { return a.classification }
func (a *Animal) Name() string                             { return a.name }
func (a *Animal) Description() string                      { return a.description }

// FlyingStrategy returns the current strategy and whether one is set
func (a *Animal) FlyingStrategy() (strategy.FlyingStrategy, bool) {
	return a.flyingStrategy, a.flyingStrategy != nil
}

// SetFlyingStrategy replaces the current strategy. Passing nil clears it.
func (a *Animal) SetFlyingStrategy(s strategy.FlyingStrategy) {
	a.flyingStrategy = s
}

// FlyingMessage describes how the animal flies, using strategy.Default
// when no strategy is set
func (a *Animal) FlyingMessage() string {
	return strategy.MessageOf(a.flyingStrategy)
}

// Equal compares all four fields. Strategies compare by variant, so two
// separately constructed Gliding values are equal.
func (a *Animal) Equal(other *Animal) bool {
	if a == nil || other == nil {
		return a == nil && other == nil
	}
	return a.name == other.name &&
		a.description == other.description &&
		a.classification.Equal(other.classification) &&
		strategy.Equal(a.flyingStrategy, other.flyingStrategy)
}

// Hash returns a hash consistent with Equal
func (a *Animal) Hash() uint64 {
	d := xxhash.New()
	a.classification.writeHash(d)
	for _, s := range []string{a.name, a.description, string(a.strategyName())} {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

func (a *Animal) strategyName() strategy.Name {
	if a.flyingStrategy == nil {
		return ""
	}
	return a.flyingStrategy.Name()
}

func (a *Animal) String() string {
	flying := "<none>"
	if a.flyingStrategy != nil {
		flying = string(a.flyingStrategy.Name())
	}
	return fmt.Sprintf("Animal{Name: %q, Description: %q, FlyingStrategy: %s, Classification: %s}",
		a.name, a.description, flying, a.classification)
}

type animalDocument struct {
	Name           string                   `json:"name" yaml:"name"`
	Description    string                   `json:"description" yaml:"description"`
	FlyingStrategy strategy.Name            `json:"flying_strategy,omitempty" yaml:"flying_strategy,omitempty"`
	FlyingMessage  string                   `json:"flying_message" yaml:"flying_message"`
	Classification ScientificClassification `json:"classification" yaml:"classification"`
}

func (a *Animal) document() animalDocument {
	return animalDocument{
		Name:           a.name,
		Description:    a.description,
		FlyingStrategy: a.strategyName(),
		FlyingMessage:  a.FlyingMessage(),
		Classification: a.classification,
	}
}

// MarshalJSON renders the animal along with its resolved flying message
func (a *Animal) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.document())
}

// MarshalYAML renders the animal along with its resolved flying message
func (a *Animal) MarshalYAML() (interface{}, error) {
	return a.document(), nil
}

// AnimalBuilder accumulates fields for an Animal
type AnimalBuilder struct {
	classification ScientificClassification
	name           string
	description    string
	flyingStrategy strategy.FlyingStrategy
}

// NewAnimalBuilder returns an empty builder
func NewAnimalBuilder() *AnimalBuilder {
	return &AnimalBuilder{}
}

func (b *AnimalBuilder) Classification(c ScientificClassification) *AnimalBuilder {
	b.classification = c
	return b
}

func (b *AnimalBuilder) Name(v string) *AnimalBuilder {
	b.name = v
	return b
}

func (b *AnimalBuilder) Description(v string) *AnimalBuilder {
	b.description = v
	return b
}

// FlyingStrategy sets the initial strategy. It is optional; nil leaves it unset.
func (b *AnimalBuilder) FlyingStrategy(s strategy.FlyingStrategy) *AnimalBuilder {
	b.flyingStrategy = s
	return b
}

// Build validates the required fields (classification, name, description)
// and returns a new Animal. Each call returns a distinct instance.
func (b *AnimalBuilder) Build() (*Animal, error) {
	// The zero classification can't come out of ClassificationBuilder.Build
	if b.classification.IsZero() {
		return nil, missing("animal", "classification")
	}
	if isBlank(b.name) {
		return nil, missing("animal", "name")
	}
	if isBlank(b.description) {
		return nil, missing("animal", "description")
	}
	return &Animal{
		classification: b.classification,
		name:           b.name,
		description:    b.description,
		flyingStrategy: b.flyingStrategy,
	}, nil
}
