// Package factory builds pre-configured animals of the kinds it knows about.
package factory

import (
	"fmt"
	"strings"

	"github.com/codingchica/patterns/internal/strategy"
	"github.com/codingchica/patterns/internal/types"
)

// Kind identifies an animal the factory can build
type Kind string

const (
	KindHuman          Kind = "human"
	KindFlyingSquirrel Kind = "flying_squirrel"
)

// IsValid checks if the kind is one the factory can build
func (k Kind) IsValid() bool {
	switch k {
	case KindHuman, KindFlyingSquirrel:
		return true
	}
	return false
}

// CommonName returns the everyday name for the kind ("Person", "Flying Squirrel")
func (k Kind) CommonName() string {
	switch k {
	case KindHuman:
		return "Person"
	case KindFlyingSquirrel:
		return "Flying Squirrel"
	}
	return ""
}

// Kinds returns every buildable kind in a stable order
func Kinds() []Kind {
	return []Kind{KindHuman, KindFlyingSquirrel}
}

// ParseKind resolves a kind from its identifier or common name, ignoring case.
// "squirrel" is accepted as shorthand for flying_squirrel.
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	switch normalized {
	case "human", "person":
		return KindHuman, nil
	case "flying_squirrel", "squirrel":
		return KindFlyingSquirrel, nil
	}
	return "", fmt.Errorf("unknown animal kind %q (valid: human, flying_squirrel)", s)
}

// AnimalFactory creates animals with fixed classifications. Use Instance to
// obtain the shared factory.
type AnimalFactory struct {
	classifications map[Kind]types.ScientificClassification
}

// instance is built during package initialisation and never modified, so it
// can be shared without locking.
var instance = newAnimalFactory()

// Instance returns the process-wide factory. Every call returns the same pointer.
func Instance() *AnimalFactory {
	return instance
}

func newAnimalFactory() *AnimalFactory {
	return &AnimalFactory{
		classifications: map[Kind]types.ScientificClassification{
			// https://en.wikipedia.org/wiki/Human_taxonomy
			KindHuman: mustBuild(types.NewClassificationBuilder().
				Kingdom("Animalia").
				Phylum("Chordata").
				Class("Mammalia").
				Order("Primates").
				SubOrder("Haplorhini").
				InfraOrder("Simiformes").
				Family("Hominidae").
				SubFamily("Homininae").
				Tribe("Hominini").
				Genus("Homo").
				Species("Homo sapiens")),
			// https://en.wikipedia.org/wiki/Flying_squirrel
			KindFlyingSquirrel: mustBuild(types.NewClassificationBuilder().
				Kingdom("Animalia").
				Phylum("Chordata").
				Class("Mammalia").
				Order("Rodentia").
				Family("Sciuridae").
				SubFamily("Sciuridae").
				Tribe("Pteromyini").
				Species("Glaucomys sabrinus")),
		},
	}
}

// mustBuild panics on error; it is only used for the static tables above.
func mustBuild(b *types.ClassificationBuilder) types.ScientificClassification {
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("factory: invalid built-in classification: %v", err))
	}
	return c
}

// Classification returns the fixed classification for kind
func (f *AnimalFactory) Classification(kind Kind) (types.ScientificClassification, bool) {
	c, ok := f.classifications[kind]
	return c, ok
}

// Human builds a person. Adults fly by airplane; children have no flying
// strategy. Name and description are validated by the animal builder.
func (f *AnimalFactory) Human(name, description string, isAdult bool) (*types.Animal, error) {
	var s strategy.FlyingStrategy
	if isAdult {
		s = strategy.Airplane{}
	}
	return f.build(KindHuman, name, description, s)
}

// FlyingSquirrel builds a flying squirrel. Adults glide; juveniles have no
// flying strategy.
func (f *AnimalFactory) FlyingSquirrel(name, description string, isAdult bool) (*types.Animal, error) {
	var s strategy.FlyingStrategy
	if isAdult {
		s = strategy.Gliding{}
	}
	return f.build(KindFlyingSquirrel, name, description, s)
}

// Create dispatches to the constructor for kind
func (f *AnimalFactory) Create(kind Kind, name, description string, isAdult bool) (*types.Animal, error) {
	switch kind {
	case KindHuman:
		return f.Human(name, description, isAdult)
	case KindFlyingSquirrel:
		return f.FlyingSquirrel(name, description, isAdult)
	}
	return nil, fmt.Errorf("unknown animal kind %q", kind)
}

func (f *AnimalFactory) build(kind Kind, name, description string, s strategy.FlyingStrategy) (*types.Animal, error) {
	return types.NewAnimalBuilder().
		Classification(f.classifications[kind]).
		Name(name).
		Description(description).
		FlyingStrategy(s).
		Build()
}
