// Package strategy defines the closed set of ways an animal can get airborne.
package strategy

import (
	"fmt"
	"strings"
)

// FlyingStrategy produces the message shown when an animal attempts to fly.
//
// The set of implementations is sealed: Airplane, FlapWings, Gliding and
// UnableToFly are the only variants.
type FlyingStrategy interface {
	// FlyingMessage returns the fixed message for this variant
	FlyingMessage() string
	// Name returns the stable identifier of this variant
	Name() Name

	flyingStrategy()
}

// Name identifies a flying strategy variant
type Name string

const (
	NameAirplane    Name = "airplane"
	NameFlapWings   Name = "flap_wings"
	NameGliding     Name = "gliding"
	NameUnableToFly Name = "unable_to_fly"
)

// IsValid checks if the name refers to a known variant
func (n Name) IsValid() bool {
	switch n {
	case NameAirplane, NameFlapWings, NameGliding, NameUnableToFly:
		return true
	}
	return false
}

// Airplane flies by boarding a machine.
type Airplane struct{}

// FlapWings flies under its own power.
type FlapWings struct{}

// Gliding spreads wings (or arms) without flapping.
type Gliding struct{}

// UnableToFly is the fallback for animals with no way to fly.
type UnableToFly struct{}

func (Airplane) FlyingMessage() string    { return "Board an airplane and fly inside it." }
func (FlapWings) FlyingMessage() string   { return "Flap wings and fly." }
func (Gliding) FlyingMessage() string     { return "Spread wings and glide." }
func (UnableToFly) FlyingMessage() string { return "Unable to fly" }

func (Airplane) Name() Name    { return NameAirplane }
func (FlapWings) Name() Name   { return NameFlapWings }
func (Gliding) Name() Name     { return NameGliding }
func (UnableToFly) Name() Name { return NameUnableToFly }

func (Airplane) flyingStrategy()    {}
func (FlapWings) flyingStrategy()   {}
func (Gliding) flyingStrategy()     {}
func (UnableToFly) flyingStrategy() {}

func (s Airplane) String() string    { return string(s.Name()) }
func (s FlapWings) String() string   { return string(s.Name()) }
func (s Gliding) String() string     { return string(s.Name()) }
func (s UnableToFly) String() string { return string(s.Name()) }

// All returns every variant in a stable order
func All() []FlyingStrategy {
	return []FlyingStrategy{Airplane{}, FlapWings{}, Gliding{}, UnableToFly{}}
}

// Default returns the strategy used when an animal has none set
func Default() FlyingStrategy {
	return UnableToFly{}
}

// MessageOf returns the flying message for s, falling back to Default when s is nil
func MessageOf(s FlyingStrategy) string {
	if s == nil {
		return Default().FlyingMessage()
	}
	return s.FlyingMessage()
}

// Equal reports whether a and b are the same variant. Two nil strategies are
// equal; nil never equals a concrete variant.
func Equal(a, b FlyingStrategy) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name() == b.Name()
}

// Parse resolves a strategy from its name. Matching ignores case and accepts
// '-' or spaces in place of '_' (so "Flap Wings" and "flap-wings" both work).
func Parse(s string) (FlyingStrategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	for _, candidate := range All() {
		if string(candidate.Name()) == normalized {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("unknown flying strategy %q (valid: %s)", s, strings.Join(names(), ", "))
}

func names() []string {
	all := All()
	out := make([]string, 0, len(all))
	for _, s := range all {
		out = append(out, string(s.Name()))
	}
	return out
}
