package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ScientificClassification is the taxonomic rank of an animal, from kingdom
// down to species. Values are immutable once built; use ClassificationBuilder
// to construct one.
type ScientificClassification struct {
	kingdom    string
	phylum     string
	class      string
	order      string
	subOrder   string // optional
	infraOrder string // optional
	species    string
	family     string
	subFamily  string
	tribe      string
	genus      string // optional
}

func (c ScientificClassification) Kingdom() string    { return c.kingdom }
func (c ScientificClassification) Phylum() string     { return c.phylum }
func (c ScientificClassification) Class() string      { return c.class }
func (c ScientificClassification) Order() string      { return c.order }
func (c ScientificClassification) SubOrder() string   { return c.subOrder }
func (c ScientificClassification) InfraOrder() string { return c.infraOrder }
func (c ScientificClassification) Species() string    { return c.species }
func (c ScientificClassification) Family() string     { return c.family }
func (c ScientificClassification) SubFamily() string  { return c.subFamily }
func (c ScientificClassification) Tribe() string      { return c.tribe }
func (c ScientificClassification) Genus() string      { return c.genus }

// IsZero reports whether c is the zero value, i.e. was never built
func (c ScientificClassification) IsZero() bool {
	return c == ScientificClassification{}
}

// Equal compares every rank, optional ones included
func (c ScientificClassification) Equal(other ScientificClassification) bool {
	return c == other
}

// Hash returns a hash over every rank. Equal classifications hash equally.
func (c ScientificClassification) Hash() uint64 {
	d := xxhash.New()
	c.writeHash(d)
	return d.Sum64()
}

func (c ScientificClassification) writeHash(d *xxhash.Digest) {
	for _, field := range c.fields() {
		_, _ = d.WriteString(field.value)
		// Separator so ("ab","c") and ("a","bc") hash differently
		_, _ = d.Write([]byte{0})
	}
}

// String lists every rank in a fixed order
func (c ScientificClassification) String() string {
	fields := c.fields()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %q", f.label, f.value))
	}
	return "ScientificClassification{" + strings.Join(parts, ", ") + "}"
}

type rank struct {
	label string
	value string
}

func (c ScientificClassification) fields() []rank {
	return []rank{
		{"Kingdom", c.kingdom},
		{"Phylum", c.phylum},
		{"Class", c.class},
		{"Order", c.order},
		{"SubOrder", c.subOrder},
		{"InfraOrder", c.infraOrder},
		{"Species", c.species},
		{"Family", c.family},
		{"SubFamily", c.subFamily},
		{"Tribe", c.tribe},
		{"Genus", c.genus},
	}
}

type classificationDocument struct {
	Kingdom    string `json:"kingdom" yaml:"kingdom"`
	Phylum     string `json:"phylum" yaml:"phylum"`
	Class      string `json:"class" yaml:"class"`
	Order      string `json:"order" yaml:"order"`
	SubOrder   string `json:"sub_order,omitempty" yaml:"sub_order,omitempty"`
	InfraOrder string `json:"infra_order,omitempty" yaml:"infra_order,omitempty"`
	Family     string `json:"family" yaml:"family"`
	SubFamily  string `json:"sub_family" yaml:"sub_family"`
	Tribe      string `json:"tribe" yaml:"tribe"`
	Genus      string `json:"genus,omitempty" yaml:"genus,omitempty"`
	Species    string `json:"species" yaml:"species"`
}

func (c ScientificClassification) document() classificationDocument {
	return classificationDocument{
		Kingdom:    c.kingdom,
		Phylum:     c.phylum,
		Class:      c.class,
		Order:      c.order,
		SubOrder:   c.subOrder,
		InfraOrder: c.infraOrder,
		Family:     c.family,
		SubFamily:  c.subFamily,
		Tribe:      c.tribe,
		Genus:      c.genus,
		Species:    c.species,
	}
}

// MarshalJSON renders the classification with snake_case keys
func (c ScientificClassification) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.document())
}

// MarshalYAML renders the classification with snake_case keys
func (c ScientificClassification) MarshalYAML() (interface{}, error) {
	return c.document(), nil
}

// ClassificationBuilder accumulates ranks for a ScientificClassification.
// The zero value is ready to use.
type ClassificationBuilder struct {
	c ScientificClassification
}

// NewClassificationBuilder returns an empty builder
func NewClassificationBuilder() *ClassificationBuilder {
	return &ClassificationBuilder{}
}

func (b *ClassificationBuilder) Kingdom(v string) *ClassificationBuilder {
	b.c.kingdom = v
	return b
}

func (b *ClassificationBuilder) Phylum(v string) *ClassificationBuilder {
	b.c.phylum = v
	return b
}

func (b *ClassificationBuilder) Class(v string) *ClassificationBuilder {
	b.c.class = v
	return b
}

func (b *ClassificationBuilder) Order(v string) *ClassificationBuilder {
	b.c.order = v
	return b
}

func (b *ClassificationBuilder) SubOrder(v string) *ClassificationBuilder {
	b.c.subOrder = v
	return b
}

func (b *ClassificationBuilder) InfraOrder(v string) *ClassificationBuilder {
	b.c.infraOrder = v
	return b
}

func (b *ClassificationBuilder) Species(v string) *ClassificationBuilder {
	b.c.species = v
	return b
}

func (b *ClassificationBuilder) Family(v string) *ClassificationBuilder {
	b.c.family = v
	return b
}

func (b *ClassificationBuilder) SubFamily(v string) *ClassificationBuilder {
	b.c.subFamily = v
	return b
}

func (b *ClassificationBuilder) Tribe(v string) *ClassificationBuilder {
	b.c.tribe = v
	return b
}

func (b *ClassificationBuilder) Genus(v string) *ClassificationBuilder {
	b.c.genus = v
	return b
}

// Build validates the required ranks and returns the classification.
// Kingdom, phylum, class, order, species, family, sub_family and tribe are
// required; a blank value counts as missing. The first missing rank is
// reported as a *MissingFieldError.
func (b *ClassificationBuilder) Build() (ScientificClassification, error) {
	required := []struct {
		field string
		value string
	}{
		{"kingdom", b.c.kingdom},
		{"phylum", b.c.phylum},
		{"class", b.c.class},
		{"order", b.c.order},
		{"species", b.c.species},
		{"family", b.c.family},
		{"sub_family", b.c.subFamily},
		{"tribe", b.c.tribe},
	}
	for _, r := range required {
		if isBlank(r.value) {
			return ScientificClassification{}, missing("scientific classification", r.field)
		}
	}
	return b.c, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
