package compliance

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed grounds.yaml
var defaultCatalogueYAML []byte

// Period is a statutory notice period expressed in calendar months and days.
type Period struct {
	Months int `yaml:"months" json:"months,omitempty"`
	Days   int `yaml:"days" json:"days,omitempty"`
}

// IsZero reports whether the period is empty.
func (p Period) IsZero() bool {
	return p.Months == 0 && p.Days == 0
}

// From returns the date p after start.
func (p Period) From(start time.Time) time.Time {
	return start.AddDate(0, p.Months, p.Days)
}

func (p Period) shorterThan(other Period) bool {
	ref := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	return p.From(ref).Before(other.From(ref))
}

// Ground is one Section 8 possession ground.
type Ground struct {
	Code        string `yaml:"code" json:"code"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description" json:"description"`
	// PrecedencePeriod, when set, replaces the default notice period for any
	// notice citing this ground regardless of the other grounds selected.
	PrecedencePeriod *Period `yaml:"precedence_period,omitempty" json:"precedence_period,omitempty"`
	// Advisory is surfaced to the caller as a warning when the ground is cited.
	Advisory string `yaml:"advisory,omitempty" json:"advisory,omitempty"`
}

// Catalogue is the versioned table of Section 8 grounds.
type Catalogue struct {
	Version       string   `yaml:"version" json:"version"`
	DefaultPeriod Period   `yaml:"default_period" json:"default_period"`
	Grounds       []Ground `yaml:"grounds" json:"grounds"`

	index map[string]int
}

// DefaultCatalogue returns the catalogue compiled into the binary.
func DefaultCatalogue() *Catalogue {
	c, err := ParseCatalogue(bytes.NewReader(defaultCatalogueYAML))
	if err != nil {
		panic(fmt.Sprintf("compliance: embedded ground catalogue: %v", err))
	}
	return c
}

// LoadCatalogue reads a catalogue from path, or returns the embedded one when
// path is empty.
func LoadCatalogue(path string) (*Catalogue, error) {
	if path == "" {
		return DefaultCatalogue(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ground catalogue: %w", err)
	}
	defer f.Close()
	return ParseCatalogue(f)
}

// ParseCatalogue decodes and validates a YAML catalogue.
func ParseCatalogue(r io.Reader) (*Catalogue, error) {
	var c Catalogue
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode ground catalogue: %w", err)
	}
	if c.DefaultPeriod.IsZero() {
		return nil, fmt.Errorf("ground catalogue %q: default_period is required", c.Version)
	}
	if len(c.Grounds) == 0 {
		return nil, fmt.Errorf("ground catalogue %q: no grounds", c.Version)
	}
	c.index = make(map[string]int, len(c.Grounds))
	for i, g := range c.Grounds {
		if g.Code == "" {
			return nil, fmt.Errorf("ground catalogue %q: ground %d has no code", c.Version, i)
		}
		if _, dup := c.index[g.Code]; dup {
			return nil, fmt.Errorf("ground catalogue %q: duplicate ground %s", c.Version, g.Code)
		}
		if g.PrecedencePeriod != nil && g.PrecedencePeriod.IsZero() {
			return nil, fmt.Errorf("ground catalogue %q: ground %s has an empty precedence_period", c.Version, g.Code)
		}
		c.index[g.Code] = i
	}
	return &c, nil
}

// Lookup returns the ground with code.
func (c *Catalogue) Lookup(code string) (Ground, bool) {
	i, ok := c.index[code]
	if !ok {
		return Ground{}, false
	}
	return c.Grounds[i], true
}
