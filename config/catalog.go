package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// OrbitSpec describes one body's orbit; zero Precision means the global precision
type OrbitSpec struct {
	Radius    float64   `yaml:"radius"`
	Center    []float64 `yaml:"center,flow,omitempty"`
	Rotation  []float64 `yaml:"rotation,flow,omitempty"`
	Precision int       `yaml:"precision,omitempty"`
}

// BodySpec is one catalog entry
type BodySpec struct {
	Name   string    `yaml:"name"`
	Symbol string    `yaml:"symbol,omitempty"`
	Orbit  OrbitSpec `yaml:"orbit"`
}

// Catalog is the ordered list of bodies to animate
type Catalog struct {
	Bodies []BodySpec `yaml:"bodies"`
}

// DefaultCatalog returns the nine classical bodies with their mean orbital radii in AU
func DefaultCatalog() *Catalog {
	origin := []float64{0, 0, 0}
	body := func(name, symbol string, radius float64) BodySpec {
		return BodySpec{
			Name:   name,
			Symbol: symbol,
			Orbit:  OrbitSpec{Radius: radius, Center: origin},
		}
	}
	return &Catalog{Bodies: []BodySpec{
		body("Ἑρμῆς", "☿", 0.387098),
		body("Ἀφροδίτη", "", 0.723332),
		body("Γαῖα", "", 1),
		body("Ἄρης", "", 1.3814),
		body("Ζεύς", "", 5.2038),
		body("Κρόνος", "", 9.5826),
		body("Οὐρανός", "", 19.19126),
		body("Ποσειδῶν", "", 30.07),
		body("Ἅιδης", "", 39.482),
	}}
}

// LoadCatalog decodes a YAML catalog and validates it
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty catalog", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalogFile reads a catalog from path
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// WriteYAML encodes the catalog
func (c *Catalog) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

// Validate checks names are present and unique and vectors have three components
func (c *Catalog) Validate() error {
	if len(c.Bodies) == 0 {
		return fmt.Errorf("%w: catalog has no bodies", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Bodies))
	for i, b := range c.Bodies {
		if b.Name == "" {
			return fmt.Errorf("%w: body %d has no name", ErrInvalidConfig, i)
		}
		if _, dup := seen[b.Name]; dup {
			return fmt.Errorf("%w: duplicate body name %q", ErrInvalidConfig, b.Name)
		}
		seen[b.Name] = struct{}{}

		if b.Orbit.Radius < 0 {
			return fmt.Errorf("%w: body %q has negative radius %g", ErrInvalidConfig, b.Name, b.Orbit.Radius)
		}
		if b.Orbit.Precision < 0 {
			return fmt.Errorf("%w: body %q has negative precision %d", ErrInvalidConfig, b.Name, b.Orbit.Precision)
		}
		if n := len(b.Orbit.Center); n != 0 && n != 3 {
			return fmt.Errorf("%w: body %q center needs 3 components, got %d", ErrInvalidConfig, b.Name, n)
		}
		if n := len(b.Orbit.Rotation); n != 0 && n != 3 {
			return fmt.Errorf("%w: body %q rotation needs 3 components, got %d", ErrInvalidConfig, b.Name, n)
		}
	}
	return nil
}
