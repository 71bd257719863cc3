package tameshiwari

import (
	"fmt"
	"sort"
	"strings"
)

// MechanicalClass selects the multi-layer scaling behavior of a material.
// There are exactly two classes; new materials only ever pick one of them,
// they never introduce new scaling behavior.
type MechanicalClass int

const (
	// Flexible materials (wood) bend before failure. Stacked layers
	// reinforce each other, so unpegged force scales superlinearly.
	Flexible MechanicalClass = iota

	// Brittle materials (concrete) fail independently layer-by-layer,
	// so unpegged force scales linearly.
	Brittle
)

// String returns the class name used in material definition files.
func (c MechanicalClass) String() string {
	switch c {
	case Flexible:
		return "flexible"
	case Brittle:
		return "brittle"
	default:
		return fmt.Sprintf("MechanicalClass(%d)", int(c))
	}
}

// Material is one breakable demonstration material.
//
// SingleLayerForce values are empirical single-layer breaking forces in lbf
// (dynamic strike data, ±20-30% with technique and material quality).
// Mass is the per-layer fragment mass in kg, used by the pegged momentum model.
type Material struct {
	Name             string
	SingleLayerForce float64 // lbf, > 0
	Mass             float64 // kg, > 0
	Class            MechanicalClass
}

// MaterialSpec is the wire shape of one material definition as supplied by
// an override source (YAML file, prompt, ...). F1 and Mass are pointers so a
// missing field is distinguishable from an explicit zero.
type MaterialSpec struct {
	F1   *float64 `yaml:"f1"`
	Mass *float64 `yaml:"mass"`
	Type string   `yaml:"type"`
}

// ParseMaterialSpec validates one definition and converts it to a Material.
// A definition must be complete: partial-field merging is not supported.
func ParseMaterialSpec(name string, spec MaterialSpec) (Material, error) {
	if spec.F1 == nil {
		return Material{}, fmt.Errorf("%w: %s: missing f1", ErrInvalidMaterialDefinition, name)
	}
	if *spec.F1 <= 0 {
		return Material{}, fmt.Errorf("%w: %s: f1 must be positive, got %v", ErrInvalidMaterialDefinition, name, *spec.F1)
	}
	if spec.Mass == nil {
		return Material{}, fmt.Errorf("%w: %s: missing mass", ErrInvalidMaterialDefinition, name)
	}
	if *spec.Mass <= 0 {
		return Material{}, fmt.Errorf("%w: %s: mass must be positive, got %v", ErrInvalidMaterialDefinition, name, *spec.Mass)
	}

	var class MechanicalClass
	switch strings.ToLower(strings.TrimSpace(spec.Type)) {
	case "flexible":
		class = Flexible
	case "brittle":
		class = Brittle
	default:
		return Material{}, fmt.Errorf("%w: %s: type must be flexible or brittle, got %q",
			ErrInvalidMaterialDefinition, name, spec.Type)
	}

	return Material{
		Name:             name,
		SingleLayerForce: *spec.F1,
		Mass:             *spec.Mass,
		Class:            class,
	}, nil
}

// Catalog is an immutable mapping of material name to Material. Build one
// with DefaultCatalog and extend it with WithOverrides; a Catalog is never
// mutated after construction.
type Catalog struct {
	materials map[string]Material
}

// DefaultCatalog returns the built-in material set.
//
// Empirical bases:
//   - pine: 200 lbf for 12x12x0.75" boards (~1,100 N dynamic averages)
//   - paulownia: 100 lbf (poplar alternative; MOR ratio ~0.5-0.7 vs pine)
//   - concrete: 500 lbf (low-density patio slab, empirical range 300-1,100)
func DefaultCatalog() Catalog {
	return Catalog{materials: map[string]Material{
		"pine":      {Name: "pine", SingleLayerForce: 200, Mass: 0.8, Class: Flexible},
		"paulownia": {Name: "paulownia", SingleLayerForce: 100, Mass: 0.5, Class: Flexible},
		"concrete":  {Name: "concrete", SingleLayerForce: 500, Mass: 5.5, Class: Brittle},
	}}
}

// Resolve looks up a material by name.
func (c Catalog) Resolve(name string) (Material, error) {
	m, ok := c.materials[name]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return m, nil
}

// WithOverrides returns a new Catalog with every definition in specs
// upserted by name: unknown names are added, known names are replaced
// wholesale. The receiver is left untouched. The first invalid definition
// rejects the entire merge.
func (c Catalog) WithOverrides(specs map[string]MaterialSpec) (Catalog, error) {
	merged := make(map[string]Material, len(c.materials)+len(specs))
	for name, m := range c.materials {
		merged[name] = m
	}

	// Deterministic validation order so the reported failure is stable.
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		m, err := ParseMaterialSpec(name, specs[name])
		if err != nil {
			return Catalog{}, err
		}
		merged[name] = m
	}

	return Catalog{materials: merged}, nil
}

// Names returns the catalog's material names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.materials))
	for name := range c.materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Materials returns a copy of the catalog sorted by name.
func (c Catalog) Materials() []Material {
	out := make([]Material, 0, len(c.materials))
	for _, name := range c.Names() {
		out = append(out, c.materials[name])
	}
	return out
}

// Len returns the number of materials in the catalog.
func (c Catalog) Len() int { return len(c.materials) }
