package axis

import "strings"

// Unit is the physical unit of an axis.
type Unit string

const (
	// Nanometre tags wavelength axes in nm.
	Nanometre Unit = "nm"
	// Micrometre tags wavelength axes in µm.
	Micrometre Unit = "µm"
	// ElectronVolt tags photon-energy axes in eV.
	ElectronVolt Unit = "eV"
)

// String returns the unit symbol.
func (u Unit) String() string { return string(u) }

// IsEnergy reports whether u is a photon-energy unit.
func (u Unit) IsEnergy() bool { return u == ElectronVolt }

// ParseUnit maps a unit symbol to a [Unit]. "um" and "micron" are accepted for
// µm. Unknown symbols are returned unchanged so that opaque units survive a
// round trip through file formats.
func ParseUnit(s string) Unit {
	switch strings.TrimSpace(s) {
	case "nm":
		return Nanometre
	case "µm", "μm", "um", "micron":
		return Micrometre
	case "eV", "ev":
		return ElectronVolt
	default:
		return Unit(strings.TrimSpace(s))
	}
}

// Axis is the capability set shared by all axis variants.
type Axis interface {
	// Len returns the number of samples.
	Len() int
	// At returns sample i.
	At(i int) float64
	// Values returns a fresh copy of all samples.
	Values() []float64
	// ValueToIndex returns the index of the sample nearest to v.
	// It fails with ErrOutOfRange when v lies outside the axis.
	ValueToIndex(v float64) (int, error)
	// IsUniform reports whether samples are evenly spaced by construction.
	IsUniform() bool
	// Materialize returns the samples as an explicit non-uniform axis.
	Materialize() *NonUniform

	Name() string
	Unit() Unit
	Navigate() bool
}

// Low returns the smallest sample of a.
func Low(a Axis) float64 { return a.At(0) }

// High returns the largest sample of a.
func High(a Axis) float64 { return a.At(a.Len() - 1) }

type info struct {
	name     string
	unit     Unit
	navigate bool
}

func (i info) Name() string   { return i.name }
func (i info) Unit() Unit     { return i.unit }
func (i info) Navigate() bool { return i.navigate }

// Option configures axis metadata.
type Option func(*info)

// WithName sets the axis name.
func WithName(name string) Option {
	return func(i *info) { i.name = name }
}

// WithUnit sets the axis unit.
func WithUnit(unit Unit) Option {
	return func(i *info) { i.unit = unit }
}

// WithNavigate marks the axis as a navigation axis.
func WithNavigate(navigate bool) Option {
	return func(i *info) { i.navigate = navigate }
}

func applyOptions(opts []Option) info {
	i := info{name: "Wavelength", unit: Nanometre}
	for _, opt := range opts {
		if opt != nil {
			opt(&i)
		}
	}
	return i
}

// infoOptions returns options reproducing the metadata of a.
func infoOptions(a Axis) []Option {
	return []Option{WithName(a.Name()), WithUnit(a.Unit()), WithNavigate(a.Navigate())}
}

var (
	_ Axis = (*Uniform)(nil)
	_ Axis = (*NonUniform)(nil)
	_ Axis = (*Functional)(nil)
)
