package kml

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cleder/fastkml-go/internal/logging"
)

var log = logging.DefaultLogger.WithField(logging.LogSubsys, "kml")

// Verbosity controls how defaults are handled during serialization. Terse
// omits values equal to the registered default, Normal writes whatever is
// present, Verbose also writes registered defaults for absent fields.
type Verbosity int

const (
	Terse Verbosity = iota
	Normal
	Verbose
)

// AltitudeMode specifies how the altitude component of coordinates is
// interpreted.
type AltitudeMode int

const (
	ClampToGround AltitudeMode = iota
	RelativeToGround
	Absolute
)

func (m AltitudeMode) String() string { return enumWireName(m) }

// RefreshMode specifies how a linked resource is refreshed.
type RefreshMode int

const (
	OnChange RefreshMode = iota
	OnInterval
	OnExpire
)

func (m RefreshMode) String() string { return enumWireName(m) }

// ViewRefreshMode specifies how a link is refreshed when the camera changes.
type ViewRefreshMode int

const (
	Never ViewRefreshMode = iota
	OnStop
	OnRequest
	OnRegion
)

func (m ViewRefreshMode) String() string { return enumWireName(m) }

// ColorMode specifies the color handling of a style.
type ColorMode int

const (
	ColorModeNormal ColorMode = iota
	ColorModeRandom
)

func (m ColorMode) String() string { return enumWireName(m) }

// PairKey identifies the state a StyleMap pair applies to.
type PairKey int

const (
	PairKeyNormal PairKey = iota
	PairKeyHighlight
)

func (k PairKey) String() string { return enumWireName(k) }

// Units specifies how screen overlay x/y values are interpreted.
type Units int

const (
	UnitsFraction Units = iota
	UnitsPixels
	UnitsInsetPixels
)

func (u Units) String() string { return enumWireName(u) }

// Shape is the surface a photo overlay is projected onto.
type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeCylinder
	ShapeSphere
)

func (s Shape) String() string { return enumWireName(s) }

// GridOrigin specifies where tile numbering of an image pyramid begins.
type GridOrigin int

const (
	GridOriginLowerLeft GridOrigin = iota
	GridOriginUpperLeft
)

func (g GridOrigin) String() string { return enumWireName(g) }

// DataType is the declared type of a schema simple field.
type DataType int

const (
	DataTypeString DataType = iota
	DataTypeInt
	DataTypeUint
	DataTypeShort
	DataTypeUshort
	DataTypeFloat
	DataTypeDouble
	DataTypeBool
)

func (d DataType) String() string { return enumWireName(d) }

// DateTimeResolution is the resolution a KML timestamp was expressed in.
type DateTimeResolution int

const (
	ResolutionDateTime DateTimeResolution = iota
	ResolutionDate
	ResolutionYearMonth
	ResolutionYear
)

func (r DateTimeResolution) String() string { return enumWireName(r) }

// enumSpec maps an enumeration to its wire strings. The slice is indexed by
// ordinal, so completeness is checked structurally at registration: every
// ordinal has exactly one non-empty wire string.
type enumSpec struct {
	name  string
	wire  []string
	index map[string]int
	lower map[string]int
}

var enumSpecs = map[reflect.Type]*enumSpec{}

// registerEnum records the bidirectional ordinal/wire-string mapping for an
// enumeration type. It panics on empty or duplicate wire strings; it runs
// only from init.
func registerEnum[E ~int](name string, wire []string) {
	spec := &enumSpec{
		name:  name,
		wire:  wire,
		index: make(map[string]int, len(wire)),
		lower: make(map[string]int, len(wire)),
	}
	for i, w := range wire {
		if w == "" {
			panic(fmt.Sprintf("kml: enum %s: empty wire string for ordinal %d", name, i))
		}
		if _, dup := spec.index[w]; dup {
			panic(fmt.Sprintf("kml: enum %s: duplicate wire string %q", name, w))
		}
		spec.index[w] = i
		spec.lower[strings.ToLower(w)] = i
	}
	enumSpecs[reflect.TypeOf(E(0))] = spec
}

func init() {
	registerEnum[AltitudeMode]("AltitudeMode", []string{"clampToGround", "relativeToGround", "absolute"})
	registerEnum[RefreshMode]("RefreshMode", []string{"onChange", "onInterval", "onExpire"})
	registerEnum[ViewRefreshMode]("ViewRefreshMode", []string{"never", "onStop", "onRequest", "onRegion"})
	registerEnum[ColorMode]("ColorMode", []string{"normal", "random"})
	registerEnum[PairKey]("PairKey", []string{"normal", "highlight"})
	registerEnum[Units]("Units", []string{"fraction", "pixels", "insetPixels"})
	registerEnum[Shape]("Shape", []string{"rectangle", "cylinder", "sphere"})
	registerEnum[GridOrigin]("GridOrigin", []string{"lowerLeft", "upperLeft"})
	registerEnum[DataType]("DataType", []string{"string", "int", "uint", "short", "ushort", "float", "double", "bool"})
	registerEnum[DateTimeResolution]("DateTimeResolution", []string{"dateTime", "date", "gYearMonth", "gYear"})
}

func enumWireName[E ~int](v E) string {
	spec := enumSpecs[reflect.TypeOf(v)]
	if spec == nil || int(v) < 0 || int(v) >= len(spec.wire) {
		return fmt.Sprintf("invalid(%d)", int(v))
	}
	return spec.wire[int(v)]
}

// enumWire returns the wire string for a reflected enum value.
func enumWire(v reflect.Value) (string, error) {
	spec := enumSpecs[v.Type()]
	if spec == nil {
		return "", fmt.Errorf("kml: %s is not a registered enum", v.Type())
	}
	ordinal := int(v.Int())
	if ordinal < 0 || ordinal >= len(spec.wire) {
		return "", fmt.Errorf("kml: invalid %s ordinal %d", spec.name, ordinal)
	}
	return spec.wire[ordinal], nil
}

// parseEnum converts a wire string to a value of the enum type t. Matching is
// relaxed: an exact match is preferred, a case-insensitive match is accepted
// with a logged warning, anything else is an error listing the known values.
func parseEnum(t reflect.Type, s string) (reflect.Value, error) {
	spec := enumSpecs[t]
	if spec == nil {
		return reflect.Value{}, fmt.Errorf("kml: %s is not a registered enum", t)
	}
	ordinal, ok := spec.index[s]
	if !ok {
		ordinal, ok = spec.lower[strings.ToLower(s)]
		if ok {
			log.Warnf("%s: case-insensitive match for %q as %q", spec.name, s, spec.wire[ordinal])
		}
	}
	if !ok {
		return reflect.Value{}, fmt.Errorf(
			"unknown value %q for %s, known values are %s",
			s, spec.name, strings.Join(spec.wire, ", "),
		)
	}
	v := reflect.New(t).Elem()
	v.SetInt(int64(ordinal))
	return v, nil
}
