package kml

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	kmlerrors "github.com/cleder/fastkml-go/errors"
	"github.com/cleder/fastkml-go/internal/xmltree"
)

// Coordinate is a single lon,lat or lon,lat,alt tuple.
type Coordinate []float64

// Geometry is the union of the KML geometry elements.
type Geometry interface {
	Object
	geometry()
}

// BaseGeometry carries the fields shared by all geometry elements.
type BaseGeometry struct {
	BaseObject
	Extrude      *bool
	Tessellate   *bool
	AltitudeMode *AltitudeMode
}

// Point is a single geographic location.
type Point struct {
	BaseGeometry
	Coords []Coordinate
}

func (*Point) geometry() {}

// LineString is a connected set of line segments.
type LineString struct {
	BaseGeometry
	Coords []Coordinate
}

func (*LineString) geometry() {}

// LinearRing is a closed line string, typically a polygon boundary.
type LinearRing struct {
	BaseGeometry
	Coords []Coordinate
}

func (*LinearRing) geometry() {}

// OuterBoundary wraps the outer ring of a polygon.
type OuterBoundary struct {
	XMLObject
	Ring *LinearRing
}

// InnerBoundary wraps one inner ring (hole) of a polygon.
type InnerBoundary struct {
	XMLObject
	Ring *LinearRing
}

// Polygon is an outer boundary with zero or more holes.
type Polygon struct {
	BaseGeometry
	Outer *OuterBoundary
	Inner []*InnerBoundary
}

func (*Polygon) geometry() {}

// Validate rejects polygons without an outer boundary.
func (p *Polygon) Validate() error {
	if p.Outer == nil || p.Outer.Ring == nil {
		return fmt.Errorf("kml: Polygon requires an outer boundary ring")
	}
	return nil
}

// MultiGeometry is a container of any number of geometries.
type MultiGeometry struct {
	BaseGeometry
	Geometries []Geometry
}

func (*MultiGeometry) geometry() {}

// parseCoordinatesText parses whitespace-separated tuples of comma-separated
// floats. Repeated commas within a tuple are collapsed before splitting.
func parseCoordinatesText(text string) ([]Coordinate, error) {
	var coords []Coordinate
	for _, token := range strings.Fields(text) {
		for strings.Contains(token, ",,") {
			token = strings.ReplaceAll(token, ",,", ",")
		}
		parts := strings.Split(token, ",")
		if len(parts) != 2 && len(parts) != 3 {
			return nil, fmt.Errorf("coordinate %q must have 2 or 3 components", token)
		}
		c := make(Coordinate, 0, len(parts))
		for _, part := range parts {
			f, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, fmt.Errorf("coordinate %q: %w", token, err)
			}
			c = append(c, f)
		}
		coords = append(coords, c)
	}
	return coords, nil
}

// formatCoordinates renders tuples at a fixed decimal precision, tuples
// joined by single spaces.
func formatCoordinates(coords []Coordinate, precision int) (string, error) {
	tuples := make([]string, 0, len(coords))
	for _, c := range coords {
		if len(c) != 2 && len(c) != 3 {
			return "", kmlerrors.NewWrite("coordinate %v must have 2 or 3 components", []float64(c))
		}
		parts := make([]string, 0, len(c))
		for _, f := range c {
			parts = append(parts, strconv.FormatFloat(f, 'f', precision, 64))
		}
		tuples = append(tuples, strings.Join(parts, ","))
	}
	return strings.Join(tuples, " "), nil
}

// CoordinatesSubelementKwarg reads a coordinates field from the text of its
// subelement. Malformed tuples follow the strict/lenient policy with a
// GeometryError.
func CoordinatesSubelementKwarg(p GetParams) (Kwargs, error) {
	text, child, ok := subelementText(p)
	if !ok {
		return Kwargs{}, nil
	}
	coords, err := parseCoordinatesText(text)
	if err != nil {
		ge := &kmlerrors.GeometryError{Element: xmltree.String(child), Err: err}
		return parseFailure(p.Strict, ge)
	}
	return Kwargs{p.Kwarg: coords}, nil
}

// CoordinatesSubelement writes a coordinates field as the text of a
// subelement at the configured precision. A tuple with other than 2 or 3
// components is an unconditional write error.
func CoordinatesSubelement(obj Object, p SetParams) error {
	f, ok := fieldValue(obj, p.AttrName)
	if !ok || f.Kind() != reflect.Slice || f.Len() == 0 {
		return nil
	}
	coords, ok := f.Interface().([]Coordinate)
	if !ok {
		return kmlerrors.NewWrite("field %s does not hold coordinates", p.AttrName)
	}
	text, err := formatCoordinates(coords, p.Precision)
	if err != nil {
		return err
	}
	xmltree.SubElement(p.Element, p.Node).SetText(text)
	return nil
}

func registerCoords(proto Object) {
	defaultRegistry.Register(proto, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf([]Coordinate(nil))},
		AttrName:   "Coords",
		Node:       "coordinates",
		GetKwarg:   CoordinatesSubelementKwarg,
		SetElement: CoordinatesSubelement,
	})
}

func init() {
	defaultRegistry.RegisterType(&BaseGeometry{}, TypeSpec{
		Parent: &BaseObject{},
		NSID:   NSKML,
	})
	defaultRegistry.Register(&BaseGeometry{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(false)},
		AttrName:   "Extrude",
		Node:       "extrude",
		GetKwarg:   SubelementBoolKwarg,
		SetElement: BoolSubelement,
	})
	defaultRegistry.Register(&BaseGeometry{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(false)},
		AttrName:   "Tessellate",
		Node:       "tessellate",
		GetKwarg:   SubelementBoolKwarg,
		SetElement: BoolSubelement,
	})
	defaultRegistry.Register(&BaseGeometry{}, RegistryItem{
		NSIDs:      []string{NSKML, NSGX},
		Classes:    []reflect.Type{reflect.TypeOf(AltitudeMode(0))},
		AttrName:   "AltitudeMode",
		Node:       "altitudeMode",
		GetKwarg:   SubelementEnumKwarg,
		SetElement: EnumSubelement,
	})

	defaultRegistry.RegisterType(&Point{}, TypeSpec{
		Parent: &BaseGeometry{},
		NSID:   NSKML,
		Node:   "Point",
		New:    func() Object { return &Point{} },
	})
	registerCoords(&Point{})

	defaultRegistry.RegisterType(&LineString{}, TypeSpec{
		Parent: &BaseGeometry{},
		NSID:   NSKML,
		Node:   "LineString",
		New:    func() Object { return &LineString{} },
	})
	registerCoords(&LineString{})

	defaultRegistry.RegisterType(&LinearRing{}, TypeSpec{
		Parent: &BaseGeometry{},
		NSID:   NSKML,
		Node:   "LinearRing",
		New:    func() Object { return &LinearRing{} },
	})
	registerCoords(&LinearRing{})

	defaultRegistry.RegisterType(&OuterBoundary{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSKML,
		Node:   "outerBoundaryIs",
		New:    func() Object { return &OuterBoundary{} },
	})
	defaultRegistry.Register(&OuterBoundary{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&LinearRing{})},
		AttrName:   "Ring",
		Node:       "LinearRing",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})

	defaultRegistry.RegisterType(&InnerBoundary{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSKML,
		Node:   "innerBoundaryIs",
		New:    func() Object { return &InnerBoundary{} },
	})
	defaultRegistry.Register(&InnerBoundary{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&LinearRing{})},
		AttrName:   "Ring",
		Node:       "LinearRing",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})

	defaultRegistry.RegisterType(&Polygon{}, TypeSpec{
		Parent: &BaseGeometry{},
		NSID:   NSKML,
		Node:   "Polygon",
		New:    func() Object { return &Polygon{} },
	})
	defaultRegistry.Register(&Polygon{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&OuterBoundary{})},
		AttrName:   "Outer",
		Node:       "outerBoundaryIs",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
	defaultRegistry.Register(&Polygon{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&InnerBoundary{})},
		AttrName:   "Inner",
		Node:       "innerBoundaryIs",
		GetKwarg:   XMLSubelementListKwarg,
		SetElement: XMLSubelementList,
	})

	defaultRegistry.RegisterType(&MultiGeometry{}, TypeSpec{
		Parent: &BaseGeometry{},
		NSID:   NSKML,
		Node:   "MultiGeometry",
		New:    func() Object { return &MultiGeometry{} },
	})
	defaultRegistry.Register(&MultiGeometry{}, RegistryItem{
		NSIDs: []string{NSKML, ""},
		Classes: []reflect.Type{
			reflect.TypeOf(&Point{}),
			reflect.TypeOf(&LineString{}),
			reflect.TypeOf(&Polygon{}),
			reflect.TypeOf(&LinearRing{}),
			reflect.TypeOf(&MultiGeometry{}),
		},
		AttrName:   "Geometries",
		Node:       "Point/LineString/Polygon/LinearRing/MultiGeometry",
		GetKwarg:   XMLSubelementListKwarg,
		SetElement: XMLSubelementList,
	})
}
