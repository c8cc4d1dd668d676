package kml

import (
	"fmt"
	"reflect"
	"time"

	"github.com/cleder/fastkml-go/internal/xmltree"
)

// kmlDateTimeLayouts are tried in order, most specific first. Each layout is
// paired with the resolution it implies.
var kmlDateTimeLayouts = []struct {
	layout     string
	resolution DateTimeResolution
}{
	{time.RFC3339, ResolutionDateTime},
	{"2006-01-02T15:04:05", ResolutionDateTime},
	{"2006-01-02", ResolutionDate},
	{"2006-01", ResolutionYearMonth},
	{"2006", ResolutionYear},
}

// KmlDateTime pairs a timestamp with the resolution it was expressed in, so
// gYear and gYearMonth values round-trip without inventing precision.
type KmlDateTime struct {
	Time       time.Time
	Resolution DateTimeResolution
}

// NewKmlDateTime returns t at full dateTime resolution.
func NewKmlDateTime(t time.Time) *KmlDateTime {
	return &KmlDateTime{Time: t, Resolution: ResolutionDateTime}
}

// ParseKmlDateTime parses a KML timestamp at any of its supported
// resolutions: gYear, gYearMonth, date or dateTime.
func ParseKmlDateTime(s string) (*KmlDateTime, error) {
	for _, l := range kmlDateTimeLayouts {
		if t, err := time.Parse(l.layout, s); err == nil {
			return &KmlDateTime{Time: t, Resolution: l.resolution}, nil
		}
	}
	return nil, fmt.Errorf("invalid KML date/time %q", s)
}

// String renders the timestamp at its recorded resolution.
func (d *KmlDateTime) String() string {
	switch d.Resolution {
	case ResolutionYear:
		return d.Time.Format("2006")
	case ResolutionYearMonth:
		return d.Time.Format("2006-01")
	case ResolutionDate:
		return d.Time.Format("2006-01-02")
	default:
		return d.Time.Format(time.RFC3339)
	}
}

// TimePrimitive is the union of TimeStamp and TimeSpan.
type TimePrimitive interface {
	Object
	timePrimitive()
}

// TimeStamp binds a feature to a single moment.
type TimeStamp struct {
	BaseObject
	When *KmlDateTime
}

func (*TimeStamp) timePrimitive() {}

// Validate rejects a TimeStamp without a when value.
func (t *TimeStamp) Validate() error {
	if t.When == nil {
		return fmt.Errorf("kml: TimeStamp requires a when value")
	}
	return nil
}

// TimeSpan binds a feature to a period bounded by begin and/or end.
type TimeSpan struct {
	BaseObject
	Begin *KmlDateTime
	End   *KmlDateTime
}

func (*TimeSpan) timePrimitive() {}

// Validate rejects a TimeSpan with neither bound.
func (t *TimeSpan) Validate() error {
	if t.Begin == nil && t.End == nil {
		return fmt.Errorf("kml: TimeSpan requires a begin or end value")
	}
	return nil
}

// DatetimeSubelementKwarg reads a KmlDateTime field from the text of a
// subelement.
func DatetimeSubelementKwarg(p GetParams) (Kwargs, error) {
	text, child, ok := subelementText(p)
	if !ok {
		return Kwargs{}, nil
	}
	dt, err := ParseKmlDateTime(text)
	if err != nil {
		return parseFailure(p.Strict, newParseError(p, child, text, "KmlDateTime", err))
	}
	return Kwargs{p.Kwarg: dt}, nil
}

// DatetimeSubelement writes a KmlDateTime field at its recorded resolution.
func DatetimeSubelement(obj Object, p SetParams) error {
	f, ok := fieldValue(obj, p.AttrName)
	if !ok || f.Kind() != reflect.Pointer || f.IsNil() {
		return nil
	}
	dt, ok := f.Interface().(*KmlDateTime)
	if !ok {
		return fmt.Errorf("kml: field %s does not hold a KmlDateTime", p.AttrName)
	}
	xmltree.SubElement(p.Element, p.Node).SetText(dt.String())
	return nil
}

func init() {
	defaultRegistry.RegisterType(&TimeStamp{}, TypeSpec{
		Parent: &BaseObject{},
		NSID:   NSKML,
		Node:   "TimeStamp",
		New:    func() Object { return &TimeStamp{} },
	})
	defaultRegistry.Register(&TimeStamp{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&KmlDateTime{})},
		AttrName:   "When",
		Node:       "when",
		GetKwarg:   DatetimeSubelementKwarg,
		SetElement: DatetimeSubelement,
	})

	defaultRegistry.RegisterType(&TimeSpan{}, TypeSpec{
		Parent: &BaseObject{},
		NSID:   NSKML,
		Node:   "TimeSpan",
		New:    func() Object { return &TimeSpan{} },
	})
	defaultRegistry.Register(&TimeSpan{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&KmlDateTime{})},
		AttrName:   "Begin",
		Node:       "begin",
		GetKwarg:   DatetimeSubelementKwarg,
		SetElement: DatetimeSubelement,
	})
	defaultRegistry.Register(&TimeSpan{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&KmlDateTime{})},
		AttrName:   "End",
		Node:       "end",
		GetKwarg:   DatetimeSubelementKwarg,
		SetElement: DatetimeSubelement,
	})
}
