package kml

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type markerBase struct {
	XMLObject
	Label string
}

type marker struct{ markerBase }

func init() {
	defaultRegistry.RegisterType(&markerBase{}, TypeSpec{Parent: &XMLObject{}})
	defaultRegistry.RegisterType(&marker{}, TypeSpec{
		Parent: &markerBase{},
		Node:   "marker",
		New:    func() Object { return &marker{} },
	})
	defaultRegistry.Register(&markerBase{}, RegistryItem{
		NSIDs:      []string{""},
		Classes:    []reflect.Type{reflect.TypeOf("")},
		AttrName:   "Label",
		Node:       "baseLabel",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
	defaultRegistry.Register(&marker{}, RegistryItem{
		NSIDs:      []string{""},
		Classes:    []reflect.Type{reflect.TypeOf("")},
		AttrName:   "Label",
		Node:       "markerLabel",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
	defaultRegistry.Register(&marker{}, RegistryItem{
		NSIDs:      []string{""},
		Classes:    []reflect.Type{reflect.TypeOf("")},
		AttrName:   "Legacy",
		Node:       "legacy",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
}

func TestKwargMergeSubtypeWins(t *testing.T) {
	doc := `<marker><baseLabel>from base</baseLabel><markerLabel>from marker</markerLabel></marker>`

	m, err := FromString[*marker](doc, NewParseOptions())
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if m.Label != "from marker" {
		t.Fatalf("Label = %q, want the subtype registration to win", m.Label)
	}
}

func TestKwargMergeAncestorApplies(t *testing.T) {
	doc := `<marker><baseLabel>from base</baseLabel></marker>`

	m, err := FromString[*marker](doc, NewParseOptions())
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if m.Label != "from base" {
		t.Fatalf("Label = %q, want %q", m.Label, "from base")
	}
}

func TestUnmatchedKwargBecomesExtra(t *testing.T) {
	doc := `<marker><legacy>old value</legacy></marker>`

	m, err := FromString[*marker](doc, NewParseOptions())
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	extra := m.Extra()
	if len(extra) != 1 || extra[0].Key != "Legacy" || extra[0].Value != "old value" {
		t.Fatalf("Extra() = %v, want [{Legacy old value}]", extra)
	}
}

func TestExtraNotSerialized(t *testing.T) {
	m := &marker{}
	m.SetExtra("Legacy", "old value")

	out, err := ToString(m, NewSerializeOptions())
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	if strings.Contains(out, "old value") {
		t.Fatalf("ToString() = %q, extension data must not be serialized", out)
	}
}

func TestSetExtraReplaces(t *testing.T) {
	var o XMLObject
	o.SetExtra("a", 1)
	o.SetExtra("b", 2)
	o.SetExtra("a", 3)

	extra := o.Extra()
	if len(extra) != 2 {
		t.Fatalf("Extra() has %d entries, want 2", len(extra))
	}
	if extra[0].Key != "a" || extra[0].Value != 3 {
		t.Fatalf("Extra()[0] = %v, want replaced value under original position", extra[0])
	}
}

const placesDoc = `<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:atom="http://www.w3.org/2005/Atom">
  <Document id="docs">
    <name>Places</name>
    <visibility>1</visibility>
    <atom:author><atom:name>Jane</atom:name></atom:author>
    <Folder>
      <name>trip</name>
      <Placemark id="pm-1">
        <name>Somewhere</name>
        <styleUrl>#main</styleUrl>
        <TimeStamp><when>1997-07-16T07:30:15Z</when></TimeStamp>
        <LookAt><longitude>10.5</longitude><latitude>50.5</latitude><range>500</range></LookAt>
        <Point><coordinates>1.0,2.0,3.0</coordinates></Point>
      </Placemark>
    </Folder>
  </Document>
</kml>`

func TestFromStringDocumentTree(t *testing.T) {
	k, err := FromString[*KML](placesDoc, NewParseOptions())
	require.NoError(t, err)
	require.Len(t, k.Features, 1)

	doc, ok := k.Features[0].(*Document)
	require.True(t, ok, "root feature is %T, want *Document", k.Features[0])
	assert.Equal(t, "docs", doc.ID)
	assert.Equal(t, "Places", doc.Name)
	require.NotNil(t, doc.Visibility)
	assert.True(t, *doc.Visibility)
	require.NotNil(t, doc.Author)
	assert.Equal(t, "Jane", doc.Author.Name)

	require.Len(t, doc.Features, 1)
	folder, ok := doc.Features[0].(*Folder)
	require.True(t, ok)
	assert.Equal(t, "trip", folder.Name)

	require.Len(t, folder.Features, 1)
	pm, ok := folder.Features[0].(*Placemark)
	require.True(t, ok)
	assert.Equal(t, "pm-1", pm.ID)
	assert.Equal(t, "Somewhere", pm.Name)
	assert.Equal(t, "#main", pm.StyleURL)

	stamp, ok := pm.Times.(*TimeStamp)
	require.True(t, ok)
	assert.Equal(t, "1997-07-16T07:30:15Z", stamp.When.String())

	lookAt, ok := pm.View.(*LookAt)
	require.True(t, ok)
	require.NotNil(t, lookAt.Range)
	assert.Equal(t, 500.0, *lookAt.Range)

	point, ok := pm.Geometry.(*Point)
	require.True(t, ok)
	require.Len(t, point.Coords, 1)
	assert.Equal(t, Coordinate{1, 2, 3}, point.Coords[0])
}

func TestDocumentRoundTrip(t *testing.T) {
	k, err := FromString[*KML](placesDoc, NewParseOptions())
	require.NoError(t, err)

	out, err := ToString(k, NewSerializeOptions())
	require.NoError(t, err)

	again, err := FromString[*KML](out, NewParseOptions())
	require.NoError(t, err)

	doc := again.Features[0].(*Document)
	assert.Equal(t, "Places", doc.Name)
	assert.Equal(t, "Jane", doc.Author.Name)
	pm := doc.Features[0].(*Folder).Features[0].(*Placemark)
	assert.Equal(t, "Somewhere", pm.Name)
	assert.Equal(t, Coordinate{1, 2, 3}, pm.Geometry.(*Point).Coords[0])
	assert.Equal(t, "1997-07-16T07:30:15Z", pm.Times.(*TimeStamp).When.String())
}

func TestSerializeResolvesDefaultNamespace(t *testing.T) {
	style := &LineStyle{Width: floatPtr(2)}

	out, err := ToString(style, NewSerializeOptions())
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	if !strings.Contains(out, `xmlns="http://www.opengis.net/kml/2.2"`) {
		t.Fatalf("ToString() = %q, want the default namespace declared", out)
	}

	again, err := FromString[*LineStyle](out, NewParseOptions())
	if err != nil {
		t.Fatalf("FromString() of constructed output error = %v", err)
	}
	if again.Width == nil || *again.Width != 2 {
		t.Fatalf("Width = %v, want 2 after round trip", again.Width)
	}
}

func TestSerializeExplicitNamespaceWins(t *testing.T) {
	style := &LineStyle{Width: floatPtr(2)}
	style.NS = "http://earth.google.com/kml/2.1"

	out, err := ToString(style, NewSerializeOptions())
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	if !strings.Contains(out, `xmlns="http://earth.google.com/kml/2.1"`) {
		t.Fatalf("ToString() = %q, want the explicit namespace kept", out)
	}
}

func TestSerializeAtomDefaultNamespace(t *testing.T) {
	link := &AtomLink{Href: "http://example.com/feed"}

	out, err := ToString(link, NewSerializeOptions())
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	if !strings.Contains(out, `xmlns="http://www.w3.org/2005/Atom"`) {
		t.Fatalf("ToString() = %q, want the atom namespace declared", out)
	}
}

func TestToStringPrettyPrint(t *testing.T) {
	style := &LineStyle{}
	style.Width = floatPtr(2)

	pretty, err := ToString(style, NewSerializeOptions())
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	if !strings.Contains(pretty, "\n") {
		t.Fatalf("ToString() = %q, want indented output by default", pretty)
	}

	compact, err := ToString(style, NewSerializeOptions().WithPrettyPrint(false))
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	if strings.Contains(compact, "\n") {
		t.Fatalf("ToString() = %q, want compact output", compact)
	}
}

func TestVerbosityNormal(t *testing.T) {
	style := &LineStyle{}

	out, err := ToString(style, NewSerializeOptions())
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	if strings.Contains(out, "<width>") {
		t.Fatalf("ToString() = %q, absent field must not be written at normal verbosity", out)
	}
}

func TestVerbosityVerboseWritesDefault(t *testing.T) {
	style := &LineStyle{}

	out, err := ToString(style, NewSerializeOptions().WithVerbosity(Verbose))
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	if !strings.Contains(out, "<width>1</width>") {
		t.Fatalf("ToString() = %q, want registered default written at verbose", out)
	}
}

func TestVerbosityTerseSuppressesDefault(t *testing.T) {
	style := &LineStyle{}
	style.Width = floatPtr(1)

	out, err := ToString(style, NewSerializeOptions().WithVerbosity(Terse))
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	if strings.Contains(out, "<width>") {
		t.Fatalf("ToString() = %q, default-valued field must be suppressed at terse", out)
	}

	style.Width = floatPtr(3)
	out, err = ToString(style, NewSerializeOptions().WithVerbosity(Terse))
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	if !strings.Contains(out, "<width>3</width>") {
		t.Fatalf("ToString() = %q, non-default value must survive terse", out)
	}
}

func TestToElementUnregisteredType(t *testing.T) {
	var o XMLObject
	if _, err := ToElement(&o, NewSerializeOptions()); err == nil {
		t.Fatal("ToElement() error = nil for abstract type")
	}
}
