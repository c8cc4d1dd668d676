package kml

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReader(t *testing.T) {
	k, err := Parse(strings.NewReader(placesDoc), NewParseOptions())
	require.NoError(t, err)
	require.Len(t, k.Features, 1)
	assert.Equal(t, "Places", k.Features[0].(*Document).Name)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.kml")
	require.NoError(t, os.WriteFile(path, []byte(placesDoc), 0o644))

	k, err := ParseFile(path, NewParseOptions())
	require.NoError(t, err)
	assert.Equal(t, "Places", k.Features[0].(*Document).Name)
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.kml"), NewParseOptions()); err == nil {
		t.Fatal("ParseFile() error = nil for missing file")
	}
}

func TestParseNotXML(t *testing.T) {
	if _, err := Parse(strings.NewReader("not xml at all <"), NewParseOptions()); err == nil {
		t.Fatal("Parse() error = nil for malformed document")
	}
}

func TestKMLWrite(t *testing.T) {
	pm := &Placemark{Feature: Feature{Name: "Spot"}}
	k := &KML{}
	k.Append(pm)

	var buf bytes.Buffer
	require.NoError(t, k.Write(&buf, NewSerializeOptions()))

	out := buf.String()
	assert.Contains(t, out, `<kml xmlns="http://www.opengis.net/kml/2.2">`)
	assert.Contains(t, out, "<name>Spot</name>")

	again, err := Parse(strings.NewReader(out), NewParseOptions())
	require.NoError(t, err)
	require.Len(t, again.Features, 1)
	assert.Equal(t, "Spot", again.Features[0].(*Placemark).Name)
}

func TestKMLNamespaceOverride(t *testing.T) {
	doc := `<kml xmlns="http://earth.google.com/kml/2.1"><Placemark><name>old</name></Placemark></kml>`

	k, err := FromString[*KML](doc, NewParseOptions().WithNameSpaces(map[string]string{
		NSKML: "http://earth.google.com/kml/2.1",
	}))
	require.NoError(t, err)
	require.Len(t, k.Features, 1)
	assert.Equal(t, "old", k.Features[0].(*Placemark).Name)
}

func TestKMLMixedTopLevelFeatures(t *testing.T) {
	doc := `<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document><name>d</name></Document>
  <Folder><name>f</name></Folder>
  <Placemark><name>p</name></Placemark>
</kml>`

	k, err := FromString[*KML](doc, NewParseOptions())
	require.NoError(t, err)
	require.Len(t, k.Features, 3)
	assert.IsType(t, &Document{}, k.Features[0])
	assert.IsType(t, &Folder{}, k.Features[1])
	assert.IsType(t, &Placemark{}, k.Features[2])
}
