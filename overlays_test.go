package kml

import (
	"strings"
	"testing"
)

func TestGroundOverlayParse(t *testing.T) {
	doc := `<GroundOverlay xmlns="http://www.opengis.net/kml/2.2">
  <name>ortho</name>
  <color>7fffffff</color>
  <drawOrder>2</drawOrder>
  <Icon><href>http://example.com/ortho.png</href></Icon>
  <altitude>120.5</altitude>
  <altitudeMode>absolute</altitudeMode>
  <LatLonBox>
    <north>48.3</north>
    <south>48.1</south>
    <east>9.4</east>
    <west>9.1</west>
    <rotation>-14.5</rotation>
  </LatLonBox>
</GroundOverlay>`

	o, err := FromString[*GroundOverlay](doc, NewParseOptions())
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if o.Name != "ortho" || o.Color != "7fffffff" {
		t.Fatalf("feature fields = %q, %q", o.Name, o.Color)
	}
	if o.DrawOrder == nil || *o.DrawOrder != 2 {
		t.Fatalf("DrawOrder = %v, want 2", o.DrawOrder)
	}
	if o.Icon == nil || o.Icon.Href != "http://example.com/ortho.png" {
		t.Fatalf("Icon = %+v", o.Icon)
	}
	if o.Altitude == nil || *o.Altitude != 120.5 {
		t.Fatalf("Altitude = %v, want 120.5", o.Altitude)
	}
	if o.AltitudeMode == nil || *o.AltitudeMode != Absolute {
		t.Fatalf("AltitudeMode = %v, want absolute", o.AltitudeMode)
	}
	if o.Box == nil || o.Box.North == nil || *o.Box.North != 48.3 {
		t.Fatalf("Box = %+v, want north 48.3", o.Box)
	}
	if o.Box.Rotation == nil || *o.Box.Rotation != -14.5 {
		t.Fatalf("Box.Rotation = %v, want -14.5", o.Box.Rotation)
	}
}

func TestGroundOverlayRoundTrip(t *testing.T) {
	o := &GroundOverlay{
		BaseOverlay: BaseOverlay{
			Feature: Feature{Name: "ortho"},
			Icon:    &Icon{Link: Link{Href: "http://example.com/ortho.png"}},
		},
		Box: &LatLonBox{North: floatPtr(48.3), South: floatPtr(48.1), East: floatPtr(9.4), West: floatPtr(9.1)},
	}

	out, err := ToString(o, NewSerializeOptions())
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	for _, want := range []string{"<GroundOverlay", "<Icon", "<LatLonBox", "<north>48.3</north>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("ToString() = %q, want it to contain %q", out, want)
		}
	}

	again, err := FromString[*GroundOverlay](out, NewParseOptions())
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if again.Box == nil || again.Box.West == nil || *again.Box.West != 9.1 {
		t.Fatalf("Box = %+v after round trip", again.Box)
	}
}

func TestPhotoOverlayParse(t *testing.T) {
	doc := `<PhotoOverlay xmlns="http://www.opengis.net/kml/2.2">
  <rotation>30</rotation>
  <ViewVolume>
    <leftFov>-60</leftFov>
    <rightFov>60</rightFov>
    <bottomFov>-45</bottomFov>
    <topFov>45</topFov>
    <near>100</near>
  </ViewVolume>
  <ImagePyramid>
    <tileSize>512</tileSize>
    <maxWidth>2048</maxWidth>
    <maxHeight>1024</maxHeight>
    <gridOrigin>upperLeft</gridOrigin>
  </ImagePyramid>
  <Point><coordinates>9,48</coordinates></Point>
  <shape>sphere</shape>
</PhotoOverlay>`

	o, err := FromString[*PhotoOverlay](doc, NewParseOptions())
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if o.Rotation == nil || *o.Rotation != 30 {
		t.Fatalf("Rotation = %v, want 30", o.Rotation)
	}
	if o.ViewVolume == nil || o.ViewVolume.Near == nil || *o.ViewVolume.Near != 100 {
		t.Fatalf("ViewVolume = %+v, want near 100", o.ViewVolume)
	}
	if o.ImagePyramid == nil || o.ImagePyramid.TileSize == nil || *o.ImagePyramid.TileSize != 512 {
		t.Fatalf("ImagePyramid = %+v, want tileSize 512", o.ImagePyramid)
	}
	if o.ImagePyramid.GridOrigin == nil || *o.ImagePyramid.GridOrigin != GridOriginUpperLeft {
		t.Fatalf("GridOrigin = %v, want upperLeft", o.ImagePyramid.GridOrigin)
	}
	if o.Point == nil || len(o.Point.Coords) != 1 {
		t.Fatalf("Point = %+v", o.Point)
	}
	if o.Shape == nil || *o.Shape != ShapeSphere {
		t.Fatalf("Shape = %v, want sphere", o.Shape)
	}
}

func TestScreenOverlayParse(t *testing.T) {
	doc := `<ScreenOverlay xmlns="http://www.opengis.net/kml/2.2">
  <Icon><href>http://example.com/logo.png</href></Icon>
  <overlayXY x="0" y="1" xunits="fraction" yunits="fraction"/>
  <screenXY x="16" y="-16" xunits="pixels" yunits="insetPixels"/>
  <rotationXY x="0.5" y="0.5"/>
  <size x="0" y="0" xunits="fraction" yunits="fraction"/>
  <rotation>45</rotation>
</ScreenOverlay>`

	o, err := FromString[*ScreenOverlay](doc, NewParseOptions())
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if o.OverlayXY == nil || o.OverlayXY.X == nil || *o.OverlayXY.X != 0 || *o.OverlayXY.Y != 1 {
		t.Fatalf("OverlayXY = %+v", o.OverlayXY)
	}
	if o.ScreenXY == nil || o.ScreenXY.XUnits == nil || *o.ScreenXY.XUnits != UnitsPixels {
		t.Fatalf("ScreenXY.XUnits = %v, want pixels", o.ScreenXY)
	}
	if *o.ScreenXY.YUnits != UnitsInsetPixels {
		t.Fatalf("ScreenXY.YUnits = %v, want insetPixels", *o.ScreenXY.YUnits)
	}
	if o.RotationXY == nil || o.RotationXY.XUnits != nil {
		t.Fatalf("RotationXY = %+v, want units unset", o.RotationXY)
	}
	if o.Size == nil || o.Size.X == nil || *o.Size.X != 0 {
		t.Fatalf("Size = %+v", o.Size)
	}
	if o.Rotation == nil || *o.Rotation != 45 {
		t.Fatalf("Rotation = %v, want 45", o.Rotation)
	}
}

func TestScreenOverlaySerialize(t *testing.T) {
	xu, yu := UnitsFraction, UnitsPixels
	o := &ScreenOverlay{
		BaseOverlay: BaseOverlay{Icon: &Icon{Link: Link{Href: "http://example.com/logo.png"}}},
		ScreenXY:    &ScreenXY{XY{X: floatPtr(16), Y: floatPtr(16), XUnits: &xu, YUnits: &yu}},
	}

	out, err := ToString(o, NewSerializeOptions())
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	for _, want := range []string{"<screenXY", `x="16"`, `xunits="fraction"`, `yunits="pixels"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("ToString() = %q, want it to contain %q", out, want)
		}
	}
}

func TestContainerHoldsOverlays(t *testing.T) {
	doc := `<Folder xmlns="http://www.opengis.net/kml/2.2">
  <GroundOverlay><name>g</name></GroundOverlay>
  <ScreenOverlay><name>s</name></ScreenOverlay>
  <PhotoOverlay><name>p</name></PhotoOverlay>
  <NetworkLink><name>n</name></NetworkLink>
</Folder>`

	f, err := FromString[*Folder](doc, NewParseOptions())
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if got := len(f.Features); got != 4 {
		t.Fatalf("parsed %d features, want 4", got)
	}
	if _, ok := f.Features[0].(*GroundOverlay); !ok {
		t.Fatalf("Features[0] is %T, want *GroundOverlay", f.Features[0])
	}
	if _, ok := f.Features[1].(*PhotoOverlay); !ok {
		t.Fatalf("Features[1] is %T, want *PhotoOverlay", f.Features[1])
	}
	if _, ok := f.Features[2].(*ScreenOverlay); !ok {
		t.Fatalf("Features[2] is %T, want *ScreenOverlay", f.Features[2])
	}
	if _, ok := f.Features[3].(*NetworkLink); !ok {
		t.Fatalf("Features[3] is %T, want *NetworkLink", f.Features[3])
	}
}
