package kml

import "reflect"

// BaseOverlay carries the fields shared by the image overlay features. It is
// an abstract base like Feature.
type BaseOverlay struct {
	Feature
	Color     string
	DrawOrder *int
	Icon      *Icon
}

// LatLonBox bounds a ground overlay, optionally rotated about its center.
type LatLonBox struct {
	XMLObject
	North    *float64
	South    *float64
	East     *float64
	West     *float64
	Rotation *float64
}

// GroundOverlay drapes an image onto the terrain.
type GroundOverlay struct {
	BaseOverlay
	Altitude     *float64
	AltitudeMode *AltitudeMode
	Box          *LatLonBox
}

func (*GroundOverlay) featureMember() {}

// ViewVolume defines how much of the scene a photo overlay covers.
type ViewVolume struct {
	XMLObject
	LeftFov   *float64
	RightFov  *float64
	BottomFov *float64
	TopFov    *float64
	Near      *float64
}

// ImagePyramid describes the tiling of a very large overlay image.
type ImagePyramid struct {
	XMLObject
	TileSize   *int
	MaxWidth   *int
	MaxHeight  *int
	GridOrigin *GridOrigin
}

// PhotoOverlay embeds a photograph in the landscape, oriented toward a
// viewpoint.
type PhotoOverlay struct {
	BaseOverlay
	Rotation     *float64
	ViewVolume   *ViewVolume
	ImagePyramid *ImagePyramid
	Point        *Point
	Shape        *Shape
}

func (*PhotoOverlay) featureMember() {}

// XY is a point relative to the screen origin. The units attributes select
// between fractions of the screen and pixel offsets.
type XY struct {
	XMLObject
	X      *float64
	Y      *float64
	XUnits *Units
	YUnits *Units
}

// OverlayXY is the point on the overlay image mapped to the screen point.
type OverlayXY struct{ XY }

// ScreenXY is the point on the screen the overlay is mapped to.
type ScreenXY struct{ XY }

// RotationXY is the point the screen overlay is rotated about.
type RotationXY struct{ XY }

// Size is the size of the screen overlay image.
type Size struct{ XY }

// ScreenOverlay draws an image fixed to the screen.
type ScreenOverlay struct {
	BaseOverlay
	OverlayXY  *OverlayXY
	ScreenXY   *ScreenXY
	RotationXY *RotationXY
	Size       *Size
	Rotation   *float64
}

func (*ScreenOverlay) featureMember() {}

func registerFloatSubelement(proto Object, attrName, node string, def any) {
	defaultRegistry.Register(proto, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(float64(0))},
		AttrName:   attrName,
		Node:       node,
		GetKwarg:   SubelementFloatKwarg,
		SetElement: FloatSubelement,
		Default:    def,
	})
}

func registerXYType(proto Object, node string) {
	defaultRegistry.RegisterType(proto, TypeSpec{
		Parent: &XY{},
		NSID:   NSKML,
		Node:   node,
		New: func() Object {
			return reflect.New(reflect.TypeOf(proto).Elem()).Interface().(Object)
		},
	})
}

func init() {
	flt := reflect.TypeOf(float64(0))

	defaultRegistry.RegisterType(&BaseOverlay{}, TypeSpec{
		Parent: &Feature{},
		NSID:   NSKML,
	})
	defaultRegistry.Register(&BaseOverlay{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf("")},
		AttrName:   "Color",
		Node:       "color",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
		Default:    "ffffffff",
	})
	defaultRegistry.Register(&BaseOverlay{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(0)},
		AttrName:   "DrawOrder",
		Node:       "drawOrder",
		GetKwarg:   SubelementIntKwarg,
		SetElement: IntSubelement,
		Default:    0,
	})
	defaultRegistry.Register(&BaseOverlay{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&Icon{})},
		AttrName:   "Icon",
		Node:       "Icon",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})

	defaultRegistry.RegisterType(&LatLonBox{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSKML,
		Node:   "LatLonBox",
		New:    func() Object { return &LatLonBox{} },
	})
	registerFloatSubelement(&LatLonBox{}, "North", "north", nil)
	registerFloatSubelement(&LatLonBox{}, "South", "south", nil)
	registerFloatSubelement(&LatLonBox{}, "East", "east", nil)
	registerFloatSubelement(&LatLonBox{}, "West", "west", nil)
	registerFloatSubelement(&LatLonBox{}, "Rotation", "rotation", 0.0)

	defaultRegistry.RegisterType(&GroundOverlay{}, TypeSpec{
		Parent: &BaseOverlay{},
		NSID:   NSKML,
		Node:   "GroundOverlay",
		New:    func() Object { return &GroundOverlay{} },
	})
	registerFloatSubelement(&GroundOverlay{}, "Altitude", "altitude", 0.0)
	defaultRegistry.Register(&GroundOverlay{}, RegistryItem{
		NSIDs:      []string{NSKML, NSGX, ""},
		Classes:    []reflect.Type{reflect.TypeOf(AltitudeMode(0))},
		AttrName:   "AltitudeMode",
		Node:       "altitudeMode",
		GetKwarg:   SubelementEnumKwarg,
		SetElement: EnumSubelement,
		Default:    ClampToGround,
	})
	defaultRegistry.Register(&GroundOverlay{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&LatLonBox{})},
		AttrName:   "Box",
		Node:       "LatLonBox",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})

	defaultRegistry.RegisterType(&ViewVolume{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSKML,
		Node:   "ViewVolume",
		New:    func() Object { return &ViewVolume{} },
	})
	registerFloatSubelement(&ViewVolume{}, "LeftFov", "leftFov", 0.0)
	registerFloatSubelement(&ViewVolume{}, "RightFov", "rightFov", 0.0)
	registerFloatSubelement(&ViewVolume{}, "BottomFov", "bottomFov", 0.0)
	registerFloatSubelement(&ViewVolume{}, "TopFov", "topFov", 0.0)
	registerFloatSubelement(&ViewVolume{}, "Near", "near", 0.0)

	defaultRegistry.RegisterType(&ImagePyramid{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSKML,
		Node:   "ImagePyramid",
		New:    func() Object { return &ImagePyramid{} },
	})
	defaultRegistry.Register(&ImagePyramid{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(0)},
		AttrName:   "TileSize",
		Node:       "tileSize",
		GetKwarg:   SubelementIntKwarg,
		SetElement: IntSubelement,
		Default:    256,
	})
	defaultRegistry.Register(&ImagePyramid{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(0)},
		AttrName:   "MaxWidth",
		Node:       "maxWidth",
		GetKwarg:   SubelementIntKwarg,
		SetElement: IntSubelement,
	})
	defaultRegistry.Register(&ImagePyramid{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(0)},
		AttrName:   "MaxHeight",
		Node:       "maxHeight",
		GetKwarg:   SubelementIntKwarg,
		SetElement: IntSubelement,
	})
	defaultRegistry.Register(&ImagePyramid{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(GridOrigin(0))},
		AttrName:   "GridOrigin",
		Node:       "gridOrigin",
		GetKwarg:   SubelementEnumKwarg,
		SetElement: EnumSubelement,
		Default:    GridOriginLowerLeft,
	})

	defaultRegistry.RegisterType(&PhotoOverlay{}, TypeSpec{
		Parent: &BaseOverlay{},
		NSID:   NSKML,
		Node:   "PhotoOverlay",
		New:    func() Object { return &PhotoOverlay{} },
	})
	registerFloatSubelement(&PhotoOverlay{}, "Rotation", "rotation", 0.0)
	defaultRegistry.Register(&PhotoOverlay{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&ViewVolume{})},
		AttrName:   "ViewVolume",
		Node:       "ViewVolume",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
	defaultRegistry.Register(&PhotoOverlay{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&ImagePyramid{})},
		AttrName:   "ImagePyramid",
		Node:       "ImagePyramid",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
	defaultRegistry.Register(&PhotoOverlay{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&Point{})},
		AttrName:   "Point",
		Node:       "Point",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
	defaultRegistry.Register(&PhotoOverlay{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(Shape(0))},
		AttrName:   "Shape",
		Node:       "shape",
		GetKwarg:   SubelementEnumKwarg,
		SetElement: EnumSubelement,
		Default:    ShapeRectangle,
	})

	defaultRegistry.RegisterType(&XY{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSKML,
	})
	defaultRegistry.Register(&XY{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{flt},
		AttrName:   "X",
		Node:       "x",
		GetKwarg:   AttributeFloatKwarg,
		SetElement: FloatAttribute,
	})
	defaultRegistry.Register(&XY{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{flt},
		AttrName:   "Y",
		Node:       "y",
		GetKwarg:   AttributeFloatKwarg,
		SetElement: FloatAttribute,
	})
	defaultRegistry.Register(&XY{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{reflect.TypeOf(Units(0))},
		AttrName:   "XUnits",
		Node:       "xunits",
		GetKwarg:   AttributeEnumKwarg,
		SetElement: EnumAttribute,
		Default:    UnitsFraction,
	})
	defaultRegistry.Register(&XY{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{reflect.TypeOf(Units(0))},
		AttrName:   "YUnits",
		Node:       "yunits",
		GetKwarg:   AttributeEnumKwarg,
		SetElement: EnumAttribute,
		Default:    UnitsFraction,
	})
	registerXYType(&OverlayXY{}, "overlayXY")
	registerXYType(&ScreenXY{}, "screenXY")
	registerXYType(&RotationXY{}, "rotationXY")
	registerXYType(&Size{}, "size")

	defaultRegistry.RegisterType(&ScreenOverlay{}, TypeSpec{
		Parent: &BaseOverlay{},
		NSID:   NSKML,
		Node:   "ScreenOverlay",
		New:    func() Object { return &ScreenOverlay{} },
	})
	defaultRegistry.Register(&ScreenOverlay{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&OverlayXY{})},
		AttrName:   "OverlayXY",
		Node:       "overlayXY",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
	defaultRegistry.Register(&ScreenOverlay{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&ScreenXY{})},
		AttrName:   "ScreenXY",
		Node:       "screenXY",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
	defaultRegistry.Register(&ScreenOverlay{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&RotationXY{})},
		AttrName:   "RotationXY",
		Node:       "rotationXY",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
	defaultRegistry.Register(&ScreenOverlay{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&Size{})},
		AttrName:   "Size",
		Node:       "size",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
	registerFloatSubelement(&ScreenOverlay{}, "Rotation", "rotation", 0.0)
}
