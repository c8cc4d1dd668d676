package kml

import "reflect"

// StyleSelector is the union of Style and StyleMap, referenced by features.
type StyleSelector interface {
	Object
	styleSelector()
}

// SubStyle is the union of the style parts a Style may contain.
type SubStyle interface {
	Object
	subStyle()
}

// BaseColorStyle carries the color fields shared by the colorable substyles.
type BaseColorStyle struct {
	BaseObject
	Color     string
	ColorMode *ColorMode
}

// LineStyle controls the drawing of line geometry and polygon outlines.
type LineStyle struct {
	BaseColorStyle
	Width *float64
}

func (*LineStyle) subStyle() {}

// PolyStyle controls the drawing of polygon interiors.
type PolyStyle struct {
	BaseColorStyle
	Fill    *bool
	Outline *bool
}

func (*PolyStyle) subStyle() {}

// LabelStyle controls the drawing of feature labels.
type LabelStyle struct {
	BaseColorStyle
	Scale *float64
}

func (*LabelStyle) subStyle() {}

// IconStyle controls the drawing of point icons.
type IconStyle struct {
	BaseColorStyle
	Scale   *float64
	Heading *float64
	Icon    *Icon
}

func (*IconStyle) subStyle() {}

// Style groups substyles addressable by a styleUrl.
type Style struct {
	BaseObject
	Styles []SubStyle
}

func (*Style) styleSelector() {}

// Pair binds a StyleMap state to a style or style reference.
type Pair struct {
	BaseObject
	Key      *PairKey
	StyleURL string
	Style    *Style
}

// StyleMap maps between normal and highlight styles.
type StyleMap struct {
	BaseObject
	Pairs []*Pair
}

func (*StyleMap) styleSelector() {}

func init() {
	str := reflect.TypeOf("")
	flt := reflect.TypeOf(float64(0))
	bl := reflect.TypeOf(false)

	defaultRegistry.RegisterType(&BaseColorStyle{}, TypeSpec{
		Parent: &BaseObject{},
		NSID:   NSKML,
	})
	defaultRegistry.Register(&BaseColorStyle{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "Color",
		Node:       "color",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
	defaultRegistry.Register(&BaseColorStyle{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(ColorMode(0))},
		AttrName:   "ColorMode",
		Node:       "colorMode",
		GetKwarg:   SubelementEnumKwarg,
		SetElement: EnumSubelement,
		Default:    ColorModeNormal,
	})

	defaultRegistry.RegisterType(&LineStyle{}, TypeSpec{
		Parent: &BaseColorStyle{},
		NSID:   NSKML,
		Node:   "LineStyle",
		New:    func() Object { return &LineStyle{} },
	})
	defaultRegistry.Register(&LineStyle{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{flt},
		AttrName:   "Width",
		Node:       "width",
		GetKwarg:   SubelementFloatKwarg,
		SetElement: FloatSubelement,
		Default:    1.0,
	})

	defaultRegistry.RegisterType(&PolyStyle{}, TypeSpec{
		Parent: &BaseColorStyle{},
		NSID:   NSKML,
		Node:   "PolyStyle",
		New:    func() Object { return &PolyStyle{} },
	})
	defaultRegistry.Register(&PolyStyle{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{bl},
		AttrName:   "Fill",
		Node:       "fill",
		GetKwarg:   SubelementBoolKwarg,
		SetElement: BoolSubelement,
	})
	defaultRegistry.Register(&PolyStyle{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{bl},
		AttrName:   "Outline",
		Node:       "outline",
		GetKwarg:   SubelementBoolKwarg,
		SetElement: BoolSubelement,
	})

	defaultRegistry.RegisterType(&LabelStyle{}, TypeSpec{
		Parent: &BaseColorStyle{},
		NSID:   NSKML,
		Node:   "LabelStyle",
		New:    func() Object { return &LabelStyle{} },
	})
	defaultRegistry.Register(&LabelStyle{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{flt},
		AttrName:   "Scale",
		Node:       "scale",
		GetKwarg:   SubelementFloatKwarg,
		SetElement: FloatSubelement,
		Default:    1.0,
	})

	defaultRegistry.RegisterType(&IconStyle{}, TypeSpec{
		Parent: &BaseColorStyle{},
		NSID:   NSKML,
		Node:   "IconStyle",
		New:    func() Object { return &IconStyle{} },
	})
	defaultRegistry.Register(&IconStyle{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{flt},
		AttrName:   "Scale",
		Node:       "scale",
		GetKwarg:   SubelementFloatKwarg,
		SetElement: FloatSubelement,
		Default:    1.0,
	})
	defaultRegistry.Register(&IconStyle{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{flt},
		AttrName:   "Heading",
		Node:       "heading",
		GetKwarg:   SubelementFloatKwarg,
		SetElement: FloatSubelement,
	})
	defaultRegistry.Register(&IconStyle{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&Icon{})},
		AttrName:   "Icon",
		Node:       "Icon",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})

	defaultRegistry.RegisterType(&Style{}, TypeSpec{
		Parent: &BaseObject{},
		NSID:   NSKML,
		Node:   "Style",
		New:    func() Object { return &Style{} },
	})
	defaultRegistry.Register(&Style{}, RegistryItem{
		NSIDs: []string{NSKML, ""},
		Classes: []reflect.Type{
			reflect.TypeOf(&IconStyle{}),
			reflect.TypeOf(&LabelStyle{}),
			reflect.TypeOf(&LineStyle{}),
			reflect.TypeOf(&PolyStyle{}),
		},
		AttrName:   "Styles",
		Node:       "IconStyle/LabelStyle/LineStyle/PolyStyle",
		GetKwarg:   XMLSubelementListKwarg,
		SetElement: XMLSubelementList,
	})

	defaultRegistry.RegisterType(&Pair{}, TypeSpec{
		Parent: &BaseObject{},
		NSID:   NSKML,
		Node:   "Pair",
		New:    func() Object { return &Pair{} },
	})
	defaultRegistry.Register(&Pair{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(PairKey(0))},
		AttrName:   "Key",
		Node:       "key",
		GetKwarg:   SubelementEnumKwarg,
		SetElement: EnumSubelement,
	})
	defaultRegistry.Register(&Pair{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "StyleURL",
		Node:       "styleUrl",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
	defaultRegistry.Register(&Pair{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&Style{})},
		AttrName:   "Style",
		Node:       "Style",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})

	defaultRegistry.RegisterType(&StyleMap{}, TypeSpec{
		Parent: &BaseObject{},
		NSID:   NSKML,
		Node:   "StyleMap",
		New:    func() Object { return &StyleMap{} },
	})
	defaultRegistry.Register(&StyleMap{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&Pair{})},
		AttrName:   "Pairs",
		Node:       "Pair",
		GetKwarg:   XMLSubelementListKwarg,
		SetElement: XMLSubelementList,
	})
}
