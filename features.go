package kml

import "reflect"

// Snippet is a short description of a feature. Its entire content is the
// element's own text; maxLines is an attribute.
type Snippet struct {
	XMLObject
	Text     string
	MaxLines *int
}

// FeatureMember is the union of the feature elements a container (or the
// document root) may hold.
type FeatureMember interface {
	Object
	featureMember()
}

// Feature carries the fields shared by every KML feature. It is an abstract
// base: it registers items but no tag name.
type Feature struct {
	BaseObject
	Name        string
	Visibility  *bool
	Open        *bool
	Description string
	StyleURL    string
	Snippet     *Snippet
	View        View
	Times       TimePrimitive
	Author      *AtomAuthor
	AtomLink    *AtomLink
	Styles      []StyleSelector
	Extended    *ExtendedData
}

// Placemark is a feature with an associated geometry.
type Placemark struct {
	Feature
	Geometry Geometry
}

func (*Placemark) featureMember() {}

// NetworkLink references a KML resource on a local or remote network.
type NetworkLink struct {
	Feature
	RefreshVisibility *bool
	FlyToView         *bool
	Link              *Link
}

func (*NetworkLink) featureMember() {}

func init() {
	str := reflect.TypeOf("")
	bl := reflect.TypeOf(false)

	defaultRegistry.RegisterType(&Snippet{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSKML,
		Node:   "Snippet",
		New:    func() Object { return &Snippet{} },
	})
	defaultRegistry.Register(&Snippet{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "Text",
		Node:       "Snippet",
		GetKwarg:   NodeTextKwarg,
		SetElement: NodeText,
	})
	defaultRegistry.Register(&Snippet{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{reflect.TypeOf(0)},
		AttrName:   "MaxLines",
		Node:       "maxLines",
		GetKwarg:   AttributeIntKwarg,
		SetElement: IntAttribute,
	})

	defaultRegistry.RegisterType(&Feature{}, TypeSpec{
		Parent: &BaseObject{},
		NSID:   NSKML,
	})
	defaultRegistry.Register(&Feature{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "Name",
		Node:       "name",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
	defaultRegistry.Register(&Feature{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{bl},
		AttrName:   "Visibility",
		Node:       "visibility",
		GetKwarg:   SubelementBoolKwarg,
		SetElement: BoolSubelement,
		Default:    true,
	})
	defaultRegistry.Register(&Feature{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{bl},
		AttrName:   "Open",
		Node:       "open",
		GetKwarg:   SubelementBoolKwarg,
		SetElement: BoolSubelement,
		Default:    false,
	})
	defaultRegistry.Register(&Feature{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "Description",
		Node:       "description",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
	defaultRegistry.Register(&Feature{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "StyleURL",
		Node:       "styleUrl",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
	defaultRegistry.Register(&Feature{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&Snippet{})},
		AttrName:   "Snippet",
		Node:       "Snippet",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
	defaultRegistry.Register(&Feature{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&Camera{}), reflect.TypeOf(&LookAt{})},
		AttrName:   "View",
		Node:       "Camera/LookAt",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
	defaultRegistry.Register(&Feature{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&TimeStamp{}), reflect.TypeOf(&TimeSpan{})},
		AttrName:   "Times",
		Node:       "TimeStamp/TimeSpan",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
	defaultRegistry.Register(&Feature{}, RegistryItem{
		NSIDs:      []string{NSAtom},
		Classes:    []reflect.Type{reflect.TypeOf(&AtomAuthor{})},
		AttrName:   "Author",
		Node:       "author",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
	defaultRegistry.Register(&Feature{}, RegistryItem{
		NSIDs:      []string{NSAtom},
		Classes:    []reflect.Type{reflect.TypeOf(&AtomLink{})},
		AttrName:   "AtomLink",
		Node:       "link",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
	defaultRegistry.Register(&Feature{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&Style{}), reflect.TypeOf(&StyleMap{})},
		AttrName:   "Styles",
		Node:       "Style/StyleMap",
		GetKwarg:   XMLSubelementListKwarg,
		SetElement: XMLSubelementList,
	})
	defaultRegistry.Register(&Feature{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&ExtendedData{})},
		AttrName:   "Extended",
		Node:       "ExtendedData",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})

	defaultRegistry.RegisterType(&Placemark{}, TypeSpec{
		Parent: &Feature{},
		NSID:   NSKML,
		Node:   "Placemark",
		New:    func() Object { return &Placemark{} },
	})
	defaultRegistry.Register(&Placemark{}, RegistryItem{
		NSIDs: []string{NSKML, ""},
		Classes: []reflect.Type{
			reflect.TypeOf(&Point{}),
			reflect.TypeOf(&LineString{}),
			reflect.TypeOf(&Polygon{}),
			reflect.TypeOf(&LinearRing{}),
			reflect.TypeOf(&MultiGeometry{}),
		},
		AttrName:   "Geometry",
		Node:       "Point/LineString/Polygon/LinearRing/MultiGeometry",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})

	defaultRegistry.RegisterType(&NetworkLink{}, TypeSpec{
		Parent: &Feature{},
		NSID:   NSKML,
		Node:   "NetworkLink",
		New:    func() Object { return &NetworkLink{} },
	})
	defaultRegistry.Register(&NetworkLink{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{bl},
		AttrName:   "RefreshVisibility",
		Node:       "refreshVisibility",
		GetKwarg:   SubelementBoolKwarg,
		SetElement: BoolSubelement,
		Default:    false,
	})
	defaultRegistry.Register(&NetworkLink{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{bl},
		AttrName:   "FlyToView",
		Node:       "flyToView",
		GetKwarg:   SubelementBoolKwarg,
		SetElement: BoolSubelement,
		Default:    false,
	})
	defaultRegistry.Register(&NetworkLink{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&Link{})},
		AttrName:   "Link",
		Node:       "Link",
		GetKwarg:   XMLSubelementKwarg,
		SetElement: XMLSubelement,
	})
}
