package kml

import "reflect"

// Link specifies the location of a resource fetched by network links,
// overlays or models, together with its refresh behaviour.
type Link struct {
	BaseObject
	Href            string
	RefreshMode     *RefreshMode
	RefreshInterval *float64
	ViewRefreshMode *ViewRefreshMode
	ViewRefreshTime *float64
	ViewBoundScale  *float64
	ViewFormat      string
	HTTPQuery       string
}

// Icon is a Link used by icon styles and overlays. It carries exactly the
// Link fields under its own tag name.
type Icon struct {
	Link
}

func registerLinkItems(proto Object) {
	str := reflect.TypeOf("")
	flt := reflect.TypeOf(float64(0))

	defaultRegistry.Register(proto, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "Href",
		Node:       "href",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
	defaultRegistry.Register(proto, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(RefreshMode(0))},
		AttrName:   "RefreshMode",
		Node:       "refreshMode",
		GetKwarg:   SubelementEnumKwarg,
		SetElement: EnumSubelement,
		Default:    OnChange,
	})
	defaultRegistry.Register(proto, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{flt},
		AttrName:   "RefreshInterval",
		Node:       "refreshInterval",
		GetKwarg:   SubelementFloatKwarg,
		SetElement: FloatSubelement,
		Default:    4.0,
	})
	defaultRegistry.Register(proto, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(ViewRefreshMode(0))},
		AttrName:   "ViewRefreshMode",
		Node:       "viewRefreshMode",
		GetKwarg:   SubelementEnumKwarg,
		SetElement: EnumSubelement,
		Default:    Never,
	})
	defaultRegistry.Register(proto, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{flt},
		AttrName:   "ViewRefreshTime",
		Node:       "viewRefreshTime",
		GetKwarg:   SubelementFloatKwarg,
		SetElement: FloatSubelement,
		Default:    4.0,
	})
	defaultRegistry.Register(proto, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{flt},
		AttrName:   "ViewBoundScale",
		Node:       "viewBoundScale",
		GetKwarg:   SubelementFloatKwarg,
		SetElement: FloatSubelement,
		Default:    1.0,
	})
	defaultRegistry.Register(proto, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "ViewFormat",
		Node:       "viewFormat",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
	defaultRegistry.Register(proto, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "HTTPQuery",
		Node:       "httpQuery",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
}

func init() {
	defaultRegistry.RegisterType(&Link{}, TypeSpec{
		Parent: &BaseObject{},
		NSID:   NSKML,
		Node:   "Link",
		New:    func() Object { return &Link{} },
	})
	registerLinkItems(&Link{})

	// Icon inherits every Link item through the hierarchy; it only changes
	// the tag name.
	defaultRegistry.RegisterType(&Icon{}, TypeSpec{
		Parent: &Link{},
		NSID:   NSKML,
		Node:   "Icon",
		New:    func() Object { return &Icon{} },
	})
}
