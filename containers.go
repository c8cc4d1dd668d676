package kml

import "reflect"

// Container carries the child features shared by Document and Folder. It is
// an abstract base like Feature.
type Container struct {
	Feature
	Features []FeatureMember
}

// Document is a container for features, shared styles and schema
// declarations.
type Document struct {
	Container
	Schemata []*Schema
}

func (*Document) featureMember() {}

// Folder is a container used to arrange features hierarchically.
type Folder struct {
	Container
}

func (*Folder) featureMember() {}

func featureMemberItem() RegistryItem {
	return RegistryItem{
		NSIDs: []string{NSKML, ""},
		Classes: []reflect.Type{
			reflect.TypeOf(&Document{}),
			reflect.TypeOf(&Folder{}),
			reflect.TypeOf(&Placemark{}),
			reflect.TypeOf(&GroundOverlay{}),
			reflect.TypeOf(&PhotoOverlay{}),
			reflect.TypeOf(&ScreenOverlay{}),
			reflect.TypeOf(&NetworkLink{}),
		},
		AttrName:   "Features",
		Node:       "Document/Folder/Placemark/GroundOverlay/PhotoOverlay/ScreenOverlay/NetworkLink",
		GetKwarg:   XMLSubelementListKwarg,
		SetElement: XMLSubelementList,
	}
}

func init() {
	defaultRegistry.RegisterType(&Container{}, TypeSpec{
		Parent: &Feature{},
		NSID:   NSKML,
	})
	defaultRegistry.Register(&Container{}, featureMemberItem())

	defaultRegistry.RegisterType(&Document{}, TypeSpec{
		Parent: &Container{},
		NSID:   NSKML,
		Node:   "Document",
		New:    func() Object { return &Document{} },
	})
	defaultRegistry.Register(&Document{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&Schema{})},
		AttrName:   "Schemata",
		Node:       "Schema",
		GetKwarg:   XMLSubelementListKwarg,
		SetElement: XMLSubelementList,
	})

	defaultRegistry.RegisterType(&Folder{}, TypeSpec{
		Parent: &Container{},
		NSID:   NSKML,
		Node:   "Folder",
		New:    func() Object { return &Folder{} },
	})
}
