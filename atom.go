package kml

import (
	"fmt"
	"reflect"
)

// AtomLink is an atom:link element identifying the source of a feature.
// Unlike the KML Link, its fields are attributes.
type AtomLink struct {
	XMLObject
	Href     string
	Rel      string
	Type     string
	HrefLang string
	Title    string
	Length   *int
}

// Validate rejects a link without an href.
func (l *AtomLink) Validate() error {
	if l.Href == "" {
		return fmt.Errorf("kml: atom:link requires an href attribute")
	}
	return nil
}

// AtomAuthor is an atom:author element naming the author of a feature.
type AtomAuthor struct {
	XMLObject
	Name  string
	URI   string
	Email string
}

func registerAtomAttr(attrName, node string) {
	defaultRegistry.Register(&AtomLink{}, RegistryItem{
		NSIDs:      []string{"", NSAtom},
		Classes:    []reflect.Type{reflect.TypeOf("")},
		AttrName:   attrName,
		Node:       node,
		GetKwarg:   AttributeTextKwarg,
		SetElement: TextAttribute,
	})
}

func init() {
	str := reflect.TypeOf("")

	defaultRegistry.RegisterType(&AtomLink{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSAtom,
		Node:   "link",
		New:    func() Object { return &AtomLink{} },
	})
	registerAtomAttr("Href", "href")
	registerAtomAttr("Rel", "rel")
	registerAtomAttr("Type", "type")
	registerAtomAttr("HrefLang", "hreflang")
	registerAtomAttr("Title", "title")
	defaultRegistry.Register(&AtomLink{}, RegistryItem{
		NSIDs:      []string{"", NSAtom},
		Classes:    []reflect.Type{reflect.TypeOf(0)},
		AttrName:   "Length",
		Node:       "length",
		GetKwarg:   AttributeIntKwarg,
		SetElement: IntAttribute,
	})

	defaultRegistry.RegisterType(&AtomAuthor{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSAtom,
		Node:   "author",
		New:    func() Object { return &AtomAuthor{} },
	})
	defaultRegistry.Register(&AtomAuthor{}, RegistryItem{
		NSIDs:      []string{NSAtom, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "Name",
		Node:       "name",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
	defaultRegistry.Register(&AtomAuthor{}, RegistryItem{
		NSIDs:      []string{NSAtom, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "URI",
		Node:       "uri",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
	defaultRegistry.Register(&AtomAuthor{}, RegistryItem{
		NSIDs:      []string{NSAtom, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "Email",
		Node:       "email",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
}
