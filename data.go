package kml

import "reflect"

// SimpleField declares one typed custom field of a Schema. Fields missing a
// name or a type are ignored by consumers.
type SimpleField struct {
	XMLObject
	Name        string
	Type        *DataType
	DisplayName string
}

// Schema declares a custom data type addressable by SchemaData. It is always
// a child of Document; its id attribute must be unique within the file.
type Schema struct {
	XMLObject
	ID     string
	Name   string
	Fields []*SimpleField
}

// Data is an untyped name/value pair with an optional display name.
type Data struct {
	BaseObject
	Name        string
	Value       string
	DisplayName string
}

func (*Data) extendedData() {}

// SimpleData assigns a value to the schema field named by its name attribute.
type SimpleData struct {
	XMLObject
	Name  string
	Value string
}

// SchemaData instantiates the custom type declared by the schema its
// schemaUrl attribute points at.
type SchemaData struct {
	BaseObject
	SchemaURL string
	Data      []*SimpleData
}

func (*SchemaData) extendedData() {}

// ExtendedDataElement is the union of the entry kinds ExtendedData may hold.
type ExtendedDataElement interface {
	Object
	extendedData()
}

// ExtendedData carries custom data attached to a feature.
type ExtendedData struct {
	XMLObject
	Elements []ExtendedDataElement
}

func init() {
	str := reflect.TypeOf("")

	defaultRegistry.RegisterType(&SimpleField{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSKML,
		Node:   "SimpleField",
		New:    func() Object { return &SimpleField{} },
	})
	defaultRegistry.Register(&SimpleField{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{str},
		AttrName:   "Name",
		Node:       "name",
		GetKwarg:   AttributeTextKwarg,
		SetElement: TextAttribute,
	})
	defaultRegistry.Register(&SimpleField{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{reflect.TypeOf(DataType(0))},
		AttrName:   "Type",
		Node:       "type",
		GetKwarg:   AttributeEnumKwarg,
		SetElement: EnumAttribute,
	})
	defaultRegistry.Register(&SimpleField{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "DisplayName",
		Node:       "displayName",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})

	defaultRegistry.RegisterType(&Schema{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSKML,
		Node:   "Schema",
		New:    func() Object { return &Schema{} },
	})
	defaultRegistry.Register(&Schema{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{str},
		AttrName:   "ID",
		Node:       "id",
		GetKwarg:   AttributeTextKwarg,
		SetElement: TextAttribute,
	})
	defaultRegistry.Register(&Schema{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{str},
		AttrName:   "Name",
		Node:       "name",
		GetKwarg:   AttributeTextKwarg,
		SetElement: TextAttribute,
	})
	defaultRegistry.Register(&Schema{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&SimpleField{})},
		AttrName:   "Fields",
		Node:       "SimpleField",
		GetKwarg:   XMLSubelementListKwarg,
		SetElement: XMLSubelementList,
	})

	defaultRegistry.RegisterType(&Data{}, TypeSpec{
		Parent: &BaseObject{},
		NSID:   NSKML,
		Node:   "Data",
		New:    func() Object { return &Data{} },
	})
	defaultRegistry.Register(&Data{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{str},
		AttrName:   "Name",
		Node:       "name",
		GetKwarg:   AttributeTextKwarg,
		SetElement: TextAttribute,
	})
	defaultRegistry.Register(&Data{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "Value",
		Node:       "value",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})
	defaultRegistry.Register(&Data{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "DisplayName",
		Node:       "displayName",
		GetKwarg:   SubelementTextKwarg,
		SetElement: TextSubelement,
	})

	defaultRegistry.RegisterType(&SimpleData{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSKML,
		Node:   "SimpleData",
		New:    func() Object { return &SimpleData{} },
	})
	defaultRegistry.Register(&SimpleData{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{str},
		AttrName:   "Name",
		Node:       "name",
		GetKwarg:   AttributeTextKwarg,
		SetElement: TextAttribute,
	})
	defaultRegistry.Register(&SimpleData{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{str},
		AttrName:   "Value",
		Node:       "SimpleData",
		GetKwarg:   NodeTextKwarg,
		SetElement: NodeText,
	})

	defaultRegistry.RegisterType(&SchemaData{}, TypeSpec{
		Parent: &BaseObject{},
		NSID:   NSKML,
		Node:   "SchemaData",
		New:    func() Object { return &SchemaData{} },
	})
	defaultRegistry.Register(&SchemaData{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{str},
		AttrName:   "SchemaURL",
		Node:       "schemaUrl",
		GetKwarg:   AttributeTextKwarg,
		SetElement: TextAttribute,
	})
	defaultRegistry.Register(&SchemaData{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&SimpleData{})},
		AttrName:   "Data",
		Node:       "SimpleData",
		GetKwarg:   XMLSubelementListKwarg,
		SetElement: XMLSubelementList,
	})

	defaultRegistry.RegisterType(&ExtendedData{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSKML,
		Node:   "ExtendedData",
		New:    func() Object { return &ExtendedData{} },
	})
	defaultRegistry.Register(&ExtendedData{}, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(&Data{}), reflect.TypeOf(&SchemaData{})},
		AttrName:   "Elements",
		Node:       "Data,SchemaData",
		GetKwarg:   XMLSubelementListKwarg,
		SetElement: XMLSubelementList,
	})
}
