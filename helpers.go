package kml

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	kmlerrors "github.com/cleder/fastkml-go/errors"
	"github.com/cleder/fastkml-go/internal/xmltree"
)

// The marshalling function family. Each pair of GetKwarg/SetElement
// functions handles one field shape; these are the only functions that touch
// the element tree for field-level data.
//
// Get functions return an empty Kwargs for absent fields and never return a
// partially-parsed value: a malformed value either raises (strict) or is
// logged and treated as absent (lenient). Set functions skip absent fields
// and raise unconditionally for structurally invalid values.

// parseFailure applies the strict/lenient policy to a malformed value.
func parseFailure(strict bool, err error) (Kwargs, error) {
	if strict {
		return nil, err
	}
	log.WithError(err).Warn("ignoring malformed value")
	return Kwargs{}, nil
}

func newParseError(p GetParams, node *etree.Element, got, expected string, err error) *kmlerrors.ParseError {
	nodeText := got
	if node != nil {
		nodeText = xmltree.String(node)
	}
	return &kmlerrors.ParseError{
		Node:     nodeText,
		Element:  xmltree.String(p.Element),
		Expected: expected,
		Err:      err,
	}
}

// findSubelement returns the first child matching any of the node's
// candidate tag names under the candidate namespace.
func findSubelement(p GetParams) *etree.Element {
	for _, name := range splitNodeNames(p.Node) {
		if child := xmltree.FindChild(p.Element, p.NS, name); child != nil {
			return child
		}
	}
	return nil
}

// subelementText returns the trimmed text of the field's subelement, or
// ok=false when the subelement is absent or blank.
func subelementText(p GetParams) (string, *etree.Element, bool) {
	child := findSubelement(p)
	if child == nil {
		return "", nil, false
	}
	text := xmltree.Text(child)
	if text == "" {
		return "", child, false
	}
	return text, child, true
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i != 0, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// enumPtr boxes a parsed enum value as a pointer of its enum type.
func enumPtr(v reflect.Value) any {
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	return ptr.Interface()
}

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

// AttributeTextKwarg reads a string field from an attribute.
func AttributeTextKwarg(p GetParams) (Kwargs, error) {
	value, ok := xmltree.Attr(p.Element, p.NS, p.Node)
	if !ok || value == "" {
		return Kwargs{}, nil
	}
	return Kwargs{p.Kwarg: value}, nil
}

// AttributeIntKwarg reads an integer field from an attribute.
func AttributeIntKwarg(p GetParams) (Kwargs, error) {
	value, ok := xmltree.Attr(p.Element, p.NS, p.Node)
	if !ok || value == "" {
		return Kwargs{}, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return parseFailure(p.Strict, newParseError(p, nil, attrRepr(p.Node, value), "int", err))
	}
	return Kwargs{p.Kwarg: intPtr(i)}, nil
}

// AttributeFloatKwarg reads a float field from an attribute.
func AttributeFloatKwarg(p GetParams) (Kwargs, error) {
	value, ok := xmltree.Attr(p.Element, p.NS, p.Node)
	if !ok || value == "" {
		return Kwargs{}, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return parseFailure(p.Strict, newParseError(p, nil, attrRepr(p.Node, value), "float", err))
	}
	return Kwargs{p.Kwarg: floatPtr(f)}, nil
}

// AttributeEnumKwarg reads an enum field from an attribute. The enum type is
// the first accepted class.
func AttributeEnumKwarg(p GetParams) (Kwargs, error) {
	value, ok := xmltree.Attr(p.Element, p.NS, p.Node)
	if !ok || value == "" {
		return Kwargs{}, nil
	}
	v, err := parseEnum(p.Classes[0], value)
	if err != nil {
		return parseFailure(p.Strict, newParseError(p, nil, attrRepr(p.Node, value), p.Classes[0].Name(), err))
	}
	return Kwargs{p.Kwarg: enumPtr(v)}, nil
}

func attrRepr(node, value string) string {
	return node + `="` + value + `"`
}

// SubelementTextKwarg reads a string field from the text of a subelement.
func SubelementTextKwarg(p GetParams) (Kwargs, error) {
	text, _, ok := subelementText(p)
	if !ok {
		return Kwargs{}, nil
	}
	return Kwargs{p.Kwarg: text}, nil
}

// SubelementBoolKwarg reads a boolean field from the text of a subelement.
func SubelementBoolKwarg(p GetParams) (Kwargs, error) {
	text, child, ok := subelementText(p)
	if !ok {
		return Kwargs{}, nil
	}
	b, err := parseBool(text)
	if err != nil {
		return parseFailure(p.Strict, newParseError(p, child, text, "bool", err))
	}
	return Kwargs{p.Kwarg: boolPtr(b)}, nil
}

// SubelementIntKwarg reads an integer field from the text of a subelement.
func SubelementIntKwarg(p GetParams) (Kwargs, error) {
	text, child, ok := subelementText(p)
	if !ok {
		return Kwargs{}, nil
	}
	i, err := strconv.Atoi(text)
	if err != nil {
		return parseFailure(p.Strict, newParseError(p, child, text, "int", err))
	}
	return Kwargs{p.Kwarg: intPtr(i)}, nil
}

// SubelementFloatKwarg reads a float field from the text of a subelement.
func SubelementFloatKwarg(p GetParams) (Kwargs, error) {
	text, child, ok := subelementText(p)
	if !ok {
		return Kwargs{}, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return parseFailure(p.Strict, newParseError(p, child, text, "float", err))
	}
	return Kwargs{p.Kwarg: floatPtr(f)}, nil
}

// SubelementEnumKwarg reads an enum field from the text of a subelement.
func SubelementEnumKwarg(p GetParams) (Kwargs, error) {
	text, child, ok := subelementText(p)
	if !ok {
		return Kwargs{}, nil
	}
	v, err := parseEnum(p.Classes[0], text)
	if err != nil {
		return parseFailure(p.Strict, newParseError(p, child, text, p.Classes[0].Name(), err))
	}
	return Kwargs{p.Kwarg: enumPtr(v)}, nil
}

// NodeTextKwarg reads a string field from the text of the element itself,
// for leaf elements whose entire content is text.
func NodeTextKwarg(p GetParams) (Kwargs, error) {
	text := xmltree.Text(p.Element)
	if text == "" {
		return Kwargs{}, nil
	}
	return Kwargs{p.Kwarg: text}, nil
}

// XMLSubelementKwarg reads a nested object field. Each accepted class is
// tried in order against a child carrying that class's canonical tag name;
// the first match is parsed recursively.
func XMLSubelementKwarg(p GetParams) (Kwargs, error) {
	for _, class := range p.Classes {
		spec, ok := defaultRegistry.Spec(class)
		if !ok || spec.Node == "" {
			continue
		}
		child := xmltree.FindChild(p.Element, p.NS, spec.Node)
		if child == nil {
			continue
		}
		obj, err := fromElement(class, child, p.NS, p.NameSpaces, p.Strict)
		if err != nil {
			return nil, err
		}
		return Kwargs{p.Kwarg: obj}, nil
	}
	return Kwargs{}, nil
}

// XMLSubelementListKwarg reads a repeated nested object field. All matching
// children of every accepted class are parsed, concatenated in class
// declaration order. Unlike the scalar shapes this always returns the key,
// bound to a possibly empty list.
func XMLSubelementListKwarg(p GetParams) (Kwargs, error) {
	sliceType := p.FieldType
	if sliceType == nil || sliceType.Kind() != reflect.Slice {
		sliceType = reflect.TypeOf([]Object(nil))
	}
	items := reflect.MakeSlice(sliceType, 0, 0)
	for _, class := range p.Classes {
		spec, ok := defaultRegistry.Spec(class)
		if !ok || spec.Node == "" {
			continue
		}
		for _, child := range xmltree.FindChildren(p.Element, p.NS, spec.Node) {
			obj, err := fromElement(class, child, p.NS, p.NameSpaces, p.Strict)
			if err != nil {
				return nil, err
			}
			items = reflect.Append(items, reflect.ValueOf(obj))
		}
	}
	return Kwargs{p.Kwarg: items.Interface()}, nil
}

// fieldValue returns the named field of obj.
func fieldValue(obj Object, name string) (reflect.Value, bool) {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, false
	}
	f := v.Elem().FieldByName(name)
	if !f.IsValid() {
		return reflect.Value{}, false
	}
	return f, true
}

// scalarValue resolves a scalar field to its dereferenced value and an
// explicit presence flag: nil pointers and empty strings are absent, a
// pointed-to zero (false, 0) is present.
func scalarValue(obj Object, name string) (any, bool) {
	f, ok := fieldValue(obj, name)
	if !ok {
		return nil, false
	}
	switch f.Kind() {
	case reflect.String:
		s := f.String()
		return s, s != ""
	case reflect.Pointer, reflect.Interface:
		if f.IsNil() {
			return nil, false
		}
		if f.Kind() == reflect.Pointer {
			return f.Elem().Interface(), true
		}
		return f.Interface(), true
	default:
		return f.Interface(), !f.IsZero()
	}
}

// applyVerbosity folds the registered default into the presence decision:
// Verbose substitutes the default for absent values, Terse suppresses values
// equal to the default.
func applyVerbosity(value any, present bool, p SetParams) (any, bool) {
	if !present {
		if p.Verbosity == Verbose && p.Default != nil {
			return p.Default, true
		}
		return nil, false
	}
	if p.Verbosity == Terse && p.Default != nil && reflect.DeepEqual(value, p.Default) {
		return nil, false
	}
	return value, true
}

func formatScalar(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return formatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case float64:
		return formatFloat(v), nil
	}
	rv := reflect.ValueOf(value)
	if _, ok := enumSpecs[rv.Type()]; ok {
		return enumWire(rv)
	}
	return "", kmlerrors.NewWrite("cannot format %T value %v", value, value)
}

func setScalar(obj Object, p SetParams, asAttr bool) error {
	value, present := scalarValue(obj, p.AttrName)
	value, present = applyVerbosity(value, present, p)
	if !present {
		return nil
	}
	s, err := formatScalar(value)
	if err != nil {
		return err
	}
	if asAttr {
		p.Element.CreateAttr(p.Node, s)
		return nil
	}
	xmltree.SubElement(p.Element, p.Node).SetText(s)
	return nil
}

// TextAttribute writes a string field as an attribute.
func TextAttribute(obj Object, p SetParams) error { return setScalar(obj, p, true) }

// IntAttribute writes an integer field as an attribute.
func IntAttribute(obj Object, p SetParams) error { return setScalar(obj, p, true) }

// FloatAttribute writes a float field as an attribute.
func FloatAttribute(obj Object, p SetParams) error { return setScalar(obj, p, true) }

// EnumAttribute writes an enum field as an attribute, using its wire string.
func EnumAttribute(obj Object, p SetParams) error { return setScalar(obj, p, true) }

// TextSubelement writes a string field as the text of a subelement.
func TextSubelement(obj Object, p SetParams) error { return setScalar(obj, p, false) }

// BoolSubelement writes a boolean field as a "0"/"1" subelement.
func BoolSubelement(obj Object, p SetParams) error { return setScalar(obj, p, false) }

// IntSubelement writes an integer field as a subelement.
func IntSubelement(obj Object, p SetParams) error { return setScalar(obj, p, false) }

// FloatSubelement writes a float field as a subelement.
func FloatSubelement(obj Object, p SetParams) error { return setScalar(obj, p, false) }

// EnumSubelement writes an enum field as a subelement, using its wire string.
func EnumSubelement(obj Object, p SetParams) error { return setScalar(obj, p, false) }

// NodeText writes a string field as the text of the element itself.
func NodeText(obj Object, p SetParams) error {
	value, present := scalarValue(obj, p.AttrName)
	value, present = applyVerbosity(value, present, p)
	if !present {
		return nil
	}
	s, err := formatScalar(value)
	if err != nil {
		return err
	}
	p.Element.SetText(s)
	return nil
}

// XMLSubelement serializes a nested object field and appends it as a child.
func XMLSubelement(obj Object, p SetParams) error {
	f, ok := fieldValue(obj, p.AttrName)
	if !ok || (f.Kind() != reflect.Pointer && f.Kind() != reflect.Interface) || f.IsNil() {
		return nil
	}
	child, ok := f.Interface().(Object)
	if !ok {
		return kmlerrors.NewWrite("field %s does not hold a KML object", p.AttrName)
	}
	el, err := toElement(child, p.Precision, p.Verbosity)
	if err != nil {
		return err
	}
	p.Element.AddChild(el)
	return nil
}

// XMLSubelementList serializes every item of a repeated nested object field,
// skipping nil entries.
func XMLSubelementList(obj Object, p SetParams) error {
	f, ok := fieldValue(obj, p.AttrName)
	if !ok || f.Kind() != reflect.Slice || f.Len() == 0 {
		return nil
	}
	for i := 0; i < f.Len(); i++ {
		item := f.Index(i)
		if (item.Kind() == reflect.Pointer || item.Kind() == reflect.Interface) && item.IsNil() {
			continue
		}
		child, ok := item.Interface().(Object)
		if !ok {
			return kmlerrors.NewWrite("field %s item %d does not hold a KML object", p.AttrName, i)
		}
		el, err := toElement(child, p.Precision, p.Verbosity)
		if err != nil {
			return err
		}
		p.Element.AddChild(el)
	}
	return nil
}
