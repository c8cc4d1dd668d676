package kml

import (
	"fmt"
	"reflect"

	"github.com/beevik/etree"

	kmlerrors "github.com/cleder/fastkml-go/errors"
	"github.com/cleder/fastkml-go/internal/xmltree"
)

// DefaultPrecision is the decimal precision used for coordinate output when
// no explicit precision is requested.
const DefaultPrecision = 6

// ExtraField is one entry of the extension data side-map carried by every
// object for forward-compatible round-tripping of unrecognized data.
type ExtraField struct {
	Key   string
	Value any
}

// XMLObject is the embedded base of every element type. It carries the
// instance's resolved namespace, the merged namespace table and the
// extension data side-map. Extension data takes part in equality but is not
// serialized back to XML; only fields with a registered item are.
type XMLObject struct {
	// NS is the namespace URI of the instance. When left empty, serialization
	// falls back to the URI the type's default namespace id resolves to.
	NS string
	// NameSpaces maps namespace ids to URIs, instance overrides merged over
	// the process-wide defaults.
	NameSpaces map[string]string

	extra []ExtraField
}

// Base returns the embedded XMLObject, satisfying Object for every type that
// embeds it.
func (o *XMLObject) Base() *XMLObject { return o }

// SetExtra stores extension data under key, replacing an existing entry.
// Insertion order is preserved.
func (o *XMLObject) SetExtra(key string, value any) {
	for i := range o.extra {
		if o.extra[i].Key == key {
			o.extra[i].Value = value
			return
		}
	}
	o.extra = append(o.extra, ExtraField{Key: key, Value: value})
}

// Extra returns a copy of the extension data in insertion order.
func (o *XMLObject) Extra() []ExtraField {
	out := make([]ExtraField, len(o.extra))
	copy(out, o.extra)
	return out
}

// Object is implemented by every element type by embedding XMLObject.
type Object interface {
	Base() *XMLObject
}

// Validator is implemented by element types that reject structurally invalid
// field combinations. The parsing engine calls Validate after kwarg
// assignment and propagates its error unchanged.
type Validator interface {
	Validate() error
}

// BaseObject adds the id and targetId attributes shared by identifiable KML
// elements.
type BaseObject struct {
	XMLObject
	ID       string
	TargetID string
}

func init() {
	defaultRegistry.RegisterType(&XMLObject{}, TypeSpec{})
	defaultRegistry.RegisterType(&BaseObject{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSKML,
	})
	defaultRegistry.Register(&BaseObject{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{reflect.TypeOf("")},
		AttrName:   "ID",
		Node:       "id",
		GetKwarg:   AttributeTextKwarg,
		SetElement: TextAttribute,
	})
	defaultRegistry.Register(&BaseObject{}, RegistryItem{
		NSIDs:      []string{"", NSKML},
		Classes:    []reflect.Type{reflect.TypeOf("")},
		AttrName:   "TargetID",
		Node:       "targetId",
		GetKwarg:   AttributeTextKwarg,
		SetElement: TextAttribute,
	})
}

// fromElement is the registry-driven construction path. For every item of
// the type's hierarchy it tries each namespace candidate in order, merges
// the first non-empty result and assigns the merged kwargs to the new
// object. Later items overwrite earlier keys, so a subclass registration for
// the same field name wins over its ancestor's.
func fromElement(t reflect.Type, el *etree.Element, ns string, nameSpaces map[string]string, strict bool) (Object, error) {
	spec, ok := defaultRegistry.Spec(t)
	if !ok || spec.New == nil {
		return nil, fmt.Errorf("kml: type %s is not registered for parsing", t)
	}
	if el.Tag != spec.Node || el.NamespaceURI() != ns {
		return nil, &kmlerrors.ParseError{
			Node:     xmltree.String(el),
			Element:  xmltree.String(el),
			Expected: elementName(spec.Node, ns),
		}
	}

	obj := spec.New()
	base := obj.Base()
	base.NS = ns
	base.NameSpaces = nameSpaces

	owner := t.Elem()
	kwargs := make(Kwargs)
	var order []string
	for _, item := range defaultRegistry.Get(t) {
		var fieldType reflect.Type
		if sf, ok := owner.FieldByName(item.AttrName); ok {
			fieldType = sf.Type
		}
		for _, nsID := range item.NSIDs {
			kw, err := item.GetKwarg(GetParams{
				Element:    el,
				NS:         resolveNSID(nsID, nameSpaces, ns),
				NameSpaces: nameSpaces,
				Node:       item.Node,
				Kwarg:      item.AttrName,
				Classes:    item.Classes,
				FieldType:  fieldType,
				Strict:     strict,
			})
			if err != nil {
				return nil, err
			}
			if len(kw) > 0 {
				for k, v := range kw {
					if _, seen := kwargs[k]; !seen {
						order = append(order, k)
					}
					kwargs[k] = v
				}
				break
			}
		}
	}

	assignKwargs(obj, kwargs, order)

	if v, ok := obj.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

func elementName(node, ns string) string {
	if ns == "" {
		return "<" + node + ">"
	}
	return fmt.Sprintf("<%s xmlns=%q>", node, ns)
}

// assignKwargs sets each kwarg on its struct field; kwargs that match no
// field are retained verbatim as extension data.
func assignKwargs(obj Object, kwargs Kwargs, order []string) {
	rv := reflect.ValueOf(obj).Elem()
	base := obj.Base()
	for _, key := range order {
		value := kwargs[key]
		f := rv.FieldByName(key)
		if f.IsValid() && f.CanSet() && value != nil && reflect.TypeOf(value).AssignableTo(f.Type()) {
			f.Set(reflect.ValueOf(value))
			continue
		}
		base.SetExtra(key, value)
	}
}

// toElement creates the element form of obj: a fresh element under the
// object's namespace, populated by every registered set function in hierarchy
// order. An unset namespace resolves to the type's declared default namespace
// id, so directly constructed objects serialize qualified. obj is not mutated.
func toElement(obj Object, precision int, verbosity Verbosity) (*etree.Element, error) {
	t := reflect.TypeOf(obj)
	spec, ok := defaultRegistry.Spec(t)
	if !ok || spec.Node == "" {
		return nil, kmlerrors.NewWrite("type %s is not registered for serialization", t)
	}
	base := obj.Base()
	ns := base.NS
	if ns == "" && spec.NSID != "" {
		nameSpaces := base.NameSpaces
		if nameSpaces == nil {
			nameSpaces = DefaultNameSpaces()
		}
		ns = nameSpaces[spec.NSID]
	}
	el := xmltree.NewElement(spec.Node, ns)
	for _, item := range defaultRegistry.Get(t) {
		err := item.SetElement(obj, SetParams{
			Element:   el,
			AttrName:  item.AttrName,
			Node:      item.Node,
			Precision: precision,
			Verbosity: verbosity,
			Default:   item.Default,
		})
		if err != nil {
			return nil, err
		}
	}
	return el, nil
}

type boolOption struct {
	value bool
	set   bool
}

func (o boolOption) resolvedOr(def bool) bool {
	if !o.set {
		return def
	}
	return o.value
}

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolvedOr(def int) int {
	if !o.set {
		return def
	}
	return o.value
}

type stringOption struct {
	value string
	set   bool
}

type verbosityOption struct {
	value Verbosity
	set   bool
}

func (o verbosityOption) resolvedOr(def Verbosity) Verbosity {
	if !o.set {
		return def
	}
	return o.value
}

// ParseOptions configures FromString and FromElement. The zero value parses
// strictly under each type's default namespace.
type ParseOptions struct {
	ns         stringOption
	nameSpaces map[string]string
	strict     boolOption
}

// NewParseOptions returns a default, valid parse options value.
func NewParseOptions() ParseOptions {
	return ParseOptions{}
}

// WithNamespace overrides the namespace URI the document is expected in. An
// empty string selects unqualified documents.
func (o ParseOptions) WithNamespace(ns string) ParseOptions {
	o.ns = stringOption{value: ns, set: true}
	return o
}

// WithNameSpaces layers namespace id overrides over the default table.
func (o ParseOptions) WithNameSpaces(nameSpaces map[string]string) ParseOptions {
	o.nameSpaces = nameSpaces
	return o
}

// WithStrict controls whether malformed field values abort the parse
// (default) or are logged and omitted.
func (o ParseOptions) WithStrict(strict bool) ParseOptions {
	o.strict = boolOption{value: strict, set: true}
	return o
}

// SerializeOptions configures ToElement and ToString. The zero value writes
// indented output at normal verbosity with the default coordinate precision.
type SerializeOptions struct {
	prettyPrint boolOption
	precision   intOption
	verbosity   verbosityOption
}

// NewSerializeOptions returns a default, valid serialize options value.
func NewSerializeOptions() SerializeOptions {
	return SerializeOptions{}
}

// WithPrettyPrint controls output indentation (default true).
func (o SerializeOptions) WithPrettyPrint(pretty bool) SerializeOptions {
	o.prettyPrint = boolOption{value: pretty, set: true}
	return o
}

// WithPrecision sets the decimal precision for coordinate output.
func (o SerializeOptions) WithPrecision(precision int) SerializeOptions {
	o.precision = intOption{value: precision, set: true}
	return o
}

// WithVerbosity selects default handling, see Verbosity.
func (o SerializeOptions) WithVerbosity(v Verbosity) SerializeOptions {
	o.verbosity = verbosityOption{value: v, set: true}
	return o
}

// FromElement constructs a T from an already parsed element.
func FromElement[T Object](el *etree.Element, opts ParseOptions) (T, error) {
	var zero T
	t := reflect.TypeOf(zero)
	merged := mergeNameSpaces(opts.nameSpaces)
	ns := opts.ns.value
	if !opts.ns.set {
		spec, ok := defaultRegistry.Spec(t)
		if !ok {
			return zero, fmt.Errorf("kml: type %s is not registered for parsing", t)
		}
		ns = merged[spec.NSID]
	}
	obj, err := fromElement(t, el, ns, merged, opts.strict.resolvedOr(true))
	if err != nil {
		return zero, err
	}
	return obj.(T), nil
}

// FromString parses data and constructs a T from its root element.
func FromString[T Object](data string, opts ParseOptions) (T, error) {
	var zero T
	root, err := xmltree.Parse(data)
	if err != nil {
		return zero, err
	}
	return FromElement[T](root, opts)
}

// ToElement returns the element form of obj.
func ToElement(obj Object, opts SerializeOptions) (*etree.Element, error) {
	return toElement(
		obj,
		opts.precision.resolvedOr(DefaultPrecision),
		opts.verbosity.resolvedOr(Normal),
	)
}

// ToString returns obj as serialized XML.
func ToString(obj Object, opts SerializeOptions) (string, error) {
	el, err := ToElement(obj, opts)
	if err != nil {
		return "", err
	}
	return xmltree.Serialize(el, opts.prettyPrint.resolvedOr(true))
}
