package kml

import (
	"reflect"
	"strings"
	"sync"

	"github.com/beevik/etree"
)

// Kwargs is a partial constructor-argument mapping produced by a get
// function. An empty map means the field is absent; list-shaped getters
// always return their key, possibly bound to an empty slice.
type Kwargs map[string]any

// GetParams carries everything a get function needs to extract one field
// from an element.
type GetParams struct {
	// Element is the element the owning object is being parsed from.
	Element *etree.Element
	// NS is the resolved URI of the namespace candidate currently tried.
	NS string
	// NameSpaces is the merged namespace id to URI table.
	NameSpaces map[string]string
	// Node is the XML node or attribute name, possibly "/"-joined for
	// polymorphic fields.
	Node string
	// Kwarg is the field name the result is keyed under.
	Kwarg string
	// Classes are the accepted concrete types, in declared order.
	Classes []reflect.Type
	// FieldType is the declared type of the target struct field, when the
	// owning type has one; nil otherwise.
	FieldType reflect.Type
	// Strict selects between raising and warn-and-omit on malformed values.
	Strict bool
}

// GetKwarg extracts one field from an element. It returns an empty Kwargs
// when the field is absent, and an error only for strict-mode parse
// failures.
type GetKwarg func(p GetParams) (Kwargs, error)

// SetParams carries everything a set function needs to write one field into
// an element.
type SetParams struct {
	// Element is the element being populated.
	Element *etree.Element
	// AttrName is the field name on the owning object.
	AttrName string
	// Node is the XML node or attribute name to write.
	Node string
	// Precision is the decimal precision for coordinate output.
	Precision int
	// Verbosity controls default handling, see Verbosity.
	Verbosity Verbosity
	// Default is the registered default value, if any.
	Default any
}

// SetElement writes one field of obj into the element. Absent fields are a
// no-op; structurally invalid values are an unconditional error.
type SetElement func(obj Object, p SetParams) error

// RegistryItem describes how one field of one element type maps to and from
// XML. Items are immutable after registration.
type RegistryItem struct {
	// NSIDs are the namespace candidates tried in order at parse time.
	NSIDs []string
	// Classes are the accepted concrete types for the field value.
	Classes []reflect.Type
	// AttrName is the field name on the owning type.
	AttrName string
	// Node is the XML node or attribute name.
	Node string
	// GetKwarg extracts the field at parse time.
	GetKwarg GetKwarg
	// SetElement writes the field at serialization time.
	SetElement SetElement
	// Default is written in Verbose mode when the field is absent and
	// suppressed in Terse mode when the value equals it.
	Default any
}

// TypeSpec is the per-type metadata contributed alongside field
// registrations: the position in the hierarchy, the default namespace id,
// the canonical tag name and the factory used by the parsing engine.
type TypeSpec struct {
	// Parent is a prototype of the parent type; nil marks a hierarchy root.
	Parent Object
	// NSID is the default namespace id used when no namespace is given.
	NSID string
	// Node is the canonical tag name; empty for abstract types.
	Node string
	// New returns a zero value of the type; nil for abstract types.
	New func() Object
}

// Registry is the process-wide table of RegistryItems, queryable in
// ancestor-to-descendant order. It is populated from init functions and
// read-only afterwards; the mutex makes concurrent reads structurally safe
// rather than safe by convention.
type Registry struct {
	mu    sync.RWMutex
	items map[reflect.Type][]RegistryItem
	specs map[reflect.Type]TypeSpec
	chain map[reflect.Type][]reflect.Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[reflect.Type][]RegistryItem),
		specs: make(map[reflect.Type]TypeSpec),
		chain: make(map[reflect.Type][]reflect.Type),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the shared registry pre-populated with all KML
// element registrations. Custom element types should be registered here.
func DefaultRegistry() *Registry { return defaultRegistry }

// RegisterType records the hierarchy position and element metadata for the
// type of proto. Registering a type invalidates cached ancestor chains so
// registration order is free as long as it precedes the first query.
func (r *Registry) RegisterType(proto Object, spec TypeSpec) {
	t := reflect.TypeOf(proto)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[t] = spec
	r.chain = make(map[reflect.Type][]reflect.Type)
}

// Register appends item to the list registered directly against the type of
// proto. It always succeeds; duplicate field names are resolved at parse
// time by last-in-hierarchy-order-wins kwarg merging.
func (r *Registry) Register(proto Object, item RegistryItem) {
	t := reflect.TypeOf(proto)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[t] = append(r.items[t], item)
}

// Get returns the items for t and all its ancestors, most-base first, each
// type's items in registration order. Unregistered types yield an empty
// slice.
func (r *Registry) Get(t reflect.Type) []RegistryItem {
	r.mu.RLock()
	chain, ok := r.chain[t]
	r.mu.RUnlock()
	if !ok {
		chain = r.buildChain(t)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []RegistryItem
	for _, ancestor := range chain {
		items = append(items, r.items[ancestor]...)
	}
	return items
}

// buildChain computes and caches the base-first ancestor chain of t from the
// registered parent pointers.
func (r *Registry) buildChain(t reflect.Type) []reflect.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	if chain, ok := r.chain[t]; ok {
		return chain
	}
	var reversed []reflect.Type
	seen := make(map[reflect.Type]bool)
	for cur := t; cur != nil && !seen[cur]; {
		seen[cur] = true
		reversed = append(reversed, cur)
		spec, ok := r.specs[cur]
		if !ok || spec.Parent == nil {
			break
		}
		cur = reflect.TypeOf(spec.Parent)
	}
	chain := make([]reflect.Type, len(reversed))
	for i, ancestor := range reversed {
		chain[len(reversed)-1-i] = ancestor
	}
	r.chain[t] = chain
	return chain
}

// Spec returns the registered TypeSpec for t.
func (r *Registry) Spec(t reflect.Type) (TypeSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[t]
	return spec, ok
}

// splitNodeNames expands a polymorphic node name into its candidate tag
// names. Single names come back as a one-element slice.
func splitNodeNames(node string) []string {
	if !strings.ContainsAny(node, "/,") {
		return []string{node}
	}
	return strings.FieldsFunc(node, func(r rune) bool {
		return r == '/' || r == ','
	})
}
