// Package xmltree wraps the etree document model with the namespace-aware
// operations the marshalling layer needs: element creation under a default
// namespace, qualified attribute and child lookup, and tree/string
// conversion.
//
// Namespaces are handled by URI, not prefix. Elements written by this package
// declare their namespace as the default namespace (xmlns="...") so child
// elements inherit it without prefixes; lookup resolves prefixes and default
// declarations through etree's in-scope namespace resolution.
package xmltree

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// NewElement returns a detached element with the given local name. When ns is
// non-empty it is declared as the element's default namespace.
func NewElement(local, ns string) *etree.Element {
	el := etree.NewElement(local)
	if ns != "" {
		el.CreateAttr("xmlns", ns)
	}
	return el
}

// SubElement creates and appends a child element with the given local name.
// The child inherits the parent's default namespace.
func SubElement(parent *etree.Element, local string) *etree.Element {
	return parent.CreateElement(local)
}

// FindChild returns the first child of el whose namespace URI and local name
// match, or nil. An empty ns matches children bound to no namespace.
func FindChild(el *etree.Element, ns, local string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == local && child.NamespaceURI() == ns {
			return child
		}
	}
	return nil
}

// FindChildren returns all children of el whose namespace URI and local name
// match, in document order.
func FindChildren(el *etree.Element, ns, local string) []*etree.Element {
	var found []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == local && child.NamespaceURI() == ns {
			found = append(found, child)
		}
	}
	return found
}

// Attr returns the value of the attribute with the given namespace URI and
// local name. Unqualified attributes are bound to no namespace, so they only
// match ns == "".
func Attr(el *etree.Element, ns, local string) (string, bool) {
	for _, a := range el.Attr {
		if a.Key == local && !isNamespaceDecl(a) && a.NamespaceURI() == ns {
			return a.Value, true
		}
	}
	return "", false
}

func isNamespaceDecl(a etree.Attr) bool {
	return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
}

// Text returns the character data of el with surrounding whitespace removed.
func Text(el *etree.Element) string {
	return strings.TrimSpace(el.Text())
}

// Parse reads an XML document from data and returns its root element.
func Parse(data string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parse xml: document has no root element")
	}
	return root, nil
}

// Serialize returns el as an XML string. When pretty is true the output is
// indented with two spaces, otherwise it is written compact.
func Serialize(el *etree.Element, pretty bool) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	if pretty {
		doc.Indent(2)
	}
	s, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("serialize xml: %w", err)
	}
	return s, nil
}

// String returns a compact single-line rendering of el, used to embed the
// offending node in error messages.
func String(el *etree.Element) string {
	if el == nil {
		return "<nil>"
	}
	s, err := Serialize(el, false)
	if err != nil {
		return "<" + el.Tag + ">"
	}
	return strings.TrimSpace(s)
}
