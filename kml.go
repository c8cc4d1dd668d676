package kml

import (
	"fmt"
	"io"
	"os"
)

// KML is the root element of a KML document. It holds the top-level features
// and nothing else.
type KML struct {
	XMLObject
	Features []FeatureMember
}

// Append adds features to the document root.
func (k *KML) Append(features ...FeatureMember) {
	k.Features = append(k.Features, features...)
}

// Parse reads a complete KML document from r.
func Parse(r io.Reader, opts ParseOptions) (*KML, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("kml: read document: %w", err)
	}
	return FromString[*KML](string(data), opts)
}

// ParseFile reads a complete KML document from the file at path.
func ParseFile(path string, opts ParseOptions) (*KML, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kml: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("kml: parse %s: %w", path, err)
	}
	return doc, nil
}

// Write serializes the document to w.
func (k *KML) Write(w io.Writer, opts SerializeOptions) error {
	s, err := ToString(k, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("kml: write document: %w", err)
	}
	return nil
}

func init() {
	defaultRegistry.RegisterType(&KML{}, TypeSpec{
		Parent: &XMLObject{},
		NSID:   NSKML,
		Node:   "kml",
		New:    func() Object { return &KML{} },
	})
	defaultRegistry.Register(&KML{}, featureMemberItem())
}
