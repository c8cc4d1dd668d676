// Package kml reads and writes Keyhole Markup Language documents.
//
// Element types are plain structs embedding XMLObject. Their XML mapping is
// declarative: a process-wide registry associates each type with field
// descriptors naming the attribute or subelement, the namespaces it may
// appear under and the get/set function pair handling its shape. Parsing and
// serialization are generic walks over those descriptors, so adding an
// element type means registering descriptors, not writing codec code.
//
// Parse a document with Parse, ParseFile or the generic FromString and
// FromElement entry points; write one with ToString, ToElement or KML.Write.
// Strictness, namespaces, coordinate precision and default-value verbosity
// are controlled through ParseOptions and SerializeOptions.
package kml
