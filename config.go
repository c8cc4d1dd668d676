package kml

// Namespace ids used as keys in namespace maps and as RegistryItem namespace
// candidates.
const (
	NSKML  = "kml"
	NSAtom = "atom"
	NSGX   = "gx"
)

// Namespace URIs for the supported vocabularies.
const (
	KMLNamespace  = "http://www.opengis.net/kml/2.2"
	AtomNamespace = "http://www.w3.org/2005/Atom"
	GXNamespace   = "http://www.google.com/kml/ext/2.2"
)

// DefaultNameSpaces returns a fresh copy of the process-wide default
// namespace table mapping namespace ids to URIs.
func DefaultNameSpaces() map[string]string {
	return map[string]string{
		NSKML:  KMLNamespace,
		NSAtom: AtomNamespace,
		NSGX:   GXNamespace,
	}
}

// mergeNameSpaces layers overrides on top of the default namespace table.
// The result is always a fresh map.
func mergeNameSpaces(overrides map[string]string) map[string]string {
	merged := DefaultNameSpaces()
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// resolveNSID resolves a namespace candidate id against a namespace map. The
// empty id denotes "no namespace" (unqualified nodes and attributes); ids not
// present in the map fall back to the owning object's namespace.
func resolveNSID(nsID string, nameSpaces map[string]string, objectNS string) string {
	if nsID == "" {
		return ""
	}
	if uri, ok := nameSpaces[nsID]; ok {
		return uri
	}
	return objectNS
}
