package kml

import "testing"

func TestDefaultNameSpacesIsACopy(t *testing.T) {
	a := DefaultNameSpaces()
	a[NSKML] = "mutated"
	if got := DefaultNameSpaces()[NSKML]; got != KMLNamespace {
		t.Fatalf("DefaultNameSpaces()[kml] = %q after mutation, want %q", got, KMLNamespace)
	}
}

func TestMergeNameSpaces(t *testing.T) {
	merged := mergeNameSpaces(map[string]string{NSKML: "http://example.com/kml"})
	if got := merged[NSKML]; got != "http://example.com/kml" {
		t.Fatalf("merged[kml] = %q, want override", got)
	}
	if got := merged[NSAtom]; got != AtomNamespace {
		t.Fatalf("merged[atom] = %q, want default %q", got, AtomNamespace)
	}
}

func TestResolveNSID(t *testing.T) {
	nameSpaces := DefaultNameSpaces()
	tests := []struct {
		nsID string
		want string
	}{
		{"", ""},
		{NSKML, KMLNamespace},
		{NSAtom, AtomNamespace},
		{NSGX, GXNamespace},
		{"unknown", "http://example.com/object"},
	}
	for _, tt := range tests {
		if got := resolveNSID(tt.nsID, nameSpaces, "http://example.com/object"); got != tt.want {
			t.Fatalf("resolveNSID(%q) = %q, want %q", tt.nsID, got, tt.want)
		}
	}
}
