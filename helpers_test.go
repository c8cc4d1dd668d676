package kml

import (
	"testing"

	kmlerrors "github.com/cleder/fastkml-go/errors"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"1", true, false},
		{"0", false, false},
		{"true", true, false},
		{"false", false, false},
		{"TRUE", true, false},
		{"2", true, false},
		{"-1", true, false},
		{"maybe", false, true},
	}
	for _, tt := range tests {
		got, err := parseBool(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseBool(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("parseBool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSubelementFloatStrict(t *testing.T) {
	doc := `<LineStyle xmlns="http://www.opengis.net/kml/2.2"><width>notanumber</width></LineStyle>`

	_, err := FromString[*LineStyle](doc, NewParseOptions())
	if err == nil {
		t.Fatal("FromString() error = nil, want parse error")
	}
	perr, ok := kmlerrors.AsParse(err)
	if !ok {
		t.Fatalf("FromString() error = %v, want *ParseError", err)
	}
	if perr.Expected != "float" {
		t.Fatalf("ParseError.Expected = %q, want %q", perr.Expected, "float")
	}
}

func TestSubelementFloatLenient(t *testing.T) {
	doc := `<LineStyle xmlns="http://www.opengis.net/kml/2.2"><color>ff0000ff</color><width>notanumber</width></LineStyle>`

	style, err := FromString[*LineStyle](doc, NewParseOptions().WithStrict(false))
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if style.Width != nil {
		t.Fatalf("Width = %v, want nil for malformed lenient value", *style.Width)
	}
	if style.Color != "ff0000ff" {
		t.Fatalf("Color = %q, want %q", style.Color, "ff0000ff")
	}
}

func TestNamespaceCandidateFallback(t *testing.T) {
	// Items registered under {kml, ""} accept unqualified documents through
	// the second candidate.
	doc := `<LineStyle><width>2.5</width></LineStyle>`

	style, err := FromString[*LineStyle](doc, NewParseOptions().WithNamespace(""))
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if style.Width == nil || *style.Width != 2.5 {
		t.Fatalf("Width = %v, want 2.5", style.Width)
	}
}

func TestAttributeIntKwarg(t *testing.T) {
	doc := `<Snippet xmlns="http://www.opengis.net/kml/2.2" maxLines="2">a short description</Snippet>`

	snippet, err := FromString[*Snippet](doc, NewParseOptions())
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if snippet.MaxLines == nil || *snippet.MaxLines != 2 {
		t.Fatalf("MaxLines = %v, want 2", snippet.MaxLines)
	}
	if snippet.Text != "a short description" {
		t.Fatalf("Text = %q, want %q", snippet.Text, "a short description")
	}
}

func TestAttributeIntKwargMalformed(t *testing.T) {
	doc := `<Snippet xmlns="http://www.opengis.net/kml/2.2" maxLines="lots">x</Snippet>`

	if _, err := FromString[*Snippet](doc, NewParseOptions()); err == nil {
		t.Fatal("FromString() error = nil, want parse error")
	}

	snippet, err := FromString[*Snippet](doc, NewParseOptions().WithStrict(false))
	if err != nil {
		t.Fatalf("FromString() lenient error = %v", err)
	}
	if snippet.MaxLines != nil {
		t.Fatalf("MaxLines = %v, want nil for malformed lenient value", *snippet.MaxLines)
	}
}

func TestWrongRootElement(t *testing.T) {
	doc := `<NotAStyle xmlns="http://www.opengis.net/kml/2.2"/>`

	_, err := FromString[*LineStyle](doc, NewParseOptions())
	if err == nil {
		t.Fatal("FromString() error = nil, want parse error for wrong root")
	}
	if _, ok := kmlerrors.AsParse(err); !ok {
		t.Fatalf("FromString() error = %v, want *ParseError", err)
	}
}

func TestWrongRootNamespace(t *testing.T) {
	doc := `<LineStyle xmlns="http://example.com/not-kml"/>`

	if _, err := FromString[*LineStyle](doc, NewParseOptions()); err == nil {
		t.Fatal("FromString() error = nil, want parse error for wrong namespace")
	}
}
