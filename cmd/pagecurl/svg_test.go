package main

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"honnef.co/go/pagecurl"
)

func wellFormed(t *testing.T, doc []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("malformed SVG: %v\n%s", err, doc)
		}
	}
}

func TestWriteSVGFlat(t *testing.T) {
	c, err := pagecurl.NewController(pagecurl.Sz(100, 160))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, c.Frame()); err != nil {
		t.Fatal(err)
	}
	wellFormed(t, buf.Bytes())

	out := buf.String()
	if !strings.Contains(out, `viewBox="0 0 100 160"`) {
		t.Error("missing viewBox")
	}
	if !strings.Contains(out, `<path d="M0,0 L0,160 L100,160 L100,0 Z" fill="#f9f7ef"/>`) {
		t.Errorf("missing flat page:\n%s", out)
	}
	if strings.Contains(out, "clipPath") {
		t.Error("flat frame has clip paths")
	}
}

func TestWriteSVGFolded(t *testing.T) {
	fr := foldedFrame(t)
	var buf bytes.Buffer
	if err := WriteSVG(&buf, fr); err != nil {
		t.Fatal(err)
	}
	wellFormed(t, buf.Bytes())

	out := buf.String()
	m := fr.Reflection.Coefficients()
	for _, want := range []string{
		fmt.Sprintf(`<clipPath id="front"><path d="%s"/></clipPath>`, fr.Front.SVG(svgPath)),
		fmt.Sprintf(`<clipPath id="back"><path d="%s"/></clipPath>`, fr.Back.SVG(svgPath)),
		`<linearGradient id="front-shadow"`,
		`<linearGradient id="back-shadow"`,
		`<stop offset="0" stop-color="#111111" stop-opacity="1"/>`,
		fmt.Sprintf(`transform="matrix(%g %g %g %g %g %g)"`, m[0], m[1], m[2], m[3], m[4], m[5]),
		`<use xlink:href="#content" clip-path="url(#front)"/>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVGError(t *testing.T) {
	if err := WriteSVG(failingWriter{}, foldedFrame(t)); err == nil {
		t.Error("expected error")
	}
}
