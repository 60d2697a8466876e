package ease

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDocument = `
frameRate: 30
properties:
  - name: Opacity
    keys:
      - time: 0
        value: [0]
        outType: bezier
        outEase:
          - speed: 10
            influence: 33.333333333333336
      - time: 0.8
        value: [-100]
        inType: bezier
        inEase:
          - speed: -10
            influence: 33.333333333333336
  - name: Scale
    keys:
      - time: 0
        value: [100, 100]
        outType: linear
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(sampleDocument))
	if err != nil {
		t.Fatal(err)
	}
	if doc.FrameRate != 30 {
		t.Errorf("got frame rate %v, want 30", doc.FrameRate)
	}
	if len(doc.Properties) != 2 {
		t.Fatalf("got %d properties, want 2", len(doc.Properties))
	}

	p := doc.Properties[0]
	if p.NumKeys() != 2 {
		t.Fatalf("got %d keys, want 2", p.NumKeys())
	}
	diff(t, 0.8, p.KeyTime(2))
	diff(t, []float64{-100}, p.KeyValue(2))
	diff(t, InterpolationBezier, p.KeyOutInterpolationType(1))
	diff(t, InterpolationBezier, p.KeyInInterpolationType(2))
	diff(t, []Ease{{Speed: -10, Influence: 100.0 / 3}}, p.KeyInTemporalEase(2))

	res := Convert(p, doc.FrameRate, DefaultOptions())
	diff(t, "M0.0000,0.0000C8.0000,2.6667,16.0000,-97.3333,24.0000,-100.0000", res.Output)

	// The single-keyframe property is skipped without error.
	res = Convert(doc.Properties[1], doc.FrameRate, DefaultOptions())
	diff(t, Result{}, res)
}

func TestParseDocumentRejectsBadFrameRate(t *testing.T) {
	_, err := ParseDocument([]byte("frameRate: 0\nproperties: []\n"))
	if err == nil || !strings.Contains(err.Error(), "frame rate") {
		t.Errorf("got %v, want a frame rate error", err)
	}
	_, err = ParseDocument([]byte("properties: []\n"))
	if err == nil {
		t.Error("missing frame rate accepted")
	}
}

func TestParseDocumentRejectsMalformedYAML(t *testing.T) {
	_, err := ParseDocument([]byte("frameRate: [not a number\n"))
	if err == nil {
		t.Error("malformed document accepted")
	}
}

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	if err := os.WriteFile(path, []byte(sampleDocument), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Properties) != 2 {
		t.Errorf("got %d properties, want 2", len(doc.Properties))
	}

	if _, err := LoadDocument(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestParseInterpolationType(t *testing.T) {
	cases := []struct {
		in   string
		want InterpolationType
	}{
		{"linear", InterpolationLinear},
		{"Linear", InterpolationLinear},
		{"BEZIER", InterpolationBezier},
		{"hold", InterpolationHold},
		{"rove", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := parseInterpolationType(c.in); got != c.want {
			t.Errorf("parseInterpolationType(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
