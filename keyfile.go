package ease

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a keyframe capture: the composition's frame rate plus the
// selected properties' keyframe data. It stands in for the host scripting
// API, which is treated as an external collaborator; anything that can dump
// its keyframes into this shape can be converted.
type Document struct {
	FrameRate  float64        `yaml:"frameRate"`
	Properties []PropertyData `yaml:"properties"`
}

// PropertyData is the captured keyframe data of one animatable property.
// It implements [Property].
type PropertyData struct {
	Name string         `yaml:"name"`
	Keys []KeyframeData `yaml:"keys"`
}

// KeyframeData mirrors the per-keyframe accessors of the host object model.
type KeyframeData struct {
	// Time in seconds.
	Time float64 `yaml:"time"`
	// Value holds one element per dimension of the property's value.
	Value []float64 `yaml:"value"`
	// OutType and InType name the interpolation types ("linear", "bezier",
	// "hold"). Unrecognized names classify as unsupported downstream.
	OutType string `yaml:"outType"`
	InType  string `yaml:"inType"`
	// OutEase and InEase hold one ease segment per value dimension.
	OutEase []Ease `yaml:"outEase"`
	InEase  []Ease `yaml:"inEase"`
}

// LoadDocument reads a keyframe document from a YAML file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}

// ParseDocument parses a YAML keyframe document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing keyframe document: %w", err)
	}
	if doc.FrameRate <= 0 {
		return nil, fmt.Errorf("keyframe document: frame rate must be positive, got %v", doc.FrameRate)
	}
	return &doc, nil
}

func (p PropertyData) NumKeys() int { return len(p.Keys) }

func (p PropertyData) KeyTime(i int) float64 { return p.Keys[i-1].Time }

func (p PropertyData) KeyValue(i int) []float64 { return p.Keys[i-1].Value }

func (p PropertyData) KeyOutInterpolationType(i int) InterpolationType {
	return parseInterpolationType(p.Keys[i-1].OutType)
}

func (p PropertyData) KeyInInterpolationType(i int) InterpolationType {
	return parseInterpolationType(p.Keys[i-1].InType)
}

func (p PropertyData) KeyOutTemporalEase(i int) []Ease { return p.Keys[i-1].OutEase }

func (p PropertyData) KeyInTemporalEase(i int) []Ease { return p.Keys[i-1].InEase }

var _ Property = PropertyData{}

// parseInterpolationType maps a stored type name to its InterpolationType.
// Unknown names map to the zero value, which [Classify] treats as
// unsupported.
func parseInterpolationType(s string) InterpolationType {
	switch strings.ToLower(s) {
	case "linear":
		return InterpolationLinear
	case "bezier":
		return InterpolationBezier
	case "hold":
		return InterpolationHold
	default:
		return 0
	}
}
