// Command export writes the preset shape tables to JSON, for use by
// reference implementations in other languages.
// It is run by "go generate" in the presets directory.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"seehuhn.de/go/phantom"
	"seehuhn.de/go/phantom/presets"
)

func main() {
	var out struct {
		Presets []jsonPreset `json:"presets"`
	}

	for _, name := range presets.Names() {
		p, err := toJSON(name, presets.All[name]())
		if err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
		out.Presets = append(out.Presets, p)
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/presets.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonPreset struct {
	Name   string      `json:"name"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Kind      string     `json:"kind"`
	Center    [2]float64 `json:"center"`
	Size      [2]float64 `json:"size"` // semi-axes for ellipses, sides for rectangles
	Theta     float64    `json:"theta"`
	Intensity float64    `json:"intensity"`
}

func toJSON(name string, shapes []phantom.Shape) (jsonPreset, error) {
	p := jsonPreset{Name: name}
	for i, s := range shapes {
		var js jsonShape
		switch s := s.(type) {
		case phantom.Ellipse:
			js = jsonShape{
				Kind:      "ellipse",
				Center:    [2]float64{s.Center.X, s.Center.Y},
				Size:      [2]float64{s.MajorAxis, s.MinorAxis},
				Theta:     s.Theta,
				Intensity: s.Intensity,
			}
		case phantom.Rectangle:
			js = jsonShape{
				Kind:      "rectangle",
				Center:    [2]float64{s.Center.X, s.Center.Y},
				Size:      [2]float64{s.Width, s.Height},
				Theta:     s.Theta,
				Intensity: s.Intensity,
			}
		default:
			return p, fmt.Errorf("shape %d: unsupported type %T", i, s)
		}
		p.Shapes = append(p.Shapes, js)
	}
	return p, nil
}
