// Command export writes test case definitions and their results to JSON,
// for comparison against independent implementations.
// Run from the go-pixels module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixels/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
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

type jsonTestCase struct {
	Name     string      `json:"name"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	P0       [2]float64  `json:"p0"`
	P1       [2]float64  `json:"p1"`
	Op       string      `json:"op"`
	Method   string      `json:"method,omitempty"`
	Radius   int         `json:"radius,omitempty"`
	Viewport []float64   `json:"viewport,omitempty"`
	Matrix   []float64   `json:"matrix,omitempty"`
	About    bool        `json:"about,omitempty"`
	Visible  bool        `json:"visible"`
	Segment  [][]float64 `json:"segment,omitempty"`
	Pixels   [][2]int    `json:"pixels"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	res, err := tc.Run()
	if err != nil {
		return jsonTestCase{}, fmt.Errorf("%s_%s: %w", category, tc.Name, err)
	}

	jtc := jsonTestCase{
		Name:    category + "_" + tc.Name,
		Width:   tc.Width,
		Height:  tc.Height,
		P0:      vecToJSON(tc.P0),
		P1:      vecToJSON(tc.P1),
		Visible: res.Visible,
		Pixels:  make([][2]int, len(res.Pixels)),
	}
	for i, p := range res.Pixels {
		jtc.Pixels[i] = [2]int{p.X, p.Y}
	}

	switch op := tc.Op.(type) {
	case testcases.Line:
		jtc.Op = "line"
		jtc.Method = op.Method.String()
	case testcases.Circle:
		jtc.Op = "circle"
		jtc.Radius = op.Radius
	case testcases.Clip:
		jtc.Op = "clip"
		jtc.Method = op.Method.String()
		jtc.Viewport = []float64{op.Viewport.LLx, op.Viewport.LLy, op.Viewport.URx, op.Viewport.URy}
	case testcases.Transform:
		jtc.Op = "transform"
		jtc.Matrix = op.CTM[:]
		jtc.About = op.About
	}

	if _, isCircle := tc.Op.(testcases.Circle); !isCircle && res.Visible {
		p0, p1 := vecToJSON(res.Segment.P0), vecToJSON(res.Segment.P1)
		jtc.Segment = [][]float64{p0[:], p1[:]}
	}
	return jtc, nil
}

func vecToJSON(v vec.Vec2) [2]float64 {
	return [2]float64{v.X, v.Y}
}
