/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package scene turns a geometry snapshot and a viewport into the ordered
// list of drawing primitives for one frame.
package scene

import (
	"fmt"
	"math"

	"circleviewer/internal/geometry"
)

// ArcRadius is the radius of the angle indicator arc in pixels.
const ArcRadius = 32

// Render is a pure function of its inputs; identical inputs yield identical
// lists. Later primitives paint over earlier ones.
func Render(s geometry.Snapshot, vp geometry.Viewport) []Primitive {
	f := geometry.Derive(s, vp)
	c, p, r := f.Center, f.Point, s.Radius
	w, h := vp.Width, vp.Height

	out := make([]Primitive, 0, 64)
	out = append(out,
		Fill(0, 0, w, h, DarkGray),
		Line(0, c.Y, w, c.Y, AxisGray),
		Line(c.X, 0, c.X, h, AxisGray),
	)

	if s.ShowComponents {
		out = appendComponents(out, f, r, vp)
	}

	out = append(out,
		CircleOutline(c.X, c.Y, r, White),
		CircleOutline(c.X, c.Y, r+1, White),
		Text(c.X-18, c.Y+15, "Center", DefaultFont, White),
		Line(c.X, c.Y, p.X, p.Y, White),

		Text(c.X-15, c.Y-8, fmt.Sprintf("%d d", s.Angle), DefaultFont, LightGray),
		Arc(c.X, c.Y, ArcRadius, 0, s.Angle, LightGray),

		Text(30, 35, "Coordinates (center at the origin):", TitleFont, LightGray),
		Text(30, 55, pointLabel("P", p.X-c.X, c.Y-p.Y), CoordFont, LightGray),
		Text(30, 75, pointLabel("C", 0, 0), CoordFont, LightGray),

		Text(30, 100, "Coordinates (in frame):", TitleFont, Orange),
		Text(30, 120, pointLabel("P", p.X, p.Y), CoordFont, Orange),
		Text(30, 140, pointLabel("C", c.X, c.Y), CoordFont, Orange),

		Text(c.X+r/2-14, c.Y-8, fmt.Sprintf("r = %d px", r), DefaultFont, Red),
		Line(c.X, c.Y, c.X+r, c.Y, Red),

		Text(w-280, 30, Credit, CreditFont, LightGray),
	)
	return out
}

// appendComponents adds the guide grid, degree labels, and the x/y
// decomposition of the radius vector.
func appendComponents(out []Primitive, f geometry.Frame, r int, vp geometry.Viewport) []Primitive {
	c, p := f.Center, f.Point
	start := len(out)

	// 45 degree multiples: the axes clipped to the circle
	out = append(out,
		Line(c.X-r, c.Y, c.X+r, c.Y, GuideSlate),
		Line(c.X, c.Y-r, c.X, c.Y+r, GuideSlate),
	)

	// 90: diagonals and the bounding square
	out = append(out,
		Line(c.X-r, c.Y-r, c.X+r, c.Y+r, AxisGray),
		Line(c.X+r, c.Y-r, c.X-r, c.Y+r, AxisGray),
		RectOutline(c.X-r, c.Y-r, 2*r, 2*r, AxisGray),
	)

	// 60: steep diagonals through (±r, ±r·tan60)
	tan60 := math.Tan(geometry.Radians(60))
	t60 := geometry.Round(float64(r) * tan60)
	out = append(out,
		Line(c.X-r, c.Y-t60, c.X+r, c.Y+t60, AxisGray),
		Line(c.X+r, c.Y-t60, c.X-r, c.Y+t60, AxisGray),
		RectOutline(c.X-r, c.Y-t60, 2*r, geometry.Round(2*float64(r)*tan60), AxisGray),
	)

	// 30: shallow diagonals through (±r/tan30, ±r)
	cot30 := 1 / math.Tan(geometry.Radians(30))
	c30 := geometry.Round(float64(r) * cot30)
	out = append(out,
		Line(c.X-c30, c.Y-r, c.X+c30, c.Y+r, AxisGray),
		Line(c.X+c30, c.Y-r, c.X-c30, c.Y+r, AxisGray),
		RectOutline(c.X-c30, c.Y-r, geometry.Round(2*float64(r)*cot30), 2*r, AxisGray),
	)

	out = appendDegreeLabels(out, c, r)

	out = append(out,
		Line(p.X, c.Y, p.X, p.Y, ComponentSea),
		Line(c.X, p.Y, p.X, p.Y, ComponentSea),

		Text(vp.Width-225, vp.Height-190, "Components (magnitude):", TitleFont, Green),
		Text(vp.Width-225, vp.Height-170, fmt.Sprintf("x component: %d px", geometry.Abs(p.X-c.X)), CoordFont, Green),
		Text(vp.Width-225, vp.Height-150, fmt.Sprintf("y component: %d px", geometry.Abs(p.Y-c.Y)), CoordFont, Green),
	)

	for i := start; i < len(out); i++ {
		out[i].Decoration = true
	}
	return out
}

// LabelAngles lists every angle in [0,360) that is a multiple of 45 or 30,
// ascending and without duplicates.
func LabelAngles() []int {
	var as []int
	for a := 0; a < 360; a++ {
		if a%45 == 0 || a%30 == 0 {
			as = append(as, a)
		}
	}
	return as
}

func appendDegreeLabels(out []Primitive, c geometry.Pt, r int) []Primitive {
	for _, a := range LabelAngles() {
		rad := geometry.Radians(a)
		x := c.X - 16 + geometry.Round(float64(r+25)*math.Cos(rad))
		y := c.Y + 7 - geometry.Round(float64(r+15)*math.Sin(rad))
		out = append(out, Text(x, y, fmt.Sprintf("%d d", a), DefaultFont, GuideSlate))
	}
	return out
}

func pointLabel(name string, x, y int) string {
	return fmt.Sprintf("%s (%d px, %d px)", name, x, y)
}
