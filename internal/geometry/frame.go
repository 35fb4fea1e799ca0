/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

// Derived pixel geometry. Everything here is recomputed on each render from
// a Snapshot and the current Viewport; nothing is cached.

import "math"

// Pt is an integer pixel position in screen coordinates (y grows downward).
type Pt struct{ X, Y int }

func (p Pt) Add(o Pt) Pt { return Pt{p.X + o.X, p.Y + o.Y} }
func (p Pt) Sub(o Pt) Pt { return Pt{p.X - o.X, p.Y - o.Y} }

// Viewport is the drawable size reported by the host window. Zero or
// negative sizes are passed through unchanged.
type Viewport struct{ Width, Height int }

// Frame is the derived geometry for one render.
type Frame struct {
	Corner Pt // top-left of the circle's bounding box
	Center Pt
	Point  Pt // tip of the radius vector at the current angle
}

// Derive computes the frame for s inside vp.
// The point uses cos(a) for x and sin(-a) for y: only the sine is negated.
func Derive(s Snapshot, vp Viewport) Frame {
	corner := Pt{X: vp.Width/2 - s.Radius, Y: vp.Height/2 - s.Radius}
	center := corner.Add(Pt{s.Radius, s.Radius})
	r := float64(s.Radius)
	point := Pt{
		X: Round(float64(center.X) + r*math.Cos(Radians(s.Angle))),
		Y: Round(float64(center.Y) + r*math.Sin(Radians(-s.Angle))),
	}
	return Frame{Corner: corner, Center: center, Point: point}
}

// Radians converts whole degrees to radians.
func Radians(deg int) float64 { return float64(deg) * math.Pi / 180 }

// Round rounds half away from zero to the nearest integer pixel.
func Round(v float64) int { return int(math.Round(v)) }

// Abs returns |v|.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
