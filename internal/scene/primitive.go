/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

import (
	"fmt"

	"circleviewer/internal/textlayout"
)

// Kind tags a Primitive.
type Kind uint8

const (
	KindFill   Kind = iota // solid rectangle X,Y,W,H
	KindLine               // X,Y -> X2,Y2
	KindCircle             // outline centered at X,Y with radius R
	KindRect               // outline X,Y,W,H
	KindArc                // outline centered at X,Y, radius R, Start/Sweep degrees
	KindText               // Text with baseline origin at X,Y
)

func (k Kind) String() string {
	switch k {
	case KindFill:
		return "fill"
	case KindLine:
		return "line"
	case KindCircle:
		return "circleOutline"
	case KindRect:
		return "rectOutline"
	case KindArc:
		return "arc"
	case KindText:
		return "text"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Primitive is one drawing instruction in integer pixel coordinates.
// Only the fields relevant for Kind are set; the rest stay zero so that
// primitives compare with ==.
type Primitive struct {
	Kind   Kind
	X, Y   int
	X2, Y2 int
	W, H   int
	R      int
	Start  int
	Sweep  int
	Text   string
	Font   textlayout.FontSpec
	Color  Color
	// Decoration marks primitives emitted only when components are shown.
	Decoration bool
}

func Fill(x, y, w, h int, c Color) Primitive {
	return Primitive{Kind: KindFill, X: x, Y: y, W: w, H: h, Color: c}
}

func Line(x1, y1, x2, y2 int, c Color) Primitive {
	return Primitive{Kind: KindLine, X: x1, Y: y1, X2: x2, Y2: y2, Color: c}
}

func CircleOutline(cx, cy, r int, c Color) Primitive {
	return Primitive{Kind: KindCircle, X: cx, Y: cy, R: r, Color: c}
}

func RectOutline(x, y, w, h int, c Color) Primitive {
	return Primitive{Kind: KindRect, X: x, Y: y, W: w, H: h, Color: c}
}

func Arc(cx, cy, r, startDeg, sweepDeg int, c Color) Primitive {
	return Primitive{Kind: KindArc, X: cx, Y: cy, R: r, Start: startDeg, Sweep: sweepDeg, Color: c}
}

func Text(x, y int, s string, f textlayout.FontSpec, c Color) Primitive {
	return Primitive{Kind: KindText, X: x, Y: y, Text: s, Font: f, Color: c}
}

// String renders p in the call-like notation used by the dump command.
func (p Primitive) String() string {
	var s string
	switch p.Kind {
	case KindFill, KindRect:
		s = fmt.Sprintf("%s(%d,%d,%d,%d,%s)", p.Kind, p.X, p.Y, p.W, p.H, p.Color)
	case KindLine:
		s = fmt.Sprintf("line(%d,%d,%d,%d,%s)", p.X, p.Y, p.X2, p.Y2, p.Color)
	case KindCircle:
		s = fmt.Sprintf("circleOutline(%d,%d,%d,%s)", p.X, p.Y, p.R, p.Color)
	case KindArc:
		s = fmt.Sprintf("arc(%d,%d,%d,%d,%d,%s)", p.X, p.Y, p.R, p.Start, p.Sweep, p.Color)
	case KindText:
		s = fmt.Sprintf("text(%d,%d,%q,%s %.0f,%s)", p.X, p.Y, p.Text, p.Font.Family, p.Font.SizePt, p.Color)
	default:
		s = p.Kind.String()
	}
	if p.Decoration {
		s += " *"
	}
	return s
}
