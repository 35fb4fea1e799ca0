/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

// Palette and fonts.

import (
	"fmt"
	"image/color"

	"circleviewer/internal/textlayout"
)

type Color struct{ R, G, B, A uint8 }

func (c Color) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

var (
	White        = Color{255, 255, 255, 255}
	LightGray    = Color{192, 192, 192, 255}
	DarkGray     = Color{64, 64, 64, 255}
	Red          = Color{255, 0, 0, 255}
	Green        = Color{0, 255, 0, 255}
	Orange       = Color{255, 200, 0, 255}
	AxisGray     = Color{80, 80, 80, 255}
	GuideSlate   = Color{112, 128, 144, 255}
	ComponentSea = Color{143, 188, 143, 255}
	Transparent  = Color{0, 0, 0, 0}
)

var (
	TitleFont   = textlayout.FontSpec{Family: "Dialog", SizePt: 16}
	CoordFont   = textlayout.FontSpec{Family: "Dialog", SizePt: 14}
	DefaultFont = textlayout.FontSpec{Family: "Dialog", SizePt: 12}
	CreditFont  = textlayout.FontSpec{Family: "Dialog", SizePt: 16}
)

// Credit is the static attribution drawn in the top-right corner.
const Credit = "Programmed by Alejandro Batres"
