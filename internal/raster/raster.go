/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package raster paints scene primitives into an RGBA image through a
// gogpu/gg software context. Scene coordinates are logical pixels; Scale
// maps them to device pixels.
package raster

import (
	"image"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"circleviewer/internal/geometry"
	applog "circleviewer/internal/log"
	"circleviewer/internal/scene"
	"circleviewer/internal/textlayout"
)

// Surface paints primitives with fonts resolved through Fonts.
type Surface struct {
	Fonts *textlayout.GoFontProvider
	// Scale is device pixels per logical pixel; zero means 1.
	Scale float64
}

// New returns a Surface backed by the embedded Go font.
func New() *Surface { return &Surface{Fonts: textlayout.NewGoFontProvider()} }

// Viewport converts a device pixel size into the logical viewport handed to
// the scene renderer.
func Viewport(w, h int, scale float64) geometry.Viewport {
	if scale <= 0 {
		scale = 1
	}
	return geometry.Viewport{
		Width:  geometry.Round(float64(w) / scale),
		Height: geometry.Round(float64(h) / scale),
	}
}

// Render allocates a w×h device pixel image and paints prims into it.
// Non-positive sizes yield an empty image.
func (s *Surface) Render(prims []scene.Primitive, w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()
	s.draw(dc, prims)
	return toRGBA(dc.Image())
}

// Paint draws prims in order over the existing content of dst.
func (s *Surface) Paint(dst *image.RGBA, prims []scene.Primitive) {
	if dst.Bounds().Empty() {
		return
	}
	dc := gg.NewContextForImage(dst)
	defer func() { _ = dc.Close() }()
	s.draw(dc, prims)
	xdraw.Draw(dst, dst.Bounds(), dc.Image(), image.Point{}, xdraw.Src)
}

func (s *Surface) draw(dc *gg.Context, prims []scene.Primitive) {
	k := s.Scale
	if k <= 0 {
		k = 1
	}
	// strokes are centred on the pixel the scene addresses
	px := func(v int) float64 { return (float64(v) + 0.5) * k }
	dc.SetLineWidth(k)

	for _, p := range prims {
		if p.Color.A == 0 {
			continue
		}
		dc.SetColor(p.Color.RGBA())
		var err error
		switch p.Kind {
		case scene.KindFill:
			dc.DrawRectangle(float64(p.X)*k, float64(p.Y)*k, float64(p.W)*k, float64(p.H)*k)
			err = dc.Fill()
		case scene.KindLine:
			dc.DrawLine(px(p.X), px(p.Y), px(p.X2), px(p.Y2))
			err = dc.Stroke()
		case scene.KindRect:
			dc.DrawRectangle(px(p.X), px(p.Y), float64(p.W)*k, float64(p.H)*k)
			err = dc.Stroke()
		case scene.KindCircle:
			dc.DrawCircle(px(p.X), px(p.Y), float64(p.R)*k)
			err = dc.Stroke()
		case scene.KindArc:
			if p.Sweep == 0 || p.R <= 0 {
				continue
			}
			a1, a2 := screenArc(p.Start, p.Sweep)
			dc.DrawArc(px(p.X), px(p.Y), float64(p.R)*k, a1, a2)
			err = dc.Stroke()
		case scene.KindText:
			s.text(dc, p, k)
		}
		if err != nil {
			applog.WithComponent("raster").Warn("paint failed", slog.String("primitive", p.String()), slog.Any("err", err))
		}
	}
}

// screenArc maps a counterclockwise-on-screen sweep in degrees to the
// clockwise radian interval gg expects in y-down space.
func screenArc(startDeg, sweepDeg int) (a1, a2 float64) {
	lo, hi := startDeg, startDeg+sweepDeg
	if lo > hi {
		lo, hi = hi, lo
	}
	return -float64(hi) * math.Pi / 180, -float64(lo) * math.Pi / 180
}

func (s *Surface) text(dc *gg.Context, p scene.Primitive, k float64) {
	if s.Fonts == nil {
		s.Fonts = textlayout.NewGoFontProvider()
	}
	face, err := s.Fonts.Face(p.Font, k)
	if err != nil {
		applog.WithComponent("raster").Warn("no font face", slog.Any("err", err))
		return
	}
	dc.SetFont(face)
	dc.DrawString(p.Text, float64(p.X)*k, float64(p.Y)*k)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	xdraw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, xdraw.Src)
	return rgba
}
