//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"circleviewer/internal/config"
	"circleviewer/internal/controls"
	"circleviewer/internal/crash"
	"circleviewer/internal/geometry"
	applog "circleviewer/internal/log"
	"circleviewer/internal/raster"
	"circleviewer/internal/scene"
)

const (
	windowTitle = "A simple circumference viewer"
	optShow     = "Show"
	optDontShow = "Don't show"
)

// Run opens the viewer window and blocks until it is closed.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	state := geometry.NewState()
	defer crash.Recover(state.Snapshot)

	fyneApp := app.NewWithID("circleviewer")
	w := fyneApp.NewWindow(windowTitle)
	winW, winH := cfg.Window.EffectiveWindow()
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	h := newHost(state, cfg.Window)
	w.SetContent(h.content())
	h.sync.Redraw()

	w.ShowAndRun()
	l.Info("UI closed", slog.Any("state", state.Snapshot()))
	return nil
}

// host owns the widgets and applies every View published by the Sync.
type host struct {
	sync   *controls.Sync
	canvas *CircleCanvas

	radiusEntry  *focusEntry
	radiusButton *widget.Button
	radiusSlider *widget.Slider
	angleEntry   *focusEntry
	angleButton  *widget.Button
	angleSlider  *widget.Slider
	radio        *widget.RadioGroup
	info         *canvas.Text

	// applying suppresses widget callbacks triggered by apply itself.
	applying bool
	log      *slog.Logger
}

func newHost(state *geometry.State, win config.WindowConfig) *host {
	h := &host{sync: controls.New(state), log: applog.WithComponent("ui")}
	h.canvas = NewCircleCanvas(h.sync)
	h.canvas.SetMinSize(fyne.NewSize(float32(win.MinWidth), float32(win.MinHeight)))

	h.radiusEntry = h.newEntry(controls.FieldRadius)
	h.radiusButton = widget.NewButton("Change radius", func() { h.submit(controls.FieldRadius, h.radiusEntry) })
	h.radiusSlider = h.newSlider(controls.FieldRadius, geometry.LowRadius, geometry.HighRadius)

	h.angleEntry = h.newEntry(controls.FieldAngle)
	h.angleButton = widget.NewButton("Change angle", func() { h.submit(controls.FieldAngle, h.angleEntry) })
	h.angleSlider = h.newSlider(controls.FieldAngle, geometry.AngleSliderMin, geometry.AngleSliderMax)

	h.radio = widget.NewRadioGroup([]string{optShow, optDontShow}, func(sel string) {
		if h.applying || sel == "" {
			return
		}
		h.sync.ShowComponents(sel == optShow)
	})
	h.radio.Horizontal = true
	h.radio.Required = true

	h.info = canvas.NewText(controls.RangeHint, scene.Green.RGBA())
	h.info.TextStyle = fyne.TextStyle{Italic: true}
	h.info.TextSize = 16

	h.sync.OnRender = h.apply
	return h
}

func (h *host) newEntry(f controls.Field) *focusEntry {
	e := newFocusEntry(func(gained bool) {
		if gained {
			h.sync.Focus(f)
		} else {
			h.sync.Blur(f)
		}
	})
	e.OnSubmitted = func(text string) { h.sync.Enter(f, text) }
	return e
}

func (h *host) newSlider(f controls.Field, lo, hi int) *widget.Slider {
	s := widget.NewSlider(float64(lo), float64(hi))
	s.Step = 1
	s.OnChanged = func(v float64) {
		if h.applying {
			return
		}
		h.sync.Slide(f, int(v))
	}
	return s
}

func (h *host) submit(f controls.Field, e *focusEntry) {
	if err := h.sync.Submit(f, e.Text); err != nil {
		h.log.Debug("input rejected", slog.String("field", f.String()), slog.Any("err", err))
	}
}

// content lays the control panels over the bottom edge of the drawing.
func (h *host) content() fyne.CanvasObject {
	options := container.NewVBox(
		container.NewHBox(widget.NewLabel("Radius"), container.NewGridWrap(fyne.NewSize(80, 36), h.radiusEntry), h.radiusButton),
		h.radiusSlider,
		container.NewHBox(widget.NewLabel("Angle"), container.NewGridWrap(fyne.NewSize(80, 36), h.angleEntry), h.angleButton),
		h.angleSlider,
		h.info,
	)
	components := container.NewVBox(widget.NewLabel("Components"), h.radio)
	bottom := container.NewHBox(
		container.NewGridWrap(fyne.NewSize(320, options.MinSize().Height), options),
		layout.NewSpacer(),
		components,
	)
	return container.NewStack(h.canvas, container.NewBorder(nil, bottom, nil, nil))
}

// apply pushes a View into the widgets and repaints.
func (h *host) apply(v controls.View) {
	h.applying = true
	defer func() { h.applying = false }()

	h.radiusEntry.SetText(v.Radius.Text)
	h.radiusSlider.SetValue(float64(v.Radius.Slider))
	h.angleEntry.SetText(v.Angle.Text)
	h.angleSlider.SetValue(float64(v.Angle.Slider))

	sel := optDontShow
	if v.ShowComponents {
		sel = optShow
	}
	if h.radio.Selected != sel {
		h.radio.SetSelected(sel)
	}

	h.info.Text = v.Message.Text
	h.info.Color = v.Message.Color.RGBA()
	h.info.Refresh()

	h.canvas.Show(v.Snapshot)
}

// focusEntry reports focus changes so Enter is only honoured while editing.
type focusEntry struct {
	widget.Entry
	onFocus func(gained bool)
}

func newFocusEntry(onFocus func(bool)) *focusEntry {
	e := &focusEntry{onFocus: onFocus}
	e.ExtendBaseWidget(e)
	return e
}

func (e *focusEntry) FocusGained() {
	e.Entry.FocusGained()
	if e.onFocus != nil {
		e.onFocus(true)
	}
}

func (e *focusEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onFocus != nil {
		e.onFocus(false)
	}
}

// CircleCanvas paints the scene into a raster sized to the widget. Mouse
// wheel input is forwarded to the Sync as angle notches.
type CircleCanvas struct {
	widget.BaseWidget

	sync    *controls.Sync
	surface *raster.Surface
	raster  *canvas.Raster
	snap    geometry.Snapshot
}

func NewCircleCanvas(s *controls.Sync) *CircleCanvas {
	c := &CircleCanvas{sync: s, surface: raster.New(), snap: s.View().Snapshot}
	c.raster = canvas.NewRaster(c.generate)
	c.ExtendBaseWidget(c)
	return c
}

// SetMinSize bounds how small the window can be shrunk.
func (c *CircleCanvas) SetMinSize(sz fyne.Size) {
	c.raster.SetMinSize(sz)
}

func (c *CircleCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

// Show repaints with a new snapshot.
func (c *CircleCanvas) Show(s geometry.Snapshot) {
	c.snap = s
	c.raster.Refresh()
}

// generate receives the raster size in device pixels. The scene is laid out
// in logical pixels so labels and coordinates match the window size.
func (c *CircleCanvas) generate(w, h int) image.Image {
	c.surface.Scale = c.scale()
	prims := scene.Render(c.snap, raster.Viewport(w, h, c.surface.Scale))
	return c.surface.Render(prims, w, h)
}

func (c *CircleCanvas) scale() float64 {
	if a := fyne.CurrentApp(); a != nil {
		if cv := a.Driver().CanvasForObject(c); cv != nil && cv.Scale() > 0 {
			return float64(cv.Scale())
		}
	}
	return 1
}

func (c *CircleCanvas) Scrolled(e *fyne.ScrollEvent) {
	n := controls.RotationFromScroll(e.Scrolled.DY)
	if n == 0 {
		return
	}
	c.sync.Wheel(n)
}

