//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// These tests validate the Fyne-based host. They are gated behind the
// "fyne" build tag so CI (which is headless) does not need Fyne or a display.
// To run locally:
//
//	go test -tags fyne ./internal/ui
package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"circleviewer/internal/config"
	"circleviewer/internal/controls"
	"circleviewer/internal/geometry"
	"circleviewer/internal/scene"
)

func newTestHost(t *testing.T) *host {
	t.Helper()
	test.NewTempApp(t)
	h := newHost(geometry.NewState(), config.Defaults().Window)
	_ = h.content()
	h.sync.Redraw()
	return h
}

func TestHost_InitialWidgets(t *testing.T) {
	h := newTestHost(t)
	if h.radiusEntry.Text != "100" || h.angleEntry.Text != "45" {
		t.Fatalf("unexpected entries: %q %q", h.radiusEntry.Text, h.angleEntry.Text)
	}
	if h.radiusSlider.Value != 100 || h.angleSlider.Value != 45 {
		t.Fatalf("unexpected sliders: %v %v", h.radiusSlider.Value, h.angleSlider.Value)
	}
	if h.radio.Selected != optDontShow {
		t.Fatalf("expected %q selected, got %q", optDontShow, h.radio.Selected)
	}
	if h.info.Text != controls.RangeHint || h.info.Color != scene.Green.RGBA() {
		t.Fatalf("unexpected info label: %q %v", h.info.Text, h.info.Color)
	}
}

func TestHost_ChangeRadiusButton(t *testing.T) {
	h := newTestHost(t)
	h.radiusEntry.SetText("250")
	test.Tap(h.radiusButton)
	if got := h.sync.View().Snapshot.Radius; got != 250 {
		t.Fatalf("radius = %d, want 250", got)
	}
	if h.radiusSlider.Value != 250 {
		t.Fatalf("slider not mirrored: %v", h.radiusSlider.Value)
	}

	h.radiusEntry.SetText("999")
	test.Tap(h.radiusButton)
	if h.radiusEntry.Text != "250" || h.info.Text != controls.MsgOutOfRange {
		t.Fatalf("rejected input should redisplay 250 and warn: %q %q", h.radiusEntry.Text, h.info.Text)
	}
}

func TestHost_SliderMirrorsEntry(t *testing.T) {
	h := newTestHost(t)
	h.angleSlider.OnChanged(90)
	if h.angleEntry.Text != "90" || h.sync.View().Snapshot.Angle != 90 {
		t.Fatalf("angle slide not applied: %q", h.angleEntry.Text)
	}
}

func TestHost_RadioTogglesComponents(t *testing.T) {
	h := newTestHost(t)
	h.radio.OnChanged(optShow)
	if !h.sync.View().ShowComponents {
		t.Fatalf("components should be shown")
	}
	h.radio.OnChanged(optDontShow)
	if h.sync.View().ShowComponents {
		t.Fatalf("components should be hidden")
	}
}

func TestCircleCanvas_ScrollRotates(t *testing.T) {
	h := newTestHost(t)
	h.canvas.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -10)})
	if got := h.sync.View().Snapshot.Angle; got != 44 {
		t.Fatalf("angle after one notch down = %d, want 44", got)
	}
	h.canvas.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, 0)})
	if got := h.sync.View().Snapshot.Angle; got != 44 {
		t.Fatalf("zero scroll must not change angle, got %d", got)
	}
}

func TestCircleCanvas_GenerateSizesImage(t *testing.T) {
	h := newTestHost(t)
	img := h.canvas.generate(320, 240)
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if ms := h.canvas.MinSize(); ms.Width < 750 || ms.Height < 480 {
		t.Fatalf("min size not applied: %v", ms)
	}
}
