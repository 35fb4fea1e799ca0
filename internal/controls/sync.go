/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package controls reconciles the text field, slider, wheel and toggle
// representations of the geometry state. Sync is the only writer of
// geometry.State; hosts feed it input events and apply the View it publishes.
package controls

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"circleviewer/internal/geometry"
	applog "circleviewer/internal/log"
	"circleviewer/internal/scene"
)

// Field identifies one control pair.
type Field uint8

const (
	FieldNone Field = iota
	FieldRadius
	FieldAngle
)

func (f Field) String() string {
	switch f {
	case FieldRadius:
		return "radius"
	case FieldAngle:
		return "angle"
	}
	return "none"
}

// Mode is the interaction state of a control pair.
type Mode uint8

const (
	Idle Mode = iota
	EditingText
)

// Info messages. The idle message keeps its text but is fully transparent
// so the label never collapses.
const (
	MsgNotAnInteger = "Enter an integer number"
	MsgOutOfRange   = "Enter an integer from the range"
)

var RangeHint = fmt.Sprintf("Radius range: [%d,%d]", geometry.LowRadius, geometry.HighRadius)

// Message is the info label content.
type Message struct {
	Text  string
	Color scene.Color
}

// Visible reports whether the message is drawn with a non-transparent color.
func (m Message) Visible() bool { return m.Color.A != 0 }

var (
	startupMessage = Message{Text: RangeHint, Color: scene.Green}
	idleMessage    = Message{Text: RangeHint, Color: scene.Transparent}
)

// FieldView is what one control pair displays.
type FieldView struct {
	Text   string
	Slider int
}

// View is the complete widget-facing state after an interaction.
type View struct {
	Radius         FieldView
	Angle          FieldView
	ShowComponents bool
	Message        Message
	Focused        Field
	Snapshot       geometry.Snapshot
}

// Sync owns the geometry state and the displayed widget values.
// Not safe for concurrent use.
type Sync struct {
	state   *geometry.State
	radius  FieldView
	angle   FieldView
	focused Field
	msg     Message
	log     *slog.Logger

	// OnRender receives the new View after every interaction, including
	// rejected ones.
	OnRender func(View)
}

// New wraps state. The widgets start out mirroring the state defaults.
func New(state *geometry.State) *Sync {
	s := &Sync{
		state: state,
		msg:   startupMessage,
		log:   applog.WithComponent("controls"),
	}
	s.radius = mirror(state.Radius())
	s.angle = mirror(state.Angle())
	return s
}

func mirror(v int) FieldView { return FieldView{Text: strconv.Itoa(v), Slider: v} }

// View returns the current widget-facing state.
func (s *Sync) View() View {
	return View{
		Radius:         s.radius,
		Angle:          s.angle,
		ShowComponents: s.state.ShowComponents(),
		Message:        s.msg,
		Focused:        s.focused,
		Snapshot:       s.state.Snapshot(),
	}
}

// Mode reports whether f currently holds text focus.
func (s *Sync) Mode(f Field) Mode {
	if f != FieldNone && s.focused == f {
		return EditingText
	}
	return Idle
}

// Focus moves f into EditingText.
func (s *Sync) Focus(f Field) { s.focused = f }

// Blur returns f to Idle if it held focus.
func (s *Sync) Blur(f Field) {
	if s.focused == f {
		s.focused = FieldNone
	}
}

// Submit applies the text of f, as the "Change radius/angle" buttons do.
// On failure the last valid value is redisplayed and the error returned.
func (s *Sync) Submit(f Field, text string) error {
	var err error
	switch f {
	case FieldRadius:
		var v int
		v, err = s.state.SetRadiusText(text)
		s.radius = mirror(v)
	case FieldAngle:
		var v int
		v, err = s.state.SetAngleText(text)
		s.angle = mirror(v)
	default:
		s.publish()
		return fmt.Errorf("submit: unknown field %d", f)
	}
	l := applog.WithOperation(s.log, "submit")
	if err != nil {
		s.msg = messageFor(err)
		l.Debug("rejected", slog.String("field", f.String()), slog.String("input", text), slog.Any("err", err))
	} else {
		s.msg = idleMessage
		l.Debug("committed", slog.String("field", f.String()), slog.Any("state", s.state.Snapshot()))
	}
	s.publish()
	return err
}

// Enter submits f only while it is in EditingText. It reports whether the
// key press was consumed.
func (s *Sync) Enter(f Field, text string) bool {
	if s.Mode(f) != EditingText {
		s.log.Debug("enter ignored", slog.String("field", f.String()), slog.String("focused", s.focused.String()))
		return false
	}
	_ = s.Submit(f, text)
	return true
}

// Slide commits a slider value. The angle slider keeps the reported
// position (360 commits 0); a rejected radius snaps both widgets back to the
// committed radius.
func (s *Sync) Slide(f Field, v int) {
	switch f {
	case FieldRadius:
		committed, err := s.state.SetRadius(v)
		if err != nil {
			// sliders are range-constrained; a miss means a misconfigured widget
			s.log.Warn("slider value rejected", slog.Int("value", v), slog.Any("err", err))
		}
		s.radius = mirror(committed)
	case FieldAngle:
		committed, _ := s.state.SetAngle(v)
		s.angle = FieldView{Text: strconv.Itoa(committed), Slider: v}
	default:
		return
	}
	s.msg = idleMessage
	s.publish()
}

// Wheel applies a mouse wheel rotation in notches. Positive rotation
// (scrolling down) decreases the angle.
func (s *Sync) Wheel(rotation int) {
	a := s.state.AdjustAngleByDelta(rotation)
	s.angle = mirror(a)
	s.msg = idleMessage
	s.publish()
}

// ShowComponents toggles the decomposition overlay.
func (s *Sync) ShowComponents(on bool) {
	s.state.SetShowComponents(on)
	s.publish()
}

// Redraw republishes the current view without touching state.
func (s *Sync) Redraw() { s.publish() }

func (s *Sync) publish() {
	if s.OnRender != nil {
		s.OnRender(s.View())
	}
}

func messageFor(err error) Message {
	switch geometry.KindOf(err) {
	case geometry.OutOfRange:
		return Message{Text: MsgOutOfRange, Color: scene.Red}
	default:
		return Message{Text: MsgNotAnInteger, Color: scene.Red}
	}
}

// WheelNotch is the scroll distance a host reports for one wheel notch.
const WheelNotch = 10

// RotationFromScroll converts a host scroll delta (positive = content
// scrolled up) into wheel notches where scrolling down is positive.
// Any non-zero finite delta yields at least one notch; NaN and infinities
// yield none. Whole turns are dropped, so |result| < 360.
func RotationFromScroll(dy float32) int {
	d := float64(dy)
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	n := math.Round(-d / WheelNotch)
	if n == 0 {
		if d < 0 {
			return 1
		}
		return -1
	}
	return int(math.Mod(n, 360))
}
