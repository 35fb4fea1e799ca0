/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package geometry holds the circle/radius-vector state, its validation and
// normalization rules, and the per-render derived frame.
package geometry

import (
	"strconv"
	"strings"
)

// Fixed limits and defaults. They are not user configurable.
const (
	LowRadius     = 100
	HighRadius    = 350
	DefaultRadius = 100
	DefaultAngle  = 45

	AngleSliderMin = 0
	AngleSliderMax = 360
)

// State is the single mutable model of the application.
// It is not safe for concurrent use; the host event loop serializes access.
type State struct {
	radius         int
	angle          int
	showComponents bool
}

// Snapshot is an immutable copy of State handed to the renderer.
type Snapshot struct {
	Radius         int
	Angle          int
	ShowComponents bool
}

// NewState returns the state with its startup defaults.
func NewState() *State {
	return &State{radius: DefaultRadius, angle: DefaultAngle}
}

func (s *State) Radius() int          { return s.radius }
func (s *State) Angle() int           { return s.angle }
func (s *State) ShowComponents() bool { return s.showComponents }

func (s *State) Snapshot() Snapshot {
	return Snapshot{Radius: s.radius, Angle: s.angle, ShowComponents: s.showComponents}
}

// NormalizeAngle maps any integer degree value into [0,360) using a
// Euclidean modulo.
func NormalizeAngle(alpha int) int {
	m := alpha % 360
	if m < 0 {
		m += 360
	}
	return m
}

// SetRadius validates v against [LowRadius, HighRadius] and commits it.
func (s *State) SetRadius(v int) (int, error) {
	if v < LowRadius || v > HighRadius {
		return s.radius, &ValidationError{Kind: OutOfRange, Field: "radius", Input: strconv.Itoa(v)}
	}
	s.radius = v
	return v, nil
}

// SetRadiusText parses text as an integer and commits it via SetRadius.
func (s *State) SetRadiusText(text string) (int, error) {
	v, err := parseInt("radius", text)
	if err != nil {
		return s.radius, err
	}
	r, err := s.SetRadius(v)
	if err != nil {
		// report the raw input rather than the re-formatted integer
		err.(*ValidationError).Input = text
	}
	return r, err
}

// SetAngle commits NormalizeAngle(v). It never fails; the error return
// mirrors SetRadius so callers treat both the same way.
func (s *State) SetAngle(v int) (int, error) {
	s.angle = NormalizeAngle(v)
	return s.angle, nil
}

// SetAngleText parses text and commits the normalized angle. Only
// NotAnInteger can be returned.
func (s *State) SetAngleText(text string) (int, error) {
	v, err := parseInt("angle", text)
	if err != nil {
		return s.angle, err
	}
	return s.SetAngle(v)
}

// AdjustAngleByDelta subtracts delta from the angle, wrapping into [0,360).
// Wheel rotation is inverted relative to the sweep direction. Whole turns
// are dropped first so extreme deltas cannot overflow.
func (s *State) AdjustAngleByDelta(delta int) int {
	s.angle = NormalizeAngle(s.angle - delta%360)
	return s.angle
}

func (s *State) SetShowComponents(on bool) { s.showComponents = on }

// parseInt accepts what a 32-bit signed decimal parser accepts after
// trimming surrounding whitespace.
func parseInt(field, text string) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0, &ValidationError{Kind: NotAnInteger, Field: field, Input: text}
	}
	return int(v), nil
}
