/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geometry

import (
	"errors"
	"math"
	"math/bits"
	"testing"
)

func TestNormalizeAngle_RangeAndIdempotence(t *testing.T) {
	for a := -10000; a <= 10000; a++ {
		n := NormalizeAngle(a)
		if n < 0 || n >= 360 {
			t.Fatalf("NormalizeAngle(%d) = %d, outside [0,360)", a, n)
		}
		if NormalizeAngle(n) != n {
			t.Fatalf("NormalizeAngle not idempotent at %d", a)
		}
		if (a-n)%360 != 0 {
			t.Fatalf("NormalizeAngle(%d) = %d is not congruent mod 360", a, n)
		}
	}
}

func TestNormalizeAngle_Fixed(t *testing.T) {
	cases := map[int]int{0: 0, 360: 0, -1: 359, 720: 0, -360: 0, 45: 45, 359: 359, 361: 1, -725: 355}
	for in, want := range cases {
		if got := NormalizeAngle(in); got != want {
			t.Errorf("NormalizeAngle(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestDefaults(t *testing.T) {
	s := NewState()
	if s.Radius() != 100 || s.Angle() != 45 || s.ShowComponents() {
		t.Fatalf("unexpected defaults: %+v", s.Snapshot())
	}
}

func TestSetRadiusText(t *testing.T) {
	tests := []struct {
		in   string
		want int
		kind ErrorKind
	}{
		{"99", 100, OutOfRange},
		{"351", 100, OutOfRange},
		{"350", 350, KindNone},
		{"100", 100, KindNone},
		{" 200 ", 200, KindNone},
		{"+150", 150, KindNone},
		{"abc", 100, NotAnInteger},
		{"", 100, NotAnInteger},
		{"12.5", 100, NotAnInteger},
		{"99999999999", 100, NotAnInteger},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s := NewState()
			got, err := s.SetRadiusText(tt.in)
			if k := KindOf(err); k != tt.kind {
				t.Fatalf("kind = %v, want %v (err=%v)", k, tt.kind, err)
			}
			if got != tt.want || s.Radius() != tt.want {
				t.Fatalf("radius = %d/%d, want %d", got, s.Radius(), tt.want)
			}
		})
	}
}

func TestSetRadius_FailureKeepsState(t *testing.T) {
	s := NewState()
	if _, err := s.SetRadius(250); err != nil {
		t.Fatalf("SetRadius(250): %v", err)
	}
	if _, err := s.SetRadiusText("abc"); !errors.Is(err, ErrNotAnInteger) {
		t.Fatalf("expected ErrNotAnInteger, got %v", err)
	}
	if _, err := s.SetRadius(351); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if s.Radius() != 250 {
		t.Fatalf("radius changed after failures: %d", s.Radius())
	}
}

func TestSetAngleText(t *testing.T) {
	s := NewState()
	if got, err := s.SetAngleText("-90"); err != nil || got != 270 {
		t.Fatalf("SetAngleText(-90) = %d, %v", got, err)
	}
	if got, err := s.SetAngleText("1000"); err != nil || got != 280 {
		t.Fatalf("SetAngleText(1000) = %d, %v", got, err)
	}
	if _, err := s.SetAngleText("ten"); KindOf(err) != NotAnInteger {
		t.Fatalf("expected NotAnInteger, got %v", err)
	}
	if s.Angle() != 280 {
		t.Fatalf("angle changed after failure: %d", s.Angle())
	}
}

func TestAdjustAngleByDelta(t *testing.T) {
	s := NewState()
	if got := s.AdjustAngleByDelta(10); got != 35 {
		t.Fatalf("45 - 10 = %d, want 35", got)
	}
	if _, err := s.SetAngle(5); err != nil {
		t.Fatal(err)
	}
	if got := s.AdjustAngleByDelta(10); got != 355 {
		t.Fatalf("5 - 10 = %d, want 355", got)
	}
	if got := s.AdjustAngleByDelta(-10); got != 5 {
		t.Fatalf("355 + 10 = %d, want 5", got)
	}
	if bits.UintSize != 64 {
		return
	}
	// 2^63 = 8 (mod 360)
	if got := s.AdjustAngleByDelta(math.MinInt); got != 13 {
		t.Fatalf("5 - MinInt = %d, want 13", got)
	}
	if got := s.AdjustAngleByDelta(math.MaxInt); got != 6 {
		t.Fatalf("13 - MaxInt = %d, want 6", got)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	s := NewState()
	_, err := s.SetRadiusText("400")
	if err == nil || err.Error() != `radius "400": out of range [100,350]` {
		t.Fatalf("unexpected message: %v", err)
	}
}
