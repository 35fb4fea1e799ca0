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
	"fmt"
)

// ErrorKind classifies a rejected input.
type ErrorKind uint8

const (
	// KindNone is returned by KindOf for nil or foreign errors.
	KindNone ErrorKind = iota
	// NotAnInteger: the text could not be parsed as a 32-bit decimal integer.
	NotAnInteger
	// OutOfRange: the value parsed but lies outside [LowRadius, HighRadius].
	// Only radius input can fail this way.
	OutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case NotAnInteger:
		return "not an integer"
	case OutOfRange:
		return "out of range"
	default:
		return "none"
	}
}

var (
	ErrNotAnInteger = errors.New("not an integer")
	ErrOutOfRange   = errors.New("out of range")
)

// ValidationError reports why a candidate radius or angle was rejected.
// State is never mutated when one is returned.
type ValidationError struct {
	Kind  ErrorKind
	Field string // "radius" or "angle"
	Input string
}

func (e *ValidationError) Error() string {
	if e.Kind == OutOfRange {
		return fmt.Sprintf("%s %q: %s [%d,%d]", e.Field, e.Input, e.Kind, LowRadius, HighRadius)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Input, e.Kind)
}

func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case NotAnInteger:
		return ErrNotAnInteger
	case OutOfRange:
		return ErrOutOfRange
	}
	return nil
}

// KindOf extracts the ErrorKind carried by err, or KindNone.
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return KindNone
}
