/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textlayout

// Logical fonts for scene text. Scene code names fonts by family and size
// only; the raster surface asks a GoFontProvider for the matching face.

// FontSpec describes a requested font.
type FontSpec struct {
	Family string // logical family name ("Dialog", "Arial", ...)
	SizePt float32
}

// DefaultSizePt is used for specs without a size.
const DefaultSizePt = 12

// PixelSize is the face size in device pixels at the given scale (72 DPI,
// so one point is one logical pixel).
func (f FontSpec) PixelSize(scale float64) float64 {
	size := float64(f.SizePt)
	if size <= 0 {
		size = DefaultSizePt
	}
	if scale <= 0 {
		scale = 1
	}
	return size * scale
}
