/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textlayout

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// GoFontProvider resolves every family to the embedded Go Regular font.
// Logical families such as "Dialog" are platform aliases; the Go font keeps
// rendering identical across machines. Faces are cached per pixel size.
type GoFontProvider struct {
	mu     sync.Mutex
	source *text.FontSource
	err    error
	faces  map[float64]text.Face
}

func NewGoFontProvider() *GoFontProvider { return &GoFontProvider{} }

// Face returns the face for spec at scale. The error is only non-nil when
// the embedded font cannot be parsed.
func (p *GoFontProvider) Face(spec FontSpec, scale float64) (text.Face, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.source == nil && p.err == nil {
		p.source, p.err = text.NewFontSource(goregular.TTF)
		if p.err != nil {
			p.err = fmt.Errorf("load go regular: %w", p.err)
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	size := spec.PixelSize(scale)
	if f, ok := p.faces[size]; ok {
		return f, nil
	}
	f := p.source.Face(size)
	if p.faces == nil {
		p.faces = make(map[float64]text.Face)
	}
	p.faces[size] = f
	return f, nil
}
