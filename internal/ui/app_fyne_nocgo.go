//go:build fyne && !cgo

package ui

import (
	"errors"

	"circleviewer/internal/config"
)

// ErrNotBuilt is returned by Run when the fyne tag is set but cgo is disabled.
var ErrNotBuilt = errors.New("Fyne UI requires cgo (OpenGL)")

// Run informs the user that the Fyne UI requires cgo (OpenGL) and a C toolchain.
func Run(_ config.AppConfig) error {
	return errors.Join(ErrNotBuilt, errors.New("enable cgo and install a C toolchain, then run: CGO_ENABLED=1 go run -tags fyne ./cmd/circleviewer ui"))
}
