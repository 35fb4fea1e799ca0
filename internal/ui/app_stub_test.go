//go:build !fyne

package ui

import (
	"errors"
	"strings"
	"testing"

	"circleviewer/internal/config"
)

func TestRunStub_ReturnsHelpfulError(t *testing.T) {
	err := Run(config.Defaults())
	if err == nil {
		t.Fatal("expected error from Run() in non-fyne build, got nil")
	}
	if !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("expected ErrNotBuilt, got %v", err)
	}
	if !strings.Contains(err.Error(), "-tags fyne") {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}
