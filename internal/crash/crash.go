/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns a panic on the UI path into a logged error, a report
// file with the geometry at the time of the crash, and a non-zero exit.
package crash

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	"circleviewer/internal/geometry"
	applog "circleviewer/internal/log"
	"circleviewer/internal/version"
)

// exitFn is used to allow testing of Recover without terminating the test process.
var exitFn = os.Exit

// reportDir is where crash reports land.
var reportDir = os.TempDir

// Recover captures a panic, logs it with its stacktrace and writes a report
// file. snap may be nil; otherwise it supplies the current geometry.
//
// Usage: defer crash.Recover(state.Snapshot)
func Recover(snap func() geometry.Snapshot) {
	r := recover()
	if r == nil {
		return
	}
	l := applog.WithComponent("crash")
	stack := debug.Stack()
	l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

	var s *geometry.Snapshot
	if snap != nil {
		s = safeSnapshot(snap)
	}
	reportPath, err := writeReport(s, r, stack)
	if err != nil {
		l.Error("write crash report failed", slog.Any("err", err))
	}

	if _, err := fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath); err != nil {
		l.Error("failed to write crash message to stderr", slog.Any("err", err))
	}
	if _, err := fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH); err != nil {
		l.Error("failed to write version info to stderr", slog.Any("err", err))
	}
	exitFn(2)
}

// safeSnapshot guards against the snapshot func panicking as well.
func safeSnapshot(snap func() geometry.Snapshot) (s *geometry.Snapshot) {
	defer func() {
		if recover() != nil {
			s = nil
		}
	}()
	v := snap()
	return &v
}

func writeReport(snap *geometry.Snapshot, panicVal any, stack []byte) (string, error) {
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(reportDir(), fmt.Sprintf("circleviewer-crash-%s.log", stamp))

	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "Circle Viewer Crash Report\n")
	_, _ = fmt.Fprintf(&buf, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(&buf, "Version: %s\n", version.String())
	_, _ = fmt.Fprintf(&buf, "Session: %s\n", applog.SessionID())
	_, _ = fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if snap != nil {
		_, _ = fmt.Fprintf(&buf, "Radius: %d\n", snap.Radius)
		_, _ = fmt.Fprintf(&buf, "Angle: %d\n", snap.Angle)
		_, _ = fmt.Fprintf(&buf, "Components: %t\n", snap.ShowComponents)
	}
	_, _ = fmt.Fprintf(&buf, "\nPanic: %v\n\n", panicVal)
	_, _ = fmt.Fprintf(&buf, "Stack:\n%s\n", string(stack))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return path, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			applog.WithComponent("crash").Error("failed to close crash report file", slog.Any("err", err), slog.String("path", path))
		}
	}()
	if _, err := f.Write(buf.Bytes()); err != nil {
		return path, err
	}
	_ = f.Sync()
	return path, nil
}
