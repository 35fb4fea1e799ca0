/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"circleviewer/internal/config"
	"circleviewer/internal/crash"
	"circleviewer/internal/geometry"
	applog "circleviewer/internal/log"
	"circleviewer/internal/scene"
	"circleviewer/internal/ui"
	"circleviewer/internal/version"
)

const banner = "Circle Viewer"

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, banner)
	_, _ = fmt.Fprintf(w, "Version: %s\n", version.String())
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  circleviewer version|-v|--version          Show version")
	_, _ = fmt.Fprintln(w, "  circleviewer ui                            Launch desktop UI (build with -tags fyne)")
	_, _ = fmt.Fprintln(w, "  circleviewer dump [-w -h -r -a -components] Print the drawing as a primitive list")
	_, _ = fmt.Fprintln(w, "  circleviewer config                        Print the effective configuration")
}

func main() {
	defer crash.Recover(nil)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 ok, 1 failure, 2 usage error.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, cfgErr := config.Load()
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Warn("config problems, continuing with defaults", slog.Any("err", cfgErr))
	}
	l.Debug("start", slog.Int("args", len(args)))

	if len(args) == 0 {
		usage(stdout)
		return 0
	}
	switch args[0] {
	case "version", "--version", "-v":
		_, _ = fmt.Fprintln(stdout, banner)
		_, _ = fmt.Fprintln(stdout, version.String())
		return 0
	case "ui":
		if err := ui.Run(cfg); err != nil {
			l.Error("ui failed", slog.Any("err", err))
			_, _ = fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
		return 0
	case "dump":
		return dump(args[1:], stdout, stderr)
	case "config":
		data, err := config.Marshal(cfg)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
		_, _ = stdout.Write(data)
		return 0
	}
	usage(stderr)
	return 2
}

// dump renders one frame headlessly and prints its primitives in paint order.
// Radius and angle pass through the same validation as the text fields.
func dump(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	w := fs.Int("w", 1200, "viewport width")
	h := fs.Int("h", 800, "viewport height")
	r := fs.String("r", "", "radius (integer in [100,350])")
	a := fs.String("a", "", "angle in degrees, normalized to [0,360)")
	comps := fs.Bool("components", false, "include the decomposition overlay")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	st := geometry.NewState()
	if *r != "" {
		if _, err := st.SetRadiusText(*r); err != nil {
			_, _ = fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
	}
	if *a != "" {
		if _, err := st.SetAngleText(*a); err != nil {
			_, _ = fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
	}
	st.SetShowComponents(*comps)

	prims := scene.Render(st.Snapshot(), geometry.Viewport{Width: *w, Height: *h})
	applog.WithComponent("cli").Debug("dump", slog.Any("state", st.Snapshot()), slog.Int("primitives", len(prims)))
	for _, p := range prims {
		_, _ = fmt.Fprintln(stdout, p.String())
	}
	return 0
}
