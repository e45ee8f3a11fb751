// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"go.astrophena.name/cmnutil/ansi"
	"go.astrophena.name/cmnutil/cli"
	"go.astrophena.name/cmnutil/logger"
	"go.astrophena.name/cmnutil/toolchain"
)

func main() { cli.Main(new(app)) }

type app struct {
	colors bool

	check func(context.Context) []toolchain.Result // toolchain.Check if nil
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.colors, "colors", false, "Print the ANSI color constants and exit.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}

	p := printer{w: env.Stdout, color: env.Colors()}
	if a.colors {
		p.palette()
		return nil
	}

	check := a.check
	if check == nil {
		check = toolchain.Check
	}
	var errs []error
	for _, res := range check(ctx) {
		logger.Debug(ctx, "checked requirement",
			slog.String("name", res.Name),
			slog.String("min", res.Min),
			slog.String("detected", res.Detected),
		)
		p.result(res)
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}

type printer struct {
	w     io.Writer
	color bool
}

func (p printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return ansi.Wrap(code, s)
}

func (p printer) result(res toolchain.Result) {
	status, code, detected := "PASS", ansi.Green, res.Detected
	switch {
	case res.Skipped():
		status, code, detected = "SKIP", ansi.Yellow, "not detected"
	case res.Err != nil:
		status, code = "FAIL", ansi.Red
	}
	fmt.Fprintf(p.w, "[ %s ] %s >= %s (%s)\n", p.paint(code, status), res.Name, res.Min, detected)
}

func (p printer) palette() {
	for name, code := range ansi.Palette() {
		fmt.Fprintf(p.w, "%s %s\n", p.paint(code, fmt.Sprintf("%-7s", name)), strconv.Quote(code))
	}
}
