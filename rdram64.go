// This file is part of Rdram64.
//
// Rdram64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rdram64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rdram64.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/rdram64/environment"
	"github.com/jetsetilly/rdram64/hardware/memory"
	"github.com/jetsetilly/rdram64/hardware/memory/bus"
	"github.com/jetsetilly/rdram64/hardware/preferences"
	"github.com/jetsetilly/rdram64/logger"
	"github.com/jetsetilly/rdram64/modalflag"
	"github.com/jetsetilly/rdram64/paths"
	"github.com/jetsetilly/rdram64/savestate"
	"github.com/jetsetilly/rdram64/statsview"
	"github.com/jetsetilly/rdram64/tracer"
	"github.com/jetsetilly/rdram64/tracer/stream"
	"github.com/jetsetilly/rdram64/version"
)

// the pattern written by the memory test in RUN mode
const memtestPattern = 0xa5a5a5a5

// number of trace events kept for the histogram. enough for every access made
// by the memory test
const histogramEvents = 16384

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	os.Exit(launch(ctx, os.Args[1:], os.Stdout))
}

// launch runs the mode selected by the arguments. returns the value for
// os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "SAVE", "LOAD", "MEMVIZ", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* %s\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)
	case "SAVE":
		err = save(md)
	case "LOAD":
		err = load(md)
	case "MEMVIZ":
		err = viz(md)
	case "VERSION":
		fmt.Fprintln(md.Output, version.Banner())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags common to every mode that creates a memory subsystem
type common struct {
	expansion   *bool
	diagnostics *bool
	prefs       *string
	echo        *bool
}

func addCommon(md *modalflag.Modes) common {
	return common{
		expansion:   md.AddBool("expansion", true, "fit the expansion module"),
		diagnostics: md.AddBool("diagnostics", false, "trace memory accesses tagged with a peripheral"),
		prefs:       md.AddString("prefs", "", "override preferences. format key::value;key::value"),
		echo:        md.AddBool("echo", false, "echo log to stdout"),
	}
}

// newMemory creates and powers a memory subsystem configured by the common
// flags. only flags that were set on the command line override the
// preferences file.
func (c common) newMemory(md *modalflag.Modes, tr bus.Tracer) (*memory.Memory, error) {
	if *c.echo {
		logger.SetEcho(md.Output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	prefs, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, prefs)
	if err != nil {
		return nil, err
	}

	md.Visit(func(flag string) {
		switch flag {
		case "expansion":
			env.Prefs.ExpansionModule.Set(*c.expansion)
		case "diagnostics":
			env.Prefs.ExtendedDiagnostics.Set(*c.diagnostics)
		}
	})

	if *c.prefs != "" {
		if err := env.Prefs.Override(*c.prefs); err != nil {
			return nil, err
		}
	}

	mem := memory.NewMemory(env, tr)
	mem.Power(false)

	return mem, nil
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	stats := md.AddBool("statsview", false, "launch the statsview server")
	hist := md.AddBool("histogram", false, "plot memory accesses by device ID")
	addr := md.AddString("stream", "", "stream trace events to websocket clients at address")
	wait := md.AddBool("wait", false, "keep running until interrupted")

	if statsview.Available() {
		md.AdditionalHelp(fmt.Sprintf("statsview is served at %s", statsview.Address))
	}

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		if !statsview.Available() {
			return errors.New("statsview is not available in this build")
		}
		statsview.Launch(md.Output)
	}

	rec := tracer.NewRecorder(histogramEvents)
	tr := tracer.Multi{rec}

	var srv *stream.Server
	if *addr != "" {
		srv = stream.NewServer(logger.Allow)
		tr = append(tr, srv)

		httpSrv := &http.Server{Addr: *addr, Handler: srv}
		go func() {
			err := httpSrv.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Log(logger.Allow, "stream", err)
			}
		}()
		defer httpSrv.Close()

		go srv.Run(ctx)
		fmt.Fprintf(md.Output, "trace stream available at ws://%s\n", *addr)
	}

	mem, err := c.newMemory(md, tr)
	if err != nil {
		return err
	}

	n := mem.Boot()
	fmt.Fprintf(md.Output, "%d modules found\n", n)

	tested, failed := mem.Test(memtestPattern)
	fmt.Fprintf(md.Output, "%d device IDs tested: %d failures\n", tested, len(failed))
	for _, a := range failed {
		fmt.Fprintf(md.Output, "  %08x\n", a)
	}

	fmt.Fprint(md.Output, mem.RDRAM.MappedIDs())
	fmt.Fprintln(md.Output, mem.RI.String())

	if *hist {
		ids := rec.DeviceIDs()
		if len(ids) == 0 {
			fmt.Fprintln(md.Output, "no memory accesses recorded. the histogram requires -diagnostics")
		} else {
			err = histogram.Fprint(md.Output, histogram.Hist(16, ids), histogram.Linear(40))
			if err != nil {
				return err
			}
		}
	}

	if *wait {
		<-ctx.Done()
	}

	return nil
}

func save(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	boot := md.AddBool("boot", true, "run the boot sequence before saving")
	label := md.AddString("label", "", "label to use in the generated filename")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
		filename = paths.UniqueFilename("state", *label, "rdram")
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mem, err := c.newMemory(md, nil)
	if err != nil {
		return err
	}

	if *boot {
		mem.Boot()
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	err = savestate.Save(f, mem)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "state saved to %s\n", filename)

	return f.Close()
}

func load(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	dump := md.AddBool("dump", false, "print the state of every module")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("state file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mem, err := c.newMemory(md, nil)
	if err != nil {
		return err
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	err = savestate.Load(f, mem)
	if err != nil {
		return err
	}

	if *dump {
		fmt.Fprintln(md.Output, mem.String())
	} else {
		fmt.Fprint(md.Output, mem.RDRAM.MappedIDs())
	}

	return nil
}

func viz(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	md.AdditionalHelp("writes a graphviz description of the module registers after boot")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	mem, err := c.newMemory(md, nil)
	if err != nil {
		return err
	}
	mem.Boot()

	out := md.Output
	if len(md.RemainingArgs()) > 0 {
		f, err := os.Create(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	regs := mem.RDRAM.RegisterSnapshot()
	memviz.Map(out, &regs)

	if md.GetArg(0) != "" {
		fmt.Fprintf(md.Output, "register graph written to %s\n", md.GetArg(0))
	}

	return nil
}
