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
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/rdram64/test"
)

func TestVersionMode(t *testing.T) {
	var out bytes.Buffer
	test.ExpectEquality(t, launch(context.Background(), []string{"version"}, &out), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "rdram64 "))
}

func TestRunMode(t *testing.T) {
	var out bytes.Buffer
	ret := launch(context.Background(), []string{"RUN", "-expansion=false", "-diagnostics", "-histogram"}, &out)
	test.DemandEquality(t, ret, 0, out.String())

	s := out.String()
	test.ExpectSuccess(t, strings.Contains(s, "2 modules found\n"))
	test.ExpectSuccess(t, strings.Contains(s, "4 device IDs tested: 0 failures\n"))
	test.ExpectSuccess(t, strings.Contains(s, "  3: module 1\n"))
}

func TestRunModeErrors(t *testing.T) {
	var out bytes.Buffer
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN", "extra"}, &out), 20)

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN", "-prefs", "hardware.nothing::true"}, &out), 20)

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"-nothing"}, &out), 10)
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "state.rdram")

	var out bytes.Buffer
	ret := launch(context.Background(), []string{"SAVE", fn}, &out)
	test.DemandEquality(t, ret, 0, out.String())

	out.Reset()
	ret = launch(context.Background(), []string{"LOAD", fn}, &out)
	test.DemandEquality(t, ret, 0, out.String())
	test.ExpectSuccess(t, strings.Contains(out.String(), "  7: module 3\n"))

	// a missing state file is an error
	out.Reset()
	ret = launch(context.Background(), []string{"LOAD", fn + ".missing"}, &out)
	test.ExpectEquality(t, ret, 20)

	out.Reset()
	ret = launch(context.Background(), []string{"LOAD"}, &out)
	test.ExpectEquality(t, ret, 20)
}

func TestMemvizMode(t *testing.T) {
	var out bytes.Buffer
	ret := launch(context.Background(), []string{"MEMVIZ", "-expansion=false"}, &out)
	test.DemandEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "digraph"))
}

func TestRunModeEcho(t *testing.T) {
	// the boot sequence logs a lot of detail when echo is on. only the tail
	// of the output is interesting
	out, err := test.NewRingWriter(4096)
	test.DemandSuccess(t, err)

	ret := launch(context.Background(), []string{"RUN", "-echo"}, out)
	test.DemandEquality(t, ret, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "8 device IDs tested: 0 failures\n"))
}
