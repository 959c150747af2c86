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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/rdram64/curated"
	"github.com/jetsetilly/rdram64/prefs"
	"github.com/jetsetilly/rdram64/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectFailure(t, v.Set(10))

	var hooked bool
	v.SetHookPost(func(nv prefs.Value) error {
		hooked = nv.(bool)
		return nil
	})
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, hooked, true)
}

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "sub", prefs.DefaultPrefsFile)

	var a, b prefs.Bool

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("test.a", &a))
	test.DemandSuccess(t, dsk.Add("test.b", &b))
	test.ExpectFailure(t, dsk.Add("test.a", &b))

	// loading a file that doesn't exist
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.DemandSuccess(t, a.Set(true))
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "*** do not edit this file by hand ***\ntest.a :: true\ntest.b :: false\n")

	test.DemandSuccess(t, dsk.Reset())
	test.ExpectEquality(t, a.Get().(bool), false)

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, a.Get().(bool), true)
	test.ExpectEquality(t, b.Get().(bool), false)

	// a second disk instance that only knows about one of the keys
	var c prefs.Bool
	dsk2, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk2.Add("test.b", &c))
	test.ExpectSuccess(t, dsk2.Load(false))
	test.ExpectSuccess(t, curated.Is(dsk2.Load(true), prefs.UnknownKey))

	// saving from the second instance preserves the unknown key
	test.DemandSuccess(t, c.Set(true))
	test.DemandSuccess(t, dsk2.Save())
	data, err = os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "*** do not edit this file by hand ***\ntest.a :: true\ntest.b :: true\n")
}

func TestOverride(t *testing.T) {
	var a, b prefs.Bool

	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("test.a", &a))
	test.DemandSuccess(t, dsk.Add("test.b", &b))

	test.ExpectSuccess(t, dsk.Override("test.a::true; test.b :: true;"))
	test.ExpectEquality(t, a.Get().(bool), true)
	test.ExpectEquality(t, b.Get().(bool), true)

	test.ExpectSuccess(t, curated.Is(dsk.Override("test.c::true"), prefs.UnknownKey))
	test.ExpectFailure(t, dsk.Override("test.a"))
}
