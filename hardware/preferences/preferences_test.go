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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/rdram64/hardware/preferences"
	"github.com/jetsetilly/rdram64/test"
)

func TestDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.ExpansionModule.Get().(bool), true)
	test.ExpectEquality(t, p.ExtendedDiagnostics.Get().(bool), false)
}

func TestSaveLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.Override("hardware.expansion::false; hardware.diagnostics::true"))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.ExpansionModule.Get().(bool), false)
	test.ExpectEquality(t, q.ExtendedDiagnostics.Get().(bool), true)

	q.SetDefaults()
	test.ExpectEquality(t, q.ExpansionModule.Get().(bool), true)
	test.ExpectEquality(t, q.ExtendedDiagnostics.Get().(bool), false)
}
