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

package preferences

import (
	"github.com/jetsetilly/rdram64/curated"
	"github.com/jetsetilly/rdram64/paths"
	"github.com/jetsetilly/rdram64/prefs"
)

// Preferences defines and collates all the preference values used by the
// memory subsystem emulation.
type Preferences struct {
	dsk *prefs.Disk

	// whether the optional memory expansion is fitted. with the expansion
	// present there are four RDRAM modules, otherwise there are two
	ExpansionModule prefs.Bool

	// enables the trace hook for memory accesses that are tagged with a
	// peripheral name. tracing every access is slow so it is off by default
	ExtendedDiagnostics prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file if it exists.
func NewPreferences() (*Preferences, error) {
	return newPreferences(paths.ResourcePath(prefs.DefaultPrefsFile))
}

// NewPreferencesFromFile is the same as NewPreferences() but with a specific
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.expansion", &p.ExpansionModule)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.diagnostics", &p.ExtendedDiagnostics)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	// not using the Reset() function of the Disk type because the default
	// value for ExpansionModule is true and not the type default
	p.ExpansionModule.Set(true)
	p.ExtendedDiagnostics.Set(false)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Override preference values. See prefs.Disk.Override() for the format of the
// string.
func (p *Preferences) Override(overrides string) error {
	return p.dsk.Override(overrides)
}
