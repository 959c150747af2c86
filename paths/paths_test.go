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

package paths_test

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/rdram64/paths"
	"github.com/jetsetilly/rdram64/test"
)

func TestResourcePath(t *testing.T) {
	pth := paths.ResourcePath("foo", "bar")
	test.ExpectEquality(t, filepath.Base(pth), "bar")
	test.ExpectEquality(t, filepath.Base(filepath.Dir(pth)), "foo")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("state", "boot", "rdram")
	test.ExpectSuccess(t, regexp.MustCompile(`^state_boot_\d{8}_\d{6}\.rdram$`).MatchString(fn))

	fn = paths.UniqueFilename("state", "", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^state_\d{8}_\d{6}$`).MatchString(fn))
}
