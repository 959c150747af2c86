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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles command lines that are divided into modes, each with
// its own set of flags.
//
// A mode is selected by a single word argument. For example:
//
//	rdram64 SAVE -expansion=false state.bin
//
// selects the SAVE mode and passes the -expansion flag and the state.bin
// argument to that mode. Modes can have sub-modes of their own. The path of
// modes selected so far is returned by the Path() function.
//
// Usage is in layers. NewArgs() sets the arguments. For each layer the
// program adds the possible sub-modes and the flags for that layer, and calls
// Parse(). If Parse() returns ParseContinue the Mode() function says which
// sub-mode was chosen and the program calls NewMode() to move on to the next
// layer:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SAVE")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		expansion := md.AddBool("expansion", true, "fit the expansion module")
//		...
//	}
//
// The first sub-mode in the list is the default. The default is used when the
// next argument is not one of the listed sub-modes. Sub-modes are case
// insensitive.
package modalflag
