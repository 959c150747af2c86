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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test failure with t.Errorf() and allow the
// test to continue. The Demand*() functions are the same but fail with
// t.Fatalf(). Demand*() should be used when the result is needed for later
// parts of the test to make any sense. For example, checking the length of a
// slice before indexing it.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// Note that nil is a success. This is because of how errors usually work in
// Go (nil means no error), and an untyped nil is what ends up in the any
// argument when a nil error is passed.
//
// The CompareWriter and RingWriter types implement io.Writer and are used to
// capture output. For example, output from the logger package.
package test
