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

// Package tracer contains implementations of the bus.Tracer interface.
//
// The Log type adds an entry to the central logger for each event. The
// Recorder type keeps the most recent events in memory for later inspection.
// The Writer type writes each event to an io.Writer as it happens. More than
// one tracer can be attached to the memory subsystem with the Multi type.
package tracer
