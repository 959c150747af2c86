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

// Package bus is used to define access patterns for different parts of the
// emulation to the memory subsystem. The CPU and the co-processors access the
// memory array through the MemoryBus, while the address decoder routes
// register accesses through the RegisterBus.
//
// The DebuggerBus is for the exclusive use of debuggers. Accesses through the
// DebuggerBus have no side effects.
//
// The Tracer interface is implemented outside of the memory subsystem. See
// the tracer package for implementations.
package bus
