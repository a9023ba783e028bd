// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

// Package revision defines the ordered set of protocol upgrades the
// interpreter understands. A Revision gates which opcodes are defined
// and which gas/behavior rules apply, mirroring the chain-rules enum
// the teacher threads through its jump-table cache.
package revision

// Revision identifies a protocol upgrade. Later revisions have larger
// values, so "at least Berlin" is expressed as rev >= Berlin.
type Revision int

const (
	Frontier Revision = iota
	Homestead
	TangerineWhistle
	SpuriousDragon
	Byzantium
	Constantinople
	Petersburg
	Istanbul
	Berlin
	London
	Shanghai
	Cancun

	// Latest is always the newest revision this package knows about.
	Latest = Cancun
)

var names = [...]string{
	Frontier:         "Frontier",
	Homestead:        "Homestead",
	TangerineWhistle: "TangerineWhistle",
	SpuriousDragon:   "SpuriousDragon",
	Byzantium:        "Byzantium",
	Constantinople:   "Constantinople",
	Petersburg:       "Petersburg",
	Istanbul:         "Istanbul",
	Berlin:           "Berlin",
	London:           "London",
	Shanghai:         "Shanghai",
	Cancun:           "Cancun",
}

// String renders the revision's name, or "Unknown" if out of range.
func (r Revision) String() string {
	if r < Frontier || int(r) >= len(names) {
		return "Unknown"
	}
	return names[r]
}

// AtLeast reports whether r has activated by the time other has, i.e.
// r >= other.
func (r Revision) AtLeast(other Revision) bool { return r >= other }

// Valid reports whether r is one of the defined revisions.
func (r Revision) Valid() bool { return r >= Frontier && r <= Latest }
