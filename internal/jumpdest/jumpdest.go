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

// Package jumpdest performs the static analysis JUMP/JUMPI validate
// their targets against: a one-time scan of the contract's code that
// marks which byte offsets are a real JUMPDEST instruction, as opposed
// to a byte that merely has the same value while sitting inside a
// PUSH's immediate data.
package jumpdest

const (
	opPush1    = 0x60
	opPush32   = 0x7f
	opJumpdest = 0x5b
)

// Destinations is a bit-vector over code offsets, one bit per byte of
// code, set only at offsets that are valid JUMPDEST targets.
type Destinations struct {
	bits []uint64
	n    int
}

// Analyze scans code once and returns the set of valid jump
// destinations, skipping over PUSH immediate-data bytes so that a
// 0x5b byte embedded in push data is never mistaken for a JUMPDEST.
func Analyze(code []byte) Destinations {
	d := Destinations{
		bits: make([]uint64, (len(code)/64)+1),
		n:    len(code),
	}
	for pc := 0; pc < len(code); {
		op := code[pc]
		if op == opJumpdest {
			d.set(pc)
			pc++
			continue
		}
		if op >= opPush1 && op <= opPush32 {
			pc += int(op-opPush1) + 2
			continue
		}
		pc++
	}
	return d
}

func (d *Destinations) set(pc int) {
	d.bits[pc/64] |= 1 << uint(pc%64)
}

// IsJumpDest reports whether pc is a valid jump destination. A pc at or
// past the end of code is never a valid destination.
func (d *Destinations) IsJumpDest(pc uint64) bool {
	if pc >= uint64(d.n) {
		return false
	}
	return d.bits[pc/64]&(1<<uint(pc%64)) != 0
}
