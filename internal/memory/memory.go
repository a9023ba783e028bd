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

// Package memory implements the interpreter's byte-addressable scratch
// space: a zero-initialized, word-aligned buffer that grows on demand
// and whose expansion is charged as quadratic gas by the caller.
package memory

import (
	"github.com/holiman/uint256"
)

const initialCapacity = 4 * 1024

// Memory is a resizable, zero-initialized byte buffer addressed by the
// interpreter's MLOAD/MSTORE/MSTORE8/MCOPY/CALLDATACOPY/... family.
// Memory never shrinks: Resize only grows the buffer, matching the EVM
// rule that memory expansion is monotonic within a single call frame.
type Memory struct {
	store       []byte
	lastGasCost uint64
}

// NewMemory returns an empty Memory with some pre-allocated backing
// capacity, to absorb the common case of a handful of small expansions
// without repeated reallocation.
func NewMemory() *Memory {
	return &Memory{store: make([]byte, 0, initialCapacity)}
}

// Len reports the current size of memory in bytes.
func (m *Memory) Len() int { return len(m.store) }

// Resize grows memory to be at least size bytes, zero-filling the new
// region. It is a no-op if memory is already at least that large.
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) >= size {
		return
	}
	if uint64(cap(m.store)) >= size {
		grown := m.store[:size]
		for i := len(m.store); i < int(size); i++ {
			grown[i] = 0
		}
		m.store = grown
		return
	}
	next := make([]byte, size)
	copy(next, m.store)
	m.store = next
}

// Set writes data (truncated or zero-padded to size) into memory
// starting at offset. The destination range [offset, offset+size) must
// already be within memory; callers charge and perform expansion before
// calling Set. Set is a no-op when size is 0.
func (m *Memory) Set(offset, size uint64, data []byte) {
	if size == 0 {
		return
	}
	if offset+size > uint64(len(m.store)) {
		return
	}
	n := copy(m.store[offset:offset+size], data)
	for i := n; i < int(size); i++ {
		m.store[offset+uint64(i)] = 0
	}
}

// Set32 writes val as 32 big-endian bytes starting at offset. The
// destination range must already be within memory.
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	if offset+32 > uint64(len(m.store)) {
		return
	}
	val.WriteToSlice(m.store[offset : offset+32])
}

// GetCopy returns an independent copy of the size bytes at offset. It
// returns nil if size is 0. Any portion of the requested range beyond
// the end of memory reads as zero, matching the EVM's "memory reads
// past the end are zero" rule rather than erroring.
func (m *Memory) GetCopy(offset, size int64) []byte {
	if size == 0 {
		return nil
	}
	out := make([]byte, size)
	if offset >= int64(len(m.store)) {
		return out
	}
	end := offset + size
	if end > int64(len(m.store)) {
		end = int64(len(m.store))
	}
	copy(out, m.store[offset:end])
	return out
}

// GetPtr returns a slice referencing memory's internal storage for the
// size bytes at offset. It returns nil if size is 0. The returned slice
// is only valid until the next call that may grow memory. The
// requested range must already lie within memory.
func (m *Memory) GetPtr(offset, size int64) []byte {
	if size == 0 {
		return nil
	}
	return m.store[offset : offset+size]
}

// Data returns a slice referencing the full internal storage.
func (m *Memory) Data() []byte { return m.store }

// Copy performs an in-memory move of size bytes from src to dst, using
// Go's overlap-safe copy. Both ranges must already lie within memory.
// Copy is a no-op when size is 0.
func (m *Memory) Copy(dst, src, size uint64) {
	if size == 0 {
		return
	}
	copy(m.store[dst:dst+size], m.store[src:src+size])
}

// Reset empties memory and clears the last-charged expansion gas cost,
// without releasing the backing array.
func (m *Memory) Reset() {
	m.store = m.store[:0]
	m.lastGasCost = 0
}

// LastGasCost returns the total expansion cost recorded for the current
// memory size. The interpreter's dispatch loop subtracts it from the cost
// of a larger size to charge only the incremental expansion cost.
func (m *Memory) LastGasCost() uint64 { return m.lastGasCost }

// SetLastGasCost records the total expansion cost of the current memory
// size. The interpreter's dispatch loop calls this after charging an
// expansion, so that the next expansion can be charged as a delta.
func (m *Memory) SetLastGasCost(cost uint64) { m.lastGasCost = cost }

// WordCount returns the number of 32-byte words needed to cover size
// bytes, rounding up. This is the unit EVM memory-expansion gas is
// charged in.
func WordCount(size uint64) uint64 {
	return (size + 31) / 32
}
