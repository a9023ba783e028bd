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

package gas

import (
	"math"

	"github.com/n42blockchain/evmcore/internal/errors"
)

// Meter is a signed 64-bit gas counter with charge-or-fail semantics,
// plus an independent refund counter. Charge rejects an overdraft and
// leaves the gas counter unchanged; SubRefund clamps the refund counter at
// zero, while AddRefund and SetRefund apply their argument unchecked.
type Meter struct {
	left   int64
	refund int64
}

// NewMeter returns a Meter initialized with the given starting gas.
func NewMeter(gas int64) *Meter {
	return &Meter{left: gas}
}

// Left reports the gas remaining.
func (m *Meter) Left() int64 { return m.left }

// Refund reports the current refund counter.
func (m *Meter) Refund() int64 { return m.refund }

// Charge deducts cost from the remaining gas. It fails with
// errors.ErrOutOfGas, leaving the counter unchanged, if cost exceeds
// what remains.
func (m *Meter) Charge(cost uint64) error {
	if cost > math.MaxInt64 {
		return errors.ErrGasUintOverflow
	}
	c := int64(cost)
	if m.left < c {
		return errors.ErrOutOfGas
	}
	m.left -= c
	return nil
}

// AddRefund increases the refund counter by delta.
func (m *Meter) AddRefund(delta int64) {
	m.refund += delta
}

// SubRefund decreases the refund counter by delta. It clamps to zero
// rather than going negative, matching go-ethereum's defensive
// behavior for a counter that should never legitimately underflow.
func (m *Meter) SubRefund(delta int64) {
	if delta > m.refund {
		m.refund = 0
		return
	}
	m.refund -= delta
}

// SetRefund overwrites the refund counter, used when resuming
// execution from a caller-supplied ResumeState.
func (m *Meter) SetRefund(r int64) { m.refund = r }

// SafeAdd adds a and b, reporting overflow rather than wrapping.
func SafeAdd(a, b uint64) (uint64, bool) {
	sum := a + b
	return sum, sum < a
}

// SafeMul multiplies a and b, reporting overflow rather than wrapping.
func SafeMul(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	product := a * b
	return product, product/a != b
}

// WordSize returns the number of 32-byte words needed to hold size
// bytes, rounding up, mirroring go-ethereum's toWordSize.
func WordSize(size uint64) uint64 {
	if size > math.MaxUint64-31 {
		return math.MaxUint64/32 + 1
	}
	return (size + 31) / 32
}

// MemoryGasCost computes the total (not incremental) cost of having
// memory expanded to newSize bytes, using the quadratic formula
// words*Memory + words^2/512.
func MemoryGasCost(newSize uint64) (uint64, error) {
	if newSize == 0 {
		return 0, nil
	}
	if newSize > math.MaxUint64-31 {
		return 0, errors.ErrGasUintOverflow
	}
	words := WordSize(newSize)
	square := words * words
	linCoef := words * Memory
	quadCoef := square / 512
	total, overflow := SafeAdd(linCoef, quadCoef)
	if overflow {
		return 0, errors.ErrGasUintOverflow
	}
	return total, nil
}

// ExpGas computes the dynamic portion of EXP's cost: ExpByte times the
// number of non-zero-prefix bytes in the exponent.
func ExpGas(expByteLen int) (uint64, error) {
	cost, overflow := SafeMul(uint64(expByteLen), ExpByte)
	if overflow {
		return 0, errors.ErrGasUintOverflow
	}
	return cost, nil
}
