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

// Package word implements the 256-bit value type used throughout the
// interpreter: unsigned arithmetic modulo 2^256 with a two's-complement
// signed reinterpretation for the S-prefixed opcodes. It exposes exactly
// the operations the opcode set needs and nothing else, so call sites never
// reach past this type into the underlying big-integer representation.
package word

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Word is a 256-bit value. The zero Word is ZERO.
type Word struct {
	v uint256.Int
}

// Zero is the additive identity.
var Zero = Word{}

// One is the multiplicative identity.
var One = FromUint64(1)

// FromUint64 builds a Word from a 64-bit unsigned value.
func FromUint64(v uint64) Word {
	var w Word
	w.v.SetUint64(v)
	return w
}

// FromBig interprets x as an unsigned value, wrapping modulo 2^256.
func FromBig(x *big.Int) Word {
	var w Word
	w.v.SetFromBig(x)
	return w
}

// FromBytes32 interprets b as a 32-byte big-endian value.
func FromBytes32(b [32]byte) Word {
	var w Word
	w.v.SetBytes32(b[:])
	return w
}

// FromBytes interprets b (len <= 32) as a big-endian value, zero-extended
// on the left.
func FromBytes(b []byte) Word {
	var w Word
	w.v.SetBytes(b)
	return w
}

// Bytes32 renders w as 32 big-endian bytes.
func (w *Word) Bytes32() [32]byte {
	return w.v.Bytes32()
}

// Bytes renders w as a minimal big-endian byte slice (no leading zeros,
// empty for zero).
func (w *Word) Bytes() []byte {
	return w.v.Bytes()
}

// Set copies x into w and returns w.
func (w *Word) Set(x *Word) *Word {
	w.v.Set(&x.v)
	return w
}

// Clone returns an independent copy of w.
func (w *Word) Clone() Word {
	var out Word
	out.v.Set(&w.v)
	return out
}

// IsZero reports whether w == 0.
func (w *Word) IsZero() bool { return w.v.IsZero() }

// Cmp performs an unsigned comparison, returning -1, 0 or 1.
func (w *Word) Cmp(x *Word) int { return w.v.Cmp(&x.v) }

// Eq reports whether w == x.
func (w *Word) Eq(x *Word) bool { return w.v.Eq(&x.v) }

// Uint64 truncates w to its low 64 bits.
func (w *Word) Uint64() uint64 { return w.v.Uint64() }

// Uint64WithOverflow truncates w to 64 bits, reporting whether information
// was lost. Callers that need a narrowed value for indexing (PC targets,
// memory offsets, CALLDATALOAD offsets) must use this rather than Uint64,
// per the "no silent truncation" design note.
func (w *Word) Uint64WithOverflow() (uint64, bool) { return w.v.Uint64WithOverflow() }

// IsUint64 reports whether w fits in 64 bits.
func (w *Word) IsUint64() bool { return w.v.IsUint64() }

// --- arithmetic -------------------------------------------------------

// Add sets w = x + y (mod 2^256) and returns w.
func (w *Word) Add(x, y *Word) *Word { w.v.Add(&x.v, &y.v); return w }

// Sub sets w = x - y (mod 2^256) and returns w.
func (w *Word) Sub(x, y *Word) *Word { w.v.Sub(&x.v, &y.v); return w }

// Mul sets w = x * y (mod 2^256) and returns w.
func (w *Word) Mul(x, y *Word) *Word { w.v.Mul(&x.v, &y.v); return w }

// Div sets w = x / y, unsigned, or 0 if y == 0.
func (w *Word) Div(x, y *Word) *Word { w.v.Div(&x.v, &y.v); return w }

// Mod sets w = x % y, unsigned, or 0 if y == 0.
func (w *Word) Mod(x, y *Word) *Word { w.v.Mod(&x.v, &y.v); return w }

// SDiv sets w = x / y using two's-complement signed division truncated
// toward zero. Returns 0 if y == 0; returns MinInt256 for
// MinInt256 / -1 (the one case where the mathematical result would
// overflow back to the same bit pattern).
func (w *Word) SDiv(x, y *Word) *Word { w.v.SDiv(&x.v, &y.v); return w }

// SMod sets w = x % y using two's-complement signed remainder; the sign of
// the result follows the dividend x. Returns 0 if y == 0.
func (w *Word) SMod(x, y *Word) *Word { w.v.SMod(&x.v, &y.v); return w }

// AddMod sets w = (x + y) mod n using a full-precision intermediate sum.
// Returns 0 if n == 0.
func (w *Word) AddMod(x, y, n *Word) *Word { w.v.AddMod(&x.v, &y.v, &n.v); return w }

// MulMod sets w = (x * y) mod n using a full-precision (512-bit)
// intermediate product. Returns 0 if n == 0.
func (w *Word) MulMod(x, y, n *Word) *Word { w.v.MulMod(&x.v, &y.v, &n.v); return w }

// Exp sets w = x^y mod 2^256 (unsigned wrapping exponentiation).
func (w *Word) Exp(x, y *Word) *Word { w.v.Exp(&x.v, &y.v); return w }

// ExpByteLen returns the number of bytes needed to represent w with no
// leading zero byte (0 for w == 0). Used to cost EXP's dynamic gas
// component, which is charged per non-zero-prefix byte of the exponent.
func (w *Word) ExpByteLen() int {
	b := w.v.Bytes32()
	for i, c := range b {
		if c != 0 {
			return 32 - i
		}
	}
	return 0
}

// SignExtend sets w by sign-extending x from the byte at index k (0 =
// least significant byte). If k >= 31, w = x unchanged.
func (w *Word) SignExtend(k, x *Word) *Word {
	if !k.IsUint64() || k.v.Uint64() >= 31 {
		return w.Set(x)
	}
	idx := 31 - int(k.v.Uint64())
	b := x.Bytes32()
	if b[idx]&0x80 != 0 {
		for i := 0; i < idx; i++ {
			b[i] = 0xff
		}
	} else {
		for i := 0; i < idx; i++ {
			b[i] = 0x00
		}
	}
	*w = FromBytes32(b)
	return w
}

// --- comparisons --------------------------------------------------------

// Lt reports whether w < x, unsigned.
func (w *Word) Lt(x *Word) bool { return w.v.Lt(&x.v) }

// Gt reports whether w > x, unsigned.
func (w *Word) Gt(x *Word) bool { return w.v.Gt(&x.v) }

// Slt reports whether w < x, signed two's complement.
func (w *Word) Slt(x *Word) bool { return w.v.Slt(&x.v) }

// Sgt reports whether w > x, signed two's complement.
func (w *Word) Sgt(x *Word) bool { return w.v.Sgt(&x.v) }

// --- bitwise -------------------------------------------------------------

// And sets w = x & y.
func (w *Word) And(x, y *Word) *Word { w.v.And(&x.v, &y.v); return w }

// Or sets w = x | y.
func (w *Word) Or(x, y *Word) *Word { w.v.Or(&x.v, &y.v); return w }

// Xor sets w = x ^ y.
func (w *Word) Xor(x, y *Word) *Word { w.v.Xor(&x.v, &y.v); return w }

// Not sets w = ^x (bitwise complement).
func (w *Word) Not(x *Word) *Word { w.v.Not(&x.v); return w }

// Byte sets w to the byte at index i of x, counted from the most
// significant end (byte 0 is the MSB). Returns 0 if i >= 32.
func (w *Word) Byte(i, x *Word) *Word {
	if !i.IsUint64() || i.v.Uint64() >= 32 {
		*w = Zero
		return w
	}
	b := x.Bytes32()
	*w = FromUint64(uint64(b[i.v.Uint64()]))
	return w
}

// Lsh sets w = x << n (logical shift left). Shifting by n >= 256 yields 0.
func (w *Word) Lsh(x, n *Word) *Word {
	if !n.IsUint64() || n.v.Uint64() >= 256 {
		*w = Zero
		return w
	}
	w.v.Lsh(&x.v, uint(n.v.Uint64()))
	return w
}

// Rsh sets w = x >> n (logical shift right). Shifting by n >= 256 yields 0.
func (w *Word) Rsh(x, n *Word) *Word {
	if !n.IsUint64() || n.v.Uint64() >= 256 {
		*w = Zero
		return w
	}
	w.v.Rsh(&x.v, uint(n.v.Uint64()))
	return w
}

// Sar sets w = x >> n, arithmetic (sign-extending) shift right. Shifting
// by n >= 256 yields all-ones if x is negative, else 0.
func (w *Word) Sar(x, n *Word) *Word {
	if !n.IsUint64() || n.v.Uint64() >= 256 {
		if x.v.Sign() < 0 {
			w.v.SetAllOne()
		} else {
			*w = Zero
		}
		return w
	}
	w.v.SRsh(&x.v, uint(n.v.Uint64()))
	return w
}

// String renders w in hexadecimal.
func (w *Word) String() string { return w.v.Hex() }
