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

package word

import (
	"math/big"
	"testing"
)

func TestAddSubMul(t *testing.T) {
	a, b := FromUint64(5), FromUint64(3)
	var out Word
	if out.Add(&a, &b); out.Uint64() != 8 {
		t.Errorf("5+3 = %d, want 8", out.Uint64())
	}
	if out.Sub(&a, &b); out.Uint64() != 2 {
		t.Errorf("5-3 = %d, want 2", out.Uint64())
	}
	if out.Mul(&a, &b); out.Uint64() != 15 {
		t.Errorf("5*3 = %d, want 15", out.Uint64())
	}
}

func TestDivModByZero(t *testing.T) {
	a, zero := FromUint64(10), Zero
	var out Word
	out.Div(&a, &zero)
	if !out.IsZero() {
		t.Errorf("10/0 = %v, want 0", out.Uint64())
	}
	out.Mod(&a, &zero)
	if !out.IsZero() {
		t.Errorf("10%%0 = %v, want 0", out.Uint64())
	}
}

func TestDivModRoundTrip(t *testing.T) {
	x, y := FromUint64(97), FromUint64(11)
	var q, r, recon, tmp Word
	q.Div(&x, &y)
	r.Mod(&x, &y)
	recon.Add(tmp.Mul(&q, &y), &r)
	if !recon.Eq(&x) {
		t.Errorf("(x/y)*y+x%%y = %v, want %v", recon.Uint64(), x.Uint64())
	}
}

func TestSdivMinOverflow(t *testing.T) {
	var minSigned, negOne, out Word
	b := [32]byte{0x80} // 2^255, i.e. MIN_SIGNED
	minSigned = FromBytes32(b)
	var ones [32]byte
	for i := range ones {
		ones[i] = 0xff
	}
	negOne = FromBytes32(ones) // -1

	out.SDiv(&minSigned, &negOne)
	if !out.Eq(&minSigned) {
		t.Errorf("MIN_SIGNED/-1 = %v, want MIN_SIGNED", out.Bytes32())
	}
}

func TestSdivSmodByZero(t *testing.T) {
	a := FromUint64(10)
	var out Word
	out.SDiv(&a, &Zero)
	if !out.IsZero() {
		t.Error("sdiv by zero should be 0")
	}
	out.SMod(&a, &Zero)
	if !out.IsZero() {
		t.Error("srem by zero should be 0")
	}
}

func TestAddModMulMod(t *testing.T) {
	x, y, n := FromUint64(10), FromUint64(10), FromUint64(8)
	var out Word
	out.AddMod(&x, &y, &n)
	if out.Uint64() != 4 {
		t.Errorf("addmod(10,10,8) = %d, want 4", out.Uint64())
	}
	out.MulMod(&x, &y, &n)
	if out.Uint64() != 4 {
		t.Errorf("mulmod(10,10,8) = %d, want 4", out.Uint64())
	}

	var zero Word
	out.AddMod(&x, &y, &zero)
	if !out.IsZero() {
		t.Error("addmod with n=0 should be 0")
	}
	out.MulMod(&x, &y, &zero)
	if !out.IsZero() {
		t.Error("mulmod with n=0 should be 0")
	}
}

func TestExp(t *testing.T) {
	base, exp := FromUint64(2), FromUint64(10)
	var out Word
	out.Exp(&base, &exp)
	if out.Uint64() != 1024 {
		t.Errorf("2^10 = %d, want 1024", out.Uint64())
	}

	var zeroExp Word
	out.Exp(&base, &zeroExp)
	if out.Uint64() != 1 {
		t.Errorf("2^0 = %d, want 1", out.Uint64())
	}
	if out.ExpByteLen() != 0 {
		t.Errorf("exponent 0 should have byte length 0")
	}
}

func TestSignExtend(t *testing.T) {
	// signextend(0, 0xff) = all-ones (byte 0 of 0xff is negative)
	x := FromUint64(0xff)
	var k, out Word
	k = FromUint64(0)
	out.SignExtend(&k, &x)
	want := FromBytes32([32]byte{})
	var ones [32]byte
	for i := range ones {
		ones[i] = 0xff
	}
	want = FromBytes32(ones)
	if !out.Eq(&want) {
		t.Errorf("signextend(0, 0xff) = %x, want all-ones", out.Bytes32())
	}

	// signextend(31, x) = x
	k31 := FromUint64(31)
	out.SignExtend(&k31, &x)
	if !out.Eq(&x) {
		t.Error("signextend(31, x) should equal x")
	}
}

func TestByte(t *testing.T) {
	x := FromUint64(0x0102)
	var idx, out Word
	idx = FromUint64(31)
	out.Byte(&idx, &x)
	if out.Uint64() != 0x02 {
		t.Errorf("byte(31, 0x102) = %d, want 2", out.Uint64())
	}
	idx = FromUint64(32)
	out.Byte(&idx, &x)
	if !out.IsZero() {
		t.Error("byte(32, x) should be 0")
	}
}

func TestShifts(t *testing.T) {
	x := FromUint64(1)
	var n, out Word

	n = FromUint64(8)
	out.Lsh(&x, &n)
	if out.Uint64() != 256 {
		t.Errorf("1<<8 = %d, want 256", out.Uint64())
	}

	n = FromUint64(256)
	out.Lsh(&x, &n)
	if !out.IsZero() {
		t.Error("shl(256, x) should be 0")
	}
	out.Rsh(&x, &n)
	if !out.IsZero() {
		t.Error("shr(256, x) should be 0")
	}

	negOneBytes := [32]byte{}
	for i := range negOneBytes {
		negOneBytes[i] = 0xff
	}
	negOne := FromBytes32(negOneBytes)
	out.Sar(&negOne, &n)
	if !out.Eq(&negOne) {
		t.Error("sar(256, negative) should be all-ones")
	}

	out.Sar(&x, &n)
	if !out.IsZero() {
		t.Error("sar(256, positive) should be 0")
	}
}

func TestSignedCompare(t *testing.T) {
	negOneBytes := [32]byte{}
	for i := range negOneBytes {
		negOneBytes[i] = 0xff
	}
	negOne := FromBytes32(negOneBytes)
	one := FromUint64(1)
	if !negOne.Slt(&one) {
		t.Error("-1 should be slt 1")
	}
	if one.Slt(&negOne) {
		t.Error("1 should not be slt -1")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	var b [32]byte
	for i := range b {
		b[i] = byte(i)
	}
	w := FromBytes32(b)
	if got := w.Bytes32(); got != b {
		t.Errorf("round-trip mismatch: got %x, want %x", got, b)
	}
}

func TestFromBig(t *testing.T) {
	w := FromBig(big.NewInt(42))
	if w.Uint64() != 42 {
		t.Errorf("FromBig(42) = %d, want 42", w.Uint64())
	}
}
