// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package host

import (
	"testing"

	"github.com/n42blockchain/evmcore/internal/word"
)

func TestBytesToAddressPadsAndTruncates(t *testing.T) {
	short := BytesToAddress([]byte{0x01, 0x02})
	want := Address{18: 0x01, 19: 0x02}
	if short != want {
		t.Errorf("BytesToAddress(short) = %x, want %x", short, want)
	}

	long := make([]byte, 32)
	long[31] = 0xAB
	got := BytesToAddress(long)
	if got[19] != 0xAB {
		t.Errorf("BytesToAddress(long) did not keep the low 20 bytes: %x", got)
	}
}

func TestAddressWordZeroExtends(t *testing.T) {
	addr := Address{19: 0x42}
	w := addr.Word()
	b := w.Bytes32()
	if b[31] != 0x42 {
		t.Errorf("Address.Word() low byte = %x, want 0x42", b[31])
	}
	for i := 0; i < 12; i++ {
		if b[i] != 0 {
			t.Errorf("Address.Word() byte %d = %x, want 0 (zero-extended)", i, b[i])
		}
	}
}

func TestHashWordRoundTrips(t *testing.T) {
	var h Hash
	for i := range h {
		h[i] = byte(i)
	}
	w := h.Word()
	back := w.Bytes32()
	if [32]byte(h) != back {
		t.Errorf("Hash.Word().Bytes32() = %x, want %x", back, h)
	}
}

func TestAccessStatusValues(t *testing.T) {
	if ColdAccess != false || WarmAccess != true {
		t.Errorf("AccessStatus constants changed meaning")
	}
}

func TestWordHelperUsed(t *testing.T) {
	// sanity: word.Zero is the value a fresh TxContext/Message carries.
	var w word.Word
	if !w.IsZero() {
		t.Errorf("zero Word should report IsZero")
	}
}
