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

package memory

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"
)

func TestMemoryNew(t *testing.T) {
	mem := NewMemory()
	if mem == nil {
		t.Fatal("NewMemory returned nil")
	}
	if mem.Len() != 0 {
		t.Errorf("new memory should be empty, got len %d", mem.Len())
	}
	if cap(mem.store) < initialCapacity {
		t.Errorf("initial capacity should be at least %d, got %d", initialCapacity, cap(mem.store))
	}
}

func TestMemoryResize(t *testing.T) {
	tests := []struct {
		name     string
		size     uint64
		expected int
	}{
		{"resize_to_zero", 0, 0},
		{"resize_to_32", 32, 32},
		{"resize_to_64", 64, 64},
		{"resize_to_1024", 1024, 1024},
		{"resize_to_4096", 4096, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := NewMemory()
			mem.Resize(tt.size)
			if mem.Len() != tt.expected {
				t.Errorf("after Resize(%d), Len() = %d, want %d", tt.size, mem.Len(), tt.expected)
			}
		})
	}
}

func TestMemoryResizeMultiple(t *testing.T) {
	mem := NewMemory()

	mem.Resize(32)
	if mem.Len() != 32 {
		t.Errorf("first resize: expected len 32, got %d", mem.Len())
	}

	mem.Resize(64)
	if mem.Len() != 64 {
		t.Errorf("second resize: expected len 64, got %d", mem.Len())
	}

	mem.Resize(32)
	if mem.Len() != 64 {
		t.Errorf("smaller resize should not shrink: expected len 64, got %d", mem.Len())
	}
}

func TestMemoryResizeZeroesNewRegion(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)
	mem.Set(0, 32, bytes.Repeat([]byte{0xff}, 32))
	mem.Reset()
	mem.Resize(32)
	for i, b := range mem.Data() {
		if b != 0 {
			t.Fatalf("byte %d not zeroed after reset+resize: %x", i, b)
		}
	}
}

func TestMemorySet(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	data := []byte{0x01, 0x02, 0x03, 0x04}
	mem.Set(0, uint64(len(data)), data)

	result := mem.GetCopy(0, int64(len(data)))
	if !bytes.Equal(result, data) {
		t.Errorf("set data mismatch: got %x, want %x", result, data)
	}

	mem.Set(32, uint64(len(data)), data)
	result = mem.GetCopy(32, int64(len(data)))
	if !bytes.Equal(result, data) {
		t.Errorf("set at offset mismatch: got %x, want %x", result, data)
	}
}

func TestMemorySetZeroSize(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	mem.Set(100, 0, []byte{0x01, 0x02})

	if mem.Len() != 32 {
		t.Errorf("zero-size set changed memory length: got %d, want 32", mem.Len())
	}
}

func TestMemorySet32(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	val := uint256.NewInt(0x12345678)
	mem.Set32(0, val)

	data := mem.GetPtr(0, 32)
	if data == nil {
		t.Fatal("GetPtr returned nil")
	}

	expected := make([]byte, 32)
	val.WriteToSlice(expected)
	if !bytes.Equal(data, expected) {
		t.Errorf("set32 mismatch: got %x, want %x", data, expected)
	}
}

func TestMemoryGetCopy(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	data := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	mem.Set(10, uint64(len(data)), data)

	copy1 := mem.GetCopy(10, 4)
	copy2 := mem.GetCopy(10, 4)

	copy1[0] = 0xFF

	if copy2[0] != 0xAA {
		t.Error("GetCopy should return independent copies")
	}
}

func TestMemoryGetCopyZeroSize(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	result := mem.GetCopy(0, 0)
	if result != nil {
		t.Error("GetCopy with size 0 should return nil")
	}
}

func TestMemoryGetCopyBeyondEnd(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	result := mem.GetCopy(40, 10)
	for i, b := range result {
		if b != 0 {
			t.Errorf("byte %d beyond memory end should read 0, got %x", i, b)
		}
	}
}

func TestMemoryGetPtr(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	data := []byte{0x11, 0x22, 0x33, 0x44}
	mem.Set(0, uint64(len(data)), data)

	ptr := mem.GetPtr(0, 4)
	if !bytes.Equal(ptr, data) {
		t.Errorf("GetPtr mismatch: got %x, want %x", ptr, data)
	}

	ptr[0] = 0xFF
	ptr2 := mem.GetPtr(0, 4)
	if ptr2[0] != 0xFF {
		t.Error("GetPtr should return a reference to internal storage")
	}
}

func TestMemoryGetPtrZeroSize(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	result := mem.GetPtr(0, 0)
	if result != nil {
		t.Error("GetPtr with size 0 should return nil")
	}
}

func TestMemoryData(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	data := mem.Data()
	if len(data) != 32 {
		t.Errorf("Data() length mismatch: got %d, want 32", len(data))
	}

	data[0] = 0xAB
	if mem.Data()[0] != 0xAB {
		t.Error("Data() should return internal storage")
	}
}

func TestMemoryCopyBasic(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	srcData := []byte{0x01, 0x02, 0x03, 0x04}
	mem.Set(0, uint64(len(srcData)), srcData)

	mem.Copy(32, 0, 4)

	dstData := mem.GetCopy(32, 4)
	if !bytes.Equal(dstData, srcData) {
		t.Errorf("copy mismatch: got %x, want %x", dstData, srcData)
	}
}

func TestMemoryCopyOverlapping(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	mem.Set(0, uint64(len(data)), data)

	mem.Copy(2, 0, 4)

	expected := []byte{0x01, 0x02, 0x01, 0x02, 0x03, 0x04, 0x07, 0x08}
	result := mem.GetCopy(0, 8)
	if !bytes.Equal(result, expected) {
		t.Errorf("overlapping copy mismatch: got %x, want %x", result, expected)
	}
}

func TestMemoryCopyZeroLength(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	data := []byte{0x01, 0x02, 0x03, 0x04}
	mem.Set(0, uint64(len(data)), data)

	mem.Copy(16, 0, 0)

	result := mem.GetCopy(0, 4)
	if !bytes.Equal(result, data) {
		t.Error("zero-length copy modified source data")
	}

	dst := mem.GetCopy(16, 4)
	if !bytes.Equal(dst, make([]byte, 4)) {
		t.Error("zero-length copy modified destination")
	}
}

func TestMemoryReset(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)
	mem.Set(0, 32, make([]byte, 32))
	mem.SetLastGasCost(3)

	mem.Reset()

	if mem.Len() != 0 {
		t.Errorf("after Reset, Len should be 0, got %d", mem.Len())
	}
	if mem.lastGasCost != 0 {
		t.Errorf("after Reset, lastGasCost should be 0, got %d", mem.lastGasCost)
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		size uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{32, 1},
		{33, 2},
		{64, 2},
	}
	for _, tt := range tests {
		if got := WordCount(tt.size); got != tt.want {
			t.Errorf("WordCount(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func BenchmarkMemoryResize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		mem := NewMemory()
		mem.Resize(1024)
	}
}

func BenchmarkMemorySet(b *testing.B) {
	mem := NewMemory()
	mem.Resize(1024)
	data := make([]byte, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mem.Set(0, 32, data)
	}
}

func BenchmarkMemoryGetCopy(b *testing.B) {
	mem := NewMemory()
	mem.Resize(1024)
	mem.Set(0, 32, make([]byte, 32))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mem.GetCopy(0, 32)
	}
}
