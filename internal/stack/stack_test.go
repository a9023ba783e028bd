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

package stack

import (
	"testing"

	"github.com/n42blockchain/evmcore/internal/errors"
	"github.com/n42blockchain/evmcore/internal/word"
)

func TestStackNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() should not return nil")
	}
	if s.Len() != 0 {
		t.Errorf("new stack should be empty, got len=%d", s.Len())
	}
	Return(s)
}

func TestStackPushPop(t *testing.T) {
	s := New()
	defer Return(s)

	val := word.FromUint64(42)
	if err := s.Push(&val); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}

	popped, err := s.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if !popped.Eq(&val) {
		t.Errorf("popped %v, want %v", popped, val)
	}
	if s.Len() != 0 {
		t.Errorf("len = %d, want 0 after pop", s.Len())
	}
}

func TestStackPushN(t *testing.T) {
	s := New()
	defer Return(s)

	vals := []word.Word{word.FromUint64(1), word.FromUint64(2), word.FromUint64(3)}
	if err := s.PushN(vals...); err != nil {
		t.Fatalf("PushN: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("len = %d, want 3", s.Len())
	}
	for i := len(vals) - 1; i >= 0; i-- {
		popped, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if !popped.Eq(&vals[i]) {
			t.Errorf("popped %v, want %v", popped, vals[i])
		}
	}
}

func TestStackPeek(t *testing.T) {
	s := New()
	defer Return(s)

	val := word.FromUint64(42)
	s.Push(&val)

	peeked := s.Peek()
	if !peeked.Eq(&val) {
		t.Errorf("peeked %v, want %v", peeked, val)
	}
	if s.Len() != 1 {
		t.Error("Peek should not change stack length")
	}
}

func TestStackBack(t *testing.T) {
	s := New()
	defer Return(s)

	one, two, three := word.FromUint64(1), word.FromUint64(2), word.FromUint64(3)
	s.Push(&one)
	s.Push(&two)
	s.Push(&three)

	if got := s.Back(0).Uint64(); got != 3 {
		t.Errorf("Back(0) = %d, want 3", got)
	}
	if got := s.Back(1).Uint64(); got != 2 {
		t.Errorf("Back(1) = %d, want 2", got)
	}
	if got := s.Back(2).Uint64(); got != 1 {
		t.Errorf("Back(2) = %d, want 1", got)
	}
}

func TestStackSwap(t *testing.T) {
	s := New()
	defer Return(s)

	one, two, three := word.FromUint64(1), word.FromUint64(2), word.FromUint64(3)
	s.Push(&one)
	s.Push(&two)
	s.Push(&three)

	if err := s.Swap(2); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if got := s.Peek().Uint64(); got != 1 {
		t.Errorf("after Swap(2), top = %d, want 1", got)
	}
	s.Pop()
	if got := s.Peek().Uint64(); got != 2 {
		t.Errorf("after Swap(2) and Pop, top = %d, want 2", got)
	}
}

func TestStackDup(t *testing.T) {
	s := New()
	defer Return(s)

	one, two := word.FromUint64(1), word.FromUint64(2)
	s.Push(&one)
	s.Push(&two)

	if err := s.Dup(1); err != nil {
		t.Fatalf("Dup: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("after Dup(1), len = %d, want 3", s.Len())
	}
	if got := s.Peek().Uint64(); got != 2 {
		t.Errorf("after Dup(1), top = %d, want 2", got)
	}
}

func TestStackReset(t *testing.T) {
	s := New()
	defer Return(s)

	one, two, three := word.FromUint64(1), word.FromUint64(2), word.FromUint64(3)
	s.Push(&one)
	s.Push(&two)
	s.Push(&three)
	s.Reset()

	if s.Len() != 0 {
		t.Errorf("after Reset, len = %d, want 0", s.Len())
	}
}

func TestStackOverflow(t *testing.T) {
	s := New()
	defer Return(s)

	v := word.FromUint64(1)
	for i := 0; i < MaxDepth; i++ {
		if err := s.Push(&v); err != nil {
			t.Fatalf("unexpected error at depth %d: %v", i, err)
		}
	}
	if err := s.Push(&v); err != errors.ErrStackOverflow {
		t.Errorf("Push at MaxDepth = %v, want ErrStackOverflow", err)
	}
}

func TestStackUnderflow(t *testing.T) {
	s := New()
	defer Return(s)

	if _, err := s.Pop(); err != errors.ErrStackUnderflow {
		t.Errorf("Pop on empty stack = %v, want ErrStackUnderflow", err)
	}
	if err := s.Swap(1); err != errors.ErrStackUnderflow {
		t.Errorf("Swap on empty stack = %v, want ErrStackUnderflow", err)
	}
	if err := s.Dup(1); err != errors.ErrStackUnderflow {
		t.Errorf("Dup on empty stack = %v, want ErrStackUnderflow", err)
	}
}

func TestStackPoolReuse(t *testing.T) {
	s1 := New()
	v := word.FromUint64(42)
	s1.Push(&v)
	Return(s1)

	s2 := New()
	if s2.Len() != 0 {
		t.Errorf("reused stack should be empty, got len=%d", s2.Len())
	}
	Return(s2)
}

func TestStackManyPushPop(t *testing.T) {
	s := New()
	defer Return(s)

	n := 1000
	for i := 0; i < n; i++ {
		v := word.FromUint64(uint64(i))
		if err := s.Push(&v); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}
	if s.Len() != n {
		t.Errorf("len = %d, want %d", s.Len(), n)
	}
	for i := n - 1; i >= 0; i-- {
		popped, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if popped.Uint64() != uint64(i) {
			t.Errorf("popped %d, want %d", popped.Uint64(), i)
		}
	}
}
