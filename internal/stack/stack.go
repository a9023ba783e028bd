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

// Package stack implements the interpreter's operand stack: a bounded
// LIFO of 256-bit words with the push/pop/peek/swap/dup primitives the
// opcode set is built from.
package stack

import (
	"sync"

	"github.com/n42blockchain/evmcore/internal/errors"
	"github.com/n42blockchain/evmcore/internal/word"
)

// MaxDepth is the maximum number of elements the stack may hold. Pushing
// past this depth fails with errors.ErrStackOverflow.
const MaxDepth = 1024

const initialCapacity = 16

// Stack is a fixed-depth LIFO of word.Word values.
type Stack struct {
	data []word.Word
}

var stackPool = sync.Pool{
	New: func() interface{} {
		return &Stack{data: make([]word.Word, 0, initialCapacity)}
	},
}

// New returns a Stack from the shared pool, empty and ready to use.
// Pair with Return to release it back to the pool.
func New() *Stack {
	return stackPool.Get().(*Stack)
}

// Return resets s and releases it back to the shared pool. s must not be
// used afterward.
func Return(s *Stack) {
	s.Reset()
	stackPool.Put(s)
}

// Len reports the number of elements currently on the stack.
func (s *Stack) Len() int { return len(s.data) }

// Cap reports the stack's current backing capacity. It grows on demand
// and is exposed only for diagnostics; it is not the depth limit.
func (s *Stack) Cap() int { return cap(s.data) }

// Reset empties the stack without releasing its backing array.
func (s *Stack) Reset() { s.data = s.data[:0] }

// Push pushes v onto the stack. It returns errors.ErrStackOverflow if the
// stack is already at MaxDepth.
func (s *Stack) Push(v *word.Word) error {
	if len(s.data) >= MaxDepth {
		return errors.ErrStackOverflow
	}
	s.data = append(s.data, *v)
	return nil
}

// PushN pushes each of vs in order. It stops and returns
// errors.ErrStackOverflow on the first push that would exceed MaxDepth.
func (s *Stack) PushN(vs ...word.Word) error {
	for i := range vs {
		if err := s.Push(&vs[i]); err != nil {
			return err
		}
	}
	return nil
}

// Pop removes and returns the top element. It returns
// errors.ErrStackUnderflow if the stack is empty.
func (s *Stack) Pop() (word.Word, error) {
	n := len(s.data)
	if n == 0 {
		return word.Zero, errors.ErrStackUnderflow
	}
	v := s.data[n-1]
	s.data = s.data[:n-1]
	return v, nil
}

// PopN removes and returns the top n elements, in pop order (the former
// top element first).
func (s *Stack) PopN(n int) ([]word.Word, error) {
	out := make([]word.Word, n)
	for i := 0; i < n; i++ {
		v, err := s.Pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Peek returns a pointer to the top element without removing it. The
// pointer is valid until the next mutating call on s. Callers must not
// call Peek on an empty stack; interpreter dispatch guarantees stack
// depth via its operation metadata before ever calling Peek.
func (s *Stack) Peek() *word.Word {
	return &s.data[len(s.data)-1]
}

// Back returns a pointer to the n-th element from the top, 0-indexed
// (Back(0) is the same as Peek()). The pointer is valid until the next
// mutating call on s.
func (s *Stack) Back(n int) *word.Word {
	return &s.data[len(s.data)-1-n]
}

// Swap exchanges the top element with the element n positions below it
// (n >= 1; SWAP1 is Swap(1)). It returns errors.ErrStackUnderflow if the
// stack does not hold at least n+1 elements.
func (s *Stack) Swap(n int) error {
	l := len(s.data)
	if l < n+1 {
		return errors.ErrStackUnderflow
	}
	s.data[l-1], s.data[l-1-n] = s.data[l-1-n], s.data[l-1]
	return nil
}

// Dup duplicates the element n positions from the top (1-indexed; DUP1
// duplicates the current top and is Dup(1)) onto the top of the stack.
// It returns errors.ErrStackUnderflow if the stack does not hold at
// least n elements, and errors.ErrStackOverflow if the push would
// exceed MaxDepth.
func (s *Stack) Dup(n int) error {
	l := len(s.data)
	if l < n {
		return errors.ErrStackUnderflow
	}
	v := s.data[l-n]
	return s.Push(&v)
}

// Data returns the stack contents bottom-to-top. It is exposed for
// tracing and tests; callers must not retain or mutate the returned
// slice beyond the next mutating call on s.
func (s *Stack) Data() []word.Word { return s.data }
