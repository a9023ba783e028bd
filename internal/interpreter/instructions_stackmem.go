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

package interpreter

import "github.com/n42blockchain/evmcore/internal/word"

func opKeccak256(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	offset, _ := scope.Stack.Pop()
	size := scope.Stack.Peek()
	off, _ := offset.Uint64WithOverflow()
	sz, _ := size.Uint64WithOverflow()
	data := scope.Memory.GetCopy(int64(off), int64(sz))
	h := in.Host.Keccak256(data)
	*size = h.Word()
	return nil, nil
}

func opPop(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	_, _ = scope.Stack.Pop()
	return nil, nil
}

func opMload(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	offset := scope.Stack.Peek()
	off, _ := offset.Uint64WithOverflow()
	var b [32]byte
	copy(b[:], scope.Memory.GetPtr(int64(off), 32))
	*offset = word.FromBytes32(b)
	return nil, nil
}

func opMstore(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	offset, _ := scope.Stack.Pop()
	val, _ := scope.Stack.Pop()
	off, _ := offset.Uint64WithOverflow()
	b := val.Bytes32()
	scope.Memory.Set(off, 32, b[:])
	return nil, nil
}

func opMstore8(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	offset, _ := scope.Stack.Pop()
	val, _ := scope.Stack.Pop()
	off, _ := offset.Uint64WithOverflow()
	scope.Memory.Set(off, 1, []byte{byte(val.Uint64())})
	return nil, nil
}

func opMcopy(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	dst, _ := scope.Stack.Pop()
	src, _ := scope.Stack.Pop()
	size, _ := scope.Stack.Pop()
	d, _ := dst.Uint64WithOverflow()
	s, _ := src.Uint64WithOverflow()
	n, _ := size.Uint64WithOverflow()
	scope.Memory.Copy(d, s, n)
	return nil, nil
}

func opPc(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(word.FromUint64(*pc)))
}

func opMsize(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(word.FromUint64(uint64(scope.Memory.Len()))))
}

func opGas(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(word.FromUint64(uint64(in.Gas.Left()))))
}

func opJumpdest(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, nil
}

func wordPtr(w word.Word) *word.Word { return &w }

// makePush returns the executor for PUSH1..PUSH32: read n big-endian
// bytes starting at pc+1, zero-padding past the end of code, and push
// the resulting word. PUSH0 (n == 0) pushes zero without reading code.
func makePush(n int) executionFunc {
	return func(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
		start := *pc + 1
		var buf [32]byte
		for i := 0; i < n; i++ {
			idx := start + uint64(i)
			if idx < uint64(len(scope.Code)) {
				buf[32-n+i] = scope.Code[idx]
			}
		}
		v := word.FromBytes32(buf)
		*pc += uint64(n)
		return nil, scope.Stack.Push(&v)
	}
}

func opPush0(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(word.Zero))
}

func makeDup(n int) executionFunc {
	return func(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
		return nil, scope.Stack.Dup(n)
	}
}

func makeSwap(n int) executionFunc {
	return func(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
		return nil, scope.Stack.Swap(n)
	}
}
