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

// memSize computes the byte size of the memory range [offset,
// offset+length), reporting overflow rather than wrapping. A
// zero-length range never touches memory regardless of offset,
// matching the EVM rule that a zero-size copy/read is always free.
func memSize(offset, length *word.Word) (uint64, bool) {
	if length.IsZero() {
		return 0, false
	}
	var end word.Word
	end.Add(offset, length)
	if !end.IsUint64() {
		return 0, true
	}
	return end.Uint64(), false
}

// memoryKeccak256 reads the [offset, size) operands KECCAK256 consumes
// without popping them; the dispatch loop pops them for real when it
// runs the opcode body afterward.
func memoryKeccak256(scope *ScopeContext) (uint64, bool) {
	return memSize(scope.Stack.Back(0), scope.Stack.Back(1))
}

func memoryCallDataCopy(scope *ScopeContext) (uint64, bool) {
	return memSize(scope.Stack.Back(0), scope.Stack.Back(2))
}

func memoryCodeCopy(scope *ScopeContext) (uint64, bool) {
	return memSize(scope.Stack.Back(0), scope.Stack.Back(2))
}

func memoryExtCodeCopy(scope *ScopeContext) (uint64, bool) {
	return memSize(scope.Stack.Back(1), scope.Stack.Back(3))
}

func memoryReturnDataCopy(scope *ScopeContext) (uint64, bool) {
	return memSize(scope.Stack.Back(0), scope.Stack.Back(2))
}

func memoryMload(scope *ScopeContext) (uint64, bool) {
	return memSize(scope.Stack.Back(0), wordPtr(word.FromUint64(32)))
}

func memoryMstore(scope *ScopeContext) (uint64, bool) {
	return memSize(scope.Stack.Back(0), wordPtr(word.FromUint64(32)))
}

func memoryMstore8(scope *ScopeContext) (uint64, bool) {
	return memSize(scope.Stack.Back(0), wordPtr(word.FromUint64(1)))
}

func memoryMcopy(scope *ScopeContext) (uint64, bool) {
	dstSize, overflow := memSize(scope.Stack.Back(0), scope.Stack.Back(2))
	if overflow {
		return 0, true
	}
	srcSize, overflow := memSize(scope.Stack.Back(1), scope.Stack.Back(2))
	if overflow {
		return 0, true
	}
	if srcSize > dstSize {
		return srcSize, false
	}
	return dstSize, false
}

func memoryLog(scope *ScopeContext) (uint64, bool) {
	return memSize(scope.Stack.Back(0), scope.Stack.Back(1))
}

func memoryReturn(scope *ScopeContext) (uint64, bool) {
	return memSize(scope.Stack.Back(0), scope.Stack.Back(1))
}

func memoryCreate(scope *ScopeContext) (uint64, bool) {
	return memSize(scope.Stack.Back(1), scope.Stack.Back(2))
}

func memoryCreate2(scope *ScopeContext) (uint64, bool) {
	return memSize(scope.Stack.Back(1), scope.Stack.Back(2))
}

func callMemSize(argsOff, argsSize, retOff, retSize *word.Word) (uint64, bool) {
	inSize, overflow := memSize(argsOff, argsSize)
	if overflow {
		return 0, true
	}
	outSize, overflow := memSize(retOff, retSize)
	if overflow {
		return 0, true
	}
	if outSize > inSize {
		return outSize, false
	}
	return inSize, false
}

// memoryCall covers CALL/CALLCODE: gas, addr, value, argsOffset,
// argsSize, retOffset, retSize (7 operands, value at index 2).
func memoryCall(scope *ScopeContext) (uint64, bool) {
	return callMemSize(scope.Stack.Back(3), scope.Stack.Back(4), scope.Stack.Back(5), scope.Stack.Back(6))
}

// memoryCallNoValue covers DELEGATECALL/STATICCALL: gas, addr,
// argsOffset, argsSize, retOffset, retSize (6 operands, no value).
func memoryCallNoValue(scope *ScopeContext) (uint64, bool) {
	return callMemSize(scope.Stack.Back(2), scope.Stack.Back(3), scope.Stack.Back(4), scope.Stack.Back(5))
}
