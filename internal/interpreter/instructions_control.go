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

import baseerrors "github.com/n42blockchain/evmcore/internal/errors"

func opStop(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, nil
}

// opJump validates dest against the code's JUMPDEST analysis, set up
// once per Execute call in scope.Dests. It advances pc itself (the
// operation's jumps flag tells the dispatch loop not to do so).
func opJump(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	dest, _ := scope.Stack.Pop()
	d, overflow := dest.Uint64WithOverflow()
	if overflow || !scope.Dests.IsJumpDest(d) {
		return nil, baseerrors.ErrInvalidJump
	}
	*pc = d
	return nil, nil
}

func opJumpi(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	dest, _ := scope.Stack.Pop()
	cond, _ := scope.Stack.Pop()
	if cond.IsZero() {
		*pc++
		return nil, nil
	}
	d, overflow := dest.Uint64WithOverflow()
	if overflow || !scope.Dests.IsJumpDest(d) {
		return nil, baseerrors.ErrInvalidJump
	}
	*pc = d
	return nil, nil
}

func opReturn(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	offset, _ := scope.Stack.Pop()
	size, _ := scope.Stack.Pop()
	off, _ := offset.Uint64WithOverflow()
	sz, _ := size.Uint64WithOverflow()
	return scope.Memory.GetCopy(int64(off), int64(sz)), nil
}

func opRevert(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	offset, _ := scope.Stack.Pop()
	size, _ := scope.Stack.Pop()
	off, _ := offset.Uint64WithOverflow()
	sz, _ := size.Uint64WithOverflow()
	return scope.Memory.GetCopy(int64(off), int64(sz)), baseerrors.ErrExecutionReverted
}

func opInvalid(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, baseerrors.ErrInvalidOpcode
}
