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

// Every opXxx function below assumes the dispatch loop has already
// verified the operation's stack requirements; none of the Pop/Push
// calls here can fail.

func opAdd(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	y.Add(&x, y)
	return nil, nil
}

func opMul(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	y.Mul(&x, y)
	return nil, nil
}

func opSub(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	y.Sub(&x, y)
	return nil, nil
}

func opDiv(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	y.Div(&x, y)
	return nil, nil
}

func opSdiv(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	y.SDiv(&x, y)
	return nil, nil
}

func opMod(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	y.Mod(&x, y)
	return nil, nil
}

func opSmod(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	y.SMod(&x, y)
	return nil, nil
}

func opAddmod(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y, _ := scope.Stack.Pop()
	n := scope.Stack.Peek()
	n.AddMod(&x, &y, n)
	return nil, nil
}

func opMulmod(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y, _ := scope.Stack.Pop()
	n := scope.Stack.Peek()
	n.MulMod(&x, &y, n)
	return nil, nil
}

func opExp(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	base, _ := scope.Stack.Pop()
	exp := scope.Stack.Peek()
	exp.Exp(&base, exp)
	return nil, nil
}

func opSignExtend(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	k, _ := scope.Stack.Pop()
	x := scope.Stack.Peek()
	x.SignExtend(&k, x)
	return nil, nil
}

func boolWord(b bool) word.Word {
	if b {
		return word.One
	}
	return word.Zero
}

func opLt(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	*y = boolWord(x.Lt(y))
	return nil, nil
}

func opGt(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	*y = boolWord(x.Gt(y))
	return nil, nil
}

func opSlt(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	*y = boolWord(x.Slt(y))
	return nil, nil
}

func opSgt(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	*y = boolWord(x.Sgt(y))
	return nil, nil
}

func opEq(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	*y = boolWord(x.Eq(y))
	return nil, nil
}

func opIszero(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x := scope.Stack.Peek()
	*x = boolWord(x.IsZero())
	return nil, nil
}

func opAnd(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	y.And(&x, y)
	return nil, nil
}

func opOr(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	y.Or(&x, y)
	return nil, nil
}

func opXor(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x, _ := scope.Stack.Pop()
	y := scope.Stack.Peek()
	y.Xor(&x, y)
	return nil, nil
}

func opNot(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	x := scope.Stack.Peek()
	x.Not(x)
	return nil, nil
}

func opByte(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	i, _ := scope.Stack.Pop()
	x := scope.Stack.Peek()
	x.Byte(&i, x)
	return nil, nil
}

func opShl(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	shift, _ := scope.Stack.Pop()
	value := scope.Stack.Peek()
	value.Lsh(value, &shift)
	return nil, nil
}

func opShr(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	shift, _ := scope.Stack.Pop()
	value := scope.Stack.Peek()
	value.Rsh(value, &shift)
	return nil, nil
}

func opSar(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	shift, _ := scope.Stack.Pop()
	value := scope.Stack.Peek()
	value.Sar(value, &shift)
	return nil, nil
}
