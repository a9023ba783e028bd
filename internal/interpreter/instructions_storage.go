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

import (
	"github.com/n42blockchain/evmcore/internal/host"
	"github.com/n42blockchain/evmcore/internal/word"
)

func hashFromWord(w *word.Word) host.Hash {
	return host.Hash(w.Bytes32())
}

func opSload(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	key := scope.Stack.Peek()
	h := hashFromWord(key)
	*key = in.Host.GetStorage(scope.Msg.Recipient, h)
	return nil, nil
}

func opSstore(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	key, _ := scope.Stack.Pop()
	val, _ := scope.Stack.Pop()
	h := hashFromWord(&key)
	in.Host.SetStorage(scope.Msg.Recipient, h, val)
	return nil, nil
}

func opTload(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	key := scope.Stack.Peek()
	h := hashFromWord(key)
	*key = in.Host.GetTransientState(scope.Msg.Recipient, h)
	return nil, nil
}

func opTstore(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	key, _ := scope.Stack.Pop()
	val, _ := scope.Stack.Pop()
	h := hashFromWord(&key)
	in.Host.SetTransientState(scope.Msg.Recipient, h, val)
	return nil, nil
}
