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

import "github.com/n42blockchain/evmcore/internal/host"

// makeLog returns the executor for LOGn: pop offset, size, then n
// topics (in stack order), and emit through the Host.
func makeLog(n int) executionFunc {
	return func(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
		offset, _ := scope.Stack.Pop()
		size, _ := scope.Stack.Pop()
		topics := make([]host.Hash, n)
		for i := 0; i < n; i++ {
			t, _ := scope.Stack.Pop()
			topics[i] = host.Hash(t.Bytes32())
		}
		off, _ := offset.Uint64WithOverflow()
		sz, _ := size.Uint64WithOverflow()
		data := scope.Memory.GetCopy(int64(off), int64(sz))
		in.Host.EmitLog(scope.Msg.Recipient, topics, data)
		return nil, nil
	}
}
