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
	"github.com/n42blockchain/evmcore/internal/gas"
	"github.com/n42blockchain/evmcore/internal/host"
	"github.com/n42blockchain/evmcore/internal/jumpdest"
	"github.com/n42blockchain/evmcore/internal/memory"
	"github.com/n42blockchain/evmcore/internal/revision"
	"github.com/n42blockchain/evmcore/internal/stack"
)

// Revision re-exports revision.Revision so call sites that only import
// this package do not also need to import internal/revision directly.
type Revision = revision.Revision

// ScopeContext groups the mutable state belonging to a single call
// frame's execution: its operand stack, its memory, the code it is
// running, and the message it was invoked with.
type ScopeContext struct {
	Stack  *stack.Stack
	Memory *memory.Memory
	Code   []byte
	Dests  jumpdest.Destinations
	Msg    host.Message
}

// Interpreter ties together a call frame's ScopeContext with the
// cross-cutting state threaded through every opcode: the active
// revision, the gas meter, the embedder's Host, whether this frame is
// static (STATICCALL), and the most recent sub-call's return data.
type Interpreter struct {
	Host     host.Host
	Revision Revision
	Gas      *gas.Meter
	ReadOnly bool

	// ReturnData is the output of the most recent CALL/CREATE family
	// sub-call, consumed by RETURNDATASIZE/RETURNDATACOPY.
	ReturnData []byte

	// Trace, if non-nil, is called with the opcode about to execute and
	// the pc it executes at, before gas is charged. It is purely an
	// observability hook; a nil Trace costs nothing.
	Trace func(pc uint64, op OpCode, gasLeft int64)
}
