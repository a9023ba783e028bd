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
	baseerrors "github.com/n42blockchain/evmcore/internal/errors"
	"github.com/n42blockchain/evmcore/internal/gas"
	"github.com/n42blockchain/evmcore/internal/host"
	"github.com/n42blockchain/evmcore/internal/jumpdest"
	"github.com/n42blockchain/evmcore/internal/memory"
	"github.com/n42blockchain/evmcore/internal/revision"
	"github.com/n42blockchain/evmcore/internal/stack"
	"github.com/n42blockchain/evmcore/internal/word"
)

// StepStatus classifies how an Execute call returned.
type StepStatus int

const (
	Running StepStatus = iota
	Stopped
	Returned
	Reverted
	Failed
)

func (s StepStatus) String() string {
	switch s {
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	case Returned:
		return "Returned"
	case Reverted:
		return "Reverted"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// StatusCode is the broader EVM status code attached to a Result.
type StatusCode int

const (
	Success StatusCode = iota
	Failure
	OutOfGas
	StackUnderflow
	StackOverflow
	BadJumpDestination
	InvalidInstruction
	InternalError
	ExecutionReverted
)

func (c StatusCode) String() string {
	switch c {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case OutOfGas:
		return "OutOfGas"
	case StackUnderflow:
		return "StackUnderflow"
	case StackOverflow:
		return "StackOverflow"
	case BadJumpDestination:
		return "BadJumpDestination"
	case InvalidInstruction:
		return "InvalidInstruction"
	case InternalError:
		return "InternalError"
	case ExecutionReverted:
		return "ExecutionReverted"
	default:
		return "Unknown"
	}
}

// Config holds the interpreter-level knobs an embedder may set for a
// single Execute call: whether to emit opcode trace events, and which
// experimental EIPs to layer on. It is threaded through ResumeState
// rather than Execute's own parameter list, since it is scoped to one
// call the same way the rest of the resume tuple is.
type Config struct {
	Debug       bool
	Tracer      func(pc uint64, op OpCode, gasLeft int64)
	NoRecursion bool
	ExtraEips   []int
}

// ResumeState is the mutable call-frame state threaded into and out of
// Execute, letting a driver pause mid-frame and resume step-at-a-time.
// A zero ResumeState starts a fresh frame at pc 0 with fresh stack and
// memory.
type ResumeState struct {
	PC                 uint64
	GasRefund          int64
	Stack              *stack.Stack
	Memory             *memory.Memory
	LastCallReturnData []byte
	Dests              *jumpdest.Destinations
	Config             Config
}

// Result packages everything a single Execute call reports back to the
// driver, per spec.md §6's exit-packaging contract.
type Result struct {
	StepStatus StepStatus
	Status     StatusCode
	Revision   revision.Revision
	PC         uint64
	GasLeft    int64
	GasRefund  int64
	Output     []byte
	Stack      []word.Word
	Memory     []byte

	// LastCallReturnData is the most recent sub-call's return data,
	// consumed by RETURNDATASIZE/RETURNDATACOPY and carried forward
	// across a resumed call via ResumeState.LastCallReturnData.
	LastCallReturnData []byte
}

// Execute runs code starting from resume's state under revision rev,
// for at most stepBudget opcodes (a step_budget of zero performs no
// steps and returns the input state unchanged; a negative stepBudget
// runs to completion). It returns once the frame halts, reverts, fails,
// or the step budget is exhausted; a Running result's Stack/Memory/PC
// can be fed back into ResumeState to continue.
func Execute(rev revision.Revision, code []byte, msg host.Message, h host.Host, resume ResumeState, stepBudget int) (Result, error) {
	jt := GetJumpTable(rev)
	latest := GetJumpTable(revision.Latest)

	st := resume.Stack
	if st == nil {
		st = stack.New()
	}
	mem := resume.Memory
	if mem == nil {
		mem = memory.NewMemory()
	}
	var dests jumpdest.Destinations
	if resume.Dests != nil {
		dests = *resume.Dests
	} else {
		dests = jumpdest.Analyze(code)
	}

	in := &Interpreter{
		Host:       h,
		Revision:   rev,
		Gas:        gas.NewMeter(msg.Gas),
		ReadOnly:   msg.Static,
		ReturnData: resume.LastCallReturnData,
	}
	in.Gas.SetRefund(resume.GasRefund)
	if resume.Config.Debug && resume.Config.Tracer != nil {
		in.Trace = resume.Config.Tracer
	}

	scope := &ScopeContext{
		Stack:  st,
		Memory: mem,
		Code:   code,
		Dests:  dests,
		Msg:    msg,
	}

	pc := resume.PC

	if stepBudget == 0 {
		return packResult(Running, Success, in, scope, pc, nil), nil
	}

	for steps := 0; stepBudget < 0 || steps < stepBudget; steps++ {
		if pc >= uint64(len(code)) {
			return packResult(Stopped, Success, in, scope, pc, nil), nil
		}

		op := OpCode(code[pc])
		entry := jt[op]
		if entry == nil {
			if latest[op] != nil {
				return packResult(Failed, InternalError, in, scope, pc, nil), nil
			}
			return packResult(Failed, InvalidInstruction, in, scope, pc, nil), nil
		}

		if in.Trace != nil {
			in.Trace(pc, op, in.Gas.Left())
		}

		if in.ReadOnly && entry.writes {
			return packResult(Failed, InternalError, in, scope, pc, nil), nil
		}

		if entry.constantGas > 0 {
			if err := in.Gas.Charge(entry.constantGas); err != nil {
				return packResult(Failed, OutOfGas, in, scope, pc, nil), nil
			}
		}

		l := scope.Stack.Len()
		if l < entry.minStack() {
			return packResult(Failed, StackUnderflow, in, scope, pc, nil), nil
		}
		if l > entry.maxStack() {
			return packResult(Failed, StackOverflow, in, scope, pc, nil), nil
		}

		var memSize uint64
		if entry.memorySize != nil {
			size, overflow := entry.memorySize(scope)
			if overflow {
				return packResult(Failed, OutOfGas, in, scope, pc, nil), nil
			}
			if size > 0 {
				newMemSize := gas.WordSize(size) * 32
				if newMemSize > uint64(scope.Memory.Len()) {
					cost, err := gas.MemoryGasCost(newMemSize)
					if err != nil {
						return packResult(Failed, OutOfGas, in, scope, pc, nil), nil
					}
					delta := cost - scope.Memory.LastGasCost()
					if err := in.Gas.Charge(delta); err != nil {
						return packResult(Failed, OutOfGas, in, scope, pc, nil), nil
					}
					scope.Memory.SetLastGasCost(cost)
					scope.Memory.Resize(newMemSize)
				}
				memSize = newMemSize
			}
		}

		if entry.dynamicGas != nil {
			cost, err := entry.dynamicGas(in, scope, memSize)
			if err != nil {
				return packResult(Failed, OutOfGas, in, scope, pc, nil), nil
			}
			if cost > 0 {
				if err := in.Gas.Charge(cost); err != nil {
					return packResult(Failed, OutOfGas, in, scope, pc, nil), nil
				}
			}
		}

		savedPC := pc
		out, err := entry.execute(&pc, in, scope)
		if err != nil {
			return classifyError(err, out, in, scope, savedPC), nil
		}

		if entry.halts {
			switch {
			case entry.reverts:
				return packResult(Reverted, ExecutionReverted, in, scope, pc, out), nil
			case op == RETURN:
				return packResult(Returned, Success, in, scope, pc, out), nil
			default:
				return packResult(Stopped, Success, in, scope, pc, out), nil
			}
		}

		if !entry.jumps {
			pc++
		}
	}

	return packResult(Running, Success, in, scope, pc, nil), nil
}

// classifyError maps a sentinel error surfaced by an opcode body into
// the (StepStatus, StatusCode) pair the driver sees.
func classifyError(err error, out []byte, in *Interpreter, scope *ScopeContext, pc uint64) Result {
	switch {
	case baseerrors.Is(err, baseerrors.ErrExecutionReverted):
		return packResult(Reverted, ExecutionReverted, in, scope, pc, out)
	case baseerrors.Is(err, baseerrors.ErrOutOfGas), baseerrors.Is(err, baseerrors.ErrGasUintOverflow):
		return packResult(Failed, OutOfGas, in, scope, pc, nil)
	case baseerrors.Is(err, baseerrors.ErrStackUnderflow):
		return packResult(Failed, StackUnderflow, in, scope, pc, nil)
	case baseerrors.Is(err, baseerrors.ErrStackOverflow):
		return packResult(Failed, StackOverflow, in, scope, pc, nil)
	case baseerrors.Is(err, baseerrors.ErrInvalidJump):
		return packResult(Failed, BadJumpDestination, in, scope, pc, nil)
	case baseerrors.Is(err, baseerrors.ErrInvalidOpcode):
		return packResult(Failed, InvalidInstruction, in, scope, pc, nil)
	default:
		return packResult(Failed, InternalError, in, scope, pc, nil)
	}
}

// packResult assembles a Result from the interpreter's current state.
// The returned stack is top-first, reversed from its bottom-first
// internal storage, per spec.md §4.5's exit-packaging contract.
func packResult(step StepStatus, status StatusCode, in *Interpreter, scope *ScopeContext, pc uint64, output []byte) Result {
	return Result{
		StepStatus:         step,
		Status:             status,
		Revision:           in.Revision,
		PC:                 pc,
		GasLeft:            in.Gas.Left(),
		GasRefund:          in.Gas.Refund(),
		Output:             output,
		Stack:              reversedStack(scope.Stack),
		Memory:             scope.Memory.Data(),
		LastCallReturnData: in.ReturnData,
	}
}

func reversedStack(s *stack.Stack) []word.Word {
	data := s.Data()
	out := make([]word.Word, len(data))
	for i, v := range data {
		out[len(data)-1-i] = v
	}
	return out
}
