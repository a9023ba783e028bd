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
	"github.com/n42blockchain/evmcore/internal/host"
	"github.com/n42blockchain/evmcore/internal/word"
)

var errWriteProtectionCall = baseerrors.ErrWriteProtection

// callGas computes the gas forwarded to a sub-call: all that is
// requested, capped by what remains after reserving one 64th for the
// caller, per EIP-150. The requested amount is read with overflow
// treated as "ask for everything available".
func callGas(left int64, requested *word.Word) int64 {
	capped := left - left/64
	if r, overflow := requested.Uint64WithOverflow(); !overflow && int64(r) < capped {
		return int64(r)
	}
	return capped
}

func pushCallResult(scope *ScopeContext, success bool) error {
	v := boolWord(success)
	return scope.Stack.Push(&v)
}

func writeCallOutput(scope *ScopeContext, result host.CallResult, retOffset, retSize uint64) {
	n := retSize
	if uint64(len(result.Output)) < n {
		n = uint64(len(result.Output))
	}
	scope.Memory.Set(retOffset, n, result.Output[:n])
}

func opCall(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	gasReq, _ := scope.Stack.Pop()
	addrW, _ := scope.Stack.Pop()
	value, _ := scope.Stack.Pop()
	argsOffset, _ := scope.Stack.Pop()
	argsSize, _ := scope.Stack.Pop()
	retOffset, _ := scope.Stack.Pop()
	retSize, _ := scope.Stack.Pop()

	if in.ReadOnly && !value.IsZero() {
		return nil, errWriteProtectionCall
	}

	argOff, _ := argsOffset.Uint64WithOverflow()
	argSz, _ := argsSize.Uint64WithOverflow()
	retOff, _ := retOffset.Uint64WithOverflow()
	retSz, _ := retSize.Uint64WithOverflow()

	param := host.CallParameter{
		Kind:      host.Call,
		Sender:    scope.Msg.Recipient,
		Recipient: addressFromWord(&addrW),
		Value:     value,
		Input:     scope.Memory.GetCopy(int64(argOff), int64(argSz)),
		Gas:       callGas(in.Gas.Left(), &gasReq),
		Static:    in.ReadOnly,
	}
	result, err := in.Host.Call(param)
	if err != nil {
		return nil, err
	}
	in.ReturnData = result.Output
	writeCallOutput(scope, result, retOff, retSz)
	return nil, pushCallResult(scope, result.Success)
}

func opCallCode(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	gasReq, _ := scope.Stack.Pop()
	addrW, _ := scope.Stack.Pop()
	value, _ := scope.Stack.Pop()
	argsOffset, _ := scope.Stack.Pop()
	argsSize, _ := scope.Stack.Pop()
	retOffset, _ := scope.Stack.Pop()
	retSize, _ := scope.Stack.Pop()

	argOff, _ := argsOffset.Uint64WithOverflow()
	argSz, _ := argsSize.Uint64WithOverflow()
	retOff, _ := retOffset.Uint64WithOverflow()
	retSz, _ := retSize.Uint64WithOverflow()

	param := host.CallParameter{
		Kind:      host.CallCode,
		Sender:    scope.Msg.Recipient,
		Recipient: scope.Msg.Recipient,
		Value:     value,
		Input:     scope.Memory.GetCopy(int64(argOff), int64(argSz)),
		Gas:       callGas(in.Gas.Left(), &gasReq),
		Static:    in.ReadOnly,
	}
	_ = addressFromWord(&addrW) // the code address; toy Host.Call does not load foreign code
	result, err := in.Host.Call(param)
	if err != nil {
		return nil, err
	}
	in.ReturnData = result.Output
	writeCallOutput(scope, result, retOff, retSz)
	return nil, pushCallResult(scope, result.Success)
}

func opDelegateCall(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	gasReq, _ := scope.Stack.Pop()
	addrW, _ := scope.Stack.Pop()
	argsOffset, _ := scope.Stack.Pop()
	argsSize, _ := scope.Stack.Pop()
	retOffset, _ := scope.Stack.Pop()
	retSize, _ := scope.Stack.Pop()

	argOff, _ := argsOffset.Uint64WithOverflow()
	argSz, _ := argsSize.Uint64WithOverflow()
	retOff, _ := retOffset.Uint64WithOverflow()
	retSz, _ := retSize.Uint64WithOverflow()

	param := host.CallParameter{
		Kind:      host.DelegateCall,
		Sender:    scope.Msg.Sender,
		Recipient: scope.Msg.Recipient,
		Value:     scope.Msg.Value,
		Input:     scope.Memory.GetCopy(int64(argOff), int64(argSz)),
		Gas:       callGas(in.Gas.Left(), &gasReq),
		Static:    in.ReadOnly,
	}
	_ = addressFromWord(&addrW)
	result, err := in.Host.Call(param)
	if err != nil {
		return nil, err
	}
	in.ReturnData = result.Output
	writeCallOutput(scope, result, retOff, retSz)
	return nil, pushCallResult(scope, result.Success)
}

func opStaticCall(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	gasReq, _ := scope.Stack.Pop()
	addrW, _ := scope.Stack.Pop()
	argsOffset, _ := scope.Stack.Pop()
	argsSize, _ := scope.Stack.Pop()
	retOffset, _ := scope.Stack.Pop()
	retSize, _ := scope.Stack.Pop()

	argOff, _ := argsOffset.Uint64WithOverflow()
	argSz, _ := argsSize.Uint64WithOverflow()
	retOff, _ := retOffset.Uint64WithOverflow()
	retSz, _ := retSize.Uint64WithOverflow()

	param := host.CallParameter{
		Kind:      host.StaticCall,
		Sender:    scope.Msg.Recipient,
		Recipient: addressFromWord(&addrW),
		Input:     scope.Memory.GetCopy(int64(argOff), int64(argSz)),
		Gas:       callGas(in.Gas.Left(), &gasReq),
		Static:    true,
	}
	result, err := in.Host.Call(param)
	if err != nil {
		return nil, err
	}
	in.ReturnData = result.Output
	writeCallOutput(scope, result, retOff, retSz)
	return nil, pushCallResult(scope, result.Success)
}

func opCreate(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	if in.ReadOnly {
		return nil, errWriteProtectionCall
	}
	value, _ := scope.Stack.Pop()
	offset, _ := scope.Stack.Pop()
	size, _ := scope.Stack.Pop()
	off, _ := offset.Uint64WithOverflow()
	sz, _ := size.Uint64WithOverflow()

	param := host.CallParameter{
		Kind:   host.Create,
		Sender: scope.Msg.Recipient,
		Value:  value,
		Input:  scope.Memory.GetCopy(int64(off), int64(sz)),
		Gas:    callGas(in.Gas.Left(), wordPtr(word.FromUint64(uint64(in.Gas.Left())))),
	}
	result, err := in.Host.Call(param)
	if err != nil {
		return nil, err
	}
	in.ReturnData = result.Output
	if !result.Success {
		return nil, scope.Stack.Push(wordPtr(word.Zero))
	}
	return nil, scope.Stack.Push(wordPtr(result.CreatedAddr.Word()))
}

func opCreate2(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	if in.ReadOnly {
		return nil, errWriteProtectionCall
	}
	value, _ := scope.Stack.Pop()
	offset, _ := scope.Stack.Pop()
	size, _ := scope.Stack.Pop()
	salt, _ := scope.Stack.Pop()
	off, _ := offset.Uint64WithOverflow()
	sz, _ := size.Uint64WithOverflow()

	param := host.CallParameter{
		Kind:   host.Create2,
		Sender: scope.Msg.Recipient,
		Value:  value,
		Input:  scope.Memory.GetCopy(int64(off), int64(sz)),
		Salt:   salt,
		Gas:    callGas(in.Gas.Left(), wordPtr(word.FromUint64(uint64(in.Gas.Left())))),
	}
	result, err := in.Host.Call(param)
	if err != nil {
		return nil, err
	}
	in.ReturnData = result.Output
	if !result.Success {
		return nil, scope.Stack.Push(wordPtr(word.Zero))
	}
	return nil, scope.Stack.Push(wordPtr(result.CreatedAddr.Word()))
}

func opSelfdestruct(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	if in.ReadOnly {
		return nil, errWriteProtectionCall
	}
	beneficiary, _ := scope.Stack.Pop()
	in.Host.SelfDestruct(scope.Msg.Recipient, addressFromWord(&beneficiary))
	return nil, nil
}
