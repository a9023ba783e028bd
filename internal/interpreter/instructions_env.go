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

func opAddress(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(scope.Msg.Recipient.Word()))
}

func opBalance(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	addr := scope.Stack.Peek()
	a := addressFromWord(addr)
	*addr = in.Host.GetBalance(a)
	return nil, nil
}

func opOrigin(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(in.Host.GetTxContext().Origin.Word()))
}

func opCaller(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(scope.Msg.Sender.Word()))
}

func opCallValue(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(scope.Msg.Value))
}

func opCallDataLoad(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	offset := scope.Stack.Peek()
	off, overflow := offset.Uint64WithOverflow()
	if overflow || off >= uint64(len(scope.Msg.Input)) {
		*offset = word.Zero
		return nil, nil
	}
	var b [32]byte
	n := copy(b[:], scope.Msg.Input[off:])
	_ = n
	*offset = word.FromBytes32(b)
	return nil, nil
}

func opCallDataSize(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(word.FromUint64(uint64(len(scope.Msg.Input)))))
}

func opCallDataCopy(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	memOffset, _ := scope.Stack.Pop()
	dataOffset, _ := scope.Stack.Pop()
	size, _ := scope.Stack.Pop()
	mOff, _ := memOffset.Uint64WithOverflow()
	sz, _ := size.Uint64WithOverflow()
	data := getDataBounded(scope.Msg.Input, &dataOffset, sz)
	scope.Memory.Set(mOff, sz, data)
	return nil, nil
}

func opCodeSize(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(word.FromUint64(uint64(len(scope.Code)))))
}

func opCodeCopy(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	memOffset, _ := scope.Stack.Pop()
	codeOffset, _ := scope.Stack.Pop()
	size, _ := scope.Stack.Pop()
	mOff, _ := memOffset.Uint64WithOverflow()
	sz, _ := size.Uint64WithOverflow()
	data := getDataBounded(scope.Code, &codeOffset, sz)
	scope.Memory.Set(mOff, sz, data)
	return nil, nil
}

func opGasPrice(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(in.Host.GetTxContext().GasPrice))
}

func opExtCodeSize(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	addr := scope.Stack.Peek()
	a := addressFromWord(addr)
	*addr = word.FromUint64(uint64(in.Host.GetCodeSize(a)))
	return nil, nil
}

func opExtCodeCopy(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	addrW, _ := scope.Stack.Pop()
	memOffset, _ := scope.Stack.Pop()
	codeOffset, _ := scope.Stack.Pop()
	size, _ := scope.Stack.Pop()
	a := addressFromWord(&addrW)
	mOff, _ := memOffset.Uint64WithOverflow()
	sz, _ := size.Uint64WithOverflow()
	code := in.Host.GetCode(a)
	data := getDataBounded(code, &codeOffset, sz)
	scope.Memory.Set(mOff, sz, data)
	return nil, nil
}

func opExtCodeHash(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	addr := scope.Stack.Peek()
	a := addressFromWord(addr)
	if !in.Host.AccountExists(a) {
		*addr = word.Zero
		return nil, nil
	}
	*addr = in.Host.GetCodeHash(a).Word()
	return nil, nil
}

func opReturnDataSize(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(word.FromUint64(uint64(len(in.ReturnData)))))
}

func opReturnDataCopy(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	memOffset, _ := scope.Stack.Pop()
	dataOffset, _ := scope.Stack.Pop()
	size, _ := scope.Stack.Pop()
	mOff, _ := memOffset.Uint64WithOverflow()
	dOff, overflow := dataOffset.Uint64WithOverflow()
	sz, _ := size.Uint64WithOverflow()
	if overflow || dOff+sz > uint64(len(in.ReturnData)) {
		return nil, errReturnDataOutOfBounds
	}
	scope.Memory.Set(mOff, sz, in.ReturnData[dOff:dOff+sz])
	return nil, nil
}

func opSelfBalance(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(in.Host.GetBalance(scope.Msg.Recipient)))
}

func opChainID(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(in.Host.GetBlockContext().ChainID))
}

// getDataBounded returns size bytes of data starting at offset,
// zero-padded on the right past the end, matching CALLDATACOPY/
// CODECOPY/EXTCODECOPY's "reads past end are zero" behavior. offset is
// consumed as a full word so a huge offset value safely yields all
// zero bytes instead of wrapping through a truncated index.
func getDataBounded(data []byte, offset *word.Word, size uint64) []byte {
	off, overflow := offset.Uint64WithOverflow()
	if overflow || off >= uint64(len(data)) {
		return make([]byte, size)
	}
	end := off + size
	if end > uint64(len(data)) || end < off {
		end = uint64(len(data))
	}
	out := make([]byte, size)
	copy(out, data[off:end])
	return out
}
