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
	"github.com/n42blockchain/evmcore/internal/word"
)

var errGasOverflow = baseerrors.ErrGasUintOverflow

// gasMemoryExpansionOnly is used by operations whose entire dynamic
// cost is the generic memory-expansion charge the dispatch loop
// already applies from memorySize; they have nothing to add.
func gasMemoryExpansionOnly(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	return 0, nil
}

var gasMemoryExpansion = gasMemoryExpansionOnly

func gasExp(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	exp := scope.Stack.Back(1)
	return gas.ExpGas(exp.ExpByteLen())
}

func gasKeccak256(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	size := scope.Stack.Back(1)
	sz, _ := size.Uint64WithOverflow()
	words := (sz + 31) / 32
	cost, overflow := gas.SafeMul(words, gas.Keccak256Word)
	if overflow {
		return 0, errGasOverflow
	}
	return cost, nil
}

func copyWordGas(size uint64) (uint64, error) {
	words := (size + 31) / 32
	cost, overflow := gas.SafeMul(words, gas.CopyWord)
	if overflow {
		return 0, errGasOverflow
	}
	return cost, nil
}

func gasCallDataCopy(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	sz, _ := scope.Stack.Back(2).Uint64WithOverflow()
	return copyWordGas(sz)
}

func gasCodeCopy(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	sz, _ := scope.Stack.Back(2).Uint64WithOverflow()
	return copyWordGas(sz)
}

func gasExtCodeCopy(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	sz, _ := scope.Stack.Back(3).Uint64WithOverflow()
	cost, err := copyWordGas(sz)
	if err != nil {
		return 0, err
	}
	total, overflow := gas.SafeAdd(cost, gas.GasExtStep)
	if overflow {
		return 0, errGasOverflow
	}
	return total, nil
}

func gasExtCodeCopyEIP2929(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	sz, _ := scope.Stack.Back(3).Uint64WithOverflow()
	cost, err := copyWordGas(sz)
	if err != nil {
		return 0, err
	}
	addr := addressFromWord(scope.Stack.Back(0))
	access, err := accessAccountGas(in, addr)
	if err != nil {
		return 0, err
	}
	total, overflow := gas.SafeAdd(cost, access)
	if overflow {
		return 0, errGasOverflow
	}
	return total, nil
}

func gasReturnDataCopy(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	sz, _ := scope.Stack.Back(2).Uint64WithOverflow()
	return copyWordGas(sz)
}

// gasSstoreFrontier implements the flat pre-Istanbul SSTORE cost: 20000
// to set a zero slot to non-zero, 5000 otherwise, with a 15000 refund
// on clearing a non-zero slot to zero.
func gasSstoreFrontier(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	key := scope.Stack.Back(0)
	val := scope.Stack.Back(1)
	h := hashFromWord(key)
	current := in.Host.GetStorage(scope.Msg.Recipient, h)
	if current.IsZero() && !val.IsZero() {
		return gas.SstoreSetGas, nil
	}
	if !current.IsZero() && val.IsZero() {
		in.Gas.AddRefund(15000)
	}
	return gas.SstoreResetGas + gas.ColdSloadCost, nil
}

// gasSstoreEIP2200 implements the EIP-2200 net-gas metering
// introduced in Istanbul (before EIP-2929's cold/warm surcharge).
func gasSstoreEIP2200(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	key := scope.Stack.Back(0)
	val := scope.Stack.Back(1)
	h := hashFromWord(key)
	current := in.Host.GetStorage(scope.Msg.Recipient, h)
	if current.Eq(val) {
		return gas.WarmStorageReadCost, nil
	}
	original := in.Host.GetCommittedStorage(scope.Msg.Recipient, h)
	if original.Eq(&current) {
		if original.IsZero() {
			return gas.SstoreSetGas, nil
		}
		if val.IsZero() {
			in.Gas.AddRefund(int64(gas.SstoreClearsScheduleRefund))
		}
		return gas.SstoreResetGas + gas.ColdSloadCost, nil
	}
	applyDirtyRefund(in, &original, &current, val)
	return gas.WarmStorageReadCost, nil
}

// gasSstoreEIP2929 layers the EIP-2929 cold-surcharge on top of the
// EIP-2200 net-gas rules (Berlin onward).
func gasSstoreEIP2929(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	key := scope.Stack.Back(0)
	val := scope.Stack.Back(1)
	h := hashFromWord(key)

	var coldSurcharge uint64
	if in.Host.AccessStorage(scope.Msg.Recipient, h) == host.ColdAccess {
		coldSurcharge = gas.ColdSloadCost
	}

	current := in.Host.GetStorage(scope.Msg.Recipient, h)
	if current.Eq(val) {
		return gas.WarmStorageReadCost + coldSurcharge, nil
	}
	original := in.Host.GetCommittedStorage(scope.Msg.Recipient, h)
	if original.Eq(&current) {
		if original.IsZero() {
			return gas.SstoreSetGas + coldSurcharge, nil
		}
		if val.IsZero() {
			in.Gas.AddRefund(int64(gas.SstoreClearsScheduleRefund))
		}
		return gas.SstoreResetGas - gas.ColdSloadCost + coldSurcharge, nil
	}
	applyDirtyRefund(in, &original, &current, val)
	return gas.WarmStorageReadCost + coldSurcharge, nil
}

// applyDirtyRefund applies the EIP-2200 refund adjustments for the
// case where the slot already differs from its original (committed)
// value — restoring a slot to its original value, or re-clearing one
// that was already cleared this transaction, each adjust the refund
// counter rather than the gas charged.
func applyDirtyRefund(in *Interpreter, original, current, val *word.Word) {
	if !original.IsZero() {
		if current.IsZero() {
			in.Gas.SubRefund(int64(gas.SstoreClearsScheduleRefund))
		}
		if val.IsZero() {
			in.Gas.AddRefund(int64(gas.SstoreClearsScheduleRefund))
		}
	}
	if original.Eq(val) {
		if original.IsZero() {
			in.Gas.AddRefund(int64(gas.SstoreSetGas - gas.WarmStorageReadCost))
		} else {
			in.Gas.AddRefund(int64(gas.SstoreResetGas - gas.ColdSloadCost - gas.WarmStorageReadCost))
		}
	}
}

// accessAccountGas charges the EIP-2929 cold-account surcharge the
// first time addr is touched in a transaction, and nothing on
// subsequent (warm) touches.
func accessAccountGas(in *Interpreter, addr host.Address) (uint64, error) {
	if in.Host.AccessAccount(addr) == host.ColdAccess {
		return gas.ColdAccountAccessCost, nil
	}
	return gas.WarmStorageReadCost, nil
}

// gasEIP2929AccountCheck grounds BALANCE/EXTCODESIZE/EXTCODEHASH's
// Berlin-onward cost: a cold or warm account-access charge replaces
// their flat pre-Berlin constantGas entirely.
func gasEIP2929AccountCheck(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	addr := addressFromWord(scope.Stack.Back(0))
	return accessAccountGas(in, addr)
}

func gasSloadEIP2929(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	key := scope.Stack.Back(0)
	h := hashFromWord(key)
	if in.Host.AccessStorage(scope.Msg.Recipient, h) == host.ColdAccess {
		return gas.ColdSloadCost, nil
	}
	return gas.WarmStorageReadCost, nil
}

// callValueStipend returns the positive-value-transfer surcharge CALL
// and CALLCODE add on top of their base cost, per the static gas table.
func callValueStipend(value *word.Word, newAccount bool) uint64 {
	if value.IsZero() {
		return 0
	}
	cost := gas.CallValue
	if newAccount {
		cost += gas.NewAccount
	}
	return cost
}

func gasCall(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	addr := addressFromWord(scope.Stack.Back(1))
	value := scope.Stack.Back(2)
	newAccount := !in.Host.AccountExists(addr)
	return callValueStipend(value, newAccount), nil
}

func gasCallCode(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	value := scope.Stack.Back(2)
	return callValueStipend(value, false), nil
}

func gasDelegateCall(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	return 0, nil
}

func gasStaticCall(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	return 0, nil
}

func gasCallEIP2929(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	addr := addressFromWord(scope.Stack.Back(1))
	access, err := accessAccountGas(in, addr)
	if err != nil {
		return 0, err
	}
	value := scope.Stack.Back(2)
	newAccount := !in.Host.AccountExists(addr)
	total, overflow := gas.SafeAdd(access, callValueStipend(value, newAccount))
	if overflow {
		return 0, errGasOverflow
	}
	return total, nil
}

func gasCallCodeEIP2929(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	addr := addressFromWord(scope.Stack.Back(1))
	access, err := accessAccountGas(in, addr)
	if err != nil {
		return 0, err
	}
	value := scope.Stack.Back(2)
	total, overflow := gas.SafeAdd(access, callValueStipend(value, false))
	if overflow {
		return 0, errGasOverflow
	}
	return total, nil
}

func gasDelegateCallEIP2929(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	addr := addressFromWord(scope.Stack.Back(1))
	return accessAccountGas(in, addr)
}

func gasStaticCallEIP2929(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	addr := addressFromWord(scope.Stack.Back(1))
	return accessAccountGas(in, addr)
}

func gasCreate(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	size := scope.Stack.Back(2)
	sz, _ := size.Uint64WithOverflow()
	return initCodeWordGas(sz)
}

func gasCreate2(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	size := scope.Stack.Back(2)
	sz, _ := size.Uint64WithOverflow()
	wordCost, overflow := gas.SafeMul((sz+31)/32, gas.Keccak256Word)
	if overflow {
		return 0, errGasOverflow
	}
	initCost, err := initCodeWordGas(sz)
	if err != nil {
		return 0, err
	}
	total, overflow := gas.SafeAdd(wordCost, initCost)
	if overflow {
		return 0, errGasOverflow
	}
	return total, nil
}

// initCodeWordGas charges the EIP-3860 per-word initcode cost.
func initCodeWordGas(size uint64) (uint64, error) {
	words := (size + 31) / 32
	cost, overflow := gas.SafeMul(words, gas.InitCodeWordGas)
	if overflow {
		return 0, errGasOverflow
	}
	return cost, nil
}

func gasMcopy(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	size := scope.Stack.Back(2)
	sz, _ := size.Uint64WithOverflow()
	return copyWordGas(sz)
}

// makeGasLog returns LOGn's dynamic-gas formula: a flat per-log charge
// plus a per-byte data charge plus a per-topic charge, all additional
// to the generic memory-expansion charge.
func makeGasLog(n int) func(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	return func(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
		size := scope.Stack.Back(1)
		sz, overflow := size.Uint64WithOverflow()
		if overflow {
			return 0, errGasOverflow
		}
		dataCost, overflow := gas.SafeMul(sz, gas.LogData)
		if overflow {
			return 0, errGasOverflow
		}
		topicCost, overflow := gas.SafeMul(uint64(n), gas.LogTopic)
		if overflow {
			return 0, errGasOverflow
		}
		total, overflow := gas.SafeAdd(gas.Log, dataCost)
		if overflow {
			return 0, errGasOverflow
		}
		total, overflow = gas.SafeAdd(total, topicCost)
		if overflow {
			return 0, errGasOverflow
		}
		return total, nil
	}
}

func gasSelfdestruct(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	return 0, nil
}

func gasSelfdestructEIP2929(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	beneficiary := addressFromWord(scope.Stack.Back(0))
	if in.Host.AccessAccount(beneficiary) == host.ColdAccess {
		return gas.ColdAccountAccessCost, nil
	}
	return 0, nil
}

// gasSelfdestructEIP3529 adds the new-account surcharge for
// self-destructing into a beneficiary with no prior account, on top
// of the EIP-2929 access charge; EIP-3529 (London) removed the
// self-destruct gas refund but left this surcharge in place.
func gasSelfdestructEIP3529(in *Interpreter, scope *ScopeContext, memorySize uint64) (uint64, error) {
	beneficiary := addressFromWord(scope.Stack.Back(0))
	access, err := gasSelfdestructEIP2929(in, scope, memorySize)
	if err != nil {
		return 0, err
	}
	balance := in.Host.GetBalance(scope.Msg.Recipient)
	if balance.IsZero() || in.Host.AccountExists(beneficiary) {
		return access, nil
	}
	total, overflow := gas.SafeAdd(access, gas.NewAccount)
	if overflow {
		return 0, errGasOverflow
	}
	return total, nil
}

// gasSelfdestructEIP6780 is identical to the EIP-3529 formula; EIP-6780
// (Cancun) restricts SELFDESTRUCT's *effect* (only actually destroys an
// account created earlier in the same transaction) without changing its
// gas cost, so this is a named alias kept distinct for clarity at the
// call site in enableCancun.
var gasSelfdestructEIP6780 = gasSelfdestructEIP3529
