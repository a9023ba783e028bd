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

// Package host defines the boundary contract between the interpreter
// core and the embedder that supplies account state, the transaction
// and block context, and the sub-call/log/selfdestruct mechanics the
// core does not implement itself.
package host

import (
	"math/big"

	"github.com/n42blockchain/evmcore/internal/word"
)

// Address is a 20-byte account address.
type Address [20]byte

// Hash is a 32-byte hash (block hash, code hash, topic, storage key).
type Hash [32]byte

// CallKind identifies the flavor of a sub-call/create dispatched
// through Host.Call.
type CallKind int

const (
	Call CallKind = iota
	CallCode
	DelegateCall
	StaticCall
	Create
	Create2
)

// AccessStatus reports whether an account or storage slot access was
// cold (first touch this transaction, EIP-2929) or warm.
type AccessStatus bool

const (
	ColdAccess AccessStatus = false
	WarmAccess AccessStatus = true
)

// StorageStatus classifies the effect an SSTORE had on a slot, which
// the dynamic-gas/refund rules for SSTORE (EIP-2200/3529) key off of.
type StorageStatus int

const (
	StorageAssigned StorageStatus = iota
	StorageAdded
	StorageDeleted
	StorageModified
	StorageDeletedAdded
	StorageModifiedDeleted
	StorageDeletedRestored
	StorageAddedDeleted
	StorageModifiedRestored
)

// TxContext carries the fields of the enclosing transaction that are
// constant for the whole transaction (as opposed to BlockContext's
// block-scoped fields).
type TxContext struct {
	Origin      Address
	GasPrice    word.Word
	BlobHashes  []Hash
	BlobBaseFee word.Word
}

// BlockContext carries the fields of the enclosing block.
type BlockContext struct {
	Coinbase      Address
	GasLimit      uint64
	BlockNumber   uint64
	Time          uint64
	Difficulty    *big.Int
	BaseFee       word.Word
	PrevRandao    Hash
	ChainID       word.Word
	ExcessBlobGas uint64
}

// Message describes the current call frame, as handed to the
// interpreter by its driver. It is read-only from the interpreter's
// perspective.
type Message struct {
	Recipient Address
	Sender    Address
	Value     word.Word
	Input     []byte
	Gas       int64
	Kind      CallKind
	Depth     int32
	Static    bool
}

// CallParameter describes a sub-call or contract creation requested by
// CALL/CALLCODE/DELEGATECALL/STATICCALL/CREATE/CREATE2.
type CallParameter struct {
	Kind      CallKind
	Sender    Address
	Recipient Address
	Value     word.Word
	Input     []byte
	Gas       int64
	Salt      word.Word // CREATE2 only
	Static    bool
}

// CallResult is what a sub-call reports back to the interpreter.
type CallResult struct {
	Success      bool
	Output       []byte
	GasLeft      int64
	GasRefund    int64
	CreatedAddr  Address
}

// Host is the set of operations the interpreter delegates to its
// embedder: account and storage state, block/transaction context, and
// sub-call/create/log/selfdestruct mechanics. The core never implements
// any of these itself; it only calls through this interface so it can
// be embedded by drivers with very different state backends.
type Host interface {
	AccountExists(addr Address) bool
	GetBalance(addr Address) word.Word
	GetCodeSize(addr Address) int
	GetCodeHash(addr Address) Hash
	GetCode(addr Address) []byte

	GetStorage(addr Address, key Hash) word.Word
	SetStorage(addr Address, key Hash, value word.Word) StorageStatus
	GetCommittedStorage(addr Address, key Hash) word.Word

	GetTransientState(addr Address, key Hash) word.Word
	SetTransientState(addr Address, key Hash, value word.Word)

	GetTxContext() TxContext
	GetBlockContext() BlockContext
	GetBlockHash(number int64) Hash

	EmitLog(addr Address, topics []Hash, data []byte)

	Call(param CallParameter) (CallResult, error)
	SelfDestruct(addr Address, beneficiary Address) bool

	AccessAccount(addr Address) AccessStatus
	AccessStorage(addr Address, key Hash) AccessStatus

	Keccak256(data []byte) Hash
}

// BytesToAddress left-pads or truncates b to 20 bytes and returns the
// resulting Address (EVM addresses are the low 20 bytes of a word).
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > 20 {
		b = b[len(b)-20:]
	}
	copy(a[20-len(b):], b)
	return a
}

// Word returns addr reinterpreted as a zero-extended 256-bit word, the
// form pushed by ADDRESS/CALLER/ORIGIN/COINBASE and friends.
func (a Address) Word() word.Word {
	var b [32]byte
	copy(b[12:], a[:])
	return word.FromBytes32(b)
}

// Hash returns h as a word.Word, the form pushed by opcodes that read
// a hash onto the stack (BLOCKHASH, BLOBHASH, EXTCODEHASH, ...).
func (h Hash) Word() word.Word {
	return word.FromBytes32([32]byte(h))
}
