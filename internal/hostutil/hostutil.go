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

// Package hostutil provides a minimal in-memory host.Host
// implementation, enough to drive the interpreter end-to-end in tests
// and in the standalone evmrun command. It is not meant to back a real
// node: there is no persistence, no real sub-call execution, and
// access-list tracking resets only via NewState.
package hostutil

import (
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/n42blockchain/evmcore/internal/host"
	"github.com/n42blockchain/evmcore/internal/word"
)

type account struct {
	balance word.Word
	code    []byte
	storage map[[32]byte]word.Word

	// committed holds each slot's value as of the start of the call,
	// the baseline SetStorage's EIP-2200 net-gas metering compares
	// against. It is seeded lazily from storage on a slot's first
	// SetStorage, or explicitly via SetStorageInitial.
	committed map[[32]byte]word.Word
}

// State is a toy in-memory implementation of host.Host.
type State struct {
	accounts map[host.Address]*account
	transient map[[52]byte]word.Word
	blockHashes map[int64]host.Hash
	txCtx    host.TxContext
	blockCtx host.BlockContext

	warmAccounts map[host.Address]bool
	warmStorage  map[[52]byte]bool

	logs []Log

	// Calls records every sub-call dispatched through Call, for
	// assertions in tests; it does not affect execution.
	Calls []host.CallParameter
}

// Log is a toy record of an emitted event.
type Log struct {
	Address host.Address
	Topics  []host.Hash
	Data    []byte
}

// NewState returns an empty State with the given transaction and block
// context.
func NewState(tx host.TxContext, block host.BlockContext) *State {
	return &State{
		accounts:     make(map[host.Address]*account),
		transient:    make(map[[52]byte]word.Word),
		blockHashes:  make(map[int64]host.Hash),
		txCtx:        tx,
		blockCtx:     block,
		warmAccounts: make(map[host.Address]bool),
		warmStorage:  make(map[[52]byte]bool),
	}
}

func (s *State) get(addr host.Address) *account {
	a, ok := s.accounts[addr]
	if !ok {
		a = &account{
			storage:   make(map[[32]byte]word.Word),
			committed: make(map[[32]byte]word.Word),
		}
		s.accounts[addr] = a
	}
	return a
}

// SetBalance sets addr's balance, creating the account if needed. It is
// a setup helper for tests, not part of host.Host.
func (s *State) SetBalance(addr host.Address, bal word.Word) {
	s.get(addr).balance = bal
}

// SetCode sets addr's code, creating the account if needed.
func (s *State) SetCode(addr host.Address, code []byte) {
	s.get(addr).code = code
}

// SetStorageInitial seeds addr's storage without going through
// SetStorage's status-classification logic, used to establish the
// "committed" state a test scenario starts from.
func (s *State) SetStorageInitial(addr host.Address, key host.Hash, val word.Word) {
	acct := s.get(addr)
	acct.storage[[32]byte(key)] = val
	acct.committed[[32]byte(key)] = val
}

// SetBlockHash registers the hash returned for a given block number.
func (s *State) SetBlockHash(number int64, h host.Hash) {
	s.blockHashes[number] = h
}

func storageKey(addr host.Address, key host.Hash) [52]byte {
	var k [52]byte
	copy(k[:20], addr[:])
	copy(k[20:], key[:])
	return k
}

func (s *State) AccountExists(addr host.Address) bool {
	_, ok := s.accounts[addr]
	return ok
}

func (s *State) GetBalance(addr host.Address) word.Word {
	return s.get(addr).balance
}

func (s *State) GetCodeSize(addr host.Address) int {
	return len(s.get(addr).code)
}

func (s *State) GetCodeHash(addr host.Address) host.Hash {
	return s.Keccak256(s.get(addr).code)
}

func (s *State) GetCode(addr host.Address) []byte {
	return s.get(addr).code
}

func (s *State) GetStorage(addr host.Address, key host.Hash) word.Word {
	return s.get(addr).storage[[32]byte(key)]
}

func (s *State) GetCommittedStorage(addr host.Address, key host.Hash) word.Word {
	return s.get(addr).committed[[32]byte(key)]
}

func (s *State) SetStorage(addr host.Address, key host.Hash, value word.Word) host.StorageStatus {
	acct := s.get(addr)
	k := [32]byte(key)
	if _, seeded := acct.committed[k]; !seeded {
		acct.committed[k] = acct.storage[k]
	}
	old := acct.storage[k]
	acct.storage[k] = value
	switch {
	case old.Eq(&value):
		return host.StorageAssigned
	case old.IsZero():
		return host.StorageAdded
	case value.IsZero():
		return host.StorageDeleted
	default:
		return host.StorageModified
	}
}

func (s *State) GetTransientState(addr host.Address, key host.Hash) word.Word {
	return s.transient[storageKey(addr, key)]
}

func (s *State) SetTransientState(addr host.Address, key host.Hash, value word.Word) {
	s.transient[storageKey(addr, key)] = value
}

func (s *State) GetTxContext() host.TxContext       { return s.txCtx }
func (s *State) GetBlockContext() host.BlockContext { return s.blockCtx }

func (s *State) GetBlockHash(number int64) host.Hash {
	return s.blockHashes[number]
}

func (s *State) EmitLog(addr host.Address, topics []host.Hash, data []byte) {
	s.logs = append(s.logs, Log{Address: addr, Topics: topics, Data: data})
}

// Logs returns every log emitted so far, for test assertions.
func (s *State) Logs() []Log { return s.logs }

// Call is a toy sub-call stub: it records the call and reports a
// trivial success with no output. Real sub-call execution (recursing
// into the interpreter) is the embedder's responsibility; this package
// only exists to let the core's own tests exercise the CALL family's
// gas and stack effects.
func (s *State) Call(param host.CallParameter) (host.CallResult, error) {
	s.Calls = append(s.Calls, param)
	if param.Kind == host.Create || param.Kind == host.Create2 {
		addr := deriveCreateAddress(param.Sender, len(s.Calls))
		s.get(addr).code = param.Input
		return host.CallResult{Success: true, GasLeft: param.Gas, CreatedAddr: addr}, nil
	}
	return host.CallResult{Success: true, GasLeft: param.Gas}, nil
}

func deriveCreateAddress(sender host.Address, nonce int) host.Address {
	h := sha3.NewLegacyKeccak256()
	h.Write(sender[:])
	h.Write(big.NewInt(int64(nonce)).Bytes())
	sum := h.Sum(nil)
	return host.BytesToAddress(sum)
}

func (s *State) SelfDestruct(addr, beneficiary host.Address) bool {
	acct := s.get(addr)
	s.get(beneficiary).balance.Add(&s.get(beneficiary).balance, &acct.balance)
	acct.balance = word.Zero
	acct.code = nil
	return true
}

func (s *State) AccessAccount(addr host.Address) host.AccessStatus {
	if s.warmAccounts[addr] {
		return host.WarmAccess
	}
	s.warmAccounts[addr] = true
	return host.ColdAccess
}

func (s *State) AccessStorage(addr host.Address, key host.Hash) host.AccessStatus {
	k := storageKey(addr, key)
	if s.warmStorage[k] {
		return host.WarmAccess
	}
	s.warmStorage[k] = true
	return host.ColdAccess
}

func (s *State) Keccak256(data []byte) host.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out host.Hash
	copy(out[:], h.Sum(nil))
	return out
}

var _ host.Host = (*State)(nil)
