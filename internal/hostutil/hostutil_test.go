// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package hostutil

import (
	"testing"

	"github.com/n42blockchain/evmcore/internal/host"
	"github.com/n42blockchain/evmcore/internal/word"
)

func newTestState() *State {
	return NewState(host.TxContext{}, host.BlockContext{GasLimit: 30_000_000})
}

func TestSetAndGetBalance(t *testing.T) {
	s := newTestState()
	addr := host.Address{1}
	s.SetBalance(addr, word.FromUint64(100))

	if !s.AccountExists(addr) {
		t.Fatalf("SetBalance should create the account")
	}
	bal := s.GetBalance(addr)
	if bal.Uint64() != 100 {
		t.Errorf("GetBalance = %d, want 100", bal.Uint64())
	}
}

func TestSetStorageClassification(t *testing.T) {
	s := newTestState()
	addr := host.Address{2}
	key := host.Hash{1}

	if status := s.SetStorage(addr, key, word.FromUint64(5)); status != host.StorageAdded {
		t.Errorf("first write status = %v, want StorageAdded", status)
	}
	if status := s.SetStorage(addr, key, word.FromUint64(5)); status != host.StorageAssigned {
		t.Errorf("same-value rewrite status = %v, want StorageAssigned", status)
	}
	if status := s.SetStorage(addr, key, word.Zero); status != host.StorageDeleted {
		t.Errorf("zeroing status = %v, want StorageDeleted", status)
	}
}

func TestCommittedStorageSurvivesDirtyWrites(t *testing.T) {
	s := newTestState()
	addr := host.Address{3}
	key := host.Hash{1}
	s.SetStorageInitial(addr, key, word.FromUint64(7))

	s.SetStorage(addr, key, word.FromUint64(9))

	committed := s.GetCommittedStorage(addr, key)
	if committed.Uint64() != 7 {
		t.Errorf("SetStorageInitial seeded value was overwritten by SetStorage's own bookkeeping: got %d, want 7", committed.Uint64())
	}
}

func TestAccessAccountColdThenWarm(t *testing.T) {
	s := newTestState()
	addr := host.Address{4}

	if status := s.AccessAccount(addr); status != host.ColdAccess {
		t.Errorf("first access = %v, want ColdAccess", status)
	}
	if status := s.AccessAccount(addr); status != host.WarmAccess {
		t.Errorf("second access = %v, want WarmAccess", status)
	}
}

func TestAccessStorageColdThenWarm(t *testing.T) {
	s := newTestState()
	addr := host.Address{5}
	key := host.Hash{9}

	if status := s.AccessStorage(addr, key); status != host.ColdAccess {
		t.Errorf("first access = %v, want ColdAccess", status)
	}
	if status := s.AccessStorage(addr, key); status != host.WarmAccess {
		t.Errorf("second access = %v, want WarmAccess", status)
	}
}

func TestTransientStateIsolatedFromStorage(t *testing.T) {
	s := newTestState()
	addr := host.Address{6}
	key := host.Hash{1}

	s.SetTransientState(addr, key, word.FromUint64(42))
	if got := s.GetTransientState(addr, key); got.Uint64() != 42 {
		t.Errorf("GetTransientState = %d, want 42", got.Uint64())
	}
	if got := s.GetStorage(addr, key); !got.IsZero() {
		t.Errorf("transient write leaked into persistent storage: got %d", got.Uint64())
	}
}

func TestCreateDerivesDistinctAddresses(t *testing.T) {
	s := newTestState()
	sender := host.Address{7}

	r1, err := s.Call(host.CallParameter{Kind: host.Create, Sender: sender, Input: []byte{0x60, 0x00}})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	r2, err := s.Call(host.CallParameter{Kind: host.Create, Sender: sender, Input: []byte{0x60, 0x01}})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if r1.CreatedAddr == r2.CreatedAddr {
		t.Errorf("two CREATEs from the same sender produced the same address: %x", r1.CreatedAddr)
	}
	if len(s.Calls) != 2 {
		t.Errorf("Calls recorded %d entries, want 2", len(s.Calls))
	}
}

func TestSelfDestructMovesBalanceAndClearsCode(t *testing.T) {
	s := newTestState()
	addr := host.Address{8}
	beneficiary := host.Address{9}
	s.SetBalance(addr, word.FromUint64(50))
	s.SetCode(addr, []byte{0x00})

	if ok := s.SelfDestruct(addr, beneficiary); !ok {
		t.Fatalf("SelfDestruct returned false")
	}
	if bal := s.GetBalance(beneficiary); bal.Uint64() != 50 {
		t.Errorf("beneficiary balance = %d, want 50", bal.Uint64())
	}
	if bal := s.GetBalance(addr); !bal.IsZero() {
		t.Errorf("self-destructed account balance = %d, want 0", bal.Uint64())
	}
	if len(s.GetCode(addr)) != 0 {
		t.Errorf("self-destructed account still has code")
	}
}

func TestKeccak256MatchesCodeHash(t *testing.T) {
	s := newTestState()
	addr := host.Address{10}
	code := []byte{0x60, 0x01, 0x60, 0x02, 0x01}
	s.SetCode(addr, code)

	if s.GetCodeHash(addr) != s.Keccak256(code) {
		t.Errorf("GetCodeHash does not match Keccak256(code)")
	}
}

func TestBlockHash(t *testing.T) {
	s := newTestState()
	h := host.Hash{0xAA}
	s.SetBlockHash(10, h)
	if got := s.GetBlockHash(10); got != h {
		t.Errorf("GetBlockHash(10) = %x, want %x", got, h)
	}
	if got := s.GetBlockHash(11); got != (host.Hash{}) {
		t.Errorf("GetBlockHash(11) = %x, want zero hash", got)
	}
}

var _ host.Host = (*State)(nil)
