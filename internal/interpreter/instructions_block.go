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
	"github.com/n42blockchain/evmcore/internal/revision"
	"github.com/n42blockchain/evmcore/internal/word"
)

// opBlockHash implements the canonical 256-block lookback window
// (current-256 <= n < current), not the source's current+255 formula.
func opBlockHash(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	n := scope.Stack.Peek()
	current := in.Host.GetBlockContext().BlockNumber
	nn, overflow := n.Uint64WithOverflow()
	if overflow || current == 0 || nn >= current {
		*n = word.Zero
		return nil, nil
	}
	if current-nn > 256 {
		*n = word.Zero
		return nil, nil
	}
	*n = in.Host.GetBlockHash(int64(nn)).Word()
	return nil, nil
}

func opCoinbase(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(in.Host.GetBlockContext().Coinbase.Word()))
}

func opTimestamp(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(word.FromUint64(in.Host.GetBlockContext().Time)))
}

func opNumber(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(word.FromUint64(in.Host.GetBlockContext().BlockNumber)))
}

func opDifficulty(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	bc := in.Host.GetBlockContext()
	if in.Revision.AtLeast(revision.Shanghai) {
		return nil, scope.Stack.Push(wordPtr(bc.PrevRandao.Word()))
	}
	return nil, scope.Stack.Push(wordPtr(word.FromBig(bc.Difficulty)))
}

func opGasLimit(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(word.FromUint64(in.Host.GetBlockContext().GasLimit)))
}

func opBaseFee(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(in.Host.GetBlockContext().BaseFee))
}

func opBlobHash(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	idx := scope.Stack.Peek()
	hashes := in.Host.GetTxContext().BlobHashes
	i, overflow := idx.Uint64WithOverflow()
	if overflow || i >= uint64(len(hashes)) {
		*idx = word.Zero
		return nil, nil
	}
	*idx = hashes[i].Word()
	return nil, nil
}

func opBlobBaseFee(pc *uint64, in *Interpreter, scope *ScopeContext) ([]byte, error) {
	return nil, scope.Stack.Push(wordPtr(in.Host.GetTxContext().BlobBaseFee))
}
