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

// errReturnDataOutOfBounds is returned by RETURNDATACOPY when the
// requested range extends past the most recent sub-call's output,
// which EVM semantics treat as a hard failure rather than a
// zero-padded read (unlike CALLDATACOPY/CODECOPY).
var errReturnDataOutOfBounds = baseerrors.New("returndata out of bounds")

// addressFromWord extracts the low 20 bytes of w as a host.Address, the
// form every opcode that takes an address operand off the stack uses.
func addressFromWord(w *word.Word) host.Address {
	b := w.Bytes32()
	var a host.Address
	copy(a[:], b[12:])
	return a
}
