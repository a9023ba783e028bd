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

// Package gas implements the gas meter and the static/dynamic cost
// tables the interpreter charges against it.
package gas

// Static per-opcode costs, named the way go-ethereum's core/vm/gas.go
// names them.
const (
	GasQuickStep   uint64 = 2
	GasFastestStep uint64 = 3
	GasFastStep    uint64 = 5
	GasMidStep     uint64 = 8
	GasSlowStep    uint64 = 10
	GasExtStep     uint64 = 20

	Zero        uint64 = 0
	Jumpdest    uint64 = 1
	Blockhash   uint64 = 20
	ExpByte     uint64 = 50
	Memory      uint64 = 3
	Keccak256   uint64 = 30
	Keccak256Word uint64 = 6
	CopyWord    uint64 = 3
	CreateData  uint64 = 200
	Log         uint64 = 375
	LogData     uint64 = 8
	LogTopic    uint64 = 375
	Create      uint64 = 32000
	Call        uint64 = 700
	CallValue   uint64 = 9000
	CallStipend uint64 = 2300
	NewAccount  uint64 = 25000
	SelfdestructRefund uint64 = 24000

	// SloadGasFrontier is the pre-Tangerine-Whistle SLOAD cost.
	SloadGasFrontier uint64 = 50

	// EIP-2929 access-list costs.
	ColdAccountAccessCost uint64 = 2600
	ColdSloadCost         uint64 = 2100
	WarmStorageReadCost   uint64 = 100

	// EIP-2200 / EIP-3529 SSTORE costs.
	SstoreSetGas    uint64 = 20000
	SstoreResetGas  uint64 = 5000 - ColdSloadCost
	SstoreClearsScheduleRefund uint64 = 4800

	// EIP-3860 initcode metering.
	InitCodeWordGas uint64 = 2
	MaxInitCodeSize int    = 2 * MaxCodeSize

	// MaxCodeSize is the EIP-170 contract size limit.
	MaxCodeSize = 24576
)
