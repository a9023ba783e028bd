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

// Package errors defines the sentinel errors the interpreter core can
// fail with. This is a centralized location for error definitions to
// ensure consistency and avoid duplication across packages.
package errors

import (
	"errors"
	"fmt"
)

// =====================
// Stack Errors
// =====================

var (
	// ErrStackOverflow is returned when a push would exceed the stack's
	// maximum depth.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is returned when an operation needs more
	// elements than the stack currently holds.
	ErrStackUnderflow = errors.New("stack underflow")
)

// =====================
// Memory Errors
// =====================

var (
	// ErrMemoryLimitExceeded is returned when an access would grow
	// memory past the implementation's configured ceiling.
	ErrMemoryLimitExceeded = errors.New("memory limit exceeded")
)

// =====================
// Gas Errors
// =====================

var (
	// ErrOutOfGas is returned when a charge would take the meter below
	// zero.
	ErrOutOfGas = errors.New("out of gas")

	// ErrGasUintOverflow is returned when a gas computation would
	// overflow the signed 64-bit gas counter.
	ErrGasUintOverflow = errors.New("gas uint64 overflow")
)

// =====================
// Control Flow Errors
// =====================

var (
	// ErrInvalidJump is returned when JUMP/JUMPI targets a destination
	// that is not a JUMPDEST, or that falls outside the code, or that
	// falls inside PUSH immediate data.
	ErrInvalidJump = errors.New("invalid jump destination")

	// ErrInvalidOpcode is returned when the byte at the program counter
	// does not decode to any opcode defined for the active revision.
	ErrInvalidOpcode = errors.New("invalid opcode")

	// ErrExecutionReverted is returned when a REVERT instruction
	// executes. It carries no gas-refund and propagates returndata.
	ErrExecutionReverted = errors.New("execution reverted")
)

// =====================
// Call/Create Errors
// =====================

var (
	// ErrDepthLimit is returned when a CALL/CREATE would exceed the
	// maximum call-stack depth.
	ErrDepthLimit = errors.New("max call depth exceeded")

	// ErrInsufficientBalance is returned when a CALL/CREATE transfers
	// more value than the caller's balance holds.
	ErrInsufficientBalance = errors.New("insufficient balance for transfer")

	// ErrContractAddressCollision is returned when CREATE/CREATE2 would
	// deploy to an address that already holds code or a non-zero nonce.
	ErrContractAddressCollision = errors.New("contract address collision")

	// ErrMaxCodeSizeExceeded is returned when the code returned from a
	// CREATE/CREATE2 init code run exceeds the maximum contract size.
	ErrMaxCodeSizeExceeded = errors.New("max code size exceeded")

	// ErrMaxInitCodeSizeExceeded is returned when CREATE/CREATE2 init
	// code itself exceeds the maximum permitted size (EIP-3860).
	ErrMaxInitCodeSizeExceeded = errors.New("max initcode size exceeded")

	// ErrInvalidCode is returned when CREATE/CREATE2 deployed code
	// starts with the EIP-3541 reserved 0xEF prefix.
	ErrInvalidCode = errors.New("invalid code: must not begin with 0xef")

	// ErrWriteProtection is returned when a state-modifying opcode
	// executes within a STATICCALL context.
	ErrWriteProtection = errors.New("write protection")
)

// =====================
// Helper Functions
// =====================

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Errorf formats according to a format specifier and returns the string
// as a value that satisfies error.
func Errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}
