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

// Command evmrun drives internal/interpreter's Execute loop against a
// hex-encoded bytecode and calldata pair, printing the packaged Result.
// It is a standalone harness, not a node: state comes from
// internal/hostutil's toy in-memory Host.
package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/n42blockchain/evmcore/internal/host"
	"github.com/n42blockchain/evmcore/internal/hostutil"
	"github.com/n42blockchain/evmcore/internal/interpreter"
	"github.com/n42blockchain/evmcore/internal/revision"
	"github.com/n42blockchain/evmcore/internal/vmlog"
	"github.com/n42blockchain/evmcore/internal/word"
)

const usageText = `evmrun [options]

Run a sequence of EVM bytecode against a throwaway in-memory state and
print the resulting status, gas, stack and return data.

Examples:
  evmrun --code 600160020100          # PUSH1 1 PUSH1 2 ADD STOP
  evmrun --code 60010160015500 --gas 50000 --revision istanbul`

var revisionNames = map[string]revision.Revision{
	"frontier":         revision.Frontier,
	"homestead":        revision.Homestead,
	"tangerinewhistle": revision.TangerineWhistle,
	"spuriousdragon":   revision.SpuriousDragon,
	"byzantium":        revision.Byzantium,
	"constantinople":   revision.Constantinople,
	"petersburg":       revision.Petersburg,
	"istanbul":         revision.Istanbul,
	"berlin":           revision.Berlin,
	"london":           revision.London,
	"shanghai":         revision.Shanghai,
	"cancun":           revision.Cancun,
}

func main() {
	app := &cli.App{
		Name:      "evmrun",
		Usage:     "standalone EVM bytecode runner",
		UsageText: usageText,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "code", Usage: "hex-encoded bytecode to execute (0x prefix optional)", Required: true},
			&cli.StringFlag{Name: "input", Usage: "hex-encoded calldata"},
			&cli.StringFlag{Name: "value", Usage: "call value in wei, decimal"},
			&cli.Int64Flag{Name: "gas", Usage: "gas available to the call", Value: 10_000_000},
			&cli.StringFlag{Name: "revision", Usage: "fork revision (frontier..cancun)", Value: "cancun"},
			&cli.BoolFlag{Name: "trace", Usage: "log each executed opcode"},
			&cli.StringFlag{Name: "sender", Usage: "hex-encoded sender address", Value: "0x1111111111111111111111111111111111111111"},
			&cli.StringFlag{Name: "to", Usage: "hex-encoded recipient address", Value: "0x2222222222222222222222222222222222222222"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "evmrun: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	rev, ok := revisionNames[strings.ToLower(c.String("revision"))]
	if !ok {
		return fmt.Errorf("unknown revision %q", c.String("revision"))
	}

	code, err := decodeHex(c.String("code"))
	if err != nil {
		return fmt.Errorf("--code: %w", err)
	}
	input, err := decodeHex(c.String("input"))
	if err != nil {
		return fmt.Errorf("--input: %w", err)
	}

	sender := host.BytesToAddress(mustDecodeHex(c.String("sender")))
	recipient := host.BytesToAddress(mustDecodeHex(c.String("to")))

	value := word.Word{}
	if v := c.String("value"); v != "" {
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return fmt.Errorf("--value: invalid decimal %q", v)
		}
		value = word.FromBig(n)
	}

	state := hostutil.NewState(host.TxContext{Origin: sender}, host.BlockContext{
		Coinbase:    recipient,
		GasLimit:    uint64(c.Int64("gas")),
		BlockNumber: 1,
		Time:        0,
		ChainID:     word.FromUint64(1),
	})

	msg := host.Message{
		Recipient: recipient,
		Sender:    sender,
		Value:     value,
		Input:     input,
		Gas:       c.Int64("gas"),
		Kind:      host.Call,
	}

	cfg := interpreter.Config{}
	log := vmlog.New("cmd", "evmrun")
	if c.Bool("trace") {
		vmlog.SetLevel(vmlog.LvlDebug)
		cfg.Debug = true
		cfg.Tracer = func(pc uint64, op interpreter.OpCode, gasLeft int64) {
			log.Debug("step", "pc", pc, "op", op, "gasLeft", gasLeft)
		}
	}

	result, err := interpreter.Execute(rev, code, msg, state, interpreter.ResumeState{Config: cfg}, -1)
	if err != nil {
		return err
	}

	fmt.Printf("step:   %s\n", result.StepStatus)
	fmt.Printf("status: %s\n", result.Status)
	fmt.Printf("pc:     %d\n", result.PC)
	fmt.Printf("gas:    left=%d refund=%d\n", result.GasLeft, result.GasRefund)
	fmt.Printf("output: 0x%s\n", hex.EncodeToString(result.Output))
	fmt.Printf("stack (top first):\n")
	for i, w := range result.Stack {
		fmt.Printf("  [%d] %s\n", i, w.String())
	}
	return nil
}

func decodeHex(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

func mustDecodeHex(s string) []byte {
	b, err := decodeHex(s)
	if err != nil {
		return nil
	}
	return b
}
