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

// Package vmlog is the interpreter's opcode-trace logger: a leveled,
// logrus-backed root logger with New(ctx...) child loggers, trimmed
// down to what a standalone interpreter needs (no file rotation, no
// node config wiring — just a root handle cmd/evmrun and Interpreter's
// Trace hook can write through).
package vmlog

import (
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Lvl is a log verbosity level, ordered least to most verbose.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

var levelNames = [...]string{
	LvlCrit:  "crit",
	LvlError: "error",
	LvlWarn:  "warn",
	LvlInfo:  "info",
	LvlDebug: "debug",
	LvlTrace: "trace",
}

// Logger writes key/value pairs at a given level, carrying a fixed
// context that is prepended to every call made through it.
type Logger interface {
	New(ctx ...interface{}) Logger
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

type logger struct {
	ctx []interface{}
}

var backend = logrus.New()

func init() {
	backend.SetOutput(os.Stderr)
	backend.SetLevel(logrus.InfoLevel)
}

var root = &logger{}

var mapPool = sync.Pool{
	New: func() interface{} { return make(logrus.Fields, 4) },
}

// SetLevel sets the root logger's minimum emitted level.
func SetLevel(lvl Lvl) {
	switch lvl {
	case LvlCrit, LvlError:
		backend.SetLevel(logrus.ErrorLevel)
	case LvlWarn:
		backend.SetLevel(logrus.WarnLevel)
	case LvlInfo:
		backend.SetLevel(logrus.InfoLevel)
	case LvlDebug:
		backend.SetLevel(logrus.DebugLevel)
	case LvlTrace:
		backend.SetLevel(logrus.TraceLevel)
	}
}

// Root returns the root logger.
func Root() Logger { return root }

// New returns a new Logger carrying ctx, a convenience alias for
// Root().New(ctx...).
func New(ctx ...interface{}) Logger { return root.New(ctx...) }

func (l *logger) New(ctx ...interface{}) Logger {
	child := make([]interface{}, 0, len(l.ctx)+len(ctx))
	child = append(child, l.ctx...)
	child = append(child, ctx...)
	return &logger{ctx: child}
}

func (l *logger) write(lvl Lvl, msg string, ctx []interface{}) {
	fields := mapPool.Get().(logrus.Fields)
	defer func() {
		for k := range fields {
			delete(fields, k)
		}
		mapPool.Put(fields)
	}()

	all := append(append([]interface{}{}, l.ctx...), ctx...)
	for i := 0; i+1 < len(all); i += 2 {
		key, ok := all[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", all[i])
		}
		fields[key] = all[i+1]
	}

	entry := backend.WithFields(fields)
	switch lvl {
	case LvlCrit:
		entry.Error(msg)
	case LvlError:
		entry.Error(msg)
	case LvlWarn:
		entry.Warn(msg)
	case LvlInfo:
		entry.Info(msg)
	case LvlDebug:
		entry.Debug(msg)
	case LvlTrace:
		entry.Trace(msg)
	}
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(LvlTrace, msg, ctx) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(LvlDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(LvlInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(LvlWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(LvlError, msg, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{})  { l.write(LvlCrit, msg, ctx) }

// String renders lvl's name, or "unknown" if out of range.
func (lvl Lvl) String() string {
	if lvl < LvlCrit || int(lvl) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[lvl]
}
