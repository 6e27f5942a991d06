// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package diag defines the kinds of errors reported while compiling netlists
// and clause lists.
//
// Some kinds are recovered by the parsers, which keep scanning and return
// them as diagnostics; the others abort a run.  Every error carries the
// offending token, variable or gate name as its subject.
package diag

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Kind classifies an Error.
type Kind int

const (
	IO Kind = iota
	UnsupportedConstruct
	MalformedRow
	InconsistentRowLength
	InconsistentOutputBit
	UnknownVariable
	CyclicDependency
	DuplicateGate
	UndefinedSignal
	BadVariableID
	MalformedPreamble
	MalformedClause
	ClauseCount
	Engine
)

var kindNames = [...]string{
	IO:                    "i/o error",
	UnsupportedConstruct:  "unsupported construct",
	MalformedRow:          "malformed row",
	InconsistentRowLength: "inconsistent row length",
	InconsistentOutputBit: "inconsistent output bit",
	UnknownVariable:       "unknown variable",
	CyclicDependency:      "cyclic dependency",
	DuplicateGate:         "gate multiply defined",
	UndefinedSignal:       "undefined signal",
	BadVariableID:         "bad variable id",
	MalformedPreamble:     "malformed preamble",
	MalformedClause:       "malformed clause",
	ClauseCount:           "clause count mismatch",
	Engine:                "decision diagram engine error",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error is a classified error about a named subject.
type Error struct {
	Kind    Kind
	Subject string // offending token, variable or gate
	Detail  string
	Err     error // underlying cause, may be nil
}

// Sentinels for use with errors.Is.
var (
	ErrIO                    = &Error{Kind: IO}
	ErrUnsupportedConstruct  = &Error{Kind: UnsupportedConstruct}
	ErrMalformedRow          = &Error{Kind: MalformedRow}
	ErrInconsistentRowLength = &Error{Kind: InconsistentRowLength}
	ErrInconsistentOutputBit = &Error{Kind: InconsistentOutputBit}
	ErrUnknownVariable       = &Error{Kind: UnknownVariable}
	ErrCyclicDependency      = &Error{Kind: CyclicDependency}
	ErrDuplicateGate         = &Error{Kind: DuplicateGate}
	ErrUndefinedSignal       = &Error{Kind: UndefinedSignal}
	ErrBadVariableID         = &Error{Kind: BadVariableID}
	ErrMalformedPreamble     = &Error{Kind: MalformedPreamble}
	ErrMalformedClause       = &Error{Kind: MalformedClause}
	ErrClauseCount           = &Error{Kind: ClauseCount}
	ErrEngine                = &Error{Kind: Engine}
)

// New returns an Error of kind k about subject.
func New(k Kind, subject, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Subject: subject, Detail: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error of kind k about subject caused by err.
func Wrap(k Kind, subject string, err error) *Error {
	return &Error{Kind: k, Subject: subject, Err: err}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Subject != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Subject)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Subject == "" && t.Detail == "" && t.Err == nil && t.Kind == e.Kind
}

// Recoverable reports whether err is of a kind which the parsers may
// report without aborting.  Whether they do depends on strictness.
func Recoverable(err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	switch e.Kind {
	case UnsupportedConstruct, MalformedRow, InconsistentRowLength,
		InconsistentOutputBit, DuplicateGate, UndefinedSignal, ClauseCount:
		return true
	}
	return false
}

// Logger returns log, or a logger discarding everything if log is nil.
func Logger(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}
	l := logrus.New()
	l.Out = io.Discard
	return l
}
