// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package diag

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	err := New(CyclicDependency, "x", "reached again through %s", "y")
	require.True(t, errors.Is(err, ErrCyclicDependency))
	require.False(t, errors.Is(err, ErrMalformedRow))

	wrapped := errors.Wrap(err, "compiling")
	require.True(t, errors.Is(wrapped, ErrCyclicDependency))
}

func TestErrorMessage(t *testing.T) {
	err := Wrap(IO, "in.blif", io.ErrUnexpectedEOF)
	assert.Equal(t, `i/o error "in.blif": unexpected EOF`, err.Error())
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))

	err = New(UnsupportedConstruct, ".latch", "statement skipped")
	assert.Equal(t, `unsupported construct ".latch": statement skipped`, err.Error())
}

func TestRecoverable(t *testing.T) {
	for _, tc := range []struct {
		k    Kind
		want bool
	}{
		{UnsupportedConstruct, true},
		{MalformedRow, true},
		{ClauseCount, true},
		{CyclicDependency, false},
		{IO, false},
		{UnknownVariable, false},
	} {
		assert.Equal(t, tc.want, Recoverable(New(tc.k, "s", "")), tc.k.String())
	}
	assert.False(t, Recoverable(io.EOF))
}
