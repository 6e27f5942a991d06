// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package lex splits netlist and clause list text into statement tokens.
//
// Each retained physical line contributes its whitespace separated words
// followed by the Newline token.  Comment lines and blank lines contribute
// nothing.  A line whose last word is a lone backslash is continued on the
// next retained line: neither the backslash nor the line's Newline appear
// in the output.
package lex

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/bddc/diag"
)

// Newline is the statement delimiter token.
const Newline = "\n"

// Continuation joins a line with the next one when it is the last word.
const Continuation = `\`

// Tokenize reads r to the end and returns its tokens.  Lines whose first
// non blank character starts one of the comment prefixes are dropped.
func Tokenize(r io.Reader, comments ...string) ([]string, error) {
	var toks []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || isComment(line, comments) {
			continue
		}
		words := strings.Fields(line)
		if words[len(words)-1] == Continuation {
			toks = append(toks, words[:len(words)-1]...)
			continue
		}
		toks = append(toks, words...)
		toks = append(toks, Newline)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	// a continuation on the last line still ends the statement.
	if n := len(toks); n > 0 && toks[n-1] != Newline {
		toks = append(toks, Newline)
	}
	return toks, nil
}

func isComment(line string, comments []string) bool {
	for _, c := range comments {
		if strings.HasPrefix(line, c) {
			return true
		}
	}
	return false
}

// ReadFile tokenizes the file at path.  The path "-" denotes standard input,
// and files ending in .gz or .bz2 are decompressed.  Failures are diag.IO
// errors carrying the path.
func ReadFile(path string, comments ...string) ([]string, error) {
	r, closer, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	toks, err := Tokenize(r, comments...)
	if err != nil {
		return nil, diag.Wrap(diag.IO, path, errors.Wrap(err, "read"))
	}
	return toks, nil
}

// Open opens path for reading as ReadFile does.  The returned closer must be
// closed by the caller.
func Open(path string) (io.Reader, io.Closer, error) {
	if path == "-" {
		return os.Stdin, io.NopCloser(nil), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, diag.Wrap(diag.IO, path, err)
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, diag.Wrap(diag.IO, path, err)
		}
		return r, f, nil
	case strings.HasSuffix(path, ".bz2"):
		return bzip2.NewReader(f), f, nil
	}
	return f, f, nil
}

// Base returns path with any compression suffix removed.
func Base(path string) string {
	for _, ext := range []string{".gz", ".bz2"} {
		if strings.HasSuffix(path, ext) {
			return path[:len(path)-len(ext)]
		}
	}
	return path
}
