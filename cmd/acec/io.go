// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/acec/aig/aiger"
)

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error {
	return r.close()
}

// path2Reader opens p, decompressing by the suffix of the file p resolves
// to.  "-" is stdin.
func path2Reader(p string) (io.ReadCloser, error) {
	if p == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	p, err := filepath.EvalSymlinks(p)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(p, ".gz"):
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{Reader: r, close: func() error {
			r.Close()
			return f.Close()
		}}, nil
	case strings.HasSuffix(p, ".bz2"):
		return &readCloser{Reader: bzip2.NewReader(f), close: f.Close}, nil
	}
	return f, nil
}

func readAiger(p string) (*aiger.T, error) {
	r, err := path2Reader(p)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", p)
	}
	defer r.Close()
	a, err := aiger.Read(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", p)
	}
	return a, nil
}
