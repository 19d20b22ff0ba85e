// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command acec reconstructs arithmetic boxes from AIGER circuits and
// compares them.
//
//	acec box [flags] file...     print the box of each file
//	acec cec [flags] a b         compare the boxes (and optionally outputs) of a and b
//	acec gen adder|mult n        write a generated circuit in AIGER format
//
// Input files may be gzip or bzip2 compressed ("-" is stdin).
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
