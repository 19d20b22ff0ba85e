// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec

import (
	"github.com/go-air/acec/cut"
	"github.com/go-air/acec/z"
)

// FindXorRoots returns the xor outputs which are not operands of any xor,
// in order of first appearance in xors.
func FindXorRoots(n int, xors []cut.Xor) []z.Var {
	ins := MapXorOperands(n, xors)
	seen := make([]bool, n)
	var roots []z.Var
	for i := range xors {
		o := xors[i].Out
		if ins[o] || seen[o] {
			continue
		}
		seen[o] = true
		roots = append(roots, o)
	}
	return roots
}
