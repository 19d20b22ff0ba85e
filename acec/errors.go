// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package acec

import "fmt"

// InvariantError is the value of panics raised when reconstruction meets a
// structure it does not support or an internal inconsistency.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("acec %s: %s", e.Op, e.Msg)
}

func fatalf(op, format string, args ...interface{}) {
	panic(&InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
