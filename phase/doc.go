// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package phase assigns signs to the slots of adders by propagating carry
// phases down adder chains, and checks the result.
package phase
