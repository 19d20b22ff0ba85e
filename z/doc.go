// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z provides the node ids and literals shared by the network, the
// cut engine and the box reconstruction.
//
// A Var is a node id in an and-inverter graph.  Var 0 is the constant false
// node.  A Lit is a Var together with an inversion bit, packed as
//
//	lit = var<<1 | inverted
//
// so that the integer order of literals is the (id, polarity) order.
package z
