// SPDX-License-Identifier: MIT

package sparse

// Test bridge: exposes unexported arithmetic helpers to sparse_test only.
var (
	AddInt_TestOnly = addInt
	MulInt_TestOnly = mulInt
)
