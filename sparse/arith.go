// SPDX-License-Identifier: MIT

package sparse

import "math"

// addInt returns a+b. Under checked it reports ok=false instead of wrapping.
func addInt(a, b int, checked bool) (int, bool) {
	s := a + b
	if checked && ((a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0)) {
		return 0, false
	}

	return s, true
}

// mulInt returns a*b. Under checked it reports ok=false instead of wrapping.
func mulInt(a, b int, checked bool) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if !checked {
		return p, true
	}
	// MinInt * -1 wraps to MinInt and survives the division test, so catch it first.
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	if p/b != a {
		return 0, false
	}

	return p, true
}
