// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package extsort supplies the three external collaborators the
// aggregation kernels assume but never define themselves: a partial
// order-statistic selector, a stable label argsort, and a 1-D rank
// routine. None of them know anything about groups; pkg/kernel calls
// them once per group or once per column and interprets the result.
package extsort

import "cmp"

// KthSmallest returns the k-th smallest element (0-based) of a[:n] by
// Hoare-partition quickselect, reordering a[:n] in place. Average time
// O(n); the caller supplies n separately from len(a) so a can be a
// shared scratch buffer reused across groups with only its live
// prefix varying.
//
// Complexity: average O(n), worst case O(n^2) (no median-of-medians
// fallback — group sizes in this domain are not adversarial inputs).
func KthSmallest[T cmp.Ordered](a []T, k, n int) T {
	lo, hi := 0, n-1
	for lo < hi {
		p := partition(a, lo, hi)
		// Hoare partitioning only guarantees a[lo..p] <= pivot <=
		// a[p+1..hi], not that a[p] itself is the p-th order
		// statistic, so p can never be trusted as a return value
		// mid-recursion (that guarantee is Lomuto-only). Narrow the
		// bracket until lo==hi and return a[lo].
		if k <= p {
			hi = p
		} else {
			lo = p + 1
		}
	}
	return a[lo]
}

func partition[T cmp.Ordered](a []T, lo, hi int) int {
	mid := lo + (hi-lo)/2
	pivot := medianOfThree(a[lo], a[mid], a[hi])
	i, j := lo, hi
	for {
		for a[i] < pivot {
			i++
		}
		for a[j] > pivot {
			j--
		}
		if i >= j {
			return j
		}
		a[i], a[j] = a[j], a[i]
		i++
		j--
	}
}

func medianOfThree[T cmp.Ordered](a, b, c T) T {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		b = a
	}
	return b
}
