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

package extsort

import "sort"

// StableArgsort returns a permutation p such that labels[p[0..]] is
// non-decreasing and, for equal labels, original relative order is
// preserved — the precondition group_median and group_fillna_indexer
// both depend on ("caller reverses it for bfill").
func StableArgsort(labels []int) []int {
	p := make([]int, len(labels))
	for i := range p {
		p[i] = i
	}
	sort.SliceStable(p, func(a, b int) bool {
		return labels[p[a]] < labels[p[b]]
	})
	return p
}
