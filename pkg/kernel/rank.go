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

package kernel

import "github.com/groupkit/grouper/pkg/extsort"

// GroupRank implements §4.17: per column, delegate to extsort.Rank1D
// with group awareness, then copy its result into out. The only
// contract owned by this function is the per-column copy; the ranking
// logic itself lives in extsort.
func GroupRank(values Matrix[float64], labels []int, mask *Mask, out Matrix[float64], ascending bool, ties extsort.TiesMethod, naOption extsort.NAOption, pct bool) {
	n, k := values.Rows, values.Cols
	col := make([]float64, n)
	colMask := make([]bool, n)
	for j := 0; j < k; j++ {
		for i := 0; i < n; i++ {
			col[i] = values.At(i, j)
			colMask[i] = mask != nil && mask.Get(i, j)
		}
		ranks, _ := extsort.Rank1D(col, colMask, labels, ascending, ties, naOption, pct)
		for i := 0; i < n; i++ {
			out.Set(i, j, ranks[i])
		}
	}
}
