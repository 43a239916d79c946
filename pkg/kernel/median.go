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

import (
	"math"

	"github.com/groupkit/grouper/pkg/extsort"
)

// GroupMedian implements §4.10. For each column, rows are gathered by
// group into a contiguous scratch span (via a stable argsort of
// labels, per the teacher's preference for index-based windows over
// raw pointer arithmetic — §9's "mutation through a raw cursor"
// re-architecting note) so extsort.KthSmallest can partition each
// group's span in place without disturbing other groups.
func GroupMedian(values Matrix[float64], labels []int, mask *Mask, out Matrix[float64], ngroups int) error {
	if err := checkLengths(values.Rows, len(labels)); err != nil {
		return err
	}
	n, k := values.Rows, values.Cols
	perm := extsort.StableArgsort(labels)

	for j := 0; j < k; j++ {
		// groupStart[g] / groupLen[g] bound this column's live rows
		// for group g within the shared perm ordering.
		groupStart := make([]int, ngroups)
		groupLen := make([]int, ngroups)
		scratch := make([]float64, 0, n)

		cur := -2
		for _, row := range perm {
			lab := labels[row]
			if lab < 0 {
				continue
			}
			v := values.At(row, j)
			if mask != nil && mask.Get(row, j) {
				continue
			}
			if v != v {
				continue
			}
			if lab != cur {
				groupStart[lab] = len(scratch)
				cur = lab
			}
			scratch = append(scratch, v)
			groupLen[lab]++
		}

		for g := 0; g < ngroups; g++ {
			m := groupLen[g]
			if m == 0 {
				out.Set(g, j, math.NaN())
				continue
			}
			span := scratch[groupStart[g] : groupStart[g]+m]
			if m%2 == 1 {
				out.Set(g, j, extsort.KthSmallest(span, m/2, m))
				continue
			}
			lo := extsort.KthSmallest(span, m/2-1, m)
			// lo has partitioned span so every element <= pivot sits
			// before it; re-select the upper middle over the tail.
			hi := minOf(span[m/2:])
			out.Set(g, j, (lo+hi)/2)
		}
	}
	return nil
}

func minOf(a []float64) float64 {
	m := a[0]
	for _, v := range a[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
