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
	"sort"

	"github.com/govalues/decimal"
)

// ObjNullCheck is the caller-provided null check §4.1 delegates to for
// the OBJ category: "delegated to a caller-provided null check."
type ObjNullCheck func(v decimal.Decimal) bool

// GroupSumDecimal implements §4.3's OBJ branch over
// github.com/govalues/decimal, grounded on the teacher's own
// DecimalAdd aggregate state (pkg/plan/aggr_funcs.go): plain
// accumulation, no Kahan compensation, and the first contribution is
// assigned rather than added to a zero value so that decimal scale
// tracking starts from the first real operand instead of an
// arbitrary zero-scale seed.
func GroupSumDecimal(values Matrix[decimal.Decimal], labels []int, isNull ObjNullCheck, out Matrix[decimal.Decimal], counts []int64, ngroups int, minCount int) error {
	if err := checkLengths(values.Rows, len(labels)); err != nil {
		return err
	}
	n, k := values.Rows, values.Cols
	nObs := make([]int, ngroups*k)
	sums := make([]decimal.Decimal, ngroups*k)
	assigned := make([]bool, ngroups*k)

	for i := 0; i < n; i++ {
		lab := labels[i]
		if lab < 0 {
			continue
		}
		counts[lab]++
		row := values.Row(i)
		for j := 0; j < k; j++ {
			v := row[j]
			if isNull != nil && isNull(v) {
				continue
			}
			idx := lab*k + j
			nObs[idx]++
			if !assigned[idx] {
				sums[idx] = v
				assigned[idx] = true
				continue
			}
			sum, err := sums[idx].Add(v)
			if err != nil {
				return err
			}
			sums[idx] = sum
		}
	}

	eff := effectiveMinCount(minCount, false)
	for gi := 0; gi < ngroups; gi++ {
		for j := 0; j < k; j++ {
			idx := gi*k + j
			if nObs[idx] < eff {
				out.Set(gi, j, decimal.Decimal{})
				continue
			}
			out.Set(gi, j, sums[idx])
		}
	}
	return nil
}

// GroupMedianDecimal implements §4.10's OBJ branch: per group, gather
// the non-null values of column 0 and take the middle order
// statistic(s) by plain comparison sort (decimal.Decimal has no
// meaningful quickselect pivot arithmetic the way float64 does, so
// this path sorts rather than reusing extsort.KthSmallest).
func GroupMedianDecimal(values Matrix[decimal.Decimal], labels []int, isNull ObjNullCheck, out Matrix[decimal.Decimal], ngroups int) error {
	if err := checkLengths(values.Rows, len(labels)); err != nil {
		return err
	}
	n := values.Rows
	buckets := make([][]decimal.Decimal, ngroups)
	for i := 0; i < n; i++ {
		lab := labels[i]
		if lab < 0 {
			continue
		}
		v := values.At(i, 0)
		if isNull != nil && isNull(v) {
			continue
		}
		buckets[lab] = append(buckets[lab], v)
	}
	for g := 0; g < ngroups; g++ {
		vs := buckets[g]
		if len(vs) == 0 {
			out.Set(g, 0, decimal.Decimal{})
			continue
		}
		sort.Slice(vs, func(a, b int) bool { return vs[a].Cmp(vs[b]) < 0 })
		m := len(vs)
		if m%2 == 1 {
			out.Set(g, 0, vs[m/2])
			continue
		}
		mid, err := vs[m/2-1].Add(vs[m/2])
		if err != nil {
			return err
		}
		two, err := decimal.New(2, 0)
		if err != nil {
			return err
		}
		half, err := mid.Quo(two)
		if err != nil {
			return err
		}
		out.Set(g, 0, half)
	}
	return nil
}
