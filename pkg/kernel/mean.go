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

// GroupMean implements §4.5: Kahan sum over non-NA contributions,
// finalized as S/N_obs. μ is fixed at "require >= 1" regardless of the
// caller's minCount argument, per the -1-sentinel note in §4.5 — the
// exported entry point simply never applies the caller's minCount.
//
// For the I64 datetime-like category the division truncates towards
// zero, matching the distilled scenario 2: an integer mean column.
func GroupMean[T any](ops Ops[T], in ReduceInput[T], out ReduceOutput[T]) error {
	if err := checkLengths(in.Values.Rows, len(in.Labels)); err != nil {
		return err
	}
	n, k := in.Values.Rows, in.Values.Cols
	g := out.NGroups()

	nObs := make([]int, g*k)
	accs := make([]KahanAcc[T], g*k)

	for i := 0; i < n; i++ {
		lab := in.Labels[i]
		if lab < 0 {
			continue
		}
		out.Counts[lab]++
		row := in.Values.Row(i)
		for j := 0; j < k; j++ {
			v := row[j]
			if IsNA(v, ops, in.IsDatetimelike, in.Mask, i, j) {
				continue
			}
			idx := lab*k + j
			nObs[idx]++
			accs[idx].Add(v, ops)
		}
	}

	var firstErr error
	for gi := 0; gi < g; gi++ {
		for j := 0; j < k; j++ {
			idx := gi*k + j
			n := nObs[idx]
			var val T
			if n > 0 {
				val = meanValue(ops, accs[idx].Sum, n)
			}
			if err := finalizeCell(out.Out, out.ResultMask, ops, gi, j, n, 1, val); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// meanValue divides the accumulated sum by n in the category's own
// arithmetic: for I64 this truncates per the integer-mean scenario,
// for floats it is ordinary floating division.
func meanValue[T any](ops Ops[T], sum T, n int) T {
	if ops.Category() == CatI64 {
		return ops.FromFloat64(float64(int64(ops.ToFloat64(sum)) / int64(n)))
	}
	return ops.FromFloat64(ops.ToFloat64(sum) / float64(n))
}
