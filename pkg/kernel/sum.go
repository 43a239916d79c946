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

// GroupSum implements §4.3: Kahan-compensated running sum per (g,j),
// finalized with μ defaulting to 0 (effectiveMinCount with
// coerceToOne=false).
func GroupSum[T any](ops Ops[T], in ReduceInput[T], out ReduceOutput[T], minCount int) error {
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

	eff := effectiveMinCount(minCount, false)
	var firstErr error
	for gi := 0; gi < g; gi++ {
		for j := 0; j < k; j++ {
			idx := gi*k + j
			val := ops.Zero()
			if accs[idx].set {
				val = accs[idx].Sum
			}
			if err := finalizeCell(out.Out, out.ResultMask, ops, gi, j, nObs[idx], eff, val); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
