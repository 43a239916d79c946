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

// GroupCumMinMax implements §4.14's CLEAN/SEEN_NA latch (§4.14's
// "State machines" subsection): once a (g,j) cell has seen an NA under
// skipna=false, every later row in that group for that column reports
// NA regardless of its own value.
//
// The source's in-place mutation of the caller's input mask at NA
// propagation points (§5, §9) is deliberately NOT reproduced here —
// per §9's open question this module resolves it in favor of the safe
// redesign: only resultMask (if supplied) is written, the caller's
// in.Mask is read-only exactly as every other kernel in this package
// treats it. See the design ledger for the rationale.
func GroupCumMinMax[T any](ops Ops[T], in ReduceInput[T], out Matrix[T], resultMask *Mask, ngroups int, skipna, computeMax bool) error {
	if err := checkLengths(in.Values.Rows, len(in.Labels)); err != nil {
		return err
	}
	n, k := in.Values.Rows, in.Values.Cols
	seed := ops.MaxValue()
	if computeMax {
		seed = ops.MinValue()
	}
	extrema := make([]T, ngroups*k)
	for i := range extrema {
		extrema[i] = seed
	}
	seenNA := make([]bool, ngroups*k)
	naVal, _ := ops.NAValue()

	for i := 0; i < n; i++ {
		lab := in.Labels[i]
		if lab < 0 {
			continue
		}
		row := in.Values.Row(i)
		for j := 0; j < k; j++ {
			idx := lab*k + j
			if !skipna && seenNA[idx] {
				out.Set(i, j, naVal)
				if resultMask != nil {
					resultMask.Set(i, j, true)
				}
				continue
			}
			v := row[j]
			if IsNA(v, ops, in.IsDatetimelike, in.Mask, i, j) {
				seenNA[idx] = true
				out.Set(i, j, naVal)
				if resultMask != nil {
					resultMask.Set(i, j, true)
				}
				continue
			}
			cur := extrema[idx]
			if (computeMax && ops.Greater(v, cur)) || (!computeMax && ops.Less(v, cur)) {
				extrema[idx] = v
				cur = v
			}
			out.Set(i, j, cur)
			if resultMask != nil {
				resultMask.Set(i, j, false)
			}
		}
	}
	return nil
}
