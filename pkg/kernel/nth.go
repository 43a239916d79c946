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

// GroupNth implements §4.8: records V[i,j] the first time N_obs[g,j]
// reaches rank (1-based), then freezes — a later non-NA contribution
// to the same cell never overwrites it. rank=1 is group_first. μ is
// coerced to max(μ,1).
func GroupNth[T any](ops Ops[T], in ReduceInput[T], out ReduceOutput[T], minCount, rank int) error {
	if rank < 1 {
		return invalidArgument("rank must be >= 1, got %d", rank)
	}
	if err := checkLengths(in.Values.Rows, len(in.Labels)); err != nil {
		return err
	}
	n, k := in.Values.Rows, in.Values.Cols
	g := out.NGroups()

	nObs := make([]int, g*k)
	vals := make([]T, g*k)
	frozen := make([]bool, g*k)

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
			if !frozen[idx] && nObs[idx] == rank {
				vals[idx] = v
				frozen[idx] = true
			}
		}
	}

	eff := effectiveMinCount(minCount, true)
	var firstErr error
	for gi := 0; gi < g; gi++ {
		for j := 0; j < k; j++ {
			idx := gi*k + j
			if err := finalizeCell(out.Out, out.ResultMask, ops, gi, j, nObs[idx], eff, vals[idx]); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// GroupLast implements §4.8's overwrite-on-every-non-NA variant: the
// most recently seen non-NA value in row order wins. μ is coerced to
// max(μ,1).
//
// Whether is_datetimelike should apply to every integer column or
// only genuinely datetime-like ones is left open by the distillation
// (§9, "open questions"); this entry point takes the flag explicitly
// from the caller per column rather than guessing, so the ambiguity
// is resolved by the caller, not hidden inside the kernel.
func GroupLast[T any](ops Ops[T], in ReduceInput[T], out ReduceOutput[T], minCount int) error {
	if err := checkLengths(in.Values.Rows, len(in.Labels)); err != nil {
		return err
	}
	n, k := in.Values.Rows, in.Values.Cols
	g := out.NGroups()

	nObs := make([]int, g*k)
	vals := make([]T, g*k)

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
			vals[idx] = v
		}
	}

	eff := effectiveMinCount(minCount, true)
	var firstErr error
	for gi := 0; gi < g; gi++ {
		for j := 0; j < k; j++ {
			idx := gi*k + j
			if err := finalizeCell(out.Out, out.ResultMask, ops, gi, j, nObs[idx], eff, vals[idx]); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
