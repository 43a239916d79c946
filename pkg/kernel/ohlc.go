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

// GroupOHLC implements §4.9: K=1 only, four output columns per group
// (open, high, low, close) in that fixed order. counts[g] tallies
// every row with L[i]=g, including all-NaN rows.
func GroupOHLC[T any](ops Ops[T], in ReduceInput[T], out Matrix[T], counts []int64) error {
	if in.Values.Cols != 1 {
		return invalidArgument("group_ohlc requires K=1, got K=%d", in.Values.Cols)
	}
	if out.Cols != 4 {
		return invalidArgument("group_ohlc requires out.shape[1]=4, got %d", out.Cols)
	}
	if err := checkLengths(in.Values.Rows, len(in.Labels)); err != nil {
		return err
	}
	n := in.Values.Rows
	g := out.Rows

	naVal, _ := ops.NAValue()
	for gi := 0; gi < g; gi++ {
		for col := 0; col < 4; col++ {
			out.Set(gi, col, naVal)
		}
	}
	seen := make([]bool, g)

	for i := 0; i < n; i++ {
		lab := in.Labels[i]
		if lab < 0 {
			continue
		}
		counts[lab]++
		v := in.Values.At(i, 0)
		if IsNA(v, ops, in.IsDatetimelike, in.Mask, i, 0) {
			continue
		}
		if !seen[lab] {
			out.Set(lab, 0, v) // open
			out.Set(lab, 1, v) // high
			out.Set(lab, 2, v) // low
			out.Set(lab, 3, v) // close
			seen[lab] = true
			continue
		}
		if ops.Greater(v, out.At(lab, 1)) {
			out.Set(lab, 1, v)
		}
		if ops.Less(v, out.At(lab, 2)) {
			out.Set(lab, 2, v)
		}
		out.Set(lab, 3, v)
	}

	var firstErr error
	for gi := 0; gi < g; gi++ {
		if seen[gi] {
			continue
		}
		for col := 0; col < 4; col++ {
			if err := finalizeCell(out, nil, ops, gi, col, 0, 1, naVal); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
