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

import "math"

// GroupVar implements §4.6: the Welford online mean/M2 recurrence,
// restricted to floating-point categories — variance is only a
// meaningful quantity over a real-valued field. Out and ResultMask
// are always F64-shaped regardless of the input category; callers of
// integer columns must convert beforehand (there is no integer
// variance in this kernel family).
func GroupVar(in ReduceInput[float64], out ReduceOutput[float64], ddof int) error {
	if err := checkLengths(in.Values.Rows, len(in.Labels)); err != nil {
		return err
	}
	n, k := in.Values.Rows, in.Values.Cols
	g := out.NGroups()
	ops := Float64Ops{}

	nObs := make([]int, g*k)
	accs := make([]WelfordAcc, g*k)

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
			accs[idx].Add(v, uint64(nObs[idx]))
		}
	}

	for gi := 0; gi < g; gi++ {
		for j := 0; j < k; j++ {
			idx := gi*k + j
			no := nObs[idx]
			if no <= ddof {
				out.Out.Set(gi, j, math.NaN())
				if out.ResultMask != nil {
					out.ResultMask.Set(gi, j, true)
				}
				continue
			}
			out.Out.Set(gi, j, accs[idx].M2/float64(no-ddof))
			if out.ResultMask != nil {
				out.ResultMask.Set(gi, j, false)
			}
		}
	}
	return nil
}
