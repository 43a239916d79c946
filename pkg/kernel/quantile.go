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

// Interpolation selects one of the five quantile interpolation modes
// of §4.11.
type Interpolation int

const (
	InterpLinear Interpolation = iota
	InterpLower
	InterpHigher
	InterpNearest
	InterpMidpoint
)

// GroupQuantile implements §4.11. sortIndexer must order rows first
// by label ascending, then by value ascending within a label, with NA
// rows pushed to the tail of their group — extsort.BuildGroupSortIndexer
// produces exactly this ordering. counts must already hold, for every
// group, the total row count (valid + NA); nonNACounts holds only the
// non-NA tally.
func GroupQuantile(values Matrix[float64], sortIndexer []int, counts, nonNACounts []int64, qs []float64, interp Interpolation, out Matrix[float64]) error {
	for _, q := range qs {
		if q < 0 || q > 1 {
			return invalidArgument("quantile probability %v outside [0,1]", q)
		}
	}
	ngroups := out.Rows
	grpStart := int64(0)
	for g := 0; g < ngroups; g++ {
		m := nonNACounts[g]
		for qi, q := range qs {
			if m == 0 {
				out.Set(g, qi, math.NaN())
				continue
			}
			out.Set(g, qi, quantileOne(values, sortIndexer, grpStart, m, q, interp))
		}
		grpStart += counts[g]
	}
	return nil
}

func quantileOne(values Matrix[float64], sortIndexer []int, grpStart, m int64, q float64, interp Interpolation) float64 {
	pos := q * float64(m-1)
	idxOffset := int64(math.Floor(pos))
	frac := pos - float64(idxOffset)

	v := values.At(sortIndexer[grpStart+idxOffset], 0)
	if frac == 0 || interp == InterpLower {
		return v
	}
	vNext := values.At(sortIndexer[grpStart+idxOffset+1], 0)
	switch interp {
	case InterpHigher:
		return vNext
	case InterpMidpoint:
		return (v + vNext) / 2
	case InterpNearest:
		if frac > 0.5 || (frac == 0.5 && q > 0.5) {
			return vNext
		}
		return v
	default: // InterpLinear
		return v + (vNext-v)*frac
	}
}
