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

// Take gathers rows of src at the given indices into a freshly
// allocated Matrix, carrying the mask along the same permutation. A
// negative index gathers a zero-valued row, marked NA in the returned
// mask when a mask was supplied (with a nil mask the returned mask is
// nil and the row is just zeros) — the convention used
// by group_shift_indexer/group_fillna_indexer output once materialized
// into an actual column.
func Take[T any](src Matrix[T], mask *Mask, indices []int) (Matrix[T], *Mask) {
	k := src.Cols
	out := NewMatrix[T](len(indices), k)
	var outMask *Mask
	if mask != nil {
		outMask = NewMask(len(indices), k)
	}
	for dst, srcRow := range indices {
		if srcRow < 0 {
			if outMask != nil {
				for j := 0; j < k; j++ {
					outMask.Set(dst, j, true)
				}
			}
			continue
		}
		copy(out.Row(dst), src.Row(srcRow))
		if outMask != nil {
			for j := 0; j < k; j++ {
				outMask.Set(dst, j, mask.Get(srcRow, j))
			}
		}
	}
	return out, outMask
}
