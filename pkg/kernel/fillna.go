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

// GroupFillnaIndexer implements §4.16. sortedLabels is a stable
// argsort of the label vector (the caller reverses it to get bfill
// from the same algorithm run in the opposite walk order). limit=-1
// means unbounded consecutive fills.
func GroupFillnaIndexer(sortedLabels []int, labels []int, mask []bool, limit int, dropna bool) []int {
	n := len(sortedLabels)
	out := make([]int, n)

	currFillIdx := -1
	filledVals := 0
	curGroup := -2

	for _, row := range sortedLabels {
		lab := labels[row]
		if lab != curGroup {
			curGroup = lab
			currFillIdx = -1
			filledVals = 0
		}
		if lab < 0 {
			if dropna {
				out[row] = -1
			} else {
				out[row] = row
			}
			continue
		}
		if !mask[row] {
			out[row] = row
			currFillIdx = row
			filledVals = 0
			continue
		}
		if currFillIdx < 0 {
			out[row] = -1
			continue
		}
		if limit >= 0 && filledVals >= limit {
			out[row] = -1
			continue
		}
		out[row] = currFillIdx
		filledVals++
	}
	return out
}
