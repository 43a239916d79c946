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

// GroupShiftIndexer implements §4.15: a per-group ring buffer of size
// |periods| tracks the last |periods| row positions seen in this
// group, in the iteration direction implied by periods' sign. Rows
// with label -1 map to -1.
func GroupShiftIndexer(labels []int, ngroups, periods int) []int {
	n := len(labels)
	out := make([]int, n)
	if periods == 0 {
		for i, lab := range labels {
			if lab < 0 {
				out[i] = -1
			} else {
				out[i] = i
			}
		}
		return out
	}

	absP := periods
	if absP < 0 {
		absP = -absP
	}
	labelSeen := make([]int, ngroups)
	ring := make([][]int, ngroups)
	for g := range ring {
		ring[g] = make([]int, absP)
	}

	emit := func(ii int) {
		lab := labels[ii]
		if lab < 0 {
			out[ii] = -1
			return
		}
		slot := labelSeen[lab] % absP
		if labelSeen[lab] >= absP {
			out[ii] = ring[lab][slot]
		} else {
			out[ii] = -1
		}
		ring[lab][slot] = ii
		labelSeen[lab]++
	}

	if periods > 0 {
		for ii := 0; ii < n; ii++ {
			emit(ii)
		}
	} else {
		for ii := n - 1; ii >= 0; ii-- {
			emit(ii)
		}
	}
	return out
}
