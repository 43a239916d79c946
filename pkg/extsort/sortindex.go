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

package extsort

import "github.com/tidwall/btree"

type sortEntry struct {
	label int
	value float64
	na    bool
	row   int
}

// BuildGroupSortIndexer produces group_quantile's sort_indexer
// precondition: a permutation of row positions ordered first by
// label ascending, then by value ascending within a label, with NA
// rows pushed to the tail of their group. Grounded on the teacher's
// own use of tidwall/btree for ordered iteration (pkg/storage/index.go)
// in place of a hand-rolled radix sort over (label, value) keys.
func BuildGroupSortIndexer(labels []int, values []float64, mask []bool) []int {
	tr := btree.NewBTreeG(func(a, b sortEntry) bool {
		if a.label != b.label {
			return a.label < b.label
		}
		if a.na != b.na {
			return !a.na
		}
		if a.value != b.value {
			return a.value < b.value
		}
		return a.row < b.row
	})

	for i, lab := range labels {
		if lab < 0 {
			continue
		}
		na := mask != nil && mask[i]
		tr.Set(sortEntry{label: lab, value: values[i], na: na, row: i})
	}

	out := make([]int, 0, tr.Len())
	tr.Scan(func(e sortEntry) bool {
		out = append(out, e.row)
		return true
	})
	return out
}
