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

// ValTest selects the any/all reduction applied by GroupAnyAll.
type ValTest int

const (
	ValAny ValTest = iota
	ValAll
)

// GroupAnyAll implements §4.12: int8-valued {0,1} input, int8-valued
// {0,1,-1} output, Kleene three-valued logic when nullable is set.
func GroupAnyAll(values Matrix[int8], labels []int, mask *Mask, out Matrix[int8], ngroups int, valTest ValTest, skipna, nullable bool) error {
	if err := checkLengths(values.Rows, len(labels)); err != nil {
		return err
	}
	var flagVal int8 = 0
	if valTest == ValAny {
		flagVal = 1
	}
	g, k := ngroups, values.Cols
	for gi := 0; gi < g; gi++ {
		for j := 0; j < k; j++ {
			out.Set(gi, j, 1-flagVal)
		}
	}

	n := values.Rows
	for i := 0; i < n; i++ {
		lab := labels[i]
		if lab < 0 {
			continue
		}
		row := values.Row(i)
		for j := 0; j < k; j++ {
			isNA := mask != nil && mask.Get(i, j)
			if skipna && isNA {
				continue
			}
			cur := out.At(lab, j)
			if isNA {
				if nullable && cur != flagVal {
					out.Set(lab, j, -1)
				}
				continue
			}
			if row[j] == flagVal {
				out.Set(lab, j, flagVal)
			}
		}
	}
	return nil
}
