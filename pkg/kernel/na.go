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

// IsNA is the single source of truth for missingness described in
// §4.1: an external mask bit wins outright; failing that, dispatch
// falls to the category's own Ops.IsNA.
func IsNA[T any](v T, ops Ops[T], isDatetimelike bool, mask *Mask, row, col int) bool {
	if mask != nil {
		return mask.Get(row, col)
	}
	return ops.IsNA(v, isDatetimelike)
}
