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

package util

import (
	"math"
)

// AssertFunc panics on an invariant violation that should never be
// reachable once public entry points have validated their arguments.
func AssertFunc(b bool) {
	if !b {
		panic("assertion failed")
	}
}

const (
	DefaultVectorSize = 2048
)

// GreaterFloat orders NaN as greater than every other value, including
// +Inf, so that a single pass can track a running maximum without a
// separate NaN-sighting flag.
func GreaterFloat[T ~float32 | ~float64](lhs, rhs T) bool {
	lIsNan := math.IsNaN(float64(lhs))
	rIsNan := math.IsNaN(float64(rhs))
	if rIsNan {
		return false
	}
	if lIsNan {
		return true
	}
	return lhs > rhs
}
