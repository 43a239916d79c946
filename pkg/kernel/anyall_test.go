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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GroupAnyAll_KleeneUndecided(t *testing.T) {
	mask := NewMask(3, 1)
	mask.Set(0, 0, true)
	values := WrapMatrix([]int8{0, 0, 0}, 3, 1)
	labels := []int{0, 0, 0}

	out := NewMatrix[int8](1, 1)
	require.NoError(t, GroupAnyAll(values, labels, mask, out, 1, ValAny, false, true))
	assert.Equal(t, int8(-1), out.At(0, 0))
}

func Test_GroupAnyAll_DecisiveWins(t *testing.T) {
	mask := NewMask(3, 1)
	mask.Set(0, 0, true)
	values := WrapMatrix([]int8{0, 1, 0}, 3, 1)
	labels := []int{0, 0, 0}

	out := NewMatrix[int8](1, 1)
	require.NoError(t, GroupAnyAll(values, labels, mask, out, 1, ValAny, false, true))
	assert.Equal(t, int8(1), out.At(0, 0))
}

func Test_GroupAnyAll_Skipna(t *testing.T) {
	mask := NewMask(3, 1)
	mask.Set(0, 0, true)
	values := WrapMatrix([]int8{0, 0, 0}, 3, 1)
	labels := []int{0, 0, 0}

	out := NewMatrix[int8](1, 1)
	require.NoError(t, GroupAnyAll(values, labels, mask, out, 1, ValAny, true, true))
	assert.Equal(t, int8(0), out.At(0, 0))
}
