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

func Test_GroupCumsum_BreaksRemainingColumnsOnNonSkipnaNA(t *testing.T) {
	ops := Float64Ops{}
	mask := NewMask(2, 2)
	mask.Set(0, 0, true)
	values := WrapMatrix([]float64{0, 5, 1, 2}, 2, 2)
	labels := []int{0, 0}

	out := NewMatrix[float64](2, 2)
	in := ReduceInput[float64]{Values: values, Labels: labels, Mask: mask}

	require.NoError(t, GroupCumsum(ops, in, out, 1, false))
	assert.True(t, out.At(0, 0) != out.At(0, 0))
	// column 1 of row 0 is left untouched because the inner loop broke
	// before reaching it; the preallocated out buffer's zero value
	// surfaces here, matching the source's documented artifact.
	assert.Equal(t, 0.0, out.At(0, 1))
	assert.True(t, out.At(1, 0) != out.At(1, 0)) // poisoned for the rest of the group
}

func Test_GroupCumsum_ConsistentWithGroupSumAtLastIndex(t *testing.T) {
	ops := Float64Ops{}
	values := WrapMatrix([]float64{1, 2, 3, 4}, 4, 1)
	labels := []int{0, 0, 0, 0}

	cumOut := NewMatrix[float64](4, 1)
	in := ReduceInput[float64]{Values: values, Labels: labels}
	require.NoError(t, GroupCumsum(ops, in, cumOut, 1, true))

	sumOut := NewMatrix[float64](1, 1)
	red := ReduceOutput[float64]{Out: sumOut, Counts: make([]int64, 1)}
	require.NoError(t, GroupSum(ops, in, red, 0))

	assert.Equal(t, sumOut.At(0, 0), cumOut.At(3, 0))
}

func Test_GroupCumprod_RejectsIntegerCategory(t *testing.T) {
	ops := Int64Ops{}
	in := ReduceInput[int64]{Values: NewMatrix[int64](0, 1), Labels: []int{}}
	out := NewMatrix[int64](0, 1)
	err := GroupCumprod(ops, in, out, 1, true)
	require.ErrorIs(t, err, ErrUnsupportedElementType)
}
