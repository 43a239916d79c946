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

func Test_GroupNth_FreezesOnFirstMatch(t *testing.T) {
	ops := Float64Ops{}
	values := WrapMatrix([]float64{1, 2, 3}, 3, 1)
	labels := []int{0, 0, 0}

	out := NewMatrix[float64](1, 1)
	counts := make([]int64, 1)
	in := ReduceInput[float64]{Values: values, Labels: labels}
	red := ReduceOutput[float64]{Out: out, Counts: counts}

	require.NoError(t, GroupNth(ops, in, red, 0, 1))
	assert.Equal(t, 1.0, out.At(0, 0)) // group_first
}

func Test_GroupLast_OverwritesOnEveryNonNA(t *testing.T) {
	ops := Float64Ops{}
	values := WrapMatrix([]float64{1, 2, 3}, 3, 1)
	labels := []int{0, 0, 0}

	out := NewMatrix[float64](1, 1)
	counts := make([]int64, 1)
	in := ReduceInput[float64]{Values: values, Labels: labels}
	red := ReduceOutput[float64]{Out: out, Counts: counts}

	require.NoError(t, GroupLast(ops, in, red, 0))
	assert.Equal(t, 3.0, out.At(0, 0))
}

func Test_GroupNth_RejectsRankLessThanOne(t *testing.T) {
	ops := Float64Ops{}
	in := ReduceInput[float64]{Values: NewMatrix[float64](0, 1), Labels: []int{}}
	out := ReduceOutput[float64]{Out: NewMatrix[float64](1, 1), Counts: make([]int64, 1)}
	err := GroupNth(ops, in, out, 0, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
