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

func Test_GroupCumMinMax_NonSkipnaPropagation(t *testing.T) {
	ops := Float64Ops{}
	mask := NewMask(3, 1)
	mask.Set(1, 0, true)
	values := WrapMatrix([]float64{1.0, 0, 2.0}, 3, 1)
	labels := []int{0, 0, 0}

	out := NewMatrix[float64](3, 1)
	in := ReduceInput[float64]{Values: values, Labels: labels, Mask: mask}

	require.NoError(t, GroupCumMinMax(ops, in, out, nil, 1, false, true))
	assert.Equal(t, 1.0, out.At(0, 0))
	assert.True(t, out.At(1, 0) != out.At(1, 0))
	assert.True(t, out.At(2, 0) != out.At(2, 0))
}

func Test_GroupCumMinMax_SkipnaContinues(t *testing.T) {
	ops := Float64Ops{}
	mask := NewMask(3, 1)
	mask.Set(1, 0, true)
	values := WrapMatrix([]float64{1.0, 0, 2.0}, 3, 1)
	labels := []int{0, 0, 0}

	out := NewMatrix[float64](3, 1)
	in := ReduceInput[float64]{Values: values, Labels: labels, Mask: mask}

	require.NoError(t, GroupCumMinMax(ops, in, out, nil, 1, true, true))
	assert.Equal(t, 1.0, out.At(0, 0))
	assert.True(t, out.At(1, 0) != out.At(1, 0))
	assert.Equal(t, 2.0, out.At(2, 0))
}
