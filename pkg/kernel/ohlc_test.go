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

func Test_GroupOHLC_Identities(t *testing.T) {
	ops := Float64Ops{}
	values := WrapMatrix([]float64{3, 1, 4, 1, 5}, 5, 1)
	labels := []int{0, 0, 0, 0, 0}

	out := NewMatrix[float64](1, 4)
	counts := make([]int64, 1)
	in := ReduceInput[float64]{Values: values, Labels: labels}

	require.NoError(t, GroupOHLC(ops, in, out, counts))
	assert.Equal(t, 3.0, out.At(0, 0)) // open
	assert.Equal(t, 5.0, out.At(0, 1)) // high
	assert.Equal(t, 1.0, out.At(0, 2)) // low
	assert.Equal(t, 5.0, out.At(0, 3)) // close
	assert.Equal(t, int64(5), counts[0])
}

func Test_GroupOHLC_RejectsKGreaterThanOne(t *testing.T) {
	ops := Float64Ops{}
	values := WrapMatrix([]float64{1, 2}, 1, 2)
	in := ReduceInput[float64]{Values: values, Labels: []int{0}}
	out := NewMatrix[float64](1, 4)
	err := GroupOHLC(ops, in, out, make([]int64, 1))
	require.ErrorIs(t, err, ErrInvalidArgument)
}
