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
)

func Test_Take_GathersRowsAndMask(t *testing.T) {
	src := WrapMatrix([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	mask := NewMask(3, 2)
	mask.Set(1, 0, true)

	out, outMask := Take(src, mask, []int{2, 0, -1, 1})

	assert.Equal(t, []float64{5, 6}, out.Row(0))
	assert.Equal(t, []float64{1, 2}, out.Row(1))
	assert.Equal(t, []float64{0, 0}, out.Row(2))
	assert.Equal(t, []float64{3, 4}, out.Row(3))

	assert.True(t, outMask.Get(2, 0))
	assert.True(t, outMask.Get(2, 1))
	assert.True(t, outMask.Get(3, 0))
	assert.False(t, outMask.Get(3, 1))
}
