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

	"github.com/groupkit/grouper/pkg/extsort"
)

func Test_GroupRank_PerColumnCopy(t *testing.T) {
	values := WrapMatrix([]float64{30, 10, 10, 20}, 4, 1)
	labels := []int{0, 0, 0, 0}

	out := NewMatrix[float64](4, 1)
	GroupRank(values, labels, nil, out, true, extsort.TiesMin, extsort.NAKeep, false)

	assert.Equal(t, []float64{4, 1, 1, 3}, out.Data)
}
