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

func Test_GroupFillnaIndexer_ForwardFillWithLimit(t *testing.T) {
	labels := []int{0, 0, 0, 0}
	mask := []bool{false, true, true, true}
	sorted := extsort.StableArgsort(labels)

	out := GroupFillnaIndexer(sorted, labels, mask, 1, true)
	assert.Equal(t, 0, out[0])
	assert.Equal(t, 0, out[1])
	assert.Equal(t, -1, out[2])
	assert.Equal(t, -1, out[3])
}

func Test_GroupFillnaIndexer_ResetsAtGroupBoundary(t *testing.T) {
	labels := []int{0, 0, 1, 1}
	mask := []bool{false, true, false, true}
	sorted := extsort.StableArgsort(labels)

	out := GroupFillnaIndexer(sorted, labels, mask, -1, true)
	assert.Equal(t, 0, out[0])
	assert.Equal(t, 0, out[1])
	assert.Equal(t, 2, out[2])
	assert.Equal(t, 2, out[3])
}

func Test_GroupFillnaIndexer_DropnaRoutesLabelNegativeOne(t *testing.T) {
	labels := []int{-1, 0}
	mask := []bool{true, true}
	sorted := extsort.StableArgsort(labels)

	out := GroupFillnaIndexer(sorted, labels, mask, -1, true)
	assert.Equal(t, -1, out[0])
}
