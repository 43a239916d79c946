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

package extsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StableArgsort_PreservesRelativeOrder(t *testing.T) {
	labels := []int{1, 0, 1, 0, -1}
	perm := StableArgsort(labels)
	got := make([]int, len(perm))
	for i, p := range perm {
		got[i] = labels[p]
	}
	assert.Equal(t, []int{-1, 0, 0, 1, 1}, got)
	assert.Equal(t, []int{4, 1, 3, 0, 2}, perm)
}
