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

func Test_Mask_NilIsAlwaysValid(t *testing.T) {
	var m *Mask
	assert.False(t, m.Get(0, 0))
	assert.True(t, m.AllValid())
}

func Test_Mask_SetAndGetBeyondDefaultCapacity(t *testing.T) {
	rows, cols := 4, 2048
	m := NewMask(rows, cols)
	m.Set(3, 2047, true)
	assert.True(t, m.Get(3, 2047))
	assert.False(t, m.Get(3, 2046))
	assert.False(t, m.Get(0, 0))
}

func Test_Mask_OverwriteClearsPreviousNA(t *testing.T) {
	m := NewMask(1, 1)
	m.Set(0, 0, true)
	assert.True(t, m.Get(0, 0))
	m.Set(0, 0, false)
	assert.False(t, m.Get(0, 0))
}
