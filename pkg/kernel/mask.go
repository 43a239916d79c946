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

import "github.com/groupkit/grouper/pkg/util"

// Mask is a row-major N×K validity buffer: true means NA. It wraps the
// teacher's packed-bit util.Bitmap (pkg/util/bitmap.go) rather than a
// []bool. "No mask supplied" is a nil *Mask, which costs one pointer
// comparison to test in the hot loop (Get / AllValid).
type Mask struct {
	bm   util.Bitmap
	rows int
	cols int
}

// NewMask allocates a mask with every cell initially valid (not NA).
// The bitmap is sized for rows*cols bits up front so later per-cell
// Set calls never fall back to the bitmap's own (too-small-for-us)
// default capacity.
func NewMask(rows, cols int) *Mask {
	m := &Mask{rows: rows, cols: cols}
	m.bm.SetAllValid(rows * cols)
	return m
}

// NoMask returns a nil-equivalent mask: every Get call returns false.
func NoMask() *Mask { return nil }

func (m *Mask) index(row, col int) uint64 {
	return uint64(row*m.cols + col)
}

// Get reports whether V[row,col] is NA. A nil Mask means no external
// mask is in use, i.e. every cell is valid.
func (m *Mask) Get(row, col int) bool {
	if m == nil {
		return false
	}
	return !m.bm.RowIsValid(m.index(row, col))
}

// Set marks V[row,col] as NA (na=true) or valid (na=false).
func (m *Mask) Set(row, col int, na bool) {
	if m == nil {
		return
	}
	m.bm.Set(m.index(row, col), !na)
}

// AllValid reports whether no external mask is in use at all. Once a
// Mask has been constructed via NewMask its bitmap is allocated, so
// this only returns true for a nil Mask; use Get per-cell otherwise.
func (m *Mask) AllValid() bool {
	return m == nil
}
