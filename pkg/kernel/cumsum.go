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

// GroupCumsum implements §4.13's cumulative sum. The break-on-NA
// behavior is preserved exactly per §9: with skipna=false, hitting an
// NA cell poisons that (g,j) accumulator for the rest of the group and
// the remaining columns of that row are left untouched in out (the
// caller-visible artifact the source documents, not a bug to fix).
func GroupCumsum[T any](ops Ops[T], in ReduceInput[T], out Matrix[T], ngroups int, skipna bool) error {
	return groupCumOp(ops, in, out, ngroups, skipna, false)
}

// GroupCumprod implements §4.13's cumulative product, floating-only.
func GroupCumprod[T any](ops Ops[T], in ReduceInput[T], out Matrix[T], ngroups int, skipna bool) error {
	if ops.Category() != CatF32 && ops.Category() != CatF64 {
		return ErrUnsupportedElementType
	}
	return groupCumOp(ops, in, out, ngroups, skipna, true)
}

func groupCumOp[T any](ops Ops[T], in ReduceInput[T], out Matrix[T], ngroups int, skipna, isProd bool) error {
	if err := checkLengths(in.Values.Rows, len(in.Labels)); err != nil {
		return err
	}
	n, k := in.Values.Rows, in.Values.Cols
	accs := make([]KahanAcc[T], ngroups*k)
	prod := make([]T, ngroups*k)
	poisoned := make([]bool, ngroups*k)
	if isProd {
		for i := range prod {
			prod[i] = ops.One()
		}
	}
	naVal, _ := ops.NAValue()

	for i := 0; i < n; i++ {
		lab := in.Labels[i]
		if lab < 0 {
			continue
		}
		row := in.Values.Row(i)
		for j := 0; j < k; j++ {
			idx := lab*k + j
			if poisoned[idx] {
				out.Set(i, j, naVal)
				continue
			}
			v := row[j]
			if IsNA(v, ops, in.IsDatetimelike, in.Mask, i, j) {
				out.Set(i, j, naVal)
				if !skipna {
					poisoned[idx] = true
					break
				}
				continue
			}
			if isProd {
				prod[idx] = ops.Mul(prod[idx], v)
				out.Set(i, j, prod[idx])
			} else {
				accs[idx].Add(v, ops)
				out.Set(i, j, accs[idx].Sum)
			}
		}
	}
	return nil
}
