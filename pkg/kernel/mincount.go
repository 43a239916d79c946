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

// effectiveMinCount applies the per-kernel-family coercion rule of
// §3: sum/prod keep the caller's μ (possibly 0); first/last/nth/min/max
// coerce μ up to at least 1.
func effectiveMinCount(minCount int, coerceToOne bool) int {
	if coerceToOne && minCount < 1 {
		return 1
	}
	if minCount < 0 {
		return 0
	}
	return minCount
}

// finalizeCell writes either the reduction value or the category's NA
// representation into out[g,j], honoring the min-count threshold and
// the unsigned-empty-group failure mode of §4.2. It returns an error
// only for the EmptyGroupUnsignedError case; the caller is expected to
// collect this across the whole finalize pass and raise once, per §7
// ("set a flag and raise after the loop exits").
func finalizeCell[T any](
	out Matrix[T],
	resultMask *Mask,
	ops Ops[T],
	g, j int,
	nObs, minCount int,
	value T,
) error {
	if nObs >= minCount {
		out.Set(g, j, value)
		if resultMask != nil {
			resultMask.Set(g, j, false)
		}
		return nil
	}
	if resultMask != nil {
		resultMask.Set(g, j, true)
		out.Set(g, j, ops.Zero())
		return nil
	}
	naVal, hasNA := ops.NAValue()
	if !hasNA {
		return emptyGroupUnsigned(g, j)
	}
	out.Set(g, j, naVal)
	return nil
}
