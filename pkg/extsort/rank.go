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

import "sort"

// TiesMethod selects how equal-valued observations share a rank.
type TiesMethod int

const (
	TiesAverage TiesMethod = iota
	TiesMin
	TiesMax
	TiesFirst
	TiesDense
)

// NAOption selects where masked observations land in the ranking.
type NAOption int

const (
	NAKeep NAOption = iota
	NATop
	NABottom
)

// Rank1D ranks vals[i] for every i where group[i] == g, independently
// per group, honoring ties, ascending, pct, and naOption exactly as
// named in §4.17. Masked entries (mask[i] true) are handled per
// naOption: Keep leaves their rank as NaN-equivalent (reported via the
// ok return), Top/Bottom give them a rank ahead of or behind every
// real value in their group.
//
// Returns one rank per input position (length len(vals)); positions
// outside any group of interest are left at 0 with ok=false.
func Rank1D(vals []float64, mask []bool, group []int, ascending bool, ties TiesMethod, naOption NAOption, pct bool) (ranks []float64, ok []bool) {
	n := len(vals)
	ranks = make([]float64, n)
	ok = make([]bool, n)

	groups := make(map[int][]int)
	for i, g := range group {
		if g < 0 {
			continue
		}
		groups[g] = append(groups[g], i)
	}

	for _, idxs := range groups {
		rankGroup(idxs, vals, mask, ascending, ties, naOption, pct, ranks, ok)
	}
	return ranks, ok
}

func rankGroup(idxs []int, vals []float64, mask []bool, ascending bool, ties TiesMethod, naOption NAOption, pct bool, ranks []float64, ok []bool) {
	real := make([]int, 0, len(idxs))
	na := make([]int, 0)
	for _, i := range idxs {
		if mask != nil && mask[i] {
			na = append(na, i)
		} else {
			real = append(real, i)
		}
	}

	sort.SliceStable(real, func(a, b int) bool {
		va, vb := vals[real[a]], vals[real[b]]
		if ascending {
			return va < vb
		}
		return va > vb
	})

	n := len(real)
	assignTies(real, vals, ties, ranks, ok)

	if pct {
		for _, i := range real {
			ranks[i] = ranks[i] / float64(n)
		}
	}

	switch naOption {
	case NATop:
		for _, i := range na {
			ranks[i] = 0
			ok[i] = true
		}
		if pct {
			for _, i := range real {
				ranks[i] = (ranks[i]*float64(n) + float64(len(na))) / float64(n+len(na))
			}
		} else {
			for _, i := range real {
				ranks[i] += float64(len(na))
			}
		}
	case NABottom:
		for _, i := range na {
			ranks[i] = float64(n + len(na))
			ok[i] = true
		}
	case NAKeep:
		for _, i := range na {
			ok[i] = false
		}
	}
}

// assignTies resolves rank values for an already-sorted real slice.
func assignTies(real []int, vals []float64, ties TiesMethod, ranks []float64, ok []bool) {
	n := len(real)
	i := 0
	dense := 0
	for i < n {
		j := i
		for j+1 < n && vals[real[j+1]] == vals[real[i]] {
			j++
		}
		dense++
		switch ties {
		case TiesAverage:
			avg := float64(i+1+j+1) / 2
			for x := i; x <= j; x++ {
				ranks[real[x]] = avg
				ok[real[x]] = true
			}
		case TiesMin:
			for x := i; x <= j; x++ {
				ranks[real[x]] = float64(i + 1)
				ok[real[x]] = true
			}
		case TiesMax:
			for x := i; x <= j; x++ {
				ranks[real[x]] = float64(j + 1)
				ok[real[x]] = true
			}
		case TiesFirst:
			for x := i; x <= j; x++ {
				ranks[real[x]] = float64(x + 1)
				ok[real[x]] = true
			}
		case TiesDense:
			for x := i; x <= j; x++ {
				ranks[real[x]] = float64(dense)
				ok[real[x]] = true
			}
		}
		i = j + 1
	}
}
