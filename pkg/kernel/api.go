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

// This file has no behavior of its own. It is the one place a reader
// can see every exported kernel entry point at a glance, grouped the
// way the teacher's pkg/plan/aggr_funcs.go groups its AggrOp
// constructors by aggregate family rather than alphabetically.
package kernel

// Reductions (one row per group):
//   GroupSum, GroupProd, GroupMean, GroupVar, GroupMinMax,
//   GroupNth, GroupLast, GroupMedian, GroupQuantile, GroupOHLC,
//   GroupAnyAll, GroupSumDecimal, GroupMedianDecimal
//
// Scans (one row per input row):
//   GroupCumsum, GroupCumprod, GroupCumMinMax, GroupRank
//
// Indexers (row permutations, consumed by a caller-side gather):
//   GroupShiftIndexer, GroupFillnaIndexer, Take
//
// Category dispatch:
//   Ops[T], Int64Ops, Uint64Ops, Float32Ops, Float64Ops, IsNA
//
// Concurrency:
//   RunColumnsParallel
