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

import "golang.org/x/sync/errgroup"

// RunColumnsParallel fans ncols independent per-column calls of fn out
// across goroutines and waits for all of them, returning the first
// error encountered. Each kernel function in this package remains,
// individually, the single synchronous per-column computation §5
// specifies; this only parallelizes across columns of the same call,
// which the source's concurrency model never forbids (it forbids
// parallelizing a single column's own inner loop).
//
// Opt-in: callers that want the default single-goroutine behavior
// simply call the per-column kernel function directly in a loop.
func RunColumnsParallel(ncols int, fn func(col int) error) error {
	var g errgroup.Group
	for j := 0; j < ncols; j++ {
		col := j
		g.Go(func() error {
			return fn(col)
		})
	}
	return g.Wait()
}
