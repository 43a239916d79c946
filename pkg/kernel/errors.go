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
	"errors"
	"fmt"
)

// Sentinel error kinds, checked with errors.Is. The teacher's own
// error handling (pkg/storage/*.go) never reaches for a custom error
// hierarchy, only plain fmt.Errorf; these sentinels are the smallest
// extension of that style that still lets callers distinguish the
// four kinds §7 names.
var (
	ErrLengthMismatch        = errors.New("values row count disagrees with labels length")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrEmptyGroupUnsigned    = errors.New("empty-group NA on unsigned element type requires a result mask")
	ErrUnsupportedElementType = errors.New("unsupported element type for this kernel")
)

func lengthMismatch(nValues, nLabels int) error {
	return fmt.Errorf("%w: values has %d rows, labels has %d entries", ErrLengthMismatch, nValues, nLabels)
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func emptyGroupUnsigned(group, col int) error {
	return fmt.Errorf("%w: group %d column %d", ErrEmptyGroupUnsigned, group, col)
}
