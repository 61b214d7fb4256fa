// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All kernels return these sentinels directly and tests match them via
// errors.Is. No kernel panics on user-triggered conditions.

package vector

import "errors"

// ErrLengthMismatch is returned when operand or destination lengths disagree.
// Messages are prefixed "vector: ..." for consistency and easy grepping.
var ErrLengthMismatch = errors.New("vector: length mismatch")
