// SPDX-License-Identifier: MIT

package group

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGroup is returned when New receives no matrices.
	ErrEmptyGroup = errors.New("group: no matrices")

	// ErrNilMember is returned when one of the matrices is nil.
	ErrNilMember = errors.New("group: nil member")

	// ErrNonSquareMember is returned when a member is not square.
	ErrNonSquareMember = errors.New("group: member is not square")

	// ErrMixedDimension is returned when members differ in dimension.
	ErrMixedDimension = errors.New("group: members differ in dimension")
)

// groupErrorf tags err with the failing operation and member index.
func groupErrorf(op string, idx int, err error) error {
	return fmt.Errorf("group.%s: member %d: %w", op, idx, err)
}
